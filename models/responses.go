package models

// MessageResponse is the JSON replacement of a flash notice.
type MessageResponse struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// LoginResponse is returned after a successful login. Redirect is the safe,
// site-relative location the client should continue to.
type LoginResponse struct {
	Message  string `json:"message"`
	User     User   `json:"user"`
	Redirect string `json:"redirect"`
}

// PostResponse wraps a single post together with a notice.
type PostResponse struct {
	Message string `json:"message,omitempty"`
	Post    Post   `json:"post"`
}

// UserPostsResponse is the listing of one author's posts.
type UserPostsResponse struct {
	User  Author   `json:"user"`
	Posts PostPage `json:"posts"`
}

// AppInfo describes the running application.
type AppInfo struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	BuildDate   string `json:"build_date,omitempty"`
	BuildCommit string `json:"build_commit,omitempty"`
}

// AccountResponse is returned by the account endpoints.
type AccountResponse struct {
	Message string  `json:"message,omitempty"`
	Account Account `json:"account"`
}
