package models

import "time"

// Post is a blog entry owned exclusively by its author.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"date_posted"`

	// AuthorID references users.id.
	AuthorID int64 `json:"author_id"`

	// Author is filled by read queries that join the users table.
	Author Author `json:"author"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// PostPage is one page of an ordered post listing.
type PostPage struct {
	Items   []Post `json:"items"`
	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
	Total   int64  `json:"total"`
	Pages   int    `json:"pages"`
	HasPrev bool   `json:"has_prev"`
	HasNext bool   `json:"has_next"`
}

// NewPostPage computes the page counters for items fetched at page/perPage
// out of total rows.
func NewPostPage(items []Post, page, perPage int, total int64) PostPage {
	if items == nil {
		items = []Post{}
	}

	pages := 0
	if perPage > 0 {
		pages = int((total + int64(perPage) - 1) / int64(perPage))
	}

	return PostPage{
		Items:   items,
		Page:    page,
		PerPage: perPage,
		Total:   total,
		Pages:   pages,
		HasPrev: page > 1,
		HasNext: page < pages,
	}
}
