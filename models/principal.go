package models

// Principal is the identity behind a request: either [Authenticated] or
// [Anonymous]. Callers switch on the concrete type.
type Principal interface {
	principal()
}

// Authenticated is a request made by a logged-in user.
type Authenticated struct {
	User User
}

// Anonymous is a request with no valid session.
type Anonymous struct{}

func (Authenticated) principal() {}

func (Anonymous) principal() {}

// UserOf returns the user behind p and whether p is authenticated.
func UserOf(p Principal) (User, bool) {
	switch v := p.(type) {
	case Authenticated:
		return v.User, true
	case *Authenticated:
		if v != nil {
			return v.User, true
		}
		return User{}, false
	default:
		return User{}, false
	}
}
