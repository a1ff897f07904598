package service

import "github.com/MKhiriev/go-blog/models"

// AssertOwner allows a write on post only to its author.
func AssertOwner(post models.Post, actor models.User) error {
	if post.AuthorID != actor.ID {
		return ErrForbidden
	}
	return nil
}
