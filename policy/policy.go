// Package policy holds the pure authorization rules for blogs. Every
// mutating code path asks these predicates first; anything ambiguous (nil
// actor, nil blog) is denied.
package policy

import "github.com/blogify-backend/models"

// CanView reports whether actor may read blog. Published blogs are public;
// everything else is visible only to the owner and admins. Callers that get
// a false back respond with NotFound so the blog's existence is not leaked.
func CanView(actor *models.User, blog *models.Blog) bool {
	if blog == nil {
		return false
	}
	if blog.Status == models.BlogPublished {
		return true
	}
	if actor == nil {
		return false
	}
	return actor.IsAdmin() || actor.ID == blog.UserID
}

// CanEdit reports whether actor may modify blog's content. Owners lose edit
// rights once the blog is published; only admins edit published blogs.
func CanEdit(actor *models.User, blog *models.Blog) bool {
	if actor == nil || blog == nil {
		return false
	}
	if actor.IsAdmin() {
		return true
	}
	return actor.ID == blog.UserID && blog.Status != models.BlogPublished
}

// CanDelete reports whether actor may remove blog. Owners may delete only
// pending or rejected blogs; admins may delete any.
func CanDelete(actor *models.User, blog *models.Blog) bool {
	if actor == nil || blog == nil {
		return false
	}
	if actor.IsAdmin() {
		return true
	}
	if actor.ID != blog.UserID {
		return false
	}
	return blog.Status == models.BlogPending || blog.Status == models.BlogRejected
}

// CanEngage reports whether actor may like or bookmark blog. Engagement is
// reserved for published blogs; owners and admins do not get to engage with
// unpublished content either.
func CanEngage(actor *models.User, blog *models.Blog) bool {
	if actor == nil || blog == nil {
		return false
	}
	return blog.Status == models.BlogPublished
}

// CanSetPromotionFlags reports whether actor may set isFeatured/isHot/isPopular.
func CanSetPromotionFlags(actor *models.User) bool {
	return actor != nil && actor.IsAdmin()
}

// CanChangeStatusDirectly reports whether actor may force a blog into an
// explicit moderation state instead of going through approve/reject.
func CanChangeStatusDirectly(actor *models.User) bool {
	return actor != nil && actor.IsAdmin()
}
