package view

import "artliving/internal/data/entity"

type Access int

const (
	AccessGranted Access = iota
	AccessLoginRequired
	AccessForbidden
)

// Placeholder texts shown instead of a gated page.
const (
	LoginRequiredMessage = "יש להתחבר כדי לצפות בעמוד זה"
	NoPermissionMessage  = "אין לך הרשאה לצפות בעמוד זה"
)

// Gate decides page access from the session user alone; nothing is
// re-validated against the backend.
func Gate(user *entity.User, adminOnly bool) Access {
	switch {
	case user == nil:
		return AccessLoginRequired
	case adminOnly && !user.IsAdmin:
		return AccessForbidden
	default:
		return AccessGranted
	}
}

func (a Access) Message() string {
	switch a {
	case AccessLoginRequired:
		return LoginRequiredMessage
	case AccessForbidden:
		return NoPermissionMessage
	default:
		return ""
	}
}

// CanDeleteReview is true for the review's author and for admins.
func CanDeleteReview(viewer *entity.User, review entity.Review) bool {
	if viewer == nil {
		return false
	}
	return viewer.IsAdmin || viewer.ID == review.UserID
}

// CanAddReview is true for logged-in shoppers; admins do not review.
func CanAddReview(viewer *entity.User) bool {
	return viewer != nil && !viewer.IsAdmin
}
