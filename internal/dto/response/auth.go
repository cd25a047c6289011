package response

import (
	"fmt"

	"artliving/internal/data/entity"
)

// UserResponse is the session user as pages see it. The password never
// leaves the gateway.
type UserResponse struct {
	ID        string         `json:"id"`
	FirstName string         `json:"firstName"`
	LastName  string         `json:"lastName"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	UserName  string         `json:"userName"`
	Address   entity.Address `json:"address"`
	IsAdmin   bool           `json:"isAdmin"`
}

// AuthResponse is returned by form submissions that end in navigation.
type AuthResponse struct {
	User     *UserResponse `json:"user,omitempty"`
	Redirect string        `json:"redirect"`
}

func UserToResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:        user.ID.String(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Phone:     user.Phone,
		UserName:  user.UserName,
		Address:   user.Address,
		IsAdmin:   user.IsAdmin,
	}
}

// Greeting is the toast shown after a successful login.
func Greeting(user *entity.User) string {
	return fmt.Sprintf("שלום %s! התחברת בהצלחה", user.FirstName)
}
