package entity

type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// User mirrors the backend's users collection. Password is whatever the
// backend stores: plaintext by default, a bcrypt hash when hashed
// credentials are enabled.
type User struct {
	ID        ID      `json:"id,omitempty"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Password  string  `json:"password"`
	UserName  string  `json:"userName"`
	Address   Address `json:"address"`
	IsAdmin   bool    `json:"isAdmin"`
}
