package model

import "time"

// User is a registered customer. The record lives inside the persisted "users"
// collection, so the password hash has to serialize with it; it is never sent
// over the API (handlers only ever expose Session).
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session is the public identity of the currently logged-in customer.
type Session struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Session returns the public subset of the user record.
func (u *User) Session() Session {
	return Session{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
	}
}
