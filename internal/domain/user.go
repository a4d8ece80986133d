package domain

import "fmt"

// User is an account that may call the service layer. Token policy lives
// outside the core; users exist for the authentication collaborator.
type User struct {
	Email    string
	Password string
	Name     string
}

func NewUser(email, password, name string) *User {
	return &User{Email: email, Password: password, Name: name}
}

func (u *User) String() string {
	return fmt.Sprintf("User{email=%s, name=%s}", u.Email, u.Name)
}
