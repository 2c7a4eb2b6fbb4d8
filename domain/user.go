package domain

import (
	"fmt"
	"github.com/reuben-baek/repository-pattern/data"
)

// User is the example entity. ID is assigned by the caller.
type User struct {
	ID       int
	Name     string
	Email    string
	Password string
}

// String masks the password so users can be logged as they are.
func (u User) String() string {
	password := ""
	if u.Password != "" {
		password = "********"
	}
	return fmt.Sprintf("{ID:%d Name:%s Email:%s Password:%s}", u.ID, u.Name, u.Email, password)
}

type UserRepository interface {
	data.Repository[User, int]
}
