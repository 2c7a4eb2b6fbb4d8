package infra

import (
	"github.com/reuben-baek/repository-pattern/domain"
)

// UserRecord keeps the caller-assigned id in a unique column. Seq is the
// primary key and records insertion order.
type UserRecord struct {
	Seq      uint64 `gorm:"primaryKey;autoIncrement;column:seq"`
	ID       int    `gorm:"uniqueIndex;not null;column:id"`
	Name     string `gorm:"column:name"`
	Email    string `gorm:"column:email"`
	Password string `gorm:"column:password"`
}

func (UserRecord) TableName() string {
	return "users"
}

func (UserRecord) SequenceColumn() string {
	return "seq"
}

func (u UserRecord) To() domain.User {
	return domain.User{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Password: u.Password,
	}
}

func (u UserRecord) From(m domain.User) any {
	u.ID = m.ID
	u.Name = m.Name
	u.Email = m.Email
	u.Password = m.Password
	return u
}

// String masks the password the same way domain.User does.
func (u UserRecord) String() string {
	return u.To().String()
}
