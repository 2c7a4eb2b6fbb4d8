package domain_test

import (
	"fmt"
	"github.com/reuben-baek/repository-pattern/domain"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestUser_String(t *testing.T) {
	t.Run("password is masked", func(t *testing.T) {
		alice := domain.User{ID: 1, Name: "Alice", Email: "alice@example.com", Password: "secret"}
		assert.Equal(t, "{ID:1 Name:Alice Email:alice@example.com Password:********}", alice.String())
		assert.NotContains(t, fmt.Sprintf("%+v", alice), "secret")
	})
	t.Run("empty password", func(t *testing.T) {
		bob := domain.User{ID: 2, Name: "Bob"}
		assert.Equal(t, "{ID:2 Name:Bob Email: Password:}", bob.String())
	})
}
