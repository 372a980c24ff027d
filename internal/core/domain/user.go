package domain

import (
	"strings"
	"time"
)

const (
	placeholderUserID = "1"
	placeholderAvatar = "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100"
	fallbackUserName  = "User"
)

type User struct {
	UserID string
	Email  string
	Name   string
	Avatar string
	Admin  bool
}

// NewMockUser builds the identity the mock sign-in flow produces:
// the display name is the local part of the email, the id and
// avatar are fixed placeholders. The password is never checked.
func NewMockUser(email string) User {
	name, _, _ := strings.Cut(email, "@")
	if name == "" {
		name = fallbackUserName
	}
	return User{
		UserID: placeholderUserID,
		Email:  email,
		Name:   name,
		Avatar: placeholderAvatar,
	}
}

// An Order is the confirmation produced by checkout.
type Order struct {
	OrderID  string
	Lines    []CartLine
	Total    float64
	PlacedAt time.Time
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme maps a persisted theme value to the enum,
// falling back to dark for anything unknown.
func ParseTheme(s string) Theme {
	if Theme(s) == ThemeLight {
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) Flip() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}
