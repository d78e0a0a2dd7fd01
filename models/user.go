package models

import "time"

// User is the public profile of a messenger account as exposed by the API.
// The client treats it as immutable: profiles are never edited locally, only
// re-fetched.
type User struct {
	UserID      string     `json:"userId"`
	DisplayName string     `json:"displayName"`
	Avatar      string     `json:"avatar"`
	Online      bool       `json:"online"`
	LastSeen    *time.Time `json:"lastSeen,omitempty"`
}

// Account is the server-side user record, including credentials. It is never
// serialised to API responses; handlers convert it to [User] first.
type Account struct {
	UserID       string
	Username     string
	PasswordHash string
	DisplayName  string
	Avatar       string
	CreatedAt    time.Time
}

// Profile converts the stored account into its public representation.
// Presence fields (Online, LastSeen) are filled in by the service layer.
func (a Account) Profile() User {
	return User{
		UserID:      a.UserID,
		DisplayName: a.DisplayName,
		Avatar:      a.Avatar,
	}
}
