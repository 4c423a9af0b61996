package domain

import "time"

type UserRole string

const (
	RoleClient UserRole = "client"
	RoleArtist UserRole = "artist"
)

// User is the minimal identity the scheduling core needs: enough to resolve
// an authenticated actor and to list artists in the directory. Registration,
// sessions and profiles beyond this live in the identity provider.
type User struct {
	ID          int64     `json:"id"`
	Role        UserRole  `json:"role"`
	Name        string    `json:"name"`
	Bio         string    `json:"bio,omitempty"`
	Location    string    `json:"location,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (u *User) IsArtist() bool {
	return u.Role == RoleArtist
}
