package domain

import (
	"time"

	"github.com/google/uuid"
)

type Account struct {
	ID            uuid.UUID  `json:"id"`
	Email         string     `json:"email"`
	Username      string     `json:"username"`
	UsernameAlias string     `json:"username_alias"`
	FirstName     string     `json:"f_name"`
	LastName      string     `json:"l_name"`
	PasswordHash  string     `json:"-"`
	UPRN          string     `json:"uprn"`
	Token         string     `json:"token"`
	DOB           *time.Time `json:"dob,omitempty"`
	Profile       Profile    `json:"-"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Profile is the one-to-one companion of an Account.
type Profile struct {
	Mood            *int       `json:"mood,omitempty"`
	GeneralLastSeen *time.Time `json:"general_last_seen,omitempty"`
	// HiddenFrom holds usernames that may not see this account's last seen.
	HiddenFrom []string    `json:"-"`
	ProfilePic string      `json:"-"`
	About      string      `json:"about"`
	FriendIDs  []uuid.UUID `json:"-"`
}

// HasFriend reports whether id is in the profile's friend list.
func (p Profile) HasFriend(id uuid.UUID) bool {
	for _, f := range p.FriendIDs {
		if f == id {
			return true
		}
	}
	return false
}

// Ref returns the compact form other records embed.
func (a *Account) Ref() AccountRef {
	return AccountRef{
		ID:            a.ID,
		Username:      a.Username,
		UsernameAlias: a.UsernameAlias,
		FirstName:     a.FirstName,
		LastName:      a.LastName,
		ProfilePic:    a.Profile.ProfilePic,
	}
}

// AccountRef is an account as seen through a post, comment or like.
type AccountRef struct {
	ID            uuid.UUID
	Username      string
	UsernameAlias string
	FirstName     string
	LastName      string
	ProfilePic    string
}
