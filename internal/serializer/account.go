package serializer

import (
	"time"

	"github.com/google/uuid"
	"github.com/vedran77/foo/internal/domain"
)

type AccountContext struct {
	Mode Mode
}

// AccountPayload is an account as seen by its owner. LoginDetails is only
// set in login mode; its fields are inlined into the same JSON object.
type AccountPayload struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	UPRN      string    `json:"uprn"`
	Username  string    `json:"username"`
	Token     string    `json:"token"`
	FirstName string    `json:"f_name"`
	LastName  string    `json:"l_name"`
	*LoginDetails
}

type LoginDetails struct {
	Mood            int        `json:"mood"`
	GeneralLastSeen *time.Time `json:"general_last_seen"`
	LastSeenHidden  []string   `json:"last_seen_hidden"`
	DOBVerified     bool       `json:"dobVerified"`
	// DP is only present once the date of birth is verified.
	DP *string `json:"dp,omitempty"`
}

// AccountSummary is the compact account used for public profiles, chat
// participants and post owners.
type AccountSummary struct {
	FirstName string    `json:"f_name"`
	LastName  string    `json:"l_name"`
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	DP        string    `json:"dp"`
}

func (s *Serializer) Account(a *domain.Account, ctx AccountContext) *AccountPayload {
	p := &AccountPayload{
		ID:        a.ID,
		Email:     a.Email,
		UPRN:      a.UPRN,
		Username:  a.Username,
		Token:     a.Token,
		FirstName: a.FirstName,
		LastName:  a.LastName,
	}
	if ctx.Mode != ModeLogin {
		return p
	}

	details := &LoginDetails{
		GeneralLastSeen: a.Profile.GeneralLastSeen,
		LastSeenHidden:  make([]string, 0, len(a.Profile.HiddenFrom)),
		DOBVerified:     a.DOB != nil,
	}
	if a.Profile.Mood != nil {
		details.Mood = *a.Profile.Mood
	}
	details.LastSeenHidden = append(details.LastSeenHidden, a.Profile.HiddenFrom...)
	if details.DOBVerified {
		dp := s.media.URL(a.Profile.ProfilePic)
		details.DP = &dp
	}
	p.LoginDetails = details
	return p
}

// PublicAccount uses the canonical username in chat and the alias
// everywhere else.
func (s *Serializer) PublicAccount(a *domain.Account, ctx AccountContext) AccountSummary {
	sum := s.summary(a.Ref())
	if ctx.Mode == ModeChat {
		sum.Username = a.Username
	}
	return sum
}

func (s *Serializer) summary(ref domain.AccountRef) AccountSummary {
	return AccountSummary{
		FirstName: ref.FirstName,
		LastName:  ref.LastName,
		ID:        ref.ID,
		Username:  ref.UsernameAlias,
		DP:        s.media.URL(ref.ProfilePic),
	}
}
