package serializer

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vedran77/foo/internal/domain"
)

func newAccount() *domain.Account {
	return &domain.Account{
		ID:            uuid.New(),
		Email:         "jane@example.com",
		Username:      "jane",
		UsernameAlias: "janie",
		UPRN:          "UPRN-1",
		Token:         "tok",
		Profile: domain.Profile{
			ProfilePic: "dp/jane.png",
			HiddenFrom: []string{"bob", "carol"},
		},
	}
}

func TestAccount_DefaultMode(t *testing.T) {
	s := newTestSerializer()
	a := newAccount()

	m := toMap(t, s.Account(a, AccountContext{}))

	assert.Equal(t, a.ID.String(), m["id"])
	assert.Equal(t, "jane@example.com", m["email"])
	assert.Equal(t, "UPRN-1", m["uprn"])
	assert.Equal(t, "jane", m["username"])
	assert.Equal(t, "tok", m["token"])
	assert.Equal(t, "", m["f_name"])
	assert.Equal(t, "", m["l_name"])
	assert.NotContains(t, m, "password")
	assert.NotContains(t, m, "mood")
	assert.NotContains(t, m, "dobVerified")
	assert.NotContains(t, m, "dp")
}

func TestAccount_LoginMode(t *testing.T) {
	s := newTestSerializer()

	t.Run("without date of birth", func(t *testing.T) {
		a := newAccount()

		m := toMap(t, s.Account(a, AccountContext{Mode: ModeLogin}))

		assert.Equal(t, false, m["dobVerified"])
		assert.NotContains(t, m, "dp")
		assert.Equal(t, float64(0), m["mood"])
		assert.Contains(t, m, "general_last_seen")
		assert.Nil(t, m["general_last_seen"])
		assert.Equal(t, []any{"bob", "carol"}, m["last_seen_hidden"])
	})

	t.Run("with date of birth", func(t *testing.T) {
		a := newAccount()
		dob := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)
		mood := 3
		a.DOB = &dob
		a.Profile.Mood = &mood

		m := toMap(t, s.Account(a, AccountContext{Mode: ModeLogin}))

		assert.Equal(t, true, m["dobVerified"])
		assert.Equal(t, cdn+"/dp/jane.png", m["dp"])
		assert.Equal(t, float64(3), m["mood"])
	})

	t.Run("verified without picture has empty dp", func(t *testing.T) {
		a := newAccount()
		dob := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)
		a.DOB = &dob
		a.Profile.ProfilePic = ""
		a.Profile.HiddenFrom = nil

		m := toMap(t, s.Account(a, AccountContext{Mode: ModeLogin}))

		require.Contains(t, m, "dp")
		assert.Equal(t, "", m["dp"])
		assert.Equal(t, []any{}, m["last_seen_hidden"])
	})
}

func TestPublicAccount(t *testing.T) {
	s := newTestSerializer()
	a := newAccount()
	a.FirstName = "Jane"

	chat := s.PublicAccount(a, AccountContext{Mode: ModeChat})
	assert.Equal(t, "jane", chat.Username)
	assert.Equal(t, "Jane", chat.FirstName)
	assert.Equal(t, cdn+"/dp/jane.png", chat.DP)

	public := s.PublicAccount(a, AccountContext{})
	assert.Equal(t, "janie", public.Username)

	a.Profile.ProfilePic = ""
	assert.Equal(t, "", s.PublicAccount(a, AccountContext{}).DP)
}
