// Package serializer shapes domain records into the JSON payloads the API
// returns. Every method is a pure function of its arguments and the media
// resolver; nothing here touches storage.
package serializer

import (
	"github.com/vedran77/foo/internal/media"
)

// Mode selects which variant of an account payload is produced.
type Mode string

const (
	ModeDefault Mode = ""
	ModeLogin   Mode = "login"
	ModeChat    Mode = "chat"
)

// ParseMode maps a query value onto a Mode. Unknown values fall back to
// ModeDefault.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case ModeLogin, ModeChat:
		return Mode(s)
	}
	return ModeDefault
}

const timeLayout = "2006-01-02 15:04:05"

type Serializer struct {
	media media.Resolver
}

func New(resolver media.Resolver) *Serializer {
	return &Serializer{media: resolver}
}
