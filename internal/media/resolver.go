package media

import (
	"net/url"
	"strings"
)

// Resolver turns stored media keys into URLs clients can fetch.
// An empty key means no file is attached and resolves to "".
type Resolver interface {
	URL(key string) string
}

type BaseURLResolver struct {
	base string
}

func NewBaseURLResolver(base string) *BaseURLResolver {
	return &BaseURLResolver{base: strings.TrimRight(base, "/")}
}

func (r *BaseURLResolver) URL(key string) string {
	if key == "" {
		return ""
	}
	if u, err := url.Parse(key); err == nil && u.IsAbs() {
		return key
	}

	segments := strings.Split(strings.TrimLeft(key, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return r.base + "/" + strings.Join(segments, "/")
}
