package validator

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"github.com/vedran77/foo/internal/domain"
)

const (
	minPasswordLength   = 8
	maxSimilarity       = 0.7
	minSimilarityLength = 3
)

var commonPasswords = map[string]struct{}{
	"password": {}, "password1": {}, "password123": {}, "12345678": {},
	"123456789": {}, "1234567890": {}, "qwerty123": {}, "qwertyuiop": {},
	"iloveyou": {}, "sunshine": {}, "princess": {}, "football": {},
	"baseball": {}, "welcome1": {}, "letmein1": {}, "trustno1": {},
	"superman": {}, "whatever": {}, "starwars": {}, "11111111": {},
	"abc12345": {}, "passw0rd": {}, "changeme": {}, "monkey123": {},
}

// ValidatePassword applies the password policy in order and reports the
// first rule the password breaks. account supplies the attributes the
// password must not resemble; it does not need to be persisted.
func ValidatePassword(password string, account *domain.Account) ValidationErrors {
	errs := make(ValidationErrors)

	switch {
	case len([]rune(password)) < minPasswordLength:
		errs.Add("password", "This password is too short. It must contain at least 8 characters.")
	case account != nil && tooSimilar(password, account):
		errs.Add("password", "The password is too similar to the account details.")
	case isCommon(password):
		errs.Add("password", "This password is too common.")
	case isNumeric(password):
		errs.Add("password", "This password is entirely numeric.")
	}

	return errs
}

func tooSimilar(password string, account *domain.Account) bool {
	pw := strings.ToLower(password)
	for _, attr := range similarityAttributes(account) {
		if len(attr) < minSimilarityLength {
			continue
		}
		if similarity(pw, attr) >= maxSimilarity {
			return true
		}
	}
	return false
}

func similarityAttributes(account *domain.Account) []string {
	attrs := []string{strings.ToLower(account.Username)}
	email := strings.ToLower(account.Email)
	attrs = append(attrs, email)
	if local, _, ok := strings.Cut(email, "@"); ok {
		attrs = append(attrs, local)
	}
	if account.FirstName != "" {
		attrs = append(attrs, strings.ToLower(account.FirstName))
	}
	if account.LastName != "" {
		attrs = append(attrs, strings.ToLower(account.LastName))
	}
	return attrs
}

// similarity is 1 for identical strings and 0 for completely different ones.
func similarity(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}

func isCommon(password string) bool {
	_, ok := commonPasswords[strings.ToLower(strings.TrimSpace(password))]
	return ok
}

func isNumeric(password string) bool {
	for _, ch := range password {
		if !unicode.IsDigit(ch) {
			return false
		}
	}
	return true
}
