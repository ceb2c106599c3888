package web

import (
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	passwordMinLength = 8
	passwordMaxLength = 64
	maxFormBytes      = 64 << 10
)

// Form field names.
const (
	fieldInitials = "initials"
	fieldEmail    = "email"
	fieldPassword = "password"
	fieldPrivacy  = "privacy"
)

// signupForm is the submitted sign-up form. Password is kept as typed.
type signupForm struct {
	Initials string
	Email    string
	Password string
	Privacy  bool
}

// validate returns, per invalid field, the validation message key
// (under sign_up.validation). At most one problem is reported per field.
func (f signupForm) validate() map[string]string {
	problems := make(map[string]string)

	if strings.TrimSpace(f.Initials) == "" {
		problems[fieldInitials] = "initials_required"
	}

	switch email := strings.TrimSpace(f.Email); {
	case email == "":
		problems[fieldEmail] = "email_required"
	case !validEmail(email):
		problems[fieldEmail] = "email_invalid"
	}

	if key := passwordProblem(f.Password); key != "" {
		problems[fieldPassword] = key
	}

	if !f.Privacy {
		problems[fieldPrivacy] = "privacy_required"
	}
	return problems
}

// validEmail accepts a bare addr-spec with a dotted domain.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || addr.Name != "" {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	domainPart := s[at+1:]
	return strings.Contains(domainPart, ".") &&
		!strings.HasPrefix(domainPart, ".") &&
		!strings.HasSuffix(domainPart, ".")
}

func passwordProblem(p string) string {
	if p == "" {
		return "password_required"
	}
	if n := utf8.RuneCountInString(p); n < passwordMinLength || n > passwordMaxLength {
		return "password_length"
	}
	if !strings.ContainsFunc(p, unicode.IsDigit) {
		return "password_number"
	}
	if !strings.ContainsFunc(p, unicode.IsUpper) {
		return "password_uppercase"
	}
	return ""
}
