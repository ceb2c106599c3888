package web

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignupFormValidate(t *testing.T) {
	valid := signupForm{Initials: "AB", Email: "a@b.com", Password: "Secret123", Privacy: true}

	tests := []struct {
		name string
		edit func(f *signupForm)
		want map[string]string
	}{
		{name: "valid", edit: func(*signupForm) {}, want: map[string]string{}},
		{name: "blank initials", edit: func(f *signupForm) { f.Initials = "  " }, want: map[string]string{fieldInitials: "initials_required"}},
		{name: "missing email", edit: func(f *signupForm) { f.Email = "" }, want: map[string]string{fieldEmail: "email_required"}},
		{name: "email without at", edit: func(f *signupForm) { f.Email = "ab.com" }, want: map[string]string{fieldEmail: "email_invalid"}},
		{name: "email without dotted domain", edit: func(f *signupForm) { f.Email = "a@b" }, want: map[string]string{fieldEmail: "email_invalid"}},
		{name: "email with display name", edit: func(f *signupForm) { f.Email = "A <a@b.com>" }, want: map[string]string{fieldEmail: "email_invalid"}},
		{name: "missing password", edit: func(f *signupForm) { f.Password = "" }, want: map[string]string{fieldPassword: "password_required"}},
		{name: "short password", edit: func(f *signupForm) { f.Password = "Sec1" }, want: map[string]string{fieldPassword: "password_length"}},
		{name: "long password", edit: func(f *signupForm) { f.Password = "S1" + strings.Repeat("a", 63) }, want: map[string]string{fieldPassword: "password_length"}},
		{name: "password without digit", edit: func(f *signupForm) { f.Password = "SecretPass" }, want: map[string]string{fieldPassword: "password_number"}},
		{name: "password without uppercase", edit: func(f *signupForm) { f.Password = "secret123" }, want: map[string]string{fieldPassword: "password_uppercase"}},
		{name: "privacy unchecked", edit: func(f *signupForm) { f.Privacy = false }, want: map[string]string{fieldPrivacy: "privacy_required"}},
		{
			name: "everything missing",
			edit: func(f *signupForm) { *f = signupForm{} },
			want: map[string]string{
				fieldInitials: "initials_required",
				fieldEmail:    "email_required",
				fieldPassword: "password_required",
				fieldPrivacy:  "privacy_required",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.edit(&f)
			assert.Equal(t, tt.want, f.validate())
		})
	}
}

func TestPasswordBoundaries(t *testing.T) {
	assert.Empty(t, passwordProblem("Abcdef12"))
	assert.Empty(t, passwordProblem("A1"+strings.Repeat("b", 62)))
	assert.Empty(t, passwordProblem("Пароль12"), "non-ASCII letters count once each")
}
