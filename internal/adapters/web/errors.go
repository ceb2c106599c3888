package web

import (
	"github.com/VilnaCRM-Org/website-sub001/internal/domain"
	"github.com/VilnaCRM-Org/website-sub001/internal/infrastructure/i18n"
)

// errorMessage maps a domain error to its translated user-facing message:
// errors.<code> when the locale has one, errors.default otherwise.
func errorMessage(l *i18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if code := domain.Code(err); code != "" {
		if msg, lerr := l.Lookup("errors." + code); lerr == nil {
			return msg
		}
	}
	return l.T("errors.default", nil)
}
