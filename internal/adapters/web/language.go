package web

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/VilnaCRM-Org/website-sub001/internal/domain"
	"github.com/VilnaCRM-Org/website-sub001/internal/infrastructure/i18n"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "lang"
)

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Locale string
	Label  string
	URL    string
	Active bool
}

// LanguageResolver picks the locale a request is served in: the lang query
// parameter, then the lang cookie, then Accept-Language, then the main
// language.
type LanguageResolver struct {
	main    string
	locales []string
	matcher language.Matcher
}

func NewLanguageResolver(catalog *i18n.Catalog, main string) (*LanguageResolver, error) {
	if !catalog.HasLocale(main) {
		return nil, fmt.Errorf("%w: main language %q", domain.ErrUnknownLocale, main)
	}
	// The matcher falls back to its first tag, so the main language leads.
	locales := []string{main}
	for _, l := range catalog.Locales() {
		if l != main {
			locales = append(locales, l)
		}
	}
	tags := make([]language.Tag, 0, len(locales))
	for _, l := range locales {
		tags = append(tags, language.Make(l))
	}
	return &LanguageResolver{
		main:    main,
		locales: locales,
		matcher: language.NewMatcher(tags),
	}, nil
}

// Locales returns the supported locales, main language first.
func (lr *LanguageResolver) Locales() []string {
	return append([]string(nil), lr.locales...)
}

// Resolve returns the locale for r. persist reports whether the choice came
// from the query parameter and should be stored in the cookie.
func (lr *LanguageResolver) Resolve(r *http.Request) (locale string, persist bool) {
	if r == nil {
		return lr.main, false
	}
	if v := strings.TrimSpace(r.URL.Query().Get(LangParam)); v != "" {
		if l, ok := lr.supported(v); ok {
			return l, true
		}
	}
	if c, err := r.Cookie(LangCookieName); err == nil {
		if l, ok := lr.supported(c.Value); ok {
			return l, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			if _, idx, conf := lr.matcher.Match(tags...); conf != language.No && idx < len(lr.locales) {
				return lr.locales[idx], false
			}
		}
	}
	return lr.main, false
}

// supported maps a raw tag onto a supported locale, exactly or by base
// language ("en-GB" -> "en").
func (lr *LanguageResolver) supported(value string) (string, bool) {
	value = strings.TrimSpace(value)
	for _, l := range lr.locales {
		if strings.EqualFold(l, value) {
			return l, true
		}
	}
	tag, err := language.Parse(value)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	for _, l := range lr.locales {
		if lb, _ := language.Make(l).Base(); lb == base {
			return l, true
		}
	}
	return "", false
}

// SetLanguageCookie persists the selected locale on the response.
func SetLanguageCookie(w http.ResponseWriter, locale string) {
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    locale,
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// LanguageURL returns path with the lang parameter set to locale, keeping
// the rest of the query.
func LanguageURL(path, rawQuery, locale string) string {
	if strings.TrimSpace(path) == "" {
		path = "/"
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set(LangParam, locale)
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}

func languageOptions(r *http.Request, locales []string, active string, labels map[string]string) []LanguageOption {
	out := make([]LanguageOption, 0, len(locales))
	for _, l := range locales {
		label := labels[l]
		if label == "" {
			label = l
		}
		out = append(out, LanguageOption{
			Locale: l,
			Label:  label,
			URL:    LanguageURL(r.URL.Path, r.URL.RawQuery, l),
			Active: l == active,
		})
	}
	return out
}
