package web

import (
	"fmt"

	"github.com/VilnaCRM-Org/website-sub001/internal/infrastructure/i18n"
)

type navItem struct {
	Label  string
	Target string
}

type featureCard struct {
	Title string
	Text  string
	Image string
}

type fieldCopy struct {
	Label       string
	Placeholder string
}

// pageCopy is every string the pages print for one locale. It is resolved
// once at startup so a missing key stops the server instead of a page.
type pageCopy struct {
	MetaTitle       string
	MetaDescription string
	LanguageLabel   string
	LanguageNames   map[string]string

	LogoAlt  string
	Nav      []navItem
	LogIn    string
	TryItOut string

	HeroTitle  string
	HeroText   string
	HeroButton string

	WhyUsHeading  string
	WhyUsSubtitle string
	Cards         []featureCard

	SignUpTitle     string
	SignUpSubtitle  string
	NameInput       fieldCopy
	EmailInput      fieldCopy
	PasswordInput   fieldCopy
	PasswordTipHead string
	PasswordTipBody string
	Privacy         string
	SubmitButton    string
	Validation      map[string]string

	FooterPrivacy string
	FooterUsage   string

	NotFoundTitle string
	NotFoundText  string
	NotFoundBack  string

	SwaggerTitle   string
	SwaggerHeading string
	SwaggerBack    string
	SwaggerMissing string
}

// Keys rendered with template data; checked for presence only.
var templatedKeys = []string{"footer.copyright", "sign_up.form.success"}

var validationKeys = []string{
	"initials_required",
	"email_required",
	"email_invalid",
	"password_required",
	"password_length",
	"password_number",
	"password_uppercase",
	"privacy_required",
}

// copyReader collects lookups and keeps the first failure.
type copyReader struct {
	l   *i18n.Localizer
	err error
}

func (c *copyReader) get(keyPath string) string {
	if c.err != nil {
		return ""
	}
	v, err := c.l.Lookup(keyPath)
	if err != nil {
		c.err = err
	}
	return v
}

func loadPageCopy(l *i18n.Localizer, locales []string) (*pageCopy, error) {
	r := &copyReader{l: l}
	c := &pageCopy{
		MetaTitle:       r.get("meta.title"),
		MetaDescription: r.get("meta.description"),
		LanguageLabel:   r.get("language.label"),
		LanguageNames:   make(map[string]string, len(locales)),

		LogoAlt: r.get("header.logo_alt"),
		Nav: []navItem{
			{Label: r.get("header.links.about"), Target: "#About"},
			{Label: r.get("header.links.advantages"), Target: "#Advantages"},
			{Label: r.get("header.links.integration"), Target: "#Integration"},
			{Label: r.get("header.links.contacts"), Target: "#Contacts"},
		},
		LogIn:    r.get("header.actions.log_in"),
		TryItOut: r.get("header.actions.try_it_out"),

		HeroTitle:  r.get("hero.title"),
		HeroText:   r.get("hero.text"),
		HeroButton: r.get("hero.button"),

		WhyUsHeading:  r.get("why_us.heading"),
		WhyUsSubtitle: r.get("why_us.subtitle"),

		SignUpTitle:     r.get("sign_up.title"),
		SignUpSubtitle:  r.get("sign_up.subtitle"),
		NameInput:       fieldCopy{Label: r.get("sign_up.form.name_input.label"), Placeholder: r.get("sign_up.form.name_input.placeholder")},
		EmailInput:      fieldCopy{Label: r.get("sign_up.form.email_input.label"), Placeholder: r.get("sign_up.form.email_input.placeholder")},
		PasswordInput:   fieldCopy{Label: r.get("sign_up.form.password_input.label"), Placeholder: r.get("sign_up.form.password_input.placeholder")},
		PasswordTipHead: r.get("sign_up.form.password_tooltip.title"),
		PasswordTipBody: r.get("sign_up.form.password_tooltip.body"),
		Privacy:         r.get("sign_up.form.privacy"),
		SubmitButton:    r.get("sign_up.form.button"),
		Validation:      make(map[string]string, len(validationKeys)),

		FooterPrivacy: r.get("footer.privacy"),
		FooterUsage:   r.get("footer.usage"),

		NotFoundTitle: r.get("not_found.title"),
		NotFoundText:  r.get("not_found.text"),
		NotFoundBack:  r.get("not_found.back"),

		SwaggerTitle:   r.get("swagger.title"),
		SwaggerHeading: r.get("swagger.heading"),
		SwaggerBack:    r.get("swagger.back"),
		SwaggerMissing: r.get("swagger.schema_missing"),
	}
	for _, name := range []string{"open_source", "integrations", "templates"} {
		c.Cards = append(c.Cards, featureCard{
			Title: r.get("why_us.cards." + name + ".title"),
			Text:  r.get("why_us.cards." + name + ".text"),
			Image: "/static/img/" + name + ".svg",
		})
	}
	for _, key := range validationKeys {
		c.Validation[key] = r.get("sign_up.validation." + key)
	}
	for _, l := range locales {
		c.LanguageNames[l] = r.get("language." + l)
	}
	for _, key := range templatedKeys {
		r.get(key)
	}
	if r.err != nil {
		return nil, fmt.Errorf("page copy for %s: %w", l.Locale(), r.err)
	}
	return c, nil
}
