package web

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/VilnaCRM-Org/website-sub001/internal/adapters/web/components"
)

const (
	swaggerUICSS    = "https://unpkg.com/swagger-ui-dist@5/swagger-ui.css"
	swaggerUIBundle = "https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"
)

// htmlWriter writes markup and keeps the first write error.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(parts ...string) {
	for _, p := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, p)
	}
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) render(ctx context.Context, c templ.Component) {
	if h.err != nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// layoutData is what every page shares.
type layoutData struct {
	Locale    string
	Title     string
	Copy      *pageCopy
	Languages []LanguageOption
	Copyright string
	Canonical string
	// Head is extra trusted markup appended to <head>.
	Head string
}

func layout(d layoutData, body func(ctx context.Context, h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		c := d.Copy
		h.raw(`<!DOCTYPE html><html lang="`, templ.EscapeString(d.Locale), `"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>`)
		h.text(d.Title)
		h.raw(`</title><meta name="description" content="`, templ.EscapeString(c.MetaDescription), `">`)
		if d.Canonical != "" {
			h.raw(`<link rel="canonical" href="`, templ.EscapeString(d.Canonical), `">`)
		}
		h.raw(`<link rel="stylesheet" href="/static/css/site.css">`, d.Head, `</head>`,
			`<body class="screen-`, string(components.ScreenFrom(ctx)), `">`)
		header(ctx, h, d)
		h.raw(`<main>`)
		body(ctx, h)
		h.raw(`</main>`)
		footer(h, d)
		h.raw(`</body></html>`)
		return h.err
	})
}

func header(ctx context.Context, h *htmlWriter, d layoutData) {
	c := d.Copy
	h.raw(`<header class="header"><a class="logo" href="/"><img src="/static/img/logo.svg" alt="`,
		templ.EscapeString(c.LogoAlt), `"></a><nav class="nav">`)
	for _, item := range c.Nav {
		h.render(ctx, components.NavLink(components.LinkConfig{Label: item.Label, Target: item.Target}))
	}
	h.raw(`</nav><div class="language-switcher" aria-label="`, templ.EscapeString(c.LanguageLabel), `">`)
	for _, opt := range d.Languages {
		class := "lang-option"
		if opt.Active {
			class += " active"
		}
		h.raw(`<a class="`, class, `" hreflang="`, templ.EscapeString(opt.Locale),
			`" href="`, templ.EscapeString(opt.URL), `">`)
		h.text(opt.Label)
		h.raw(`</a>`)
	}
	h.raw(`</div><div class="header-actions">`)
	h.render(ctx, components.Button(components.ButtonConfig{
		Label: c.LogIn, Href: "/#signup", Variant: components.ButtonWhite, Size: components.ButtonSmall,
	}))
	h.render(ctx, components.Button(components.ButtonConfig{
		Label: c.TryItOut, Href: "/#signup", Size: components.ButtonSmall,
	}))
	h.raw(`</div></header>`)
}

func footer(h *htmlWriter, d layoutData) {
	c := d.Copy
	h.raw(`<footer id="contacts" class="footer"><p class="copyright">`)
	h.text(d.Copyright)
	h.raw(`</p><nav class="footer-links"><a href="/swagger">`)
	h.text(c.SwaggerTitle)
	h.raw(`</a><span>`)
	h.text(c.FooterPrivacy)
	h.raw(`</span><span>`)
	h.text(c.FooterUsage)
	h.raw(`</span></nav></footer>`)
}

// signupView is the state of the sign-up form on the landing page.
type signupView struct {
	Initials string
	Email    string
	Privacy  bool
	// Errors maps a field name to its translated message.
	Errors    map[string]string
	FormError string
	Success   string
}

func landingPage(d layoutData, f signupView) templ.Component {
	return layout(d, func(ctx context.Context, h *htmlWriter) {
		c := d.Copy

		h.raw(`<section id="about" class="hero"><h1>`)
		h.text(c.HeroTitle)
		h.raw(`</h1><p>`)
		h.text(c.HeroText)
		h.raw(`</p>`)
		h.render(ctx, components.Button(components.ButtonConfig{
			Label: c.HeroButton, Href: "#signup", Size: components.ButtonLarge,
		}))
		h.raw(`</section>`)

		h.raw(`<section id="advantages" class="why-us"><h2>`)
		h.text(c.WhyUsHeading)
		h.raw(`</h2><p>`)
		h.text(c.WhyUsSubtitle)
		h.raw(`</p><div id="integration" class="why-us-cards">`)
		for i, card := range c.Cards {
			cardLayout := components.CardSmall
			if i == 0 {
				cardLayout = components.CardLarge
			}
			h.render(ctx, components.Card(components.CardConfig{
				Title: card.Title, Text: card.Text, ImageSrc: card.Image, Layout: cardLayout,
			}))
		}
		h.raw(`</div></section>`)

		h.raw(`<section id="signup" class="sign-up"><h2>`)
		h.text(c.SignUpTitle)
		h.raw(`</h2><p>`)
		h.text(c.SignUpSubtitle)
		h.raw(`</p>`)
		if f.Success != "" {
			h.raw(`<p class="form-success" role="status">`)
			h.text(f.Success)
			h.raw(`</p>`)
		}
		if f.FormError != "" {
			h.raw(`<p class="form-error" role="alert">`)
			h.text(f.FormError)
			h.raw(`</p>`)
		}
		h.raw(`<form method="post" action="/signup#signup" novalidate>`)
		h.render(ctx, components.TextInput(components.InputConfig{
			Name: fieldInitials, Label: c.NameInput.Label, Placeholder: c.NameInput.Placeholder,
			Value: f.Initials, Error: f.Errors[fieldInitials], Required: true, Autocomplete: "name", MaxLength: 255,
		}))
		h.render(ctx, components.TextInput(components.InputConfig{
			Name: fieldEmail, Type: "email", Label: c.EmailInput.Label, Placeholder: c.EmailInput.Placeholder,
			Value: f.Email, Error: f.Errors[fieldEmail], Required: true, Autocomplete: "email", MaxLength: 255,
		}))
		h.raw(`<div class="password-field">`)
		h.render(ctx, components.TextInput(components.InputConfig{
			Name: fieldPassword, Type: "password", Label: c.PasswordInput.Label, Placeholder: c.PasswordInput.Placeholder,
			Error: f.Errors[fieldPassword], Required: true, Autocomplete: "new-password", MaxLength: passwordMaxLength,
		}))
		h.render(ctx, components.Tooltip(components.TooltipConfig{
			ID: "password-tooltip", Trigger: "?", Title: c.PasswordTipHead, Body: c.PasswordTipBody,
			Placement: components.TooltipRight,
		}))
		h.raw(`</div>`)
		h.render(ctx, components.Checkbox(components.CheckboxConfig{
			Name: fieldPrivacy, Label: c.Privacy, Checked: f.Privacy, Error: f.Errors[fieldPrivacy],
		}))
		h.render(ctx, components.Button(components.ButtonConfig{
			Label: c.SubmitButton, Type: "submit", Size: components.ButtonLarge,
		}))
		h.raw(`</form></section>`)
	})
}

func swaggerPage(d layoutData, schemaURL string, available bool) templ.Component {
	if available {
		d.Head = `<link rel="stylesheet" href="` + swaggerUICSS + `">`
	}
	return layout(d, func(ctx context.Context, h *htmlWriter) {
		c := d.Copy
		h.raw(`<section class="swagger"><h1>`)
		h.text(c.SwaggerHeading)
		h.raw(`</h1>`)
		if !available {
			h.raw(`<p class="swagger-missing">`)
			h.text(c.SwaggerMissing)
			h.raw(`</p>`)
		} else {
			h.raw(`<div id="swagger-ui"></div>`,
				`<script src="`, swaggerUIBundle, `"></script>`,
				`<script>window.onload=function(){SwaggerUIBundle({url:`, strconv.Quote(schemaURL),
				`,dom_id:"#swagger-ui"})}</script>`)
		}
		h.render(ctx, components.Button(components.ButtonConfig{
			Label: c.SwaggerBack, Href: "/", Variant: components.ButtonSecondary,
		}))
		h.raw(`</section>`)
	})
}

func notFoundPage(d layoutData) templ.Component {
	return layout(d, func(ctx context.Context, h *htmlWriter) {
		c := d.Copy
		h.raw(`<section class="not-found"><h1>`)
		h.text(c.NotFoundTitle)
		h.raw(`</h1><p>`)
		h.text(c.NotFoundText)
		h.raw(`</p>`)
		h.render(ctx, components.Button(components.ButtonConfig{
			Label: c.NotFoundBack, Href: "/",
		}))
		h.raw(`</section>`)
	})
}
