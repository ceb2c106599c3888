package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/VilnaCRM-Org/website-sub001/pkg/screen"
)

type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonWhite     ButtonVariant = "white"
)

type ButtonSize string

const (
	ButtonSmall  ButtonSize = "small"
	ButtonMedium ButtonSize = "medium"
	ButtonLarge  ButtonSize = "large"
)

// ButtonConfig enumerates every option a Button understands.
type ButtonConfig struct {
	Label string
	// Href renders an anchor styled as a button instead of a <button>.
	Href string
	// Type is the <button> type attribute; defaults to "button".
	Type      string
	Name      string
	Variant   ButtonVariant
	Size      ButtonSize
	FullWidth bool
	Disabled  bool
}

// Large buttons shrink to medium on phones.
var buttonSizeByScreen = map[screen.Category]map[ButtonSize]string{
	screen.XS: {ButtonSmall: "btn-sm", ButtonMedium: "btn-sm", ButtonLarge: "btn-md"},
	screen.SM: {ButtonSmall: "btn-sm", ButtonMedium: "btn-md", ButtonLarge: "btn-md"},
	screen.MD: {ButtonSmall: "btn-sm", ButtonMedium: "btn-md", ButtonLarge: "btn-lg"},
	screen.LG: {ButtonSmall: "btn-sm", ButtonMedium: "btn-md", ButtonLarge: "btn-lg"},
	screen.XL: {ButtonSmall: "btn-md", ButtonMedium: "btn-lg", ButtonLarge: "btn-xl"},
}

func Button(cfg ButtonConfig) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		variant := cfg.Variant
		if variant == "" {
			variant = ButtonPrimary
		}
		size := cfg.Size
		if size == "" {
			size = ButtonMedium
		}
		class := classes(
			"btn",
			"btn-"+string(variant),
			buttonSizeByScreen[ScreenFrom(ctx)][size],
			fullWidthClass(cfg.FullWidth || ScreenFrom(ctx) == screen.XS),
		)

		if cfg.Href != "" && !cfg.Disabled {
			return write(w, open("a").attr("class", class).attr("href", cfg.Href).end(), text(cfg.Label), "</a>")
		}
		typ := cfg.Type
		if typ == "" {
			typ = "button"
		}
		return write(w,
			open("button").
				attr("class", class).
				attr("type", typ).
				attrIf(cfg.Name != "", "name", cfg.Name).
				flag(cfg.Disabled, "disabled").
				end(),
			text(cfg.Label),
			"</button>",
		)
	})
}

func fullWidthClass(full bool) string {
	if full {
		return "btn-block"
	}
	return ""
}
