package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/VilnaCRM-Org/website-sub001/pkg/screen"
)

type CardLayout string

const (
	CardSmall CardLayout = "small"
	CardLarge CardLayout = "large"
)

// CardConfig enumerates every option a Card understands.
type CardConfig struct {
	Title    string
	Text     string
	ImageSrc string
	ImageAlt string
	Layout   CardLayout
}

// Large cards collapse to the small layout below the desktop breakpoint.
func cardLayout(requested CardLayout, c screen.Category) CardLayout {
	if requested == "" {
		requested = CardSmall
	}
	if requested == CardLarge && (c.Mobile() || c == screen.MD) {
		return CardSmall
	}
	return requested
}

func Card(cfg CardConfig) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		layout := cardLayout(cfg.Layout, ScreenFrom(ctx))
		heading := "h3"
		if layout == CardLarge {
			heading = "h2"
		}

		parts := []string{open("article").attr("class", classes("card", "card-"+string(layout))).end()}
		if cfg.ImageSrc != "" {
			parts = append(parts, open("img").
				attr("class", "card-image").
				attr("src", cfg.ImageSrc).
				attr("alt", cfg.ImageAlt).
				attr("loading", "lazy").
				end())
		}
		parts = append(parts,
			open(heading).attr("class", "card-title").end(), text(cfg.Title), "</"+heading+">",
			open("p").attr("class", "card-text").end(), text(cfg.Text), "</p>",
			"</article>",
		)
		return write(w, parts...)
	})
}
