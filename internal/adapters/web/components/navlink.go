package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/VilnaCRM-Org/website-sub001/pkg/link"
)

// LinkConfig describes an in-page navigation link.
type LinkConfig struct {
	Label string
	// Target is a section reference such as "#Advantages".
	Target string
}

// NavLink renders a link to a section of the current page.
func NavLink(cfg LinkConfig) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class := "nav-link"
		if ScreenFrom(ctx).Mobile() {
			class = "nav-link nav-link-drawer"
		}
		return write(w,
			open("a").attr("class", class).attr("href", "#"+link.NormalizeLink(cfg.Target)).end(),
			text(cfg.Label),
			"</a>",
		)
	})
}
