package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

type TooltipPlacement string

const (
	TooltipTop    TooltipPlacement = "top"
	TooltipBottom TooltipPlacement = "bottom"
	TooltipLeft   TooltipPlacement = "left"
	TooltipRight  TooltipPlacement = "right"
)

// TooltipConfig enumerates every option a Tooltip understands.
type TooltipConfig struct {
	ID string
	// Trigger is the visible text the tooltip is attached to.
	Trigger   string
	Title     string
	Body      string
	Placement TooltipPlacement
}

func Tooltip(cfg TooltipConfig) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		placement := cfg.Placement
		if placement == "" {
			placement = TooltipBottom
		}
		// Side placements have no room on phones.
		if ScreenFrom(ctx).Mobile() && (placement == TooltipLeft || placement == TooltipRight) {
			placement = TooltipBottom
		}
		id := cfg.ID
		if id == "" {
			id = "tooltip"
		}

		return write(w,
			open("span").attr("class", "tooltip").end(),
			open("button").
				attr("class", "tooltip-trigger").
				attr("type", "button").
				attr("aria-describedby", id).
				end(),
			text(cfg.Trigger), "</button>",
			open("span").
				attr("id", id).
				attr("class", classes("tooltip-body", "tooltip-"+string(placement))).
				attr("role", "tooltip").
				end(),
			open("strong").end(), text(cfg.Title), "</strong>",
			open("span").end(), text(cfg.Body), "</span>",
			"</span></span>",
		)
	})
}
