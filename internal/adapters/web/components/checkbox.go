package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// CheckboxConfig enumerates every option a Checkbox understands.
type CheckboxConfig struct {
	ID       string
	Name     string
	Label    string
	Checked  bool
	Error    string
	Disabled bool
}

func Checkbox(cfg CheckboxConfig) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		id := cfg.ID
		if id == "" {
			id = cfg.Name
		}
		hasError := cfg.Error != ""
		errorClass := ""
		if hasError {
			errorClass = "checkbox-error"
		}
		size := "checkbox-md"
		if ScreenFrom(ctx).Mobile() {
			size = "checkbox-sm"
		}

		parts := []string{
			open("div").attr("class", classes("checkbox", size, errorClass)).end(),
			open("input").
				attr("id", id).
				attr("name", cfg.Name).
				attr("type", "checkbox").
				attr("value", "on").
				flag(cfg.Checked, "checked").
				flag(cfg.Disabled, "disabled").
				attrIf(hasError, "aria-invalid", "true").
				end(),
			open("label").attr("for", id).end(), text(cfg.Label), "</label>",
		}
		if hasError {
			parts = append(parts, open("p").attr("class", "field-message").attr("role", "alert").end(), text(cfg.Error), "</p>")
		}
		parts = append(parts, "</div>")
		return write(w, parts...)
	})
}
