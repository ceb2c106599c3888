package components

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// InputConfig enumerates every option a TextInput understands.
type InputConfig struct {
	ID          string
	Name        string
	Type        string
	Label       string
	Placeholder string
	Value       string
	// Error switches the input into its error state and is shown below it.
	Error        string
	Required     bool
	Autocomplete string
	MaxLength    int
}

func TextInput(cfg InputConfig) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		typ := cfg.Type
		if typ == "" {
			typ = "text"
		}
		id := cfg.ID
		if id == "" {
			id = cfg.Name
		}
		hasError := cfg.Error != ""
		size := "field-md"
		if ScreenFrom(ctx).Mobile() {
			size = "field-sm"
		}
		errorClass := ""
		if hasError {
			errorClass = "field-error"
		}

		parts := []string{
			open("div").attr("class", classes("field", size, errorClass)).end(),
			open("label").attr("for", id).end(), text(cfg.Label), "</label>",
			open("input").
				attr("id", id).
				attr("name", cfg.Name).
				attr("type", typ).
				attrIf(cfg.Placeholder != "", "placeholder", cfg.Placeholder).
				attrIf(cfg.Value != "", "value", cfg.Value).
				attrIf(cfg.Autocomplete != "", "autocomplete", cfg.Autocomplete).
				attrIf(cfg.MaxLength > 0, "maxlength", strconv.Itoa(cfg.MaxLength)).
				flag(cfg.Required, "required").
				attrIf(hasError, "aria-invalid", "true").
				attrIf(hasError, "aria-describedby", id+"-error").
				end(),
		}
		if hasError {
			parts = append(parts, open("p").attr("id", id+"-error").attr("class", "field-message").attr("role", "alert").end(), text(cfg.Error), "</p>")
		}
		parts = append(parts, "</div>")
		return write(w, parts...)
	})
}
