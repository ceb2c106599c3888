package components

import (
	"io"
	"strings"

	"github.com/a-h/templ"
)

// tag accumulates one element's opening tag.
type tag struct {
	b strings.Builder
}

func open(name string) *tag {
	t := &tag{}
	t.b.WriteString("<")
	t.b.WriteString(name)
	return t
}

func (t *tag) attr(name, value string) *tag {
	t.b.WriteString(" ")
	t.b.WriteString(name)
	t.b.WriteString(`="`)
	t.b.WriteString(templ.EscapeString(value))
	t.b.WriteString(`"`)
	return t
}

func (t *tag) attrIf(cond bool, name, value string) *tag {
	if cond {
		t.attr(name, value)
	}
	return t
}

func (t *tag) flag(cond bool, name string) *tag {
	if cond {
		t.b.WriteString(" ")
		t.b.WriteString(name)
	}
	return t
}

func (t *tag) end() string {
	t.b.WriteString(">")
	return t.b.String()
}

func text(s string) string {
	return templ.EscapeString(s)
}

func classes(names ...string) string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n != "" {
			out = append(out, n)
		}
	}
	return strings.Join(out, " ")
}

func write(w io.Writer, parts ...string) error {
	for _, p := range parts {
		if _, err := io.WriteString(w, p); err != nil {
			return err
		}
	}
	return nil
}
