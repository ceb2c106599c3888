// Package screen maps viewport widths to the breakpoint categories the
// website's styles are keyed by.
package screen

import (
	"net/http"
	"strconv"
	"strings"
)

// Category is a screen-size class.
type Category string

const (
	XS Category = "xs"
	SM Category = "sm"
	MD Category = "md"
	LG Category = "lg"
	XL Category = "xl"
)

// Default is assumed when the client reports no viewport width.
const Default = LG

// Breakpoint is the minimum viewport width, in CSS pixels, of a category.
type Breakpoint struct {
	Category Category
	MinWidth int
}

// Breakpoints lists the categories in ascending width order.
var Breakpoints = []Breakpoint{
	{Category: XS, MinWidth: 0},
	{Category: SM, MinWidth: 640},
	{Category: MD, MinWidth: 768},
	{Category: LG, MinWidth: 1024},
	{Category: XL, MinWidth: 1440},
}

// FromWidth returns the category a viewport width falls into.
func FromWidth(width int) Category {
	c := XS
	for _, bp := range Breakpoints {
		if width >= bp.MinWidth {
			c = bp.Category
		}
	}
	return c
}

// Mobile reports whether c is narrower than the tablet breakpoint.
func (c Category) Mobile() bool {
	return c == XS || c == SM
}

// Width request hints, in lookup order. Sec-CH-Viewport-Width is sent by
// browsers that were asked for it via Accept-CH; vw is a query fallback.
var widthHeaders = []string{"Sec-CH-Viewport-Width", "Viewport-Width"}

const widthParam = "vw"

// FromRequest reads the viewport width hint from r.
func FromRequest(r *http.Request) Category {
	if r == nil {
		return Default
	}
	for _, h := range widthHeaders {
		if c, ok := parseWidth(r.Header.Get(h)); ok {
			return c
		}
	}
	if c, ok := parseWidth(r.URL.Query().Get(widthParam)); ok {
		return c
	}
	return Default
}

func parseWidth(value string) (Category, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	width, err := strconv.Atoi(value)
	if err != nil || width < 0 {
		return "", false
	}
	return FromWidth(width), true
}
