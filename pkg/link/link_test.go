package link

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLink(t *testing.T) {
	tests := map[string]string{
		"#test":     "test",
		"##test":    "#test",
		"":          "",
		"#":         "",
		"#Contacts": "contacts",
		"About":     "about",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeLink(in), in)
	}
}
