package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputPath(t *testing.T) {
	var tests = []struct {
		in       string
		expected string
	}{
		{"templates/page.html.jinja", "page.html"},
		{"templates/nested/a.jinja.jinja", "nested/a"},
		{"other/page.jinja", "other/page"},
		{"templates/report", "report"},
		{"report", "report"},
		{"a.jinjax/templates/b.jinja", "ax/templates/b"},
		{"./templates/page.jinja", "./templates/page"},
		{"templates.jinja/x", "x"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, OutputPath(tt.in), "output path of %q", tt.in)
	}
}

func TestOutputPathIsStable(t *testing.T) {
	in := "templates/nested/a.jinja.jinja"

	assert.Equal(t, OutputPath(in), OutputPath(in))
}
