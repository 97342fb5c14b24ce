package generate

import "strings"

const (
	TemplateExt  = ".jinja"
	TemplateRoot = "templates/"
)

// OutputPath strips every occurrence of [TemplateExt] from in and then a leading [TemplateRoot].
// Both are plain substring edits, not path-segment edits.
// When neither marker is present the result equals in.
func OutputPath(in string) string {
	out := strings.ReplaceAll(in, TemplateExt, "")

	return strings.TrimPrefix(out, TemplateRoot)
}
