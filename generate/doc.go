// Package generate renders a single Jinja-style template file and writes the result next to the template tree.
// A template at "templates/page.html.jinja" is written to "page.html", relative to the template search root.
package generate
