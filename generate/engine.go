package generate

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/flosch/pongo2/v6"
)

type (
	Engine struct {
		set *pongo2.TemplateSet
	}
)

var (
	ErrRender = errors.New("template render failure")
)

// Non-nil returned error wraps [ErrRender].
func NewEngine(rootDir string) (*Engine, error) {
	info, err := os.Stat(rootDir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to use %q as template search root: %s", ErrRender, rootDir, err.Error())
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: template search root %q is not a directory", ErrRender, rootDir)
	}

	// Output is written verbatim, there is no HTML context to escape for.
	pongo2.SetAutoescape(false)

	// os.DirFS refuses names that leave the root.
	loader := pongo2.NewFSLoader(os.DirFS(rootDir))

	return &Engine{set: pongo2.NewSet("generate", loader)}, nil
}

// Render loads name relative to the search root and executes it with an empty context.
// Names that climb out of the root with ".." fail to load.
// Non-nil returned error wraps [ErrRender].
func (e *Engine) Render(name string) (text string, err error) {
	tmplt, err := e.set.FromFile(templateName(name))
	if err != nil {
		return "", fmt.Errorf("%w: failed to load template %q: %s", ErrRender, name, err.Error())
	}

	text, err = tmplt.Execute(pongo2.Context{})
	if err != nil {
		return "", fmt.Errorf("%w: failed to render template %q: %s", ErrRender, name, err.Error())
	}

	return text, nil
}

// templateName drops empty and "." segments, so "./a//b" and "/a/b" both name "a/b".
// ".." segments are kept for the loader to reject.
func templateName(name string) string {
	pieces := strings.Split(name, "/")
	kept := pieces[:0]

	for _, piece := range pieces {
		if piece != "" && piece != "." {
			kept = append(kept, piece)
		}
	}

	return strings.Join(kept, "/")
}
