package generate

import (
	"fmt"
	"os"
)

type (
	Cmd struct {
		rootDir string
		File    string `arg:"" required:"" name:"file" help:"file to generate"`
	}
)

func (c *Cmd) AfterApply() (err error) {
	c.rootDir, err = os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current working directory: %w", err)
	}

	return nil
}

// Run renders c.File and writes the text to [OutputPath] of it.
// Nothing is written when rendering fails.
func (c *Cmd) Run() (err error) {
	engine, err := NewEngine(c.rootDir)
	if err != nil {
		return err
	}

	text, err := engine.Render(c.File)
	if err != nil {
		return err
	}

	return WriteToFile(c.rootDir, OutputPath(c.File), writeString(text))
}
