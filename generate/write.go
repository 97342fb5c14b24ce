package generate

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type (
	WriteHook func(io.Writer) error
)

var (
	ErrWrite = errors.New("output write failure")
)

// WriteToFile creates or truncates name under dir and hands the file to hook.
// The file is closed on every path. An interrupted write leaves a truncated file behind.
// Non-nil returned error wraps [ErrWrite].
func WriteToFile(dir, name string, hook WriteHook) (err error) {
	fd, err := os.Create(filepath.Clean(filepath.Join(dir, name)))
	if err != nil {
		return fmt.Errorf("%w: failed to create %q file: %s", ErrWrite, name, err.Error())
	}

	defer func() {
		if err1 := fd.Close(); err1 != nil && err == nil {
			err = fmt.Errorf("%w: failed to close %q after writing: %s", ErrWrite, name, err1.Error())
		}
	}()

	err = hook(fd)
	if err != nil {
		return fmt.Errorf("%w: failed to write to %q: %s", ErrWrite, name, err.Error())
	}

	return nil
}

func writeString(text string) WriteHook {
	return func(fd io.Writer) error {
		_, err := io.WriteString(fd, text)

		return err
	}
}
