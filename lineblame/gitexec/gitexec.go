package gitexec

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// FetchError is returned when git command could not be run or exited with non-zero status.
type FetchError struct {
	Dir    string
	Args   []string
	Stderr string
	Err    error
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("failed executing git command %v in %v: %v", strings.Join(e.Args, " "), e.Dir, e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsFetchError checks if err (or its cause) is a *FetchError.
func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}

// Exec runs git command in dir and returns its stdout.
func Exec(ctx context.Context, gitCommand string, dir string, args []string) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	err := ExecIntoWriter(ctx, buf, gitCommand, dir, args)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExecIntoWriter runs git command in dir writing stdout into wr. Stdin is the null device.
func ExecIntoWriter(ctx context.Context, wr io.Writer, gitCommand string, dir string, args []string) error {
	stderr := bytes.NewBuffer(nil)
	c := exec.CommandContext(ctx, gitCommand, args...)
	c.Dir = dir
	c.Stderr = stderr
	c.Stdout = wr
	if err := c.Run(); err != nil {
		return &FetchError{
			Dir:    dir,
			Args:   args,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	return nil
}
