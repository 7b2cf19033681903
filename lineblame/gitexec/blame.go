package gitexec

import (
	"context"
	"path/filepath"

	"github.com/pkg/errors"
)

// Source returns raw git blame --incremental output for a file.
type Source interface {
	Blame(ctx context.Context, path string) ([]byte, error)
}

// GitSource runs git binary to get blame output.
type GitSource struct {
	// GitCommand is the git binary to run. Defaults to git.
	GitCommand string
}

func (s GitSource) Blame(ctx context.Context, path string) ([]byte, error) {
	gitCommand := s.GitCommand
	if gitCommand == "" {
		gitCommand = "git"
	}
	return BlameIncremental(ctx, gitCommand, path)
}

// BlameIncremental runs the following command in the directory containing the file.
// git blame --incremental -- <abs path>
func BlameIncremental(ctx context.Context, gitCommand string, path string) ([]byte, error) {
	loc, err := AbsPath(path)
	if err != nil {
		return nil, err
	}
	args := []string{
		"blame",
		"--incremental",
		"--",
		loc,
	}
	return Exec(ctx, gitCommand, filepath.Dir(loc), args)
}

// AbsPath returns absolute path with symlinks resolved. If symlinks can't be resolved, i.e. file does not exist yet, returns cleaned absolute path.
func AbsPath(path string) (string, error) {
	loc, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, "can't convert path to absolute %v", path)
	}
	res, err := filepath.EvalSymlinks(loc)
	if err != nil {
		return loc, nil
	}
	return res, nil
}
