package testutil

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestRepo is a throwaway git repository for tests.
type TestRepo struct {
	t   testing.TB
	Dir string
}

// NewRepo creates an empty git repo in a temp dir. Skips the test if git is not installed.
func NewRepo(t testing.TB) *TestRepo {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not installed")
	}
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	s := &TestRepo{t: t, Dir: dir}
	s.git(nil, "init", "-q")
	return s
}

// Path returns absolute location of file in repo.
func (s *TestRepo) Path(name string) string {
	return filepath.Join(s.Dir, name)
}

// WriteFile writes file in repo, creating parent dirs.
func (s *TestRepo) WriteFile(name, content string) {
	s.t.Helper()
	loc := s.Path(name)
	if err := os.MkdirAll(filepath.Dir(loc), 0777); err != nil {
		s.t.Fatal(err)
	}
	if err := os.WriteFile(loc, []byte(content), 0666); err != nil {
		s.t.Fatal(err)
	}
}

// Commit stages all changes and commits them with passed author and unix time. Returns commit hash.
func (s *TestRepo) Commit(author, message string, unix int64) string {
	s.t.Helper()
	date := fmt.Sprintf("@%d +0000", unix)
	email := strings.ToLower(strings.ReplaceAll(author, " ", ".")) + "@example.com"
	env := []string{
		"GIT_AUTHOR_NAME=" + author,
		"GIT_AUTHOR_EMAIL=" + email,
		"GIT_AUTHOR_DATE=" + date,
		"GIT_COMMITTER_NAME=" + author,
		"GIT_COMMITTER_EMAIL=" + email,
		"GIT_COMMITTER_DATE=" + date,
	}
	s.git(nil, "add", "-A")
	s.git(env, "-c", "commit.gpgsign=false", "commit", "-q", "-m", message)
	return strings.TrimSpace(s.git(nil, "rev-parse", "HEAD"))
}

func (s *TestRepo) git(env []string, args ...string) string {
	s.t.Helper()
	out := bytes.NewBuffer(nil)
	stderr := bytes.NewBuffer(nil)
	c := exec.Command("git", args...)
	c.Dir = s.Dir
	c.Env = append(os.Environ(), "GIT_CONFIG_NOSYSTEM=1", "GIT_CONFIG_GLOBAL="+os.DevNull)
	c.Env = append(c.Env, env...)
	c.Stdout = out
	c.Stderr = stderr
	if err := c.Run(); err != nil {
		s.t.Fatalf("git %v failed: %v %v", strings.Join(args, " "), err, stderr.String())
	}
	return out.String()
}
