package cmd

import (
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/pinpt/lineblame/lineblame/gitexec"
	"github.com/pinpt/lineblame/lineblame/incblame"
	"github.com/pinpt/lineblame/lineblame/session"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type fakeSource map[string]string

func (s fakeSource) Blame(ctx context.Context, path string) ([]byte, error) {
	out, ok := s[path]
	if !ok {
		return nil, &gitexec.FetchError{Err: errors.New("exit status 128")}
	}
	return []byte(out), nil
}

func TestLoad(t *testing.T) {
	src := fakeSource{
		"ok.txt":  "abc123ef 1 1 1\nauthor Jane\nfilename ok.txt\n",
		"bad.txt": "abc123ef 1\n",
	}
	s := session.New(session.Opts{Source: src})
	ctx := context.Background()

	assert.NoError(t, load(ctx, s, "ok.txt"))

	err := load(ctx, s, "missing.txt")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "could not get blame for missing.txt")

	err = load(ctx, s, "bad.txt")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "could not parse blame output for bad.txt")
}

func TestAttribution(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	opts := session.Opts{}
	rec := &incblame.Record{Commit: "abc123ef99", Author: "Jane", AuthorTime: 0}
	got := attribution(rec, true, opts, 6)
	assert.Contains(t, got, "abc123ef ")
	assert.Contains(t, got, "Jane  ")

	assert.Equal(t, 8+1+16+1+6, len(attribution(nil, false, opts, 6)))
}
