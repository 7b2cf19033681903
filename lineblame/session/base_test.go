package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pinpt/lineblame/lineblame/bufcache"
	"github.com/pinpt/lineblame/lineblame/gitexec"
)

type fakeSource struct {
	outputs map[string]string
	calls   int
}

func (s *fakeSource) Blame(ctx context.Context, path string) ([]byte, error) {
	s.calls++
	out, ok := s.outputs[path]
	if !ok {
		return nil, &gitexec.FetchError{Dir: "/", Args: []string{"blame", path}, Err: fmt.Errorf("exit status 128")}
	}
	return []byte(out), nil
}

type renderCall struct {
	Op   string
	Buf  bufcache.BufferID
	Line int
	Text string
}

type recordingRenderer struct {
	calls []renderCall
}

func (s *recordingRenderer) Clear(buf bufcache.BufferID) {
	s.calls = append(s.calls, renderCall{Op: "clear", Buf: buf})
}

func (s *recordingRenderer) SetText(buf bufcache.BufferID, line int, text string) {
	s.calls = append(s.calls, renderCall{Op: "set", Buf: buf, Line: line, Text: text})
}

func (s *recordingRenderer) reset() {
	s.calls = nil
}

func newTestSession(outputs map[string]string) (*Session, *fakeSource, *recordingRenderer) {
	src := &fakeSource{outputs: outputs}
	r := &recordingRenderer{}
	s := New(Opts{Source: src, Renderer: r, Location: time.UTC})
	return s, src, r
}

func blameOutput(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

var outputV1 = blameOutput(
	"abc123ef 1 1 2",
	"author Jane",
	"author-time 1000",
	"author-tz +0000",
	"summary fix bug",
	"filename x.txt",
)

var outputV2 = blameOutput(
	"abc123ef 1 1 2",
	"author Jane",
	"author-time 1000",
	"author-tz +0000",
	"summary fix bug",
	"filename x.txt",
	"0000000000000000000000000000000000000000 3 3 1",
	"author Not Committed Yet",
	"author-time 2000",
	"author-tz +0000",
	"summary Version of x.txt from x.txt",
	"filename x.txt",
)

const textV1 = "    abc123ef - 1970-01-01 00:16 Jane: fix bug"
