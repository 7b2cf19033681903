package serve

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/pinpt/lineblame/lineblame/gitexec"
	"github.com/pinpt/lineblame/lineblame/session"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource map[string]string

func (s fakeSource) Blame(ctx context.Context, path string) ([]byte, error) {
	out, ok := s[path]
	if !ok {
		return nil, &gitexec.FetchError{Err: errors.New("exit status 128")}
	}
	return []byte(out), nil
}

const blameX = "abc123ef 1 1 2\nauthor Jane\nauthor-time 1000\nauthor-tz +0000\nsummary fix bug\nfilename x.txt\n"

func run(t *testing.T, input ...string) []map[string]interface{} {
	t.Helper()
	out := &bytes.Buffer{}
	opts := Opts{Session: session.Opts{Source: fakeSource{"/r/x.txt": blameX}, Location: time.UTC}}
	err := Serve(context.Background(), strings.NewReader(strings.Join(input, "\n")), out, opts)
	require.NoError(t, err)

	var res []map[string]interface{}
	dec := json.NewDecoder(out)
	for dec.More() {
		m := map[string]interface{}{}
		require.NoError(t, dec.Decode(&m))
		res = append(res, m)
	}
	return res
}

func TestServeLoadAndCursor(t *testing.T) {
	got := run(t,
		`{"event":"read","buf":1,"path":"/r/x.txt"}`,
		`{"event":"cursor","buf":1,"line":2}`,
		`{"event":"cursor","buf":1,"line":3}`,
	)
	want := []map[string]interface{}{
		{"ok": true, "op": "read", "data": map[string]interface{}{"result": "loaded"}},
		{"op": "clear", "buf": float64(1)},
		{"op": "set", "buf": float64(1), "line": float64(1), "text": "    abc123ef - 1970-01-01 00:16 Jane: fix bug"},
		{"ok": true, "op": "cursor"},
		{"op": "clear", "buf": float64(1)},
		{"ok": true, "op": "cursor"},
	}
	assert.Equal(t, want, got)
}

func TestServeLookup(t *testing.T) {
	got := run(t,
		`{"event":"read","buf":1,"path":"/r/x.txt"}`,
		`{"event":"lookup","buf":1,"line":1}`,
		`{"event":"unload","buf":1}`,
		`{"event":"lookup","buf":1,"line":1}`,
	)
	require.Len(t, got, 4)
	rec := got[1]["data"].(map[string]interface{})["record"].(map[string]interface{})
	assert.Equal(t, "abc123ef", rec["commit"])
	assert.Equal(t, "Jane", rec["author"])
	assert.Equal(t, float64(1000), rec["author_time"])
	assert.Equal(t, "+0000", rec["author_tz"])
	assert.Equal(t, "fix bug", rec["summary"])
	assert.Equal(t, map[string]interface{}{"ok": true, "op": "unload"}, got[2])
	assert.Nil(t, got[3]["data"].(map[string]interface{})["record"])
}

func TestServeFailuresAreNotErrors(t *testing.T) {
	got := run(t,
		`{"event":"read","buf":1,"path":"/r/missing.txt"}`,
		`{"event":"write","buf":1,"path":"/r/x.txt"}`,
		`{"event":"write","buf":1,"path":"/r/x.txt"}`,
	)
	require.Len(t, got, 3)
	assert.Equal(t, map[string]interface{}{"result": "fetch_failed"}, got[0]["data"])
	assert.Equal(t, map[string]interface{}{"result": "loaded"}, got[1]["data"])
	assert.Equal(t, map[string]interface{}{"result": "unchanged"}, got[2]["data"])
	for _, r := range got {
		assert.Equal(t, true, r["ok"])
	}
}

func TestServeInsertMode(t *testing.T) {
	got := run(t,
		`{"event":"read","buf":1,"path":"/r/x.txt"}`,
		`{"event":"insert_enter","buf":1}`,
		`{"event":"insert_leave","buf":1,"line":1}`,
	)
	require.Len(t, got, 6)
	assert.Equal(t, "clear", got[1]["op"])
	assert.Equal(t, "insert_enter", got[2]["op"])
	assert.Equal(t, "clear", got[3]["op"])
	assert.Equal(t, "set", got[4]["op"])
	assert.Equal(t, float64(0), got[4]["line"])
	assert.Equal(t, "insert_leave", got[5]["op"])
}

func TestServeInvalidRequests(t *testing.T) {
	got := run(t,
		`not json`,
		``,
		`{"event":"read","buf":1}`,
		`{"event":"explode","buf":1}`,
		`{"event":"unload","buf":1}`,
	)
	require.Len(t, got, 4)
	assert.Equal(t, false, got[0]["ok"])
	assert.Contains(t, got[0]["error"], "invalid request")
	assert.Equal(t, false, got[1]["ok"])
	assert.Equal(t, "invalid read request: path is required", got[1]["error"])
	assert.Equal(t, false, got[2]["ok"])
	assert.Equal(t, "unknown event", got[2]["error"])
	assert.Equal(t, true, got[3]["ok"])
}

func TestServeRequestTooLarge(t *testing.T) {
	got := run(t,
		`{"event":"read","buf":1,"path":"`+strings.Repeat("a", MaxRequestBytes)+`"}`,
		`{"event":"unload","buf":1}`,
	)
	require.Len(t, got, 2)
	assert.Equal(t, "request too large", got[0]["error"])
	assert.Equal(t, true, got[1]["ok"])
}
