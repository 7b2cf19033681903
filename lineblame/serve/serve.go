// Package serve exposes a blame session over a line based JSON protocol, so it can be driven by an editor plugin.
//
// Each input line is one editor event:
//
//	{"event":"read","buf":1,"path":"/repo/main.go"}
//	{"event":"cursor","buf":1,"line":4}
//
// Every event is answered with a response line. Rendering instructions are written before the response:
//
//	{"op":"clear","buf":1}
//	{"op":"set","buf":1,"line":3,"text":"    69ba50ff - 2018-11-27 21:56 User2: c2"}
//	{"ok":true,"op":"cursor"}
package serve

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/pinpt/lineblame/lineblame/bufcache"
	"github.com/pinpt/lineblame/lineblame/incblame"
	"github.com/pinpt/lineblame/lineblame/session"
	"github.com/pkg/errors"
)

// MaxRequestBytes limits the size of a single request line.
const MaxRequestBytes = 1 << 20

// Events accepted in Request.Event.
const (
	EventRead        = "read"
	EventWrite       = "write"
	EventUnload      = "unload"
	EventCursor      = "cursor"
	EventInsertEnter = "insert_enter"
	EventInsertLeave = "insert_leave"
	EventLookup      = "lookup"
)

// Request is one editor event.
type Request struct {
	Event string `json:"event"`
	Buf   int    `json:"buf"`
	Path  string `json:"path,omitempty"`
	// Line is 1-based line number as reported by the editor.
	Line int `json:"line,omitempty"`
}

// Response is written after each request is processed.
type Response struct {
	OK    bool        `json:"ok"`
	Op    string      `json:"op"`
	Error string      `json:"error,omitempty"`
	Data  interface{} `json:"data,omitempty"`
}

// Render is an instruction to show or clear blame text.
type Render struct {
	Op   string `json:"op"`
	Buf  int    `json:"buf"`
	Line *int   `json:"line,omitempty"`
	Text string `json:"text,omitempty"`
}

// LoadData is returned for read and write events.
type LoadData struct {
	Result session.LoadResult `json:"result"`
}

// LookupData is returned for lookup events. Record is nil if there is no blame for the line.
type LookupData struct {
	Record *RecordData `json:"record"`
}

type RecordData struct {
	Commit     string `json:"commit"`
	Author     string `json:"author"`
	AuthorTime int64  `json:"author_time"`
	AuthorTZ   string `json:"author_tz"`
	Summary    string `json:"summary"`
	Text       string `json:"text"`
}

type Opts struct {
	// Session is used to create the session. Renderer is replaced by one writing to output.
	Session session.Opts
}

// Serve reads events from in until EOF or ctx is done, writing responses to out.
func Serve(ctx context.Context, in io.Reader, out io.Writer, opts Opts) error {
	enc := json.NewEncoder(out)
	renderer := &jsonRenderer{enc: enc}
	sopts := opts.Session
	sopts.Renderer = renderer
	s := session.New(sopts)
	reader := bufio.NewReader(in)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, tooLarge, err := readLine(reader)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return errors.Wrap(err, "could not read request")
		}
		if tooLarge {
			if err := enc.Encode(Response{OK: false, Error: "request too large"}); err != nil {
				return err
			}
			continue
		}
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			if err := enc.Encode(Response{OK: false, Error: "invalid request: " + err.Error()}); err != nil {
				return err
			}
			continue
		}
		resp := handle(ctx, s, req)
		if renderer.err != nil {
			return renderer.err
		}
		if err := enc.Encode(resp); err != nil {
			return errors.Wrap(err, "could not write response")
		}
	}
}

func handle(ctx context.Context, s *session.Session, req Request) Response {
	buf := bufcache.BufferID(req.Buf)
	resp := Response{OK: true, Op: req.Event}
	fail := func(msg string) Response {
		resp.OK = false
		resp.Error = msg
		return resp
	}
	switch req.Event {
	case EventRead, EventWrite:
		if req.Path == "" {
			return fail("invalid " + req.Event + " request: path is required")
		}
		var res session.LoadResult
		if req.Event == EventRead {
			res = s.BufRead(ctx, buf, req.Path)
		} else {
			res = s.BufWrite(ctx, buf, req.Path)
		}
		resp.Data = LoadData{Result: res}
	case EventUnload:
		s.BufUnload(buf)
	case EventCursor:
		s.CursorMoved(buf, req.Line)
	case EventInsertEnter:
		s.InsertEnter(buf)
	case EventInsertLeave:
		s.InsertLeave(buf, req.Line)
	case EventLookup:
		data := LookupData{}
		if rec, ok := s.Lookup(buf, req.Line-1); ok {
			text, _ := s.Text(buf, req.Line-1)
			data.Record = recordData(rec, text)
		}
		resp.Data = data
	default:
		resp.Op = ""
		return fail("unknown event")
	}
	return resp
}

func recordData(rec *incblame.Record, text string) *RecordData {
	return &RecordData{
		Commit:     rec.Commit,
		Author:     rec.Author,
		AuthorTime: rec.AuthorTime,
		AuthorTZ:   rec.AuthorTZ,
		Summary:    rec.Summary,
		Text:       text,
	}
}

type jsonRenderer struct {
	enc *json.Encoder
	err error
}

func (s *jsonRenderer) Clear(buf bufcache.BufferID) {
	s.write(Render{Op: "clear", Buf: int(buf)})
}

func (s *jsonRenderer) SetText(buf bufcache.BufferID, line int, text string) {
	s.write(Render{Op: "set", Buf: int(buf), Line: &line, Text: text})
}

func (s *jsonRenderer) write(r Render) {
	if s.err != nil {
		return
	}
	if err := s.enc.Encode(r); err != nil {
		s.err = errors.Wrap(err, "could not write render message")
	}
}

func readLine(reader *bufio.Reader) ([]byte, bool, error) {
	var buf bytes.Buffer
	for {
		chunk, err := reader.ReadSlice('\n')
		if len(chunk) > 0 {
			if buf.Len()+len(chunk) > MaxRequestBytes {
				if chunk[len(chunk)-1] != '\n' {
					if err := discardUntilNewline(reader); err != nil && err != io.EOF {
						return nil, true, err
					}
				}
				return nil, true, nil
			}
			buf.Write(chunk)
			if chunk[len(chunk)-1] == '\n' {
				return bytes.TrimRight(buf.Bytes(), "\r\n"), false, nil
			}
		}
		if err != nil {
			if err == bufio.ErrBufferFull {
				continue
			}
			if err == io.EOF && buf.Len() != 0 {
				return bytes.TrimRight(buf.Bytes(), "\r\n"), false, nil
			}
			return nil, false, err
		}
	}
}

func discardUntilNewline(reader *bufio.Reader) error {
	for {
		chunk, err := reader.ReadSlice('\n')
		if len(chunk) > 0 && chunk[len(chunk)-1] == '\n' {
			return nil
		}
		if err != nil && err != bufio.ErrBufferFull {
			return err
		}
	}
}
