package incblame

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parse parses output of the following command split into lines.
// git blame --incremental <file>
// Returns table with record for each line of the file. If output is malformed returns *ParseError and no table.
func Parse(lines []string) (Table, error) {
	p := newParser()
	for _, l := range lines {
		if err := p.line(l); err != nil {
			return nil, err
		}
	}
	return p.res, nil
}

// ParseBytes is the same as Parse, but accepts raw command output.
func ParseBytes(content []byte) (Table, error) {
	return ParseReader(bytes.NewReader(content))
}

// ParseReader is the same as Parse, but reads lines from r.
func ParseReader(r io.Reader) (Table, error) {
	p := newParser()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, maxLine)
	for scanner.Scan() {
		if err := p.line(scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read blame output")
	}
	return p.res, nil
}

const mb = 1000 * 1000
const maxLine = 1 * mb

type parserState string

const (
	stHeader   parserState = "stHeader"
	stMetadata parserState = "stMetadata"
)

const (
	keyAuthor     = "author"
	keyAuthorTime = "author-time"
	keyAuthorTZ   = "author-tz"
	keySummary    = "summary"
	keyFilename   = "filename"
)

// hunk is the data collected between header line and filename line.
type hunk struct {
	rec   Record
	start int
	count int
}

type parser struct {
	state   parserState
	lineNum int

	// commits contains finished records by commit hash. Shared across all hunks of one parse.
	commits map[string]*Record
	current hunk

	res Table
}

func newParser() *parser {
	p := &parser{}
	p.state = stHeader
	p.commits = map[string]*Record{}
	return p
}

func (p *parser) line(l string) error {
	p.lineNum++
	l = strings.TrimRight(l, "\r")
	if l == "" {
		return nil
	}
	switch p.state {
	case stHeader:
		return p.header(l)
	case stMetadata:
		return p.metadata(l)
	default:
		panic("invalid state")
	}
}

func (p *parser) header(l string) error {
	h, err := parseHeader(l)
	if err != nil {
		return p.err(l, err.Error())
	}
	if rec, ok := p.commits[h.commit]; ok {
		p.current.rec = *rec
	} else {
		p.current.rec = newWorkingRecord(h.commit)
	}
	p.current.start = h.newLine - 1
	p.current.count = h.count
	p.state = stMetadata
	return nil
}

func (p *parser) metadata(l string) error {
	key, value := splitMeta(l)
	rec := &p.current.rec
	switch key {
	case keyAuthor:
		rec.Author = value
	case keyAuthorTime:
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return p.err(l, "author-time is not an integer")
		}
		rec.AuthorTime = v
	case keyAuthorTZ:
		rec.AuthorTZ = value
	case keySummary:
		rec.Summary = value
	case keyFilename:
		p.finishHunk()
	}
	return nil
}

// finishHunk writes the hunk lines. Commits with unchanged metadata reuse the cached record, so all lines of a commit share one record.
func (p *parser) finishHunk() {
	rec, ok := p.commits[p.current.rec.Commit]
	if !ok || *rec != p.current.rec {
		rec = &Record{}
		*rec = p.current.rec
		p.commits[rec.Commit] = rec
	}
	p.res = p.res.set(p.current.start, p.current.count, rec)
	p.current = hunk{}
	p.state = stHeader
}

func (p *parser) err(l string, msg string) error {
	return &ParseError{Line: p.lineNum, Text: l, Msg: msg}
}
