package incblame

import (
	"time"

	"github.com/pinpt/lineblame/lineblame/gittime"
)

// UnknownAuthor is used for commits whose metadata was not seen yet.
const UnknownAuthor = "unknown"

// DefaultTZ is used when author-tz is not present.
const DefaultTZ = "Z"

// Record is the attribution data for one commit. Records are created by the parser once the commit hunk is terminated and are shared by all lines attributed to that commit. Do not modify.
type Record struct {
	Commit     string
	Author     string
	AuthorTime int64
	AuthorTZ   string
	Summary    string
}

func newWorkingRecord(commit string) Record {
	return Record{
		Commit:   commit,
		Author:   UnknownAuthor,
		AuthorTZ: DefaultTZ,
	}
}

// ShortCommit returns the first 8 characters of commit hash.
func (r *Record) ShortCommit() string {
	if len(r.Commit) <= 8 {
		return r.Commit
	}
	return r.Commit[:8]
}

// Time returns author time in passed location. Uses UTC if loc is nil.
func (r *Record) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Unix(r.AuthorTime, 0).In(loc)
}

// Zone returns the author time zone. Falls back to UTC if AuthorTZ can't be parsed.
func (r *Record) Zone() *time.Location {
	loc, err := gittime.ParseTZ(r.AuthorTZ)
	if err != nil {
		return time.UTC
	}
	return loc
}

// String returns compact string representation of record. Useful in tests to see output.
func (r *Record) String() string {
	return r.ShortCommit() + ":" + r.Author + ":" + r.Summary
}
