// Package display formats blame records as the text shown next to the cursor line.
package display

import (
	"fmt"
	"time"

	"github.com/pinpt/lineblame/lineblame/bufcache"
	"github.com/pinpt/lineblame/lineblame/gittime"
	"github.com/pinpt/lineblame/lineblame/incblame"
)

// Indent is added in front of the text, so it is separated from the line content.
const Indent = "    "

// Format returns text for record. Time is shown in loc, author-tz is not used. Uses time.Local if loc is nil.
//
//	    abc123ef - 2018-11-27 21:55 Jane: fix bug
func Format(rec *incblame.Record, loc *time.Location) string {
	return fmt.Sprintf("%v%v - %v %v: %v", Indent, rec.ShortCommit(), gittime.FormatMinute(rec.AuthorTime, loc), rec.Author, rec.Summary)
}

// Line returns text for zero-based line in buffer. Returns false when there is nothing to show.
func Line(c *bufcache.Cache, buf bufcache.BufferID, line int, loc *time.Location) (string, bool) {
	rec, ok := bufcache.Lookup(c, buf, line)
	if !ok {
		return "", false
	}
	return Format(rec, loc), true
}
