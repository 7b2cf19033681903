package gittime

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Parse parses timestamp in default git format.
func Parse(d string) (time.Time, error) {
	//Tue Nov 27 21:55:36 2018 +0100
	return time.Parse("Mon Jan 2 15:04:05 2006 -0700", d)
}

// MinuteLayout is the layout used when showing blame time next to a line.
const MinuteLayout = "2006-01-02 15:04"

// FormatMinute formats unix seconds in passed location with minute precision. Uses time.Local if loc is nil.
func FormatMinute(sec int64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(sec, 0).In(loc).Format(MinuteLayout)
}

// ParseTZ parses timezone offset as printed by git in author-tz and committer-tz, i.e. +0100.
// Z and empty string are returned as UTC.
func ParseTZ(tz string) (*time.Location, error) {
	if tz == "" || tz == "Z" {
		return time.UTC, nil
	}
	if len(tz) != 5 || (tz[0] != '+' && tz[0] != '-') {
		return nil, errors.Errorf("invalid timezone offset %q", tz)
	}
	h, err := strconv.Atoi(tz[1:3])
	if err != nil {
		return nil, errors.Wrapf(err, "invalid timezone offset %q", tz)
	}
	m, err := strconv.Atoi(tz[3:5])
	if err != nil {
		return nil, errors.Wrapf(err, "invalid timezone offset %q", tz)
	}
	offset := h*3600 + m*60
	if tz[0] == '-' {
		offset = -offset
	}
	return time.FixedZone(tz, offset), nil
}
