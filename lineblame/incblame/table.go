package incblame

import (
	"strconv"
	"strings"
)

// Table maps zero-based line index to commit record. A nil slot means there is no data for that line.
type Table []*Record

// Len returns number of slots in table.
func (t Table) Len() int {
	return len(t)
}

// At returns record for zero-based line i. Returns false if i is out of range or slot is empty.
func (t Table) At(i int) (*Record, bool) {
	if i < 0 || i >= len(t) {
		return nil, false
	}
	rec := t[i]
	if rec == nil {
		return nil, false
	}
	return rec, true
}

// Covered returns the number of non-empty slots.
func (t Table) Covered() (res int) {
	for _, rec := range t {
		if rec != nil {
			res++
		}
	}
	return
}

// set writes rec into slots [start, start+count), growing the table with empty slots as needed.
func (t Table) set(start, count int, rec *Record) Table {
	if start < 0 {
		count += start
		start = 0
	}
	if count <= 0 {
		return t
	}
	end := start + count
	if end > len(t) {
		t = append(t, make([]*Record, end-len(t))...)
	}
	for i := start; i < end; i++ {
		t[i] = rec
	}
	return t
}

// String returns compact string representation of table. Useful in tests to see output.
func (t Table) String() string {
	out := []string{}
	if len(t) == 0 {
		out = append(out, "empty")
	}
	for i, rec := range t {
		v := "-"
		if rec != nil {
			v = rec.String()
		}
		out = append(out, strconv.Itoa(i)+":"+v)
	}
	return strings.Join(out, "\n")
}
