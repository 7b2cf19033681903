package bufcache

import (
	"testing"

	"github.com/pinpt/lineblame/lineblame/incblame"
	"github.com/stretchr/testify/assert"
)

func testTable() (incblame.Table, *incblame.Record) {
	r := &incblame.Record{Commit: "abc123ef", Author: "Jane", AuthorTime: 1000, AuthorTZ: "+0000", Summary: "fix bug"}
	return incblame.Table{r, nil, r}, r
}

func TestPutGet(t *testing.T) {
	c := New()
	_, ok := c.Get(1)
	assert.False(t, ok)

	table, _ := testTable()
	c.Put(1, table)
	got, ok := c.Get(1)
	assert.True(t, ok)
	assert.Equal(t, table, got)
	assert.Equal(t, 1, c.Len())

	_, ok = c.Get(2)
	assert.False(t, ok)
}

func TestPutReplaces(t *testing.T) {
	c := New()
	table, _ := testTable()
	c.Put(1, table)
	c.Put(1, incblame.Table{})
	got, ok := c.Get(1)
	assert.True(t, ok)
	assert.Equal(t, 0, got.Len())
	assert.Equal(t, 1, c.Len())
}

func TestEvict(t *testing.T) {
	c := New()
	table, _ := testTable()

	c.Evict(1)
	_, ok := c.Get(1)
	assert.False(t, ok)

	c.Put(1, table)
	c.Put(2, table)
	c.Evict(1)
	_, ok = c.Get(1)
	assert.False(t, ok)
	_, ok = c.Get(2)
	assert.True(t, ok)

	c.Evict(1)
	assert.Equal(t, 1, c.Len())
}

func TestLookup(t *testing.T) {
	c := New()
	table, r := testTable()
	c.Put(1, table)

	tt := []struct {
		label string
		buf   BufferID
		line  int
		ok    bool
	}{
		{"first line", 1, 0, true},
		{"sparse slot", 1, 1, false},
		{"last line", 1, 2, true},
		{"past end", 1, 3, false},
		{"negative", 1, -1, false},
		{"unknown buffer", 7, 0, false},
	}
	for _, v := range tt {
		got, ok := Lookup(c, v.buf, v.line)
		assert.Equal(t, v.ok, ok, v.label)
		if v.ok {
			assert.Same(t, r, got, v.label)
		} else {
			assert.Nil(t, got, v.label)
		}
	}
}
