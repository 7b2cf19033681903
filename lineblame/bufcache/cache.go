// Package bufcache keeps the latest blame table for each open editor buffer.
package bufcache

import (
	"github.com/pinpt/lineblame/lineblame/incblame"
)

// BufferID is the buffer handle issued by the editor. It is stable for the lifetime of an open buffer.
type BufferID int

// Cache holds one table per buffer. Not safe for concurrent use, the host delivers events one at a time.
type Cache struct {
	data map[BufferID]incblame.Table
}

func New() *Cache {
	s := &Cache{}
	s.data = map[BufferID]incblame.Table{}
	return s
}

// Put replaces the table for buffer.
func (s *Cache) Put(buf BufferID, table incblame.Table) {
	s.data[buf] = table
}

// Get returns the table for buffer. Returns false if there was no successful load yet.
func (s *Cache) Get(buf BufferID) (incblame.Table, bool) {
	res, ok := s.data[buf]
	return res, ok
}

// Evict removes table for buffer. Does nothing if buffer is not in cache.
func (s *Cache) Evict(buf BufferID) {
	delete(s.data, buf)
}

// Len returns the number of buffers in cache.
func (s *Cache) Len() int {
	return len(s.data)
}
