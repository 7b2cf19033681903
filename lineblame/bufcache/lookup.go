package bufcache

import "github.com/pinpt/lineblame/lineblame/incblame"

// Lookup returns the record for zero-based line in buffer.
// Returns false if buffer has no table, line is outside of the table or there is no data for that line.
func Lookup(c *Cache, buf BufferID, line int) (*incblame.Record, bool) {
	table, ok := c.Get(buf)
	if !ok {
		return nil, false
	}
	return table.At(line)
}
