// Package session connects editor buffer events with blame loading, the buffer cache and rendering.
//
// Events are expected one at a time, in the order the editor produces them. Loading runs git synchronously. Failures to get or parse blame output never reach the caller, previously loaded data stays in place and is used for rendering.
package session

import (
	"context"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/pinpt/lineblame/lineblame/bufcache"
	"github.com/pinpt/lineblame/lineblame/display"
	"github.com/pinpt/lineblame/lineblame/gitexec"
	"github.com/pinpt/lineblame/lineblame/incblame"
	"github.com/pinpt/lineblame/lineblame/pkg/logger"
)

// Renderer shows blame text in the editor.
type Renderer interface {
	// Clear removes all blame text shown in buffer.
	Clear(buf bufcache.BufferID)
	// SetText shows text next to zero-based line.
	SetText(buf bufcache.BufferID, line int, text string)
}

// NopRenderer does not show anything.
type NopRenderer struct{}

func (NopRenderer) Clear(buf bufcache.BufferID)                          {}
func (NopRenderer) SetText(buf bufcache.BufferID, line int, text string) {}

// Opts is configuration for Session.
type Opts struct {
	// Source of blame output. Defaults to gitexec.GitSource using GitCommand.
	Source gitexec.Source

	// GitCommand is the git binary used by default Source. Defaults to git.
	GitCommand string

	// Renderer to show blame text. Defaults to NopRenderer.
	Renderer Renderer

	// Logger object for info and debug.
	Logger logger.Logger

	// Location used to show commit times. Defaults to time.Local.
	Location *time.Location
}

// LoadResult describes outcome of Load.
type LoadResult string

const (
	// Loaded means new table was stored for buffer.
	Loaded LoadResult = "loaded"
	// Unchanged means git output is the same as in last load, cache was not touched.
	Unchanged LoadResult = "unchanged"
	// FetchFailed means git command failed, cache was not touched.
	FetchFailed LoadResult = "fetch_failed"
	// ParseFailed means git output was not valid, cache was not touched.
	ParseFailed LoadResult = "parse_failed"
)

// Stats counts load outcomes.
type Stats struct {
	Loads         int
	Unchanged     int
	FetchFailures int
	ParseFailures int
}

// Session holds blame data for all open buffers.
type Session struct {
	Stats Stats

	opts  Opts
	cache *bufcache.Cache

	// digests of git output used to build cached tables
	digests   map[bufcache.BufferID]uint64
	cursors   map[bufcache.BufferID]int
	inserting map[bufcache.BufferID]bool
}

func New(opts Opts) *Session {
	if opts.GitCommand == "" {
		opts.GitCommand = "git"
	}
	if opts.Source == nil {
		opts.Source = gitexec.GitSource{GitCommand: opts.GitCommand}
	}
	if opts.Renderer == nil {
		opts.Renderer = NopRenderer{}
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNopLogger()
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	s := &Session{}
	s.opts = opts
	s.cache = bufcache.New()
	s.digests = map[bufcache.BufferID]uint64{}
	s.cursors = map[bufcache.BufferID]int{}
	s.inserting = map[bufcache.BufferID]bool{}
	return s
}

// Cache returns the buffer cache used by session.
func (s *Session) Cache() *bufcache.Cache {
	return s.cache
}

// BufRead is called when file is opened in buffer.
func (s *Session) BufRead(ctx context.Context, buf bufcache.BufferID, path string) LoadResult {
	return s.Load(ctx, buf, path)
}

// BufWrite is called after buffer is saved to file.
func (s *Session) BufWrite(ctx context.Context, buf bufcache.BufferID, path string) LoadResult {
	return s.Load(ctx, buf, path)
}

// Load gets blame for file at path and stores it for buffer. On any failure existing data for buffer is kept.
func (s *Session) Load(ctx context.Context, buf bufcache.BufferID, path string) LoadResult {
	start := time.Now()
	log := s.opts.Logger

	data, err := s.opts.Source.Blame(ctx, path)
	if err != nil {
		s.Stats.FetchFailures++
		log.Debug("could not get blame", "buf", buf, "path", path, "err", err)
		return FetchFailed
	}

	digest := xxhash.Sum64(data)
	if prev, ok := s.digests[buf]; ok && prev == digest {
		if _, ok := s.cache.Get(buf); ok {
			s.Stats.Unchanged++
			log.Debug("blame unchanged", "buf", buf, "path", path)
			return Unchanged
		}
	}

	table, err := incblame.ParseBytes(data)
	if err != nil {
		s.Stats.ParseFailures++
		log.Debug("could not parse blame", "buf", buf, "path", path, "err", err)
		return ParseFailed
	}

	s.cache.Put(buf, table)
	s.digests[buf] = digest
	s.Stats.Loads++
	log.Debug("loaded blame", "buf", buf, "path", path, "lines", table.Len(), "covered", table.Covered(), "took", time.Since(start))

	if line, ok := s.cursors[buf]; ok {
		s.repaint(buf, line)
	}
	return Loaded
}

// BufUnload is called when buffer is closed. Removes all data for buffer.
func (s *Session) BufUnload(buf bufcache.BufferID) {
	s.cache.Evict(buf)
	delete(s.digests, buf)
	delete(s.cursors, buf)
	delete(s.inserting, buf)
}

// CursorMoved shows blame for the line under cursor. line is 1-based as reported by the editor.
func (s *Session) CursorMoved(buf bufcache.BufferID, line int) {
	s.cursors[buf] = line - 1
	s.repaint(buf, line-1)
}

// InsertEnter hides blame text while buffer is edited.
func (s *Session) InsertEnter(buf bufcache.BufferID) {
	s.inserting[buf] = true
	s.opts.Renderer.Clear(buf)
}

// InsertLeave shows blame text again. line is 1-based as reported by the editor.
func (s *Session) InsertLeave(buf bufcache.BufferID, line int) {
	delete(s.inserting, buf)
	s.CursorMoved(buf, line)
}

// Lookup returns record for zero-based line.
func (s *Session) Lookup(buf bufcache.BufferID, line int) (*incblame.Record, bool) {
	return bufcache.Lookup(s.cache, buf, line)
}

// Text returns blame text for zero-based line.
func (s *Session) Text(buf bufcache.BufferID, line int) (string, bool) {
	return display.Line(s.cache, buf, line, s.opts.Location)
}

func (s *Session) repaint(buf bufcache.BufferID, line int) {
	r := s.opts.Renderer
	r.Clear(buf)
	if s.inserting[buf] {
		return
	}
	text, ok := s.Text(buf, line)
	if !ok {
		return
	}
	r.SetText(buf, line, text)
}
