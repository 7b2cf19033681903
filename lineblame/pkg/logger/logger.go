package logger

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

type Logger interface {
	Info(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

type Opts struct {
	// Debug enables debug messages. Off by default.
	Debug bool
	// Color prints level names in color. Set when writing to a terminal.
	Color bool
}

type DefaultLogger struct {
	wr   io.Writer
	opts Opts
	mu   sync.Mutex
}

func NewDefaultLogger(wr io.Writer, opts Opts) Logger {
	s := &DefaultLogger{}
	s.wr = wr
	s.opts = opts
	return s
}

var levelColors = map[string]*color.Color{
	"INFO":  color.New(color.FgGreen),
	"DEBUG": color.New(color.FgCyan),
	"ERROR": color.New(color.FgRed),
}

func (s *DefaultLogger) Info(msg string, args ...interface{}) {
	s.log("INFO", msg, args...)
}

func (s *DefaultLogger) Debug(msg string, args ...interface{}) {
	if !s.opts.Debug {
		return
	}
	s.log("DEBUG", msg, args...)
}

func (s *DefaultLogger) Error(msg string, args ...interface{}) {
	s.log("ERROR", msg, args...)
}

func (s *DefaultLogger) log(kind string, msg string, args ...interface{}) {
	write := func(format string, args ...interface{}) {
		s.mu.Lock()
		defer s.mu.Unlock()
		p := fmt.Sprintf(format, args...)
		_, err := s.wr.Write([]byte(p + "\n"))
		if err != nil {
			panic(err)
		}
	}
	level := kind
	if s.opts.Color {
		c := levelColors[kind]
		c.EnableColor()
		level = c.Sprint(kind)
	}
	kvs, err := formatArgs(args)
	if err != nil {
		write("%v Logger invalid args passed. Msg: %v Args: %v Err: %v", level, msg, args, err)
		return
	}
	write("%v %v %v", level, msg, kvs)
}

type kv struct {
	K string
	V string
}

func formatArgs(args []interface{}) (res []kv, _ error) {
	if len(args)%2 != 0 {
		return nil, errors.New("len of args not even")
	}
	for i := 0; i < len(args); i += 2 {
		k, ok := args[i].(string)
		if !ok {
			return nil, errors.New("key arg passes in not a string")
		}
		v := fmt.Sprintf("%v", args[i+1])
		res = append(res, kv{k, v})
	}
	return
}

type nopLogger struct{}

// NewNopLogger returns logger which discards everything.
func NewNopLogger() Logger {
	return nopLogger{}
}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Error(msg string, args ...interface{}) {}
