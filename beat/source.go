package beat

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strconv"
	"strings"
	"time"
)

var (
	ErrUnordered = errors.New("beat: timestamps are not in ascending order")
	ErrFormat    = errors.New("beat: malformed beat file")
)

// Entry is a beat as read from a source, before it joins a line.
type Entry struct {
	Target time.Duration
	Window time.Duration
}

// Source yields entries in non-decreasing Target order and io.EOF at the end.
type Source interface {
	Next() (Entry, error)
}

type orderCheck struct {
	last  time.Duration
	index int
}

func (o *orderCheck) check(e Entry) error {
	if o.index > 0 && e.Target < o.last {
		return fmt.Errorf("%w: entry %d at %v after %v", ErrUnordered, o.index, e.Target, o.last)
	}
	o.last = e.Target
	o.index++
	return nil
}

// JSONSource decodes [[time_ms, duration_ms], ...] one pair at a time.
type JSONSource struct {
	dec     *json.Decoder
	started bool
	done    bool
	order   orderCheck
}

func NewJSONSource(r io.Reader) *JSONSource {
	return &JSONSource{dec: json.NewDecoder(r)}
}

func (s *JSONSource) Next() (Entry, error) {
	if s.done {
		return Entry{}, io.EOF
	}
	if !s.started {
		tok, err := s.dec.Token()
		if err != nil {
			return Entry{}, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		if d, ok := tok.(json.Delim); !ok || d != '[' {
			return Entry{}, fmt.Errorf("%w: expected array, got %v", ErrFormat, tok)
		}
		s.started = true
	}
	if !s.dec.More() {
		if _, err := s.dec.Token(); err != nil {
			return Entry{}, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		s.done = true
		return Entry{}, io.EOF
	}

	var pair []float64
	if err := s.dec.Decode(&pair); err != nil {
		return Entry{}, fmt.Errorf("%w: entry %d: %v", ErrFormat, s.order.index, err)
	}
	if len(pair) != 2 || pair[0] < 0 || pair[1] <= 0 {
		return Entry{}, fmt.Errorf("%w: entry %d: want [time_ms, duration_ms], got %v", ErrFormat, s.order.index, pair)
	}
	e := Entry{Target: millis(pair[0]), Window: millis(pair[1])}
	if err := s.order.check(e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// TextSource reads one timestamp in seconds per line. Every beat gets the
// same window.
type TextSource struct {
	sc     *bufio.Scanner
	window time.Duration
	line   int
	order  orderCheck
}

func NewTextSource(r io.Reader, window time.Duration) *TextSource {
	return &TextSource{sc: bufio.NewScanner(r), window: window}
}

func (s *TextSource) Next() (Entry, error) {
	for s.sc.Scan() {
		s.line++
		text := strings.TrimSpace(s.sc.Text())
		if text == "" {
			continue
		}
		secs, err := strconv.ParseFloat(text, 64)
		if err != nil || secs < 0 {
			return Entry{}, fmt.Errorf("%w: line %d: %q", ErrFormat, s.line, text)
		}
		e := Entry{Target: millis(secs * 1000), Window: s.window}
		if err := s.order.check(e); err != nil {
			return Entry{}, err
		}
		return e, nil
	}
	if err := s.sc.Err(); err != nil {
		return Entry{}, err
	}
	return Entry{}, io.EOF
}

func millis(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}

// File is a Source backed by an open file.
type File struct {
	Source
	io.Closer
}

// Open validates the whole beat file and then returns a streaming source over
// it. The format is picked by extension: .json, anything else is text.
func Open(fsys fs.FS, name string, window time.Duration) (*File, error) {
	if err := validate(fsys, name, window); err != nil {
		return nil, err
	}
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("beat: open %s: %w", name, err)
	}
	return &File{Source: newSource(f, name, window), Closer: f}, nil
}

func newSource(r io.Reader, name string, window time.Duration) Source {
	if strings.EqualFold(path.Ext(name), ".json") {
		return NewJSONSource(r)
	}
	return NewTextSource(r, window)
}

func validate(fsys fs.FS, name string, window time.Duration) error {
	f, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("beat: open %s: %w", name, err)
	}
	defer f.Close()

	src := newSource(f, name, window)
	for {
		_, err := src.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("beat: %s: %w", name, err)
		}
	}
}
