package value

import (
	"bufio"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Stream wraps a readable and/or writable byte sink behind the minimal
// protocol the I/O natives in package builtins need: line/char/byte reads,
// string/char writes, flush and close.
type Stream struct {
	ID     string
	Name   string
	Reader *bufio.Reader
	Writer *bufio.Writer
	Closer io.Closer
}

func NewStream(name string, r io.Reader, w io.Writer, c io.Closer) *Stream {
	s := &Stream{ID: uuid.NewString(), Name: name, Closer: c}
	if r != nil {
		s.Reader = bufio.NewReader(r)
	}
	if w != nil {
		s.Writer = bufio.NewWriter(w)
	}
	return s
}

func (s *Stream) String() string { return fmt.Sprintf("#<stream:%s %s>", s.Name, s.ID[:8]) }

func (s *Stream) Flush() error {
	if s.Writer != nil {
		return s.Writer.Flush()
	}
	return nil
}

func (s *Stream) Close() error {
	s.Flush()
	if s.Closer != nil {
		return s.Closer.Close()
	}
	return nil
}
