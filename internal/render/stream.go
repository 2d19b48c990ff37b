package render

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Nomadcxx/sceneparse/internal/parser"
)

// Stream writes parse results incrementally as JSON lines, one release per
// line, so large batches never accumulate in memory.
type Stream struct {
	w     *bufio.Writer
	enc   *json.Encoder
	count int
}

// NewStream wraps w in a buffered JSON-lines writer.
func NewStream(w io.Writer) *Stream {
	bw := bufio.NewWriter(w)
	return &Stream{w: bw, enc: json.NewEncoder(bw)}
}

// Write emits one release. Cancellation is checked before writing so an
// aborted batch stops between records, never mid-line.
func (s *Stream) Write(ctx context.Context, r *parser.Release) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	if err := s.enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode release %q: %w", r.Raw, err)
	}
	s.count++
	return nil
}

// Count reports how many releases have been written.
func (s *Stream) Count() int {
	return s.count
}

// Flush drains the buffer to the underlying writer.
func (s *Stream) Flush() error {
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush stream: %w", err)
	}
	return nil
}
