package streamfft

import (
	"fmt"
	"io"
	"time"
)

// ChanSource adapts a Go channel to the Source contract. A closed
// channel reads as io.EOF.
type ChanSource struct {
	ch      <-chan Word
	timeout time.Duration
}

// NewChanSource wraps ch as a Source that blocks indefinitely.
func NewChanSource(ch <-chan Word) *ChanSource {
	return &ChanSource{ch: ch}
}

// NewChanSourceTimeout wraps ch as a Source whose reads fail after d.
// The engine reports the failure as ErrTransport.
func NewChanSourceTimeout(ch <-chan Word, d time.Duration) *ChanSource {
	return &ChanSource{ch: ch, timeout: d}
}

// ReadWord receives the next word, io.EOF on a closed channel, or a
// timeout error when the source was built with a deadline.
func (s *ChanSource) ReadWord() (Word, error) {
	if s.timeout <= 0 {
		w, ok := <-s.ch
		if !ok {
			return Word{}, io.EOF
		}

		return w, nil
	}

	timer := time.NewTimer(s.timeout)
	defer timer.Stop()

	select {
	case w, ok := <-s.ch:
		if !ok {
			return Word{}, io.EOF
		}

		return w, nil
	case <-timer.C:
		return Word{}, fmt.Errorf("read timed out after %v", s.timeout)
	}
}

// ChanSink adapts a Go channel to the Sink contract. Writes block until
// the channel accepts the word; the caller owns closing the channel.
type ChanSink struct {
	ch chan<- Word
}

// NewChanSink wraps ch as a Sink.
func NewChanSink(ch chan<- Word) *ChanSink {
	return &ChanSink{ch: ch}
}

// WriteWord sends w, blocking while the channel is full.
func (s *ChanSink) WriteWord(w Word) error {
	s.ch <- w
	return nil
}

// SliceSource replays a prepared word sequence, then io.EOF. Useful for
// tests and host tooling that assembles frames in memory.
type SliceSource struct {
	words []Word
	next  int
}

// NewSliceSource returns a Source over words. The slice is not copied.
func NewSliceSource(words []Word) *SliceSource {
	return &SliceSource{words: words}
}

// ReadWord returns the next word or io.EOF past the end.
func (s *SliceSource) ReadWord() (Word, error) {
	if s.next >= len(s.words) {
		return Word{}, io.EOF
	}

	w := s.words[s.next]
	s.next++

	return w, nil
}

// SliceSink collects written words in memory.
type SliceSink struct {
	Words []Word
}

// WriteWord appends w.
func (s *SliceSink) WriteWord(w Word) error {
	s.Words = append(s.Words, w)
	return nil
}
