package helpers

import (
	"io"
	"sync"
)

type flusher interface {
	Flush() error
}

// LineWriter serializes whole lines onto a shared writer. The first write
// failure sticks, so a goroutine that cannot return errors can still surface
// them to whoever owns the output.
type LineWriter struct {
	lock   sync.Mutex
	writer io.Writer
	err    error
}

func NewLineWriter(writer io.Writer) *LineWriter {
	return &LineWriter{writer: writer}
}

func (l *LineWriter) WriteLines(lines ...string) Error {
	if len(lines) == 0 {
		return NilError
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	if l.err != nil {
		return Wrap(l.err)
	}

	for _, line := range lines {
		_, err := io.WriteString(l.writer, line+"\n")
		if err != nil {
			l.err = err
			return Wrap(err)
		}
	}

	if f, ok := l.writer.(flusher); ok {
		if err := f.Flush(); err != nil {
			l.err = err
			return Wrap(err)
		}
	}

	return NilError
}

func (l *LineWriter) Err() Error {
	l.lock.Lock()
	defer l.lock.Unlock()
	return Wrap(l.err)
}
