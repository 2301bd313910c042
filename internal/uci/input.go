package uci

import (
	"bufio"
	"errors"
	"io"

	"github.com/chzyer/readline"
)

type ScannerReader struct {
	scanner *bufio.Scanner
}

var _ LineReader = (*ScannerReader)(nil)

func NewScannerReader(r io.Reader) *ScannerReader {
	return &ScannerReader{scanner: bufio.NewScanner(r)}
}

func (s *ScannerReader) ReadLine() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// ReadlineReader reads from an interactive terminal. Ctrl-C ends the input
// like Ctrl-D does.
type ReadlineReader struct {
	rl *readline.Instance
}

var _ LineReader = (*ReadlineReader)(nil)

func NewReadlineReader(rl *readline.Instance) *ReadlineReader {
	return &ReadlineReader{rl: rl}
}

func (r *ReadlineReader) ReadLine() (string, error) {
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", io.EOF
	}
	return line, err
}
