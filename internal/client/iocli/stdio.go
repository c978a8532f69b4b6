package iocli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Stream IO поверх произвольных reader/writer
type Stream struct {
	in  *bufio.Reader
	out io.Writer
}

func NewStdio() IO {
	return NewStream(os.Stdin, os.Stdout)
}

func NewStream(in io.Reader, out io.Writer) *Stream {
	return &Stream{in: bufio.NewReader(in), out: out}
}

func (s *Stream) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stream) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stream) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

// ReadInput печатает prompt и читает одну строку. Последняя строка без \n тоже принимается.
func (s *Stream) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.in.ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}
