package iocli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStdio(t *testing.T) {
	assert.NotNil(t, NewStdio())
}

func TestStream_Output(t *testing.T) {
	var out bytes.Buffer
	s := NewStream(strings.NewReader(""), &out)

	s.Println("hello", "world")
	s.Printf("test %d %s", 1, "abc")
	_, err := s.Write([]byte("!"))
	require.NoError(t, err)

	assert.Equal(t, "hello world\ntest 1 abc!", out.String())
}

func TestStream_ReadInput(t *testing.T) {
	var out bytes.Buffer
	s := NewStream(strings.NewReader("  yes \nsecond"), &out)

	got, err := s.ReadInput("Prompt: ")
	require.NoError(t, err)
	assert.Equal(t, "yes", got)
	assert.Equal(t, "Prompt: ", out.String())

	// последняя строка без перевода строки
	got, err = s.ReadInput("")
	require.NoError(t, err)
	assert.Equal(t, "second", got)

	_, err = s.ReadInput("")
	assert.ErrorIs(t, err, io.EOF)
}
