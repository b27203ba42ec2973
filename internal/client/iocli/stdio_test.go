package iocli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Проверяем что NewStdio возвращает валидный объект
func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

func TestPrintlnPrintfWrite(t *testing.T) {
	var out bytes.Buffer
	console := New(strings.NewReader(""), &out)

	console.Println("hello", "world")
	console.Printf("test %d %s\n", 1, "abc")
	n, err := console.Write([]byte("raw"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	assert.Equal(t, "hello world\ntest 1 abc\nraw", out.String())
}

// Тест ReadInput: читаем из буфера вместо os.Stdin
func TestReadInput(t *testing.T) {
	var out bytes.Buffer
	console := New(strings.NewReader("  user input \nsecond\nlast"), &out)

	result, err := console.ReadInput("Prompt: ")
	require.NoError(t, err)
	assert.Equal(t, "user input", result)
	assert.Equal(t, "Prompt: ", out.String())

	result, err = console.ReadInput("")
	require.NoError(t, err)
	assert.Equal(t, "second", result)

	// Последняя строка без перевода строки
	result, err = console.ReadInput("")
	require.NoError(t, err)
	assert.Equal(t, "last", result)

	_, err = console.ReadInput("")
	assert.ErrorIs(t, err, io.EOF)
}

// Без терминала токен читается как обычная строка
func TestReadPassword_NotTerminal(t *testing.T) {
	var out bytes.Buffer
	console := New(strings.NewReader("secret-token\n"), &out)

	result, err := console.ReadPassword("Token: ")
	require.NoError(t, err)
	assert.Equal(t, "secret-token", result)
}
