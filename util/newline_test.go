package util

import (
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"golang.org/x/text/transform"
)

func TestUniversalNewlines(t *testing.T) {
	cases := map[string]string{
		"a\rb\r":       "a\nb\n",
		"a\r\nb\r\n":   "a\nb\n",
		"a\nb":         "a\nb",
		"a\r\r\nb\n\r": "a\n\nb\n\n",
		"\r":           "\n",
		"":             "",
	}
	for input, expected := range cases {
		output, _, err := transform.String(UniversalNewlines{}, input)
		if err != nil {
			t.Errorf("Unexpected error for %q: %v", input, err)
		}
		if output != expected {
			t.Errorf("Expected %q for %q, got %q", expected, input, output)
		}
	}
}

func TestUniversalNewlineReaderSplitCRLF(t *testing.T) {
	// one byte per read puts every "\r" at the end of a chunk
	reader := NewUniversalNewlineReader(iotest.OneByteReader(strings.NewReader("a\r\nb\rc\r")))
	data, err := io.ReadAll(reader)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "a\nb\nc\n" {
		t.Errorf("Expected %q, got %q", "a\nb\nc\n", string(data))
	}
}
