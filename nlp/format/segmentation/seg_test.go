package segmentation

import (
	nlp "github.com/rotmanmi/segmentation.evaluation/nlp/types"

	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLine(t *testing.T) {
	token, masses, err := ParseLine("BBIT\tB:H:BIT")
	if err != nil {
		t.Fatal(err.Error())
	}
	if token != "BBIT" {
		t.Errorf("Expected token BBIT, got %s", token)
	}
	if !masses.Equal(nlp.Masses{1, 1, 3}) {
		t.Errorf("Expected [1 1 3], got %v", masses)
	}
}

func TestParseLineWithoutMorphemes(t *testing.T) {
	if _, _, err := ParseLine("BBIT"); err == nil {
		t.Error("Expected error for line without tab")
	}
}

func TestRead(t *testing.T) {
	input := "GANN\tGNN\nHLK\tH:LK\n\nBBIT\tB:H:BIT\r\n\n"
	dataset, err := Read(strings.NewReader(input), "yap")
	if err != nil {
		t.Fatal(err.Error())
	}
	if dataset.Len() != 3 {
		t.Errorf("Expected 3 tokens, got %d", dataset.Len())
	}
	masses, exists := dataset.Get("HLK", "yap")
	if !exists || !masses.Equal(nlp.Masses{1, 2}) {
		t.Errorf("Expected [1 2] for HLK, got %v", masses)
	}
	masses, _ = dataset.Get("BBIT", "yap")
	if !masses.Equal(nlp.Masses{1, 1, 3}) {
		t.Errorf("Expected [1 1 3] for BBIT, got %v", masses)
	}
}

func TestReadReportsLine(t *testing.T) {
	_, err := Read(strings.NewReader("HLK\tH:LK\nbroken\n"), "yap")
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("Expected error on line 2, got %v", err)
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gold.seg")
	if err := os.WriteFile(path, []byte("HLK\tH:LK\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	dataset, err := ReadFile(path, true)
	if err != nil {
		t.Fatal(err.Error())
	}
	if !dataset.Properties.HasReferenceCoder {
		t.Error("Expected reference coder property")
	}
	if _, exists := dataset.Get("HLK", nlp.CODER_REFERENCE); !exists {
		t.Error("Expected coding under the reference coder")
	}

	dataset, err = ReadFile(path, false)
	if err != nil {
		t.Fatal(err.Error())
	}
	if _, exists := dataset.Get("HLK", "gold"); !exists {
		t.Error("Expected coding under the file's coder name")
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "none.seg"), false)
	var ioErr *nlp.DataIOError
	if !errors.As(err, &ioErr) {
		t.Errorf("Expected DataIOError, got %v", err)
	}
}

func TestReadCarriageReturnLines(t *testing.T) {
	dataset, err := Read(strings.NewReader("cats\tca:ts\rdogs\tdog:s\r"), "yap")
	if err != nil {
		t.Fatal(err.Error())
	}
	if dataset.Len() != 2 {
		t.Errorf("Expected 2 tokens, got %d", dataset.Len())
	}
	masses, _ := dataset.Get("cats", "yap")
	if !masses.Equal(nlp.Masses{2, 2}) {
		t.Errorf("Expected [2 2] for cats, got %v", masses)
	}
	masses, _ = dataset.Get("dogs", "yap")
	if !masses.Equal(nlp.Masses{3, 1}) {
		t.Errorf("Expected [3 1] for dogs, got %v", masses)
	}
}

func TestReadLongLine(t *testing.T) {
	form := strings.Repeat("M", 100*1024)
	dataset, err := Read(strings.NewReader("LONG\t"+form+":H"), "yap")
	if err != nil {
		t.Fatal(err.Error())
	}
	masses, _ := dataset.Get("LONG", "yap")
	if !masses.Equal(nlp.Masses{100 * 1024, 1}) {
		t.Errorf("Expected [%d 1], got %v", 100*1024, masses)
	}
}

func TestReadInvalidUTF8(t *testing.T) {
	_, err := Read(strings.NewReader("HLK\tH:LK\nBBIT\tB:\xff\n"), "yap")
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("Expected error on line 2, got %v", err)
	}
}
