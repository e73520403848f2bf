package segmentation

// Package segmentation reads segmentation output files: one token per line
// followed by a tab and its morpheme forms separated by ':', sentences
// separated by an empty line.

import (
	nlp "github.com/rotmanmi/segmentation.evaluation/nlp/types"
	"github.com/rotmanmi/segmentation.evaluation/util"

	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

const (
	FIELD_SEPARATOR    = "\t"
	MORPHEME_SEPARATOR = ":"
)

func ParseLine(line string) (string, nlp.Masses, error) {
	if !utf8.ValidString(line) {
		return "", nil, fmt.Errorf("invalid UTF-8 in %q", line)
	}
	fields := strings.SplitN(line, FIELD_SEPARATOR, 2)
	if len(fields) != 2 {
		return "", nil, fmt.Errorf("expected token and morphemes separated by a tab, got %q", line)
	}
	forms := strings.Split(fields[1], MORPHEME_SEPARATOR)
	masses := make(nlp.Masses, len(forms))
	for i, form := range forms {
		masses[i] = utf8.RuneCountInString(form)
	}
	return fields[0], masses, nil
}

// Read attributes every token's segmentation to coder; a token seen again
// keeps its last segmentation
func Read(reader io.Reader, coder string) (*nlp.Dataset, error) {
	dataset := nlp.NewDataset()
	bufReader := bufio.NewReader(util.NewUniversalNewlineReader(reader))
	var lineNum int
	for {
		line, err := bufReader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if len(line) == 0 && err == io.EOF {
			break
		}
		lineNum++
		line = strings.TrimSuffix(line, "\n")
		// an empty line ends a sentence
		if len(line) > 0 {
			token, masses, parseErr := ParseLine(line)
			if parseErr != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, parseErr)
			}
			dataset.Set(token, coder, masses)
		}
		if err == io.EOF {
			break
		}
	}
	return dataset, nil
}

func ReadFile(filename string, referenceCoder bool) (*nlp.Dataset, error) {
	coder := nlp.NameFromFilepath(filename)
	if referenceCoder {
		coder = nlp.CODER_REFERENCE
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, &nlp.DataIOError{Path: filename, Err: err}
	}
	defer file.Close()

	dataset, err := Read(file, coder)
	if err != nil {
		return nil, &nlp.DataIOError{Path: filename, Err: err}
	}
	dataset.Properties.HasReferenceCoder = referenceCoder
	return dataset, nil
}
