package morpheme

// Package morpheme reads morphological segmentation files into segmentation
// masses. Each line holds an item (a word) and a comma separated list of
// alternative segmentations, each a space separated list of morphemes:
//
//	cats	ca ts,cat s
//
// yields the masses [2 2] for the file's coder and [3 1] for coder+"2".

import (
	nlp "github.com/rotmanmi/segmentation.evaluation/nlp/types"
	"github.com/rotmanmi/segmentation.evaluation/util"

	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	ITEM_FIELD         = 0
	SEGMENTATION_FIELD = 1

	OPTION_SEPARATOR   = ","
	MORPHEME_SEPARATOR = " "
)

// CoderName gives the coder key of the i-th segmentation option of a row;
// the first alternative after the primary one is suffixed "2"
func CoderName(coder string, i int) string {
	if i == 0 {
		return coder
	}
	return coder + strconv.Itoa(i+1)
}

// ParseMasses converts a single segmentation option to morpheme lengths
func ParseMasses(option string) nlp.Masses {
	morphemes := strings.Split(option, MORPHEME_SEPARATOR)
	retval := make(nlp.Masses, len(morphemes))
	for i, morpheme := range morphemes {
		retval[i] = utf8.RuneCountInString(morpheme)
	}
	return retval
}

// ParseRecord stores the masses of one row in dataset. Rows with fewer than
// two fields are ignored, as is anything past the segmentation field.
func ParseRecord(dataset *nlp.Dataset, record []string, coder string) error {
	if len(record) <= SEGMENTATION_FIELD {
		return nil
	}
	item, segmentation := record[ITEM_FIELD], record[SEGMENTATION_FIELD]
	if !utf8.ValidString(item) || !utf8.ValidString(segmentation) {
		return fmt.Errorf("invalid UTF-8 in record for item %q", item)
	}
	options := strings.Split(segmentation, OPTION_SEPARATOR)
	for i, option := range options {
		dataset.Set(item, CoderName(coder, i), ParseMasses(strings.TrimSpace(option)))
	}
	return nil
}

func newReader(r io.Reader, delimiter rune) *csv.Reader {
	if delimiter == 0 {
		delimiter = nlp.DEFAULT_DELIMITER
	}
	reader := csv.NewReader(util.NewUniversalNewlineReader(r))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader
}

// Read parses all rows from r, attributing the first segmentation option of
// each row to coder
func Read(r io.Reader, coder string, delimiter rune) (*nlp.Dataset, error) {
	dataset := nlp.NewDataset()
	reader := newReader(r, delimiter)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if err := ParseRecord(dataset, record, coder); err != nil {
			line, _ := reader.FieldPos(ITEM_FIELD)
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	return dataset, nil
}

// ReadFile loads a morphological segmentation file for a single coder. The
// coder is named after the file (without directory and extension) unless
// referenceCoder is set, in which case it is CODER_REFERENCE and the dataset
// is marked as having a reference coder. A zero delimiter reads tabs.
func ReadFile(filename string, referenceCoder bool, delimiter rune) (*nlp.Dataset, error) {
	coder := nlp.NameFromFilepath(filename)
	if referenceCoder {
		coder = nlp.CODER_REFERENCE
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, &nlp.DataIOError{Path: filename, Err: err}
	}
	defer file.Close()

	dataset, err := Read(file, coder, delimiter)
	if err != nil {
		return nil, &nlp.DataIOError{Path: filename, Err: err}
	}
	dataset.Properties.HasReferenceCoder = referenceCoder
	return dataset, nil
}
