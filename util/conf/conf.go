package conf

import (
	nlp "github.com/rotmanmi/segmentation.evaluation/nlp/types"

	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v2"
)

// Conf holds run settings shared by the commands; zero values select defaults
type Conf struct {
	Delimiter string `yaml:"delimiter"`
	Reference bool   `yaml:"reference"`
	Format    string `yaml:"format"`
	Log       string `yaml:"log"`
}

var namedDelimiters = map[string]rune{
	"tab":   '\t',
	`\t`:    '\t',
	"comma": ',',
	"space": ' ',
}

// ParseDelimiter accepts a single character or one of the names tab, comma,
// space; the empty string gives nlp.DEFAULT_DELIMITER
func ParseDelimiter(value string) (rune, error) {
	if value == "" {
		return nlp.DEFAULT_DELIMITER, nil
	}
	if r, exists := namedDelimiters[value]; exists {
		return r, nil
	}
	if utf8.RuneCountInString(value) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", value)
	}
	r, _ := utf8.DecodeRuneInString(value)
	return r, nil
}

func (c *Conf) ParsedDelimiter() (rune, error) {
	return ParseDelimiter(c.Delimiter)
}

func Read(reader io.Reader) (*Conf, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	conf := &Conf{}
	if err := yaml.UnmarshalStrict(data, conf); err != nil {
		return nil, err
	}
	if _, err := conf.ParsedDelimiter(); err != nil {
		return nil, err
	}
	return conf, nil
}

func ReadFile(filename string) (*Conf, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Read(file)
}
