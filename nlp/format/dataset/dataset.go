package dataset

// Package dataset writes loaded segmentation datasets in the layout used by
// segmentation evaluation tools:
//
//	{"items": {"cats": {"coderA": [2, 2]}}, "has_reference_coder": true}

import (
	nlp "github.com/rotmanmi/segmentation.evaluation/nlp/types"

	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

const (
	FORMAT_JSON = "json"
	FORMAT_YAML = "yaml"
)

var FORMATS = []string{FORMAT_JSON, FORMAT_YAML}

type document struct {
	Items             nlp.Items `json:"items" yaml:"items"`
	HasReferenceCoder bool      `json:"has_reference_coder,omitempty" yaml:"has_reference_coder,omitempty"`
}

func newDocument(ds *nlp.Dataset) *document {
	return &document{
		Items:             ds.Items,
		HasReferenceCoder: ds.Properties.HasReferenceCoder,
	}
}

func Write(writer io.Writer, ds *nlp.Dataset, format string) error {
	switch format {
	case FORMAT_JSON:
		enc := json.NewEncoder(writer)
		enc.SetIndent("", "\t")
		return enc.Encode(newDocument(ds))
	case FORMAT_YAML:
		data, err := yaml.Marshal(newDocument(ds))
		if err != nil {
			return err
		}
		_, err = writer.Write(data)
		return err
	default:
		return fmt.Errorf("unknown dataset format %q, expected one of %v", format, FORMATS)
	}
}

// Read decodes a dataset previously written in format
func Read(reader io.Reader, format string) (*nlp.Dataset, error) {
	doc := &document{}
	switch format {
	case FORMAT_JSON:
		if err := json.NewDecoder(reader).Decode(doc); err != nil {
			return nil, err
		}
	case FORMAT_YAML:
		data, err := io.ReadAll(reader)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown dataset format %q, expected one of %v", format, FORMATS)
	}
	ds := nlp.NewDataset()
	for item, codings := range doc.Items {
		for coder, masses := range codings {
			ds.Set(item, coder, masses)
		}
	}
	ds.Properties.HasReferenceCoder = doc.HasReferenceCoder
	return ds, nil
}
