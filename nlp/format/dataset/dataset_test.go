package dataset

import (
	nlp "github.com/rotmanmi/segmentation.evaluation/nlp/types"

	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *nlp.Dataset {
	ds := nlp.NewDataset()
	ds.Set("cats", "reference", nlp.Masses{2, 2})
	ds.Set("cats", "reference2", nlp.Masses{3, 1})
	ds.Set("dogs", "reference", nlp.Masses{4})
	ds.Properties.HasReferenceCoder = true
	return ds
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample(), FORMAT_JSON))
	assert.JSONEq(t, `{
		"items": {
			"cats": {"reference": [2, 2], "reference2": [3, 1]},
			"dogs": {"reference": [4]}
		},
		"has_reference_coder": true
	}`, buf.String())
}

func TestWriteJSONOmitsReferenceFlag(t *testing.T) {
	ds := nlp.NewDataset()
	ds.Set("cats", "coderA", nlp.Masses{2, 2})
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, ds, FORMAT_JSON))
	assert.NotContains(t, buf.String(), nlp.FIELD_HAS_REFERENCE_CODER)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample(), FORMAT_YAML))
	out := buf.String()
	if !strings.HasPrefix(out, "items:\n") {
		t.Errorf("Expected items first, got %q", out)
	}
	assert.Contains(t, out, "has_reference_coder: true")
}

func TestReadWritten(t *testing.T) {
	for _, format := range FORMATS {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, sample(), format))
		ds, err := Read(&buf, format)
		require.NoError(t, err, format)
		assert.True(t, sample().Equal(ds), format)
	}
}

func TestUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, sample(), "xml"))
	_, err := Read(strings.NewReader("{}"), "xml")
	assert.Error(t, err)
}
