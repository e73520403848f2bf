package types

import (
	"sort"
)

const (
	DEFAULT_DELIMITER         = '\t'
	FIELD_HAS_REFERENCE_CODER = "has_reference_coder"
	CODER_REFERENCE           = "reference"
)

// Masses holds one mass (morpheme length) per morpheme of a segmentation
type Masses []int

func (m Masses) Equal(other Masses) bool {
	if len(m) != len(other) {
		return false
	}
	for i, val := range m {
		if other[i] != val {
			return false
		}
	}
	return true
}

func (m Masses) Sum() int {
	var retval int
	for _, val := range m {
		retval += val
	}
	return retval
}

// Codings maps a coder to the masses it assigned to an item
type Codings map[string]Masses

type Items map[string]Codings

type Properties struct {
	HasReferenceCoder bool
}

// Dataset is a collection of segmentation masses keyed by item then coder.
// It is not safe for concurrent mutation.
type Dataset struct {
	Items      Items
	Properties Properties
}

func NewDataset() *Dataset {
	return &Dataset{Items: make(Items)}
}

func (d *Dataset) Contains(item string) bool {
	_, exists := d.Items[item]
	return exists
}

// Add creates an empty coding map for item if it has none
func (d *Dataset) Add(item string) Codings {
	codings, exists := d.Items[item]
	if !exists {
		codings = make(Codings)
		d.Items[item] = codings
	}
	return codings
}

// Set stores masses for (item, coder), replacing any previous value
func (d *Dataset) Set(item, coder string, masses Masses) {
	d.Add(item)[coder] = masses
}

func (d *Dataset) Get(item, coder string) (Masses, bool) {
	codings, exists := d.Items[item]
	if !exists {
		return nil, false
	}
	masses, exists := codings[coder]
	return masses, exists
}

func (d *Dataset) Len() int {
	return len(d.Items)
}

func (d *Dataset) ItemNames() []string {
	retval := make([]string, 0, len(d.Items))
	for item := range d.Items {
		retval = append(retval, item)
	}
	sort.Strings(retval)
	return retval
}

// Coders returns the sorted union of coder names over all items
func (d *Dataset) Coders() []string {
	seen := make(map[string]bool)
	retval := make([]string, 0, 1)
	for _, codings := range d.Items {
		for coder := range codings {
			if !seen[coder] {
				seen[coder] = true
				retval = append(retval, coder)
			}
		}
	}
	sort.Strings(retval)
	return retval
}

func (d *Dataset) Equal(other *Dataset) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.Properties != other.Properties || len(d.Items) != len(other.Items) {
		return false
	}
	for item, codings := range d.Items {
		otherCodings, exists := other.Items[item]
		if !exists || len(codings) != len(otherCodings) {
			return false
		}
		for coder, masses := range codings {
			otherMasses, exists := otherCodings[coder]
			if !exists || !masses.Equal(otherMasses) {
				return false
			}
		}
	}
	return true
}
