// Package fixture reads decode parameter records from YAML documents.
//
// Each document names the record kind and gives its fields under "record":
//
//	kind: VdpPictureInfoVC1
//	record:
//	  forward_reference: 0xffffffff
//	  slice_count: 1
//
// Field keys are the snake_case C field names. Fixed-size arrays must be
// given in full or left out. A file may hold several documents separated by
// "---".
package fixture

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"vdptrace/internal/printers"
)

// Record is one decoded fixture document.
type Record struct {
	Kind  string
	Value any // pointer to the record shape registered for Kind
}

type document struct {
	Kind   string    `yaml:"kind"`
	Record yaml.Node `yaml:"record"`
}

// Decode reads every document from r and allocates each record from reg.
func Decode(r io.Reader, reg *printers.Register) ([]Record, error) {
	dec := yaml.NewDecoder(r)
	var recs []Record
	for i := 0; ; i++ {
		var doc document
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return recs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		if doc.Kind == "" && doc.Record.IsZero() {
			continue
		}

		d, err := reg.ByKind(doc.Kind)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		v := d.New()
		if !doc.Record.IsZero() {
			if err := doc.Record.Decode(v); err != nil {
				return nil, fmt.Errorf("document %d (%s): %w", i, doc.Kind, err)
			}
		}
		recs = append(recs, Record{Kind: doc.Kind, Value: v})
	}
}

// Load decodes the fixture file at path.
func Load(path string, reg *printers.Register) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture: %w", err)
	}
	defer f.Close()

	recs, err := Decode(f, reg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}
