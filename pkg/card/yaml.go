package card

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// tableEntry is the YAML shape of one Entry in the table sequence:
//
//	brand: MasterCard
//	prefixes: ["2221-2720", "51-55"]
//
// A prefix may also be written as a mapping with a documentary length:
//
//	prefixes: [{value: "2221-2720", length: 4}, "51-55"]
type tableEntry struct {
	Brand    string       `yaml:"brand"`
	Prefixes []prefixNode `yaml:"prefixes"`
}

type prefixNode struct {
	Value  string `yaml:"value"`
	Length int    `yaml:"length,omitempty"`
}

// UnmarshalYAML accepts both the scalar and the mapping form of a prefix.
func (p *prefixNode) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		p.Value = node.Value
		return nil
	}
	type plain prefixNode
	return node.Decode((*plain)(p))
}

func (p prefixNode) MarshalYAML() (any, error) {
	return p.Value, nil
}

// DecodeTable reads a prefix table from a YAML document.
// Declared prefix lengths are checked against the rule and never used for
// matching.
func DecodeTable(r io.Reader) (Table, error) {
	var doc []tableEntry
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyTable
		}
		return nil, errors.Join(ErrDecodeTable, err)
	}
	if len(doc) == 0 {
		return nil, ErrEmptyTable
	}

	table := make(Table, 0, len(doc))
	for i, te := range doc {
		e := Entry{Brand: Brand(te.Brand), Rules: make([]Rule, 0, len(te.Prefixes))}
		for _, p := range te.Prefixes {
			rule, err := ParseRule(p.Value)
			if err != nil {
				return nil, fmt.Errorf("entry %d (%s): %w", i, te.Brand, err)
			}
			if p.Length != 0 && p.Length != rule.Len() {
				return nil, fmt.Errorf("entry %d (%s): %w: %q declares %d, compares %d",
					i, te.Brand, ErrLengthMismatch, p.Value, p.Length, rule.Len())
			}
			e.Rules = append(e.Rules, rule)
		}
		if err := validateEntry(e); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		table = append(table, e)
	}
	return table, nil
}

// EncodeTable writes t as a YAML document readable by DecodeTable.
func EncodeTable(w io.Writer, t Table) error {
	doc := make([]tableEntry, len(t))
	for i, e := range t {
		te := tableEntry{Brand: string(e.Brand), Prefixes: make([]prefixNode, len(e.Rules))}
		for j, r := range e.Rules {
			te.Prefixes[j] = prefixNode{Value: r.String()}
		}
		doc[i] = te
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
