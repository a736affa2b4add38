package render

import (
	"encoding/json"
	"io"
	"strings"

	"csf2det/internal/guga"

	"gopkg.in/yaml.v3"
)

// Document is the structured form of one expansion, shared by the json and
// yaml emitters.
type Document struct {
	Name         string  `json:"name,omitempty" yaml:"name,omitempty"`
	StepVector   string  `json:"stepvec" yaml:"stepvec"`
	TwoMs        int     `json:"twoms" yaml:"twoms"`
	Electrons    int     `json:"electrons" yaml:"electrons"`
	Orbitals     int     `json:"orbitals" yaml:"orbitals"`
	Spin         int     `json:"two_s" yaml:"two_s"`
	Subsets      uint64  `json:"subsets" yaml:"subsets"`
	Determinants []Entry `json:"determinants" yaml:"determinants"`
	Truncated    bool    `json:"truncated,omitempty" yaml:"truncated,omitempty"`
	Norm         string  `json:"norm,omitempty" yaml:"norm,omitempty"`
}

// Entry is one determinant of a Document.
type Entry struct {
	Phase       int    `json:"phase" yaml:"phase"`
	Numerator   int64  `json:"numerator" yaml:"numerator"`
	Denominator int64  `json:"denominator" yaml:"denominator"`
	Determinant string `json:"determinant" yaml:"determinant"`
}

func newEntry(d guga.Determinant) Entry {
	var sb strings.Builder
	for _, s := range d.Spins {
		sb.WriteByte(byte(s))
	}
	return Entry{
		Phase:       d.Phase,
		Numerator:   d.Weight.Num,
		Denominator: d.Weight.Den,
		Determinant: sb.String(),
	}
}

// documentEmitter collects an expansion and hands the finished Document to
// encode.
type documentEmitter struct {
	doc    Document
	encode func(Document) error
}

func (e *documentEmitter) Begin(s Summary) error {
	e.doc = Document{
		Name:         s.Name,
		StepVector:   s.StepVector,
		TwoMs:        s.TwoMs,
		Electrons:    s.Electrons,
		Orbitals:     s.Orbitals,
		Spin:         s.Spin,
		Subsets:      s.Subsets,
		Determinants: []Entry{},
	}
	return nil
}

func (e *documentEmitter) Determinant(d guga.Determinant) error {
	e.doc.Determinants = append(e.doc.Determinants, newEntry(d))
	return nil
}

func (e *documentEmitter) End(s Summary) error {
	e.doc.Truncated = s.Truncated
	if s.Norm != nil {
		e.doc.Norm = s.Norm.RatString()
	}
	return e.encode(e.doc)
}

// NewJSONEmitter writes one indented JSON document per expansion.
func NewJSONEmitter(w io.Writer) Emitter {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &documentEmitter{encode: func(d Document) error { return enc.Encode(d) }}
}

// NewYAMLEmitter writes one YAML document per expansion, separated by
// "---" lines.
func NewYAMLEmitter(w io.Writer) Emitter {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return &documentEmitter{encode: func(d Document) error { return enc.Encode(d) }}
}
