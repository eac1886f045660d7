// Package output renders lvwords results as human-readable text, JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is an output format name.
type Format string

const (
	FormatHuman Format = "human"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Human-format messages, shared with the interactive menu.
const (
	MsgAnagram      = "✅ Yes, they are anagrams."
	MsgNotAnagram   = "❌ No, they are not anagrams."
	MsgPermutations = "All possible anagrams:"
)

// ParseFormat maps a (case-insensitive) name to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatHuman, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (want human, json or yaml)", name)
	}
}

// CheckResult is the outcome of an anagram test.
type CheckResult struct {
	First    string `json:"first" yaml:"first"`
	Second   string `json:"second" yaml:"second"`
	Strategy string `json:"strategy" yaml:"strategy"`
	Anagram  bool   `json:"anagram" yaml:"anagram"`
}

// PermuteResult is the outcome of a permutation run.
type PermuteResult struct {
	Word         string   `json:"word" yaml:"word"`
	Total        string   `json:"total" yaml:"total"` // exact, may exceed 64 bits
	Emitted      int      `json:"emitted" yaml:"emitted"`
	Truncated    bool     `json:"truncated" yaml:"truncated"`
	Permutations []string `json:"permutations" yaml:"permutations"`
}

// CountResult is the number of distinct permutations of a word.
type CountResult struct {
	Word  string `json:"word" yaml:"word"`
	Count string `json:"count" yaml:"count"`
}

// Printer writes results to w in a fixed format.
type Printer struct {
	w      io.Writer
	format Format
}

// NewPrinter returns a Printer writing format to w.
func NewPrinter(w io.Writer, format Format) *Printer {
	return &Printer{w: w, format: format}
}

// Streams reports whether permutations should be written one by one with
// Line as they are generated, instead of as a single Permutations document.
func (p *Printer) Streams() bool {
	return p.format == FormatHuman
}

// Line writes s followed by a newline.
func (p *Printer) Line(s string) error {
	_, err := fmt.Fprintln(p.w, s)

	return err
}

// Check writes an anagram test result.
func (p *Printer) Check(r CheckResult) error {
	if p.format != FormatHuman {
		return p.encode(r)
	}
	if r.Anagram {
		return p.Line(MsgAnagram)
	}

	return p.Line(MsgNotAnagram)
}

// Permutations writes a permutation run. In human format only the trailer is
// written, since the permutations themselves were streamed with Line.
func (p *Printer) Permutations(r PermuteResult) error {
	if p.format != FormatHuman {
		if r.Permutations == nil {
			r.Permutations = []string{}
		}

		return p.encode(r)
	}
	if r.Truncated {
		return p.Line(fmt.Sprintf("... output truncated after %d of %s permutations", r.Emitted, r.Total))
	}

	return nil
}

// Count writes a permutation count.
func (p *Printer) Count(r CountResult) error {
	if p.format != FormatHuman {
		return p.encode(r)
	}

	return p.Line(r.Count)
}

// encode writes v as an indented JSON or YAML document.
func (p *Printer) encode(v interface{}) error {
	switch p.format {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(p.w, string(data))

		return err
	case FormatYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}

		return enc.Close()
	default:
		return fmt.Errorf("unsupported format: %s", p.format)
	}
}
