// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report reads the aggregated measurement summary produced by
// a run matrix.
//
// A summary is a JSON document of the form
//
//	{"tools": {
//	  "lighthouse": {"variants": {
//	    "A": {"metrics": {"LCP": {"values": [1510, 1498, ...]}}}}}}}
//
// Fields other than these are ignored.
package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// A Summary is the set of measurements for every tool in a run
// matrix.
type Summary struct {
	// Tools lists the tools in the order they appear in the
	// summary file.
	Tools []Tool
}

// A Tool holds the measurements collected by one measurement tool.
type Tool struct {
	Name     string
	Variants map[string]Variant
}

// A Variant holds the measurements of one page variant.
type Variant struct {
	Metrics map[string]Metric `json:"metrics"`
}

// A Metric holds the samples of one metric.
type Metric struct {
	Values []float64 `json:"values"`
}

// Tool returns the tool with the given name, or nil.
func (s *Summary) Tool(name string) *Tool {
	for i := range s.Tools {
		if s.Tools[i].Name == name {
			return &s.Tools[i]
		}
	}
	return nil
}

// Values returns the samples of metric for variant, or nil if the tool
// has no such measurements.
func (t *Tool) Values(variant, metric string) []float64 {
	v, ok := t.Variants[variant]
	if !ok {
		return nil
	}
	return v.Metrics[metric].Values
}

// ErrNoSummary is returned by Open if the summary file does not exist.
var ErrNoSummary = errors.New("no summary file")

// SyntaxError reports a malformed summary file.
type SyntaxError struct {
	FileName string
	Msg      string
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", s.FileName, s.Msg)
}

// Open reads the summary file at path.
func Open(path string) (*Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoSummary, path)
		}
		return nil, err
	}
	defer f.Close()
	return Read(f, path)
}

// Read decodes a summary from r. fileName is used in error messages.
func Read(r io.Reader, fileName string) (*Summary, error) {
	if fileName == "" {
		fileName = "<unknown>"
	}
	var doc struct {
		Tools toolList `json:"tools"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		var synErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &synErr) || errors.As(err, &typeErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, &SyntaxError{fileName, err.Error()}
		}
		if _, ok := err.(*shapeError); ok {
			return nil, &SyntaxError{fileName, err.Error()}
		}
		return nil, fmt.Errorf("reading %s: %w", fileName, err)
	}
	return &Summary{Tools: doc.Tools}, nil
}

// toolList decodes the "tools" object, keeping the order of its keys.
type toolList []Tool

func (l *toolList) UnmarshalJSON(data []byte) error {
	*l = nil
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		// "tools": null
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return &shapeError{fmt.Sprintf("tools: expected object, found %v", tok)}
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name := tok.(string)
		var body struct {
			Variants map[string]Variant `json:"variants"`
		}
		if err := dec.Decode(&body); err != nil {
			return &shapeError{fmt.Sprintf("tool %q: %v", name, err)}
		}
		*l = append(*l, Tool{Name: name, Variants: body.Variants})
	}
	_, err = dec.Token()
	return err
}

// shapeError is a well-formed JSON document with an unexpected
// structure.
type shapeError struct {
	msg string
}

func (e *shapeError) Error() string { return e.msg }
