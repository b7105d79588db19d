// Package export serializes marched trajectories to structured documents.
package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/san-kum/advect/internal/advect"
)

// Part is one particle's full position history.
type Part struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// Document is the flat trajectory document. T carries the grid's stepCount
// instants while each part carries stepCount+1 samples: the marching step at
// the final instant writes one slot past the grid, and the document keeps
// that trailing value.
type Document struct {
	T     []float64 `json:"t"`
	Parts []Part    `json:"parts"`
}

// NewDocument snapshots an analysis into a document, particles in index
// order.
func NewDocument(a *advect.Analysis) (*Document, error) {
	if !a.Grid().Configured() || !a.Particles().Initialized() {
		return nil, advect.ErrNotInitialized
	}

	parts := a.Particles()
	doc := &Document{
		T:     append([]float64(nil), a.Grid().Times()...),
		Parts: make([]Part, parts.Len()),
	}
	for n := 0; n < parts.Len(); n++ {
		p := parts.At(n)
		doc.Parts[n] = Part{
			X: append([]float64(nil), p.X...),
			Y: append([]float64(nil), p.Y...),
		}
	}
	return doc, nil
}

// Write serializes an analysis to path with human-readable indentation.
func Write(path string, a *advect.Analysis) error {
	doc, err := NewDocument(a)
	if err != nil {
		return err
	}
	return WriteDocument(path, doc)
}

// WriteDocument writes an already-built document to path.
func WriteDocument(path string, doc *Document) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode export document: %w", err)
	}
	return nil
}

// Read loads a trajectory document written by Write.
func Read(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read export file: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode export document: %w", err)
	}
	return &doc, nil
}
