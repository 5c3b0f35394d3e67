// SPDX-License-Identifier: MIT

package spacefile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sheaf/cellcomplex"
	"github.com/katalvlaran/sheaf/gluing"
	"github.com/katalvlaran/sheaf/graphspace"
	"github.com/katalvlaran/sheaf/section"
	"github.com/katalvlaran/sheaf/topology"
)

var (
	// ErrMissingBlock indicates the document has no block of the requested kind.
	ErrMissingBlock = errors.New("spacefile: block not present")

	// ErrMalformedEdge indicates an edge entry that is not a pair.
	ErrMalformedEdge = errors.New("spacefile: edge must have exactly two endpoints")
)

// Document is the decoded form of a space file.
type Document struct {
	Graph   *GraphSpec   `yaml:"graph,omitempty"`
	Complex *ComplexSpec `yaml:"complex,omitempty"`
	Cover   []PatchSpec  `yaml:"cover,omitempty"`
}

// GraphSpec describes an undirected graph over integer vertices.
type GraphSpec struct {
	Vertices []int   `yaml:"vertices"`
	Edges    [][]int `yaml:"edges"`
}

// ComplexSpec describes a cell complex.
type ComplexSpec struct {
	MaxDim      int          `yaml:"max_dim"`
	Cells       []CellSpec   `yaml:"cells"`
	Attachments []AttachSpec `yaml:"attachments"`
}

// CellSpec names one cell.
type CellSpec struct {
	ID  string `yaml:"id"`
	Dim int    `yaml:"dim"`
}

// AttachSpec is one symmetric attachment.
type AttachSpec struct {
	A CellSpec `yaml:"a"`
	B CellSpec `yaml:"b"`
}

// PatchSpec is one cover entry over integer points with string values.
type PatchSpec struct {
	Domain []int          `yaml:"domain"`
	Values map[int]string `yaml:"values"`
}

// Decode reads one YAML document from r.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("spacefile: decode: %w", err)
	}

	return &doc, nil
}

// Load reads and decodes the file at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("spacefile: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// BuildGraph constructs the graph block.
func (d *Document) BuildGraph() (*graphspace.Space[int], error) {
	if d.Graph == nil {
		return nil, fmt.Errorf("%w: graph", ErrMissingBlock)
	}
	edges := make([]graphspace.Edge[int], 0, len(d.Graph.Edges))
	for i, e := range d.Graph.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("%w: edge %d has %d", ErrMalformedEdge, i, len(e))
		}
		edges = append(edges, graphspace.E(e[0], e[1]))
	}
	g, err := graphspace.New(d.Graph.Vertices, edges)
	if err != nil {
		return nil, fmt.Errorf("spacefile: graph: %w", err)
	}

	return g, nil
}

// BuildComplex assembles and freezes the complex block. Cells are added in
// file order, then attachments are applied.
func (d *Document) BuildComplex(opts ...cellcomplex.Option) (*cellcomplex.Complex, error) {
	if d.Complex == nil {
		return nil, fmt.Errorf("%w: complex", ErrMissingBlock)
	}
	b, err := cellcomplex.NewBuilder(d.Complex.MaxDim, opts...)
	if err != nil {
		return nil, fmt.Errorf("spacefile: complex: %w", err)
	}
	for _, c := range d.Complex.Cells {
		if _, err := b.AddCell(c.ID, c.Dim); err != nil {
			return nil, fmt.Errorf("spacefile: complex: %w", err)
		}
	}
	for _, a := range d.Complex.Attachments {
		if err := b.Attach(cellcomplex.Ref(a.A.Dim, a.A.ID), cellcomplex.Ref(a.B.Dim, a.B.ID)); err != nil {
			return nil, fmt.Errorf("spacefile: complex: %w", err)
		}
	}

	return b.Freeze()
}

// BuildCover converts the cover block. An empty domain list defaults to the
// keys of values. An absent block yields an empty cover.
func (d *Document) BuildCover() (gluing.Cover[int, string], error) {
	cover := make(gluing.Cover[int, string], 0, len(d.Cover))
	for i, p := range d.Cover {
		if len(p.Domain) == 0 {
			cover = append(cover, gluing.PatchOf(section.FromMap(p.Values)))
			continue
		}
		domain := topology.NewOpenSet(p.Domain...)
		s, err := section.New(domain, p.Values)
		if err != nil {
			return nil, fmt.Errorf("spacefile: cover patch %d: %w", i, err)
		}
		cover = append(cover, gluing.Patch[int, string]{Domain: domain, Section: s})
	}

	return cover, nil
}
