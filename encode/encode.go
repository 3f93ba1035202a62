// Package encode reads and writes trees as YAML or JSON documents.
//
// A document is a nested object with a "value" field holding the node
// payload and an optional "children" list:
//
//	value: f
//	children:
//	  - value: b
//	  - value: g
//
// JSON input parses as well, being a subset of YAML. Decoding builds the
// tree through the tree package's public linkage contract, so a malformed
// document surfaces linkage errors rather than a half-linked tree.
package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/signadot/arbor/tree"
)

// Doc is the document form of one tree node.
type Doc struct {
	Value    any    `yaml:"value" json:"value"`
	Children []*Doc `yaml:"children,omitempty" json:"children,omitempty"`
}

// Decode reads one tree document from r.
func Decode(r io.Reader) (*tree.Node[any], error) {
	in, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	return DecodeBytes(in)
}

// DecodeBytes parses one tree document.
func DecodeBytes(b []byte) (*tree.Node[any], error) {
	doc := &Doc{}
	if err := yaml.Unmarshal(b, doc); err != nil {
		return nil, fmt.Errorf("error decoding document: %w", err)
	}
	return build(doc)
}

func build(d *Doc) (*tree.Node[any], error) {
	n := tree.New(d.Value)
	for i, cd := range d.Children {
		if cd == nil {
			return nil, fmt.Errorf("%w: child document %d of %v is empty", tree.ErrNilNode, i, d.Value)
		}
		c, err := build(cd)
		if err != nil {
			return nil, err
		}
		if err := c.SetParent(n); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// Encode writes the tree rooted at n to w, in YAML by default.
func Encode(n *tree.Node[any], w io.Writer, opts ...EncodeOption) error {
	es := &EncState{format: YAMLFormat, indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	doc := toDoc(n)
	var (
		out []byte
		err error
	)
	switch es.format {
	case JSONFormat:
		out, err = json.MarshalIndent(doc, "", strings.Repeat(" ", es.indent))
		if err == nil {
			out = append(out, '\n')
		}
	default:
		out, err = yaml.MarshalWithOptions(doc, yaml.Indent(es.indent))
	}
	if err != nil {
		return fmt.Errorf("error encoding document: %w", err)
	}
	_, err = w.Write(out)
	return err
}

func toDoc(n *tree.Node[any]) *Doc {
	d := &Doc{Value: n.Data}
	for _, c := range n.Children() {
		d.Children = append(d.Children, toDoc(c))
	}
	return d
}
