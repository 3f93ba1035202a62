package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/arbor/encode"
	"github.com/signadot/arbor/tree"
)

// forEachTree loads every tree document from the argument files, or from in
// when there are none ("-" also reads stdin), and calls fn with each root.
// Files may hold multiple documents separated by "\n---\n".
func forEachTree(in io.Reader, args []string, fn func(root *tree.Node[any]) error) error {
	if len(args) == 0 {
		return readerTrees(in, fn)
	}
	for _, file := range args {
		if err := fileTrees(file, fn); err != nil {
			return err
		}
	}
	return nil
}

func fileTrees(file string, fn func(root *tree.Node[any]) error) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	if err := readerTrees(f, fn); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func readerTrees(r io.Reader, fn func(root *tree.Node[any]) error) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	docs := bytes.Split(in, []byte("\n---\n"))
	for i, doc := range docs {
		root, err := encode.DecodeBytes(doc)
		if err != nil {
			return fmt.Errorf("error decoding document %d: %w", i, err)
		}
		if err := fn(root); err != nil {
			return err
		}
	}
	return nil
}
