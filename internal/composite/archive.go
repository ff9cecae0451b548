package composite

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
)

// ToZipBytes archives the shape of the tree under root: directories become
// "name/" entries and files become empty entries, each named after its path
// without the leading separator.
func ToZipBytes(root *Dir) ([]byte, error) {
	var buf bytes.Buffer
	zipWriter := zip.NewWriter(&buf)

	for _, child := range root.children {
		if err := compressNode(zipWriter, child); err != nil {
			zipWriter.Close()
			return nil, err
		}
	}

	if err := zipWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zip writer: %w", err)
	}

	return buf.Bytes(), nil
}

func compressNode(zw *zip.Writer, node Node) error {
	p, err := node.Path()
	if err != nil {
		return err
	}
	archivePath := strings.TrimPrefix(p, RootPath)

	switch n := node.(type) {
	case *File:
		return addEntry(zw, archivePath, zip.Deflate)
	case *Dir:
		if err := addEntry(zw, archivePath, zip.Store); err != nil {
			return err
		}
		for _, child := range n.children {
			if err := compressNode(zw, child); err != nil {
				return err
			}
		}
	}
	return nil
}

func addEntry(zw *zip.Writer, name string, method uint16) error {
	header := &zip.FileHeader{
		Name:   name,
		Method: method,
	}
	if _, err := zw.CreateHeader(header); err != nil {
		return fmt.Errorf("failed to create zip entry %s: %w", name, err)
	}
	return nil
}
