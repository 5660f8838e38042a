package slnx

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"
)

// Marshal serializes the document with an XML declaration and
// two-space indentation.
func Marshal(doc *Document) ([]byte, error) {
	var buf strings.Builder
	buf.WriteString(xml.Header)

	encoder := xml.NewEncoder(&buf)
	encoder.Indent("", "  ")

	if err := encoder.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode slnx: %w", err)
	}
	buf.WriteString("\n")

	return []byte(buf.String()), nil
}

// WriteFile serializes the document and writes it to path in one step,
// so the output file never holds a partially assembled solution.
func WriteFile(path string, doc *Document) error {
	data, err := Marshal(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("cannot write slnx file: %w", err)
	}
	return nil
}
