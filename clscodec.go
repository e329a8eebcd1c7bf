package clscodec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/geofmt/cls-codec/cls"
)

// Parse decodes and validates a CLS file. It is shorthand for cls.Parse
// for callers that only need the one-call surface of this package.
func Parse(data []byte, opts cls.Options) (*cls.Document, error) {
	return cls.Parse(data, opts)
}

// ExportJSON writes the document as indented JSON followed by a newline.
// The output is deterministic: exporting the same document twice yields
// identical bytes. Callers that need the compact canonical form should
// marshal doc.ToValue directly.
func ExportJSON(w io.Writer, doc *cls.Document, opts cls.ValueOptions) error {
	raw, err := doc.ToValue(opts).MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("indent document: %w", err)
	}
	buf.WriteByte('\n')
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

// ExportYAML writes the document as a YAML stream with two-space
// indentation. Mapping keys keep the same order as the JSON export.
func ExportYAML(w io.Writer, doc *cls.Document, opts cls.ValueOptions) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc.ToValue(opts).Node()); err != nil {
		enc.Close()
		return fmt.Errorf("encode document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("flush document: %w", err)
	}
	return nil
}
