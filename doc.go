// Package clscodec parses, validates, and renders CLS survey files.
//
// CLS is a little-endian binary container for survey field data: stations,
// total-station observations, GNSS fixes, traverse definitions, and free-form
// annotations, with an optional bounding-extents block. This library decodes
// CLS files into a validated in-memory Document, encodes Documents back to
// canonical bytes, and renders them as deterministic JSON or YAML.
//
// # Architecture Overview
//
// The library is organized into focused packages:
//
//	clscodec/            Root package with one-call Parse/ExportJSON/ExportYAML
//	├── cls/             Format package: types, decoder, validator, encoder,
//	│   │                text transcoding, value-tree rendering
//	│   └── internal/binary/   Bounds-checked cursor and writer primitives
//	├── errors/          Structured error types with stage, kind, offset, path
//	├── value/           Ordered value tree with deterministic JSON/YAML output
//	└── cmd/clsdump/     CLI for inspecting, converting, and browsing CLS files
//
// # Quick Start
//
// Parse a file and render it as JSON:
//
//	data, err := os.ReadFile("survey.cls")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	doc, err := clscodec.Parse(data, cls.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	clscodec.ExportJSON(os.Stdout, doc, cls.ValueOptions{})
//
// Build a document in memory and encode it:
//
//	doc := &cls.Document{
//	    Header: cls.Header{Encoding: cls.EncodingLatin1},
//	    Records: []cls.Record{
//	        {Kind: cls.KindStation, Station: &cls.Station{
//	            Name: "BM-01", X: 10, Y: 20, Z: 5, Class: cls.ClassBenchmark,
//	        }},
//	    },
//	}
//	raw, err := doc.Encode()
//
// # Error Handling
//
// Every failure surfaces as an *errors.Error carrying the pipeline stage
// (header, record, model, encode), a machine-readable kind, the byte offset
// in the input where the problem sits, and a field path such as
// records[3].name. Parse is all-or-nothing: it returns either a fully valid
// Document or exactly one such error.
//
// # Logging
//
// The library is silent by default. Install a zap logger before parsing to
// see debug-level tracing:
//
//	cls.SetLogger(logger)
package clscodec
