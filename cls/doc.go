// Package cls provides parsing and encoding of the CLS legacy binary
// survey format.
//
// A CLS file is a fixed little-endian header followed by a sequence of
// variable-length typed records. The package decodes whole files into an
// in-memory Document, validates cross-record invariants, and encodes
// documents back to bytes deterministically.
//
// # Record Kinds
//
//	Station     surveyed point: coordinates, class, legacy-encoded name
//	Observation instrument shot between two stations
//	Annotation  free-form UTF-16LE text, optionally anchored to a record
//	Fix         GNSS position fix with quality grade
//	Traverse    ordered path through station records
//
// # Parsing
//
// Parse a CLS file from bytes:
//
//	data, _ := os.ReadFile("survey.cls")
//	doc, err := cls.Parse(data, cls.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Parse is all or nothing: it validates the document and returns no
// partial result on error. Every error is an *errors.Error carrying the
// processing stage, a category, the byte offset, and the field path.
// It never panics, however malformed the input.
//
// Options tune strictness:
//
//	doc, err := cls.Parse(data, cls.Options{
//	    StrictTrailingBytes: true,              // reject unconsumed bytes
//	    Encoding:            cls.EncodingLatin1, // override declared encoding
//	    OnDecodeError:       cls.DecodeReplace,  // U+FFFD instead of failing
//	})
//
// Decode parses the container without model validation for tooling that
// must inspect structurally sound but inconsistent files.
//
// # Encoding
//
// Encode a document back to binary:
//
//	out, err := doc.Encode()
//
// Round trips are byte-exact for well-formed input:
//
//	doc, _ := cls.Parse(data, cls.Options{StrictTrailingBytes: true})
//	out, _ := doc.Encode()
//	// bytes.Equal(data, out)
//
// # Validation
//
// Validate checks cross-record invariants, in order: references resolve,
// reference targets are stations where required, classification codes
// are known, floats are finite, and coordinates lie inside the declared
// extents. Documents built in memory should be validated before use:
//
//	if err := doc.Validate(); err != nil {
//	    log.Printf("inconsistent document: %v", err)
//	}
//
// # Rendering
//
// ToValue renders a document as an ordered value tree for deterministic
// JSON or YAML export:
//
//	tree := doc.ToValue(cls.ValueOptions{Angles: cls.AngleDMS})
//	out, _ := tree.MarshalJSON()
//
// Equal documents always render byte-identical output.
package cls
