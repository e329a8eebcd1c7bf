package cls_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/geofmt/cls-codec/cls"
	"github.com/geofmt/cls-codec/errors"
)

func TestEncodeRoundTripBytes(t *testing.T) {
	data := encodeSurvey(t)
	doc, err := cls.Parse(data, cls.Options{StrictTrailingBytes: true})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out, err := doc.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(data, out) {
		t.Errorf("round trip differs: %d bytes in, %d bytes out", len(data), len(out))
	}
}

func TestEncodeDeterministic(t *testing.T) {
	doc := surveyDocument()
	a, err := doc.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	b, err := doc.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("two encodings of the same document differ")
	}
}

func TestEncodeStability(t *testing.T) {
	first, err := surveyDocument().Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	doc, err := cls.Parse(first, cls.Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	second, err := doc.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("encode-parse-encode is not stable")
	}
}

func TestEncodeFlagsPreserved(t *testing.T) {
	doc := surveyDocument()
	doc.Header.Flags = 0x80
	data, err := doc.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if data[11] != 0x81 {
		t.Errorf("flags byte = %#x, want 0x81", data[11])
	}
	parsed, err := cls.Parse(data, cls.Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed.Header.Flags != 0x81 {
		t.Errorf("parsed flags = %#x, want 0x81", parsed.Header.Flags)
	}
}

func TestEncodeHeaderNormalization(t *testing.T) {
	doc := &cls.Document{
		// Stale version and count are ignored; the encoder writes the
		// supported version and the real record count.
		Header: cls.Header{Version: 0, Count: 99, Encoding: cls.EncodingWindows1252},
		Records: []cls.Record{
			{Kind: cls.KindStation, Station: &cls.Station{Name: "N", Class: cls.ClassControl}},
		},
	}
	data, err := doc.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	parsed, err := cls.Parse(data, cls.Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed.Header.Version != cls.Version {
		t.Errorf("version = %d, want %d", parsed.Header.Version, cls.Version)
	}
	if parsed.Header.Count != 1 {
		t.Errorf("count = %d, want 1", parsed.Header.Count)
	}
}

func TestEncodeUnsupportedEncoding(t *testing.T) {
	doc := surveyDocument()
	doc.Header.Encoding = 0
	_, err := doc.Encode()
	checkError(t, err, errors.StageEncode, errors.KindEncodingError, -1)
}

func TestEncodeNameTooLong(t *testing.T) {
	doc := surveyDocument()
	doc.Records[0].Station.Name = strings.Repeat("A", cls.StationNameSize+1)
	_, err := doc.Encode()
	e := checkError(t, err, errors.StageEncode, errors.KindEncodingError, -1)
	if e.Cause == nil || !strings.Contains(e.Cause.Error(), "window is 32") {
		t.Errorf("cause = %v", e.Cause)
	}
}

func TestEncodeNameUnencodable(t *testing.T) {
	doc := surveyDocument()
	doc.Records[0].Station.Name = "あ" // not representable in latin-1
	_, err := doc.Encode()
	e := checkError(t, err, errors.StageEncode, errors.KindEncodingError, -1)
	if e.Cause == nil || !strings.Contains(e.Cause.Error(), "not representable") {
		t.Errorf("cause = %v", e.Cause)
	}
}

func TestEncodeShiftJISName(t *testing.T) {
	doc := &cls.Document{
		Header: cls.Header{Version: cls.Version, Encoding: cls.EncodingShiftJIS},
		Records: []cls.Record{
			{Kind: cls.KindStation, Station: &cls.Station{Name: "あい", Class: cls.ClassControl}},
		},
	}
	data, err := doc.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	parsed, err := cls.Parse(data, cls.Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := parsed.Records[0].Station.Name; got != "あい" {
		t.Errorf("name = %q, want \"あい\"", got)
	}
}

func TestEncodeAnnotationTextTooLong(t *testing.T) {
	doc := &cls.Document{
		Header: cls.Header{Version: cls.Version, Encoding: cls.EncodingLatin1},
		Records: []cls.Record{
			{Kind: cls.KindAnnotation, Annotation: &cls.Annotation{
				Text: strings.Repeat("x", cls.MaxAnnotationTextBytes/2+1),
			}},
		},
	}
	_, err := doc.Encode()
	e := checkError(t, err, errors.StageEncode, errors.KindMalformedField, -1)
	if len(e.Path) != 2 || e.Path[1] != "text" {
		t.Errorf("path = %v, want records[0].text", e.Path)
	}
}

func TestEncodeTraverseTooManyStations(t *testing.T) {
	doc := &cls.Document{
		Header: cls.Header{Version: cls.Version, Encoding: cls.EncodingLatin1},
		Records: []cls.Record{
			{Kind: cls.KindStation, Station: &cls.Station{Name: "S", Class: cls.ClassControl}},
			{Kind: cls.KindTraverse, Traverse: &cls.Traverse{
				Stations: make([]uint32, cls.MaxTraverseStations+1),
			}},
		},
	}
	_, err := doc.Encode()
	e := checkError(t, err, errors.StageEncode, errors.KindMalformedField, -1)
	if !strings.Contains(e.Detail, "65536 stations") {
		t.Errorf("detail = %q", e.Detail)
	}
}

func TestEncodeRejectsInvalidDocument(t *testing.T) {
	doc := surveyDocument()
	doc.Records[2].Observation.To = 99
	_, err := doc.Encode()
	checkError(t, err, errors.StageModel, errors.KindDanglingReference, -1)
}
