package cls

import "fmt"

// DecodePolicy selects how undecodable text bytes are handled.
type DecodePolicy uint8

// Decode policies for text fields.
const (
	// DecodeFail rejects input whose text fields contain byte sequences
	// invalid in the declared encoding.
	DecodeFail DecodePolicy = iota

	// DecodeReplace substitutes U+FFFD for invalid sequences and keeps
	// parsing.
	DecodeReplace
)

// Options control parsing. The zero value is the default behaviour:
// trailing bytes are tolerated, the declared encoding is honoured, and
// undecodable text is rejected.
type Options struct {
	// StrictTrailingBytes rejects input that has unconsumed bytes after
	// the last record.
	StrictTrailingBytes bool

	// Encoding overrides the encoding declared in the header when nonzero.
	Encoding EncodingID

	// OnDecodeError selects the policy for undecodable text bytes.
	OnDecodeError DecodePolicy
}

// AngleMode selects how angular fields are rendered.
type AngleMode uint8

// Angle render modes.
const (
	AngleDegrees AngleMode = iota // decimal degrees, numeric
	AngleDMS                      // degree-minute-second string
	AngleGon                      // gon (grad), numeric
)

// PointMode selects how coordinate triples are rendered.
type PointMode uint8

// Point render modes.
const (
	PointMap PointMode = iota // {x, y, z} mapping
	PointSeq                  // [x, y, z] sequence
)

// ValueOptions control document-to-value-tree rendering. The zero value
// renders angles as decimal degrees and points as mappings.
type ValueOptions struct {
	Angles AngleMode
	Points PointMode
}

// ParseEncoding maps an encoding name to its EncodingID. It accepts the
// canonical names produced by EncodingID.String plus common aliases.
func ParseEncoding(name string) (EncodingID, error) {
	switch name {
	case "shift-jis", "shift_jis", "sjis":
		return EncodingShiftJIS, nil
	case "latin-1", "latin1", "iso-8859-1":
		return EncodingLatin1, nil
	case "windows-1252", "cp1252":
		return EncodingWindows1252, nil
	}
	return 0, fmt.Errorf("unknown encoding %q", name)
}

// ParseAngleMode maps an angle mode name to its AngleMode.
func ParseAngleMode(name string) (AngleMode, error) {
	switch name {
	case "degrees":
		return AngleDegrees, nil
	case "dms":
		return AngleDMS, nil
	case "gon":
		return AngleGon, nil
	}
	return 0, fmt.Errorf("unknown angle mode %q", name)
}

// ParsePointMode maps a point mode name to its PointMode.
func ParsePointMode(name string) (PointMode, error) {
	switch name {
	case "map":
		return PointMap, nil
	case "seq":
		return PointSeq, nil
	}
	return 0, fmt.Errorf("unknown point mode %q", name)
}
