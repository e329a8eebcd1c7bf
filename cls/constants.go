package cls

// CLS container magic number and version.
const (
	// Magic is the CLS container magic number ("CLSF" in little-endian).
	Magic uint32 = 0x46534C43

	// Version is the supported CLS container format version.
	Version uint16 = 0x01
)

// Header layout sizes in bytes.
const (
	HeaderSize  = 16 // fixed header: magic, version, count, encoding, flags, reserved
	ExtentsSize = 48 // optional extents block: six float64 bounds
)

// Header flag bits.
const (
	FlagExtents byte = 0x01 // extents block follows the fixed header
)

// Record kinds identify the payload layout of each record.
// Records appear back to back after the header, header count times.
const (
	KindStation     byte = 0x01 // surveyed station with coordinates and name
	KindObservation byte = 0x02 // instrument observation between two stations
	KindAnnotation  byte = 0x03 // free-form UTF-16LE text, optionally anchored
	KindFix         byte = 0x04 // GNSS position fix
	KindTraverse    byte = 0x05 // ordered station path
)

// Record framing size: kind byte plus little-endian u32 payload length.
const RecordFramingSize = 5

// Fixed payload sizes for the fixed-layout record kinds.
const (
	StationPayloadSize     = 59 // X Y Z f64, class u16, flags u8, 32-byte name window
	ObservationPayloadSize = 34 // from/to u32, azimuth/distance/deltaH f64, prism i16
	FixPayloadSize         = 30 // X Y Z f64, hdop f32, quality u16
)

// Station name field width. Shorter names are padded with 0x20 or 0x00;
// both pads strip identically on decode.
const StationNameSize = 32

// Station flag bits.
const (
	StationFlagHeldFixed byte = 0x01 // coordinates held fixed in adjustment
)

// Annotation limits. Text is UTF-16LE, so the byte length must be even.
const MaxAnnotationTextBytes = 1024

// Traverse limits. The station count field is a u16.
const MaxTraverseStations = 65535

// EncodingID identifies the legacy text encoding declared in the header.
// It governs how station name windows are decoded.
type EncodingID uint8

// Declared legacy text encodings.
const (
	EncodingShiftJIS    EncodingID = 1 // Shift-JIS (multi-byte)
	EncodingLatin1      EncodingID = 2 // ISO 8859-1
	EncodingWindows1252 EncodingID = 3 // Windows code page 1252
)

// String returns the canonical lowercase name for the encoding.
func (e EncodingID) String() string {
	switch e {
	case EncodingShiftJIS:
		return "shift-jis"
	case EncodingLatin1:
		return "latin-1"
	case EncodingWindows1252:
		return "windows-1252"
	default:
		return "unknown"
	}
}

// StationClass classifies a surveyed station.
type StationClass uint16

// Station classification codes.
const (
	ClassControl   StationClass = 1 // control network station
	ClassBenchmark StationClass = 2 // levelled benchmark
	ClassTraverse  StationClass = 3 // traverse station
	ClassDetail    StationClass = 4 // detail shot
	ClassBoundary  StationClass = 5 // boundary mark
	ClassMonument  StationClass = 6 // recovered monument
)

// String returns the canonical lowercase name for the class.
func (c StationClass) String() string {
	switch c {
	case ClassControl:
		return "control"
	case ClassBenchmark:
		return "benchmark"
	case ClassTraverse:
		return "traverse"
	case ClassDetail:
		return "detail"
	case ClassBoundary:
		return "boundary"
	case ClassMonument:
		return "monument"
	default:
		return "unknown"
	}
}

// FixQuality grades a GNSS fix solution.
type FixQuality uint16

// Fix quality codes.
const (
	QualitySingle       FixQuality = 1 // autonomous single-point solution
	QualityDifferential FixQuality = 2 // code-differential solution
	QualityFloat        FixQuality = 3 // carrier-phase float solution
	QualityFixed        FixQuality = 4 // carrier-phase fixed solution
)

// String returns the canonical lowercase name for the quality.
func (q FixQuality) String() string {
	switch q {
	case QualitySingle:
		return "single"
	case QualityDifferential:
		return "differential"
	case QualityFloat:
		return "float"
	case QualityFixed:
		return "fixed"
	default:
		return "unknown"
	}
}
