package cls

// Document represents a fully parsed CLS file. Every field is copied out
// of the input buffer; the caller may reuse or discard the buffer as soon
// as Parse returns.
type Document struct {
	Header  Header
	Extents *Extents // nil when the header does not declare an extents block
	Records []Record
}

// Header holds the fixed container header fields.
type Header struct {
	Version  uint16
	Count    uint32 // declared record count
	Encoding EncodingID
	Flags    byte
	Reserved uint32 // opaque, preserved verbatim across decode and encode
}

// Extents is the optional bounding box over all station and fix coordinates.
type Extents struct {
	MinX float64
	MinY float64
	MinZ float64
	MaxX float64
	MaxY float64
	MaxZ float64
}

// Record is one parsed record. Kind selects the payload; exactly one of
// the payload pointers is non-nil, matching Kind.
type Record struct {
	Station     *Station
	Observation *Observation
	Annotation  *Annotation
	Fix         *Fix
	Traverse    *Traverse
	Kind        byte
	Offset      int // byte offset of the record in the source input, 0 if built in memory
}

// Station is a surveyed point with coordinates and a named marker.
type Station struct {
	Name  string
	X     float64
	Y     float64
	Z     float64
	Class StationClass
	Flags byte
}

// HeldFixed reports whether the station's coordinates are held fixed
// in adjustment.
func (s *Station) HeldFixed() bool {
	return s.Flags&StationFlagHeldFixed != 0
}

// Observation is a single instrument observation between two stations.
// From and To are record indices and must refer to Station records.
type Observation struct {
	From       uint32
	To         uint32
	Azimuth    float64 // decimal degrees
	Distance   float64 // metres
	DeltaH     float64 // height difference, metres
	PrismConst int16   // prism constant, millimetres
}

// Annotation is free-form text, optionally anchored to a record.
// Target is meaningful only when HasTarget reports true.
type Annotation struct {
	Text   string
	Target uint32
	Flags  uint32 // bit 0 set when Target is present; other bits preserved
}

// Annotation flag bits.
const AnnotationFlagTarget uint32 = 0x01

// HasTarget reports whether the annotation is anchored to a record.
func (a *Annotation) HasTarget() bool {
	return a.Flags&AnnotationFlagTarget != 0
}

// Fix is a GNSS position fix.
type Fix struct {
	X       float64
	Y       float64
	Z       float64
	Hdop    float32
	Quality FixQuality
}

// Traverse is an ordered path through station records. Stations holds
// record indices that must refer to Station records.
type Traverse struct {
	Stations []uint32
	Closed   bool
}

// KindName returns the lowercase name of a record kind byte.
func KindName(kind byte) string {
	switch kind {
	case KindStation:
		return "station"
	case KindObservation:
		return "observation"
	case KindAnnotation:
		return "annotation"
	case KindFix:
		return "fix"
	case KindTraverse:
		return "traverse"
	default:
		return "unknown"
	}
}

// KindName returns the lowercase name of the record's kind.
func (r *Record) KindName() string {
	return KindName(r.Kind)
}

// inputOffset returns the record's source offset for error reporting,
// or -1 for records built in memory. A record can never start at offset
// zero because the header precedes it.
func (r *Record) inputOffset() int {
	if r.Offset == 0 {
		return -1
	}
	return r.Offset
}

// StationAt returns the station payload of record i, or nil when i is out
// of range or the record is not a station.
func (d *Document) StationAt(i uint32) *Station {
	if int(i) >= len(d.Records) {
		return nil
	}
	return d.Records[i].Station
}

// CountByKind returns how many records of the given kind the document holds.
func (d *Document) CountByKind(kind byte) int {
	n := 0
	for i := range d.Records {
		if d.Records[i].Kind == kind {
			n++
		}
	}
	return n
}
