package cls

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/geofmt/cls-codec/cls/internal/binary"
	"github.com/geofmt/cls-codec/errors"
)

// Parse decodes a CLS file and validates the resulting document. It is
// all or nothing: on any error no document is returned. The input buffer
// is never retained; every field of the document is a copy.
func Parse(data []byte, opts Options) (*Document, error) {
	doc, err := Decode(data, opts)
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	Logger().Info("parsed document",
		zap.Int("records", len(doc.Records)),
		zap.String("encoding", doc.Header.Encoding.String()))
	return doc, nil
}

// Decode parses the container structure without running model validation.
// Most callers want Parse; Decode is for tooling that needs to inspect a
// structurally sound document whose cross-record invariants may not hold.
func Decode(data []byte, opts Options) (*Document, error) {
	if opts.Encoding != 0 && !knownEncoding(opts.Encoding) {
		return nil, errors.New(errors.StageHeader, errors.KindMalformedField).
			Path("encoding").
			Detail("encoding override %d not supported", opts.Encoding).
			Build()
	}

	cur := binary.NewCursor(data)
	hdr, ext, err := parseHeader(cur)
	if err != nil {
		return nil, err
	}
	enc := hdr.Encoding
	if opts.Encoding != 0 {
		enc = opts.Encoding
	}

	// A record costs at least its framing, so the buffer bounds how many
	// can follow regardless of the declared count.
	capHint := int(hdr.Count)
	if most := cur.Remaining() / RecordFramingSize; capHint > most {
		capHint = most
	}
	records := make([]Record, 0, capHint)
	for i := uint32(0); i < hdr.Count; i++ {
		if cur.Remaining() == 0 {
			return nil, errors.New(errors.StageRecord, errors.KindOutOfBounds).
				Offset(cur.Position()).
				Detail("declared %d records, found %d", hdr.Count, i).
				Build()
		}
		rec, err := parseRecord(cur, i, enc, opts.OnDecodeError)
		if err != nil {
			return nil, err
		}
		Logger().Debug("parsed record",
			zap.Uint32("index", i),
			zap.String("kind", rec.KindName()),
			zap.Int("offset", rec.Offset))
		records = append(records, rec)
	}

	if rest := cur.Remaining(); rest > 0 {
		if opts.StrictTrailingBytes {
			return nil, errors.TrailingBytes(cur.Position(), rest)
		}
		Logger().Debug("ignoring trailing bytes",
			zap.Int("offset", cur.Position()),
			zap.Int("count", rest))
	}

	return &Document{Header: hdr, Extents: ext, Records: records}, nil
}

// parseHeader reads the fixed header and the optional extents block.
func parseHeader(cur *binary.Cursor) (Header, *Extents, error) {
	if cur.Remaining() < HeaderSize {
		return Header{}, nil, errors.OutOfBounds(errors.StageHeader, 0, HeaderSize, cur.Remaining())
	}
	magic, _ := cur.ReadU32LE()
	if magic != Magic {
		return Header{}, nil, errors.MalformedField(errors.StageHeader, 0,
			[]string{"magic"}, "expected %08x, found %08x", Magic, magic)
	}
	version, _ := cur.ReadU16LE()
	if version != Version {
		return Header{}, nil, errors.MalformedField(errors.StageHeader, 4,
			[]string{"version"}, "supported version %d, found %d", Version, version)
	}
	count, _ := cur.ReadU32LE()
	encID, _ := cur.ReadByte()
	if !knownEncoding(EncodingID(encID)) {
		return Header{}, nil, errors.MalformedField(errors.StageHeader, 10,
			[]string{"encoding"}, "unknown encoding id %d", encID)
	}
	flags, _ := cur.ReadByte()
	reserved, _ := cur.ReadU32LE()

	hdr := Header{
		Version:  version,
		Count:    count,
		Encoding: EncodingID(encID),
		Flags:    flags,
		Reserved: reserved,
	}

	var ext *Extents
	if flags&FlagExtents != 0 {
		if cur.Remaining() < ExtentsSize {
			return Header{}, nil, errors.OutOfBounds(errors.StageHeader, HeaderSize, ExtentsSize, cur.Remaining())
		}
		e := &Extents{}
		e.MinX, _ = cur.ReadF64LE()
		e.MinY, _ = cur.ReadF64LE()
		e.MinZ, _ = cur.ReadF64LE()
		e.MaxX, _ = cur.ReadF64LE()
		e.MaxY, _ = cur.ReadF64LE()
		e.MaxZ, _ = cur.ReadF64LE()
		ext = e
	}
	return hdr, ext, nil
}

// parseRecord reads one framed record: kind, payload length, payload.
// The payload is parsed inside a bounded window so a lying length field
// can never pull bytes from a neighbouring record.
func parseRecord(cur *binary.Cursor, idx uint32, enc EncodingID, policy DecodePolicy) (Record, error) {
	start := cur.Position()
	if cur.Remaining() < RecordFramingSize {
		return Record{}, errors.OutOfBounds(errors.StageRecord, start, RecordFramingSize, cur.Remaining())
	}
	kind, _ := cur.ReadByte()
	length, _ := cur.ReadU32LE()

	switch kind {
	case KindStation, KindObservation, KindAnnotation, KindFix, KindTraverse:
	default:
		return Record{}, errors.UnknownKind(start, kind)
	}
	if int64(length) > int64(cur.Remaining()) {
		return Record{}, errors.ShortRecord(start, int(length), cur.Remaining())
	}
	win, err := cur.Sub(int(length))
	if err != nil {
		return Record{}, errors.ShortRecord(start, int(length), cur.Remaining())
	}

	rec := Record{Kind: kind, Offset: start}
	switch kind {
	case KindStation:
		rec.Station, err = parseStation(win, idx, enc, policy)
	case KindObservation:
		rec.Observation, err = parseObservation(win, idx)
	case KindAnnotation:
		rec.Annotation, err = parseAnnotation(win, idx, policy)
	case KindFix:
		rec.Fix, err = parseFix(win, idx)
	case KindTraverse:
		rec.Traverse, err = parseTraverse(win, idx)
	}
	if err != nil {
		return Record{}, err
	}
	if rest := win.Remaining(); rest > 0 {
		return Record{}, errors.MalformedField(errors.StageRecord, win.Position(),
			[]string{recPath(idx)}, "payload declares %d bytes, %d unconsumed", length, rest)
	}
	return rec, nil
}

func parseStation(win *binary.Cursor, idx uint32, enc EncodingID, policy DecodePolicy) (*Station, error) {
	s := &Station{}
	var err error
	if s.X, err = win.ReadF64LE(); err != nil {
		return nil, truncated(win, idx, "x")
	}
	if s.Y, err = win.ReadF64LE(); err != nil {
		return nil, truncated(win, idx, "y")
	}
	if s.Z, err = win.ReadF64LE(); err != nil {
		return nil, truncated(win, idx, "z")
	}
	class, err := win.ReadU16LE()
	if err != nil {
		return nil, truncated(win, idx, "class")
	}
	s.Class = StationClass(class)
	if s.Flags, err = win.ReadByte(); err != nil {
		return nil, truncated(win, idx, "flags")
	}
	nameOff := win.Position()
	raw, err := win.ReadBytes(StationNameSize)
	if err != nil {
		return nil, truncated(win, idx, "name")
	}
	name, err := decodeLegacyWindow(raw, enc, policy)
	if err != nil {
		return nil, errors.EncodingError(errors.StageRecord, nameOff,
			[]string{recPath(idx), "name"}, enc.String(), err.Error())
	}
	s.Name = name
	return s, nil
}

func parseObservation(win *binary.Cursor, idx uint32) (*Observation, error) {
	o := &Observation{}
	var err error
	if o.From, err = win.ReadU32LE(); err != nil {
		return nil, truncated(win, idx, "from")
	}
	if o.To, err = win.ReadU32LE(); err != nil {
		return nil, truncated(win, idx, "to")
	}
	if o.Azimuth, err = win.ReadF64LE(); err != nil {
		return nil, truncated(win, idx, "azimuth")
	}
	if o.Distance, err = win.ReadF64LE(); err != nil {
		return nil, truncated(win, idx, "distance")
	}
	if o.DeltaH, err = win.ReadF64LE(); err != nil {
		return nil, truncated(win, idx, "delta_h")
	}
	if o.PrismConst, err = win.ReadI16LE(); err != nil {
		return nil, truncated(win, idx, "prism_const")
	}
	return o, nil
}

func parseAnnotation(win *binary.Cursor, idx uint32, policy DecodePolicy) (*Annotation, error) {
	a := &Annotation{}
	var err error
	if a.Flags, err = win.ReadU32LE(); err != nil {
		return nil, truncated(win, idx, "flags")
	}
	if a.HasTarget() {
		if a.Target, err = win.ReadU32LE(); err != nil {
			return nil, truncated(win, idx, "target")
		}
	}
	lenOff := win.Position()
	textLen, err := win.ReadU16LE()
	if err != nil {
		return nil, truncated(win, idx, "text_len")
	}
	if textLen%2 != 0 {
		return nil, errors.MalformedField(errors.StageRecord, lenOff,
			[]string{recPath(idx), "text_len"}, "text length %d is odd", textLen)
	}
	if int(textLen) > MaxAnnotationTextBytes {
		return nil, errors.MalformedField(errors.StageRecord, lenOff,
			[]string{recPath(idx), "text_len"}, "text length %d exceeds limit %d", textLen, MaxAnnotationTextBytes)
	}
	textOff := win.Position()
	raw, err := win.ReadBytes(int(textLen))
	if err != nil {
		return nil, truncated(win, idx, "text")
	}
	text, err := decodeUTF16Text(raw, policy)
	if err != nil {
		return nil, errors.EncodingError(errors.StageRecord, textOff,
			[]string{recPath(idx), "text"}, "utf-16le", err.Error())
	}
	a.Text = text
	return a, nil
}

func parseFix(win *binary.Cursor, idx uint32) (*Fix, error) {
	f := &Fix{}
	var err error
	if f.X, err = win.ReadF64LE(); err != nil {
		return nil, truncated(win, idx, "x")
	}
	if f.Y, err = win.ReadF64LE(); err != nil {
		return nil, truncated(win, idx, "y")
	}
	if f.Z, err = win.ReadF64LE(); err != nil {
		return nil, truncated(win, idx, "z")
	}
	if f.Hdop, err = win.ReadF32LE(); err != nil {
		return nil, truncated(win, idx, "hdop")
	}
	quality, err := win.ReadU16LE()
	if err != nil {
		return nil, truncated(win, idx, "quality")
	}
	f.Quality = FixQuality(quality)
	return f, nil
}

func parseTraverse(win *binary.Cursor, idx uint32) (*Traverse, error) {
	t := &Traverse{}
	count, err := win.ReadU16LE()
	if err != nil {
		return nil, truncated(win, idx, "count")
	}
	closedOff := win.Position()
	closed, err := win.ReadByte()
	if err != nil {
		return nil, truncated(win, idx, "closed")
	}
	if closed > 1 {
		return nil, errors.MalformedField(errors.StageRecord, closedOff,
			[]string{recPath(idx), "closed"}, "closed flag is %d, want 0 or 1", closed)
	}
	t.Closed = closed == 1
	raw, err := win.ReadBytes(int(count) * 4)
	if err != nil {
		return nil, truncated(win, idx, "stations")
	}
	t.Stations, err = binary.DecodeU32SliceLE(raw)
	if err != nil {
		return nil, truncated(win, idx, "stations")
	}
	return t, nil
}

// truncated reports a field read that ran past the record's payload window.
func truncated(win *binary.Cursor, idx uint32, field string) *errors.Error {
	return errors.New(errors.StageRecord, errors.KindMalformedField).
		Offset(win.Position()).
		Path(recPath(idx), field).
		Detail("field extends past declared payload").
		Build()
}

// recPath names a record for error paths.
func recPath(idx uint32) string {
	return fmt.Sprintf("records[%d]", idx)
}
