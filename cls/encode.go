package cls

import (
	"github.com/geofmt/cls-codec/cls/internal/binary"
	"github.com/geofmt/cls-codec/errors"
)

// Encode serializes the document back to the CLS binary format. The
// document is validated first; an invalid document is never written.
// Output is deterministic: encoding the same document twice yields
// identical bytes, and a decode-encode round trip of a well-formed file
// reproduces it byte for byte apart from tolerated trailing bytes.
func (d *Document) Encode() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	enc := d.Header.Encoding
	if !knownEncoding(enc) {
		return nil, errors.New(errors.StageEncode, errors.KindEncodingError).
			Path("encoding").
			Detail("header encoding id %d not supported", uint8(enc)).
			Build()
	}

	flags := d.Header.Flags &^ FlagExtents
	if d.Extents != nil {
		flags |= FlagExtents
	}

	w := binary.NewWriter()
	w.WriteU32LE(Magic)
	w.WriteU16LE(Version)
	w.WriteU32LE(uint32(len(d.Records)))
	w.Byte(byte(enc))
	w.Byte(flags)
	w.WriteU32LE(d.Header.Reserved)
	if e := d.Extents; e != nil {
		w.WriteF64LE(e.MinX)
		w.WriteF64LE(e.MinY)
		w.WriteF64LE(e.MinZ)
		w.WriteF64LE(e.MaxX)
		w.WriteF64LE(e.MaxY)
		w.WriteF64LE(e.MaxZ)
	}

	for i := range d.Records {
		if err := writeRecord(w, uint32(i), &d.Records[i], enc); err != nil {
			return nil, err
		}
	}
	return w.Bytes(), nil
}

// writeRecord frames one record: kind, payload length, payload. The
// caller has validated the document, so every record carries a known
// kind and its payload.
func writeRecord(w *binary.Writer, idx uint32, rec *Record, enc EncodingID) error {
	pay := binary.NewWriter()
	var err error
	switch rec.Kind {
	case KindStation:
		err = writeStation(pay, idx, rec.Station, enc)
	case KindObservation:
		writeObservation(pay, rec.Observation)
	case KindAnnotation:
		err = writeAnnotation(pay, idx, rec.Annotation)
	case KindFix:
		writeFix(pay, rec.Fix)
	case KindTraverse:
		err = writeTraverse(pay, idx, rec.Traverse)
	}
	if err != nil {
		return err
	}
	w.Byte(rec.Kind)
	w.WriteU32LE(uint32(pay.Len()))
	w.WriteBytes(pay.Bytes())
	return nil
}

func writeStation(w *binary.Writer, idx uint32, s *Station, enc EncodingID) error {
	w.WriteF64LE(s.X)
	w.WriteF64LE(s.Y)
	w.WriteF64LE(s.Z)
	w.WriteU16LE(uint16(s.Class))
	w.Byte(s.Flags)
	window, err := encodeLegacyWindow(s.Name, enc, StationNameSize)
	if err != nil {
		return errors.New(errors.StageEncode, errors.KindEncodingError).
			Path(recPath(idx), "name").
			Cause(err).
			Detail("%s", enc).
			Build()
	}
	w.WriteBytes(window)
	return nil
}

func writeObservation(w *binary.Writer, o *Observation) {
	w.WriteU32LE(o.From)
	w.WriteU32LE(o.To)
	w.WriteF64LE(o.Azimuth)
	w.WriteF64LE(o.Distance)
	w.WriteF64LE(o.DeltaH)
	w.WriteI16LE(o.PrismConst)
}

func writeAnnotation(w *binary.Writer, idx uint32, a *Annotation) error {
	text := encodeUTF16Text(a.Text)
	if len(text) > MaxAnnotationTextBytes {
		return errors.New(errors.StageEncode, errors.KindMalformedField).
			Path(recPath(idx), "text").
			Detail("text is %d UTF-16 bytes, limit %d", len(text), MaxAnnotationTextBytes).
			Build()
	}
	w.WriteU32LE(a.Flags)
	if a.HasTarget() {
		w.WriteU32LE(a.Target)
	}
	w.WriteU16LE(uint16(len(text)))
	w.WriteBytes(text)
	return nil
}

func writeFix(w *binary.Writer, f *Fix) {
	w.WriteF64LE(f.X)
	w.WriteF64LE(f.Y)
	w.WriteF64LE(f.Z)
	w.WriteF32LE(f.Hdop)
	w.WriteU16LE(uint16(f.Quality))
}

func writeTraverse(w *binary.Writer, idx uint32, t *Traverse) error {
	if len(t.Stations) > MaxTraverseStations {
		return errors.New(errors.StageEncode, errors.KindMalformedField).
			Path(recPath(idx), "stations").
			Detail("%d stations, limit %d", len(t.Stations), MaxTraverseStations).
			Build()
	}
	w.WriteU16LE(uint16(len(t.Stations)))
	if t.Closed {
		w.Byte(1)
	} else {
		w.Byte(0)
	}
	w.WriteU32SliceLE(t.Stations)
	return nil
}
