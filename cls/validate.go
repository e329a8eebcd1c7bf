package cls

import (
	"fmt"
	"math"

	"github.com/geofmt/cls-codec/errors"
)

// Validate checks the document's cross-record invariants: payload
// presence, reference resolution, reference target kinds, classification
// codes, float finiteness, and extents consistency, in that order. Parse
// runs it automatically; call it directly on documents built in memory
// before encoding them.
func (d *Document) Validate() error {
	if err := d.validatePayloads(); err != nil {
		return err
	}
	if err := d.validateReferences(); err != nil {
		return err
	}
	if err := d.validateReferenceTargets(); err != nil {
		return err
	}
	if err := d.validateClassifications(); err != nil {
		return err
	}
	if err := d.validateFiniteness(); err != nil {
		return err
	}
	if err := d.validateExtents(); err != nil {
		return err
	}
	return nil
}

// validatePayloads checks that every record carries a known kind and the
// matching payload. Parsed records always satisfy this; the pass exists
// for documents assembled in memory, so the later passes can dereference
// payloads freely.
func (d *Document) validatePayloads() error {
	for i := range d.Records {
		rec := &d.Records[i]
		idx := uint32(i)
		var ok bool
		switch rec.Kind {
		case KindStation:
			ok = rec.Station != nil
		case KindObservation:
			ok = rec.Observation != nil
		case KindAnnotation:
			ok = rec.Annotation != nil
		case KindFix:
			ok = rec.Fix != nil
		case KindTraverse:
			ok = rec.Traverse != nil
		default:
			return errors.InvariantViolation(rec.inputOffset(),
				[]string{recPath(idx)}, "record kind 0x%02x not recognized", rec.Kind)
		}
		if !ok {
			return errors.InvariantViolation(rec.inputOffset(),
				[]string{recPath(idx)}, "%s record has no payload", rec.KindName())
		}
	}
	return nil
}

// validateReferences checks that every record index reference resolves.
func (d *Document) validateReferences() error {
	count := len(d.Records)
	for i := range d.Records {
		rec := &d.Records[i]
		idx := uint32(i)
		switch rec.Kind {
		case KindObservation:
			o := rec.Observation
			if int(o.From) >= count {
				return errors.DanglingReference(rec.inputOffset(),
					[]string{recPath(idx), "from"}, o.From, count)
			}
			if int(o.To) >= count {
				return errors.DanglingReference(rec.inputOffset(),
					[]string{recPath(idx), "to"}, o.To, count)
			}
		case KindAnnotation:
			a := rec.Annotation
			if a.HasTarget() && int(a.Target) >= count {
				return errors.DanglingReference(rec.inputOffset(),
					[]string{recPath(idx), "target"}, a.Target, count)
			}
		case KindTraverse:
			for j, ref := range rec.Traverse.Stations {
				if int(ref) >= count {
					return errors.DanglingReference(rec.inputOffset(),
						[]string{recPath(idx), stationPath(j)}, ref, count)
				}
			}
		}
	}
	return nil
}

// validateReferenceTargets checks that references which must name
// stations do, and that an observation's endpoints differ.
func (d *Document) validateReferenceTargets() error {
	for i := range d.Records {
		rec := &d.Records[i]
		idx := uint32(i)
		switch rec.Kind {
		case KindObservation:
			o := rec.Observation
			if k := d.Records[o.From].Kind; k != KindStation {
				return errors.InvariantViolation(rec.inputOffset(),
					[]string{recPath(idx), "from"},
					"record %d has kind %s, want station", o.From, d.Records[o.From].KindName())
			}
			if k := d.Records[o.To].Kind; k != KindStation {
				return errors.InvariantViolation(rec.inputOffset(),
					[]string{recPath(idx), "to"},
					"record %d has kind %s, want station", o.To, d.Records[o.To].KindName())
			}
			if o.From == o.To {
				return errors.InvariantViolation(rec.inputOffset(),
					[]string{recPath(idx)},
					"from and to both reference record %d", o.From)
			}
		case KindTraverse:
			for j, ref := range rec.Traverse.Stations {
				if d.Records[ref].Kind != KindStation {
					return errors.InvariantViolation(rec.inputOffset(),
						[]string{recPath(idx), stationPath(j)},
						"record %d has kind %s, want station", ref, d.Records[ref].KindName())
				}
			}
		}
	}
	return nil
}

// validateClassifications checks station class and fix quality codes.
func (d *Document) validateClassifications() error {
	for i := range d.Records {
		rec := &d.Records[i]
		idx := uint32(i)
		switch rec.Kind {
		case KindStation:
			if c := rec.Station.Class; c < ClassControl || c > ClassMonument {
				return errors.InvariantViolation(rec.inputOffset(),
					[]string{recPath(idx), "class"},
					"classification code %d not recognized", uint16(c))
			}
		case KindFix:
			if q := rec.Fix.Quality; q < QualitySingle || q > QualityFixed {
				return errors.InvariantViolation(rec.inputOffset(),
					[]string{recPath(idx), "quality"},
					"quality code %d not recognized", uint16(q))
			}
		}
	}
	return nil
}

// validateFiniteness checks that no float field carries NaN or an infinity.
func (d *Document) validateFiniteness() error {
	for i := range d.Records {
		rec := &d.Records[i]
		idx := uint32(i)
		var fields []floatField
		switch rec.Kind {
		case KindStation:
			s := rec.Station
			fields = []floatField{{"x", s.X}, {"y", s.Y}, {"z", s.Z}}
		case KindObservation:
			o := rec.Observation
			fields = []floatField{{"azimuth", o.Azimuth}, {"distance", o.Distance}, {"delta_h", o.DeltaH}}
		case KindFix:
			f := rec.Fix
			fields = []floatField{{"x", f.X}, {"y", f.Y}, {"z", f.Z}, {"hdop", float64(f.Hdop)}}
		}
		for _, f := range fields {
			if !isFinite(f.val) {
				return errors.InvariantViolation(rec.inputOffset(),
					[]string{recPath(idx), f.name},
					"value %v is not finite", f.val)
			}
		}
	}
	if e := d.Extents; e != nil {
		fields := []floatField{
			{"min_x", e.MinX}, {"min_y", e.MinY}, {"min_z", e.MinZ},
			{"max_x", e.MaxX}, {"max_y", e.MaxY}, {"max_z", e.MaxZ},
		}
		for _, f := range fields {
			if !isFinite(f.val) {
				return errors.InvariantViolation(-1,
					[]string{"extents", f.name},
					"value %v is not finite", f.val)
			}
		}
	}
	return nil
}

// validateExtents checks bound ordering and that every coordinate lies
// inside the declared box.
func (d *Document) validateExtents() error {
	e := d.Extents
	if e == nil {
		return nil
	}
	axes := []struct {
		name     string
		min, max float64
	}{
		{"x", e.MinX, e.MaxX},
		{"y", e.MinY, e.MaxY},
		{"z", e.MinZ, e.MaxZ},
	}
	for _, a := range axes {
		if a.min > a.max {
			return errors.InvariantViolation(-1,
				[]string{"extents", a.name},
				"min %g exceeds max %g", a.min, a.max)
		}
	}
	for i := range d.Records {
		rec := &d.Records[i]
		idx := uint32(i)
		var x, y, z float64
		switch rec.Kind {
		case KindStation:
			x, y, z = rec.Station.X, rec.Station.Y, rec.Station.Z
		case KindFix:
			x, y, z = rec.Fix.X, rec.Fix.Y, rec.Fix.Z
		default:
			continue
		}
		checks := []struct {
			name     string
			val      float64
			min, max float64
		}{
			{"x", x, e.MinX, e.MaxX},
			{"y", y, e.MinY, e.MaxY},
			{"z", z, e.MinZ, e.MaxZ},
		}
		for _, c := range checks {
			if c.val < c.min || c.val > c.max {
				return errors.InvariantViolation(rec.inputOffset(),
					[]string{recPath(idx), c.name},
					"coordinate %g outside extents [%g, %g]", c.val, c.min, c.max)
			}
		}
	}
	return nil
}

type floatField struct {
	name string
	val  float64
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// stationPath names one element of a traverse's station list.
func stationPath(i int) string {
	return fmt.Sprintf("stations[%d]", i)
}
