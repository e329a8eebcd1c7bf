package cls

import (
	"fmt"
	"math"
	"strconv"

	"github.com/geofmt/cls-codec/value"
)

// ToValue renders the document as an ordered value tree suitable for
// deterministic JSON or YAML export. Field order is fixed: a format
// block, the extents (or null), then records with the kind named first
// and payload fields in wire order.
func (d *Document) ToValue(opts ValueOptions) *value.Value {
	root := value.Map()

	format := value.Map()
	format.Set("version", value.Int(int64(d.Header.Version)))
	format.Set("encoding", value.String(d.Header.Encoding.String()))
	format.Set("reserved", value.Int(int64(d.Header.Reserved)))
	root.Set("format", format)

	if e := d.Extents; e != nil {
		ext := value.Map()
		ext.Set("min", value.List(value.Float(e.MinX), value.Float(e.MinY), value.Float(e.MinZ)))
		ext.Set("max", value.List(value.Float(e.MaxX), value.Float(e.MaxY), value.Float(e.MaxZ)))
		root.Set("extents", ext)
	} else {
		root.Set("extents", value.Null())
	}

	records := value.List()
	for i := range d.Records {
		records.Append(recordValue(&d.Records[i], opts))
	}
	root.Set("records", records)
	return root
}

func recordValue(rec *Record, opts ValueOptions) *value.Value {
	m := value.Map()
	m.Set("kind", value.String(rec.KindName()))
	switch rec.Kind {
	case KindStation:
		s := rec.Station
		m.Set("position", pointValue(s.X, s.Y, s.Z, opts.Points))
		m.Set("class", value.String(s.Class.String()))
		m.Set("held_fixed", value.Bool(s.HeldFixed()))
		m.Set("name", value.String(s.Name))
	case KindObservation:
		o := rec.Observation
		m.Set("from", value.Int(int64(o.From)))
		m.Set("to", value.Int(int64(o.To)))
		m.Set("azimuth", angleValue(o.Azimuth, opts.Angles))
		m.Set("distance", value.Float(o.Distance))
		m.Set("delta_h", value.Float(o.DeltaH))
		m.Set("prism_const", value.Int(int64(o.PrismConst)))
	case KindAnnotation:
		a := rec.Annotation
		if a.HasTarget() {
			m.Set("target", value.Int(int64(a.Target)))
		} else {
			m.Set("target", value.Null())
		}
		m.Set("text", value.String(a.Text))
	case KindFix:
		f := rec.Fix
		m.Set("position", pointValue(f.X, f.Y, f.Z, opts.Points))
		m.Set("hdop", float32Value(f.Hdop))
		m.Set("quality", value.String(f.Quality.String()))
	case KindTraverse:
		t := rec.Traverse
		m.Set("closed", value.Bool(t.Closed))
		stations := value.List()
		for _, ref := range t.Stations {
			stations.Append(value.Int(int64(ref)))
		}
		m.Set("stations", stations)
	}
	return m
}

func pointValue(x, y, z float64, mode PointMode) *value.Value {
	if mode == PointSeq {
		return value.List(value.Float(x), value.Float(y), value.Float(z))
	}
	m := value.Map()
	m.Set("x", value.Float(x))
	m.Set("y", value.Float(y))
	m.Set("z", value.Float(z))
	return m
}

func angleValue(deg float64, mode AngleMode) *value.Value {
	switch mode {
	case AngleDMS:
		return value.String(formatDMS(deg))
	case AngleGon:
		return value.Float(deg * 10 / 9)
	default:
		return value.Float(deg)
	}
}

// formatDMS renders decimal degrees as D°M'S.SSS". Rounding happens once
// at millisecond-of-arc resolution so the carry into minutes and degrees
// stays consistent.
func formatDMS(deg float64) string {
	sign := ""
	if deg < 0 {
		sign = "-"
	}
	ms := int64(math.Round(math.Abs(deg) * 3600000))
	d := ms / 3600000
	ms -= d * 3600000
	m := ms / 60000
	ms -= m * 60000
	s := float64(ms) / 1000
	return fmt.Sprintf("%s%d°%02d'%06.3f\"", sign, d, m, s)
}

// float32Value renders a float32 at its own precision; widening to
// float64 first would surface representation noise in the output.
func float32Value(v float32) *value.Value {
	f, _ := strconv.ParseFloat(strconv.FormatFloat(float64(v), 'g', -1, 32), 64)
	return value.Float(f)
}
