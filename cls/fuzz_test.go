package cls_test

import (
	"testing"

	"github.com/geofmt/cls-codec/cls"
	"github.com/geofmt/cls-codec/errors"
)

func FuzzParse(f *testing.F) {
	// Full document exercising every record kind
	valid, err := surveyDocument().Encode()
	if err != nil {
		f.Fatalf("Encode: %v", err)
	}
	f.Add(valid)

	// Minimal empty file
	f.Add([]byte{
		0x43, 0x4C, 0x53, 0x46, 0x01, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x02, 0x00,
		0x00, 0x00, 0x00, 0x00,
	})

	// Truncated header
	f.Add([]byte{0x43, 0x4C, 0x53})

	// Wrong magic
	f.Add([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF})

	// Unknown record kind
	unknown := append([]byte(nil), valid...)
	unknown[64] = 0x7F
	f.Add(unknown)

	// Record length overrunning the buffer
	short := append([]byte(nil), valid...)
	short[65] = 0xFF
	short[66] = 0xFF
	f.Add(short)

	// Declared count beyond the records present
	overcount := append([]byte(nil), valid...)
	overcount[6] = 0x40
	f.Add(overcount)

	// Truncations at interesting offsets
	for _, n := range []int{16, 64, 100, len(valid) - 1} {
		f.Add(valid[:n])
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		// Parsing must never panic. On success the document is complete
		// and valid, so it must encode cleanly; on failure the error is
		// always a structured *errors.Error.
		doc, err := cls.Parse(data, cls.Options{})
		if err != nil {
			if _, ok := err.(*errors.Error); !ok {
				t.Fatalf("error type = %T: %v", err, err)
			}
			return
		}
		if doc == nil {
			t.Fatal("nil document without error")
		}
		if _, err := doc.Encode(); err != nil {
			t.Fatalf("re-encode of parsed document failed: %v", err)
		}
	})
}
