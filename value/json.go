package value

import (
	"math"
	"strconv"
	"strings"
)

const hexDigits = "0123456789abcdef"

// MarshalJSON renders the tree as compact JSON. Output is deterministic:
// map fields appear in insertion order and numbers use a canonical
// shortest form (lowercase exponent, -0 normalized to 0). Non-finite
// floats render as null, JSON having no spelling for them.
func (v *Value) MarshalJSON() ([]byte, error) {
	return v.AppendJSON(nil), nil
}

// AppendJSON appends the compact JSON rendering of v to dst.
func (v *Value) AppendJSON(dst []byte) []byte {
	switch v.kind {
	case KindNull:
		return append(dst, "null"...)
	case KindBool:
		if v.boolVal {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case KindInt:
		return strconv.AppendInt(dst, v.intVal, 10)
	case KindFloat:
		return appendCanonFloat(dst, v.floatVal)
	case KindString:
		return appendJSONString(dst, v.strVal)
	case KindList:
		dst = append(dst, '[')
		for i, item := range v.listVal {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = item.AppendJSON(dst)
		}
		return append(dst, ']')
	case KindMap:
		dst = append(dst, '{')
		for i, f := range v.mapVal {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendJSONString(dst, f.Name)
			dst = append(dst, ':')
			dst = f.Value.AppendJSON(dst)
		}
		return append(dst, '}')
	default:
		return append(dst, "null"...)
	}
}

// appendCanonFloat writes the canonical number form: shortest round-trip
// representation, lowercase exponent, -0 normalized to 0.
func appendCanonFloat(dst []byte, f float64) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return append(dst, "null"...)
	}
	if f == 0 {
		return append(dst, '0')
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	s = strings.ReplaceAll(s, "E", "e")
	return append(dst, s...)
}

// appendJSONString writes s as a JSON string with minimal escaping.
func appendJSONString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for _, r := range s {
		switch r {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			if r < 0x20 {
				dst = append(dst, '\\', 'u', '0', '0', hexDigits[r>>4], hexDigits[r&0xf])
			} else {
				dst = append(dst, string(r)...)
			}
		}
	}
	return append(dst, '"')
}
