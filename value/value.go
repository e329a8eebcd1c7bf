package value

// Kind identifies the type of a Value node.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindMap
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Value is one node of an export tree. Maps preserve insertion order, so
// rendering the same tree twice yields byte-identical output.
type Value struct {
	kind Kind

	boolVal  bool
	intVal   int64
	floatVal float64
	strVal   string

	listVal []*Value
	mapVal  []Field
}

// Field is a key-value pair in an ordered map.
type Field struct {
	Name  string
	Value *Value
}

// Null creates a null value.
func Null() *Value {
	return &Value{kind: KindNull}
}

// Bool creates a boolean value.
func Bool(b bool) *Value {
	return &Value{kind: KindBool, boolVal: b}
}

// Int creates an integer value.
func Int(n int64) *Value {
	return &Value{kind: KindInt, intVal: n}
}

// Float creates a floating point value.
func Float(f float64) *Value {
	return &Value{kind: KindFloat, floatVal: f}
}

// String creates a string value.
func String(s string) *Value {
	return &Value{kind: KindString, strVal: s}
}

// List creates a list value from the given items.
func List(items ...*Value) *Value {
	return &Value{kind: KindList, listVal: items}
}

// Map creates an empty ordered map value.
func Map() *Value {
	return &Value{kind: KindMap}
}

// Set appends a field to a map value and returns the value for chaining.
// Set panics on non-map values; tree construction errors are programmer
// errors, not data errors.
func (v *Value) Set(name string, child *Value) *Value {
	if v.kind != KindMap {
		panic("value: Set on non-map value")
	}
	v.mapVal = append(v.mapVal, Field{Name: name, Value: child})
	return v
}

// Append adds an item to a list value and returns the value for chaining.
func (v *Value) Append(item *Value) *Value {
	if v.kind != KindList {
		panic("value: Append on non-list value")
	}
	v.listVal = append(v.listVal, item)
	return v
}

// Kind returns the kind of this value.
func (v *Value) Kind() Kind {
	return v.kind
}

// Bool returns the boolean payload, or false for other kinds.
func (v *Value) Bool() bool {
	return v.boolVal
}

// Int returns the integer payload, or 0 for other kinds.
func (v *Value) Int() int64 {
	return v.intVal
}

// Float returns the float payload, or 0 for other kinds.
func (v *Value) Float() float64 {
	return v.floatVal
}

// Str returns the string payload, or "" for other kinds.
func (v *Value) Str() string {
	return v.strVal
}

// Items returns the elements of a list value, or nil for other kinds.
func (v *Value) Items() []*Value {
	return v.listVal
}

// Fields returns the fields of a map value in insertion order, or nil for
// other kinds.
func (v *Value) Fields() []Field {
	return v.mapVal
}

// Get returns the child with the given name in a map value, or nil.
func (v *Value) Get(name string) *Value {
	for _, f := range v.mapVal {
		if f.Name == name {
			return f.Value
		}
	}
	return nil
}
