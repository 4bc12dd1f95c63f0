package domain

// Value is a decoded settings-document value. It is one of:
// nil, bool, string, json.Number, []Value, or *Object.
//
// Numbers stay as json.Number so fields the optimizer never touches keep
// their exact lexical form on re-encode.
type Value any

// Field is a single key/value pair of an Object.
type Field struct {
	Key   string
	Value Value
}

// Object is a JSON object that preserves field order. The settings document
// carries arbitrary vendor fields the optimizer must round-trip verbatim, so
// objects are ordered associations rather than fixed structs.
type Object struct {
	fields []Field
	index  map[string]int
}

// NewObject creates an empty ordered object.
func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

// Len returns the number of fields.
func (o *Object) Len() int {
	return len(o.fields)
}

// Fields returns the fields in document order. The returned slice is shared;
// callers must not modify it.
func (o *Object) Fields() []Field {
	return o.fields
}

// Get returns the value for key and whether the key is present.
func (o *Object) Get(key string) (Value, bool) {
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.fields[i].Value, true
}

// Set stores value under key. An existing key keeps its position; a new key
// is appended, preserving document order for round-tripping.
func (o *Object) Set(key string, value Value) {
	if i, ok := o.index[key]; ok {
		o.fields[i].Value = value
		return
	}
	o.index[key] = len(o.fields)
	o.fields = append(o.fields, Field{Key: key, Value: value})
}

// Clone returns a deep copy of the object.
func (o *Object) Clone() *Object {
	c := NewObject()
	for _, f := range o.fields {
		c.Set(f.Key, CloneValue(f.Value))
	}
	return c
}

// CloneValue deep-copies a Value. Scalars are returned as-is.
func CloneValue(v Value) Value {
	switch t := v.(type) {
	case *Object:
		return t.Clone()
	case []Value:
		c := make([]Value, len(t))
		for i, item := range t {
			c[i] = CloneValue(item)
		}
		return c
	default:
		return v
	}
}
