/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package wire

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// Record holds the field values of one message. Values are kept in a
// canonical form: signed integers as int64, unsigned as uint64, embedded
// messages as *Record and repeated fields as []interface{}.
//
// Accessors panic when given a field name the schema does not declare.
// Field names are compile-time constants so this is a programming error.
type Record struct {
	schema  *Schema
	values  map[protowire.Number]interface{}
	unknown []byte
}

// Schema returns the schema of the record
func (r *Record) Schema() *Schema {
	return r.schema
}

// Set sets a field value and returns the record for chaining.
// Setting a oneof member clears the other members of its group.
func (r *Record) Set(name string, value interface{}) *Record {
	f := r.schema.mustField(name)
	v, err := normalize(f, value)
	if err != nil {
		panic(fmt.Sprintf("wire: %s.%s: %s", r.schema.Name, name, err))
	}
	if f.Oneof != "" {
		for _, other := range r.schema.fields {
			if other.Oneof == f.Oneof && other.Number != f.Number {
				delete(r.values, other.Number)
			}
		}
	}
	r.values[f.Number] = v
	return r
}

// Append adds one element to a repeated field
func (r *Record) Append(name string, value interface{}) *Record {
	f := r.schema.mustField(name)
	if !f.Repeated {
		panic(fmt.Sprintf("wire: %s.%s is not repeated", r.schema.Name, name))
	}
	v, err := normalizeOne(f, value)
	if err != nil {
		panic(fmt.Sprintf("wire: %s.%s: %s", r.schema.Name, name, err))
	}
	list, _ := r.values[f.Number].([]interface{})
	r.values[f.Number] = append(list, v)
	return r
}

// Clear removes a field value
func (r *Record) Clear(name string) *Record {
	delete(r.values, r.schema.mustField(name).Number)
	return r
}

// Has reports whether the field is set
func (r *Record) Has(name string) bool {
	_, ok := r.values[r.schema.mustField(name).Number]
	return ok
}

// Get returns the canonical value of a field
func (r *Record) Get(name string) (interface{}, bool) {
	v, ok := r.values[r.schema.mustField(name).Number]
	return v, ok
}

// Int returns a signed integer field, or 0
func (r *Record) Int(name string) int64 {
	v, _ := r.Get(name)
	i, _ := v.(int64)
	return i
}

// Uint returns an unsigned integer field, or 0
func (r *Record) Uint(name string) uint64 {
	v, _ := r.Get(name)
	u, _ := v.(uint64)
	return u
}

// Bool returns a bool field, or false
func (r *Record) Bool(name string) bool {
	v, _ := r.Get(name)
	b, _ := v.(bool)
	return b
}

// GetString returns a string field, or ""
func (r *Record) GetString(name string) string {
	v, _ := r.Get(name)
	s, _ := v.(string)
	return s
}

// GetBytes returns a bytes field, or nil
func (r *Record) GetBytes(name string) []byte {
	v, _ := r.Get(name)
	b, _ := v.([]byte)
	return b
}

// Message returns an embedded message, or nil when unset
func (r *Record) Message(name string) *Record {
	v, _ := r.Get(name)
	m, _ := v.(*Record)
	return m
}

// List returns the elements of a repeated field
func (r *Record) List(name string) []interface{} {
	v, _ := r.Get(name)
	l, _ := v.([]interface{})
	return l
}

// Messages returns the elements of a repeated message field
func (r *Record) Messages(name string) []*Record {
	list := r.List(name)
	msgs := make([]*Record, 0, len(list))
	for _, v := range list {
		msgs = append(msgs, v.(*Record))
	}
	return msgs
}

// WhichOneof returns the name of the set member of a oneof group, or ""
func (r *Record) WhichOneof(group string) string {
	for _, f := range r.schema.fields {
		if f.Oneof != group {
			continue
		}
		if _, ok := r.values[f.Number]; ok {
			return f.Name
		}
	}
	return ""
}

// Equal reports whether both records encode to the same bytes
func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.schema == other.schema && bytes.Equal(r.Marshal(), other.Marshal())
}

// Clone returns a deep copy
func (r *Record) Clone() *Record {
	c, err := Unmarshal(r.schema, r.Marshal())
	if err != nil {
		// a record always decodes its own encoding
		panic(err)
	}
	return c
}

func normalize(f Field, value interface{}) (interface{}, error) {
	if !f.Repeated {
		return normalizeOne(f, value)
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice {
		return nil, errors.Errorf("repeated field needs a slice, got %T", value)
	}
	list := make([]interface{}, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		v, err := normalizeOne(f, rv.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, nil
}

func normalizeOne(f Field, value interface{}) (interface{}, error) {
	switch f.Kind {
	case Int32, Int64, Sint64, Enum:
		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return rv.Int(), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return int64(rv.Uint()), nil
		}
	case Uint32, Uint64:
		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return rv.Uint(), nil
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if rv.Int() < 0 {
				return nil, errors.Errorf("negative value %d for %s", rv.Int(), f.Kind)
			}
			return uint64(rv.Int()), nil
		}
	case Bool:
		if b, ok := value.(bool); ok {
			return b, nil
		}
	case String:
		if s, ok := value.(string); ok {
			return s, nil
		}
	case Bytes:
		if b, ok := value.([]byte); ok {
			return b, nil
		}
	case Message:
		if m, ok := value.(*Record); ok && m != nil {
			if want := f.Schema(); m.schema != want {
				return nil, errors.Errorf("message of type %s, want %s", m.schema.Name, want.Name)
			}
			return m, nil
		}
	}
	return nil, errors.Errorf("value of type %T does not fit a %s field", value, f.Kind)
}
