/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package wire encodes and decodes protobuf messages described by a schema
// table instead of generated code. A Schema lists the fields of one message
// type; a Record holds the values of one message instance.
package wire

import (
	"fmt"
	"sync"

	"google.golang.org/protobuf/encoding/protowire"
)

// Kind is the protobuf scalar or message type of a field
type Kind int

const (
	// Int32 is a varint encoded int32 (sign extended to 64 bits on the wire)
	Int32 Kind = iota
	// Int64 is a varint encoded int64
	Int64
	// Uint32 is a varint encoded uint32
	Uint32
	// Uint64 is a varint encoded uint64
	Uint64
	// Sint64 is a zigzag varint encoded int64
	Sint64
	// Bool is a varint encoded bool
	Bool
	// Enum is a varint encoded enum value
	Enum
	// String is a length delimited UTF-8 string
	String
	// Bytes is a length delimited byte slice
	Bytes
	// Message is a length delimited embedded message described by Field.Schema
	Message
)

var kindName = map[Kind]string{
	Int32:   "int32",
	Int64:   "int64",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Sint64:  "sint64",
	Bool:    "bool",
	Enum:    "enum",
	String:  "string",
	Bytes:   "bytes",
	Message: "message",
}

func (k Kind) String() string {
	if s, ok := kindName[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func (k Kind) wireType() protowire.Type {
	switch k {
	case String, Bytes, Message:
		return protowire.BytesType
	default:
		return protowire.VarintType
	}
}

func (k Kind) isScalar() bool {
	return k != String && k != Bytes && k != Message
}

// Field describes one field of a message
type Field struct {
	Name     string
	Number   protowire.Number
	Kind     Kind
	Repeated bool
	// Oneof names the oneof group the field belongs to, if any. Setting a
	// member clears the other members of the group.
	Oneof string
	// Schema of the embedded message for Message fields. It is resolved
	// lazily so that recursive messages (Key → KeyList → Key) can be declared.
	Schema func() *Schema
}

// Schema describes a message type
type Schema struct {
	Name     string
	fields   []Field
	byName   map[string]int
	byNumber map[protowire.Number]int
	sortOnce sync.Once
	ordered  []Field
}

// NewSchema creates a schema. It panics on duplicate names or numbers since
// schemas are declared as package variables.
func NewSchema(name string, fields ...Field) *Schema {
	s := &Schema{
		Name:     name,
		fields:   fields,
		byName:   make(map[string]int, len(fields)),
		byNumber: make(map[protowire.Number]int, len(fields)),
	}
	for i, f := range fields {
		if _, ok := s.byName[f.Name]; ok {
			panic(fmt.Sprintf("wire: duplicate field name %s.%s", name, f.Name))
		}
		if _, ok := s.byNumber[f.Number]; ok {
			panic(fmt.Sprintf("wire: duplicate field number %s.%d", name, f.Number))
		}
		if f.Kind == Message && f.Schema == nil {
			panic(fmt.Sprintf("wire: message field %s.%s has no schema", name, f.Name))
		}
		s.byName[f.Name] = i
		s.byNumber[f.Number] = i
	}
	return s
}

// Fields returns the fields in declaration order
func (s *Schema) Fields() []Field {
	return s.fields
}

// Field looks up a field by name
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// FieldByNumber looks up a field by its tag number
func (s *Schema) FieldByNumber(n protowire.Number) (Field, bool) {
	i, ok := s.byNumber[n]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// New returns an empty record of this schema
func (s *Schema) New() *Record {
	return &Record{schema: s, values: make(map[protowire.Number]interface{})}
}

func (s *Schema) mustField(name string) Field {
	f, ok := s.Field(name)
	if !ok {
		panic(fmt.Sprintf("wire: %s has no field %s", s.Name, name))
	}
	return f
}

// Msg is a shorthand for a singular message field
func Msg(name string, number protowire.Number, schema func() *Schema) Field {
	return Field{Name: name, Number: number, Kind: Message, Schema: schema}
}

// Scalar is a shorthand for a singular scalar or string/bytes field
func Scalar(name string, number protowire.Number, kind Kind) Field {
	return Field{Name: name, Number: number, Kind: kind}
}

// Repeated marks f as repeated
func Repeated(f Field) Field {
	f.Repeated = true
	return f
}

// OneofMember places f in the given oneof group
func OneofMember(group string, f Field) Field {
	f.Oneof = group
	return f
}
