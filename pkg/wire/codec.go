/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package wire

import (
	"sort"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// Marshal encodes the record. Fields are written in tag order, so equal
// records produce equal bytes. Unset fields and zero scalars outside a
// oneof are omitted; fields not declared by the schema that were read by
// Unmarshal are written back unchanged.
func (r *Record) Marshal() []byte {
	return r.AppendTo(nil)
}

// AppendTo appends the encoding of the record to b
func (r *Record) AppendTo(b []byte) []byte {
	for _, f := range r.schema.sorted() {
		v, ok := r.values[f.Number]
		if !ok {
			continue
		}
		if f.Repeated {
			b = appendRepeated(b, f, v.([]interface{}))
			continue
		}
		if f.Oneof == "" && f.Kind != Message && isZero(v) {
			continue
		}
		b = appendValue(b, f, v)
	}
	return append(b, r.unknown...)
}

func appendRepeated(b []byte, f Field, list []interface{}) []byte {
	if len(list) == 0 {
		return b
	}
	if f.Kind.isScalar() {
		// packed
		var packed []byte
		for _, v := range list {
			packed = appendScalar(packed, f.Kind, v)
		}
		b = protowire.AppendTag(b, f.Number, protowire.BytesType)
		return protowire.AppendBytes(b, packed)
	}
	for _, v := range list {
		b = appendValue(b, f, v)
	}
	return b
}

func appendValue(b []byte, f Field, v interface{}) []byte {
	b = protowire.AppendTag(b, f.Number, f.Kind.wireType())
	switch f.Kind {
	case String:
		return protowire.AppendString(b, v.(string))
	case Bytes:
		return protowire.AppendBytes(b, v.([]byte))
	case Message:
		return protowire.AppendBytes(b, v.(*Record).Marshal())
	default:
		return appendScalar(b, f.Kind, v)
	}
}

func appendScalar(b []byte, k Kind, v interface{}) []byte {
	switch k {
	case Sint64:
		return protowire.AppendVarint(b, protowire.EncodeZigZag(v.(int64)))
	case Uint32, Uint64:
		return protowire.AppendVarint(b, v.(uint64))
	case Bool:
		return protowire.AppendVarint(b, protowire.EncodeBool(v.(bool)))
	default:
		return protowire.AppendVarint(b, uint64(v.(int64)))
	}
}

func isZero(v interface{}) bool {
	switch x := v.(type) {
	case int64:
		return x == 0
	case uint64:
		return x == 0
	case bool:
		return !x
	case string:
		return x == ""
	case []byte:
		return len(x) == 0
	}
	return false
}

// Unmarshal decodes b into a new record of the given schema. Fields the
// schema does not declare are kept and re-emitted by Marshal.
func Unmarshal(schema *Schema, b []byte) (*Record, error) {
	r := schema.New()
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, errors.Wrapf(protowire.ParseError(n), "%s: invalid tag", schema.Name)
		}
		f, known := schema.FieldByNumber(num)
		if !known {
			m := protowire.ConsumeFieldValue(num, typ, b[n:])
			if m < 0 {
				return nil, errors.Wrapf(protowire.ParseError(m), "%s: invalid field %d", schema.Name, num)
			}
			r.unknown = append(r.unknown, b[:n+m]...)
			b = b[n+m:]
			continue
		}
		b = b[n:]

		if f.Repeated && f.Kind.isScalar() && typ == protowire.BytesType {
			packed, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return nil, errors.Wrapf(protowire.ParseError(m), "%s.%s: invalid packed field", schema.Name, f.Name)
			}
			for len(packed) > 0 {
				v, k := protowire.ConsumeVarint(packed)
				if k < 0 {
					return nil, errors.Wrapf(protowire.ParseError(k), "%s.%s: invalid packed element", schema.Name, f.Name)
				}
				r.appendDecoded(f, scalarFromVarint(f.Kind, v))
				packed = packed[k:]
			}
			b = b[m:]
			continue
		}

		if typ != f.Kind.wireType() {
			return nil, errors.Errorf("%s.%s: wire type %d does not match %s", schema.Name, f.Name, typ, f.Kind)
		}

		var v interface{}
		var m int
		switch f.Kind {
		case String:
			var s string
			s, m = protowire.ConsumeString(b)
			v = s
		case Bytes:
			var raw []byte
			raw, m = protowire.ConsumeBytes(b)
			v = append([]byte{}, raw...)
		case Message:
			var raw []byte
			raw, m = protowire.ConsumeBytes(b)
			if m >= 0 {
				sub, err := Unmarshal(f.Schema(), raw)
				if err != nil {
					return nil, errors.WithMessagef(err, "%s.%s", schema.Name, f.Name)
				}
				v = sub
			}
		default:
			var x uint64
			x, m = protowire.ConsumeVarint(b)
			v = scalarFromVarint(f.Kind, x)
		}
		if m < 0 {
			return nil, errors.Wrapf(protowire.ParseError(m), "%s.%s: invalid value", schema.Name, f.Name)
		}
		b = b[m:]

		if f.Repeated {
			r.appendDecoded(f, v)
		} else {
			r.setDecoded(f, v)
		}
	}
	return r, nil
}

func (r *Record) appendDecoded(f Field, v interface{}) {
	list, _ := r.values[f.Number].([]interface{})
	r.values[f.Number] = append(list, v)
}

func (r *Record) setDecoded(f Field, v interface{}) {
	if f.Oneof != "" {
		for _, other := range r.schema.fields {
			if other.Oneof == f.Oneof {
				delete(r.values, other.Number)
			}
		}
	}
	r.values[f.Number] = v
}

func scalarFromVarint(k Kind, v uint64) interface{} {
	switch k {
	case Int32:
		return int64(int32(v))
	case Sint64:
		return protowire.DecodeZigZag(v)
	case Uint32:
		return uint64(uint32(v))
	case Uint64:
		return v
	case Bool:
		return protowire.DecodeBool(v)
	default:
		return int64(v)
	}
}

func (s *Schema) sorted() []Field {
	s.sortOnce.Do(func() {
		s.ordered = append([]Field(nil), s.fields...)
		sort.Slice(s.ordered, func(i, j int) bool { return s.ordered[i].Number < s.ordered[j].Number })
	})
	return s.ordered
}
