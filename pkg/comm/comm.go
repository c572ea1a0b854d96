/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package comm manages the gRPC connections to consensus nodes. Requests are
// exchanged as already serialized protobuf messages.
package comm

import (
	"context"

	"github.com/pkg/errors"
	"google.golang.org/grpc/encoding"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/logging"
)

var logger = logging.NewLogger("hiero/comm")

// Invoker sends one serialized request to a gRPC method and returns the
// serialized response
type Invoker interface {
	Invoke(ctx context.Context, method string, req []byte) ([]byte, error)
	Close() error
}

// rawCodec passes bytes through untouched. It registers under the name of
// the proto codec so that servers see a regular protobuf content type.
type rawCodec struct{}

var _ encoding.Codec = rawCodec{}

// RawCodec returns the pass-through codec, e.g. for grpc.ForceServerCodec
func RawCodec() encoding.Codec {
	return rawCodec{}
}

func (rawCodec) Marshal(v interface{}) ([]byte, error) {
	switch b := v.(type) {
	case []byte:
		return b, nil
	case *[]byte:
		return *b, nil
	default:
		return nil, errors.Errorf("raw codec can't marshal %T", v)
	}
}

func (rawCodec) Unmarshal(data []byte, v interface{}) error {
	b, ok := v.(*[]byte)
	if !ok {
		return errors.Errorf("raw codec can't unmarshal into %T", v)
	}
	*b = append((*b)[:0], data...)
	return nil
}

func (rawCodec) Name() string {
	return "proto"
}
