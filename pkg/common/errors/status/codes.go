/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package status

import (
	"strconv"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/rcode"
	grpcCodes "google.golang.org/grpc/codes"
)

// Code represents a status code
type Code uint32

const (
	// OK is returned on success.
	OK Code = 0

	// Unknown represents status codes that are uncategorized or unknown to the SDK
	Unknown Code = 1

	// ConnectionFailed is returned when a network connection attempt from the SDK fails
	ConnectionFailed Code = 2

	// IllegalState is returned when an operation is not allowed in the
	// current lifecycle state, e.g. editing a frozen transaction
	IllegalState Code = 3

	// InvalidArgument is returned for malformed input
	InvalidArgument Code = 4

	// Timeout operation timed out
	Timeout Code = 5

	// NoNodesFound No nodes were configured or healthy
	NoNodesFound Code = 6

	// MultipleErrors multiple errors occurred
	MultipleErrors Code = 7

	// SignatureVerificationFailed is when signature fails verification
	SignatureVerificationFailed Code = 8

	// BadEntityID is returned when an entity ID checksum does not match the
	// client's ledger
	BadEntityID Code = 9

	// MaxAttemptsExceeded is returned when the execution loop gives up
	MaxAttemptsExceeded Code = 10

	// MaxQueryPaymentExceeded is returned when the cost of a query is above
	// the allowed maximum payment
	MaxQueryPaymentExceeded Code = 11

	// GenericTransient is generally used by tests to indicate that a retry is possible
	GenericTransient Code = 12
)

// CodeName maps the codes in this packages to human-readable strings
var CodeName = map[int32]string{
	0:  "OK",
	1:  "UNKNOWN",
	2:  "CONNECTION_FAILED",
	3:  "ILLEGAL_STATE",
	4:  "INVALID_ARGUMENT",
	5:  "TIMEOUT",
	6:  "NO_NODES_FOUND",
	7:  "MULTIPLE_ERRORS",
	8:  "SIGNATURE_VERIFICATION_FAILED",
	9:  "BAD_ENTITY_ID",
	10: "MAX_ATTEMPTS_EXCEEDED",
	11: "MAX_QUERY_PAYMENT_EXCEEDED",
	12: "GENERIC_TRANSIENT",
}

// ToInt32 cast to int32
func (c Code) ToInt32() int32 {
	return int32(c)
}

// String representation of the code
func (c Code) String() string {
	if s, ok := CodeName[c.ToInt32()]; ok {
		return s
	}
	return strconv.Itoa(int(c))
}

// ToSDKStatusCode cast to SDK status code
func ToSDKStatusCode(c int32) Code {
	return Code(c)
}

// ToGRPCStatusCode cast to gRPC status code
func ToGRPCStatusCode(c int32) grpcCodes.Code {
	return grpcCodes.Code(c)
}

// ToResponseCode cast to network response code
func ToResponseCode(c int32) rcode.Code {
	return rcode.Code(c)
}
