/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package status classifies the errors returned by the SDK.
//
// Every error can be turned into a Status that names the component the
// failure came from (its Group) and a Code within that group. Precheck
// and receipt statuses carry network response codes; transport statuses
// carry gRPC codes; client statuses carry the SDK codes in this package.
package status

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/multi"
	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/rcode"
	grpcstatus "google.golang.org/grpc/status"
)

// Status describes an unsuccessful operation
type Status struct {
	Group   Group
	Code    int32
	Message string
	// Details are optional values such as the transaction ID a precheck
	// code belongs to, or the errors of a MultipleErrors status
	Details []interface{}
}

// Group is the component a status code comes from
type Group int32

const (
	// UnknownStatus unknown status group
	UnknownStatus Group = iota

	// GRPCTransportStatus is a gRPC failure talking to a consensus node
	GRPCTransportStatus

	// PrecheckServerStatus is the response code a node returns synchronously
	// when a transaction or query is submitted
	PrecheckServerStatus
	// ReceiptServerStatus is the response code carried by a transaction
	// receipt once the network reached consensus
	ReceiptServerStatus

	// ClientStatus is the status of checks performed by the SDK itself, such
	// as argument validation and transaction lifecycle checks
	ClientStatus

	// TestStatus is used by tests to create retry codes.
	TestStatus
)

var groupNames = [...]string{
	UnknownStatus:        "unknown",
	GRPCTransportStatus:  "transport",
	PrecheckServerStatus: "precheck",
	ReceiptServerStatus:  "receipt",
	ClientStatus:         "client",
	TestStatus:           "test",
}

func (g Group) String() string {
	if g < 0 || int(g) >= len(groupNames) {
		return groupNames[UnknownStatus]
	}
	return groupNames[g]
}

// Provider is implemented by typed SDK errors that can describe
// themselves as a Status.
type Provider interface {
	ToStatus() *Status
}

// FromError returns the Status of err. A nil error is OK. Errors that are
// neither a Status, a Provider nor a multi error yield false.
func FromError(err error) (s *Status, ok bool) {
	if err == nil {
		return &Status{Group: ClientStatus, Code: int32(OK)}, true
	}
	if m, isMulti := errors.Cause(err).(multi.Errors); isMulti {
		details := make([]interface{}, len(m))
		for i, e := range m {
			details[i] = e
		}
		return New(ClientStatus, MultipleErrors.ToInt32(), m.Error(), details), true
	}
	// the outermost classification wins, so a typed error that wraps the
	// status of its last attempt reports itself
	for e := err; e != nil; e = errors.Unwrap(e) {
		switch v := e.(type) {
		case *Status:
			return v, true
		case Provider:
			return v.ToStatus(), true
		}
	}
	return nil, false
}

// Error renders "<group> <code name> (<code>)" followed by the message
// when it adds anything to the code name
func (s *Status) Error() string {
	name := s.codeString()
	if s.Message == "" || s.Message == name {
		return fmt.Sprintf("%s %s (%d)", s.Group, name, s.Code)
	}
	return fmt.Sprintf("%s %s (%d): %s", s.Group, name, s.Code, s.Message)
}

// Is makes errors.Is match any Status of the same group and code
func (s *Status) Is(target error) bool {
	t, ok := target.(*Status)
	return ok && t.Group == s.Group && t.Code == s.Code
}

func (s *Status) codeString() string {
	switch s.Group {
	case GRPCTransportStatus:
		return ToGRPCStatusCode(s.Code).String()
	case PrecheckServerStatus, ReceiptServerStatus:
		return ToResponseCode(s.Code).String()
	case ClientStatus, TestStatus:
		return ToSDKStatusCode(s.Code).String()
	default:
		return Unknown.String()
	}
}

// New returns a Status with the given parameters
func New(group Group, code int32, msg string, details []interface{}) *Status {
	return &Status{Group: group, Code: code, Message: msg, Details: details}
}

// Errorf returns a client Status with the given code and a formatted message
func Errorf(code Code, format string, args ...interface{}) *Status {
	return New(ClientStatus, code.ToInt32(), fmt.Sprintf(format, args...), nil)
}

// NewFromResponseCode creates a Status in the given server group from a
// network response code
func NewFromResponseCode(group Group, code rcode.Code, details ...interface{}) *Status {
	return New(group, int32(code), code.String(), details)
}

// NewFromGRPCStatus converts a gRPC status. The gRPC details are kept.
func NewFromGRPCStatus(s *grpcstatus.Status) *Status {
	if s == nil {
		return nil
	}
	proto := s.Proto()
	details := make([]interface{}, len(proto.Details))
	for i, detail := range proto.Details {
		details[i] = detail
	}
	return New(GRPCTransportStatus, proto.Code, s.Message(), details)
}

// Is reports whether err carries a Status of the given group and code.
// A nil error never matches.
func Is(err error, group Group, code int32) bool {
	if err == nil {
		return false
	}
	s, ok := FromError(err)
	return ok && s.Group == group && s.Code == code
}
