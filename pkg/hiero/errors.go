/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hiero

import (
	"fmt"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/rcode"
	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/status"
	"github.com/hiero-ledger/hiero-client-go/pkg/hbar"
)

// PrecheckError is returned when a node rejects a transaction or query
// before it reaches consensus
type PrecheckError struct {
	Status        rcode.Code
	TransactionID *TransactionID
}

func (e *PrecheckError) Error() string {
	if e.TransactionID == nil {
		return fmt.Sprintf("precheck failed with status %s", e.Status)
	}
	return fmt.Sprintf("transaction %s failed precheck with status %s", e.TransactionID, e.Status)
}

// ToStatus exposes the error as a precheck status
func (e *PrecheckError) ToStatus() *status.Status {
	return status.NewFromResponseCode(status.PrecheckServerStatus, e.Status, e.TransactionID)
}

// ReceiptError is returned when a transaction reached consensus with a
// status other than SUCCESS
type ReceiptError struct {
	Status        rcode.Code
	TransactionID TransactionID
	Receipt       *TransactionReceipt
}

func (e *ReceiptError) Error() string {
	return fmt.Sprintf("receipt for transaction %s contained error status %s", e.TransactionID, e.Status)
}

// ToStatus exposes the error as a receipt status
func (e *ReceiptError) ToStatus() *status.Status {
	return status.NewFromResponseCode(status.ReceiptServerStatus, e.Status, e.TransactionID)
}

// MaxAttemptsExceededError is returned when the execution gave up; LastErr
// is the error of the final attempt
type MaxAttemptsExceededError struct {
	Attempts int
	LastErr  error
}

func (e *MaxAttemptsExceededError) Error() string {
	return fmt.Sprintf("exceeded maximum attempts (%d) for request: %s", e.Attempts, e.LastErr)
}

// Unwrap returns the error of the final attempt
func (e *MaxAttemptsExceededError) Unwrap() error {
	return e.LastErr
}

// ToStatus exposes the error as a client status
func (e *MaxAttemptsExceededError) ToStatus() *status.Status {
	return status.New(status.ClientStatus, status.MaxAttemptsExceeded.ToInt32(), e.Error(), []interface{}{e.LastErr})
}

// MaxQueryPaymentExceededError is returned when a query costs more than the
// caller allows to pay for it
type MaxQueryPaymentExceededError struct {
	Query      string
	Cost       hbar.Amount
	MaxPayment hbar.Amount
}

func (e *MaxQueryPaymentExceededError) Error() string {
	return fmt.Sprintf("cost of %s (%s) without explicit payment is greater than the max query payment of %s",
		e.Query, e.Cost, e.MaxPayment)
}

// ToStatus exposes the error as a client status
func (e *MaxQueryPaymentExceededError) ToStatus() *status.Status {
	return status.New(status.ClientStatus, status.MaxQueryPaymentExceeded.ToInt32(), e.Error(), nil)
}

func errImmutable() error {
	return status.Errorf(status.IllegalState, "transaction is immutable and cannot be edited")
}
