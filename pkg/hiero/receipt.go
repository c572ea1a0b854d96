/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hiero

import (
	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/rcode"
	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/status"
	"github.com/hiero-ledger/hiero-client-go/pkg/entity"
	"github.com/hiero-ledger/hiero-client-go/pkg/hapi"
	"github.com/hiero-ledger/hiero-client-go/pkg/wire"
)

// TransactionReceipt is the outcome of a transaction once it reached
// consensus. The IDs of created entities are set depending on the
// transaction kind.
type TransactionReceipt struct {
	Status                  rcode.Code
	AccountID               *entity.AccountID
	FileID                  *entity.FileID
	ContractID              *entity.ContractID
	TopicID                 *entity.TopicID
	TopicSequenceNumber     uint64
	TopicRunningHash        []byte
	TopicRunningHashVersion uint64
	TokenID                 *entity.TokenID
	TotalSupply             uint64
	ScheduleID              *entity.ScheduleID
	ScheduledTransactionID  *TransactionID
	SerialNumbers           []int64

	// Duplicates and Children are only set when requested by the query
	Duplicates []TransactionReceipt
	Children   []TransactionReceipt
	// TransactionID is the transaction the receipt was queried for
	TransactionID *TransactionID
}

// TransactionReceiptFromRecord decodes a hapi.TransactionReceipt
func TransactionReceiptFromRecord(r *wire.Record) TransactionReceipt {
	var receipt TransactionReceipt
	if r == nil {
		return receipt
	}
	receipt.Status = rcode.Code(r.Int("status"))
	if m := r.Message("accountID"); m != nil {
		id := entity.AccountIDFromRecord(m)
		receipt.AccountID = &id
	}
	if m := r.Message("fileID"); m != nil {
		id := entity.FileIDFromRecord(m)
		receipt.FileID = &id
	}
	if m := r.Message("contractID"); m != nil {
		id := entity.ContractIDFromRecord(m)
		receipt.ContractID = &id
	}
	if m := r.Message("topicID"); m != nil {
		id := entity.TopicIDFromRecord(m)
		receipt.TopicID = &id
	}
	receipt.TopicSequenceNumber = r.Uint("topicSequenceNumber")
	receipt.TopicRunningHash = r.GetBytes("topicRunningHash")
	receipt.TopicRunningHashVersion = r.Uint("topicRunningHashVersion")
	if m := r.Message("tokenID"); m != nil {
		id := entity.TokenIDFromRecord(m)
		receipt.TokenID = &id
	}
	receipt.TotalSupply = r.Uint("newTotalSupply")
	if m := r.Message("scheduleID"); m != nil {
		id := entity.ScheduleIDFromRecord(m)
		receipt.ScheduleID = &id
	}
	if m := r.Message("scheduledTransactionID"); m != nil {
		id := TransactionIDFromRecord(m)
		receipt.ScheduledTransactionID = &id
	}
	for _, s := range r.List("serialNumbers") {
		receipt.SerialNumbers = append(receipt.SerialNumbers, s.(int64))
	}
	return receipt
}

// TransactionReceiptFromBytes decodes the protobuf encoding of a receipt
func TransactionReceiptFromBytes(b []byte) (TransactionReceipt, error) {
	r, err := wire.Unmarshal(hapi.TransactionReceipt, b)
	if err != nil {
		return TransactionReceipt{}, status.Errorf(status.InvalidArgument, "invalid transaction receipt: %s", err)
	}
	return TransactionReceiptFromRecord(r), nil
}

// ToRecord encodes the receipt as a hapi.TransactionReceipt
func (receipt TransactionReceipt) ToRecord() *wire.Record {
	r := hapi.TransactionReceipt.New().Set("status", int32(receipt.Status))
	if receipt.AccountID != nil {
		r.Set("accountID", receipt.AccountID.ToRecord())
	}
	if receipt.FileID != nil {
		r.Set("fileID", receipt.FileID.ToRecord())
	}
	if receipt.ContractID != nil {
		r.Set("contractID", receipt.ContractID.ToRecord())
	}
	if receipt.TopicID != nil {
		r.Set("topicID", receipt.TopicID.ToRecord())
	}
	r.Set("topicSequenceNumber", receipt.TopicSequenceNumber)
	if receipt.TopicRunningHash != nil {
		r.Set("topicRunningHash", receipt.TopicRunningHash)
	}
	r.Set("topicRunningHashVersion", receipt.TopicRunningHashVersion)
	if receipt.TokenID != nil {
		r.Set("tokenID", receipt.TokenID.ToRecord())
	}
	r.Set("newTotalSupply", receipt.TotalSupply)
	if receipt.ScheduleID != nil {
		r.Set("scheduleID", receipt.ScheduleID.ToRecord())
	}
	if receipt.ScheduledTransactionID != nil {
		r.Set("scheduledTransactionID", receipt.ScheduledTransactionID.ToRecord())
	}
	for _, s := range receipt.SerialNumbers {
		r.Append("serialNumbers", s)
	}
	return r
}

// ToBytes returns the protobuf encoding of the receipt
func (receipt TransactionReceipt) ToBytes() []byte {
	return receipt.ToRecord().Marshal()
}

// ValidateStatus returns a ReceiptError unless the status is SUCCESS
func (receipt TransactionReceipt) ValidateStatus() error {
	if receipt.Status == rcode.Success {
		return nil
	}
	err := &ReceiptError{Status: receipt.Status, Receipt: &receipt}
	if receipt.TransactionID != nil {
		err.TransactionID = *receipt.TransactionID
	}
	return err
}

func receiptsFromRecords(records []*wire.Record) []TransactionReceipt {
	var receipts []TransactionReceipt
	for _, r := range records {
		receipts = append(receipts, TransactionReceiptFromRecord(r))
	}
	return receipts
}

// receiptPending reports whether the network has not decided on the
// transaction yet
func receiptPending(code rcode.Code) bool {
	switch code {
	case rcode.Busy, rcode.Unknown, rcode.ReceiptNotFound, rcode.RecordNotFound, rcode.PlatformNotActive:
		return true
	}
	return false
}
