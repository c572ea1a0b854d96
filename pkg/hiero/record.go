/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hiero

import (
	"time"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/status"
	"github.com/hiero-ledger/hiero-client-go/pkg/entity"
	"github.com/hiero-ledger/hiero-client-go/pkg/hapi"
	"github.com/hiero-ledger/hiero-client-go/pkg/hbar"
	"github.com/hiero-ledger/hiero-client-go/pkg/wire"
)

// Transfer is one hbar movement of a record
type Transfer struct {
	AccountID  entity.AccountID
	Amount     hbar.Amount
	IsApproved bool
}

// TokenTransfer is one fungible token movement of a record
type TokenTransfer struct {
	AccountID  entity.AccountID
	Amount     int64
	IsApproved bool
}

// TokenTransfers groups the movements of one token
type TokenTransfers struct {
	TokenID   entity.TokenID
	Transfers []TokenTransfer
}

// TransactionRecord is the full outcome of a transaction, including the
// charged fee and every balance change it caused
type TransactionRecord struct {
	Receipt            TransactionReceipt
	TransactionHash    []byte
	ConsensusTimestamp time.Time
	TransactionID      TransactionID
	TransactionMemo    string
	TransactionFee     hbar.Amount
	Transfers          []Transfer
	TokenTransfers     []TokenTransfers
	ScheduleRef        *entity.ScheduleID
}

// TransactionRecordFromRecord decodes a hapi.TransactionRecord
func TransactionRecordFromRecord(r *wire.Record) TransactionRecord {
	var record TransactionRecord
	if r == nil {
		return record
	}
	record.Receipt = TransactionReceiptFromRecord(r.Message("receipt"))
	record.TransactionHash = r.GetBytes("transactionHash")
	if ts := r.Message("consensusTimestamp"); ts != nil {
		record.ConsensusTimestamp = timeFromRecord(ts)
	}
	record.TransactionID = TransactionIDFromRecord(r.Message("transactionID"))
	record.TransactionMemo = r.GetString("memo")
	record.TransactionFee = hbar.FromTinybars(int64(r.Uint("transactionFee")))
	if list := r.Message("transferList"); list != nil {
		for _, aa := range list.Messages("accountAmounts") {
			record.Transfers = append(record.Transfers, Transfer{
				AccountID:  entity.AccountIDFromRecord(aa.Message("accountID")),
				Amount:     hbar.FromTinybars(aa.Int("amount")),
				IsApproved: aa.Bool("is_approval"),
			})
		}
	}
	for _, tl := range r.Messages("tokenTransferLists") {
		tt := TokenTransfers{TokenID: entity.TokenIDFromRecord(tl.Message("token"))}
		for _, aa := range tl.Messages("transfers") {
			tt.Transfers = append(tt.Transfers, TokenTransfer{
				AccountID:  entity.AccountIDFromRecord(aa.Message("accountID")),
				Amount:     aa.Int("amount"),
				IsApproved: aa.Bool("is_approval"),
			})
		}
		record.TokenTransfers = append(record.TokenTransfers, tt)
	}
	if m := r.Message("scheduleRef"); m != nil {
		id := entity.ScheduleIDFromRecord(m)
		record.ScheduleRef = &id
	}
	return record
}

// TransactionRecordFromBytes decodes the protobuf encoding of a record
func TransactionRecordFromBytes(b []byte) (TransactionRecord, error) {
	r, err := wire.Unmarshal(hapi.TransactionRecord, b)
	if err != nil {
		return TransactionRecord{}, status.Errorf(status.InvalidArgument, "invalid transaction record: %s", err)
	}
	return TransactionRecordFromRecord(r), nil
}

// ToRecord encodes the record as a hapi.TransactionRecord
func (record TransactionRecord) ToRecord() *wire.Record {
	r := hapi.TransactionRecord.New().
		Set("receipt", record.Receipt.ToRecord()).
		Set("transactionID", record.TransactionID.ToRecord()).
		Set("transactionFee", uint64(record.TransactionFee.Tinybars()))
	if record.TransactionHash != nil {
		r.Set("transactionHash", record.TransactionHash)
	}
	if !record.ConsensusTimestamp.IsZero() {
		r.Set("consensusTimestamp", timeToRecord(record.ConsensusTimestamp))
	}
	if record.TransactionMemo != "" {
		r.Set("memo", record.TransactionMemo)
	}
	if len(record.Transfers) > 0 {
		list := hapi.TransferList.New()
		for _, t := range record.Transfers {
			list.Append("accountAmounts", accountAmountRecord(t.AccountID, t.Amount.Tinybars(), t.IsApproved))
		}
		r.Set("transferList", list)
	}
	for _, tt := range record.TokenTransfers {
		list := hapi.TokenTransferList.New().Set("token", tt.TokenID.ToRecord())
		for _, t := range tt.Transfers {
			list.Append("transfers", accountAmountRecord(t.AccountID, t.Amount, t.IsApproved))
		}
		r.Append("tokenTransferLists", list)
	}
	if record.ScheduleRef != nil {
		r.Set("scheduleRef", record.ScheduleRef.ToRecord())
	}
	return r
}

// ToBytes returns the protobuf encoding of the record
func (record TransactionRecord) ToBytes() []byte {
	return record.ToRecord().Marshal()
}

func accountAmountRecord(accountID entity.AccountID, amount int64, approved bool) *wire.Record {
	aa := hapi.AccountAmount.New().
		Set("accountID", accountID.ToRecord()).
		Set("amount", amount)
	if approved {
		aa.Set("is_approval", true)
	}
	return aa
}
