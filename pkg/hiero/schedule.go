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
	"github.com/hiero-ledger/hiero-client-go/pkg/keys"
	"github.com/hiero-ledger/hiero-client-go/pkg/wire"
)

var scheduleCreateKind = registerKind(&TransactionKind{
	Name:          "ScheduleCreateTransaction",
	DataCase:      "scheduleCreate",
	Method:        hapi.ScheduleCreate,
	Schema:        hapi.ScheduleCreateTransactionBody,
	DefaultMaxFee: hbar.New(5),
	Required:      []string{"scheduledTransactionBody"},
})

// ScheduleCreateTransaction creates a schedule holding a transaction that
// executes once it has collected the required signatures
type ScheduleCreateTransaction struct {
	*Transaction
}

// NewScheduleCreateTransaction returns an empty schedule create transaction
func NewScheduleCreateTransaction() *ScheduleCreateTransaction {
	return &ScheduleCreateTransaction{newTransaction(scheduleCreateKind)}
}

// SetScheduledTransaction sets the transaction to schedule. It must not be
// frozen nor have node account IDs.
func (t *ScheduleCreateTransaction) SetScheduledTransaction(tx *Transaction) error {
	if err := t.requireNotFrozen(); err != nil {
		return err
	}
	body, err := tx.schedulableBody()
	if err != nil {
		return err
	}
	return t.setEntities("scheduledTransactionBody", body, tx.checksummedIDs()...)
}

// SetScheduleMemo sets the memo of the schedule
func (t *ScheduleCreateTransaction) SetScheduleMemo(memo string) error {
	return t.set("memo", memo)
}

// GetScheduleMemo returns the memo of the schedule
func (t *ScheduleCreateTransaction) GetScheduleMemo() string {
	return t.data.GetString("memo")
}

// SetAdminKey sets the key that may delete the schedule
func (t *ScheduleCreateTransaction) SetAdminKey(key keys.Key) error {
	return t.set("adminKey", key.ToRecord())
}

// SetPayerAccountID sets the account paying for the scheduled transaction
func (t *ScheduleCreateTransaction) SetPayerAccountID(id entity.AccountID) error {
	return t.setEntities("payerAccountID", id.ToRecord(), id)
}

// GetPayerAccountID returns the payer of the scheduled transaction
func (t *ScheduleCreateTransaction) GetPayerAccountID() entity.AccountID {
	return entity.AccountIDFromRecord(t.data.Message("payerAccountID"))
}

// SetExpirationTime sets when the schedule expires
func (t *ScheduleCreateTransaction) SetExpirationTime(expiry time.Time) error {
	return t.set("expiration_time", timeToRecord(expiry))
}

// SetWaitForExpiry executes the transaction at expiry instead of as soon as
// it is fully signed
func (t *ScheduleCreateTransaction) SetWaitForExpiry(wait bool) error {
	return t.set("wait_for_expiry", wait)
}

// Schedule wraps the transaction into a ScheduleCreateTransaction. The
// transaction must not be frozen nor have node account IDs.
func (t *Transaction) Schedule() (*ScheduleCreateTransaction, error) {
	body, err := t.schedulableBody()
	if err != nil {
		return nil, err
	}
	scheduled := NewScheduleCreateTransaction()
	scheduled.data.Set("scheduledTransactionBody", body)
	scheduled.entityIDs["scheduledTransactionBody"] = t.checksummedIDs()
	if t.transactionID != nil {
		scheduled.transactionID = t.transactionID
	}
	return scheduled, nil
}

func (t *Transaction) checksummedIDs() []checksummed {
	var ids []checksummed
	for _, fieldIDs := range t.entityIDs {
		ids = append(ids, fieldIDs...)
	}
	return ids
}

func (t *Transaction) schedulableBody() (*wire.Record, error) {
	if t.frozen {
		return nil, status.Errorf(status.IllegalState, "a frozen transaction cannot be scheduled")
	}
	if len(t.nodeAccountIDs) > 0 {
		return nil, status.Errorf(status.IllegalState, "a scheduled transaction must not have node account IDs")
	}
	if _, ok := hapi.SchedulableTransactionBody.Field(t.kind.DataCase); !ok {
		return nil, status.Errorf(status.InvalidArgument, "%s cannot be scheduled", t.kind)
	}

	body := hapi.SchedulableTransactionBody.New().
		Set("transactionFee", uint64(t.resolveFee(nil).Tinybars())).
		Set(t.kind.DataCase, t.data.Clone())
	if t.memo != "" {
		body.Set("memo", t.memo)
	}
	return body, nil
}
