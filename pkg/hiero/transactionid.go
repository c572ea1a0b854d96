/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hiero

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/status"
	"github.com/hiero-ledger/hiero-client-go/pkg/entity"
	"github.com/hiero-ledger/hiero-client-go/pkg/hapi"
	"github.com/hiero-ledger/hiero-client-go/pkg/wire"
)

// TransactionID identifies a transaction by its payer and the time from
// which it is valid. Scheduled and Nonce distinguish scheduled and child
// transactions sharing the same payer and valid start.
type TransactionID struct {
	AccountID  entity.AccountID
	ValidStart time.Time
	Scheduled  bool
	Nonce      int32
}

// GenerateTransactionID returns an ID for account valid from now
func GenerateTransactionID(accountID entity.AccountID) TransactionID {
	return TransactionID{AccountID: accountID, ValidStart: time.Now()}
}

// NewTransactionIDWithValidStart returns an ID with an explicit valid start
func NewTransactionIDWithValidStart(accountID entity.AccountID, validStart time.Time) TransactionID {
	return TransactionID{AccountID: accountID, ValidStart: validStart}
}

// TransactionIDFromString parses "0.0.3@1700000000.000000001" with the
// optional "?scheduled" and "/nonce" suffixes
func TransactionIDFromString(s string) (TransactionID, error) {
	var id TransactionID
	rest := s

	if i := strings.LastIndexByte(rest, '/'); i >= 0 {
		nonce, err := strconv.ParseInt(rest[i+1:], 10, 32)
		if err != nil {
			return TransactionID{}, status.Errorf(status.InvalidArgument, "invalid transaction ID nonce [%s]", s)
		}
		id.Nonce = int32(nonce)
		rest = rest[:i]
	}
	if strings.HasSuffix(rest, "?scheduled") {
		id.Scheduled = true
		rest = strings.TrimSuffix(rest, "?scheduled")
	}

	at := strings.IndexByte(rest, '@')
	if at < 0 {
		return TransactionID{}, status.Errorf(status.InvalidArgument, "transaction ID [%s] has no valid start", s)
	}
	accountID, err := entity.AccountIDFromString(rest[:at])
	if err != nil {
		return TransactionID{}, err
	}
	id.AccountID = accountID

	parts := strings.Split(rest[at+1:], ".")
	if len(parts) != 2 {
		return TransactionID{}, status.Errorf(status.InvalidArgument, "invalid transaction ID valid start [%s]", s)
	}
	seconds, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return TransactionID{}, status.Errorf(status.InvalidArgument, "invalid transaction ID valid start [%s]", s)
	}
	nanos, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || nanos >= int64(time.Second) {
		return TransactionID{}, status.Errorf(status.InvalidArgument, "invalid transaction ID valid start [%s]", s)
	}
	id.ValidStart = time.Unix(seconds, nanos)
	return id, nil
}

// TransactionIDFromRecord decodes a hapi.TransactionID
func TransactionIDFromRecord(r *wire.Record) TransactionID {
	var id TransactionID
	if r == nil {
		return id
	}
	if a := r.Message("accountID"); a != nil {
		id.AccountID = entity.AccountIDFromRecord(a)
	}
	if ts := r.Message("transactionValidStart"); ts != nil {
		id.ValidStart = timeFromRecord(ts)
	}
	id.Scheduled = r.Bool("scheduled")
	id.Nonce = int32(r.Int("nonce"))
	return id
}

// TransactionIDFromBytes decodes the protobuf encoding of a transaction ID
func TransactionIDFromBytes(b []byte) (TransactionID, error) {
	r, err := wire.Unmarshal(hapi.TransactionID, b)
	if err != nil {
		return TransactionID{}, status.Errorf(status.InvalidArgument, "invalid transaction ID bytes: %s", err)
	}
	return TransactionIDFromRecord(r), nil
}

// ToRecord encodes the ID as a hapi.TransactionID
func (id TransactionID) ToRecord() *wire.Record {
	r := hapi.TransactionID.New().
		Set("transactionValidStart", timeToRecord(id.ValidStart)).
		Set("accountID", id.AccountID.ToRecord())
	if id.Scheduled {
		r.Set("scheduled", true)
	}
	if id.Nonce != 0 {
		r.Set("nonce", id.Nonce)
	}
	return r
}

// ToBytes returns the protobuf encoding of the ID
func (id TransactionID) ToBytes() []byte {
	return id.ToRecord().Marshal()
}

// IsZero reports whether the ID is unset
func (id TransactionID) IsZero() bool {
	return id.AccountID.IsZero() && id.ValidStart.IsZero()
}

// WithScheduled returns a copy of the ID flagged as scheduled
func (id TransactionID) WithScheduled(scheduled bool) TransactionID {
	id.Scheduled = scheduled
	return id
}

// WithNonce returns a copy of the ID with the given nonce
func (id TransactionID) WithNonce(nonce int32) TransactionID {
	id.Nonce = nonce
	return id
}

// Equal compares the IDs ignoring account checksums
func (id TransactionID) Equal(other TransactionID) bool {
	return id.AccountID.Equal(other.AccountID) && id.ValidStart.Equal(other.ValidStart) &&
		id.Scheduled == other.Scheduled && id.Nonce == other.Nonce
}

func (id TransactionID) String() string {
	s := fmt.Sprintf("%s@%d.%09d", id.AccountID, id.ValidStart.Unix(), id.ValidStart.Nanosecond())
	if id.Scheduled {
		s += "?scheduled"
	}
	if id.Nonce != 0 {
		s += "/" + strconv.Itoa(int(id.Nonce))
	}
	return s
}

// GetReceipt queries the receipt of the transaction
func (id TransactionID) GetReceipt(ctx context.Context, client *Client) (*TransactionReceipt, error) {
	q := NewTransactionReceiptQuery()
	q.SetTransactionID(id)
	return q.Execute(ctx, client)
}

// GetRecord queries the record of the transaction
func (id TransactionID) GetRecord(ctx context.Context, client *Client) (*TransactionRecord, error) {
	q := NewTransactionRecordQuery()
	q.SetTransactionID(id)
	return q.Execute(ctx, client)
}

func timeToRecord(t time.Time) *wire.Record {
	return hapi.Timestamp.New().Set("seconds", t.Unix()).Set("nanos", t.Nanosecond())
}

func timeFromRecord(r *wire.Record) time.Time {
	if r == nil {
		return time.Time{}
	}
	return time.Unix(r.Int("seconds"), r.Int("nanos"))
}

func durationToRecord(d time.Duration) *wire.Record {
	return hapi.Duration.New().Set("seconds", int64(d/time.Second))
}

func durationFromRecord(r *wire.Record) time.Duration {
	if r == nil {
		return 0
	}
	return time.Duration(r.Int("seconds")) * time.Second
}
