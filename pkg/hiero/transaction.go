/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hiero

import (
	"context"
	"sort"
	"time"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/multi"
	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/rcode"
	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/status"
	"github.com/hiero-ledger/hiero-client-go/pkg/common/logging"
	"github.com/hiero-ledger/hiero-client-go/pkg/entity"
	"github.com/hiero-ledger/hiero-client-go/pkg/hapi"
	"github.com/hiero-ledger/hiero-client-go/pkg/hbar"
	"github.com/hiero-ledger/hiero-client-go/pkg/keys"
	"github.com/hiero-ledger/hiero-client-go/pkg/metrics"
	"github.com/hiero-ledger/hiero-client-go/pkg/wire"
)

// DefaultTransactionValidDuration is how long a transaction may wait for
// consensus after its valid start
const DefaultTransactionValidDuration = 120 * time.Second

// checksummed is an entity ID whose checksum can be validated
type checksummed interface {
	ValidateChecksum(p entity.LedgerIDProvider) error
}

type transactionSigner struct {
	publicKey keys.PublicKey
	sign      Signer
}

// Transaction is a transaction of any kind. It starts unfrozen; freezing
// fixes the transaction ID, the nodes and the body sent to each of them.
// After that only signatures may be added.
//
// A Transaction is not safe for concurrent use.
type Transaction struct {
	executable

	kind *TransactionKind
	data *wire.Record

	transactionID     *TransactionID
	generatedID       bool
	maxTransactionFee *hbar.Amount
	validDuration     time.Duration
	memo              string
	regenerate        *bool

	frozen   bool
	executed bool
	// bodies holds the TransactionBody bytes of each node
	bodies [][]byte
	// sigPairs holds signatures added without a signer, per node
	sigPairs [][]*wire.Record
	signers  []transactionSigner
	built    []*wire.Record

	entityIDs map[string][]checksummed
}

func newTransaction(kind *TransactionKind) *Transaction {
	t := &Transaction{
		kind:          kind,
		data:          kind.Schema.New(),
		validDuration: DefaultTransactionValidDuration,
		entityIDs:     make(map[string][]checksummed),
	}
	t.guard = t.requireNotFrozen
	return t
}

func (t *Transaction) requireNotFrozen() error {
	if t.frozen {
		return errImmutable()
	}
	return nil
}

// Kind returns the kind of the transaction
func (t *Transaction) Kind() *TransactionKind {
	return t.kind
}

// IsFrozen reports whether the transaction can still be edited
func (t *Transaction) IsFrozen() bool {
	return t.frozen
}

// IsExecuted reports whether the network accepted the transaction
func (t *Transaction) IsExecuted() bool {
	return t.executed
}

// set sets a payload field
func (t *Transaction) set(field string, value interface{}) error {
	if err := t.requireNotFrozen(); err != nil {
		return err
	}
	t.data.Set(field, value)
	return nil
}

// setEntities sets a payload field and remembers the IDs it was set from
// for checksum validation
func (t *Transaction) setEntities(field string, value interface{}, ids ...checksummed) error {
	if err := t.set(field, value); err != nil {
		return err
	}
	t.entityIDs[field] = ids
	return nil
}

// TransactionID returns the ID of the transaction and whether it is set
func (t *Transaction) TransactionID() (TransactionID, bool) {
	if t.transactionID == nil {
		return TransactionID{}, false
	}
	return *t.transactionID, true
}

// SetTransactionID sets the ID instead of generating one from the operator
func (t *Transaction) SetTransactionID(id TransactionID) error {
	if err := t.requireNotFrozen(); err != nil {
		return err
	}
	t.transactionID = &id
	t.generatedID = false
	return nil
}

// MaxTransactionFee returns the fee set on the transaction, if any
func (t *Transaction) MaxTransactionFee() (hbar.Amount, bool) {
	if t.maxTransactionFee == nil {
		return hbar.Zero, false
	}
	return *t.maxTransactionFee, true
}

// SetMaxTransactionFee sets the most the payer is willing to pay
func (t *Transaction) SetMaxTransactionFee(fee hbar.Amount) error {
	if err := t.requireNotFrozen(); err != nil {
		return err
	}
	if fee.IsNegative() {
		return status.Errorf(status.InvalidArgument, "max transaction fee must not be negative: %s", fee)
	}
	t.maxTransactionFee = &fee
	return nil
}

// TransactionValidDuration returns how long the transaction may wait for
// consensus
func (t *Transaction) TransactionValidDuration() time.Duration {
	return t.validDuration
}

// SetTransactionValidDuration sets how long the transaction may wait for
// consensus
func (t *Transaction) SetTransactionValidDuration(d time.Duration) error {
	if err := t.requireNotFrozen(); err != nil {
		return err
	}
	if d <= 0 {
		return status.Errorf(status.InvalidArgument, "transaction valid duration must be positive: %s", d)
	}
	t.validDuration = d
	return nil
}

// TransactionMemo returns the memo of the transaction
func (t *Transaction) TransactionMemo() string {
	return t.memo
}

// SetTransactionMemo sets the memo of the transaction
func (t *Transaction) SetTransactionMemo(memo string) error {
	if err := t.requireNotFrozen(); err != nil {
		return err
	}
	t.memo = memo
	return nil
}

// SetRegenerateTransactionID overrides the client policy of regenerating
// the ID of an expired transaction
func (t *Transaction) SetRegenerateTransactionID(regenerate bool) error {
	if err := t.requireNotFrozen(); err != nil {
		return err
	}
	t.regenerate = &regenerate
	return nil
}

func (t *Transaction) shouldRegenerate(client *Client) bool {
	if !t.generatedID {
		return false
	}
	if t.regenerate != nil {
		return *t.regenerate
	}
	return client.RegenerateTransactionID()
}

// Freeze freezes a transaction whose ID and nodes are set
func (t *Transaction) Freeze() (*Transaction, error) {
	return t.FreezeWith(nil)
}

// FreezeWith freezes the transaction. A missing transaction ID is generated
// from the operator of the client and missing nodes are chosen by its
// network. Freezing a frozen transaction does nothing.
func (t *Transaction) FreezeWith(client *Client) (*Transaction, error) {
	if err := t.freezeWith(context.Background(), client); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Transaction) freezeWith(ctx context.Context, client *Client) error {
	if t.frozen {
		return nil
	}

	if t.transactionID == nil {
		if client == nil {
			return status.Errorf(status.IllegalState, "transaction ID must be set, or a client with an operator must be given to freeze")
		}
		operator := client.Operator()
		if operator == nil {
			return status.Errorf(status.IllegalState, "transaction ID must be set, or the client must have an operator")
		}
		id := GenerateTransactionID(operator.AccountID)
		t.transactionID = &id
		t.generatedID = true
	}

	if len(t.nodeAccountIDs) == 0 {
		if client == nil {
			return status.Errorf(status.IllegalState, "node account IDs must be set, or a client must be given to freeze")
		}
		ids, err := client.network.NodeAccountIDsForExecute(ctx)
		if err != nil {
			return err
		}
		t.nodeAccountIDs = ids
	}

	if err := t.kind.validate(t.data); err != nil {
		return err
	}

	t.buildBodies(t.resolveFee(client))
	t.sigPairs = make([][]*wire.Record, len(t.nodeAccountIDs))
	t.frozen = true
	logger.Debugf("froze %s %s for %d node(s)", t.kind, t.transactionID, len(t.nodeAccountIDs))
	return nil
}

// resolveFee takes the fee of the transaction, then the client default,
// then the default of the kind
func (t *Transaction) resolveFee(client *Client) hbar.Amount {
	if t.maxTransactionFee != nil {
		return *t.maxTransactionFee
	}
	if client != nil {
		if fee, ok := client.MaxTransactionFee(); ok {
			return fee
		}
	}
	return t.kind.DefaultMaxFee
}

func (t *Transaction) buildBodies(fee hbar.Amount) {
	t.bodies = make([][]byte, len(t.nodeAccountIDs))
	for i, nodeID := range t.nodeAccountIDs {
		t.bodies[i] = t.body(nodeID, fee).Marshal()
	}
	t.built = nil
}

func (t *Transaction) body(nodeID entity.AccountID, fee hbar.Amount) *wire.Record {
	body := hapi.TransactionBody.New().
		Set("transactionID", t.transactionID.ToRecord()).
		Set("nodeAccountID", nodeID.ToRecord()).
		Set("transactionFee", uint64(fee.Tinybars())).
		Set("transactionValidDuration", durationToRecord(t.validDuration)).
		Set(t.kind.DataCase, t.data.Clone())
	if t.memo != "" {
		body.Set("memo", t.memo)
	}
	return body
}

// regenerateTransactionID replaces an expired transaction ID, keeping the
// nodes, the fee and the signers
func (t *Transaction) regenerateTransactionID() error {
	body, err := wire.Unmarshal(hapi.TransactionBody, t.bodies[0])
	if err != nil {
		return status.Errorf(status.IllegalState, "cannot decode frozen body: %s", err)
	}
	id := GenerateTransactionID(t.transactionID.AccountID)
	logger.WithFields(logging.Fields{"tx": t.transactionID.String()}).Debugf("expired, regenerated as %s", id)
	t.transactionID = &id
	t.buildBodies(hbar.FromTinybars(int64(body.Uint("transactionFee"))))
	t.sigPairs = make([][]*wire.Record, len(t.nodeAccountIDs))
	return nil
}

// ValidateChecksums checks the entity IDs the transaction was built from
// against the ledger of p
func (t *Transaction) ValidateChecksums(p entity.LedgerIDProvider) error {
	fields := make([]string, 0, len(t.entityIDs))
	for field := range t.entityIDs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var errs error
	for _, field := range fields {
		for _, id := range t.entityIDs[field] {
			errs = multi.Append(errs, id.ValidateChecksum(p))
		}
	}
	if t.transactionID != nil {
		errs = multi.Append(errs, t.transactionID.AccountID.ValidateChecksum(p))
	}
	return errs
}

// Execute freezes the transaction with the client if needed, signs it with
// the operator when the operator pays for it and submits it. The response
// identifies the node that accepted it.
func (t *Transaction) Execute(ctx context.Context, client *Client) (*TransactionResponse, error) {
	if t.executed {
		return nil, status.Errorf(status.IllegalState, "%s was already executed", t.kind.Name)
	}
	resp, err := execute(ctx, client, t)
	if err != nil {
		return nil, err
	}
	t.executed = true
	return resp.(*TransactionResponse), nil
}

func (t *Transaction) settings() *executable {
	return &t.executable
}

func (t *Transaction) requestType() string {
	return metrics.TypeTransaction
}

func (t *Transaction) name() string {
	return t.kind.Name
}

func (t *Transaction) method() string {
	return t.kind.Method
}

func (t *Transaction) onExecute(ctx context.Context, client *Client) error {
	if err := t.freezeWith(ctx, client); err != nil {
		return err
	}
	if client.AutoValidateChecksums() {
		if err := t.ValidateChecksums(client); err != nil {
			return err
		}
	}
	if operator := client.Operator(); operator != nil && t.transactionID.AccountID.Equal(operator.AccountID) {
		t.signWith(operator.PublicKey, operator.Sign)
	}
	return nil
}

func (t *Transaction) makeRequest(_ context.Context, _ *Client, index int) ([]byte, error) {
	return t.nodeTransaction(index).Marshal(), nil
}

func (t *Transaction) decode(resp []byte) (rcode.Code, interface{}, error) {
	r, err := wire.Unmarshal(hapi.TransactionResponse, resp)
	if err != nil {
		return 0, nil, status.Errorf(status.InvalidArgument, "invalid transaction response: %s", err)
	}
	return rcode.Code(r.Int("nodeTransactionPrecheckCode")), r, nil
}

func (t *Transaction) shouldRetry(client *Client, code rcode.Code, _ interface{}) executionState {
	switch code {
	case rcode.OK, rcode.Success:
		return executionFinished
	case rcode.PlatformTransactionNotCreated, rcode.PlatformNotActive, rcode.Busy:
		return executionServerError
	case rcode.TransactionExpired:
		if !t.shouldRegenerate(client) {
			return executionRequestError
		}
		if err := t.regenerateTransactionID(); err != nil {
			logger.Warnf("regenerating transaction ID failed: %s", err)
			return executionRequestError
		}
		return executionRetry
	}
	return executionRequestError
}

func (t *Transaction) mapStatusError(code rcode.Code, _ interface{}) error {
	id := *t.transactionID
	return &PrecheckError{Status: code, TransactionID: &id}
}

func (t *Transaction) mapResponse(_ interface{}, nodeID entity.AccountID, req []byte) (interface{}, error) {
	tx, err := wire.Unmarshal(hapi.Transaction, req)
	if err != nil {
		return nil, status.Errorf(status.InvalidArgument, "invalid transaction: %s", err)
	}
	return &TransactionResponse{
		NodeID:         nodeID,
		TransactionID:  *t.transactionID,
		Hash:           hash(tx.GetBytes("signedTransactionBytes")),
		validateStatus: true,
	}, nil
}
