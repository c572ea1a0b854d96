/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hiero

import (
	"context"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/multi"
	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/rcode"
	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/status"
	"github.com/hiero-ledger/hiero-client-go/pkg/entity"
	"github.com/hiero-ledger/hiero-client-go/pkg/hapi"
	"github.com/hiero-ledger/hiero-client-go/pkg/hbar"
	"github.com/hiero-ledger/hiero-client-go/pkg/metrics"
	"github.com/hiero-ledger/hiero-client-go/pkg/wire"
)

// queryPaymentFee is the max transaction fee of payment transactions
var queryPaymentFee = hbar.New(1)

// queryKind describes one query of the network
type queryKind struct {
	Name string
	// QueryCase is the member of the Query and Response oneof
	QueryCase string
	Method    string
	Schema    *wire.Schema
	// Free queries are sent without payment
	Free bool
	// retry overrides the default handling of precheck codes when ok is set
	retry func(q *Query, code rcode.Code, response *wire.Record) (state executionState, ok bool)
	// statusError overrides the error returned for code when set
	statusError func(q *Query, code rcode.Code, response *wire.Record) error
}

// Query is a request answered by a single node without reaching consensus.
// Paid queries first ask the node for their cost, then attach a transfer
// from the operator to the node paying it.
type Query struct {
	executable

	kind *queryKind
	data *wire.Record

	getCost              bool
	payment              *hbar.Amount
	maxQueryPayment      *hbar.Amount
	paymentTransactionID *TransactionID
	// payments holds one payment transaction per node account ID
	payments []*wire.Record

	entityIDs map[string][]checksummed
}

func newQuery(kind *queryKind) *Query {
	return &Query{
		kind:      kind,
		data:      kind.Schema.New(),
		entityIDs: make(map[string][]checksummed),
	}
}

func (q *Query) setEntities(field string, v interface{}, ids ...checksummed) {
	q.data.Set(field, v)
	q.entityIDs[field] = ids
}

// SetQueryPayment sets an explicit payment, skipping the cost request
func (q *Query) SetQueryPayment(amount hbar.Amount) error {
	if amount.IsNegative() {
		return status.Errorf(status.InvalidArgument, "query payment must not be negative: %s", amount)
	}
	q.payment = &amount
	return nil
}

// SetMaxQueryPayment sets the most this query pays when its cost is asked
// from the network
func (q *Query) SetMaxQueryPayment(amount hbar.Amount) error {
	if amount.IsNegative() {
		return status.Errorf(status.InvalidArgument, "max query payment must not be negative: %s", amount)
	}
	q.maxQueryPayment = &amount
	return nil
}

// SetPaymentTransactionID sets the transaction ID of the payments
func (q *Query) SetPaymentTransactionID(id TransactionID) {
	q.paymentTransactionID = &id
}

// PaymentTransactionID returns the transaction ID of the payments once
// the query was executed
func (q *Query) PaymentTransactionID() (TransactionID, bool) {
	if q.paymentTransactionID == nil {
		return TransactionID{}, false
	}
	return *q.paymentTransactionID, true
}

// ValidateChecksums checks the checksums of the entity IDs of the query
func (q *Query) ValidateChecksums(p entity.LedgerIDProvider) error {
	var errs error
	for _, ids := range q.entityIDs {
		for _, id := range ids {
			errs = multi.Append(errs, id.ValidateChecksum(p))
		}
	}
	return errs
}

// GetCost asks a node what answering the query costs. Free queries cost
// nothing and are not sent.
func (q *Query) GetCost(ctx context.Context, client *Client) (hbar.Amount, error) {
	if q.kind.Free {
		return hbar.Zero, nil
	}
	return q.costQuery().execute(ctx, client)
}

func (q *Query) costQuery() *costQuery {
	return &costQuery{Query: &Query{
		executable:           q.executable,
		kind:                 q.kind,
		data:                 q.data,
		getCost:              true,
		paymentTransactionID: q.paymentTransactionID,
		entityIDs:            q.entityIDs,
	}}
}

// costQuery executes a query for its cost only
type costQuery struct {
	*Query
}

func (c *costQuery) execute(ctx context.Context, client *Client) (hbar.Amount, error) {
	resp, err := execute(ctx, client, c.Query)
	if err != nil {
		return hbar.Zero, err
	}
	header := resp.(*wire.Record).Message("header")
	if header == nil {
		return hbar.Zero, status.Errorf(status.InvalidArgument, "response to %s has no header", c.name())
	}
	return hbar.FromTinybars(int64(header.Uint("cost"))), nil
}

func (q *Query) execute(ctx context.Context, client *Client) (*wire.Record, error) {
	resp, err := execute(ctx, client, q)
	if err != nil {
		return nil, err
	}
	return resp.(*wire.Record), nil
}

func (q *Query) settings() *executable {
	return &q.executable
}

func (q *Query) requestType() string {
	return metrics.TypeQuery
}

func (q *Query) name() string {
	if q.getCost {
		return q.kind.Name + "Cost"
	}
	return q.kind.Name
}

func (q *Query) method() string {
	return q.kind.Method
}

func (q *Query) onExecute(ctx context.Context, client *Client) error {
	if len(q.nodeAccountIDs) == 0 {
		ids, err := client.network.NodeAccountIDsForExecute(ctx)
		if err != nil {
			return err
		}
		q.nodeAccountIDs = ids
	}
	if client.AutoValidateChecksums() {
		if err := q.ValidateChecksums(client); err != nil {
			return err
		}
	}
	if q.kind.Free {
		return nil
	}

	if q.getCost {
		// cost requests carry a zero payment when an operator is set
		if client.Operator() == nil {
			return nil
		}
		return q.buildPayments(ctx, client, hbar.Zero)
	}

	cost, err := q.resolvePayment(ctx, client)
	if err != nil {
		return err
	}
	return q.buildPayments(ctx, client, cost)
}

func (q *Query) resolvePayment(ctx context.Context, client *Client) (hbar.Amount, error) {
	if q.payment != nil {
		return *q.payment, nil
	}
	if client.Operator() == nil {
		return hbar.Zero, status.Errorf(status.IllegalState, "%s requires a client with an operator to pay for it", q.kind.Name)
	}

	maxPayment := client.MaxQueryPayment()
	if q.maxQueryPayment != nil {
		maxPayment = *q.maxQueryPayment
	}

	cost, err := q.costQuery().execute(ctx, client)
	if err != nil {
		return hbar.Zero, err
	}
	if cost.Tinybars() > maxPayment.Tinybars() {
		return hbar.Zero, &MaxQueryPaymentExceededError{Query: q.kind.Name, Cost: cost, MaxPayment: maxPayment}
	}
	logger.Debugf("%s costs %s", q.kind.Name, cost)
	return cost, nil
}

// buildPayments signs one transfer of amount from the operator to each node
func (q *Query) buildPayments(ctx context.Context, client *Client, amount hbar.Amount) error {
	operator := client.Operator()
	if operator == nil {
		return status.Errorf(status.IllegalState, "%s requires a client with an operator to pay for it", q.kind.Name)
	}
	if q.paymentTransactionID == nil {
		id := GenerateTransactionID(operator.AccountID)
		q.paymentTransactionID = &id
	}

	q.payments = make([]*wire.Record, len(q.nodeAccountIDs))
	for i, nodeID := range q.nodeAccountIDs {
		payment, err := newPaymentTransaction(*q.paymentTransactionID, nodeID, operator.AccountID, amount)
		if err != nil {
			return err
		}
		if err := payment.freezeWith(ctx, client); err != nil {
			return err
		}
		payment.signWith(operator.PublicKey, operator.Sign)
		q.payments[i] = payment.nodeTransaction(0)
	}
	return nil
}

func newPaymentTransaction(id TransactionID, nodeID, payer entity.AccountID, amount hbar.Amount) (*TransferTransaction, error) {
	tx := NewTransferTransaction()
	if err := tx.SetTransactionID(id); err != nil {
		return nil, err
	}
	if err := tx.SetNodeAccountIDs([]entity.AccountID{nodeID}); err != nil {
		return nil, err
	}
	if err := tx.SetMaxTransactionFee(queryPaymentFee); err != nil {
		return nil, err
	}
	if err := tx.AddHbarTransfer(payer, amount.Negated()); err != nil {
		return nil, err
	}
	if err := tx.AddHbarTransfer(nodeID, amount); err != nil {
		return nil, err
	}
	return tx, nil
}

func (q *Query) makeRequest(_ context.Context, _ *Client, index int) ([]byte, error) {
	header := hapi.QueryHeader.New().Set("responseType", int32(hapi.AnswerOnly))
	if q.getCost {
		header.Set("responseType", int32(hapi.CostAnswer))
	}
	if index < len(q.payments) && q.payments[index] != nil {
		header.Set("payment", q.payments[index])
	}
	data := q.data.Clone().Set("header", header)
	return hapi.Query.New().Set(q.kind.QueryCase, data).Marshal(), nil
}

func (q *Query) decode(resp []byte) (rcode.Code, interface{}, error) {
	r, err := wire.Unmarshal(hapi.Response, resp)
	if err != nil {
		return 0, nil, status.Errorf(status.InvalidArgument, "invalid query response: %s", err)
	}
	answer := r.Message(q.kind.QueryCase)
	if answer == nil {
		return 0, nil, status.Errorf(status.InvalidArgument, "response to %s has no %s answer", q.kind.Name, q.kind.QueryCase)
	}
	header := answer.Message("header")
	if header == nil {
		return 0, nil, status.Errorf(status.InvalidArgument, "response to %s has no header", q.kind.Name)
	}
	return rcode.Code(header.Int("nodeTransactionPrecheckCode")), answer, nil
}

func (q *Query) shouldRetry(_ *Client, code rcode.Code, response interface{}) executionState {
	if q.kind.retry != nil {
		if state, ok := q.kind.retry(q, code, response.(*wire.Record)); ok {
			return state
		}
	}
	switch code {
	case rcode.OK:
		return executionFinished
	case rcode.PlatformTransactionNotCreated, rcode.PlatformNotActive, rcode.Busy:
		return executionServerError
	}
	return executionRequestError
}

func (q *Query) mapStatusError(code rcode.Code, response interface{}) error {
	if q.kind.statusError != nil {
		if err := q.kind.statusError(q, code, response.(*wire.Record)); err != nil {
			return err
		}
	}
	return &PrecheckError{Status: code, TransactionID: q.paymentTransactionID}
}

func (q *Query) mapResponse(response interface{}, _ entity.AccountID, _ []byte) (interface{}, error) {
	return response, nil
}
