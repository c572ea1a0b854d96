/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hiero

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	"github.com/hiero-ledger/hiero-client-go/pkg/comm"
	mockcomm "github.com/hiero-ledger/hiero-client-go/pkg/comm/mocks"
	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/rcode"
	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/status"
	"github.com/hiero-ledger/hiero-client-go/pkg/core/config/endpoint"
	"github.com/hiero-ledger/hiero-client-go/pkg/entity"
	"github.com/hiero-ledger/hiero-client-go/pkg/hapi"
	"github.com/hiero-ledger/hiero-client-go/pkg/keys"
	"github.com/hiero-ledger/hiero-client-go/pkg/network"
	"github.com/hiero-ledger/hiero-client-go/pkg/wire"
)

const testOperatorKey = "302e020100300506032b657004220420db484b828e64b2d8f12ce3c0a0e93a0b8cce7af1bb8f39c97732394482538e10"

var (
	node3      = entity.NewAccountID(0, 0, 3)
	node4      = entity.NewAccountID(0, 0, 4)
	operatorID = entity.NewAccountID(0, 0, 1001)
	testBook   = map[string]entity.AccountID{
		"node3:50211": node3,
		"node4:50211": node4,
	}
)

func operatorKey(t *testing.T) keys.PrivateKey {
	key, err := keys.PrivateKeyFromString(testOperatorKey)
	require.NoError(t, err)
	return key
}

// nodeHandler answers the requests sent to one node
type nodeHandler func(method string, req []byte) ([]byte, error)

// recorder counts the requests a handler served
type recorder struct {
	lock     sync.Mutex
	requests [][]byte
	methods  []string
}

func (r *recorder) record(method string, req []byte) int {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.requests = append(r.requests, req)
	r.methods = append(r.methods, method)
	return len(r.requests)
}

func (r *recorder) count() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.requests)
}

func (r *recorder) request(i int) []byte {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.requests[i]
}

// sequence answers with handlers in order, repeating the last one
func (r *recorder) sequence(handlers ...nodeHandler) nodeHandler {
	return func(method string, req []byte) ([]byte, error) {
		n := r.record(method, req)
		if n > len(handlers) {
			n = len(handlers)
		}
		return handlers[n-1](method, req)
	}
}

func newTestClient(t *testing.T, handlers map[string]nodeHandler) *Client {
	ctrl := gomock.NewController(t)
	factory := func(address endpoint.Address) (comm.Invoker, error) {
		handler := handlers[address.Host]
		invoker := mockcomm.NewMockInvoker(ctrl)
		invoker.EXPECT().Invoke(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, method string, req []byte) ([]byte, error) {
				if handler == nil {
					return nil, unavailable()
				}
				return handler(method, req)
			}).AnyTimes()
		invoker.EXPECT().Close().Return(nil).AnyTimes()
		return invoker, nil
	}

	client, err := ForNetwork(testBook,
		WithNetworkOptions(network.WithInvokerFactory(factory)),
		WithOperator(operatorID, operatorKey(t)))
	require.NoError(t, err)
	require.NoError(t, client.SetMinBackoff(time.Millisecond))
	require.NoError(t, client.SetMaxBackoff(5*time.Millisecond))
	t.Cleanup(func() {
		client.Close() //nolint:errcheck
	})
	return client
}

func unavailable() error {
	return status.New(status.GRPCTransportStatus, int32(codes.Unavailable), "node unavailable", nil)
}

func answer(b []byte) nodeHandler {
	return func(string, []byte) ([]byte, error) {
		return b, nil
	}
}

func failWith(err error) nodeHandler {
	return func(string, []byte) ([]byte, error) {
		return nil, err
	}
}

func txResponse(code rcode.Code) []byte {
	return hapi.TransactionResponse.New().Set("nodeTransactionPrecheckCode", int32(code)).Marshal()
}

func responseHeader(code rcode.Code, cost uint64) *wire.Record {
	return hapi.ResponseHeader.New().
		Set("nodeTransactionPrecheckCode", int32(code)).
		Set("cost", cost)
}

func queryResponse(queryCase string, resp *wire.Record) []byte {
	return hapi.Response.New().Set(queryCase, resp).Marshal()
}

func receiptResponse(precheck, receiptStatus rcode.Code) []byte {
	return queryResponse("transactionGetReceipt", hapi.TransactionGetReceiptResponse.New().
		Set("header", responseHeader(precheck, 0)).
		Set("receipt", hapi.TransactionReceipt.New().Set("status", int32(receiptStatus))))
}

// requestBody decodes the TransactionBody of a submitted Transaction
func requestBody(t *testing.T, req []byte) *wire.Record {
	tx, err := wire.Unmarshal(hapi.Transaction, req)
	require.NoError(t, err)
	signed, err := signedTransaction(tx)
	require.NoError(t, err)
	body, err := wire.Unmarshal(hapi.TransactionBody, signed.GetBytes("bodyBytes"))
	require.NoError(t, err)
	return body
}

// requestQuery decodes the query body and header of a query request
func requestQuery(t *testing.T, req []byte, queryCase string) (*wire.Record, *wire.Record) {
	q, err := wire.Unmarshal(hapi.Query, req)
	require.NoError(t, err)
	data := q.Message(queryCase)
	require.NotNil(t, data, "request is not a %s query", queryCase)
	return data, data.Message("header")
}

func isCostRequest(t *testing.T, req []byte, queryCase string) bool {
	_, header := requestQuery(t, req, queryCase)
	return header.Int("responseType") == hapi.CostAnswer
}
