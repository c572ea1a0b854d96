/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hiero

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/rcode"
	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/status"
	"github.com/hiero-ledger/hiero-client-go/pkg/entity"
	"github.com/hiero-ledger/hiero-client-go/pkg/hapi"
	"github.com/hiero-ledger/hiero-client-go/pkg/hbar"
	"github.com/hiero-ledger/hiero-client-go/pkg/wire"
)

var (
	testToken = entity.NewTokenID(0, 0, 5005)

	answerSchemas = map[string]*wire.Schema{
		"cryptoGetInfo":        hapi.CryptoGetInfoResponse,
		"tokenGetInfo":         hapi.TokenGetInfoResponse,
		"transactionGetRecord": hapi.TransactionGetRecordResponse,
	}
)

// paymentAmounts decodes the hbar transfers of a query payment by account
func paymentAmounts(t *testing.T, header *wire.Record) map[entity.AccountID]int64 {
	payment := header.Message("payment")
	require.NotNil(t, payment, "query carries no payment")
	transfers := requestBody(t, payment.Marshal()).Message("cryptoTransfer").Message("transfers")
	require.NotNil(t, transfers)
	amounts := make(map[entity.AccountID]int64)
	for _, aa := range transfers.Messages("accountAmounts") {
		amounts[entity.AccountIDFromRecord(aa.Message("accountID"))] = aa.Int("amount")
	}
	return amounts
}

// paidQuery answers cost requests with cost and other requests with answer
func paidQuery(t *testing.T, queryCase string, cost uint64, answer func() []byte) nodeHandler {
	return func(_ string, req []byte) ([]byte, error) {
		if isCostRequest(t, req, queryCase) {
			return queryResponse(queryCase, answerSchemas[queryCase].New().
				Set("header", responseHeader(rcode.OK, cost))), nil
		}
		return answer(), nil
	}
}

func accountInfoResponse(t *testing.T) []byte {
	info := hapi.AccountInfo.New().
		Set("accountID", operatorID.ToRecord()).
		Set("key", operatorKey(t).PublicKey().ToRecord()).
		Set("balance", uint64(5000)).
		Set("memo", "operator")
	return queryResponse("cryptoGetInfo", hapi.CryptoGetInfoResponse.New().
		Set("header", responseHeader(rcode.OK, 0)).
		Set("accountInfo", info))
}

func TestAccountBalanceQuery(t *testing.T) {
	var r3 recorder
	resp := hapi.CryptoGetAccountBalanceResponse.New().
		Set("header", responseHeader(rcode.OK, 0)).
		Set("accountID", operatorID.ToRecord()).
		Set("balance", uint64(1500)).
		Append("tokenBalances", hapi.TokenBalance.New().
			Set("tokenId", testToken.ToRecord()).
			Set("balance", uint64(42)).
			Set("decimals", uint32(2)))
	client := newTestClient(t, map[string]nodeHandler{
		"node3": r3.sequence(answer(queryResponse("cryptogetAccountBalance", resp))),
		"node4": r3.sequence(answer(queryResponse("cryptogetAccountBalance", resp))),
	})

	balance, err := NewAccountBalanceQuery().SetAccountID(operatorID).Execute(context.Background(), client)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), balance.Hbars.Tinybars())
	assert.Equal(t, uint64(42), balance.Tokens[testToken])
	assert.Equal(t, uint32(2), balance.Decimals[testToken])

	require.Equal(t, 1, r3.count())
	assert.Equal(t, hapi.CryptoGetBalance, r3.methods[0])
	data, header := requestQuery(t, r3.request(0), "cryptogetAccountBalance")
	assert.False(t, header.Has("payment"))
	assert.EqualValues(t, hapi.AnswerOnly, header.Int("responseType"))
	assert.True(t, entity.AccountIDFromRecord(data.Message("accountID")).Equal(operatorID))
}

func TestAccountBalanceQueryContractReplacesAccount(t *testing.T) {
	q := NewAccountBalanceQuery().
		SetAccountID(operatorID).
		SetContractID(entity.NewContractID(0, 0, 77))
	assert.Equal(t, "contractID", q.data.WhichOneof("balanceSource"))
	assert.NotContains(t, q.entityIDs, "accountID")
}

func TestFreeQueryCost(t *testing.T) {
	client := newTestClient(t, nil)
	cost, err := NewAccountBalanceQuery().SetAccountID(operatorID).GetCost(context.Background(), client)
	require.NoError(t, err)
	assert.Equal(t, hbar.Zero, cost)

	cost, err = NewTransactionReceiptQuery().SetTransactionID(GenerateTransactionID(operatorID)).GetCost(context.Background(), client)
	require.NoError(t, err)
	assert.Equal(t, hbar.Zero, cost)
}

func TestAccountInfoQueryPaysCost(t *testing.T) {
	var r3 recorder
	client := newTestClient(t, map[string]nodeHandler{
		"node3": r3.sequence(paidQuery(t, "cryptoGetInfo", 25, func() []byte { return accountInfoResponse(t) })),
	})

	q := NewAccountInfoQuery().SetAccountID(operatorID)
	require.NoError(t, q.SetNodeAccountIDs([]entity.AccountID{node3}))
	info, err := q.Execute(context.Background(), client)
	require.NoError(t, err)
	assert.True(t, info.AccountID.Equal(operatorID))
	assert.Equal(t, int64(5000), info.Balance.Tinybars())
	assert.Equal(t, "operator", info.AccountMemo)

	require.Equal(t, 2, r3.count())
	require.True(t, isCostRequest(t, r3.request(0), "cryptoGetInfo"))
	require.False(t, isCostRequest(t, r3.request(1), "cryptoGetInfo"))

	_, costHeader := requestQuery(t, r3.request(0), "cryptoGetInfo")
	assert.Equal(t, int64(0), paymentAmounts(t, costHeader)[node3])

	_, header := requestQuery(t, r3.request(1), "cryptoGetInfo")
	amounts := paymentAmounts(t, header)
	assert.Equal(t, int64(-25), amounts[operatorID])
	assert.Equal(t, int64(25), amounts[node3])

	paymentID, ok := q.PaymentTransactionID()
	require.True(t, ok)
	assert.True(t, paymentID.AccountID.Equal(operatorID))
}

func TestQueryExplicitPaymentSkipsCost(t *testing.T) {
	var r3 recorder
	client := newTestClient(t, map[string]nodeHandler{
		"node3": r3.sequence(paidQuery(t, "cryptoGetInfo", 25, func() []byte { return accountInfoResponse(t) })),
	})

	q := NewAccountInfoQuery().SetAccountID(operatorID)
	require.NoError(t, q.SetNodeAccountIDs([]entity.AccountID{node3}))
	require.NoError(t, q.SetQueryPayment(hbar.FromTinybars(100)))
	_, err := q.Execute(context.Background(), client)
	require.NoError(t, err)

	require.Equal(t, 1, r3.count())
	_, header := requestQuery(t, r3.request(0), "cryptoGetInfo")
	assert.Equal(t, int64(100), paymentAmounts(t, header)[node3])
}

func TestQueryMaxPaymentExceeded(t *testing.T) {
	var r3 recorder
	client := newTestClient(t, map[string]nodeHandler{
		"node3": r3.sequence(paidQuery(t, "cryptoGetInfo", uint64(hbar.New(2).Tinybars()), func() []byte { return accountInfoResponse(t) })),
	})

	q := NewAccountInfoQuery().SetAccountID(operatorID)
	require.NoError(t, q.SetNodeAccountIDs([]entity.AccountID{node3}))
	require.NoError(t, q.SetMaxQueryPayment(hbar.New(1)))
	_, err := q.Execute(context.Background(), client)

	var exceeded *MaxQueryPaymentExceededError
	require.True(t, errors.As(err, &exceeded), "unexpected error: %v", err)
	assert.Equal(t, hbar.New(2), exceeded.Cost)
	assert.Equal(t, hbar.New(1), exceeded.MaxPayment)
	assertStatus(t, err, status.ClientStatus, status.MaxQueryPaymentExceeded)
	assert.Equal(t, 1, r3.count())
}

func TestQueryPaymentValidation(t *testing.T) {
	q := NewAccountInfoQuery()
	assertStatus(t, q.SetQueryPayment(hbar.FromTinybars(-1)), status.ClientStatus, status.InvalidArgument)
	assertStatus(t, q.SetMaxQueryPayment(hbar.FromTinybars(-1)), status.ClientStatus, status.InvalidArgument)
}

func TestPaidQueryWithoutOperator(t *testing.T) {
	client := newTestClient(t, nil)
	client.operator = nil

	q := NewAccountInfoQuery().SetAccountID(operatorID)
	require.NoError(t, q.SetNodeAccountIDs([]entity.AccountID{node3}))
	_, err := q.Execute(context.Background(), client)
	assertStatus(t, err, status.ClientStatus, status.IllegalState)
}

func TestQueryRejectedByPrecheck(t *testing.T) {
	var r3 recorder
	client := newTestClient(t, map[string]nodeHandler{
		"node3": r3.sequence(answer(queryResponse("cryptogetAccountBalance", hapi.CryptoGetAccountBalanceResponse.New().
			Set("header", responseHeader(rcode.InvalidAccountID, 0))))),
	})

	q := NewAccountBalanceQuery().SetAccountID(entity.NewAccountID(0, 0, 99999))
	require.NoError(t, q.SetNodeAccountIDs([]entity.AccountID{node3}))
	_, err := q.Execute(context.Background(), client)

	var precheck *PrecheckError
	require.True(t, errors.As(err, &precheck))
	assert.Equal(t, rcode.InvalidAccountID, precheck.Status)
	assert.Equal(t, 1, r3.count())
}

func TestQueryResponseWithoutHeader(t *testing.T) {
	balance := answer(queryResponse("cryptogetAccountBalance", hapi.CryptoGetAccountBalanceResponse.New().
		Set("accountID", operatorID.ToRecord()).
		Set("balance", uint64(1500))))
	client := newTestClient(t, map[string]nodeHandler{
		"node3": balance,
		"node4": balance,
	})
	assert.NotPanics(t, func() {
		_, err := NewAccountBalanceQuery().SetAccountID(operatorID).Execute(context.Background(), client)
		assertStatus(t, err, status.ClientStatus, status.InvalidArgument)
	})

	info := answer(queryResponse("cryptoGetInfo", hapi.CryptoGetInfoResponse.New()))
	client = newTestClient(t, map[string]nodeHandler{
		"node3": info,
		"node4": info,
	})
	assert.NotPanics(t, func() {
		_, err := NewAccountInfoQuery().SetAccountID(operatorID).GetCost(context.Background(), client)
		assertStatus(t, err, status.ClientStatus, status.InvalidArgument)
	})
}

func TestTokenInfoQuery(t *testing.T) {
	var r3 recorder
	info := hapi.TokenInfo.New().
		Set("tokenId", testToken.ToRecord()).
		Set("name", "test token").
		Set("symbol", "TT").
		Set("decimals", uint32(3)).
		Set("totalSupply", uint64(1000)).
		Set("treasury", operatorID.ToRecord()).
		Set("adminKey", operatorKey(t).PublicKey().ToRecord())
	client := newTestClient(t, map[string]nodeHandler{
		"node3": r3.sequence(paidQuery(t, "tokenGetInfo", 10, func() []byte {
			return queryResponse("tokenGetInfo", hapi.TokenGetInfoResponse.New().
				Set("header", responseHeader(rcode.OK, 0)).
				Set("tokenInfo", info))
		})),
	})

	q := NewTokenInfoQuery().SetTokenID(testToken)
	require.NoError(t, q.SetNodeAccountIDs([]entity.AccountID{node3}))
	got, err := q.Execute(context.Background(), client)
	require.NoError(t, err)
	assert.Equal(t, testToken, got.TokenID)
	assert.Equal(t, "TT", got.Symbol)
	assert.Equal(t, uint64(1000), got.TotalSupply)
	require.NotNil(t, got.AdminKey)
	assert.Nil(t, got.KycKey)

	data, _ := requestQuery(t, r3.request(1), "tokenGetInfo")
	assert.Equal(t, testToken, entity.TokenIDFromRecord(data.Message("token")))
}

func TestReceiptQueryWaitsForConsensus(t *testing.T) {
	var r3 recorder
	client := newTestClient(t, map[string]nodeHandler{
		"node3": r3.sequence(
			answer(receiptResponse(rcode.ReceiptNotFound, rcode.Unknown)),
			answer(receiptResponse(rcode.OK, rcode.Unknown)),
			answer(receiptResponse(rcode.OK, rcode.Success))),
	})

	id := GenerateTransactionID(operatorID)
	q := NewTransactionReceiptQuery().SetTransactionID(id)
	require.NoError(t, q.SetNodeAccountIDs([]entity.AccountID{node3}))
	receipt, err := q.Execute(context.Background(), client)
	require.NoError(t, err)
	assert.Equal(t, rcode.Success, receipt.Status)
	require.NotNil(t, receipt.TransactionID)
	assert.True(t, receipt.TransactionID.Equal(id))
	assert.Equal(t, 3, r3.count())

	_, header := requestQuery(t, r3.request(0), "transactionGetReceipt")
	assert.False(t, header.Has("payment"))
}

func TestReceiptQueryReturnsFailedStatus(t *testing.T) {
	var r3 recorder
	client := newTestClient(t, map[string]nodeHandler{
		"node3": r3.sequence(answer(receiptResponse(rcode.OK, rcode.InsufficientPayerBalance))),
	})

	q := NewTransactionReceiptQuery().SetTransactionID(GenerateTransactionID(operatorID))
	require.NoError(t, q.SetNodeAccountIDs([]entity.AccountID{node3}))
	receipt, err := q.Execute(context.Background(), client)
	require.NoError(t, err)
	assert.Equal(t, rcode.InsufficientPayerBalance, receipt.Status)

	_, err = q.SetValidateStatus(true).Execute(context.Background(), client)
	var receiptErr *ReceiptError
	require.True(t, errors.As(err, &receiptErr))
	assert.Equal(t, rcode.InsufficientPayerBalance, receiptErr.Status)
	assertStatus(t, err, status.ReceiptServerStatus, status.Code(rcode.InsufficientPayerBalance))
}

func TestTransactionResponseGetReceipt(t *testing.T) {
	var r3 recorder
	client := newTestClient(t, map[string]nodeHandler{
		"node3": r3.sequence(answer(receiptResponse(rcode.OK, rcode.InvalidSignature))),
	})

	resp := &TransactionResponse{
		NodeID:         node3,
		TransactionID:  GenerateTransactionID(operatorID),
		validateStatus: true,
	}
	_, err := resp.GetReceipt(context.Background(), client)
	var receiptErr *ReceiptError
	require.True(t, errors.As(err, &receiptErr))
	assert.Equal(t, rcode.InvalidSignature, receiptErr.Status)
	assert.True(t, receiptErr.TransactionID.Equal(resp.TransactionID))

	receipt, err := resp.SetValidateStatus(false).GetReceipt(context.Background(), client)
	require.NoError(t, err)
	assert.Equal(t, rcode.InvalidSignature, receipt.Status)

	future := resp.GetReceiptAsync(context.Background(), client)
	receipt, err = future.Get()
	require.NoError(t, err)
	assert.Equal(t, rcode.InvalidSignature, receipt.Status)
}

func TestTransactionResponseGetRecord(t *testing.T) {
	id := GenerateTransactionID(operatorID)
	record := hapi.TransactionRecord.New().
		Set("receipt", hapi.TransactionReceipt.New().Set("status", int32(rcode.Success))).
		Set("transactionID", id.ToRecord()).
		Set("memo", "paid").
		Set("transactionFee", uint64(120))

	var r3 recorder
	client := newTestClient(t, map[string]nodeHandler{
		"node3": r3.sequence(func(method string, req []byte) ([]byte, error) {
			if method == hapi.CryptoGetReceipt {
				return receiptResponse(rcode.OK, rcode.Success), nil
			}
			return paidQuery(t, "transactionGetRecord", 5, func() []byte {
				return queryResponse("transactionGetRecord", hapi.TransactionGetRecordResponse.New().
					Set("header", responseHeader(rcode.OK, 0)).
					Set("transactionRecord", record))
			})(method, req)
		}),
	})

	resp := &TransactionResponse{NodeID: node3, TransactionID: id, validateStatus: true}
	got, err := resp.GetRecord(context.Background(), client)
	require.NoError(t, err)
	assert.True(t, got.TransactionID.Equal(id))
	assert.Equal(t, "paid", got.TransactionMemo)
	assert.Equal(t, int64(120), got.TransactionFee.Tinybars())
	assert.Equal(t, rcode.Success, got.Receipt.Status)

	// receipt, cost, then the paid record request
	require.Equal(t, 3, r3.count())
	assert.Equal(t, []string{hapi.CryptoGetReceipt, hapi.CryptoGetRecord, hapi.CryptoGetRecord}, r3.methods)
}

func TestQueryValidatesChecksums(t *testing.T) {
	client := newTestClient(t, nil)
	client.SetAutoValidateChecksums(true)
	client.SetLedgerID(entity.LedgerTestnet)

	bad, err := entity.AccountIDFromString("0.0.123-" + entity.Checksum("0.0.124", entity.LedgerTestnet))
	require.NoError(t, err)
	q := NewAccountBalanceQuery().SetAccountID(bad)
	require.NoError(t, q.SetNodeAccountIDs([]entity.AccountID{node3}))
	_, err = q.Execute(context.Background(), client)
	assertStatus(t, err, status.ClientStatus, status.BadEntityID)
}
