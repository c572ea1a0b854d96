/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hapi

import (
	"github.com/hiero-ledger/hiero-client-go/pkg/wire"
)

func queryHeader() *wire.Schema { return QueryHeader }
func responseHeader() *wire.Schema { return ResponseHeader }
func receipt() *wire.Schema { return TransactionReceipt }
func record() *wire.Schema { return TransactionRecord }
func accountInfo() *wire.Schema { return AccountInfo }
func tokenInfo() *wire.Schema { return TokenInfo }

// QueryCase is the name of the oneof group of Query and Response
const QueryCase = "query"

// Query response types
const (
	AnswerOnly = 0
	CostAnswer = 2
)

// QueryHeader carries the payment and the requested response type
var QueryHeader = wire.NewSchema("QueryHeader",
	wire.Msg("payment", 1, transaction),
	wire.Scalar("responseType", 2, wire.Enum),
)

// ResponseHeader carries the precheck code and the query cost
var ResponseHeader = wire.NewSchema("ResponseHeader",
	wire.Scalar("nodeTransactionPrecheckCode", 1, wire.Enum),
	wire.Scalar("responseType", 2, wire.Enum),
	wire.Scalar("cost", 3, wire.Uint64),
)

// CryptoGetAccountBalanceQuery asks for the balance of an account or contract
var CryptoGetAccountBalanceQuery = wire.NewSchema("CryptoGetAccountBalanceQuery",
	wire.Msg("header", 1, queryHeader),
	wire.OneofMember("balanceSource", wire.Msg("accountID", 2, accountID)),
	wire.OneofMember("balanceSource", wire.Msg("contractID", 3, contractID)),
)

// CryptoGetAccountBalanceResponse is the answer to CryptoGetAccountBalanceQuery
var CryptoGetAccountBalanceResponse = wire.NewSchema("CryptoGetAccountBalanceResponse",
	wire.Msg("header", 1, responseHeader),
	wire.Msg("accountID", 2, accountID),
	wire.Scalar("balance", 3, wire.Uint64),
	wire.Repeated(wire.Msg("tokenBalances", 4, tokenBalance)),
)

// CryptoGetInfoQuery asks for the info of an account
var CryptoGetInfoQuery = wire.NewSchema("CryptoGetInfoQuery",
	wire.Msg("header", 1, queryHeader),
	wire.Msg("accountID", 2, accountID),
)

// AccountInfo describes an account
var AccountInfo = wire.NewSchema("AccountInfo",
	wire.Msg("accountID", 1, accountID),
	wire.Scalar("contractAccountID", 2, wire.String),
	wire.Scalar("deleted", 3, wire.Bool),
	wire.Msg("key", 7, key),
	wire.Scalar("balance", 8, wire.Uint64),
	wire.Scalar("receiverSigRequired", 11, wire.Bool),
	wire.Msg("expirationTime", 12, timestamp),
	wire.Msg("autoRenewPeriod", 13, duration),
	wire.Scalar("memo", 16, wire.String),
	wire.Scalar("ownedNfts", 17, wire.Int64),
	wire.Scalar("max_automatic_token_associations", 18, wire.Int32),
	wire.Scalar("alias", 19, wire.Bytes),
	wire.Scalar("ledger_id", 20, wire.Bytes),
)

// CryptoGetInfoResponse is the answer to CryptoGetInfoQuery
var CryptoGetInfoResponse = wire.NewSchema("CryptoGetInfoResponse",
	wire.Msg("header", 1, responseHeader),
	wire.Msg("accountInfo", 2, accountInfo),
)

// TransactionGetReceiptQuery asks for the receipt of a transaction
var TransactionGetReceiptQuery = wire.NewSchema("TransactionGetReceiptQuery",
	wire.Msg("header", 1, queryHeader),
	wire.Msg("transactionID", 2, transactionID),
	wire.Scalar("includeDuplicates", 3, wire.Bool),
	wire.Scalar("include_child_receipts", 4, wire.Bool),
)

// TransactionReceipt is the consensus outcome of a transaction
var TransactionReceipt = wire.NewSchema("TransactionReceipt",
	wire.Scalar("status", 1, wire.Enum),
	wire.Msg("accountID", 2, accountID),
	wire.Msg("fileID", 3, fileID),
	wire.Msg("contractID", 4, contractID),
	wire.Msg("topicID", 6, topicID),
	wire.Scalar("topicSequenceNumber", 7, wire.Uint64),
	wire.Scalar("topicRunningHash", 8, wire.Bytes),
	wire.Scalar("topicRunningHashVersion", 9, wire.Uint64),
	wire.Msg("tokenID", 10, tokenID),
	wire.Scalar("newTotalSupply", 11, wire.Uint64),
	wire.Msg("scheduleID", 12, scheduleID),
	wire.Msg("scheduledTransactionID", 13, transactionID),
	wire.Repeated(wire.Scalar("serialNumbers", 14, wire.Int64)),
)

// TransactionGetReceiptResponse is the answer to TransactionGetReceiptQuery
var TransactionGetReceiptResponse = wire.NewSchema("TransactionGetReceiptResponse",
	wire.Msg("header", 1, responseHeader),
	wire.Msg("receipt", 2, receipt),
	wire.Repeated(wire.Msg("duplicateTransactionReceipts", 4, receipt)),
	wire.Repeated(wire.Msg("child_transaction_receipts", 5, receipt)),
)

// TransactionGetRecordQuery asks for the record of a transaction
var TransactionGetRecordQuery = wire.NewSchema("TransactionGetRecordQuery",
	wire.Msg("header", 1, queryHeader),
	wire.Msg("transactionID", 2, transactionID),
	wire.Scalar("includeDuplicates", 3, wire.Bool),
)

// TransactionRecord is the full consensus outcome of a transaction
var TransactionRecord = wire.NewSchema("TransactionRecord",
	wire.Msg("receipt", 1, receipt),
	wire.Scalar("transactionHash", 2, wire.Bytes),
	wire.Msg("consensusTimestamp", 3, timestamp),
	wire.Msg("transactionID", 4, transactionID),
	wire.Scalar("memo", 5, wire.String),
	wire.Scalar("transactionFee", 6, wire.Uint64),
	wire.Msg("transferList", 10, transferList),
	wire.Repeated(wire.Msg("tokenTransferLists", 11, tokenTransfers)),
	wire.Msg("scheduleRef", 12, scheduleID),
)

// TransactionGetRecordResponse is the answer to TransactionGetRecordQuery
var TransactionGetRecordResponse = wire.NewSchema("TransactionGetRecordResponse",
	wire.Msg("header", 1, responseHeader),
	wire.Msg("transactionRecord", 3, record),
)

// TokenGetInfoQuery asks for the info of a token
var TokenGetInfoQuery = wire.NewSchema("TokenGetInfoQuery",
	wire.Msg("header", 1, queryHeader),
	wire.Msg("token", 2, tokenID),
)

// TokenInfo describes a token
var TokenInfo = wire.NewSchema("TokenInfo",
	wire.Msg("tokenId", 1, tokenID),
	wire.Scalar("name", 2, wire.String),
	wire.Scalar("symbol", 3, wire.String),
	wire.Scalar("decimals", 4, wire.Uint32),
	wire.Scalar("totalSupply", 5, wire.Uint64),
	wire.Msg("treasury", 6, accountID),
	wire.Msg("adminKey", 7, key),
	wire.Msg("kycKey", 8, key),
	wire.Msg("freezeKey", 9, key),
	wire.Msg("wipeKey", 10, key),
	wire.Msg("supplyKey", 11, key),
	wire.Scalar("defaultFreezeStatus", 12, wire.Enum),
	wire.Scalar("defaultKycStatus", 13, wire.Enum),
	wire.Scalar("deleted", 14, wire.Bool),
	wire.Msg("autoRenewAccount", 15, accountID),
	wire.Msg("autoRenewPeriod", 16, duration),
	wire.Msg("expiry", 17, timestamp),
	wire.Scalar("memo", 18, wire.String),
	wire.Scalar("tokenType", 19, wire.Enum),
	wire.Scalar("supplyType", 20, wire.Enum),
	wire.Scalar("maxSupply", 21, wire.Int64),
	wire.Msg("fee_schedule_key", 22, key),
	wire.Msg("pause_key", 24, key),
	wire.Scalar("pause_status", 25, wire.Enum),
	wire.Scalar("ledger_id", 26, wire.Bytes),
)

// TokenGetInfoResponse is the answer to TokenGetInfoQuery
var TokenGetInfoResponse = wire.NewSchema("TokenGetInfoResponse",
	wire.Msg("header", 1, responseHeader),
	wire.Msg("tokenInfo", 2, tokenInfo),
)

// Query is the request envelope of every query
var Query = wire.NewSchema("Query",
	wire.OneofMember(QueryCase, wire.Msg("cryptogetAccountBalance", 7, func() *wire.Schema { return CryptoGetAccountBalanceQuery })),
	wire.OneofMember(QueryCase, wire.Msg("cryptoGetInfo", 9, func() *wire.Schema { return CryptoGetInfoQuery })),
	wire.OneofMember(QueryCase, wire.Msg("transactionGetReceipt", 14, func() *wire.Schema { return TransactionGetReceiptQuery })),
	wire.OneofMember(QueryCase, wire.Msg("transactionGetRecord", 15, func() *wire.Schema { return TransactionGetRecordQuery })),
	wire.OneofMember(QueryCase, wire.Msg("tokenGetInfo", 52, func() *wire.Schema { return TokenGetInfoQuery })),
)

// Response is the answer envelope of every query
var Response = wire.NewSchema("Response",
	wire.OneofMember(QueryCase, wire.Msg("cryptogetAccountBalance", 7, func() *wire.Schema { return CryptoGetAccountBalanceResponse })),
	wire.OneofMember(QueryCase, wire.Msg("cryptoGetInfo", 9, func() *wire.Schema { return CryptoGetInfoResponse })),
	wire.OneofMember(QueryCase, wire.Msg("transactionGetReceipt", 14, func() *wire.Schema { return TransactionGetReceiptResponse })),
	wire.OneofMember(QueryCase, wire.Msg("transactionGetRecord", 15, func() *wire.Schema { return TransactionGetRecordResponse })),
	wire.OneofMember(QueryCase, wire.Msg("tokenGetInfo", 52, func() *wire.Schema { return TokenGetInfoResponse })),
)
