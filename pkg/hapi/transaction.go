/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hapi

import (
	"github.com/hiero-ledger/hiero-client-go/pkg/wire"
)

func transaction() *wire.Schema { return Transaction }
func schedulableBody() *wire.Schema { return SchedulableTransactionBody }
func cryptoCreate() *wire.Schema { return CryptoCreateTransactionBody }
func cryptoDelete() *wire.Schema { return CryptoDeleteTransactionBody }
func cryptoTransfer() *wire.Schema { return CryptoTransferTransactionBody }
func topicCreate() *wire.Schema { return ConsensusCreateTopicTransactionBody }
func topicSubmit() *wire.Schema { return ConsensusSubmitMessageTransactionBody }
func tokenCreate() *wire.Schema { return TokenCreateTransactionBody }
func tokenDelete() *wire.Schema { return TokenDeleteTransactionBody }
func tokenMint() *wire.Schema { return TokenMintTransactionBody }
func tokenBurn() *wire.Schema { return TokenBurnTransactionBody }
func tokenAssociate() *wire.Schema { return TokenAssociateTransactionBody }
func tokenDissociate() *wire.Schema { return TokenDissociateTransactionBody }
func tokenPause() *wire.Schema { return TokenPauseTransactionBody }
func tokenUnpause() *wire.Schema { return TokenUnpauseTransactionBody }
func scheduleCreate() *wire.Schema { return ScheduleCreateTransactionBody }

// DataCase is the name of the oneof group holding the operation of a
// TransactionBody or SchedulableTransactionBody
const DataCase = "data"

// SignedTransaction is the body bytes plus the signatures over them
var SignedTransaction = wire.NewSchema("SignedTransaction",
	wire.Scalar("bodyBytes", 1, wire.Bytes),
	wire.Msg("sigMap", 2, signatureMap),
)

// Transaction is the envelope submitted to a node
var Transaction = wire.NewSchema("Transaction",
	wire.Scalar("bodyBytes", 4, wire.Bytes),
	wire.Msg("sigMap", 3, signatureMap),
	wire.Scalar("signedTransactionBytes", 5, wire.Bytes),
)

// TransactionList holds one Transaction per node
var TransactionList = wire.NewSchema("TransactionList",
	wire.Repeated(wire.Msg("transaction_list", 1, transaction)),
)

// TransactionResponse is the precheck answer of a node
var TransactionResponse = wire.NewSchema("TransactionResponse",
	wire.Scalar("nodeTransactionPrecheckCode", 1, wire.Enum),
	wire.Scalar("cost", 2, wire.Uint64),
)

// TransactionBody is the signed content of a transaction
var TransactionBody = wire.NewSchema("TransactionBody",
	wire.Msg("transactionID", 1, transactionID),
	wire.Msg("nodeAccountID", 2, accountID),
	wire.Scalar("transactionFee", 3, wire.Uint64),
	wire.Msg("transactionValidDuration", 4, duration),
	wire.Scalar("generateRecord", 5, wire.Bool),
	wire.Scalar("memo", 6, wire.String),
	wire.OneofMember(DataCase, wire.Msg("cryptoCreateAccount", 11, cryptoCreate)),
	wire.OneofMember(DataCase, wire.Msg("cryptoDelete", 12, cryptoDelete)),
	wire.OneofMember(DataCase, wire.Msg("cryptoTransfer", 14, cryptoTransfer)),
	wire.OneofMember(DataCase, wire.Msg("consensusCreateTopic", 24, topicCreate)),
	wire.OneofMember(DataCase, wire.Msg("consensusSubmitMessage", 27, topicSubmit)),
	wire.OneofMember(DataCase, wire.Msg("tokenCreation", 29, tokenCreate)),
	wire.OneofMember(DataCase, wire.Msg("tokenDeletion", 35, tokenDelete)),
	wire.OneofMember(DataCase, wire.Msg("tokenMint", 37, tokenMint)),
	wire.OneofMember(DataCase, wire.Msg("tokenBurn", 38, tokenBurn)),
	wire.OneofMember(DataCase, wire.Msg("tokenAssociate", 40, tokenAssociate)),
	wire.OneofMember(DataCase, wire.Msg("tokenDissociate", 41, tokenDissociate)),
	wire.OneofMember(DataCase, wire.Msg("scheduleCreate", 42, scheduleCreate)),
	wire.OneofMember(DataCase, wire.Msg("token_pause", 46, tokenPause)),
	wire.OneofMember(DataCase, wire.Msg("token_unpause", 47, tokenUnpause)),
)

// SchedulableTransactionBody is the body of a transaction wrapped in a
// schedule. The data case names match TransactionBody.
var SchedulableTransactionBody = wire.NewSchema("SchedulableTransactionBody",
	wire.Scalar("transactionFee", 1, wire.Uint64),
	wire.Scalar("memo", 2, wire.String),
	wire.OneofMember(DataCase, wire.Msg("cryptoCreateAccount", 7, cryptoCreate)),
	wire.OneofMember(DataCase, wire.Msg("cryptoDelete", 8, cryptoDelete)),
	wire.OneofMember(DataCase, wire.Msg("cryptoTransfer", 9, cryptoTransfer)),
	wire.OneofMember(DataCase, wire.Msg("consensusCreateTopic", 18, topicCreate)),
	wire.OneofMember(DataCase, wire.Msg("consensusSubmitMessage", 21, topicSubmit)),
	wire.OneofMember(DataCase, wire.Msg("tokenCreation", 22, tokenCreate)),
	wire.OneofMember(DataCase, wire.Msg("tokenDeletion", 27, tokenDelete)),
	wire.OneofMember(DataCase, wire.Msg("tokenMint", 29, tokenMint)),
	wire.OneofMember(DataCase, wire.Msg("tokenBurn", 30, tokenBurn)),
	wire.OneofMember(DataCase, wire.Msg("tokenAssociate", 32, tokenAssociate)),
	wire.OneofMember(DataCase, wire.Msg("tokenDissociate", 33, tokenDissociate)),
	wire.OneofMember(DataCase, wire.Msg("token_pause", 35, tokenPause)),
	wire.OneofMember(DataCase, wire.Msg("token_unpause", 36, tokenUnpause)),
)

// CryptoCreateTransactionBody creates an account
var CryptoCreateTransactionBody = wire.NewSchema("CryptoCreateTransactionBody",
	wire.Msg("key", 1, key),
	wire.Scalar("initialBalance", 2, wire.Uint64),
	wire.Scalar("receiverSigRequired", 8, wire.Bool),
	wire.Msg("autoRenewPeriod", 9, duration),
	wire.Scalar("memo", 13, wire.String),
	wire.Scalar("max_automatic_token_associations", 14, wire.Int32),
	wire.Scalar("alias", 18, wire.Bytes),
)

// CryptoDeleteTransactionBody deletes an account
var CryptoDeleteTransactionBody = wire.NewSchema("CryptoDeleteTransactionBody",
	wire.Msg("transferAccountID", 1, accountID),
	wire.Msg("deleteAccountID", 2, accountID),
)

// CryptoTransferTransactionBody moves hbar and tokens
var CryptoTransferTransactionBody = wire.NewSchema("CryptoTransferTransactionBody",
	wire.Msg("transfers", 1, transferList),
	wire.Repeated(wire.Msg("tokenTransfers", 2, tokenTransfers)),
)

// ConsensusCreateTopicTransactionBody creates a topic
var ConsensusCreateTopicTransactionBody = wire.NewSchema("ConsensusCreateTopicTransactionBody",
	wire.Scalar("memo", 1, wire.String),
	wire.Msg("adminKey", 2, key),
	wire.Msg("submitKey", 3, key),
	wire.Msg("autoRenewPeriod", 6, duration),
	wire.Msg("autoRenewAccount", 7, accountID),
)

// ConsensusSubmitMessageTransactionBody submits a message to a topic
var ConsensusSubmitMessageTransactionBody = wire.NewSchema("ConsensusSubmitMessageTransactionBody",
	wire.Msg("topicID", 1, topicID),
	wire.Scalar("message", 2, wire.Bytes),
)

// TokenCreateTransactionBody creates a token
var TokenCreateTransactionBody = wire.NewSchema("TokenCreateTransactionBody",
	wire.Scalar("name", 1, wire.String),
	wire.Scalar("symbol", 2, wire.String),
	wire.Scalar("decimals", 3, wire.Uint32),
	wire.Scalar("initialSupply", 4, wire.Uint64),
	wire.Msg("treasury", 5, accountID),
	wire.Msg("adminKey", 6, key),
	wire.Msg("kycKey", 7, key),
	wire.Msg("freezeKey", 8, key),
	wire.Msg("wipeKey", 9, key),
	wire.Msg("supplyKey", 10, key),
	wire.Scalar("freezeDefault", 11, wire.Bool),
	wire.Msg("expiry", 13, timestamp),
	wire.Msg("autoRenewAccount", 14, accountID),
	wire.Msg("autoRenewPeriod", 15, duration),
	wire.Scalar("memo", 16, wire.String),
	wire.Scalar("tokenType", 17, wire.Enum),
	wire.Scalar("supplyType", 18, wire.Enum),
	wire.Scalar("maxSupply", 19, wire.Int64),
	wire.Msg("fee_schedule_key", 20, key),
	wire.Msg("pause_key", 22, key),
	wire.Scalar("metadata", 23, wire.Bytes),
	wire.Msg("metadata_key", 24, key),
)

// TokenDeleteTransactionBody deletes a token
var TokenDeleteTransactionBody = wire.NewSchema("TokenDeleteTransactionBody",
	wire.Msg("token", 1, tokenID),
)

// TokenMintTransactionBody mints fungible amount or NFT serials
var TokenMintTransactionBody = wire.NewSchema("TokenMintTransactionBody",
	wire.Msg("token", 1, tokenID),
	wire.Scalar("amount", 2, wire.Uint64),
	wire.Repeated(wire.Scalar("metadata", 3, wire.Bytes)),
)

// TokenBurnTransactionBody burns fungible amount or NFT serials
var TokenBurnTransactionBody = wire.NewSchema("TokenBurnTransactionBody",
	wire.Msg("token", 1, tokenID),
	wire.Scalar("amount", 2, wire.Uint64),
	wire.Repeated(wire.Scalar("serialNumbers", 3, wire.Int64)),
)

// TokenAssociateTransactionBody associates tokens with an account
var TokenAssociateTransactionBody = wire.NewSchema("TokenAssociateTransactionBody",
	wire.Msg("account", 1, accountID),
	wire.Repeated(wire.Msg("tokens", 2, tokenID)),
)

// TokenDissociateTransactionBody dissociates tokens from an account
var TokenDissociateTransactionBody = wire.NewSchema("TokenDissociateTransactionBody",
	wire.Msg("account", 1, accountID),
	wire.Repeated(wire.Msg("tokens", 2, tokenID)),
)

// TokenPauseTransactionBody pauses a token
var TokenPauseTransactionBody = wire.NewSchema("TokenPauseTransactionBody",
	wire.Msg("token", 1, tokenID),
)

// TokenUnpauseTransactionBody unpauses a token
var TokenUnpauseTransactionBody = wire.NewSchema("TokenUnpauseTransactionBody",
	wire.Msg("token", 1, tokenID),
)

// ScheduleCreateTransactionBody wraps a schedulable body into a schedule
var ScheduleCreateTransactionBody = wire.NewSchema("ScheduleCreateTransactionBody",
	wire.Msg("scheduledTransactionBody", 1, schedulableBody),
	wire.Scalar("memo", 2, wire.String),
	wire.Msg("adminKey", 3, key),
	wire.Msg("payerAccountID", 4, accountID),
	wire.Msg("expiration_time", 5, timestamp),
	wire.Scalar("wait_for_expiry", 6, wire.Bool),
)
