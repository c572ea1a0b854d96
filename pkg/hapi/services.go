/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hapi

// gRPC methods of the consensus node services
const (
	CryptoCreateAccount    = "/proto.CryptoService/createAccount"
	CryptoDelete           = "/proto.CryptoService/cryptoDelete"
	CryptoTransfer         = "/proto.CryptoService/cryptoTransfer"
	CryptoGetBalance       = "/proto.CryptoService/cryptoGetBalance"
	CryptoGetAccountInfo   = "/proto.CryptoService/getAccountInfo"
	CryptoGetReceipt       = "/proto.CryptoService/getTransactionReceipts"
	CryptoGetRecord        = "/proto.CryptoService/getTxRecordByTxID"
	TokenCreate            = "/proto.TokenService/createToken"
	TokenDelete            = "/proto.TokenService/deleteToken"
	TokenMint              = "/proto.TokenService/mintToken"
	TokenBurn              = "/proto.TokenService/burnToken"
	TokenAssociate         = "/proto.TokenService/associateTokens"
	TokenDissociate        = "/proto.TokenService/dissociateTokens"
	TokenPause             = "/proto.TokenService/pauseToken"
	TokenUnpause           = "/proto.TokenService/unpauseToken"
	TokenGetInfo           = "/proto.TokenService/getTokenInfo"
	ConsensusCreateTopic   = "/proto.ConsensusService/createTopic"
	ConsensusSubmitMessage = "/proto.ConsensusService/submitMessage"
	ScheduleCreate         = "/proto.ScheduleService/createSchedule"
)
