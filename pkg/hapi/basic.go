/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package hapi declares the wire schemas of the Hedera API protobuf
// messages used by the SDK, and the gRPC methods that carry them.
// Field names follow the .proto declarations.
package hapi

import (
	"github.com/hiero-ledger/hiero-client-go/pkg/wire"
)

func timestamp() *wire.Schema { return Timestamp }
func duration() *wire.Schema { return Duration }
func accountID() *wire.Schema { return AccountID }
func tokenID() *wire.Schema { return TokenID }
func topicID() *wire.Schema { return TopicID }
func fileID() *wire.Schema { return FileID }
func contractID() *wire.Schema { return ContractID }
func scheduleID() *wire.Schema { return ScheduleID }
func transactionID() *wire.Schema { return TransactionID }
func key() *wire.Schema { return Key }
func keyList() *wire.Schema { return KeyList }
func thresholdKey() *wire.Schema { return ThresholdKey }
func signaturePair() *wire.Schema { return SignaturePair }
func signatureMap() *wire.Schema { return SignatureMap }
func accountAmount() *wire.Schema { return AccountAmount }
func transferList() *wire.Schema { return TransferList }
func nftTransfer() *wire.Schema { return NftTransfer }
func tokenTransfers() *wire.Schema { return TokenTransferList }
func tokenBalance() *wire.Schema { return TokenBalance }

// Timestamp is google.protobuf.Timestamp shaped
var Timestamp = wire.NewSchema("Timestamp",
	wire.Scalar("seconds", 1, wire.Int64),
	wire.Scalar("nanos", 2, wire.Int32),
)

// Duration in seconds
var Duration = wire.NewSchema("Duration",
	wire.Scalar("seconds", 1, wire.Int64),
)

// AccountID identifies an account by number or by alias
var AccountID = wire.NewSchema("AccountID",
	wire.Scalar("shardNum", 1, wire.Int64),
	wire.Scalar("realmNum", 2, wire.Int64),
	wire.OneofMember("account", wire.Scalar("accountNum", 3, wire.Int64)),
	wire.OneofMember("account", wire.Scalar("alias", 4, wire.Bytes)),
)

// TokenID identifies a token
var TokenID = wire.NewSchema("TokenID",
	wire.Scalar("shardNum", 1, wire.Int64),
	wire.Scalar("realmNum", 2, wire.Int64),
	wire.Scalar("tokenNum", 3, wire.Int64),
)

// TopicID identifies a consensus topic
var TopicID = wire.NewSchema("TopicID",
	wire.Scalar("shardNum", 1, wire.Int64),
	wire.Scalar("realmNum", 2, wire.Int64),
	wire.Scalar("topicNum", 3, wire.Int64),
)

// FileID identifies a file
var FileID = wire.NewSchema("FileID",
	wire.Scalar("shardNum", 1, wire.Int64),
	wire.Scalar("realmNum", 2, wire.Int64),
	wire.Scalar("fileNum", 3, wire.Int64),
)

// ContractID identifies a smart contract by number or EVM address
var ContractID = wire.NewSchema("ContractID",
	wire.Scalar("shardNum", 1, wire.Int64),
	wire.Scalar("realmNum", 2, wire.Int64),
	wire.OneofMember("contract", wire.Scalar("contractNum", 3, wire.Int64)),
	wire.OneofMember("contract", wire.Scalar("evm_address", 4, wire.Bytes)),
)

// ScheduleID identifies a scheduled transaction
var ScheduleID = wire.NewSchema("ScheduleID",
	wire.Scalar("shardNum", 1, wire.Int64),
	wire.Scalar("realmNum", 2, wire.Int64),
	wire.Scalar("scheduleNum", 3, wire.Int64),
)

// NftID identifies one serial of a non-fungible token
var NftID = wire.NewSchema("NftID",
	wire.Msg("token_ID", 1, tokenID),
	wire.Scalar("serial_number", 2, wire.Int64),
)

// TransactionID is the payer account plus the valid start time
var TransactionID = wire.NewSchema("TransactionID",
	wire.Msg("transactionValidStart", 1, timestamp),
	wire.Msg("accountID", 2, accountID),
	wire.Scalar("scheduled", 3, wire.Bool),
	wire.Scalar("nonce", 4, wire.Int32),
)

// Key, KeyList and ThresholdKey refer to each other and are built in init.
var (
	// Key is a public key, a contract or a composite key
	Key *wire.Schema
	// KeyList requires all of its keys to sign
	KeyList *wire.Schema
	// ThresholdKey requires threshold of its keys to sign
	ThresholdKey *wire.Schema
)

func init() {
	Key = wire.NewSchema("Key",
		wire.OneofMember("key", wire.Msg("contractID", 1, contractID)),
		wire.OneofMember("key", wire.Scalar("ed25519", 2, wire.Bytes)),
		wire.OneofMember("key", wire.Scalar("RSA_3072", 3, wire.Bytes)),
		wire.OneofMember("key", wire.Scalar("ECDSA_384", 4, wire.Bytes)),
		wire.OneofMember("key", wire.Msg("thresholdKey", 5, thresholdKey)),
		wire.OneofMember("key", wire.Msg("keyList", 6, keyList)),
		wire.OneofMember("key", wire.Scalar("ECDSA_secp256k1", 7, wire.Bytes)),
		wire.OneofMember("key", wire.Msg("delegatable_contract_id", 8, contractID)),
	)
	KeyList = wire.NewSchema("KeyList",
		wire.Repeated(wire.Msg("keys", 1, key)),
	)
	ThresholdKey = wire.NewSchema("ThresholdKey",
		wire.Scalar("threshold", 1, wire.Uint32),
		wire.Msg("keys", 2, keyList),
	)
}

// SignaturePair is one signature plus a prefix of the signing public key
var SignaturePair = wire.NewSchema("SignaturePair",
	wire.Scalar("pubKeyPrefix", 1, wire.Bytes),
	wire.OneofMember("signature", wire.Scalar("contract", 2, wire.Bytes)),
	wire.OneofMember("signature", wire.Scalar("ed25519", 3, wire.Bytes)),
	wire.OneofMember("signature", wire.Scalar("RSA_3072", 4, wire.Bytes)),
	wire.OneofMember("signature", wire.Scalar("ECDSA_384", 5, wire.Bytes)),
	wire.OneofMember("signature", wire.Scalar("ECDSA_secp256k1", 6, wire.Bytes)),
)

// SignatureMap holds the signatures of a signed transaction
var SignatureMap = wire.NewSchema("SignatureMap",
	wire.Repeated(wire.Msg("sigPair", 1, signaturePair)),
)

// AccountAmount is one leg of a transfer
var AccountAmount = wire.NewSchema("AccountAmount",
	wire.Msg("accountID", 1, accountID),
	wire.Scalar("amount", 2, wire.Sint64),
	wire.Scalar("is_approval", 3, wire.Bool),
)

// TransferList is a list of hbar transfers summing to zero
var TransferList = wire.NewSchema("TransferList",
	wire.Repeated(wire.Msg("accountAmounts", 1, accountAmount)),
)

// NftTransfer moves one NFT serial
var NftTransfer = wire.NewSchema("NftTransfer",
	wire.Msg("senderAccountID", 1, accountID),
	wire.Msg("receiverAccountID", 2, accountID),
	wire.Scalar("serialNumber", 3, wire.Int64),
	wire.Scalar("is_approval", 4, wire.Bool),
)

// TokenTransferList holds the transfers of one token
var TokenTransferList = wire.NewSchema("TokenTransferList",
	wire.Msg("token", 1, tokenID),
	wire.Repeated(wire.Msg("transfers", 2, accountAmount)),
	wire.Repeated(wire.Msg("nftTransfers", 3, nftTransfer)),
)

// TokenBalance is the balance of one token held by an account
var TokenBalance = wire.NewSchema("TokenBalance",
	wire.Msg("tokenId", 1, tokenID),
	wire.Scalar("balance", 2, wire.Uint64),
	wire.Scalar("decimals", 3, wire.Uint32),
)
