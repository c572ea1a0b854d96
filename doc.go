/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package hieroclient enables Go developers to build solutions that submit
// transactions and queries to a Hiero network.
//
// Packages for end developer usage
//
// pkg/hiero: The main package. A Client holds the address book, the
// operator that pays for requests and the retry settings; transactions
// and queries are built, frozen, signed and executed against it.
//
// pkg/entity: Entity IDs (shard.realm.num) of accounts, tokens, files,
// topics, contracts and schedules, with ledger checksums.
//
// pkg/hbar: Amounts of hbar and their units.
//
// pkg/keys: Ed25519 and ECDSA (secp256k1) keys, key lists and threshold
// keys, and mnemonic phrases.
//
// pkg/core/config: Client configuration files and environment overrides.
//
// Basic workflow
//
//	1) Create a client for a network: hiero.ForTestnet or hiero.ClientFromConfigFile
//	2) Set the operator: client.SetOperator
//	3) Build a transaction or a query, e.g. hiero.NewTransferTransaction
//	4) Execute it and wait for the receipt: tx.Execute, resp.GetReceipt
package hieroclient
