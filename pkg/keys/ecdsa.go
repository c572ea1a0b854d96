/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package keys

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/sha3"
)

const ecdsaSignatureLen = 64

func keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

// ecdsaSign returns r||s, dropping the recovery byte of the compact form
func ecdsaSign(k *secp256k1.PrivateKey, message []byte) []byte {
	compact := ecdsa.SignCompact(k, keccak256(message), true)
	return compact[1:]
}

func ecdsaVerify(pub *secp256k1.PublicKey, message, signature []byte) bool {
	if len(signature) != ecdsaSignatureLen {
		return false
	}
	var r, s secp256k1.ModNScalar
	if r.SetByteSlice(signature[:32]) || s.SetByteSlice(signature[32:]) {
		return false
	}
	return ecdsa.NewSignature(&r, &s).Verify(keccak256(message), pub)
}

// evmAddress is the last 20 bytes of the keccak-256 of the uncompressed
// point without its 0x04 tag
func evmAddress(pub *secp256k1.PublicKey) []byte {
	return keccak256(pub.SerializeUncompressed()[1:])[12:]
}
