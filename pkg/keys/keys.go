/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package keys provides the Ed25519 and ECDSA(secp256k1) keys used to sign
// transactions, and the Key wire encoding used by accounts, tokens and
// topics.
package keys

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/ed25519"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/status"
	"github.com/hiero-ledger/hiero-client-go/pkg/entity"
	"github.com/hiero-ledger/hiero-client-go/pkg/hapi"
	"github.com/hiero-ledger/hiero-client-go/pkg/wire"
)

// Type of a key pair
type Type int

const (
	// Ed25519 keys sign the message itself
	Ed25519 Type = iota
	// ECDSASecp256k1 keys sign the keccak-256 hash of the message
	ECDSASecp256k1
)

func (t Type) String() string {
	if t == ECDSASecp256k1 {
		return "ECDSA_secp256k1"
	}
	return "ED25519"
}

// DER prefixes of the supported key encodings
var (
	ed25519PrivateDERPrefix = mustHex("302e020100300506032b657004220420")
	ed25519PublicDERPrefix  = mustHex("302a300506032b6570032100")
	ecdsaPrivateDERPrefix   = mustHex("3030020100300706052b8104000a04220420")
	ecdsaPublicDERPrefix    = mustHex("302d300706052b8104000a032200")
)

// Key is anything that can be set as the key of an account, token or topic
type Key interface {
	ToRecord() *wire.Record
}

// PrivateKey is an Ed25519 or ECDSA(secp256k1) private key
type PrivateKey struct {
	kind Type
	ed   ed25519.PrivateKey
	ec   *secp256k1.PrivateKey
}

// PublicKey is an Ed25519 or ECDSA(secp256k1) public key
type PublicKey struct {
	kind Type
	ed   ed25519.PublicKey
	ec   *secp256k1.PublicKey
}

// GeneratePrivateKey creates a random key of the given type
func GeneratePrivateKey(kind Type) (PrivateKey, error) {
	if kind == ECDSASecp256k1 {
		k, err := secp256k1.GeneratePrivateKey()
		if err != nil {
			return PrivateKey{}, status.Errorf(status.Unknown, "ECDSA key generation failed: %s", err)
		}
		return PrivateKey{kind: kind, ec: k}, nil
	}
	_, k, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return PrivateKey{}, status.Errorf(status.Unknown, "Ed25519 key generation failed: %s", err)
	}
	return PrivateKey{kind: kind, ed: k}, nil
}

// PrivateKeyFromBytes decodes a DER encoded key, or a raw key of the given
// type
func PrivateKeyFromBytes(b []byte, kind Type) (PrivateKey, error) {
	switch {
	case hasPrefix(b, ed25519PrivateDERPrefix, ed25519.SeedSize):
		return ed25519PrivateKey(b[len(ed25519PrivateDERPrefix):])
	case hasPrefix(b, ecdsaPrivateDERPrefix, secp256k1.PrivKeyBytesLen):
		return ecdsaPrivateKey(b[len(ecdsaPrivateDERPrefix):])
	case kind == ECDSASecp256k1:
		return ecdsaPrivateKey(b)
	case len(b) == ed25519.PrivateKeySize:
		// seed followed by the public key
		return ed25519PrivateKey(b[:ed25519.SeedSize])
	default:
		return ed25519PrivateKey(b)
	}
}

// PrivateKeyFromString decodes a hex string. DER encodings carry their
// type; raw 32 byte keys are Ed25519.
func PrivateKeyFromString(s string) (PrivateKey, error) {
	return privateKeyFromString(s, Ed25519)
}

// PrivateKeyFromStringECDSA decodes a hex string, treating raw keys as
// ECDSA(secp256k1)
func PrivateKeyFromStringECDSA(s string) (PrivateKey, error) {
	return privateKeyFromString(s, ECDSASecp256k1)
}

func privateKeyFromString(s string, kind Type) (PrivateKey, error) {
	b, err := decodeHex(s)
	if err != nil {
		return PrivateKey{}, err
	}
	return PrivateKeyFromBytes(b, kind)
}

func ed25519PrivateKey(seed []byte) (PrivateKey, error) {
	if len(seed) != ed25519.SeedSize {
		return PrivateKey{}, status.Errorf(status.InvalidArgument, "invalid Ed25519 private key length %d", len(seed))
	}
	return PrivateKey{kind: Ed25519, ed: ed25519.NewKeyFromSeed(seed)}, nil
}

func ecdsaPrivateKey(b []byte) (PrivateKey, error) {
	if len(b) != secp256k1.PrivKeyBytesLen {
		return PrivateKey{}, status.Errorf(status.InvalidArgument, "invalid ECDSA private key length %d", len(b))
	}
	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(b); overflow || scalar.IsZero() {
		return PrivateKey{}, status.Errorf(status.InvalidArgument, "ECDSA private key is out of range")
	}
	return PrivateKey{kind: ECDSASecp256k1, ec: secp256k1.NewPrivateKey(&scalar)}, nil
}

// Type of the key
func (k PrivateKey) Type() Type {
	return k.kind
}

// PublicKey derives the public key
func (k PrivateKey) PublicKey() PublicKey {
	if k.kind == ECDSASecp256k1 {
		return PublicKey{kind: k.kind, ec: k.ec.PubKey()}
	}
	return PublicKey{kind: k.kind, ed: k.ed.Public().(ed25519.PublicKey)}
}

// Sign signs message. ECDSA signatures are r||s over the keccak-256 hash.
func (k PrivateKey) Sign(message []byte) []byte {
	if k.kind == ECDSASecp256k1 {
		return ecdsaSign(k.ec, message)
	}
	return ed25519.Sign(k.ed, message)
}

// BytesRaw returns the 32 byte private key
func (k PrivateKey) BytesRaw() []byte {
	if k.kind == ECDSASecp256k1 {
		return k.ec.Serialize()
	}
	return k.ed.Seed()
}

// BytesDER returns the DER encoded private key
func (k PrivateKey) BytesDER() []byte {
	prefix := ed25519PrivateDERPrefix
	if k.kind == ECDSASecp256k1 {
		prefix = ecdsaPrivateDERPrefix
	}
	return append(append([]byte{}, prefix...), k.BytesRaw()...)
}

// String returns the hex of the DER encoding
func (k PrivateKey) String() string {
	return hex.EncodeToString(k.BytesDER())
}

// StringRaw returns the hex of the raw key
func (k PrivateKey) StringRaw() string {
	return hex.EncodeToString(k.BytesRaw())
}

// PublicKeyFromBytes decodes a DER encoded or raw public key. Raw keys are
// told apart by length: 32 bytes is Ed25519, 33 or 65 bytes ECDSA.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	switch {
	case hasPrefix(b, ed25519PublicDERPrefix, ed25519.PublicKeySize):
		b = b[len(ed25519PublicDERPrefix):]
	case hasPrefix(b, ecdsaPublicDERPrefix, secp256k1.PubKeyBytesLenCompressed):
		b = b[len(ecdsaPublicDERPrefix):]
	}
	switch len(b) {
	case ed25519.PublicKeySize:
		return PublicKey{kind: Ed25519, ed: ed25519.PublicKey(append([]byte{}, b...))}, nil
	case secp256k1.PubKeyBytesLenCompressed, secp256k1.PubKeyBytesLenUncompressed:
		pub, err := secp256k1.ParsePubKey(b)
		if err != nil {
			return PublicKey{}, status.Errorf(status.InvalidArgument, "invalid ECDSA public key: %s", err)
		}
		return PublicKey{kind: ECDSASecp256k1, ec: pub}, nil
	default:
		return PublicKey{}, status.Errorf(status.InvalidArgument, "invalid public key length %d", len(b))
	}
}

// PublicKeyFromString decodes the hex of a DER encoded or raw public key
func PublicKeyFromString(s string) (PublicKey, error) {
	b, err := decodeHex(s)
	if err != nil {
		return PublicKey{}, err
	}
	return PublicKeyFromBytes(b)
}

// Type of the key
func (k PublicKey) Type() Type {
	return k.kind
}

// Verify checks a signature produced by the matching PrivateKey.Sign
func (k PublicKey) Verify(message, signature []byte) bool {
	if k.kind == ECDSASecp256k1 {
		return ecdsaVerify(k.ec, message, signature)
	}
	return ed25519.Verify(k.ed, message, signature)
}

// BytesRaw returns the raw key; ECDSA keys are compressed
func (k PublicKey) BytesRaw() []byte {
	if k.kind == ECDSASecp256k1 {
		return k.ec.SerializeCompressed()
	}
	return append([]byte{}, k.ed...)
}

// BytesDER returns the DER encoded public key
func (k PublicKey) BytesDER() []byte {
	prefix := ed25519PublicDERPrefix
	if k.kind == ECDSASecp256k1 {
		prefix = ecdsaPublicDERPrefix
	}
	return append(append([]byte{}, prefix...), k.BytesRaw()...)
}

// String returns the hex of the DER encoding
func (k PublicKey) String() string {
	return hex.EncodeToString(k.BytesDER())
}

// StringRaw returns the hex of the raw key
func (k PublicKey) StringRaw() string {
	return hex.EncodeToString(k.BytesRaw())
}

// Equal compares the raw key bytes
func (k PublicKey) Equal(other PublicKey) bool {
	return k.kind == other.kind && bytes.Equal(k.BytesRaw(), other.BytesRaw())
}

// ToRecord encodes the key as a hapi.Key
func (k PublicKey) ToRecord() *wire.Record {
	if k.kind == ECDSASecp256k1 {
		return hapi.Key.New().Set("ECDSA_secp256k1", k.BytesRaw())
	}
	return hapi.Key.New().Set("ed25519", k.BytesRaw())
}

// SignaturePair wraps a signature of this key for a signature map
func (k PublicKey) SignaturePair(signature []byte) *wire.Record {
	pair := hapi.SignaturePair.New().Set("pubKeyPrefix", k.BytesRaw())
	if k.kind == ECDSASecp256k1 {
		return pair.Set("ECDSA_secp256k1", signature)
	}
	return pair.Set("ed25519", signature)
}

// ToAccountID returns the alias account ID of the key
func (k PublicKey) ToAccountID(shard, realm uint64) entity.AccountID {
	return entity.NewAccountIDFromAlias(shard, realm, k.ToRecord().Marshal())
}

// ToEvmAddress returns the EVM address of an ECDSA key
func (k PublicKey) ToEvmAddress() (string, error) {
	if k.kind != ECDSASecp256k1 {
		return "", status.Errorf(status.IllegalState, "only ECDSA keys have an EVM address")
	}
	return hex.EncodeToString(evmAddress(k.ec)), nil
}

// PublicKeyFromRecord decodes a hapi.Key holding a single public key
func PublicKeyFromRecord(r *wire.Record) (PublicKey, error) {
	switch r.WhichOneof("key") {
	case "ed25519", "ECDSA_secp256k1":
		return PublicKeyFromBytes(r.GetBytes(r.WhichOneof("key")))
	default:
		return PublicKey{}, status.Errorf(status.InvalidArgument, "key is not a single public key")
	}
}

func hasPrefix(b, prefix []byte, keyLen int) bool {
	return len(b) == len(prefix)+keyLen && bytes.HasPrefix(b, prefix)
}

func decodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, status.Errorf(status.InvalidArgument, "key is not valid hex: %s", err)
	}
	return b, nil
}

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
