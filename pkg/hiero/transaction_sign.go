/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hiero

import (
	"bytes"
	"crypto/sha512"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/status"
	"github.com/hiero-ledger/hiero-client-go/pkg/entity"
	"github.com/hiero-ledger/hiero-client-go/pkg/hapi"
	"github.com/hiero-ledger/hiero-client-go/pkg/keys"
	"github.com/hiero-ledger/hiero-client-go/pkg/wire"
)

// SignaturePair is one signature of a transaction body
type SignaturePair struct {
	// PublicKeyPrefix is the raw public key, or a prefix of it
	PublicKeyPrefix []byte
	Signature       []byte
}

// Sign signs the frozen transaction with privateKey. Signing twice with
// the same key has no effect.
func (t *Transaction) Sign(privateKey keys.PrivateKey) error {
	return t.SignWith(privateKey.PublicKey(), privateKey.Sign)
}

// SignWith signs the frozen transaction with a custom signer
func (t *Transaction) SignWith(publicKey keys.PublicKey, signer Signer) error {
	if !t.frozen {
		return status.Errorf(status.IllegalState, "transaction must be frozen before signing")
	}
	t.signWith(publicKey, signer)
	return nil
}

// SignWithOperator freezes the transaction with client if needed and signs
// it with the operator
func (t *Transaction) SignWithOperator(client *Client) error {
	operator := client.Operator()
	if operator == nil {
		return status.Errorf(status.IllegalState, "client must have an operator to sign with it")
	}
	if _, err := t.FreezeWith(client); err != nil {
		return err
	}
	t.signWith(operator.PublicKey, operator.Sign)
	return nil
}

func (t *Transaction) signWith(publicKey keys.PublicKey, signer Signer) {
	if t.isSignedBy(publicKey) {
		return
	}
	t.signers = append(t.signers, transactionSigner{publicKey: publicKey, sign: signer})
	t.built = nil
}

func (t *Transaction) isSignedBy(publicKey keys.PublicKey) bool {
	for _, s := range t.signers {
		if s.publicKey.Equal(publicKey) {
			return true
		}
	}
	for _, pairs := range t.sigPairs {
		for _, pair := range pairs {
			if bytes.Equal(pair.GetBytes("pubKeyPrefix"), publicKey.BytesRaw()) {
				return true
			}
		}
	}
	return false
}

// AddSignature adds a signature produced elsewhere, e.g. by a wallet, to a
// frozen transaction prepared for a single node
func (t *Transaction) AddSignature(publicKey keys.PublicKey, signature []byte) error {
	if !t.frozen {
		return status.Errorf(status.IllegalState, "transaction must be frozen before adding a signature")
	}
	if len(t.nodeAccountIDs) != 1 {
		return status.Errorf(status.IllegalState, "adding a signature requires exactly one node, transaction has %d", len(t.nodeAccountIDs))
	}
	if t.isSignedBy(publicKey) {
		return nil
	}
	t.sigPairs[0] = append(t.sigPairs[0], publicKey.SignaturePair(signature))
	t.built = nil
	return nil
}

// Signatures returns the signatures of every node's body
func (t *Transaction) Signatures() (map[entity.AccountID][]SignaturePair, error) {
	if !t.frozen {
		return nil, status.Errorf(status.IllegalState, "transaction must be frozen to read its signatures")
	}
	sigs := make(map[entity.AccountID][]SignaturePair, len(t.nodeAccountIDs))
	for i, nodeID := range t.nodeAccountIDs {
		signed, err := signedTransaction(t.nodeTransaction(i))
		if err != nil {
			return nil, err
		}
		var pairs []SignaturePair
		if sigMap := signed.Message("sigMap"); sigMap != nil {
			for _, pair := range sigMap.Messages("sigPair") {
				pairs = append(pairs, SignaturePair{
					PublicKeyPrefix: pair.GetBytes("pubKeyPrefix"),
					Signature:       pair.GetBytes(pair.WhichOneof("signature")),
				})
			}
		}
		sigs[nodeID] = pairs
	}
	return sigs, nil
}

// nodeTransaction returns the signed Transaction for the node at index
func (t *Transaction) nodeTransaction(index int) *wire.Record {
	if t.built == nil {
		t.built = make([]*wire.Record, len(t.bodies))
	}
	if t.built[index] != nil {
		return t.built[index]
	}

	body := t.bodies[index]
	sigMap := hapi.SignatureMap.New()
	for _, pair := range t.sigPairs[index] {
		sigMap.Append("sigPair", pair)
	}
	for _, s := range t.signers {
		sigMap.Append("sigPair", s.publicKey.SignaturePair(s.sign(body)))
	}
	signed := hapi.SignedTransaction.New().
		Set("bodyBytes", body).
		Set("sigMap", sigMap)

	t.built[index] = hapi.Transaction.New().Set("signedTransactionBytes", signed.Marshal())
	return t.built[index]
}

// signedTransaction decodes the SignedTransaction of tx. Legacy envelopes
// carrying bodyBytes and sigMap directly are converted.
func signedTransaction(tx *wire.Record) (*wire.Record, error) {
	if !tx.Has("signedTransactionBytes") {
		signed := hapi.SignedTransaction.New().Set("bodyBytes", tx.GetBytes("bodyBytes"))
		if sigMap := tx.Message("sigMap"); sigMap != nil {
			signed.Set("sigMap", sigMap)
		}
		return signed, nil
	}
	signed, err := wire.Unmarshal(hapi.SignedTransaction, tx.GetBytes("signedTransactionBytes"))
	if err != nil {
		return nil, status.Errorf(status.InvalidArgument, "invalid signed transaction: %s", err)
	}
	return signed, nil
}

// Hash returns the SHA-384 hash the network identifies the transaction by.
// It requires a frozen transaction; with several nodes it is the hash of
// the first node's transaction, see HashPerNode.
func (t *Transaction) Hash() ([]byte, error) {
	if !t.frozen {
		return nil, status.Errorf(status.IllegalState, "transaction must be frozen before calculating its hash")
	}
	return hash(t.nodeTransaction(0).GetBytes("signedTransactionBytes")), nil
}

// HashPerNode returns the hash of the transaction sent to each node
func (t *Transaction) HashPerNode() (map[entity.AccountID][]byte, error) {
	if !t.frozen {
		return nil, status.Errorf(status.IllegalState, "transaction must be frozen before calculating its hash")
	}
	hashes := make(map[entity.AccountID][]byte, len(t.nodeAccountIDs))
	for i, nodeID := range t.nodeAccountIDs {
		hashes[nodeID] = hash(t.nodeTransaction(i).GetBytes("signedTransactionBytes"))
	}
	return hashes, nil
}

func hash(signedTransactionBytes []byte) []byte {
	h := sha512.Sum384(signedTransactionBytes)
	return h[:]
}
