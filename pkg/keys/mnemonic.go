/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package keys

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	bip39 "github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/ed25519"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/status"
)

const (
	hardened = 0x80000000
	coinType = 3030
)

// Mnemonic is a validated BIP-39 phrase
type Mnemonic struct {
	words string
}

// GenerateMnemonic24 creates a random 24 word phrase
func GenerateMnemonic24() (Mnemonic, error) {
	return generateMnemonic(256)
}

// GenerateMnemonic12 creates a random 12 word phrase
func GenerateMnemonic12() (Mnemonic, error) {
	return generateMnemonic(128)
}

func generateMnemonic(bits int) (Mnemonic, error) {
	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return Mnemonic{}, status.Errorf(status.Unknown, "mnemonic entropy: %s", err)
	}
	words, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return Mnemonic{}, status.Errorf(status.Unknown, "mnemonic generation: %s", err)
	}
	return Mnemonic{words: words}, nil
}

// MnemonicFromString validates a phrase
func MnemonicFromString(s string) (Mnemonic, error) {
	words := strings.Join(strings.Fields(s), " ")
	if !bip39.IsMnemonicValid(words) {
		return Mnemonic{}, status.Errorf(status.InvalidArgument, "invalid mnemonic")
	}
	return Mnemonic{words: words}, nil
}

// Words returns the words of the phrase
func (m Mnemonic) Words() []string {
	return strings.Fields(m.words)
}

func (m Mnemonic) String() string {
	return m.words
}

// ToStandardEd25519PrivateKey derives m/44'/3030'/0'/0'/index' with SLIP-10
func (m Mnemonic) ToStandardEd25519PrivateKey(passphrase string, index uint32) (PrivateKey, error) {
	if index >= hardened {
		return PrivateKey{}, status.Errorf(status.InvalidArgument, "index %d is out of range", index)
	}
	key, chain := splitHMAC([]byte("ed25519 seed"), bip39.NewSeed(m.words, passphrase))
	for _, i := range []uint32{44, coinType, 0, 0, index} {
		data := append(append([]byte{0}, key...), ser32(i|hardened)...)
		key, chain = splitHMAC(chain, data)
	}
	return PrivateKey{kind: Ed25519, ed: ed25519.NewKeyFromSeed(key)}, nil
}

// ToStandardECDSAsecp256k1PrivateKey derives m/44'/3030'/0'/0/index with BIP-32
func (m Mnemonic) ToStandardECDSAsecp256k1PrivateKey(passphrase string, index uint32) (PrivateKey, error) {
	key, chain := splitHMAC([]byte("Bitcoin seed"), bip39.NewSeed(m.words, passphrase))
	var k secp256k1.ModNScalar
	if overflow := k.SetByteSlice(key); overflow || k.IsZero() {
		return PrivateKey{}, status.Errorf(status.InvalidArgument, "mnemonic yields an invalid master key")
	}
	for _, i := range []uint32{44 | hardened, coinType | hardened, hardened, 0, index} {
		var data []byte
		if i >= hardened {
			kb := k.Bytes()
			data = append(append([]byte{0}, kb[:]...), ser32(i)...)
		} else {
			data = append(secp256k1.NewPrivateKey(&k).PubKey().SerializeCompressed(), ser32(i)...)
		}
		var il []byte
		il, chain = splitHMAC(chain, data)

		var tweak secp256k1.ModNScalar
		if overflow := tweak.SetByteSlice(il); overflow {
			return PrivateKey{}, status.Errorf(status.InvalidArgument, "derivation at %d yields an invalid key", i)
		}
		k.Add(&tweak)
		if k.IsZero() {
			return PrivateKey{}, status.Errorf(status.InvalidArgument, "derivation at %d yields an invalid key", i)
		}
	}
	return PrivateKey{kind: ECDSASecp256k1, ec: secp256k1.NewPrivateKey(&k)}, nil
}

func splitHMAC(key, data []byte) ([]byte, []byte) {
	mac := hmac.New(sha512.New, key)
	mac.Write(data)
	sum := mac.Sum(nil)
	return sum[:32], sum[32:]
}

func ser32(i uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, i)
	return b
}
