/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package entity

import (
	"reflect"
	"testing"

	"github.com/mitchellh/mapstructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiero-ledger/hiero-client-go/pkg/common/errors/status"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		address string
		ledger  LedgerID
		want    string
	}{
		{"0.0.123", LedgerMainnet, "vfmkw"},
		{"0.0.123", LedgerTestnet, "esxsf"},
		{"0.0.123", LedgerPreviewnet, "ogizo"},
		{"0.0.3", LedgerMainnet, "tzfmz"},
		{"0.0.3", LedgerTestnet, "dmqui"},
		{"0.0.3", LedgerPreviewnet, "nacbr"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Checksum(tc.address, tc.ledger), "%s on %s", tc.address, tc.ledger)
	}
}

func TestLedgerID(t *testing.T) {
	l, err := LedgerIDFromString("testnet")
	require.NoError(t, err)
	assert.Equal(t, LedgerTestnet, l)
	assert.Equal(t, "testnet", l.String())

	l, err = LedgerIDFromString("0x02")
	require.NoError(t, err)
	assert.Equal(t, LedgerPreviewnet, l)

	l, err = LedgerIDFromString("abcd")
	require.NoError(t, err)
	assert.Equal(t, "abcd", l.String())
	assert.Equal(t, []byte{0xab, 0xcd}, l.Bytes())

	_, err = LedgerIDFromString("nonet")
	assert.Error(t, err)

	assert.True(t, LedgerID("").IsEmpty())
}

func TestTokenIDFromString(t *testing.T) {
	id, err := TokenIDFromString("0.0.123-esxsf")
	require.NoError(t, err)
	assert.Equal(t, NewTokenID(0, 0, 123), TokenID{Shard: id.Shard, Realm: id.Realm, Num: id.Num})
	assert.Equal(t, "esxsf", id.Checksum())
	assert.Equal(t, "0.0.123", id.String())

	assert.NoError(t, id.ValidateChecksum(LedgerTestnet))

	err = id.ValidateChecksum(LedgerMainnet)
	require.Error(t, err)
	s, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, status.ClientStatus, s.Group)
	assert.Equal(t, status.BadEntityID.ToInt32(), s.Code)

	bad, ok := err.(*BadEntityIDError)
	require.True(t, ok)
	assert.Equal(t, "esxsf", bad.PresentChecksum)
	assert.Equal(t, "vfmkw", bad.ExpectedChecksum)

	err = id.ValidateChecksum(LedgerID(""))
	assert.True(t, status.Is(err, status.ClientStatus, status.IllegalState.ToInt32()))

	// IDs without checksum always validate
	assert.NoError(t, NewTokenID(0, 0, 123).ValidateChecksum(LedgerMainnet))
}

func TestParseErrors(t *testing.T) {
	for _, s := range []string{"", "0.0", "0.0.0.0", "a.0.1", "0.-1.1", "0.0.x", "0.0.1-ABCDE", "0.0.1-abc", " 0.0.1", "+0.0.1"} {
		_, err := TopicIDFromString(s)
		assert.True(t, status.Is(err, status.ClientStatus, status.InvalidArgument.ToInt32()), "input %q", s)
	}
}

func TestToStringWithChecksum(t *testing.T) {
	s, err := NewFileID(0, 0, 3).ToStringWithChecksum(LedgerMainnet)
	require.NoError(t, err)
	assert.Equal(t, "0.0.3-tzfmz", s)

	_, err = NewFileID(0, 0, 3).ToStringWithChecksum(LedgerID(""))
	assert.True(t, status.Is(err, status.ClientStatus, status.IllegalState.ToInt32()))
}

func TestEntityBytes(t *testing.T) {
	token := NewTokenID(1, 2, 3)
	tokenOut, err := TokenIDFromBytes(token.ToBytes())
	require.NoError(t, err)
	assert.Equal(t, token, tokenOut)

	topic := NewTopicID(0, 0, 9)
	topicOut, err := TopicIDFromBytes(topic.ToBytes())
	require.NoError(t, err)
	assert.Equal(t, topic, topicOut)

	schedule := NewScheduleID(0, 0, 77)
	scheduleOut, err := ScheduleIDFromBytes(schedule.ToBytes())
	require.NoError(t, err)
	assert.Equal(t, schedule, scheduleOut)

	nft := NftID{TokenID: NewTokenID(0, 0, 5), Serial: 3}
	nftOut, err := NftIDFromBytes(nft.ToBytes())
	require.NoError(t, err)
	assert.Equal(t, nft, nftOut)

	_, err = TokenIDFromBytes([]byte{0xff})
	assert.Error(t, err)
}

func TestSolidityAddress(t *testing.T) {
	addr, err := NewTokenID(0, 0, 5005).ToSolidityAddress()
	require.NoError(t, err)
	assert.Equal(t, "000000000000000000000000000000000000138d", addr)

	id, err := TokenIDFromSolidityAddress("0x" + addr)
	require.NoError(t, err)
	assert.Equal(t, NewTokenID(0, 0, 5005), id)

	_, err = TokenIDFromSolidityAddress("1234")
	assert.True(t, status.Is(err, status.ClientStatus, status.InvalidArgument.ToInt32()))

	_, err = NewTokenID(1<<33, 0, 1).ToSolidityAddress()
	assert.Error(t, err)
}

func TestAccountID(t *testing.T) {
	id, err := AccountIDFromString("0.0.3-dmqui")
	require.NoError(t, err)
	assert.True(t, id.Equal(NewAccountID(0, 0, 3)))
	assert.NoError(t, id.ValidateChecksum(LedgerTestnet))
	assert.Equal(t, NewAccountID(0, 0, 3), id.WithoutChecksum())
	assert.Equal(t, "0.0.3", id.String())

	out, err := AccountIDFromBytes(id.ToBytes())
	require.NoError(t, err)
	assert.Equal(t, NewAccountID(0, 0, 3), out)

	// account 0 still carries the oneof
	zero := NewAccountID(0, 0, 0)
	assert.True(t, zero.ToRecord().Has("accountNum"))
	assert.True(t, zero.IsZero())
}

func TestAccountIDAlias(t *testing.T) {
	alias := []byte{0x12, 0x20, 0xaa, 0xbb}
	id, err := AccountIDFromString("0.0.1220aabb")
	require.NoError(t, err)
	assert.Equal(t, alias, id.Alias())
	assert.False(t, id.IsEvmAddress())
	assert.Equal(t, "0.0.1220aabb", id.String())

	r := id.ToRecord()
	assert.Equal(t, "alias", r.WhichOneof("account"))

	out, err := AccountIDFromBytes(id.ToBytes())
	require.NoError(t, err)
	assert.Equal(t, id, out)

	_, err = id.ToStringWithChecksum(LedgerMainnet)
	assert.Error(t, err)
	assert.NoError(t, id.ValidateChecksum(LedgerMainnet))

	_, err = AccountIDFromString("0.0.1220aabb-abcde")
	assert.Error(t, err)
	_, err = AccountIDFromString("0.0.zz")
	assert.Error(t, err)
}

func TestAccountIDEvmAddress(t *testing.T) {
	const evm = "302a300506032b6570032100114e6abc371b82da"
	id, err := AccountIDFromString(evm)
	require.NoError(t, err)
	assert.True(t, id.IsEvmAddress())

	addr, err := id.ToSolidityAddress()
	require.NoError(t, err)
	assert.Equal(t, evm, addr)

	// long-zero addresses decode to numbered accounts
	long, err := AccountIDFromSolidityAddress("0x0000000000000000000000000000000000000004")
	require.NoError(t, err)
	assert.Equal(t, NewAccountID(0, 0, 4), long)

	fromEvm, err := AccountIDFromSolidityAddress(evm)
	require.NoError(t, err)
	assert.Equal(t, id, fromEvm)
}

func TestContractID(t *testing.T) {
	id, err := ContractIDFromString("0.0.123-vfmkw")
	require.NoError(t, err)
	assert.NoError(t, id.ValidateChecksum(LedgerMainnet))
	assert.True(t, id.Equal(NewContractID(0, 0, 123)))

	evm, err := ContractIDFromString("1.2.000000000000000000000000000000000000abcd")
	require.NoError(t, err)
	assert.Len(t, evm.EvmAddress(), SolidityAddressLen)
	assert.Equal(t, "1.2.000000000000000000000000000000000000abcd", evm.String())

	out, err := ContractIDFromBytes(evm.ToBytes())
	require.NoError(t, err)
	assert.Equal(t, evm, out)

	_, err = ContractIDFromString("0.0.abc")
	assert.Error(t, err)
}

func TestNftID(t *testing.T) {
	id, err := NftIDFromString("0.0.5/3")
	require.NoError(t, err)
	assert.Equal(t, NftID{TokenID: NewTokenID(0, 0, 5), Serial: 3}, id)
	assert.Equal(t, "0.0.5/3", id.String())

	at, err := NftIDFromString("3@0.0.5")
	require.NoError(t, err)
	assert.Equal(t, id, at)

	for _, s := range []string{"0.0.5", "0.0.5/x", "0.0.5/-1", "x/3"} {
		_, err := NftIDFromString(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestDecodeHooks(t *testing.T) {
	type book struct {
		Node   AccountID
		Ledger LedgerID
	}
	var out book
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(StringToAccountIDHookFunc(), StringToLedgerIDHookFunc()),
		Result:     &out,
	})
	require.NoError(t, err)
	require.NoError(t, dec.Decode(map[string]interface{}{"node": "0.0.7", "ledger": "previewnet"}))
	assert.Equal(t, NewAccountID(0, 0, 7), out.Node)
	assert.Equal(t, LedgerPreviewnet, out.Ledger)

	_, err = StringToAccountIDHookFunc()(reflect.TypeOf(""), reflect.TypeOf(AccountID{}), "bad")
	assert.Error(t, err)
}
