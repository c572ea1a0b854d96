/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeString(t *testing.T) {
	assert.Equal(t, "OK", OK.String())
	assert.Equal(t, "PLATFORM_TRANSACTION_NOT_CREATED", PlatformTransactionNotCreated.String())
	assert.Equal(t, "ACCOUNT_IS_TREASURY", AccountIsTreasury.String())
	assert.Equal(t, "9999", Code(9999).String())
}

func TestWireValues(t *testing.T) {
	assert.EqualValues(t, 12, Busy)
	assert.EqualValues(t, 22, Success)
	assert.EqualValues(t, 67, PlatformNotActive)
	assert.EqualValues(t, 69, PlatformTransactionNotCreated)
	assert.EqualValues(t, 150, InvalidTopicID)
	assert.EqualValues(t, 167, InvalidTokenID)
}

func TestFromName(t *testing.T) {
	c, ok := FromName("RECEIPT_NOT_FOUND")
	assert.True(t, ok)
	assert.Equal(t, ReceiptNotFound, c)

	_, ok = FromName("NOT_A_CODE")
	assert.False(t, ok)
}
