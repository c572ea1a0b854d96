/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package multi

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	e1 := fmt.Errorf("bad checksum for 0.0.3")
	e2 := fmt.Errorf("bad checksum for 0.0.4")

	assert.Nil(t, New())
	assert.Nil(t, New(nil, nil))
	assert.Equal(t, e1, New(nil, e1))
	assert.Equal(t, Errors{e1, e2}, New(e1, nil, e2))
}

func TestAppendFlattens(t *testing.T) {
	e1 := fmt.Errorf("one")
	e2 := fmt.Errorf("two")
	e3 := fmt.Errorf("three")

	assert.Nil(t, Append(nil, nil))
	assert.Equal(t, e1, Append(nil, e1))
	assert.Equal(t, e1, Append(e1, nil))

	err := Append(e1, e2)
	assert.Equal(t, Errors{e1, e2}, err)

	err = Append(err, Errors{e3})
	assert.Equal(t, Errors{e1, e2, e3}, err)

	err = Append(Errors{e1}, Errors{e2, e3})
	assert.Equal(t, Errors{e1, e2, e3}, err)
}

func TestErrorString(t *testing.T) {
	var errs Errors
	assert.Equal(t, "", errs.Error())

	errs = Errors{fmt.Errorf("a")}
	assert.Equal(t, "a", errs.Error())

	errs = append(errs, fmt.Errorf("b"))
	assert.Equal(t, "2 errors occurred: [1] a [2] b", errs.Error())
}

func TestToError(t *testing.T) {
	e := fmt.Errorf("a")
	var errs Errors
	assert.NoError(t, errs.ToError())

	errs = append(errs, e)
	assert.Equal(t, e, errs.ToError())

	errs = append(errs, e)
	assert.Equal(t, errs, errs.ToError())
}

func TestUnwrap(t *testing.T) {
	target := errors.New("target")
	err := New(fmt.Errorf("other"), fmt.Errorf("wrapped: %w", target))
	require.Error(t, err)
	assert.True(t, errors.Is(err, target))
	assert.False(t, errors.Is(New(fmt.Errorf("a"), fmt.Errorf("b")), target))
}
