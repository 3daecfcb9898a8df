package rop_test

import (
	"testing"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/maybe"
	"github.com/ib-77/railway/pkg/rop/result"
	"github.com/stretchr/testify/assert"
)

func TestHasPayload(t *testing.T) {
	t.Parallel()

	assert.True(t, rop.HasPayload(maybe.WithValue(0)))
	assert.False(t, rop.HasPayload(maybe.None[int]()))
	assert.False(t, rop.HasPayload(maybe.NotFound[int]("x")))
	assert.True(t, rop.HasPayload(result.Okay[int, string](1)))
	assert.False(t, rop.HasPayload(result.Error[int]("e")))
	assert.False(t, rop.HasPayload(1))
	assert.False(t, rop.HasPayload(nil))
}
