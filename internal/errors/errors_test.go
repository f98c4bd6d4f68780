package errors_test

import (
	"errors"
	"testing"

	dnderr "github.com/KirkDiggler/duel-sim/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_KeepsCodeAndMeta(t *testing.T) {
	base := dnderr.InvalidArgumentf("damage cannot be negative: %d", -5).
		WithMeta("combatant", "Hero")

	wrapped := dnderr.Wrap(base, "attack failed")
	require.NotNil(t, wrapped)

	assert.True(t, dnderr.IsInvalidArgument(wrapped))
	assert.Equal(t, "Hero", dnderr.GetMeta(wrapped)["combatant"])
	assert.Equal(t, "attack failed: damage cannot be negative: -5", wrapped.Error())
	assert.ErrorIs(t, wrapped, base)

	// metadata is copied, not shared
	wrapped.WithMeta("round", 3)
	assert.NotContains(t, base.Meta, "round")
}

func TestWrap_PlainError(t *testing.T) {
	cause := errors.New("disk full")

	wrapped := dnderr.Wrapf(cause, "failed to write %s", "report.json")
	assert.Equal(t, dnderr.CodeUnknown, dnderr.GetCode(wrapped))
	assert.ErrorIs(t, wrapped, cause)

	coded := dnderr.WrapWithCode(cause, dnderr.CodeInternal, "storage")
	assert.Equal(t, dnderr.CodeInternal, dnderr.GetCode(coded))
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, dnderr.Wrap(nil, "ignored"))
	assert.Nil(t, dnderr.Wrapf(nil, "ignored %d", 1))
	assert.Nil(t, dnderr.WrapWithCode(nil, dnderr.CodeInternal, "ignored"))
}

func TestCodeChecks(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{name: "invalid argument", err: dnderr.InvalidArgument("bad"), check: dnderr.IsInvalidArgument},
		{name: "failed precondition", err: dnderr.FailedPrecondition("unarmed"), check: dnderr.IsFailedPrecondition},
		{name: "not found", err: dnderr.NotFoundf("outcome %s", "x"), check: dnderr.IsNotFound},
		{name: "already exists", err: dnderr.AlreadyExistsf("outcome %s", "x"), check: dnderr.IsAlreadyExists},
		{name: "validation", err: dnderr.Validation("runs"), check: dnderr.IsValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
			assert.False(t, tt.check(errors.New("plain")))
		})
	}

	assert.Equal(t, dnderr.CodeUnknown, dnderr.GetCode(errors.New("plain")))
	assert.Nil(t, dnderr.GetMeta(errors.New("plain")))
}
