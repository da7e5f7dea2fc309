// Package xassert extends the testify assert package with additional test helpers.
package xassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Equal asserts that two objects are equal.
// This variant is type safe.
func Equal[T any](t *testing.T, want, got T) {
	t.Helper()
	assert.Equal(t, want, got)
}

// EqualFloat32 asserts that got is almost equal to want.
func EqualFloat32(t *testing.T, want, got, delta float32) {
	t.Helper()
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	assert.True(t, diff <= delta, "%f is not almost equal to %f (+/- %f)", got, want, delta)
}

// Between asserts that lo <= got <= hi.
func Between(t *testing.T, lo, hi, got float32) {
	t.Helper()
	assert.True(t, got >= lo && got <= hi, "%f is not within [%f, %f]", got, lo, hi)
}
