package must

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBef(t *testing.T) {
	assert.Panics(t, func() {
		Bef(false, "false")
	})

	assert.NotPanics(t, func() {
		Bef(true, "true")
	})
}

func TestNotBef(t *testing.T) {
	assert.Panics(t, func() {
		NotBef(true, "true")
	})

	assert.NotPanics(t, func() {
		NotBef(false, "false")
	})
}

func TestBeEqualf(t *testing.T) {
	assert.PanicsWithError(t, "1 != 2\nwant a == b\na = 1\nb = 2", func() {
		BeEqualf(1, 2, "1 != 2")
	})

	assert.NotPanics(t, func() {
		BeEqualf(1, 1, "1 == 1")
	})
}

func TestNotBeBlankf(t *testing.T) {
	assert.Panics(t, func() {
		NotBeBlankf(" \t", "blank")
	})

	assert.NotPanics(t, func() {
		NotBeBlankf("foo", "not blank")
	})
}

func TestNotBeEmptyf(t *testing.T) {
	assert.Panics(t, func() {
		NotBeEmptyf([]int{}, "empty")
	})

	assert.NotPanics(t, func() {
		NotBeEmptyf([]int{1}, "not empty")
	})
}

func TestFailf(t *testing.T) {
	assert.PanicsWithError(t, "unknown kind: 42", func() {
		Failf("unknown kind: %d", 42)
	})
}
