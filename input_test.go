package hellotext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/hellotext"
)

func TestInputEscape(t *testing.T) {
	in := hellotext.NewInputState()
	assert.False(t, in.QuitRequested())

	in.SetKey(hellotext.KeyEscape, true)
	assert.True(t, in.KeyDown(hellotext.KeyEscape))
	assert.True(t, in.QuitRequested())

	in.SetKey(hellotext.KeyEscape, false)
	assert.False(t, in.KeyDown(hellotext.KeyEscape))
	assert.False(t, in.QuitRequested())
}

func TestInputOutOfRange(t *testing.T) {
	in := hellotext.NewInputState()
	in.SetKey(hellotext.KeyCount, true)
	in.SetKey(-1, true)
	assert.False(t, in.KeyDown(hellotext.KeyCount))
	assert.False(t, in.KeyDown(-1))
	assert.False(t, in.QuitRequested())
}
