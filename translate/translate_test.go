package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.NotNil(Printer())
	assert.Same(Printer(), Printer())

	assert.Equal("stack full", From("stack full"))
	assert.Equal("bad opcode 0x8015", From("bad opcode 0x%04x", uint16(0x8015)))
}
