package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeDecode(t *testing.T) {
	assert := assert.New(t)

	c, x, y, d := Code(0x8014).Decode()
	assert.Equal(uint8(8), c)
	assert.Equal(uint8(0), x)
	assert.Equal(uint8(1), y)
	assert.Equal(uint8(4), d)
	assert.Equal(uint16(0x014), Code(0x8014).Nnn())

	c, x, y, d = Code(0xabcd).Decode()
	assert.Equal([]uint8{0xa, 0xb, 0xc, 0xd}, []uint8{c, x, y, d})
	assert.Equal(uint16(0xbcd), Code(0xabcd).Nnn())
}

func TestCodeOp(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		code Code
		op   CodeOp
		text string
	}){
		{0x0000, OP_HALT, "halt"},
		{0x00EE, OP_RETURN, "ret"},
		{0x2100, OP_CALL, "call 0x100"},
		{0x2fff, OP_CALL, "call 0xfff"},
		{0x8014, OP_ADD, "add r0, r1"},
		{0x8fe4, OP_ADD, "add rf, re"},
		{0x00E0, OP_INVALID, ".word 0x00e0"},
		{0x01EE, OP_INVALID, ".word 0x01ee"},
		{0x0001, OP_INVALID, ".word 0x0001"},
		{0x8015, OP_INVALID, ".word 0x8015"},
		{0x1234, OP_INVALID, ".word 0x1234"},
		{0xffff, OP_INVALID, ".word 0xffff"},
	}

	for _, entry := range table {
		assert.Equal(entry.op, entry.code.Op(), entry.text)
		assert.Equal(entry.text, entry.code.String())
	}
}

func TestCodeMake(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Code(0x0000), MakeCodeHalt())
	assert.Equal(Code(0x00EE), MakeCodeReturn())
	assert.Equal(Code(0x2100), MakeCodeCall(0x100))
	assert.Equal(Code(0x2234), MakeCodeCall(0x1234))
	assert.Equal(Code(0x8014), MakeCodeAdd(0, 1))
	assert.Equal(Code(0x8fe4), MakeCodeAdd(0xf, 0xe))
}

func TestCodeOpString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("add", OP_ADD.String())
	assert.Equal("CodeOp(9)", CodeOp(9).String())
	assert.Equal("faulted", STATE_FAULTED.String())
}
