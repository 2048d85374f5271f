package cpu

import (
	"fmt"
)

const (
	CODE_SIZE = 2 // Bytes per instruction word.
)

// CodeOp is a decoded instruction operation.
type CodeOp int

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_INVALID = CodeOp(0) // invalid
	OP_HALT    = CodeOp(1) // halt
	OP_RETURN  = CodeOp(2) // ret
	OP_CALL    = CodeOp(3) // call
	OP_ADD     = CodeOp(4) // add
)

// Opcode classes, from the high nibble of the instruction word.
const (
	CLASS_SYS  = 0x0 // halt, ret
	CLASS_CALL = 0x2 // call nnn
	CLASS_ALU  = 0x8 // register arithmetic
)

// ALU operations, from the low nibble of a CLASS_ALU word.
const (
	ALU_ADD = 0x4
)

// Code is a single instruction word.
type Code uint16

// MakeCodeHalt creates the program terminating instruction.
func MakeCodeHalt() Code {
	return Code(0x0000)
}

// MakeCodeReturn creates a return-from-subroutine instruction.
func MakeCodeReturn() Code {
	return Code(0x00EE)
}

// MakeCodeCall creates a subroutine call to a 12-bit address.
func MakeCodeCall(nnn uint16) Code {
	return Code(uint16(CLASS_CALL)<<12 | (nnn & 0xfff))
}

// MakeCodeAdd creates an 'rx += ry' instruction.
func MakeCodeAdd(x, y uint8) Code {
	return Code(uint16(CLASS_ALU)<<12 | uint16(x&0xf)<<8 | uint16(y&0xf)<<4 | ALU_ADD)
}

// Decode splits the word into its four nibbles, most significant first.
func (code Code) Decode() (c, x, y, d uint8) {
	word := uint16(code)
	c = uint8((word >> 12) & 0xf)
	x = uint8((word >> 8) & 0xf)
	y = uint8((word >> 4) & 0xf)
	d = uint8((word >> 0) & 0xf)
	return
}

// Nnn returns the 12-bit address operand.
func (code Code) Nnn() uint16 {
	return uint16(code) & 0xfff
}

// Op returns the operation selected by the nibble pattern of the word.
func (code Code) Op() CodeOp {
	c, x, y, d := code.Decode()

	switch {
	case c == CLASS_SYS && x == 0 && y == 0 && d == 0:
		return OP_HALT
	case c == CLASS_SYS && x == 0 && y == 0xe && d == 0xe:
		return OP_RETURN
	case c == CLASS_CALL:
		return OP_CALL
	case c == CLASS_ALU && d == ALU_ADD:
		return OP_ADD
	}

	return OP_INVALID
}

// String returns the mnemonic form of this instruction.
func (code Code) String() (out string) {
	_, x, y, _ := code.Decode()

	op := code.Op()
	switch op {
	case OP_HALT, OP_RETURN:
		out = op.String()
	case OP_CALL:
		out = fmt.Sprintf("%v 0x%03x", op, code.Nnn())
	case OP_ADD:
		out = fmt.Sprintf("%v r%x, r%x", op, x, y)
	default:
		out = fmt.Sprintf(".word 0x%04x", uint16(code))
	}

	return
}
