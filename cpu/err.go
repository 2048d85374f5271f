package cpu

import (
	"errors"

	"github.com/ezrec/nibble/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalt       = errors.New(f("halt"))
	ErrNotRunning = errors.New(f("cpu not running"))
	ErrAddress    = errors.New(f("address out of range"))
	ErrStackEmpty = errors.New(f("stack empty"))
	ErrStackFull  = errors.New(f("stack full"))

	// Instruction decode errors
	ErrOpcodeInvalid = errors.New(f("opcode invalid"))
)

// ErrOpcode identifies the instruction word that faulted.
type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%04x %v", uint16(eo), Code(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrMemory is an out of range memory access.
type ErrMemory uint16

func (em ErrMemory) Error() string {
	return f("memory access at 0x%04x", uint16(em))
}

func (em ErrMemory) Unwrap() error {
	return ErrAddress
}
