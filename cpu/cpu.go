// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"log"
	"strings"
)

const (
	REGISTER_COUNT = 16   // General purpose registers.
	REGISTER_FLAG  = 0xf  // Carry flag register, written by add.
	MEMORY_SIZE    = 4096 // Bytes of addressable memory.
)

// CpuState is the run state of the processor.
type CpuState int

//go:generate go tool stringer -linecomment -type=CpuState
const (
	STATE_RUNNING = CpuState(0) // running
	STATE_HALTED  = CpuState(1) // halted
	STATE_FAULTED = CpuState(2) // faulted
)

// Cpu is the simulation context for the processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Register [REGISTER_COUNT]uint8 // Register bank.
	Memory   [MEMORY_SIZE]uint8    // Program and data memory.
	Pc       uint16                // Address of the next instruction.
	Stack    Stack                 // Return address stack.
	State    CpuState              // Current run state.

	Ticks int // Instructions executed.
}

// NewCpu creates a new CPU with all state zeroed.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%5s: %03X\n", "pc", cpu.Pc)
	fmt.Fprintf(&sb, "%5s: %v\n", "state", cpu.State)
	for n, val := range cpu.Register {
		fmt.Fprintf(&sb, "%5s: %02X\n", fmt.Sprintf("r%x", n), val)
	}

	strval := "---"
	if val, ok := cpu.Stack.Peek(); ok {
		strval = fmt.Sprintf("%03X", val)
	}
	fmt.Fprintf(&sb, "%5s: %v (%v)\n", "stack", strval, cpu.Stack.Depth())

	return sb.String()
}

// Reset the CPU state.
// - Clears the registers, memory, and stack.
// - Zeros the program counter and tick counter.
// - Returns the CPU to the running state.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	clear(cpu.Memory[:])
	cpu.Stack.Reset()
	cpu.Pc = 0
	cpu.State = STATE_RUNNING
	cpu.Ticks = 0
}

// Load copies data into memory starting at addr.
func (cpu *Cpu) Load(addr uint16, data ...byte) (err error) {
	end := int(addr) + len(data)
	if end > len(cpu.Memory) {
		err = ErrMemory(end - 1)
		return
	}

	copy(cpu.Memory[addr:end], data)
	return
}

// Store writes an instruction word, big-endian, at addr.
func (cpu *Cpu) Store(addr uint16, code Code) (err error) {
	return cpu.Load(addr, byte(code>>8), byte(code))
}

// FetchCode reads the instruction word at the program counter.
func (cpu *Cpu) FetchCode() (code Code, err error) {
	p := int(cpu.Pc)
	if p+1 >= len(cpu.Memory) {
		err = ErrMemory(cpu.Pc)
		return
	}

	code = Code(uint16(cpu.Memory[p])<<8 | uint16(cpu.Memory[p+1]))
	return
}

// Tick executes a single CPU instruction cycle.
// Returns ErrHalt when a halt instruction is reached.
func (cpu *Cpu) Tick() (err error) {
	if cpu.State != STATE_RUNNING {
		err = ErrNotRunning
		return
	}

	defer func() {
		switch {
		case errors.Is(err, ErrHalt):
			cpu.State = STATE_HALTED
			if cpu.Verbose {
				log.Printf("cpu: halted at %03x", cpu.Pc)
			}
		case err != nil:
			cpu.State = STATE_FAULTED
			if cpu.Verbose {
				log.Printf("cpu: fault %v", err)
			}
		}
	}()

	code, err := cpu.FetchCode()
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("%03x: %v", cpu.Pc, code)
	}

	cpu.Pc += CODE_SIZE

	err = cpu.Execute(code)
	return
}

// Run executes instructions until a halt, or until a fault occurs.
func (cpu *Cpu) Run() (err error) {
	for {
		err = cpu.Tick()
		if errors.Is(err, ErrHalt) {
			return nil
		}
		if err != nil {
			return
		}
	}
}

// Execute executes a single decoded instruction.
// The program counter must already point past the instruction.
func (cpu *Cpu) Execute(code Code) (err error) {
	defer func() {
		if err != nil && err != ErrHalt {
			err = errors.Join(ErrOpcode(code), err)
		}
	}()

	_, x, y, _ := code.Decode()

	switch code.Op() {
	case OP_HALT:
		err = ErrHalt
		return
	case OP_RETURN:
		addr, ok := cpu.Stack.Pop()
		if !ok {
			err = ErrStackEmpty
			return
		}
		cpu.Pc = addr
	case OP_CALL:
		if !cpu.Stack.Push(cpu.Pc) {
			err = ErrStackFull
			return
		}
		cpu.Pc = code.Nnn()
	case OP_ADD:
		cpu.Register[x], cpu.Register[REGISTER_FLAG] = cpu.doAdd(cpu.Register[x], cpu.Register[y])
	default:
		err = ErrOpcodeInvalid
		return
	}

	cpu.Ticks += 1

	return
}

// doAdd performs a wrapping 8-bit add, returning the sum and carry flag.
func (cpu *Cpu) doAdd(a, b uint8) (sum uint8, carry uint8) {
	total := uint16(a) + uint16(b)
	sum = uint8(total)
	if total > 0xff {
		carry = 1
	}
	return
}
