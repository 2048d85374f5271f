package cpu

import (
	"iter"

	"github.com/ezrec/nibble/internal"
)

// Segment is a run of instruction words placed at consecutive addresses.
type Segment struct {
	Addr  uint16
	Codes []Code
}

// Program is a memory image built from hand encoded segments.
type Program struct {
	Segments []Segment
}

// Add appends a segment at addr.
func (prog *Program) Add(addr uint16, codes ...Code) *Program {
	prog.Segments = append(prog.Segments, Segment{Addr: addr, Codes: codes})
	return prog
}

// All iterates over every (address, code) pair of the segment.
func (seg Segment) All() iter.Seq2[uint16, Code] {
	return func(yield func(addr uint16, code Code) bool) {
		for n, code := range seg.Codes {
			if !yield(seg.Addr+uint16(n*CODE_SIZE), code) {
				return
			}
		}
	}
}

// Codes iterates over every (address, code) pair of the program.
func (prog *Program) Codes() iter.Seq2[uint16, Code] {
	seqs := make([]iter.Seq2[uint16, Code], 0, len(prog.Segments))
	for _, seg := range prog.Segments {
		seqs = append(seqs, seg.All())
	}

	return internal.IterSeq2Concat(seqs...)
}

// Code returns the program word at addr, if any.
func (prog *Program) Code(addr uint16) (code Code, ok bool) {
	for at, c := range prog.Codes() {
		if at == addr {
			return c, true
		}
	}

	return
}

// LoadInto stores the program into the memory of cpu.
func (prog *Program) LoadInto(cpu *Cpu) (err error) {
	for addr, code := range prog.Codes() {
		err = cpu.Store(addr, code)
		if err != nil {
			return
		}
	}

	return
}
