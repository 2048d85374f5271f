// Package cpu implements the execution core of the nibble byte-code processor.
//
// The CPU consists of a 12-bit program counter (pc), sixteen 8-bit
// general-purpose registers (r0-rf, with rf doubling as the carry flag),
// 4096 bytes of memory, and a sixteen entry call stack of return addresses.
//
// Instructions are 16-bit big-endian words, decoded as four nibbles
// (class, x, y, d). The low three nibbles form a 12-bit address (nnn)
// for instructions that transfer control.
package cpu
