// Package vm implements the register machine of the Iridium system.
//
// The machine consists of a program counter (PC), thirty-two signed 32-bit
// registers (r0-r31), a remainder register written by division, and an
// equal flag written by comparisons and read by conditional jumps. Programs
// are flat byte streams: one opcode byte followed by its fixed-width
// operands, with 16-bit operands stored big-endian.
package vm
