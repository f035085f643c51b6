package vm

import (
	"iter"
	"strconv"
	"strings"
)

// REGISTER_COUNT is the size of the register file.
const REGISTER_COUNT = 32

// Opcode is the leading byte of an instruction.
type Opcode uint8

//go:generate go tool stringer -linecomment -type=Opcode
const (
	LOAD = Opcode(0)   // load
	ADD  = Opcode(1)   // add
	SUB  = Opcode(2)   // sub
	MUL  = Opcode(3)   // mul
	DIV  = Opcode(4)   // div
	HLT  = Opcode(5)   // hlt
	JMP  = Opcode(6)   // jmp
	JMPF = Opcode(7)   // jmpf
	JMPB = Opcode(8)   // jmpb
	EQ   = Opcode(9)   // eq
	JEQ  = Opcode(10)  // jeq
	JNEQ = Opcode(11)  // jneq
	NEQ  = Opcode(12)  // neq
	GT   = Opcode(13)  // gt
	LT   = Opcode(14)  // lt
	GTQ  = Opcode(15)  // gtq
	LTQ  = Opcode(16)  // ltq
	IGL  = Opcode(255) // igl
)

// Decode maps every byte to an opcode. Unknown bytes decode to IGL.
func Decode(code byte) (op Opcode) {
	op = Opcode(code)
	if !op.Valid() {
		op = IGL
	}
	return
}

// Valid returns true for the executable opcodes.
func (op Opcode) Valid() bool {
	return op <= LTQ
}

// Width returns the encoded size of the instruction in bytes, including
// the opcode byte. JEQ and JNEQ report their fall-through width.
func (op Opcode) Width() int {
	switch op {
	case JMP, JMPF, JMPB:
		return 2
	case LOAD, ADD, SUB, MUL, DIV, EQ, NEQ, GT, LT, GTQ, LTQ, JEQ, JNEQ:
		return 4
	}

	return 1
}

// Defines returns the opcode mnemonics as upper-case constants.
func Defines() iter.Seq2[string, int] {
	return func(yield func(name string, value int) bool) {
		for op := LOAD; op.Valid(); op++ {
			if !yield(strings.ToUpper(op.String()), int(op)) {
				return
			}
		}
	}
}

// RegisterDefines returns the register names R0 through R31 as constants.
func RegisterDefines() iter.Seq2[string, int] {
	return func(yield func(name string, value int) bool) {
		for n := range REGISTER_COUNT {
			if !yield(RegisterName(uint8(n)), n) {
				return
			}
		}
	}
}

// RegisterName returns the upper-case name of a register index.
func RegisterName(reg uint8) string {
	return "R" + strconv.Itoa(int(reg))
}

// MakeLoad encodes reg <- imm.
func MakeLoad(reg uint8, imm uint16) []byte {
	return []byte{byte(LOAD), reg, byte(imm >> 8), byte(imm)}
}

// MakeArith encodes dst <- reg1 (op) reg2 for ADD, SUB, MUL and DIV.
func MakeArith(op Opcode, reg1, reg2, dst uint8) []byte {
	return []byte{byte(op), reg1, reg2, dst}
}

// MakeHalt encodes HLT.
func MakeHalt() []byte {
	return []byte{byte(HLT)}
}

// MakeJump encodes JMP, JMPF or JMPB through a register.
func MakeJump(op Opcode, reg uint8) []byte {
	return []byte{byte(op), reg}
}

// MakeCompare encodes a comparison, including its unused trailing byte.
func MakeCompare(op Opcode, reg1, reg2 uint8) []byte {
	return []byte{byte(op), reg1, reg2, 0}
}

// MakeBranch encodes JEQ or JNEQ, including the two filler bytes skipped on
// fall-through.
func MakeBranch(op Opcode, reg uint8) []byte {
	return []byte{byte(op), reg, 0, 0}
}
