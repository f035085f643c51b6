package vm

import (
	"fmt"
	"iter"
)

// Instruction is a decoded instruction at a program address.
type Instruction struct {
	Pc       uint32 // Address of the opcode byte.
	Code     byte   // Raw opcode byte.
	Operands []byte // Operand bytes following the opcode, possibly short.
}

// Opcode returns the decoded opcode of the instruction.
func (ins Instruction) Opcode() Opcode {
	return Decode(ins.Code)
}

// Truncated returns true if the program ended inside the operands.
func (ins Instruction) Truncated() bool {
	return len(ins.Operands) < ins.Opcode().Width()-1
}

// String returns the mnemonic form of the instruction.
func (ins Instruction) String() (out string) {
	op := ins.Opcode()
	if ins.Truncated() {
		return fmt.Sprintf("%v % x (truncated)", op, ins.Operands)
	}

	reg := func(n int) string {
		return fmt.Sprintf("r%d", ins.Operands[n])
	}

	switch op {
	case LOAD:
		imm := uint16(ins.Operands[1])<<8 | uint16(ins.Operands[2])
		out = fmt.Sprintf("%v %v #%d", op, reg(0), imm)
	case ADD, SUB, MUL, DIV:
		out = fmt.Sprintf("%v %v %v %v", op, reg(0), reg(1), reg(2))
	case JMP, JMPF, JMPB, JEQ, JNEQ:
		out = fmt.Sprintf("%v %v", op, reg(0))
	case EQ, NEQ, GT, LT, GTQ, LTQ:
		out = fmt.Sprintf("%v %v %v", op, reg(0), reg(1))
	case IGL:
		out = fmt.Sprintf("%v 0x%02x", op, ins.Code)
	default:
		out = op.String()
	}

	return
}

// Fetch decodes the instruction at pc without executing it.
// ok is false when pc is past the end of the program.
func Fetch(program []byte, pc uint32) (ins Instruction, ok bool) {
	if uint64(pc) >= uint64(len(program)) {
		return
	}

	ins.Pc = pc
	ins.Code = program[pc]
	end := uint64(pc) + uint64(ins.Opcode().Width())
	if end > uint64(len(program)) {
		end = uint64(len(program))
	}
	ins.Operands = program[pc+1 : end]
	ok = true

	return
}

// Disassemble walks the program in straight-line order, yielding each
// instruction with its address.
func Disassemble(program []byte) iter.Seq2[uint32, Instruction] {
	return func(yield func(pc uint32, ins Instruction) bool) {
		var pc uint32
		for {
			ins, ok := Fetch(program, pc)
			if !ok {
				return
			}
			if !yield(pc, ins) {
				return
			}
			pc += uint32(ins.Opcode().Width())
		}
	}
}
