// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package vm

import (
	"errors"
	"fmt"
	"log"
	"math"
)

// Vm is the simulation context of the Iridium register machine.
type Vm struct {
	Verbose bool // Set to enable verbose logging.

	Register  [REGISTER_COUNT]int32 // Register bank.
	Program   []byte                // Loaded program.
	Pc        uint32                // Address of the next byte to decode.
	Remainder uint32                // Remainder of the last DIV.
	Equal     bool                  // Result of the last comparison.

	halted bool
	err    error
}

// NewVm creates a new machine with zeroed state and an empty program.
func NewVm() (vm *Vm) {
	vm = &Vm{}

	return
}

// Load replaces the program and clears the halted state.
// The PC is not changed; call Reset first to run from address 0.
func (vm *Vm) Load(program []byte) {
	vm.Program = program
	vm.halted = false
	vm.err = nil
}

// Reset the machine state.
// - Clears the registers, remainder and equal flag.
// - Sets the PC to 0.
// - Clears the halted state.
// The loaded program is kept.
func (vm *Vm) Reset() {
	if vm.Verbose {
		log.Printf("vm: reset")
	}

	clear(vm.Register[:])
	vm.Pc = 0
	vm.Remainder = 0
	vm.Equal = false
	vm.halted = false
	vm.err = nil
}

// Halted returns true once the machine has stopped.
func (vm *Vm) Halted() bool {
	return vm.halted
}

// Err returns the fault that halted the machine, or nil if the machine is
// running or stopped cleanly (HLT or end of program).
func (vm *Vm) Err() error {
	return vm.err
}

// Run steps the machine until it halts.
func (vm *Vm) Run() {
	for !vm.Step() {
	}
}

// Step executes a single instruction, and returns true if the machine
// has halted. Once halted, Step does not change any state.
func (vm *Vm) Step() (halted bool) {
	if vm.halted {
		return true
	}

	done, err := vm.execute()
	if err != nil {
		vm.err = err
		done = true
		if vm.Verbose {
			log.Printf("vm: halt: %v", err)
		}
	}

	vm.halted = done

	return done
}

// execute decodes and executes the instruction at the PC.
func (vm *Vm) execute() (done bool, err error) {
	pc := vm.Pc

	if vm.atEnd() {
		if vm.Verbose {
			log.Printf("vm: %04x: end of program", pc)
		}
		done = true
		return
	}

	if vm.Verbose {
		ins, _ := Fetch(vm.Program, pc)
		log.Printf("vm: %04x: %v", pc, ins)
	}

	code, _ := vm.next8()
	op := Decode(code)

	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode{Pc: pc, Code: code}, err)
		}
	}()

	switch op {
	case LOAD:
		var dst *int32
		var imm uint16
		dst, err = vm.nextRegister()
		if err != nil {
			return
		}
		imm, err = vm.next16()
		if err != nil {
			return
		}
		*dst = int32(imm)
	case ADD, SUB, MUL, DIV:
		var a, b, dst *int32
		a, err = vm.nextRegister()
		if err != nil {
			return
		}
		b, err = vm.nextRegister()
		if err != nil {
			return
		}
		dst, err = vm.nextRegister()
		if err != nil {
			return
		}
		x, y := *a, *b
		switch op {
		case ADD:
			*dst = x + y
		case SUB:
			*dst = x - y
		case MUL:
			*dst = x * y
		case DIV:
			if y == 0 {
				err = ErrDivideByZero
				return
			}
			*dst = x / y
			vm.Remainder = uint32(x % y)
		}
	case HLT:
		done = true
	case JMP, JMPF, JMPB:
		var reg *int32
		reg, err = vm.nextRegister()
		if err != nil {
			return
		}
		// Relative jumps are based on the address of the next instruction.
		target := int64(*reg)
		switch op {
		case JMPF:
			target = int64(vm.Pc) + target
		case JMPB:
			target = int64(vm.Pc) - target
		}
		err = vm.jump(target)
	case EQ, NEQ, GT, LT, GTQ, LTQ:
		var a, b *int32
		a, err = vm.nextRegister()
		if err != nil {
			return
		}
		b, err = vm.nextRegister()
		if err != nil {
			return
		}
		// Unused
		_, err = vm.next8()
		if err != nil {
			return
		}
		x, y := *a, *b
		switch op {
		case EQ:
			vm.Equal = x == y
		case NEQ:
			vm.Equal = x != y
		case GT:
			vm.Equal = x > y
		case LT:
			vm.Equal = x < y
		case GTQ:
			vm.Equal = x >= y
		case LTQ:
			vm.Equal = x <= y
		}
	case JEQ, JNEQ:
		var reg *int32
		reg, err = vm.nextRegister()
		if err != nil {
			return
		}
		taken := vm.Equal
		if op == JNEQ {
			taken = !taken
		}
		if taken {
			// The filler is never read when the jump is taken.
			err = vm.jump(int64(*reg))
			return
		}
		_, err = vm.next16()
	default:
		err = ErrIllegalOpcode
	}

	return
}

// atEnd returns true if the PC is at or past the end of the program.
func (vm *Vm) atEnd() bool {
	return uint64(vm.Pc) >= uint64(len(vm.Program))
}

// next8 consumes one byte from the program.
func (vm *Vm) next8() (value byte, err error) {
	if vm.atEnd() {
		err = ErrProgramTruncated
		return
	}

	value = vm.Program[vm.Pc]
	vm.Pc++

	return
}

// next16 consumes a big-endian 16-bit operand from the program.
func (vm *Vm) next16() (value uint16, err error) {
	hi, err := vm.next8()
	if err != nil {
		return
	}
	lo, err := vm.next8()
	if err != nil {
		return
	}

	value = (uint16(hi) << 8) | uint16(lo)

	return
}

// nextRegister consumes a register index operand and returns its register.
func (vm *Vm) nextRegister() (reg *int32, err error) {
	index, err := vm.next8()
	if err != nil {
		return
	}
	if int(index) >= len(vm.Register) {
		err = ErrRegisterInvalid
		return
	}

	reg = &vm.Register[index]

	return
}

// jump sets the PC. Targets past the end of the program are permitted, and
// stop the machine on the next step.
func (vm *Vm) jump(target int64) (err error) {
	if target < 0 || target > math.MaxUint32 {
		err = ErrJumpTarget
		return
	}

	vm.Pc = uint32(target)

	return
}

// String returns the current machine state as a string.
func (vm *Vm) String() (text string) {
	text += fmt.Sprintf("% 9s: %04X_%04X\n", "pc", vm.Pc>>16, vm.Pc&0xffff)
	text += fmt.Sprintf("% 9s: %v\n", "equal", vm.Equal)
	text += fmt.Sprintf("% 9s: %04X_%04X\n", "remainder", vm.Remainder>>16, vm.Remainder&0xffff)
	for n, reg := range vm.Register {
		val := uint32(reg)
		text += fmt.Sprintf("% 9s: %04X_%04X %d\n", fmt.Sprintf("r%d", n), val>>16, val&0xffff, reg)
	}

	return
}
