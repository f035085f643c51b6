package emulator

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/iridium/vm"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Vm)
	assert.Equal(0, emu.Ticks)
}

func doRunSingle(emu *Emulator, program []byte, t *testing.T) {
	assert := assert.New(t)

	emu.Load(program)

	for pc, ins := range vm.Disassemble(program) {
		if ins.Opcode() == vm.HLT {
			break
		}
		assert.Equal(pc, emu.Vm.Pc, ins.String())
		done, err := emu.Tick()
		assert.NoError(err, ins.String())
		if err != nil {
			t.Log(emu.String())
			t.Fatalf("%v", err)
		}
		assert.False(done, ins.String())
	}

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
}

func TestEmulatorRegisters(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	program := slices.Concat(
		vm.MakeLoad(0, 0x10),
		vm.MakeLoad(1, 0x20),
		vm.MakeArith(vm.ADD, 0, 1, 2),
		vm.MakeArith(vm.ADD, 2, 0, 3),
		vm.MakeArith(vm.MUL, 0, 1, 4),
		vm.MakeArith(vm.SUB, 0, 1, 5),
		vm.MakeHalt(),
	)

	doRunSingle(emu, program, t)

	assert.Equal(int32(0x10), emu.Vm.Register[0])
	assert.Equal(int32(0x20), emu.Vm.Register[1])
	assert.Equal(int32(0x30), emu.Vm.Register[2])
	assert.Equal(int32(0x40), emu.Vm.Register[3])
	assert.Equal(int32(0x200), emu.Vm.Register[4])
	assert.Equal(int32(-0x10), emu.Vm.Register[5])
	assert.Equal(7, emu.Ticks)
}

func TestEmulatorCompare(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	program := slices.Concat(
		vm.MakeLoad(0, 3),
		vm.MakeLoad(1, 3),
		vm.MakeCompare(vm.GTQ, 0, 1),
		vm.MakeHalt(),
	)

	doRunSingle(emu, program, t)

	assert.True(emu.Vm.Equal)
	assert.Equal(uint32(13), emu.Vm.Pc)
}

func TestEmulatorRun(t *testing.T) {
	assert := assert.New(t)

	// Count r0 down from 5 with a backward jump.
	program := slices.Concat(
		vm.MakeLoad(0, 5),             // 0: counter
		vm.MakeLoad(1, 1),             // 4: decrement
		vm.MakeLoad(4, 30),            // 8: exit address
		vm.MakeLoad(2, 14),            // 12: distance from 30 back to 16
		vm.MakeArith(vm.SUB, 0, 1, 0), // 16: r0--
		vm.MakeCompare(vm.GT, 0, 3),   // 20: r0 > 0?
		vm.MakeBranch(vm.JNEQ, 4),     // 24: exit when done
		vm.MakeJump(vm.JMPB, 2),       // 28: loop
		vm.MakeHalt(),                 // 30
	)

	emu := NewEmulator()
	emu.Load(program)
	err := emu.Run()

	assert.NoError(err)
	assert.True(emu.Vm.Halted())
	assert.Equal(int32(0), emu.Vm.Register[0])
	assert.Equal(uint32(31), emu.Vm.Pc)
	assert.Equal(4+4*4+3+1, emu.Ticks)
}

func TestEmulatorFault(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Load(slices.Concat(vm.MakeLoad(0, 1), vm.MakeArith(vm.DIV, 0, 1, 2), vm.MakeHalt()))

	err := emu.Run()
	assert.Error(err)

	var runtime *ErrRuntime
	assert.True(errors.As(err, &runtime))
	assert.Equal(uint32(4), runtime.Pc)
	assert.True(errors.Is(err, vm.ErrDivideByZero))
	assert.Equal(2, emu.Ticks)

	// Halted stays halted, without further faults.
	done, err := emu.Tick()
	assert.True(done)
	assert.NoError(err)
	assert.Equal(2, emu.Ticks)
}

func TestEmulatorIllegal(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Load([]byte{200, 0, 0, 0})

	done, err := emu.Tick()
	assert.True(done)
	assert.True(errors.Is(err, vm.ErrIllegalOpcode))
	assert.Equal(uint32(1), emu.Vm.Pc)
}

func TestEmulatorLoad(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Load(slices.Concat(vm.MakeLoad(3, 9), vm.MakeCompare(vm.EQ, 0, 0)))
	assert.NoError(emu.Run())
	assert.Equal(2, emu.Ticks)
	assert.True(emu.Vm.Equal)

	// Load restarts from a clean machine.
	emu.Load(vm.MakeHalt())
	assert.Equal(uint32(0), emu.Vm.Pc)
	assert.Equal(int32(0), emu.Vm.Register[3])
	assert.False(emu.Vm.Equal)
	assert.Equal(0, emu.Ticks)

	assert.NoError(emu.Run())
	assert.Equal(1, emu.Ticks)
	assert.Equal(uint32(1), emu.Vm.Pc)
}

func TestEmulatorString(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Load(vm.MakeHalt())
	assert.NoError(emu.Run())

	text := emu.String()
	assert.True(strings.HasSuffix(text, "    ticks: 1\n"), text)
	assert.Contains(text, "       pc: 0000_0001\n")
}
