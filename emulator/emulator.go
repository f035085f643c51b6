// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"log"

	"github.com/ezrec/iridium/vm"
)

// Emulator state. The register machine plus execution statistics.
type Emulator struct {
	Verbose bool // If set, enables verbose logging.
	*vm.Vm       // Reference to the machine simulation.

	Ticks int // Instructions executed since the last Load.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Vm: vm.NewVm(),
	}

	return
}

// Load resets the machine and installs a program to run from address 0.
func (emu *Emulator) Load(program []byte) {
	emu.Vm.Verbose = emu.Verbose

	emu.Vm.Reset()
	emu.Vm.Load(program)
	emu.Ticks = 0

	if emu.Verbose {
		log.Printf("emulator: loaded %v bytes", len(program))
	}
}

// Tick performs a single instruction of the emulator.
// done is set once the machine has halted; err is set if it halted on a fault.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set machine verbosity
	emu.Vm.Verbose = emu.Verbose

	if emu.Vm.Halted() {
		done = true
		return
	}

	pc := emu.Vm.Pc
	inside := uint64(pc) < uint64(len(emu.Vm.Program))

	done = emu.Vm.Step()
	if inside {
		emu.Ticks++
	}

	err = emu.Vm.Err()
	if err != nil {
		err = &ErrRuntime{Pc: pc, Err: err}
	}

	return
}

// Run ticks the emulator until the machine halts.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	if emu.Verbose {
		log.Printf("emulator: halted after %v ticks", emu.Ticks)
	}

	return
}

// String returns the machine state and statistics.
func (emu *Emulator) String() string {
	return emu.Vm.String() + fmt.Sprintf("% 9s: %d\n", "ticks", emu.Ticks)
}
