package vm

import (
	"errors"

	"github.com/ezrec/iridium/translate"
)

var f = translate.From

var (
	// Execution errors
	ErrIllegalOpcode    = errors.New(f("illegal opcode"))
	ErrRegisterInvalid  = errors.New(f("register invalid"))
	ErrDivideByZero     = errors.New(f("divide by zero"))
	ErrJumpTarget       = errors.New(f("jump target invalid"))
	ErrProgramTruncated = errors.New(f("program truncated"))
)

// ErrOpcode locates the instruction that halted the machine.
type ErrOpcode struct {
	Pc   uint32 // Address of the opcode byte.
	Code byte   // Raw opcode byte.
}

func (eo ErrOpcode) Error() string {
	return f("pc 0x%04x opcode 0x%02x %v", eo.Pc, eo.Code, Decode(eo.Code).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}
