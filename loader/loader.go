// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package loader produces flat byte programs for the Iridium machine from
// raw binary streams, or from Starlark byte-list expressions.
package loader

import (
	"errors"
	"io"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/iridium/internal"
	"github.com/ezrec/iridium/vm"
)

// Read loads a raw binary program.
func Read(input io.Reader) (program []byte, err error) {
	program, err = io.ReadAll(input)
	return
}

// Eval evaluates a Starlark expression into a program.
//
// The expression must produce a list, tuple or bytes value. Nested lists and
// tuples are flattened in order. Opcode mnemonics (LOAD, ADD, ..., LTQ) and
// register names (R0 through R31) are predeclared, so
//
//	[LOAD, R0, 500 >> 8, 500 & 0xff, HLT]
//
// loads 500 into r0 and halts.
func Eval(expr string) (program []byte, err error) {
	thread := starlark.Thread{Name: "loader"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, value := range internal.IterSeq2Concat(vm.Defines(), vm.RegisterDefines()) {
		pred[key] = starlark.MakeInt(value)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "program", prog, pred)
	if err != nil {
		err = errors.Join(ErrExpression(expr), err)
		return
	}
	rc, ok := dict["rc"]
	if !ok {
		err = ErrExpression(expr)
		return
	}

	switch rc.(type) {
	case starlark.String:
		err = ErrNotList(rc.Type())
		return
	case starlark.Indexable:
	default:
		err = ErrNotList(rc.Type())
		return
	}

	program, err = flatten([]byte{}, rc)
	if err != nil {
		program = nil
	}

	return
}

// flatten appends the bytes of a Starlark value to program.
func flatten(program []byte, value starlark.Value) ([]byte, error) {
	switch val := value.(type) {
	case starlark.Int:
		n, ok := val.Int64()
		if !ok || n < 0 || n > 0xff {
			return program, ErrByteRange(val.String())
		}
		program = append(program, byte(n))
	case starlark.Bytes:
		program = append(program, []byte(string(val))...)
	case starlark.String:
		return program, ErrNotList(val.Type())
	case starlark.Indexable:
		var err error
		for n := range val.Len() {
			program, err = flatten(program, val.Index(n))
			if err != nil {
				return program, err
			}
		}
	default:
		return program, ErrByteRange(value.String())
	}

	return program, nil
}
