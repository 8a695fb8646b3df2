package asm

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// evalScript does compile-time $( ... ) evaluations. Every bound label and
// system symbol is predeclared, along with PC, the statement address.
func (asm *Assembler) evalScript(script string, pc uint16) (value uint16, err error) {
	defer func() {
		if err != nil {
			err = ErrExpression{Script: script, Err: err}
		}
	}()

	thread := starlark.Thread{Name: "asm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for name, addr := range asm.Label {
		pred[name] = starlark.MakeInt(int(addr))
	}
	pred["PC"] = starlark.MakeInt(int(pc))

	prog := "rc=" + script + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrNotInteger
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrNotInteger
		return
	}

	value = uint16(st_int64)

	return
}
