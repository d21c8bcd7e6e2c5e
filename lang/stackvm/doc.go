/*
Package stackvm implements a small stack machine together with its assembly
language.

Programs consist of one instruction per line:

	PUSH n     push number n
	POP        drop the top of stack
	PEEK       print the top of stack to the machine's output
	ADD, SUB, MUL, DIV
	           replace the two topmost values by their sum, difference, …
	EQ         replace the two topmost values by 1 if they are equal, else 0
	JMP a      continue at address a
	BR a       pop a value and continue at address a if it is non-zero
	STORE i    pop a value into local slot i
	LOAD i     push the value of local slot i
	CALL a     push a new memory frame and continue at address a
	RET        pop the memory frame and return behind the CALL
	HLT        stop the machine

Addresses are either instruction indexes or names of labels. A label is
declared by a name followed by a colon and denotes the address of the
instruction following it. Text after a semicolon is a comment.

	loop:
	    LOAD 0
	    PUSH 1
	    ADD
	    STORE 0
	    JMP loop    ; forever

Source text is split into instructions by package lexer. Assemble resolves
labels and strips label markers from the instruction sequence. Label markers
are not executable: a machine running into one stops with ErrUnreachableToken.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stackvm

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexa.vm'.
func tracer() tracing.Trace {
	return tracing.Select("lexa.vm")
}

// Errors reported by the assembler and the machine.
var (
	ErrUnreachableToken = errors.New("label marker is not executable")
	ErrStackUnderflow   = errors.New("stack underflow")
	ErrUnknownLabel     = errors.New("unknown label")
	ErrDuplicateLabel   = errors.New("label already declared")
	ErrUndefinedLocal   = errors.New("local slot never stored to")
	ErrReturnOutsideSub = errors.New("return outside of sub-routine")
	ErrStepLimit        = errors.New("step limit exceeded")
)
