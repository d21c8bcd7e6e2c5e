/*
Package runtime implements the runtime environment of the stack machine
interpreter, consisting of a label table and memory frames.

For a thorough discussion of an interpreter's runtime environment, refer to
"Language Implementation Patterns" by Terence Parr.

Label Table

Assembler programs may name instruction addresses by labels. Labels are stored
as tags in a symbol table, with the address as the tag's user data. Tags are
created on first reference, which allows for forward references.

Memory Frames

This module implements a stack of memory frames.
Memory frames are used by an interpreter to allocate local storage
for active sub-routines. Each frame remembers the address to return to.


----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software or the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package runtime

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexa.vm'.
func tracer() tracing.Trace {
	return tracing.Select("lexa.vm")
}

// Runtime is a type implementing a runtime environment for an interpreter
type Runtime struct {
	Labels        *SymbolTable      // label tags, resolved to addresses
	MemFrameStack *MemoryFrameStack // runtime stack of memory frames
	UData         interface{}       // extension point
}

// NewRuntimeEnvironment constructs
// a new runtime environment, initialized with an empty label table and a
// global memory frame.
//
func NewRuntimeEnvironment() *Runtime {
	rt := &Runtime{}
	rt.Labels = NewSymbolTable()
	rt.MemFrameStack = new(MemoryFrameStack)               // initialize memory frame stack
	rt.MemFrameStack.PushNewMemoryFrame("global", NoReturn) // global memory
	return rt
}

// Reset drops all frames except the global one and clears global memory.
// Labels are kept.
func (rt *Runtime) Reset() {
	rt.MemFrameStack = new(MemoryFrameStack)
	rt.MemFrameStack.PushNewMemoryFrame("global", NoReturn)
}
