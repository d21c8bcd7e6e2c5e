package runtime

import (
	"fmt"
)

// This module implements a stack of memory frames.
// Memory frames are used by an interpreter to allocate local storage
// for active sub-routines.

// NoReturn is the return address of frames which cannot be returned from,
// i.e. the global frame.
const NoReturn = -1

// DynamicMemoryFrame is a memory frame, representing a piece of memory for a
// sub-routine call. Local storage is organized in numbered slots.
type DynamicMemoryFrame struct {
	Name          string
	ReturnAddress int // instruction address to continue at after return
	Parent        *DynamicMemoryFrame
	locals        map[int]float64
}

// NewDynamicMemoryFrame creates a new memory frame.
func NewDynamicMemoryFrame(nm string, returnAddress int) *DynamicMemoryFrame {
	mf := &DynamicMemoryFrame{
		Name:          nm,
		ReturnAddress: returnAddress,
		locals:        make(map[int]float64),
	}
	return mf
}

func (mf *DynamicMemoryFrame) String() string {
	return fmt.Sprintf("<mem %s -> %d>", mf.Name, mf.ReturnAddress)
}

// IsRoot is a predicate: Is this a root frame?
func (mf *DynamicMemoryFrame) IsRoot() bool {
	return (mf.Parent == nil)
}

// Store puts a value into local slot i.
func (mf *DynamicMemoryFrame) Store(i int, v float64) {
	mf.locals[i] = v
}

// Load gets the value of local slot i. The flag is false if the slot has never
// been stored to.
func (mf *DynamicMemoryFrame) Load(i int) (float64, bool) {
	v, ok := mf.locals[i]
	return v, ok
}

// Slots returns the number of local slots in use.
func (mf *DynamicMemoryFrame) Slots() int {
	return len(mf.locals)
}

// ---------------------------------------------------------------------------

// MemoryFrameStack is a (call-)stack of memory frames.
type MemoryFrameStack struct {
	memoryFrameBase *DynamicMemoryFrame
	memoryFrameTOS  *DynamicMemoryFrame
	depth           int
}

// Current gets the current memory frame of a stack (TOS).
func (mfst *MemoryFrameStack) Current() *DynamicMemoryFrame {
	if mfst.memoryFrameTOS == nil {
		panic("attempt to access memory frame from empty stack")
	}
	return mfst.memoryFrameTOS
}

// Globals gets the outermost memory frame, containing global symbols.
func (mfst *MemoryFrameStack) Globals() *DynamicMemoryFrame {
	if mfst.memoryFrameBase == nil {
		panic("attempt to access global memory frame from empty stack")
	}
	return mfst.memoryFrameBase
}

// Depth returns the number of frames on the stack.
func (mfst *MemoryFrameStack) Depth() int {
	return mfst.depth
}

// PushNewMemoryFrame pushes a new memory frame as TOS.
// A frame is constructed, having the recent TOS as its
// parent. The first frame pushed is the global frame.
//
func (mfst *MemoryFrameStack) PushNewMemoryFrame(nm string, returnAddress int) *DynamicMemoryFrame {
	mfp := mfst.memoryFrameTOS
	newmf := NewDynamicMemoryFrame(nm, returnAddress)
	newmf.Parent = mfp
	if mfp == nil { // the new frame is the global frame
		mfst.memoryFrameBase = newmf // make new mf anchor
	}
	mfst.memoryFrameTOS = newmf // new frame now TOS
	mfst.depth++
	tracer().P("mem", newmf.Name).Debugf("pushing new memory frame")
	return newmf
}

// PopMemoryFrame pops the top-most memory frame. Returns the popped frame.
func (mfst *MemoryFrameStack) PopMemoryFrame() *DynamicMemoryFrame {
	if mfst.memoryFrameTOS == nil {
		panic("attempt to pop memory frame from empty call stack")
	}
	mf := mfst.memoryFrameTOS
	tracer().Debugf("popping memory frame [%s]", mf.Name)
	mfst.memoryFrameTOS = mfst.memoryFrameTOS.Parent
	mfst.depth--
	return mf
}
