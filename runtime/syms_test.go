package runtime

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewSymTab(t *testing.T) {
	symtab := NewSymbolTable()
	if symtab == nil {
		t.Error("no symbol table created")
	}
}

func TestNewSymbol(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineTag("new-sym")
	if sym == nil {
		t.Error("no symbol created for table")
	}
	sym.UData = 5
	if sym.UData != 5 || !sym.IsDefined() {
		t.Errorf("UData does not work")
	}
}

func TestTwoSymbolsDistinctId(t *testing.T) {
	symtab := NewSymbolTable()
	sym1, _ := symtab.DefineTag("new-sym1")
	sym2, _ := symtab.DefineTag("new-sym2")
	if sym1 == sym2 {
		t.Error("2 symbols with equal name")
	}
}

func TestResolveTag(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineTag("new-sym")
	if s := symtab.ResolveTag(sym.Name()); s == nil {
		t.Error("cannot find stored symbol in table")
	}
}

func TestResolveOrDefineTag(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineTag("new-sym")
	if _, found := symtab.ResolveOrDefineTag(sym.Name()); !found {
		t.Error("cannot find stored symbol in table")
	}
	if tag, found := symtab.ResolveOrDefineTag("forward"); found || tag.IsDefined() {
		t.Error("expected forward reference to create an undefined tag")
	}
}

func TestDefineTag(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineTag("new-sym")
	if _, old := symtab.DefineTag("new-sym"); old != sym {
		t.Error("symbol should have been replaced")
	}
}

func TestEachIsOrdered(t *testing.T) {
	symtab := NewSymbolTable()
	for _, name := range []string{"loop", "end", "start"} {
		symtab.DefineTag(name)
	}
	var names []string
	symtab.Each(func(name string, _ *Tag) {
		names = append(names, name)
	})
	if len(names) != 3 || names[0] != "end" || names[1] != "loop" || names[2] != "start" {
		t.Errorf("expected tags in alphabetical order, have %v", names)
	}
}

func TestMemoryFrames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexa.vm")
	defer teardown()
	//
	rt := NewRuntimeEnvironment()
	rt.MemFrameStack.Globals().Store(0, 1.5)
	mf := rt.MemFrameStack.PushNewMemoryFrame("sub", 7)
	if rt.MemFrameStack.Depth() != 2 || rt.MemFrameStack.Current() != mf {
		t.Fatalf("expected new frame to be TOS at depth 2")
	}
	if _, ok := mf.Load(0); ok {
		t.Errorf("expected locals of a new frame to be empty")
	}
	mf.Store(0, 42)
	popped := rt.MemFrameStack.PopMemoryFrame()
	if popped.ReturnAddress != 7 {
		t.Errorf("expected return address 7, is %d", popped.ReturnAddress)
	}
	if v, ok := rt.MemFrameStack.Current().Load(0); !ok || v != 1.5 {
		t.Errorf("expected global slot 0 to be 1.5, is %v", v)
	}
	if !rt.MemFrameStack.Current().IsRoot() {
		t.Errorf("expected global frame to be root")
	}
}
