package runtime

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Symbol table for labels. Tags are the entries of the table.
//

// --- Tags -------------------------------------------------------

// Tag is the symbols type to be stored into symbol tables. It may be a
// little surprising this type is not called 'Symbol', but I prefer the
// name 'Tag' because it is less confusing when dealing with lexical rules:
// Rules consist of symbols, too. Thus, symbols are used in the scope of the
// rules, tags are used during runtime (of the client program).
//
type Tag struct {
	name  string
	Typ   int8
	UData interface{} // user data, e.g. a label's address
}

// Pre-defined tag types, if you want to use them.
const (
	Undefined int8 = iota
	IntegerType
	FloatType
	StringType
	BooleanType
	LabelType
)

// NewTag creates a new tag.
func NewTag(nm string) *Tag {
	var tag = &Tag{
		name: nm,
	}
	return tag
}

// WithType sets the initial type of a tag. Use as
//
//    tag := NewTag("myTag").WithType(FloatType)
//
func (s *Tag) WithType(t int8) *Tag {
	s.Typ = t
	return s
}

// String is a debug Stringer for symbols.
func (s *Tag) String() string {
	return fmt.Sprintf("<tag '%s':%d>", s.Name(), s.Typ)
}

// Name gets the tag's name.
func (s *Tag) Name() string {
	return s.name
}

// IsDefined is true if the tag carries user data.
func (s *Tag) IsDefined() bool {
	return s.UData != nil
}

// === Symbol Tables =========================================================

// SymbolTable is a symbol table to store tags (map-like semantics).
type SymbolTable struct {
	Table     map[string]*Tag
	createTag func(string) *Tag
}

// NewSymbolTable creates an empty symbol table.
//
func NewSymbolTable() *SymbolTable {
	var symtab = SymbolTable{
		Table:     make(map[string]*Tag),
		createTag: NewTag,
	}
	return &symtab
}

// ResolveTag checks for a tag in the symbol table.
// Returns a tag or nil.
//
func (t *SymbolTable) ResolveTag(tagname string) *Tag {
	return t.Table[tagname]
}

// ResolveOrDefineTag finds
// a tag in the table, inserts a new one if not found.
// Creates non-existent tags on the fly.
// Returns the tag and a flag, signalling wether the tag
// has already been present.
//
func (t *SymbolTable) ResolveOrDefineTag(tagname string) (*Tag, bool) {
	if len(tagname) == 0 {
		return nil, false
	}
	found := true
	tag := t.ResolveTag(tagname)
	if tag == nil { // if not already there, insert it
		tag, _ = t.DefineTag(tagname)
		found = false
	}
	return tag, found
}

// DefineTag defines
// a new tag in the table, replacing a previously defined one.
// Returns the new tag and the previously stored tag under this key, if any.
//
func (t *SymbolTable) DefineTag(tagname string) (*Tag, *Tag) {
	if len(tagname) == 0 {
		return nil, nil
	}
	old := t.ResolveTag(tagname)
	tag := t.createTag(tagname)
	t.Table[tagname] = tag
	return tag, old
}

// Size counts the tags in a symbol table.
func (t *SymbolTable) Size() int {
	return len(t.Table)
}

// Each iterates over each tag in the table, in alphabetical order of names,
// executing a mapper function.
func (t *SymbolTable) Each(mapper func(string, *Tag)) {
	names := make([]string, 0, len(t.Table))
	for k := range t.Table {
		names = append(names, k)
	}
	slices.Sort(names)
	for _, k := range names {
		mapper(k, t.Table[k])
	}
}
