package stackvm

import (
	"fmt"

	"github.com/npillmayer/lexa/lexer"
	"github.com/npillmayer/lexa/runtime"
)

// Program is an assembled program: instructions without label markers and
// with all symbolic addresses resolved.
type Program struct {
	Code   []Instruction
	Labels *runtime.SymbolTable // label name -> address (as tag user data)
}

// Assemble resolves labels of an instruction sequence. Label markers are
// removed; symbolic addresses of JMP, BR and CALL are replaced by the address
// of the instruction following the label declaration. Labels may be used
// before they are declared.
func Assemble(code []Instruction) (*Program, error) {
	prog := &Program{
		Code:   make([]Instruction, 0, len(code)),
		Labels: runtime.NewSymbolTable(),
	}
	for _, instr := range code {
		if instr.Op != Label {
			prog.Code = append(prog.Code, instr)
			continue
		}
		tag, _ := prog.Labels.ResolveOrDefineTag(instr.Target)
		if tag.IsDefined() {
			return nil, fmt.Errorf("stackvm: %w: %s", ErrDuplicateLabel, instr.Target)
		}
		tag.WithType(runtime.LabelType).UData = len(prog.Code)
		tracer().Debugf("label %s = %d", instr.Target, len(prog.Code))
	}
	for i, instr := range prog.Code {
		if !instr.Op.hasAddress() || instr.Target == "" {
			continue
		}
		tag := prog.Labels.ResolveTag(instr.Target)
		if tag == nil || !tag.IsDefined() {
			return nil, fmt.Errorf("stackvm: instruction %d (%s): %w: %s", i, instr, ErrUnknownLabel, instr.Target)
		}
		prog.Code[i].Arg = tag.UData.(int)
		prog.Code[i].Target = ""
	}
	return prog, nil
}

// AssembleSource parses and assembles source text.
func AssembleSource(rules *lexer.RuleSet[Instruction], source string) (*Program, error) {
	code, err := Parse(rules, source)
	if err != nil {
		return nil, err
	}
	return Assemble(code)
}

// Address returns the address of a label.
func (p *Program) Address(label string) (int, bool) {
	if p.Labels == nil {
		return 0, false
	}
	if tag := p.Labels.ResolveTag(label); tag != nil && tag.IsDefined() {
		return tag.UData.(int), true
	}
	return 0, false
}
