package stackvm

import (
	"bytes"
	"errors"
	"testing"

	"github.com/d4l3k/messagediff"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const countToTen = `
    PUSH 0
    STORE 0
loop:
    LOAD 0
    PUSH 1
    ADD
    STORE 0     ; x = x + 1
    LOAD 0
    PUSH 10
    EQ
    BR end
    JMP loop
end:
    LOAD 0
    PEEK
    HLT
`

const square = `
    PUSH 3
    CALL square
    PEEK
    HLT
square:
    STORE 0
    LOAD 0
    LOAD 0
    MUL
    RET
`

func run(t *testing.T, source string) (*Machine, string, error) {
	t.Helper()
	prog, err := AssembleSource(RuleSet(), source)
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	m := NewMachine(prog, Output(&out), StepLimit(1000))
	err = m.Run()
	return m, out.String(), err
}

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexa.vm")
	defer teardown()
	//
	code, err := Parse(RuleSet(), "PUSH -5\nstart:\nJMP start ; again\nBR 3\nLOAD 2\nPUSH 2.5")
	if err != nil {
		t.Fatal(err)
	}
	expected := []Instruction{
		{Op: Push, Value: -5},
		{Op: Label, Target: "start"},
		{Op: Jmp, Target: "start"},
		{Op: Branch, Arg: 3},
		{Op: Load, Arg: 2},
		{Op: Push, Value: 2.5},
	}
	if diff, equal := messagediff.PrettyDiff(expected, code); !equal {
		t.Errorf("unexpected instructions:\n%s", diff)
	}
}

func TestArithmetic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexa.vm")
	defer teardown()
	//
	for i, test := range []struct {
		source string
		top    float64
	}{
		{"PUSH 2\nPUSH 3\nADD", 5},
		{"PUSH 2\nPUSH 3\nSUB", -1},
		{"PUSH 2\nPUSH 3\nMUL", 6},
		{"PUSH 3\nPUSH 2\nDIV", 1.5},
		{"PUSH 3\nPUSH 3\nEQ", 1},
		{"PUSH 3\nPUSH 4\nEQ", 0},
		{"PUSH 1\nPUSH 7\nPOP", 1},
	} {
		m, _, err := run(t, test.source)
		if err != nil {
			t.Fatalf("test %d: %v", i, err)
		}
		if top, ok := m.Top(); !ok || top != test.top {
			t.Errorf("test %d: expected top of stack to be %g, is %g", i, test.top, top)
		}
	}
}

func TestLoopWithLabels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexa.vm")
	defer teardown()
	//
	prog, err := AssembleSource(RuleSet(), countToTen)
	if err != nil {
		t.Fatal(err)
	}
	if a, ok := prog.Address("loop"); !ok || a != 2 {
		t.Errorf("expected label 'loop' at address 2, is %d", a)
	}
	if a, ok := prog.Address("end"); !ok || a != 11 {
		t.Errorf("expected label 'end' at address 11, is %d", a)
	}
	if len(prog.Code) != 14 {
		t.Errorf("expected label markers to be stripped, have %d instructions", len(prog.Code))
	}
	m, out, err := run(t, countToTen)
	if err != nil {
		t.Fatal(err)
	}
	if out != "10\n" {
		t.Errorf("expected PEEK to print 10, have %q", out)
	}
	if !m.Halted() {
		t.Errorf("expected machine to be halted")
	}
}

func TestCallReturn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexa.vm")
	defer teardown()
	//
	m, out, err := run(t, square)
	if err != nil {
		t.Fatal(err)
	}
	if out != "9\n" {
		t.Errorf("expected PEEK to print 9, have %q", out)
	}
	if m.Depth() != 1 {
		t.Errorf("expected only global frame to remain, have %d frames", m.Depth())
	}
	if _, ok := m.Local(0); ok {
		t.Errorf("expected local of sub-routine not to leak into global frame")
	}
}

func TestMachineErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexa.vm")
	defer teardown()
	//
	for i, test := range []struct {
		source string
		err    error
	}{
		{"POP", ErrStackUnderflow},
		{"PUSH 1\nADD", ErrStackUnderflow},
		{"LOAD 4", ErrUndefinedLocal},
		{"RET", ErrReturnOutsideSub},
		{"loop:\nJMP loop", ErrStepLimit},
	} {
		_, _, err := run(t, test.source)
		if !errors.Is(err, test.err) {
			t.Errorf("test %d: expected error %v, have %v", i, test.err, err)
		}
	}
}

func TestAssemblerErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexa.vm")
	defer teardown()
	//
	if _, err := AssembleSource(RuleSet(), "JMP nowhere"); !errors.Is(err, ErrUnknownLabel) {
		t.Errorf("expected ErrUnknownLabel, have %v", err)
	}
	if _, err := AssembleSource(RuleSet(), "a:\nPOP\na:\nPOP"); !errors.Is(err, ErrDuplicateLabel) {
		t.Errorf("expected ErrDuplicateLabel, have %v", err)
	}
	if _, err := AssembleSource(RuleSet(), "PUSH 1\nFOO"); err == nil {
		t.Errorf("expected lexical error for unknown mnemonic")
	}
}

func TestUnreachableToken(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexa.vm")
	defer teardown()
	//
	code, err := Parse(RuleSet(), "PUSH 1\nmarker:\nPOP")
	if err != nil {
		t.Fatal(err)
	}
	m := NewMachine(&Program{Code: code})
	err = m.Run()
	if !errors.Is(err, ErrUnreachableToken) {
		t.Fatalf("expected ErrUnreachableToken, have %v", err)
	}
	if m.IP() != 1 || m.Steps() != 2 {
		t.Errorf("expected machine to stop at marker, ip=%d, steps=%d", m.IP(), m.Steps())
	}
}
