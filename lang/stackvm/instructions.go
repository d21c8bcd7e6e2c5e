package stackvm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/lexa/lexer"
)

// Opcode is the operation of an instruction.
type Opcode int8

// Opcodes of the stack machine. Label is a marker for the assembler, not an
// executable operation.
const (
	Illegal Opcode = iota
	Push
	Pop
	Peek
	Add
	Sub
	Mul
	Div
	Jmp
	Branch
	Equals
	Store
	Load
	Call
	Ret
	Halt
	Label
)

var opcodeNames = [...]string{
	"ILLEGAL", "PUSH", "POP", "PEEK", "ADD", "SUB", "MUL", "DIV",
	"JMP", "BR", "EQ", "STORE", "LOAD", "CALL", "RET", "HLT", "LABEL",
}

func (op Opcode) String() string {
	if op < 0 || int(op) >= len(opcodeNames) {
		return fmt.Sprintf("Opcode(%d)", int(op))
	}
	return opcodeNames[op]
}

// hasAddress is true for opcodes with a jump target.
func (op Opcode) hasAddress() bool {
	return op == Jmp || op == Branch || op == Call
}

// Instruction is a single instruction of a stack machine program.
type Instruction struct {
	Op     Opcode
	Value  float64 // operand of PUSH
	Arg    int     // address for JMP, BR and CALL; slot for STORE and LOAD
	Target string  // symbolic address, or name of a label marker
}

func (instr Instruction) String() string {
	switch instr.Op {
	case Push:
		return fmt.Sprintf("PUSH %g", instr.Value)
	case Jmp, Branch, Call:
		if instr.Target != "" {
			return fmt.Sprintf("%s %s", instr.Op, instr.Target)
		}
		return fmt.Sprintf("%s %d", instr.Op, instr.Arg)
	case Store, Load:
		return fmt.Sprintf("%s %d", instr.Op, instr.Arg)
	case Label:
		return instr.Target + ":"
	}
	return instr.Op.String()
}

const identifier = `[A-Za-z_][A-Za-z0-9_]*`

// operand returns the text behind the mnemonic of an instruction.
func operand(lexeme string) string {
	_, arg, _ := strings.Cut(lexeme, " ")
	return strings.TrimSpace(arg)
}

func op(code Opcode) lexer.Action[Instruction] {
	return lexer.Const(Instruction{Op: code})
}

func withAddress(code Opcode) lexer.Action[Instruction] {
	return lexer.DeriveErr(func(lexeme string) (Instruction, error) {
		arg := operand(lexeme)
		if arg[0] < '0' || arg[0] > '9' {
			return Instruction{Op: code, Target: arg}, nil
		}
		n, err := strconv.Atoi(arg)
		return Instruction{Op: code, Arg: n}, err
	})
}

func withSlot(code Opcode) lexer.Action[Instruction] {
	return lexer.DeriveErr(func(lexeme string) (Instruction, error) {
		n, err := strconv.Atoi(operand(lexeme))
		return Instruction{Op: code, Arg: n}, err
	})
}

// Rules returns the lexical rules of the assembly language. Every call returns
// a fresh slice.
func Rules() []lexer.Rule[Instruction] {
	address := ` +([0-9]+|` + identifier + `)`
	return []lexer.Rule[Instruction]{
		{Name: "PUSH", Pattern: `PUSH +-?(0|[1-9][0-9]*)(\.[0-9]+)?`,
			Action: lexer.DeriveErr(func(lexeme string) (Instruction, error) {
				v, err := strconv.ParseFloat(operand(lexeme), 64)
				return Instruction{Op: Push, Value: v}, err
			})},
		{Name: "POP", Pattern: `POP`, Action: op(Pop)},
		{Name: "PEEK", Pattern: `PEEK`, Action: op(Peek)},
		{Name: "ADD", Pattern: `ADD`, Action: op(Add)},
		{Name: "SUB", Pattern: `SUB`, Action: op(Sub)},
		{Name: "MUL", Pattern: `MUL`, Action: op(Mul)},
		{Name: "DIV", Pattern: `DIV`, Action: op(Div)},
		{Name: "JMP", Pattern: `JMP` + address, Action: withAddress(Jmp)},
		{Name: "BR", Pattern: `BR` + address, Action: withAddress(Branch)},
		{Name: "EQ", Pattern: `EQ`, Action: op(Equals)},
		{Name: "STORE", Pattern: `STORE +[0-9]+`, Action: withSlot(Store)},
		{Name: "LOAD", Pattern: `LOAD +[0-9]+`, Action: withSlot(Load)},
		{Name: "CALL", Pattern: `CALL` + address, Action: withAddress(Call)},
		{Name: "RET", Pattern: `RET`, Action: op(Ret)},
		{Name: "HLT", Pattern: `HLT`, Action: op(Halt)},
		{Name: "label", Pattern: identifier + `:`, Action: lexer.Map(func(lexeme string) Instruction {
			return Instruction{Op: Label, Target: strings.TrimSuffix(lexeme, ":")}
		})},
		{Name: "comment", Pattern: `;[^\n]*`, Action: lexer.Skip[Instruction]()},
		{Name: "whitespace", Pattern: `\s+`, Action: lexer.Skip[Instruction]()},
	}
}

// RuleSet compiles the rules of the assembly language into a rule set.
// Clients should create it once and share it between tokenizers.
func RuleSet(opts ...lexer.RuleSetOption) *lexer.RuleSet[Instruction] {
	return lexer.MustRuleSet("stackvm", Rules(), opts...)
}

// Parse splits source text into instructions, including label markers.
func Parse(rules *lexer.RuleSet[Instruction], source string) ([]Instruction, error) {
	tokens, err := lexer.Tokenize(rules, source, lexer.KeepLexemes(false))
	if err != nil {
		return nil, err
	}
	code := make([]Instruction, len(tokens))
	for i, tok := range tokens {
		code[i] = tok.Value
	}
	return code, nil
}
