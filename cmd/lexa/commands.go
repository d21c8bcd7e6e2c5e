package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/lexa/lang/stackvm"
	"github.com/npillmayer/lexa/lexer"
	"github.com/npillmayer/lexa/lexer/lexmach"
	"github.com/npillmayer/lexa/runtime"
	"github.com/pterm/pterm"
	"golang.org/x/exp/slices"
)

// --- tokens ----------------------------------------------------------------

type tokensCmd struct {
	langOptions
	File string `arg:"" type:"existingfile" help:"Input file"`
}

func (cmd *tokensCmd) Run() error {
	tokenize, name, err := cmd.tokenizer()
	if err != nil {
		return err
	}
	input, err := os.ReadFile(cmd.File)
	if err != nil {
		return err
	}
	tracer().Infof("Tokenizing %s with rule set %s", cmd.File, name)
	rows, err := tokenize(string(input))
	printTokens(rows)
	return err
}

// --- repl ------------------------------------------------------------------

type replCmd struct {
	langOptions
}

// Run starts interactive mode. Every line entered is tokenized on its own.
func (cmd *replCmd) Run() error {
	tokenize, name, err := cmd.tokenizer()
	if err != nil {
		return err
	}
	repl, err := readline.New(name + "> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	pterm.Info.Println("Welcome to the lexa REPL") // colored welcome message
	tracer().Infof("Quit with <ctrl>D")         // inform user how to stop the CLI
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		rows, err := tokenize(line)
		printTokens(rows)
		if err != nil {
			printLexicalError(err)
		}
	}
	println("Good bye!")
	return nil
}

// --- run -------------------------------------------------------------------

type runCmd struct {
	File   string `arg:"" type:"existingfile" help:"Assembler program"`
	Steps  int    `default:"0" help:"Stop after this many instructions (0 = no limit)"`
	Engine string `default:"regexp" enum:"regexp,lexmachine" help:"Pattern engine"`
	Labels bool   `help:"Print the label table"`
}

func (cmd *runCmd) Run() error {
	source, err := os.ReadFile(cmd.File)
	if err != nil {
		return err
	}
	var opts []lexer.RuleSetOption
	if cmd.Engine == "lexmachine" {
		opts = append(opts, lexer.WithMatcher(lexmach.Compile))
	}
	rules, err := lexer.NewRuleSet("stackvm", stackvm.Rules(), opts...)
	if err != nil {
		return err
	}
	prog, err := stackvm.AssembleSource(rules, string(source))
	if err != nil {
		return err
	}
	tracer().Infof("Assembled %d instructions", len(prog.Code))
	if cmd.Labels {
		printLabels(prog)
	}
	m := stackvm.NewMachine(prog, stackvm.Output(os.Stdout), stackvm.StepLimit(cmd.Steps))
	err = m.Run()
	pterm.Info.Println(fmt.Sprintf("%d steps, stack = %v", m.Steps(), m.Stack()))
	return err
}

func printLabels(prog *stackvm.Program) {
	type label struct {
		name string
		addr int
	}
	var labels []label
	prog.Labels.Each(func(name string, tag *runtime.Tag) {
		if addr, ok := tag.UData.(int); ok {
			labels = append(labels, label{name, addr})
		}
	})
	slices.SortFunc(labels, func(a, b label) int {
		return a.addr - b.addr
	})
	data := pterm.TableData{{"Address", "Label"}}
	for _, l := range labels {
		data = append(data, []string{fmt.Sprint(l.addr), l.name})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
