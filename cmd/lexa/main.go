package main

import (
	"net/http"
	"os"

	"github.com/alecthomas/kong"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/pterm/pterm"
)

// CLI holds the global flags and sub-commands.
type CLI struct {
	Trace       string `default:"Info" enum:"Debug,Info,Error" help:"Trace level [Debug|Info|Error]"`
	MetricsAddr string `name:"metrics-addr" placeholder:"ADDR" help:"Serve Prometheus metrics on this address"`

	Tokens tokensCmd `cmd:"" help:"Tokenize a file and print the tokens"`
	Repl   replCmd   `cmd:"" help:"Tokenize lines entered interactively"`
	Run    runCmd    `cmd:"" help:"Assemble and run a stack machine program"`
}

// traceKeys are the tracers of this module.
var traceKeys = []string{"lexa.automata", "lexa.lexer", "lexa.vm", "lexa.cli"}

// AfterApply sets up tracing and metrics before a command runs.
func (cli *CLI) AfterApply() error {
	gtrace.SyntaxTracer = gologadapter.New()
	level := tracing.TraceLevelFromString(cli.Trace)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	tracer().Infof("Trace level is %s", cli.Trace)
	if cli.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		go func() {
			if err := http.ListenAndServe(cli.MetricsAddr, mux); err != nil {
				tracer().Errorf("metrics endpoint: %v", err)
			}
		}()
		tracer().Infof("Serving metrics at http://%s/metrics", cli.MetricsAddr)
	}
	return nil
}

func main() {
	initDisplay()
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("lexa"),
		kong.Description("Rule based tokenizer and stack machine"),
		kong.UsageOnError(),
	)
	if err := ctx.Run(&cli); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
