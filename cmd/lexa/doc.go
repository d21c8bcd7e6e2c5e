/*
Command lexa tokenizes input text with rule sets and runs stack machine
programs.

	lexa tokens FILE [--lang expr|stackvm | --rules SPEC.yaml] [--engine regexp|lexmachine]
	lexa repl [--lang … | --rules …]
	lexa run PROGRAM.asm [--steps N]

Global flags are --trace LEVEL (Debug, Info or Error) and --metrics-addr ADDR,
which serves Prometheus metrics at ADDR/metrics while the command runs.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexa.cli'.
func tracer() tracing.Trace {
	return tracing.Select("lexa.cli")
}
