package automata

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

const dotHeader = `digraph {
graph [rankdir=LR, splines=true, fontname=Helvetica, fontsize=10];
node [shape=circle, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`

// WriteDot exports the DFA to the Graphviz Dot format.
func (d *DFA[S, T]) WriteDot(w io.Writer) error {
	var b bytes.Buffer
	b.WriteString(dotHeader)
	for i, label := range d.states.labels {
		writeDotNode(&b, Handle(i), label, d.start == Handle(i), d.accept.Contains(Handle(i)))
	}
	d.trans.Each(func(from, col int, to int32) {
		fmt.Fprintf(&b, "s%03d -> s%03d [label=%s]\n", from, to, dotQuote(d.alphabet.syms[col]))
	})
	b.WriteString("}\n")
	_, err := w.Write(b.Bytes())
	return err
}

// WriteDot exports the NFA to the Graphviz Dot format. Epsilon transitions are
// drawn dashed.
func (n *NFA[S, T]) WriteDot(w io.Writer) error {
	var b bytes.Buffer
	b.WriteString(dotHeader)
	for i, label := range n.states.labels {
		writeDotNode(&b, Handle(i), label, n.start == Handle(i), n.accept.Contains(Handle(i)))
	}
	for from := range n.states.labels {
		for col := 0; col < n.alphabet.size(); col++ {
			n.moves[from][col].Each(func(to Handle) {
				fmt.Fprintf(&b, "s%03d -> s%03d [label=%s]\n", from, to, dotQuote(n.alphabet.syms[col]))
			})
		}
		n.eps[from].Each(func(to Handle) {
			fmt.Fprintf(&b, "s%03d -> s%03d [label=\"ε\", style=dashed]\n", from, to)
		})
	}
	b.WriteString("}\n")
	_, err := w.Write(b.Bytes())
	return err
}

func writeDotNode(b *bytes.Buffer, h Handle, label interface{}, start, accept bool) {
	shape := "circle"
	if accept {
		shape = "doublecircle"
	}
	color := "white"
	if start {
		color = "lightgray"
	}
	fmt.Fprintf(b, "s%03d [shape=%s, fillcolor=%s, label=%s]\n", h, shape, color, dotQuote(label))
}

func dotQuote(x interface{}) string {
	if r, ok := x.(rune); ok {
		return strconv.Quote(string(r))
	}
	return strconv.Quote(fmt.Sprint(x))
}
