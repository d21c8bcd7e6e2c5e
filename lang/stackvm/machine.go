package stackvm

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/lexa/runtime"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var metricInstructions = promauto.NewCounter(prometheus.CounterOpts{
	Name: "lexa_vm_instructions_total",
	Help: "Number of instructions executed by stack machines",
})

// Machine executes a program. The operand stack is shared by all sub-routines,
// while local slots live in memory frames, one per active CALL.
type Machine struct {
	code     []Instruction
	stack    []float64
	ip       int // address of next instruction
	rt       *runtime.Runtime
	out      io.Writer
	steps    int
	maxSteps int
	halted   bool
}

// Option configures a machine.
type Option func(*Machine)

// Output sets the writer PEEK prints to. Default is os.Stdout.
func Output(w io.Writer) Option {
	return func(m *Machine) {
		if w != nil {
			m.out = w
		}
	}
}

// StepLimit stops the machine with ErrStepLimit after n instructions.
// The default is to run without limit.
func StepLimit(n int) Option {
	return func(m *Machine) {
		m.maxSteps = n
	}
}

// NewMachine creates a machine for a program, ready to run at address 0.
func NewMachine(prog *Program, opts ...Option) *Machine {
	m := &Machine{
		code: prog.Code,
		rt:   runtime.NewRuntimeEnvironment(),
		out:  os.Stdout,
	}
	if prog.Labels != nil {
		m.rt.Labels = prog.Labels
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run executes instructions until the machine halts, runs off the end of the
// program, or an error occurs.
func (m *Machine) Run() error {
	for {
		cont, err := m.Step()
		if err != nil || !cont {
			return err
		}
	}
}

// Step executes a single instruction. It returns false if the machine has
// halted or there is no instruction left to execute.
func (m *Machine) Step() (bool, error) {
	if m.halted || m.ip < 0 || m.ip >= len(m.code) {
		return false, nil
	}
	if m.maxSteps > 0 && m.steps >= m.maxSteps {
		return false, m.errorf(ErrStepLimit)
	}
	instr := m.code[m.ip]
	m.ip++
	m.steps++
	metricInstructions.Inc()
	if err := m.execute(instr); err != nil {
		m.ip--
		m.halted = true
		return false, m.errorf(err)
	}
	return !m.halted, nil
}

func (m *Machine) errorf(err error) error {
	if m.ip < len(m.code) {
		return fmt.Errorf("stackvm: at %d (%s): %w", m.ip, m.code[m.ip], err)
	}
	return fmt.Errorf("stackvm: at %d: %w", m.ip, err)
}

func (m *Machine) execute(instr Instruction) error {
	frame := m.rt.MemFrameStack.Current()
	switch instr.Op {
	case Push:
		m.push(instr.Value)
	case Pop:
		if _, err := m.pop(); err != nil {
			return err
		}
	case Peek:
		top, ok := m.Top()
		if !ok {
			return ErrStackUnderflow
		}
		fmt.Fprintf(m.out, "%g\n", top)
	case Add, Sub, Mul, Div, Equals:
		return m.arithmetic(instr.Op)
	case Jmp:
		if instr.Target != "" {
			return fmt.Errorf("%w: %s", ErrUnknownLabel, instr.Target)
		}
		m.ip = instr.Arg
	case Branch:
		if instr.Target != "" {
			return fmt.Errorf("%w: %s", ErrUnknownLabel, instr.Target)
		}
		v, err := m.pop()
		if err != nil {
			return err
		}
		if v != 0 {
			m.ip = instr.Arg
		}
	case Store:
		v, err := m.pop()
		if err != nil {
			return err
		}
		frame.Store(instr.Arg, v)
	case Load:
		v, ok := frame.Load(instr.Arg)
		if !ok {
			return fmt.Errorf("%w: %d", ErrUndefinedLocal, instr.Arg)
		}
		m.push(v)
	case Call:
		if instr.Target != "" {
			return fmt.Errorf("%w: %s", ErrUnknownLabel, instr.Target)
		}
		m.rt.MemFrameStack.PushNewMemoryFrame(fmt.Sprintf("sub@%d", instr.Arg), m.ip)
		m.ip = instr.Arg
	case Ret:
		if frame.IsRoot() {
			return ErrReturnOutsideSub
		}
		m.ip = m.rt.MemFrameStack.PopMemoryFrame().ReturnAddress
	case Halt:
		m.halted = true
	case Label:
		return fmt.Errorf("%w: %s", ErrUnreachableToken, instr)
	default:
		return fmt.Errorf("stackvm: illegal instruction %s", instr.Op)
	}
	tracer().Debugf("%-10s | %v", instr, m.stack)
	return nil
}

func (m *Machine) arithmetic(op Opcode) error {
	top, err := m.pop()
	if err != nil {
		return err
	}
	second, err := m.pop()
	if err != nil {
		m.push(top)
		return err
	}
	var r float64
	switch op {
	case Add:
		r = second + top
	case Sub:
		r = second - top
	case Mul:
		r = second * top
	case Div:
		r = second / top
	case Equals:
		if second == top {
			r = 1
		}
	}
	m.push(r)
	return nil
}

func (m *Machine) push(v float64) {
	m.stack = append(m.stack, v)
}

func (m *Machine) pop() (float64, error) {
	if len(m.stack) == 0 {
		return 0, ErrStackUnderflow
	}
	v := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return v, nil
}

// Top returns the top of stack, if any.
func (m *Machine) Top() (float64, bool) {
	if len(m.stack) == 0 {
		return 0, false
	}
	return m.stack[len(m.stack)-1], true
}

// Stack returns a copy of the operand stack, bottom first.
func (m *Machine) Stack() []float64 {
	return append([]float64(nil), m.stack...)
}

// IP returns the address of the next instruction.
func (m *Machine) IP() int {
	return m.ip
}

// Steps returns the number of instructions executed so far.
func (m *Machine) Steps() int {
	return m.steps
}

// Halted is true if the machine has executed HLT or stopped with an error.
func (m *Machine) Halted() bool {
	return m.halted
}

// Local returns the value of a local slot of the current memory frame.
func (m *Machine) Local(i int) (float64, bool) {
	return m.rt.MemFrameStack.Current().Load(i)
}

// Depth returns the number of active memory frames, including the global one.
func (m *Machine) Depth() int {
	return m.rt.MemFrameStack.Depth()
}
