package circuit

import (
	"errors"
	"fmt"
)

// MaxRegisterWidth is the widest register Program will allocate.
const MaxRegisterWidth = 1 << 16

var (
	ErrRegisterTooWide   = errors.New("register width exceeds limit")
	ErrInvalidWidth      = errors.New("register width must be positive")
	ErrUnknownRegister   = errors.New("register not owned by this program")
	ErrDuplicateRegister = errors.New("register name already allocated")
	ErrQubitOutOfRange   = errors.New("qubit index out of range")
	ErrClbitOutOfRange   = errors.New("classical bit index out of range")
	ErrDuplicateOperand  = errors.New("control and target must differ")
)

// MemoryRegister is the Register handed out by Program.
type MemoryRegister struct {
	name  string
	width int
}

func (r *MemoryRegister) Name() string { return r.name }
func (r *MemoryRegister) Width() int   { return r.width }

func (r *MemoryRegister) String() string {
	return fmt.Sprintf("%s[%d]", r.name, r.width)
}

// Program is an in-memory Builder. Circuits accumulate for the lifetime of
// the Program; creating a circuit under an existing name replaces the earlier
// one in place.
type Program struct {
	quantum   map[string]*MemoryRegister
	classical map[string]*MemoryRegister
	circuits  map[string]*MemoryCircuit
	order     []string
}

// NewProgram creates an empty program.
func NewProgram() *Program {
	return &Program{
		quantum:   make(map[string]*MemoryRegister),
		classical: make(map[string]*MemoryRegister),
		circuits:  make(map[string]*MemoryCircuit),
	}
}

// CreateQuantumRegister allocates a quantum register of the given width.
// Register names are unique per kind within a program.
func (p *Program) CreateQuantumRegister(name string, width int) (Register, error) {
	if _, exists := p.quantum[name]; exists {
		return nil, fmt.Errorf("quantum register '%s': %w", name, ErrDuplicateRegister)
	}
	r, err := newRegister(name, width)
	if err != nil {
		return nil, err
	}
	p.quantum[name] = r
	return r, nil
}

// CreateClassicalRegister allocates a classical register of the given width.
// Register names are unique per kind within a program.
func (p *Program) CreateClassicalRegister(name string, width int) (Register, error) {
	if _, exists := p.classical[name]; exists {
		return nil, fmt.Errorf("classical register '%s': %w", name, ErrDuplicateRegister)
	}
	r, err := newRegister(name, width)
	if err != nil {
		return nil, err
	}
	p.classical[name] = r
	return r, nil
}

func newRegister(name string, width int) (*MemoryRegister, error) {
	if width < 1 {
		return nil, fmt.Errorf("register '%s': %w", name, ErrInvalidWidth)
	}
	if width > MaxRegisterWidth {
		return nil, fmt.Errorf("register '%s' width %d: %w", name, width, ErrRegisterTooWide)
	}
	return &MemoryRegister{name: name, width: width}, nil
}

// CreateCircuit creates a circuit bound to registers previously allocated by
// this program. The circuit's qubit and classical-bit spaces are the
// concatenation of the given registers.
func (p *Program) CreateCircuit(name string, qregs, cregs []Register) (Circuit, error) {
	c := &MemoryCircuit{name: name}
	for _, r := range qregs {
		mr, ok := r.(*MemoryRegister)
		if !ok || mr == nil || p.quantum[mr.name] != mr {
			return nil, fmt.Errorf("circuit '%s' quantum register %v: %w", name, r, ErrUnknownRegister)
		}
		c.qubits += mr.width
	}
	for _, r := range cregs {
		mr, ok := r.(*MemoryRegister)
		if !ok || mr == nil || p.classical[mr.name] != mr {
			return nil, fmt.Errorf("circuit '%s' classical register %v: %w", name, r, ErrUnknownRegister)
		}
		c.clbits += mr.width
	}

	if _, exists := p.circuits[name]; !exists {
		p.order = append(p.order, name)
	}
	p.circuits[name] = c
	return c, nil
}

// Circuit returns the circuit registered under name.
func (p *Program) Circuit(name string) (*MemoryCircuit, bool) {
	c, ok := p.circuits[name]
	return c, ok
}

// CircuitNames returns every circuit name in creation order.
func (p *Program) CircuitNames() []string {
	names := make([]string, len(p.order))
	copy(names, p.order)
	return names
}

// Len returns the number of distinct circuits held.
func (p *Program) Len() int {
	return len(p.order)
}

// MemoryCircuit records the operations applied to it.
type MemoryCircuit struct {
	name   string
	qubits int
	clbits int
	ops    []Op
}

func (c *MemoryCircuit) Name() string { return c.name }

// Qubits returns the width of the circuit's qubit space.
func (c *MemoryCircuit) Qubits() int { return c.qubits }

// Clbits returns the width of the circuit's classical-bit space.
func (c *MemoryCircuit) Clbits() int { return c.clbits }

// Ops returns a copy of the recorded operations.
func (c *MemoryCircuit) Ops() []Op {
	ops := make([]Op, len(c.ops))
	copy(ops, c.ops)
	return ops
}

// Count returns the number of recorded operations of the given kind.
func (c *MemoryCircuit) Count(kind OpKind) int {
	n := 0
	for _, op := range c.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

func (c *MemoryCircuit) ApplyRotation(theta, phi, lambda float64, qubit int) error {
	if err := c.checkQubit(qubit); err != nil {
		return err
	}
	c.ops = append(c.ops, Op{
		Kind:   OpRotation,
		Params: [3]float64{theta, phi, lambda},
		Qubits: []int{qubit},
	})
	return nil
}

func (c *MemoryCircuit) ApplyControlledGate(control, target int) error {
	if err := c.checkQubit(control); err != nil {
		return err
	}
	if err := c.checkQubit(target); err != nil {
		return err
	}
	if control == target {
		return fmt.Errorf("circuit '%s' cx %d,%d: %w", c.name, control, target, ErrDuplicateOperand)
	}
	c.ops = append(c.ops, Op{Kind: OpControlled, Qubits: []int{control, target}})
	return nil
}

func (c *MemoryCircuit) ApplyMeasurement(qubit, clbit int) error {
	if err := c.checkQubit(qubit); err != nil {
		return err
	}
	if clbit < 0 || clbit >= c.clbits {
		return fmt.Errorf("circuit '%s' clbit %d: %w", c.name, clbit, ErrClbitOutOfRange)
	}
	c.ops = append(c.ops, Op{Kind: OpMeasure, Qubits: []int{qubit}, Clbit: clbit})
	return nil
}

func (c *MemoryCircuit) checkQubit(q int) error {
	if q < 0 || q >= c.qubits {
		return fmt.Errorf("circuit '%s' qubit %d: %w", c.name, q, ErrQubitOutOfRange)
	}
	return nil
}
