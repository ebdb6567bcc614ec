// Package circuit defines the construction interface the generator builds
// circuits through, plus Program, an in-memory implementation that records
// every operation it is given.
package circuit

// Register is a fixed-width named container of qubit or classical-bit slots.
type Register interface {
	Name() string
	Width() int
}

// Circuit receives operations addressed by register index.
type Circuit interface {
	Name() string
	ApplyRotation(theta, phi, lambda float64, qubit int) error
	ApplyControlledGate(control, target int) error
	ApplyMeasurement(qubit, clbit int) error
}

// Builder allocates registers and named circuits bound to them.
type Builder interface {
	CreateQuantumRegister(name string, width int) (Register, error)
	CreateClassicalRegister(name string, width int) (Register, error)
	CreateCircuit(name string, qregs, cregs []Register) (Circuit, error)
}

// OpKind identifies the type of a recorded operation.
type OpKind int

const (
	OpRotation OpKind = iota
	OpControlled
	OpMeasure
)

func (k OpKind) String() string {
	switch k {
	case OpRotation:
		return "u3"
	case OpControlled:
		return "cx"
	case OpMeasure:
		return "measure"
	}
	return "unknown"
}

// Op is a single operation applied to a circuit.
//
// Params is set for rotations only. Qubits holds the target for rotations and
// measurements, and (control, target) for controlled gates. Clbit is only
// meaningful for measurements.
type Op struct {
	Kind   OpKind
	Params [3]float64
	Qubits []int
	Clbit  int
}
