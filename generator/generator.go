// Package generator builds batches of random quantum circuits for use as
// profiling and regression workloads.
//
// All circuits of a Generator share one quantum and one classical register,
// each MaxQubits wide. A circuit with n qubits only ever addresses indices
// [0, n-1] of those registers.
//
// A Generator is not safe for concurrent use.
package generator

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/wcatz/circuit-generator/circuit"
	"github.com/wcatz/circuit-generator/config"
)

// Params bounds the circuits a Generator produces. All ranges are inclusive.
// A nil Seed draws the seed from system entropy.
type Params struct {
	Seed      *int64
	MinQubits int
	MaxQubits int
	MinDepth  int
	MaxDepth  int
}

// ParamsFromConfig converts YAML generator settings into Params.
func ParamsFromConfig(s config.GeneratorSettings) Params {
	return Params{
		Seed:      s.Seed,
		MinQubits: s.MinQubits,
		MaxQubits: s.MaxQubits,
		MinDepth:  s.MinDepth,
		MaxDepth:  s.MaxDepth,
	}
}

// Record describes one generated circuit.
type Record struct {
	Name    string
	Qubits  int
	Depth   int
	Circuit circuit.Circuit
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. The default discards everything; a nil
// logger keeps the default.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// Generator produces random circuits through a circuit.Builder.
type Generator struct {
	params  Params
	seed    int64
	rng     *rand.Rand
	names   *NameGenerator
	builder circuit.Builder
	qr      circuit.Register
	cr      circuit.Register
	records []Record
	log     *zap.Logger
}

// New validates p, seeds the random stream and allocates the shared
// registers on b. Errors from b are returned unchanged.
func New(b circuit.Builder, p Params, opts ...Option) (*Generator, error) {
	if err := checkRange("qubit", p.MinQubits, p.MaxQubits); err != nil {
		return nil, err
	}
	if err := checkRange("depth", p.MinDepth, p.MaxDepth); err != nil {
		return nil, err
	}

	g := &Generator{
		params:  p,
		builder: b,
		records: []Record{},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.rng, g.seed = newRand(p.Seed)
	g.names = NewNameGenerator(g.rng)

	var err error
	if g.qr, err = b.CreateQuantumRegister("qr", p.MaxQubits); err != nil {
		g.log.Warn("creating quantum register", zap.Int("width", p.MaxQubits), zap.Error(err))
		return nil, err
	}
	if g.cr, err = b.CreateClassicalRegister("cr", p.MaxQubits); err != nil {
		g.log.Warn("creating classical register", zap.Int("width", p.MaxQubits), zap.Error(err))
		return nil, err
	}

	g.log.Info("circuit generator ready",
		zap.Int64("seed", g.seed),
		zap.Bool("seeded", p.Seed != nil),
		zap.Int("min_qubits", p.MinQubits),
		zap.Int("max_qubits", p.MaxQubits),
		zap.Int("min_depth", p.MinDepth),
		zap.Int("max_depth", p.MaxDepth),
	)
	return g, nil
}

// AddCircuits replaces the current records with count new random circuits.
// Each circuit gets depth operations split evenly at random between u3
// rotations and cx gates; single-qubit circuits only get rotations. With
// doMeasure, between 0 and qubits-1 measurements of random qubits follow.
//
// If the builder fails, generation stops and the error is returned unchanged;
// records built before the failure are kept.
func (g *Generator) AddCircuits(count int, doMeasure bool) error {
	if count < 0 {
		return &InvalidRangeError{Field: "count", Min: count, Max: count}
	}

	g.records = make([]Record, 0, count)
	g.log.Debug("adding circuits", zap.Int("count", count), zap.Bool("measure", doMeasure))

	for range count {
		rec, err := g.buildCircuit(doMeasure)
		if err != nil {
			g.log.Warn("building circuit", zap.String("name", rec.Name), zap.Error(err))
			return err
		}
		g.records = append(g.records, rec)
	}
	return nil
}

// AddBatch runs AddCircuits for a configured batch.
func (g *Generator) AddBatch(b config.BatchDef) error {
	return g.AddCircuits(b.Circuits, b.DoMeasure())
}

func (g *Generator) buildCircuit(doMeasure bool) (Record, error) {
	p := g.params
	rec := Record{
		Qubits: intBetween(g.rng, p.MinQubits, p.MaxQubits),
		Depth:  intBetween(g.rng, p.MinDepth, p.MaxDepth),
		Name:   g.names.Next(),
	}

	c, err := g.builder.CreateCircuit(rec.Name, []circuit.Register{g.qr}, []circuit.Register{g.cr})
	if err != nil {
		return rec, err
	}
	rec.Circuit = c

	n := rec.Qubits
	for range rec.Depth {
		if n == 1 || g.rng.IntN(2) == 0 {
			q := g.rng.IntN(n)
			err = c.ApplyRotation(g.rng.Float64(), g.rng.Float64(), g.rng.Float64(), q)
		} else {
			control, target := distinctPair(g.rng, n)
			err = c.ApplyControlledGate(control, target)
		}
		if err != nil {
			return rec, err
		}
	}

	measured := 0
	if doMeasure {
		// at most n-1 measurements, possibly repeating a qubit
		measured = g.rng.IntN(n)
		for range measured {
			q := g.rng.IntN(n)
			if err := c.ApplyMeasurement(q, q); err != nil {
				return rec, err
			}
		}
	}

	g.log.Debug("circuit built",
		zap.String("name", rec.Name),
		zap.Int("qubits", rec.Qubits),
		zap.Int("depth", rec.Depth),
		zap.Int("measurements", measured),
	)
	return rec, nil
}

// CircuitNames returns the names from the most recent AddCircuits call, in
// generation order.
func (g *Generator) CircuitNames() []string {
	names := make([]string, len(g.records))
	for i, r := range g.records {
		names[i] = r.Name
	}
	return names
}

// Records returns a copy of the records from the most recent AddCircuits call.
func (g *Generator) Records() []Record {
	out := make([]Record, len(g.records))
	copy(out, g.records)
	return out
}

// Program returns the builder holding every circuit created so far.
func (g *Generator) Program() circuit.Builder {
	return g.builder
}

// Seed returns the seed the random stream was started from.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Params returns the generation bounds.
func (g *Generator) Params() Params {
	return g.params
}
