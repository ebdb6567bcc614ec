package generator

import "math/rand/v2"

const (
	nameAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	nameLength   = 10
)

// NameGenerator produces random circuit names from the generator's stream.
type NameGenerator struct {
	r *rand.Rand
}

// NewNameGenerator creates a name generator drawing from r.
func NewNameGenerator(r *rand.Rand) *NameGenerator {
	return &NameGenerator{r: r}
}

// Next returns a 10-character name over A-Z and 0-9, sampled with replacement.
func (g *NameGenerator) Next() string {
	b := make([]byte, nameLength)
	for i := range b {
		b[i] = nameAlphabet[g.r.IntN(len(nameAlphabet))]
	}
	return string(b)
}
