package forecasting

import (
	"math/rand/v2"
	"sync"
)

// lockedSource protege o gerador compartilhado entre requisições
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSource cria a fonte de variância diária; seed 0 usa entropia do sistema
func NewRandomSource(seed uint64) RandomSource {
	var src *rand.PCG
	if seed == 0 {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	} else {
		src = rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	}

	return &lockedSource{rng: rand.New(src)}
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}
