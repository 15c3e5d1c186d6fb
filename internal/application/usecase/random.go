package usecase

import "math/rand/v2"

// RandomSource valores aleatorios de los widgets simulados (radar, matrices, tracker).
type RandomSource interface {
	Float64() float64 // [0, 1)
	IntN(n int) int   // [0, n)
}

type globalRandom struct{}

func (globalRandom) Float64() float64 { return rand.Float64() }
func (globalRandom) IntN(n int) int   { return rand.IntN(n) }

// DefaultRandom fuente global de math/rand/v2 (segura para uso concurrente).
func DefaultRandom() RandomSource {
	return globalRandom{}
}
