package util

// Ring é um buffer circular de capacidade fixa (potência de 2) que sobrescreve
// o item mais antigo quando cheio. Usado para históricos curtos, como tempos de frame.
type Ring[T any] struct {
	entries []T
	mask    uint64
	next    uint64 // total de itens já inseridos
}

// NewRing cria um buffer com a capacidade dada (arredondada para potência de 2).
func NewRing[T any](capacity int) *Ring[T] {
	actualCap := nextPowerOfTwo(capacity)
	return &Ring[T]{
		entries: make([]T, actualCap),
		mask:    uint64(actualCap - 1),
	}
}

// Push adiciona um item, descartando o mais antigo se necessário.
func (r *Ring[T]) Push(item T) {
	r.entries[r.next&r.mask] = item
	r.next++
}

// Cap retorna a capacidade real.
func (r *Ring[T]) Cap() int { return len(r.entries) }

// Len retorna quantos itens estão guardados.
func (r *Ring[T]) Len() int {
	if r.next < uint64(len(r.entries)) {
		return int(r.next)
	}
	return len(r.entries)
}

// Each visita os itens do mais antigo ao mais recente.
func (r *Ring[T]) Each(fn func(i int, item T)) {
	n := r.Len()
	start := r.next - uint64(n)
	for i := 0; i < n; i++ {
		fn(i, r.entries[(start+uint64(i))&r.mask])
	}
}

func nextPowerOfTwo(x int) int {
	res := 2
	for res < x {
		res <<= 1
	}
	return res
}
