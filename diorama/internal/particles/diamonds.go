package particles

import (
	"fmt"
	"math"
	"math/rand"

	"VoxelCake/diorama/internal/scene"
	"VoxelCake/shared/materials"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// SpawnHeight é a altura inicial de todo diamante.
	SpawnHeight = 10
	// Footprint é a largura da área horizontal de nascimento, centrada na origem.
	Footprint = 10
	// FallStep é quanto um diamante desce por tick.
	FallStep = 0.1
	// DespawnY é o limite inferior; abaixo dele o diamante é removido.
	DespawnY = -5
	// MaxSpin é o módulo máximo da rotação por tick.
	MaxSpin = 0.05
	// BatchSize é quantos diamantes nascem por clique na cena.
	BatchSize = 5
	// Radius é o raio do octaedro.
	Radius = 0.3
)

// Diamond é uma partícula transitória presa a um nó do grafo de cena.
type Diamond struct {
	ID   uint64
	Node *scene.Node
	Spin float32

	// A altura é derivada da idade para não acumular erro de ponto flutuante.
	spawnY float64
	age    int
}

// Position retorna a posição atual.
func (d *Diamond) Position() mgl32.Vec3 { return d.Node.Position }

// Height retorna a altura exata (sem arredondamento para float32).
func (d *Diamond) Height() float64 {
	return d.spawnY - FallStep*float64(d.age)
}

// Expired informa se uma altura está abaixo do limite de remoção.
func Expired(y float64) bool {
	return y < DespawnY
}

// LiveSet é o dono exclusivo dos diamantes vivos.
type LiveSet struct {
	parent *scene.Node
	rng    *rand.Rand
	max    int

	items  []*Diamond
	nextID uint64
}

// NewLiveSet cria o conjunto. Os nós dos diamantes são anexados a parent.
// max <= 0 significa sem limite de população.
func NewLiveSet(parent *scene.Node, rng *rand.Rand, max int) *LiveSet {
	return &LiveSet{parent: parent, rng: rng, max: max}
}

// Spawn cria um diamante em posição e rotação aleatórias.
// Retorna false se o limite de população foi atingido.
func (s *LiveSet) Spawn() (*Diamond, bool) {
	if s.max > 0 && len(s.items) >= s.max {
		return nil, false
	}

	s.nextID++
	x := (s.rng.Float32() - 0.5) * Footprint
	z := (s.rng.Float32() - 0.5) * Footprint

	node := scene.NewMeshNode(fmt.Sprintf("diamond_%d", s.nextID),
		scene.Mesh{Shape: scene.ShapeOctahedron, Kind: materials.KindDiamond, Size: mgl32.Vec3{Radius, Radius, Radius}},
		mgl32.Vec3{x, SpawnHeight, z})
	node.Rotation = mgl32.Vec3{
		s.rng.Float32() * math.Pi,
		0,
		s.rng.Float32() * math.Pi,
	}

	d := &Diamond{
		ID:     s.nextID,
		Node:   node,
		Spin:   (s.rng.Float32() - 0.5) * 2 * MaxSpin,
		spawnY: SpawnHeight,
	}

	s.parent.Add(node)
	s.items = append(s.items, d)
	return d, true
}

// SpawnBatch cria até n diamantes e retorna quantos nasceram.
func (s *LiveSet) SpawnBatch(n int) int {
	count := 0
	for i := 0; i < n; i++ {
		if _, ok := s.Spawn(); !ok {
			break
		}
		count++
	}
	return count
}

// Step avança todos os diamantes um tick e remove os que passaram de DespawnY.
// A remoção é um filtro estável: a ordem dos sobreviventes é preservada.
func (s *LiveSet) Step() int {
	kept := s.items[:0]
	removed := 0
	for _, d := range s.items {
		n := d.Node
		d.age++
		y := d.Height()
		n.Position[1] = float32(y)
		n.Rotation[0] += d.Spin
		n.Rotation[1] += d.Spin

		if Expired(y) {
			s.parent.Remove(n)
			removed++
			continue
		}
		kept = append(kept, d)
	}
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = nil
	}
	s.items = kept
	return removed
}

// Len retorna o número de diamantes vivos.
func (s *LiveSet) Len() int { return len(s.items) }

// Each visita os diamantes vivos em ordem de nascimento.
func (s *LiveSet) Each(fn func(d *Diamond)) {
	for _, d := range s.items {
		fn(d)
	}
}

// Clear remove todos os diamantes do grafo e do conjunto.
func (s *LiveSet) Clear() {
	for i, d := range s.items {
		s.parent.Remove(d.Node)
		s.items[i] = nil
	}
	s.items = s.items[:0]
}
