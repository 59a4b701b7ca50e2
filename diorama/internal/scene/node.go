package scene

import (
	"image/color"

	"VoxelCake/shared/materials"

	"github.com/go-gl/mathgl/mgl32"
)

// Shape define a geometria de uma malha.
type Shape int

const (
	ShapeBox Shape = iota
	ShapeOctahedron
)

// Mesh associa uma geometria a um conjunto de materiais do catálogo.
// Size guarda (largura, altura, profundidade) da caixa ou o raio do octaedro em X.
type Mesh struct {
	Shape Shape
	Kind  materials.Kind
	Size  mgl32.Vec3
}

// PointLight é uma luz pontual com alcance limitado.
type PointLight struct {
	Color     color.RGBA
	Intensity float32
	Distance  float32
}

// Node é um nó do grafo de cena. Rotation é um ângulo de Euler em radianos (ordem XYZ).
type Node struct {
	Name     string
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3

	Mesh  *Mesh
	Light *PointLight

	parent   *Node
	children []*Node
}

// NewNode cria um nó com escala unitária.
func NewNode(name string) *Node {
	return &Node{Name: name, Scale: mgl32.Vec3{1, 1, 1}}
}

// NewMeshNode cria um nó com malha na posição dada.
func NewMeshNode(name string, mesh Mesh, pos mgl32.Vec3) *Node {
	n := NewNode(name)
	n.Mesh = &mesh
	n.Position = pos
	return n
}

// Add anexa um filho, removendo-o do pai anterior se houver.
func (n *Node) Add(child *Node) {
	if child.parent != nil {
		child.parent.Remove(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// Remove desanexa um filho direto mantendo a ordem dos demais.
func (n *Node) Remove(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			child.parent = nil
			return true
		}
	}
	return false
}

// Parent retorna o pai (nil para a raiz ou nó solto).
func (n *Node) Parent() *Node { return n.parent }

// Children retorna os filhos diretos. Não modifique o slice.
func (n *Node) Children() []*Node { return n.children }

// SetUniformScale aplica a mesma escala nos três eixos.
func (n *Node) SetUniformScale(s float32) {
	n.Scale = mgl32.Vec3{s, s, s}
}

// LocalMatrix calcula T * R * S, com R = Rx * Ry * Rz.
func (n *Node) LocalMatrix() mgl32.Mat4 {
	t := mgl32.Translate3D(n.Position.X(), n.Position.Y(), n.Position.Z())
	r := mgl32.HomogRotate3DX(n.Rotation.X()).
		Mul4(mgl32.HomogRotate3DY(n.Rotation.Y())).
		Mul4(mgl32.HomogRotate3DZ(n.Rotation.Z()))
	s := mgl32.Scale3D(n.Scale.X(), n.Scale.Y(), n.Scale.Z())
	return t.Mul4(r).Mul4(s)
}

// WorldMatrix compõe as matrizes locais até a raiz.
func (n *Node) WorldMatrix() mgl32.Mat4 {
	m := n.LocalMatrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.LocalMatrix().Mul4(m)
	}
	return m
}

// WorldPosition retorna a origem do nó em coordenadas de mundo.
func (n *Node) WorldPosition() mgl32.Vec3 {
	return n.WorldMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
}

// Walk visita o nó e seus descendentes em pré-ordem com a matriz de mundo acumulada.
func (n *Node) Walk(fn func(node *Node, world mgl32.Mat4)) {
	var parent mgl32.Mat4
	if n.parent != nil {
		parent = n.parent.WorldMatrix()
	} else {
		parent = mgl32.Ident4()
	}
	n.walk(parent, fn)
}

func (n *Node) walk(parent mgl32.Mat4, fn func(*Node, mgl32.Mat4)) {
	world := parent.Mul4(n.LocalMatrix())
	fn(n, world)
	for _, c := range n.children {
		c.walk(world, fn)
	}
}
