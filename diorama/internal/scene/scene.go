package scene

import (
	"fmt"
	"image/color"
	"log"

	"VoxelCake/shared/materials"
	"VoxelCake/shared/pixelart"

	"github.com/go-gl/mathgl/mgl32"
)

// PlatformSize é a aresta (em blocos) da plataforma de grama.
const PlatformSize = 12

// Fog é uma névoa linear entre Near e Far.
type Fog struct {
	Color     color.RGBA
	Near, Far float32
}

// AmbientLight ilumina tudo por igual.
type AmbientLight struct {
	Color     color.RGBA
	Intensity float32
}

// DirectionalLight é uma luz direcional vinda de Position em direção à origem.
type DirectionalLight struct {
	Color     color.RGBA
	Intensity float32
	Position  mgl32.Vec3
}

// LightInstance é uma luz pontual já posicionada no mundo.
type LightInstance struct {
	PointLight
	Position mgl32.Vec3
}

// Scene guarda o grafo de cena e os parâmetros globais de iluminação.
type Scene struct {
	Root       *Node
	Background color.RGBA
	Fog        Fog
	Ambient    AmbientLight
	Sun        DirectionalLight

	CakeGroup  *Node
	Cake       *Node
	Candle     *Node
	Flame      *Node
	FlameLight *Node

	blocks map[[2]int]*Node
}

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Build monta a cena estática uma única vez.
func Build(cat *materials.Catalog) (*Scene, error) {
	for _, k := range materials.Kinds {
		if _, ok := cat.Faces(k); !ok {
			return nil, fmt.Errorf("catálogo sem materiais para %s", k)
		}
	}

	sky := pixelart.MustHex("#87ceeb")
	s := &Scene{
		Root:       NewNode("root"),
		Background: sky,
		Fog:        Fog{Color: sky, Near: 10, Far: 50},
		Ambient:    AmbientLight{Color: white, Intensity: 0.6},
		Sun:        DirectionalLight{Color: white, Intensity: 0.8, Position: mgl32.Vec3{10, 20, 10}},
		blocks:     make(map[[2]int]*Node, PlatformSize*PlatformSize),
	}

	s.buildPlatform()
	s.buildCake()

	log.Printf("[Scene] Cena montada: %d blocos de grama, bolo com vela", len(s.blocks))
	return s, nil
}

// buildPlatform coloca um bloco de grama em cada (x, 0, z) com x, z em [-size/2, size/2).
func (s *Scene) buildPlatform() {
	block := Mesh{Shape: ShapeBox, Kind: materials.KindGrassBlock, Size: mgl32.Vec3{1, 1, 1}}
	for x := -PlatformSize / 2; x < PlatformSize/2; x++ {
		for z := -PlatformSize / 2; z < PlatformSize/2; z++ {
			n := NewMeshNode(fmt.Sprintf("grass_%d_%d", x, z), block, mgl32.Vec3{float32(x), 0, float32(z)})
			s.Root.Add(n)
			s.blocks[[2]int{x, z}] = n
		}
	}
}

func (s *Scene) buildCake() {
	s.CakeGroup = NewNode("cake_group")

	s.Cake = NewMeshNode("cake",
		Mesh{Shape: ShapeBox, Kind: materials.KindCake, Size: mgl32.Vec3{0.8, 0.4, 0.8}},
		mgl32.Vec3{0, 0.7, 0})
	s.Candle = NewMeshNode("candle",
		Mesh{Shape: ShapeBox, Kind: materials.KindCandle, Size: mgl32.Vec3{0.1, 0.3, 0.1}},
		mgl32.Vec3{0, 1.0, 0})
	s.Flame = NewMeshNode("flame",
		Mesh{Shape: ShapeBox, Kind: materials.KindFlame, Size: mgl32.Vec3{0.08, 0.08, 0.08}},
		mgl32.Vec3{0, 1.2, 0})

	s.FlameLight = NewNode("flame_light")
	s.FlameLight.Position = mgl32.Vec3{0, 1.2, 0}
	s.FlameLight.Light = &PointLight{Color: pixelart.MustHex("#ffa500"), Intensity: 1, Distance: 5}

	s.CakeGroup.Add(s.Cake)
	s.CakeGroup.Add(s.Candle)
	s.CakeGroup.Add(s.Flame)
	s.CakeGroup.Add(s.FlameLight)
	s.Root.Add(s.CakeGroup)
}

// BlockAt retorna o bloco da plataforma em (x, 0, z).
func (s *Scene) BlockAt(x, z int) (*Node, bool) {
	n, ok := s.blocks[[2]int{x, z}]
	return n, ok
}

// BlockCount retorna o número de blocos da plataforma.
func (s *Scene) BlockCount() int {
	return len(s.blocks)
}

// PointLights coleta as luzes pontuais com posição de mundo.
func (s *Scene) PointLights() []LightInstance {
	var out []LightInstance
	s.Root.Walk(func(n *Node, world mgl32.Mat4) {
		if n.Light == nil {
			return
		}
		pos := world.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
		out = append(out, LightInstance{PointLight: *n.Light, Position: pos})
	})
	return out
}
