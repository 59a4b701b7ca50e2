package pixelart

import (
	"errors"
	"fmt"
	"image"
	"math/rand"

	"github.com/fogleman/gg"
)

const (
	// Size é a aresta (em pixels) de toda textura gerada.
	Size = 16
	// NoiseIterations é o número de pixels sorteados no pontilhado.
	NoiseIterations = 64
)

// Filter define como a textura é amostrada quando ampliada/reduzida.
type Filter int

const (
	// FilterNearest mantém o visual pixelado (sem interpolação).
	FilterNearest Filter = iota
)

// Role identifica o papel semântico de uma textura.
type Role string

const (
	RoleGrassTop Role = "grass-top"
	RoleDirt     Role = "dirt"
	RoleCakeSide Role = "cake-side"
	RoleCakeTop  Role = "cake-top"
)

// ErrSealed indica tentativa de pintar uma textura já usada por um material.
var ErrSealed = errors.New("textura selada: já referenciada por material")

// Texture é uma imagem 16x16 gerada proceduralmente.
type Texture struct {
	Role   Role
	Image  *image.RGBA
	Filter Filter

	sealed bool
}

// Seal marca a textura como somente leitura.
func (t *Texture) Seal() { t.sealed = true }

// Sealed informa se a textura já foi selada.
func (t *Texture) Sealed() bool { return t.sealed }

// Generator pinta texturas usando uma fonte de aleatoriedade própria.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator cria um gerador. Passe uma semente fixa para resultados reprodutíveis.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate preenche a cor base e aplica o pontilhado de ruído.
// Para cada iteração um pixel aleatório recebe uma mancha preta e depois uma branca,
// cada uma com alpha sorteado de forma independente.
func (g *Generator) Generate(role Role, baseHex string, noise float64) (*Texture, error) {
	base, err := ParseHex(baseHex)
	if err != nil {
		return nil, fmt.Errorf("falha ao gerar textura %s: %w", role, err)
	}
	if noise < 0 {
		noise = 0
	}
	if noise > 1 {
		noise = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, Size, Size))
	dc := gg.NewContextForRGBA(img)

	dc.SetColor(base)
	dc.DrawRectangle(0, 0, Size, Size)
	dc.Fill()

	for i := 0; i < NoiseIterations; i++ {
		x := float64(g.rng.Intn(Size))
		y := float64(g.rng.Intn(Size))

		dc.SetRGBA(0, 0, 0, g.rng.Float64()*noise)
		dc.DrawRectangle(x, y, 1, 1)
		dc.Fill()

		dc.SetRGBA(1, 1, 1, g.rng.Float64()*(noise/2))
		dc.DrawRectangle(x, y, 1, 1)
		dc.Fill()
	}

	return &Texture{Role: role, Image: img, Filter: FilterNearest}, nil
}

// BerryColor é a cor das frutinhas pintadas no topo do bolo.
const BerryColor = "#cc2e2e"

// berryRects são os blocos (x, y, w, h) sobrescritos pela decoração.
var berryRects = [][4]int{
	{4, 4, 3, 3},
	{10, 10, 2, 2},
	{11, 3, 2, 2},
}

// AddBerries sobrescreve alguns blocos com a cor de destaque.
// Chamar duas vezes apenas repinta os mesmos retângulos.
func (t *Texture) AddBerries() error {
	if t.sealed {
		return ErrSealed
	}
	dc := gg.NewContextForRGBA(t.Image)
	dc.SetColor(MustHex(BerryColor))
	for _, r := range berryRects {
		dc.DrawRectangle(float64(r[0]), float64(r[1]), float64(r[2]), float64(r[3]))
	}
	dc.Fill()
	return nil
}

// Set agrupa texturas pelo papel.
type Set map[Role]*Texture

// GenerateDefaults gera as quatro texturas da cena, já com a decoração aplicada.
func GenerateDefaults(g *Generator) (Set, error) {
	specs := []struct {
		role  Role
		base  string
		noise float64
	}{
		{RoleGrassTop, "#58bb43", 0.2},
		{RoleDirt, "#784c26", 0.2},
		{RoleCakeSide, "#fcedd5", 0.1},
		{RoleCakeTop, "#fcedd5", 0.05},
	}

	set := make(Set, len(specs))
	for _, s := range specs {
		tex, err := g.Generate(s.role, s.base, s.noise)
		if err != nil {
			return nil, err
		}
		set[s.role] = tex
	}

	if err := set[RoleCakeTop].AddBerries(); err != nil {
		return nil, err
	}
	return set, nil
}
