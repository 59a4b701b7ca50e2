package materials

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"VoxelCake/shared/pixelart"

	"github.com/disintegration/imaging"
)

// Face indexa as faces de um cubo na ordem +x, -x, +y, -y, +z, -z.
type Face int

const (
	FacePosX Face = iota // direita
	FaceNegX             // esquerda
	FacePosY             // topo
	FaceNegY             // fundo
	FacePosZ             // frente
	FaceNegZ             // trás
	FaceCount
)

// Kind identifica o tipo de bloco/objeto que usa um conjunto de materiais.
type Kind string

const (
	KindGrassBlock Kind = "grass-block"
	KindCake       Kind = "cake"
	KindCandle     Kind = "candle"
	KindFlame      Kind = "flame"
	KindDiamond    Kind = "diamond"
)

// Kinds lista todos os tipos conhecidos numa ordem estável.
var Kinds = []Kind{KindGrassBlock, KindCake, KindCandle, KindFlame, KindDiamond}

// ErrMissingTexture indica que o catálogo não recebeu uma textura obrigatória.
var ErrMissingTexture = errors.New("textura obrigatória ausente")

// Surface descreve o material de uma face.
type Surface struct {
	Texture   *pixelart.Texture // nil para cor chapada
	Color     color.RGBA        // tint (ou cor chapada)
	Emissive  color.RGBA
	Metalness float32
	Roughness float32
	Unlit     bool // ignora iluminação (MeshBasicMaterial)
}

// FaceSet é a lista ordenada de 6 materiais de um cubo.
type FaceSet [FaceCount]Surface

// Catalog guarda o conjunto de faces de cada tipo.
type Catalog struct {
	sets map[Kind]FaceSet
}

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

func textured(t *pixelart.Texture) Surface {
	return Surface{Texture: t, Color: white, Roughness: 1}
}

func flat(s Surface) FaceSet {
	var fs FaceSet
	for i := range fs {
		fs[i] = s
	}
	return fs
}

// NewCatalog monta os materiais a partir das texturas geradas.
// Toda textura referenciada é selada: a decoração precisa acontecer antes.
func NewCatalog(textures pixelart.Set) (*Catalog, error) {
	for _, r := range []pixelart.Role{pixelart.RoleGrassTop, pixelart.RoleDirt, pixelart.RoleCakeSide, pixelart.RoleCakeTop} {
		if textures[r] == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingTexture, r)
		}
	}

	dirt := textured(textures[pixelart.RoleDirt])
	grassTop := textured(textures[pixelart.RoleGrassTop])
	cakeSide := textured(textures[pixelart.RoleCakeSide])
	cakeTop := textured(textures[pixelart.RoleCakeTop])

	c := &Catalog{sets: make(map[Kind]FaceSet, len(Kinds))}

	c.sets[KindGrassBlock] = FaceSet{dirt, dirt, grassTop, dirt, dirt, dirt}
	// O fundo do bolo usa a textura lateral (nunca fica visível).
	c.sets[KindCake] = FaceSet{cakeSide, cakeSide, cakeTop, cakeSide, cakeSide, cakeSide}
	c.sets[KindCandle] = flat(Surface{Color: white, Roughness: 1})
	c.sets[KindFlame] = flat(Surface{Color: pixelart.MustHex("#ffa500"), Unlit: true})
	c.sets[KindDiamond] = flat(Surface{
		Color:     pixelart.MustHex("#00ffff"),
		Emissive:  pixelart.MustHex("#004444"),
		Metalness: 0.8,
		Roughness: 0.1,
	})

	for _, t := range textures {
		t.Seal()
	}
	return c, nil
}

// Faces retorna o conjunto de faces de um tipo.
func (c *Catalog) Faces(kind Kind) (FaceSet, bool) {
	fs, ok := c.sets[kind]
	return fs, ok
}

// Textured informa se alguma face usa textura.
func (fs FaceSet) Textured() bool {
	for _, s := range fs {
		if s.Texture != nil {
			return true
		}
	}
	return false
}

// Atlas monta uma imagem com uma coluna de 16px por face, na ordem das faces.
// Faces sem textura recebem a cor chapada.
func (fs FaceSet) Atlas() *image.NRGBA {
	size := pixelart.Size
	atlas := imaging.New(size*int(FaceCount), size, color.NRGBA{})
	for i, s := range fs {
		var tile image.Image
		if s.Texture != nil {
			tile = s.Texture.Image
		} else {
			tile = imaging.New(size, size, s.Color)
		}
		atlas = imaging.Paste(atlas, tile, image.Pt(i*size, 0))
	}
	return atlas
}
