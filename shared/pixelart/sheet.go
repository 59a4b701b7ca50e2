package pixelart

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Sheet monta uma faixa horizontal com as texturas ampliadas por vizinho mais próximo.
func Sheet(textures []*Texture, scale int) *image.NRGBA {
	if scale < 1 {
		scale = 1
	}
	cell := Size * scale
	sheet := imaging.New(cell*len(textures), cell, color.NRGBA{})
	for i, t := range textures {
		big := imaging.Resize(t.Image, cell, cell, imaging.NearestNeighbor)
		sheet = imaging.Paste(sheet, big, image.Pt(i*cell, 0))
	}
	return sheet
}

// Ordered devolve as texturas do conjunto numa ordem estável.
func (s Set) Ordered() []*Texture {
	out := make([]*Texture, 0, len(s))
	for _, r := range []Role{RoleGrassTop, RoleDirt, RoleCakeSide, RoleCakeTop} {
		if t, ok := s[r]; ok {
			out = append(out, t)
		}
	}
	return out
}
