package materials

import (
	"errors"
	"math/rand"
	"testing"

	"VoxelCake/shared/pixelart"
)

func newTestSet(t *testing.T) pixelart.Set {
	t.Helper()
	set, err := pixelart.GenerateDefaults(pixelart.NewGenerator(rand.New(rand.NewSource(7))))
	if err != nil {
		t.Fatal(err)
	}
	return set
}

func TestFaceMapping(t *testing.T) {
	set := newTestSet(t)
	cat, err := NewCatalog(set)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		kind Kind
		want [FaceCount]pixelart.Role
	}{
		{KindGrassBlock, [FaceCount]pixelart.Role{
			pixelart.RoleDirt, pixelart.RoleDirt, pixelart.RoleGrassTop,
			pixelart.RoleDirt, pixelart.RoleDirt, pixelart.RoleDirt,
		}},
		{KindCake, [FaceCount]pixelart.Role{
			pixelart.RoleCakeSide, pixelart.RoleCakeSide, pixelart.RoleCakeTop,
			pixelart.RoleCakeSide, pixelart.RoleCakeSide, pixelart.RoleCakeSide,
		}},
	}

	for _, tt := range tests {
		fs, ok := cat.Faces(tt.kind)
		if !ok {
			t.Fatalf("tipo %s ausente", tt.kind)
		}
		for face, role := range tt.want {
			got := fs[face].Texture
			if got == nil || got != set[role] {
				t.Errorf("%s face %d: textura %v, want %s", tt.kind, face, got, role)
			}
		}
	}
}

func TestFlatKinds(t *testing.T) {
	cat, err := NewCatalog(newTestSet(t))
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []Kind{KindCandle, KindFlame, KindDiamond} {
		fs, ok := cat.Faces(k)
		if !ok {
			t.Fatalf("tipo %s ausente", k)
		}
		if fs.Textured() {
			t.Errorf("%s não deveria ter textura", k)
		}
	}

	flame, _ := cat.Faces(KindFlame)
	if !flame[FacePosY].Unlit {
		t.Error("chama deveria ignorar iluminação")
	}
	diamond, _ := cat.Faces(KindDiamond)
	if diamond[FacePosX].Metalness != 0.8 || diamond[FacePosX].Roughness != 0.1 {
		t.Errorf("diamante com metalness/roughness %v/%v", diamond[FacePosX].Metalness, diamond[FacePosX].Roughness)
	}
}

func TestCatalogSealsTextures(t *testing.T) {
	set := newTestSet(t)
	if _, err := NewCatalog(set); err != nil {
		t.Fatal(err)
	}
	for r, tex := range set {
		if !tex.Sealed() {
			t.Errorf("textura %s não foi selada", r)
		}
	}
	if err := set[pixelart.RoleCakeTop].AddBerries(); !errors.Is(err, pixelart.ErrSealed) {
		t.Errorf("decoração após catálogo = %v, want ErrSealed", err)
	}
}

func TestCatalogMissingTexture(t *testing.T) {
	set := newTestSet(t)
	delete(set, pixelart.RoleDirt)
	if _, err := NewCatalog(set); !errors.Is(err, ErrMissingTexture) {
		t.Fatalf("NewCatalog sem terra = %v, want ErrMissingTexture", err)
	}
}

func TestAtlas(t *testing.T) {
	set := newTestSet(t)
	cat, err := NewCatalog(set)
	if err != nil {
		t.Fatal(err)
	}

	grass, _ := cat.Faces(KindGrassBlock)
	atlas := grass.Atlas()
	if b := atlas.Bounds(); b.Dx() != pixelart.Size*int(FaceCount) || b.Dy() != pixelart.Size {
		t.Fatalf("atlas %dx%d", b.Dx(), b.Dy())
	}

	top := set[pixelart.RoleGrassTop].Image.RGBAAt(1, 1)
	got := atlas.NRGBAAt(int(FacePosY)*pixelart.Size+1, 1)
	if got.R != top.R || got.G != top.G || got.B != top.B {
		t.Errorf("coluna do topo = %v, want %v", got, top)
	}

	flame, _ := cat.Faces(KindFlame)
	px := flame.Atlas().NRGBAAt(int(FaceNegZ)*pixelart.Size+8, 8)
	if px.R != 0xff || px.G != 0xa5 || px.B != 0 {
		t.Errorf("atlas da chama = %v, want #ffa500", px)
	}
}
