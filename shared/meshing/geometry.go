package meshing

import (
	"math"

	"VoxelCake/shared/materials"
)

// GeometryData contém os buffers de vértices (não indexados) de uma malha.
type GeometryData struct {
	Vertices []float32
	Normals  []float32
	Colors   []uint8
	UVs      []float32
}

// VertexCount retorna o número de vértices.
func (g GeometryData) VertexCount() int {
	return len(g.Vertices) / 3
}

// MeshBuffer auxilia na construção de malhas.
type MeshBuffer struct {
	Geometry GeometryData
}

var white = [4]uint8{255, 255, 255, 255}

// AddFaceUV adiciona um quad (dois triângulos v1-v2-v3, v1-v3-v4) com UVs.
func (b *MeshBuffer) AddFaceUV(v1, v2, v3, v4 [3]float32, uv1, uv2, uv3, uv4 [2]float32, n [3]float32) {
	b.addVertexUV(v1, uv1, n)
	b.addVertexUV(v2, uv2, n)
	b.addVertexUV(v3, uv3, n)

	b.addVertexUV(v1, uv1, n)
	b.addVertexUV(v3, uv3, n)
	b.addVertexUV(v4, uv4, n)
}

// AddTriangleUV adiciona um triângulo com UVs.
func (b *MeshBuffer) AddTriangleUV(v1, v2, v3 [3]float32, uv1, uv2, uv3 [2]float32, n [3]float32) {
	b.addVertexUV(v1, uv1, n)
	b.addVertexUV(v2, uv2, n)
	b.addVertexUV(v3, uv3, n)
}

func (b *MeshBuffer) addVertexUV(v [3]float32, uv [2]float32, n [3]float32) {
	b.Geometry.Vertices = append(b.Geometry.Vertices, v[0], v[1], v[2])
	b.Geometry.Normals = append(b.Geometry.Normals, n[0], n[1], n[2])
	b.Geometry.Colors = append(b.Geometry.Colors, white[0], white[1], white[2], white[3])
	b.Geometry.UVs = append(b.Geometry.UVs, uv[0], uv[1])
}

// cubeFaces define normal, direita e cima de cada face (direita x cima = normal),
// na mesma ordem de materials.Face.
var cubeFaces = [materials.FaceCount]struct {
	n, r, u [3]float32
}{
	materials.FacePosX: {n: [3]float32{1, 0, 0}, r: [3]float32{0, 0, -1}, u: [3]float32{0, 1, 0}},
	materials.FaceNegX: {n: [3]float32{-1, 0, 0}, r: [3]float32{0, 0, 1}, u: [3]float32{0, 1, 0}},
	materials.FacePosY: {n: [3]float32{0, 1, 0}, r: [3]float32{1, 0, 0}, u: [3]float32{0, 0, -1}},
	materials.FaceNegY: {n: [3]float32{0, -1, 0}, r: [3]float32{1, 0, 0}, u: [3]float32{0, 0, 1}},
	materials.FacePosZ: {n: [3]float32{0, 0, 1}, r: [3]float32{1, 0, 0}, u: [3]float32{0, 1, 0}},
	materials.FaceNegZ: {n: [3]float32{0, 0, -1}, r: [3]float32{-1, 0, 0}, u: [3]float32{0, 1, 0}},
}

// FaceU retorna o intervalo horizontal de UV da coluna do atlas de uma face.
func FaceU(face materials.Face) (u0, u1 float32) {
	n := float32(materials.FaceCount)
	return float32(face) / n, float32(face+1) / n
}

// Cube gera uma caixa centrada na origem cujas faces amostram colunas do atlas.
func Cube(w, h, d float32) GeometryData {
	half := [3]float32{w / 2, h / 2, d / 2}
	b := &MeshBuffer{}

	for i, f := range cubeFaces {
		corner := func(s, t float32) [3]float32 {
			var v [3]float32
			for k := 0; k < 3; k++ {
				v[k] = (f.n[k] + s*f.r[k] + t*f.u[k]) * half[k]
			}
			return v
		}
		u0, u1 := FaceU(materials.Face(i))
		b.AddFaceUV(
			corner(-1, -1), corner(1, -1), corner(1, 1), corner(-1, 1),
			[2]float32{u0, 1}, [2]float32{u1, 1}, [2]float32{u1, 0}, [2]float32{u0, 0},
			f.n,
		)
	}
	return b.Geometry
}

// Octahedron gera um octaedro de faces planas com vértices a `radius` da origem.
func Octahedron(radius float32) GeometryData {
	b := &MeshBuffer{}
	inv := float32(1 / math.Sqrt(3))
	u0, u1 := FaceU(materials.FacePosX)
	uv := [2]float32{(u0 + u1) / 2, 0.5}

	for _, sx := range []float32{1, -1} {
		for _, sy := range []float32{1, -1} {
			for _, sz := range []float32{1, -1} {
				x := [3]float32{sx * radius, 0, 0}
				y := [3]float32{0, sy * radius, 0}
				z := [3]float32{0, 0, sz * radius}
				n := [3]float32{sx * inv, sy * inv, sz * inv}
				if sx*sy*sz > 0 {
					b.AddTriangleUV(x, y, z, uv, uv, uv, n)
				} else {
					b.AddTriangleUV(x, z, y, uv, uv, uv, n)
				}
			}
		}
	}
	return b.Geometry
}
