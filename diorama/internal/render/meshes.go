package render

/*
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"VoxelCake/diorama/internal/scene"
	"VoxelCake/shared/meshing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

type meshKey struct {
	shape scene.Shape
	size  mgl32.Vec3
}

// meshFor retorna (criando na primeira vez) a malha GPU de uma forma.
func (r *Renderer) meshFor(m *scene.Mesh) rl.Mesh {
	key := meshKey{shape: m.Shape, size: m.Size}
	if mesh, ok := r.meshes[key]; ok {
		return mesh
	}

	var geo meshing.GeometryData
	switch m.Shape {
	case scene.ShapeOctahedron:
		geo = meshing.Octahedron(m.Size.X())
	default:
		geo = meshing.Cube(m.Size.X(), m.Size.Y(), m.Size.Z())
	}

	mesh := geometryToMesh(geo)
	rl.UploadMesh(&mesh, false)
	r.meshes[key] = mesh
	return mesh
}

// geometryToMesh copia os buffers para memória C; o Raylib libera no UnloadMesh.
func geometryToMesh(data meshing.GeometryData) rl.Mesh {
	var mesh rl.Mesh
	vCount := int32(data.VertexCount())
	mesh.VertexCount = vCount
	mesh.TriangleCount = vCount / 3

	if len(data.Vertices) > 0 {
		mesh.Vertices = (*float32)(copyToC(unsafe.Pointer(&data.Vertices[0]), len(data.Vertices)*4))
	}
	if len(data.Normals) > 0 {
		mesh.Normals = (*float32)(copyToC(unsafe.Pointer(&data.Normals[0]), len(data.Normals)*4))
	}
	if len(data.Colors) > 0 {
		mesh.Colors = (*uint8)(copyToC(unsafe.Pointer(&data.Colors[0]), len(data.Colors)))
	}
	if len(data.UVs) > 0 {
		mesh.Texcoords = (*float32)(copyToC(unsafe.Pointer(&data.UVs[0]), len(data.UVs)*4))
	}
	return mesh
}

func copyToC(data unsafe.Pointer, size int) unsafe.Pointer {
	if size <= 0 || data == nil {
		return nil
	}
	ptr := C.malloc(C.size_t(size))
	if ptr == nil {
		return nil
	}
	cSlice := unsafe.Slice((*byte)(ptr), size)
	goSlice := unsafe.Slice((*byte)(data), size)
	copy(cSlice, goSlice)
	return ptr
}
