package render

import (
	"image"
	"image/color"

	"VoxelCake/diorama/internal/camera"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// toMatrix converte uma matriz mathgl (coluna principal) para o Raylib.
// Os nomes Mi do Raylib seguem o mesmo índice de coluna principal.
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

func toVector3(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v.X(), Y: v.Y(), Z: v.Z()}
}

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// rgb retorna a cor normalizada multiplicada pela intensidade.
func rgb(c color.RGBA, intensity float32) []float32 {
	return []float32{
		float32(c.R) / 255 * intensity,
		float32(c.G) / 255 * intensity,
		float32(c.B) / 255 * intensity,
	}
}

func toCamera3D(cam *camera.Orbit) rl.Camera3D {
	return rl.Camera3D{
		Position:   toVector3(cam.Position),
		Target:     toVector3(cam.Target),
		Up:         toVector3(cam.Up),
		Fovy:       cam.Fov,
		Projection: rl.CameraPerspective,
	}
}

// uploadImage envia uma imagem Go para a GPU com filtro nearest (pixels nítidos).
func uploadImage(img image.Image) rl.Texture2D {
	rlImg := rl.NewImageFromImage(img)
	tex := rl.LoadTextureFromImage(rlImg)
	rl.UnloadImage(rlImg)
	rl.SetTextureFilter(tex, rl.FilterPoint)
	return tex
}
