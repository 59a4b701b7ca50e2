package render

import (
	"log"
	"unsafe"

	"VoxelCake/diorama/internal/camera"
	"VoxelCake/diorama/internal/scene"
	"VoxelCake/shared/materials"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

type kindMaterial struct {
	material rl.Material
	atlas    rl.Texture2D
	emissive []float32
	specular float32
	unlit    float32
}

type shaderLocs struct {
	ambient, sunDir, sunColor          int32
	pointPos, pointColor, pointDist    int32
	fogColor, fogNear, fogFar, viewPos int32
	emissive, specular, unlit          int32
}

// Renderer desenha a cena numa render texture do tamanho da viewport.
type Renderer struct {
	Shader rl.Shader
	locs   shaderLocs

	materials map[materials.Kind]*kindMaterial
	meshes    map[meshKey]rl.Mesh

	Target        rl.RenderTexture2D
	width, height int32

	DrawCalls int // malhas desenhadas no último frame
}

// NewRenderer carrega shader e materiais. Requer a janela já criada.
func NewRenderer(cat *materials.Catalog, w, h int) *Renderer {
	r := &Renderer{
		materials: make(map[materials.Kind]*kindMaterial),
		meshes:    make(map[meshKey]rl.Mesh),
	}

	r.Shader = rl.LoadShaderFromMemory(litVertexShader, litFragmentShader)

	// Locs é um ponteiro bruto (*int32) para o array C de localizações
	locs := unsafe.Slice(r.Shader.Locs, 32)
	locs[rl.ShaderLocMatrixModel] = rl.GetShaderLocation(r.Shader, "matModel")
	locs[rl.ShaderLocMatrixNormal] = rl.GetShaderLocation(r.Shader, "matNormal")
	locs[rl.ShaderLocVectorView] = rl.GetShaderLocation(r.Shader, "viewPos")

	r.locs = shaderLocs{
		ambient:    rl.GetShaderLocation(r.Shader, "ambientColor"),
		sunDir:     rl.GetShaderLocation(r.Shader, "sunDir"),
		sunColor:   rl.GetShaderLocation(r.Shader, "sunColor"),
		pointPos:   rl.GetShaderLocation(r.Shader, "pointPos"),
		pointColor: rl.GetShaderLocation(r.Shader, "pointColor"),
		pointDist:  rl.GetShaderLocation(r.Shader, "pointDistance"),
		fogColor:   rl.GetShaderLocation(r.Shader, "fogColor"),
		fogNear:    rl.GetShaderLocation(r.Shader, "fogNear"),
		fogFar:     rl.GetShaderLocation(r.Shader, "fogFar"),
		viewPos:    locs[rl.ShaderLocVectorView],
		emissive:   rl.GetShaderLocation(r.Shader, "emissive"),
		specular:   rl.GetShaderLocation(r.Shader, "specular"),
		unlit:      rl.GetShaderLocation(r.Shader, "unlit"),
	}

	for _, kind := range materials.Kinds {
		faces, ok := cat.Faces(kind)
		if !ok {
			continue
		}
		r.materials[kind] = r.loadMaterial(faces)
	}

	r.Resize(w, h)

	log.Printf("[Renderer] Inicializado: %d materiais, viewport %dx%d", len(r.materials), w, h)
	return r
}

// loadMaterial cria o material de um tipo. Todas as faces vêm de um atlas de colunas,
// inclusive as de cor chapada, então colDiffuse fica branco.
func (r *Renderer) loadMaterial(faces materials.FaceSet) *kindMaterial {
	km := &kindMaterial{atlas: uploadImage(faces.Atlas())}

	km.material = rl.LoadMaterialDefault()
	km.material.Shader = r.Shader
	diffuse := km.material.GetMap(rl.MapDiffuse)
	diffuse.Texture = km.atlas
	diffuse.Color = rl.White

	s := faces[materials.FacePosX]
	km.emissive = rgb(s.Emissive, 1)
	km.specular = s.Metalness * (1 - s.Roughness)
	if s.Unlit {
		km.unlit = 1
	}
	return km
}

// Resize recria a render texture com exatamente w×h pixels.
func (r *Renderer) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	if r.Target.ID != 0 {
		rl.UnloadRenderTexture(r.Target)
	}
	r.width, r.height = int32(w), int32(h)
	r.Target = rl.LoadRenderTexture(r.width, r.height)
	rl.SetTextureFilter(r.Target.Texture, rl.FilterPoint)
}

// Size retorna o tamanho da render texture.
func (r *Renderer) Size() (int, int) { return int(r.width), int(r.height) }

func (r *Renderer) applyLights(sc *scene.Scene, cam *camera.Orbit) {
	sh := r.Shader
	rl.SetShaderValue(sh, r.locs.ambient, rgb(sc.Ambient.Color, sc.Ambient.Intensity), rl.ShaderUniformVec3)

	dir := sc.Sun.Position.Normalize()
	rl.SetShaderValue(sh, r.locs.sunDir, []float32{dir.X(), dir.Y(), dir.Z()}, rl.ShaderUniformVec3)
	rl.SetShaderValue(sh, r.locs.sunColor, rgb(sc.Sun.Color, sc.Sun.Intensity), rl.ShaderUniformVec3)

	// Só existe a luz da vela; sem ela a contribuição pontual é zerada
	pointColor := []float32{0, 0, 0}
	pointPos := []float32{0, 0, 0}
	pointDist := float32(1)
	if lights := sc.PointLights(); len(lights) > 0 {
		l := lights[0]
		pointColor = rgb(l.Color, l.Intensity)
		pointPos = []float32{l.Position.X(), l.Position.Y(), l.Position.Z()}
		pointDist = l.Distance
	}
	rl.SetShaderValue(sh, r.locs.pointColor, pointColor, rl.ShaderUniformVec3)
	rl.SetShaderValue(sh, r.locs.pointPos, pointPos, rl.ShaderUniformVec3)
	rl.SetShaderValue(sh, r.locs.pointDist, []float32{pointDist}, rl.ShaderUniformFloat)

	rl.SetShaderValue(sh, r.locs.fogColor, rgb(sc.Fog.Color, 1), rl.ShaderUniformVec3)
	rl.SetShaderValue(sh, r.locs.fogNear, []float32{sc.Fog.Near}, rl.ShaderUniformFloat)
	rl.SetShaderValue(sh, r.locs.fogFar, []float32{sc.Fog.Far}, rl.ShaderUniformFloat)

	p := cam.Position
	rl.SetShaderValue(sh, r.locs.viewPos, []float32{p.X(), p.Y(), p.Z()}, rl.ShaderUniformVec3)
}

func (r *Renderer) applySurface(km *kindMaterial) {
	rl.SetShaderValue(r.Shader, r.locs.emissive, km.emissive, rl.ShaderUniformVec3)
	rl.SetShaderValue(r.Shader, r.locs.specular, []float32{km.specular}, rl.ShaderUniformFloat)
	rl.SetShaderValue(r.Shader, r.locs.unlit, []float32{km.unlit}, rl.ShaderUniformFloat)
}

// Render desenha a cena inteira na render texture.
func (r *Renderer) Render(sc *scene.Scene, cam *camera.Orbit) {
	r.DrawCalls = 0

	rl.BeginTextureMode(r.Target)
	rl.ClearBackground(toColor(sc.Background))

	rl.BeginMode3D(toCamera3D(cam))
	// Substitui as matrizes do Raylib pelas da câmera (near/far próprios)
	rl.SetMatrixProjection(toMatrix(cam.Projection()))
	rl.SetMatrixModelview(toMatrix(cam.View()))

	r.applyLights(sc, cam)

	sc.Root.Walk(func(n *scene.Node, world mgl32.Mat4) {
		if n.Mesh == nil {
			return
		}
		km, ok := r.materials[n.Mesh.Kind]
		if !ok {
			return
		}
		r.applySurface(km)
		rl.DrawMesh(r.meshFor(n.Mesh), km.material, toMatrix(world))
		r.DrawCalls++
	})

	rl.EndMode3D()
	rl.EndTextureMode()
}

// Present copia a render texture para a tela. Deve ser chamado entre BeginDrawing/EndDrawing.
func (r *Renderer) Present() {
	// Render textures do OpenGL ficam de cabeça para baixo
	src := rl.NewRectangle(0, 0, float32(r.width), -float32(r.height))
	rl.DrawTextureRec(r.Target.Texture, src, rl.NewVector2(0, 0), rl.White)
}

// Unload libera todos os recursos de GPU.
func (r *Renderer) Unload() {
	for key, mesh := range r.meshes {
		rl.UnloadMesh(&mesh)
		delete(r.meshes, key)
	}
	for kind, km := range r.materials {
		rl.UnloadTexture(km.atlas)
		delete(r.materials, kind)
	}
	rl.UnloadShader(r.Shader)
	if r.Target.ID != 0 {
		rl.UnloadRenderTexture(r.Target)
		r.Target = rl.RenderTexture2D{}
	}
	log.Printf("[Renderer] Recursos liberados")
}
