package camera

import (
	"math"

	"VoxelCake/shared/util"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultFov      = 75.0
	DefaultNear     = 0.1
	DefaultFar      = 1000.0
	DefaultDamping  = 0.05
	polarEpsilon    = 0.000001
	autoRotateSteps = 60 * 60 // uma volta por minuto a 60 FPS com velocidade 1
)

// Orbit é uma câmera perspectiva que orbita um alvo com amortecimento.
// Não depende do Raylib: o backend só lê Position, Target e Projection.
type Orbit struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3

	Fov    float32 // graus, vertical
	Near   float32
	Far    float32
	Aspect float32

	Damping         float32 // 0 desativa o amortecimento
	AutoRotate      bool
	AutoRotateSpeed float32
	RotateSpeed     float32
	ZoomSpeed       float32
	MinDistance     float32
	MaxDistance     float32

	// Deltas pendentes em coordenadas esféricas
	deltaTheta float32
	deltaPhi   float32
	scale      float32

	projection mgl32.Mat4
}

// New cria a câmera em (0,5,10) olhando para a origem.
func New(aspect float32) *Orbit {
	if aspect <= 0 {
		aspect = 1
	}
	o := &Orbit{
		Position:        mgl32.Vec3{0, 5, 10},
		Target:          mgl32.Vec3{0, 0, 0},
		Up:              mgl32.Vec3{0, 1, 0},
		Fov:             DefaultFov,
		Near:            DefaultNear,
		Far:             DefaultFar,
		Aspect:          aspect,
		Damping:         DefaultDamping,
		AutoRotate:      true,
		AutoRotateSpeed: 1.0,
		RotateSpeed:     1.0,
		ZoomSpeed:       1.0,
		MinDistance:     1.0,
		MaxDistance:     100.0,
		scale:           1,
	}
	o.updateProjection()
	return o
}

func (o *Orbit) updateProjection() {
	o.projection = mgl32.Perspective(mgl32.DegToRad(o.Fov), o.Aspect, o.Near, o.Far)
}

// Projection retorna a matriz de projeção atual.
func (o *Orbit) Projection() mgl32.Mat4 { return o.projection }

// View retorna a matriz de visão.
func (o *Orbit) View() mgl32.Mat4 {
	return mgl32.LookAtV(o.Position, o.Target, o.Up)
}

// Resize ajusta a proporção à nova viewport. Tamanhos não positivos são ignorados.
func (o *Orbit) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	o.Aspect = float32(w) / float32(h)
	o.updateProjection()
}

// Rotate acumula um arrasto do ponteiro em pixels. Uma altura de viewport equivale a uma volta.
func (o *Orbit) Rotate(dx, dy float32, viewportHeight int) {
	if viewportHeight <= 0 {
		return
	}
	h := float32(viewportHeight)
	o.deltaTheta -= util.TwoPi * dx / h * o.RotateSpeed
	o.deltaPhi -= util.TwoPi * dy / h * o.RotateSpeed
}

// Zoom aplica o giro da roda do mouse (positivo aproxima).
func (o *Orbit) Zoom(wheel float32) {
	if wheel == 0 {
		return
	}
	step := float32(math.Pow(0.95, float64(o.ZoomSpeed)))
	if wheel > 0 {
		o.scale *= step
	} else {
		o.scale /= step
	}
}

// Spherical retorna raio, azimute e ângulo polar da posição em relação ao alvo.
func (o *Orbit) Spherical() (radius, theta, phi float32) {
	off := o.Position.Sub(o.Target)
	radius = off.Len()
	if radius == 0 {
		return 0, 0, 0
	}
	theta = float32(math.Atan2(float64(off.X()), float64(off.Z())))
	phi = float32(math.Acos(float64(util.Clamp(off.Y()/radius, -1, 1))))
	return radius, theta, phi
}

func (o *Orbit) autoRotationAngle() float32 {
	return util.TwoPi / autoRotateSteps * o.AutoRotateSpeed
}

// Update aplica os deltas pendentes. Deve ser chamado uma vez por frame.
func (o *Orbit) Update() {
	radius, theta, phi := o.Spherical()

	if o.AutoRotate {
		o.deltaTheta -= o.autoRotationAngle()
	}

	k := o.Damping
	if k <= 0 || k > 1 {
		k = 1
	}
	theta += o.deltaTheta * k
	phi += o.deltaPhi * k
	phi = util.Clamp(phi, polarEpsilon, math.Pi-polarEpsilon)

	radius = util.Clamp(radius*o.scale, o.MinDistance, o.MaxDistance)

	sinPhi := float32(math.Sin(float64(phi)))
	off := mgl32.Vec3{
		radius * sinPhi * float32(math.Sin(float64(theta))),
		radius * float32(math.Cos(float64(phi))),
		radius * sinPhi * float32(math.Cos(float64(theta))),
	}
	o.Position = o.Target.Add(off)

	o.deltaTheta = util.Lerp(o.deltaTheta, 0, k)
	o.deltaPhi = util.Lerp(o.deltaPhi, 0, k)
	o.scale = 1
}
