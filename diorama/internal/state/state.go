package state

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"VoxelCake/diorama/internal/camera"
	"VoxelCake/diorama/internal/particles"
	"VoxelCake/diorama/internal/scene"
	"VoxelCake/shared/config"
	"VoxelCake/shared/materials"
	"VoxelCake/shared/pixelart"
	"VoxelCake/shared/sound"
	"VoxelCake/shared/util"
)

const (
	// CakeSpin é o giro do bolo por tick, em radianos.
	CakeSpin = 0.01
	// FlameMin e FlameJitter definem a escala da chama: FlameMin + rand*FlameJitter.
	FlameMin    = 0.8
	FlameJitter = 0.4
)

// Output é o destino de cada frame (o renderer no app, um fake nos testes).
type Output interface {
	Render(sc *scene.Scene, cam *camera.Orbit)
	Resize(w, h int)
}

// Deps são as dependências externas do estado.
type Deps struct {
	Player sound.Player // nil = sem áudio
	Rand   *rand.Rand   // nil = semente da config ou do relógio
}

// State é o dono de tudo que muda entre frames.
type State struct {
	Textures pixelart.Set
	Catalog  *materials.Catalog
	Scene    *scene.Scene
	Diamonds *particles.LiveSet
	Camera   *camera.Orbit

	pop *sound.Trigger
	rng *rand.Rand

	width, height int
	ticks         uint64
	closed        bool
}

// New gera texturas, catálogo e cena, e prepara câmera, partículas e som.
func New(cfg *config.Config, deps Deps) (*State, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	rng := deps.Rand
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	textures, err := pixelart.GenerateDefaults(pixelart.NewGenerator(rng))
	if err != nil {
		return nil, fmt.Errorf("falha ao gerar texturas: %w", err)
	}

	cat, err := materials.NewCatalog(textures)
	if err != nil {
		return nil, fmt.Errorf("falha ao montar materiais: %w", err)
	}

	sc, err := scene.Build(cat)
	if err != nil {
		return nil, fmt.Errorf("falha ao montar cena: %w", err)
	}

	w, h := int(cfg.WindowWidth), int(cfg.WindowHeight)
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}

	cam := camera.New(float32(w) / float32(h))
	cam.AutoRotate = cfg.AutoRotate
	cam.AutoRotateSpeed = cfg.AutoRotateSpeed
	cam.Damping = cfg.Damping

	s := &State{
		Textures: textures,
		Catalog:  cat,
		Scene:    sc,
		Diamonds: particles.NewLiveSet(sc.Root, rng, cfg.MaxDiamonds),
		Camera:   cam,
		pop: sound.NewTrigger(deps.Player, sound.Pop(), sound.Options{
			Muted:    cfg.Mute,
			Volume:   cfg.Volume,
			Stereo:   cfg.StereoPop,
			BitCrush: cfg.BitCrush,
		}),
		rng:    rng,
		width:  w,
		height: h,
	}

	log.Printf("[State] Estado inicial pronto (%dx%d)", w, h)
	return s, nil
}

// Tick avança a simulação um passo.
func (s *State) Tick() {
	if s.closed {
		return
	}
	s.ticks++

	g := s.Scene.CakeGroup
	g.Rotation[1] = util.WrapAngle(g.Rotation[1] + CakeSpin)

	s.Scene.Flame.SetUniformScale(FlameMin + s.rng.Float32()*FlameJitter)

	s.Diamonds.Step()
	s.Camera.Update()
}

// Frame executa um tick e desenha exatamente uma vez.
func (s *State) Frame(out Output) {
	if s.closed {
		return
	}
	s.Tick()
	out.Render(s.Scene, s.Camera)
}

// PointerDown trata um clique na viewport. Retorna quantos diamantes nasceram.
func (s *State) PointerDown() int {
	if s.closed {
		return 0
	}
	return s.Diamonds.SpawnBatch(particles.BatchSize)
}

// ButtonClick cria um diamante e toca o "pop". O balanço segue a posição x do diamante.
func (s *State) ButtonClick() bool {
	if s.closed {
		return false
	}
	d, ok := s.Diamonds.Spawn()
	pan := 0.5
	if ok {
		pan = (float64(d.Position().X()) + particles.Footprint/2) / particles.Footprint
	}
	s.pop.Fire(pan)
	return ok
}

// Resize atualiza a câmera e o destino para W×H. Retorna false se o tamanho foi ignorado.
func (s *State) Resize(out Output, w, h int) bool {
	if s.closed || w <= 0 || h <= 0 {
		return false
	}
	s.width, s.height = w, h
	s.Camera.Resize(w, h)
	out.Resize(w, h)
	return true
}

// Viewport retorna o tamanho atual.
func (s *State) Viewport() (int, int) { return s.width, s.height }

// Ticks retorna quantos ticks já rodaram.
func (s *State) Ticks() uint64 { return s.ticks }

// CakeYaw retorna o giro atual do bolo em [0, 2π).
func (s *State) CakeYaw() float32 { return s.Scene.CakeGroup.Rotation[1] }

// Close encerra o estado. Depois disso os handlers não fazem nada.
func (s *State) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.Diamonds.Clear()
	log.Printf("[State] Encerrado após %d ticks", s.ticks)
}

// Closed informa se Close já foi chamado.
func (s *State) Closed() bool { return s.closed }
