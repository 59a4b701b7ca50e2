package state

import (
	"math"
	"math/rand"
	"testing"

	"VoxelCake/diorama/internal/camera"
	"VoxelCake/diorama/internal/particles"
	"VoxelCake/diorama/internal/scene"
	"VoxelCake/shared/config"
)

type fakeOutput struct {
	renders int
	resizes [][2]int
}

func (o *fakeOutput) Render(sc *scene.Scene, cam *camera.Orbit) { o.renders++ }
func (o *fakeOutput) Resize(w, h int)                           { o.resizes = append(o.resizes, [2]int{w, h}) }

type fakePlayer struct{ plays int }

func (p *fakePlayer) Suspended() bool { return false }
func (p *fakePlayer) Resume() error   { return nil }
func (p *fakePlayer) Play(pcm []byte, sampleRate, channels int) error {
	p.plays++
	return nil
}

func newState(t *testing.T, cfg *config.Config, p *fakePlayer) *State {
	t.Helper()
	deps := Deps{Rand: rand.New(rand.NewSource(7))}
	if p != nil {
		deps.Player = p
	}
	s, err := New(cfg, deps)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNewBuildsScene(t *testing.T) {
	s := newState(t, nil, nil)
	if s.Scene.BlockCount() != scene.PlatformSize*scene.PlatformSize {
		t.Errorf("blocos = %d", s.Scene.BlockCount())
	}
	if s.Diamonds.Len() != 0 || s.Ticks() != 0 || s.CakeYaw() != 0 {
		t.Errorf("estado inicial sujo: diamantes=%d ticks=%d yaw=%v", s.Diamonds.Len(), s.Ticks(), s.CakeYaw())
	}
	for role, tex := range s.Textures {
		if !tex.Sealed() {
			t.Errorf("textura %s não foi selada", role)
		}
	}
}

func TestCakeYawAfterTicks(t *testing.T) {
	s := newState(t, nil, nil)
	for _, n := range []int{1, 100, 700} {
		for s.Ticks() < uint64(n) {
			s.Tick()
		}
		want := math.Mod(float64(n)*CakeSpin, 2*math.Pi)
		if got := float64(s.CakeYaw()); math.Abs(got-want) > 1e-3 {
			t.Errorf("após %d ticks yaw = %v, esperado %v", n, got, want)
		}
		if y := s.CakeYaw(); y < 0 || float64(y) >= 2*math.Pi {
			t.Errorf("yaw fora de [0, 2π): %v", y)
		}
	}
}

func TestFlameFlicker(t *testing.T) {
	s := newState(t, nil, nil)
	for i := 0; i < 200; i++ {
		s.Tick()
		sc := s.Scene.Flame.Scale
		if sc[0] < FlameMin || sc[0] > FlameMin+FlameJitter || sc[0] != sc[1] || sc[1] != sc[2] {
			t.Fatalf("escala da chama inválida: %v", sc)
		}
	}
}

func TestFrameRendersOnce(t *testing.T) {
	s := newState(t, nil, nil)
	out := &fakeOutput{}
	for i := 0; i < 10; i++ {
		s.Frame(out)
	}
	if out.renders != 10 || s.Ticks() != 10 {
		t.Errorf("renders=%d ticks=%d", out.renders, s.Ticks())
	}
}

func TestPointerDownBatches(t *testing.T) {
	s := newState(t, nil, nil)
	for i := 1; i <= 4; i++ {
		if n := s.PointerDown(); n != particles.BatchSize {
			t.Fatalf("clique %d criou %d", i, n)
		}
		if s.Diamonds.Len() != particles.BatchSize*i {
			t.Fatalf("após %d cliques: %d diamantes", i, s.Diamonds.Len())
		}
	}
}

func TestPointerDownInterleavedWithTicks(t *testing.T) {
	s := newState(t, nil, nil)
	for i := 1; i <= 40; i++ {
		for j := 0; j < i%3; j++ {
			s.Tick()
		}
		s.PointerDown()
		s.Tick()
	}
	// o primeiro lote vive no máximo 80 ticks, ninguém passou de y=-5
	if s.Diamonds.Len() != 40*particles.BatchSize {
		t.Fatalf("após 40 cliques intercalados: %d diamantes, esperado %d", s.Diamonds.Len(), 40*particles.BatchSize)
	}
}

func TestBitCrushFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.BitCrush = 1e9
	s := newState(t, cfg, nil)
	for i, v := range s.pop.Render(0.5).Data {
		if v != 0 {
			t.Fatalf("bitcrush máximo deveria zerar as amostras, amostra %d = %v", i, v)
		}
	}

	cfg = config.DefaultConfig()
	cfg.BitCrush = 0
	s = newState(t, cfg, nil)
	if v := s.pop.Render(0.5).Data[0]; v == 0 {
		t.Fatal("sem bitcrush o pop não deveria ser silencioso")
	}
}

func TestDiamondsFallAndDespawn(t *testing.T) {
	s := newState(t, nil, nil)
	s.PointerDown()
	before := len(s.Scene.Root.Children())
	for i := 0; i < 150; i++ {
		s.Tick()
	}
	if s.Diamonds.Len() != particles.BatchSize {
		t.Fatalf("diamantes em y=-5 devem continuar vivos, got %d", s.Diamonds.Len())
	}
	s.Tick()
	if s.Diamonds.Len() != 0 {
		t.Fatalf("diamantes abaixo de -5 devem sumir, got %d", s.Diamonds.Len())
	}
	if got := len(s.Scene.Root.Children()); got != before-particles.BatchSize {
		t.Errorf("nós no grafo: %d, esperado %d", got, before-particles.BatchSize)
	}
}

func TestButtonClickPlaysPop(t *testing.T) {
	p := &fakePlayer{}
	s := newState(t, nil, p)
	if !s.ButtonClick() {
		t.Fatal("botão não criou diamante")
	}
	if s.Diamonds.Len() != 1 || p.plays != 1 {
		t.Errorf("diamantes=%d sons=%d", s.Diamonds.Len(), p.plays)
	}
}

func TestButtonClickMuted(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Mute = true
	p := &fakePlayer{}
	s := newState(t, cfg, p)
	s.ButtonClick()
	if s.Diamonds.Len() != 1 || p.plays != 0 {
		t.Errorf("diamantes=%d sons=%d", s.Diamonds.Len(), p.plays)
	}
}

func TestMaxDiamonds(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.MaxDiamonds = 7
	s := newState(t, cfg, nil)
	if n := s.PointerDown(); n != 5 {
		t.Fatalf("primeiro lote = %d", n)
	}
	if n := s.PointerDown(); n != 2 {
		t.Fatalf("segundo lote = %d", n)
	}
	if s.ButtonClick() {
		t.Error("botão não deveria passar do limite")
	}
}

func TestResize(t *testing.T) {
	s := newState(t, nil, nil)
	out := &fakeOutput{}
	if !s.Resize(out, 800, 600) {
		t.Fatal("resize válido deveria ser aplicado")
	}

	if w, h := s.Viewport(); w != 800 || h != 600 {
		t.Errorf("viewport = %dx%d", w, h)
	}
	if math.Abs(float64(s.Camera.Aspect)-800.0/600.0) > 1e-6 {
		t.Errorf("aspect = %v", s.Camera.Aspect)
	}
	if len(out.resizes) != 1 || out.resizes[0] != [2]int{800, 600} {
		t.Errorf("resize do destino: %v", out.resizes)
	}

	// janela minimizada reporta 0
	for _, sz := range [][2]int{{0, 600}, {800, 0}, {0, 0}} {
		if s.Resize(out, sz[0], sz[1]) {
			t.Errorf("Resize(%d, %d) deveria ser ignorado", sz[0], sz[1])
		}
	}
	if len(out.resizes) != 1 {
		t.Errorf("tamanho inválido não deveria propagar")
	}
	if w, h := s.Viewport(); w != 800 || h != 600 {
		t.Errorf("viewport mudou com tamanho inválido: %dx%d", w, h)
	}
}

func TestCloseStopsHandlers(t *testing.T) {
	p := &fakePlayer{}
	s := newState(t, nil, p)
	s.PointerDown()
	s.Close()

	out := &fakeOutput{}
	s.Frame(out)
	s.Tick()
	s.PointerDown()
	s.ButtonClick()
	s.Resize(out, 10, 10)

	if !s.Closed() || out.renders != 0 || len(out.resizes) != 0 || p.plays != 0 {
		t.Errorf("handlers ativos após Close: renders=%d resizes=%d plays=%d", out.renders, len(out.resizes), p.plays)
	}
	if s.Diamonds.Len() != 0 || s.Ticks() != 0 {
		t.Errorf("diamantes=%d ticks=%d", s.Diamonds.Len(), s.Ticks())
	}
	s.Close()
}
