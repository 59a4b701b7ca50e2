package app

import (
	"context"
	"fmt"
	"log"

	"VoxelCake/diorama/internal/render"
	"VoxelCake/diorama/internal/state"
	"VoxelCake/shared/config"
	"VoxelCake/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// App é a janela do diorama: liga entrada, estado, renderer e áudio.
type App struct {
	Config     *config.Config
	configPath string // vazio = caminho padrão

	state    *state.State
	renderer *render.Renderer
	audio    *AudioDevice

	frameCount int
	frameTimes *util.Ring[float32] // histórico para o gráfico do HUD

	// Entrada
	dragging    bool // arrasto de órbita em andamento
	buttonArmed bool // pressionado sobre o botão, aguardando soltar
}

// New cria a aplicação. configPath é onde a configuração é salva ao sair.
func New(cfg *config.Config, configPath string) *App {
	return &App{
		Config:     cfg,
		configPath: configPath,
		frameTimes: util.NewRing[float32](frameHistory),
	}
}

// Run abre a janela e roda o loop até a janela fechar ou ctx ser cancelado.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro fatal recuperado: %v", r)
			panic(r)
		}
	}()

	// Sem MSAA: os pixels das texturas ficam nítidos
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	rl.SetTraceLogLevel(rl.LogWarning)

	if a.Config.Fullscreen {
		rl.ToggleFullscreen()
	}
	rl.SetTargetFPS(a.Config.TargetFPS)

	log.Println("[App] Janela inicializada com sucesso")
	log.Printf("[App] Resolução: %dx%d", rl.GetScreenWidth(), rl.GetScreenHeight())

	a.audio = NewAudioDevice()

	st, err := state.New(a.Config, state.Deps{Player: a.audio})
	if err != nil {
		rl.CloseWindow()
		return fmt.Errorf("falha ao iniciar o diorama: %w", err)
	}
	a.state = st

	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	a.renderer = render.NewRenderer(st.Catalog, w, h)
	a.state.Resize(a.renderer, w, h)

	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			log.Println("[App] Encerrando por sinal")
			break
		}
		a.update()
		a.draw()
	}

	a.shutdown()
	rl.CloseWindow()
	return nil
}

// update processa entrada e avança um frame.
func (a *App) update() {
	a.frameCount++
	a.frameTimes.Push(rl.GetFrameTime())

	a.handleResize()
	a.updateInput()
	a.state.Frame(a.renderer)
	a.audio.Reap()
}

func (a *App) handleResize() {
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	if w <= 0 || h <= 0 {
		// janela minimizada
		return
	}
	vw, vh := a.state.Viewport()
	if (rl.IsWindowResized() || w != vw || h != vh) && a.state.Resize(a.renderer, w, h) {
		log.Printf("[App] Viewport redimensionada: %dx%d", w, h)
	}
}

// shutdown realiza a limpeza de recursos.
func (a *App) shutdown() {
	log.Println("[App] Finalizando aplicação...")

	a.state.Close()
	a.renderer.Unload()
	a.audio.Close()

	var err error
	if a.configPath != "" {
		err = a.Config.SaveTo(a.configPath)
	} else {
		err = a.Config.Save()
	}
	if err != nil {
		log.Printf("[App] Erro ao salvar configurações: %v", err)
	}
}
