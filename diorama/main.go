package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"VoxelCake/diorama/internal/app"
	"VoxelCake/shared/config"
)

func main() {
	// Raylib/OpenGL exige rodar na thread principal do SO
	runtime.LockOSThread()

	// Flags de linha de comando
	configPath := flag.String("config", "", "Arquivo de configuração (padrão: config.json ao lado do executável)")
	fullscreen := flag.Bool("fullscreen", false, "Iniciar em tela cheia")
	debug := flag.Bool("debug", false, "Mostrar informações de debug")
	width := flag.Int("width", 0, "Largura da janela")
	height := flag.Int("height", 0, "Altura da janela")
	seed := flag.Int64("seed", 0, "Semente do gerador aleatório (0 = relógio)")
	maxDiamonds := flag.Int("max-diamonds", -1, "Limite de diamantes vivos (0 = sem limite)")
	mute := flag.Bool("mute", false, "Desativar o som")
	flag.Parse()

	// Configurar Log em Arquivo
	f, err := os.OpenFile("debug_diorama.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err == nil {
		defer f.Close()
		log.SetOutput(f)
		log.Println("--- INICIANDO VOXELCAKE ---")
	}

	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Println("╔══════════════════════════════════════╗")
	log.Println("║          VoxelCake v0.1.0            ║")
	log.Println("║   Diorama voxel de bolo e diamantes  ║")
	log.Println("╚══════════════════════════════════════╝")

	// Carregar configurações
	var cfg *config.Config
	if *configPath != "" {
		cfg, err = config.LoadFrom(*configPath)
		if err != nil {
			log.Printf("[Config] Usando padrão: %v", err)
			cfg = config.DefaultConfig()
		}
	} else {
		cfg = config.Load()
	}

	// Aplicar flags de linha de comando (sobrescrevem o config salvo)
	if *fullscreen {
		cfg.Fullscreen = true
	}
	if *debug {
		cfg.ShowDebugInfo = true
	}
	if *width > 0 {
		cfg.WindowWidth = int32(*width)
	}
	if *height > 0 {
		cfg.WindowHeight = int32(*height)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *maxDiamonds >= 0 {
		cfg.MaxDiamonds = *maxDiamonds
	}
	if *mute {
		cfg.Mute = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Criar e rodar a aplicação
	application := app.New(cfg, *configPath)
	if err := application.Run(ctx); err != nil {
		log.Fatalf("[App] %v", err)
	}
}
