package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config armazena as configurações do VoxelCake.
type Config struct {
	// Janela
	WindowWidth  int32  `json:"window_width"`
	WindowHeight int32  `json:"window_height"`
	WindowTitle  string `json:"window_title"`
	Fullscreen   bool   `json:"fullscreen"`
	TargetFPS    int32  `json:"target_fps"`

	// Câmera
	AutoRotate      bool    `json:"auto_rotate"`
	AutoRotateSpeed float32 `json:"auto_rotate_speed"`
	Damping         float32 `json:"damping"`

	// Áudio
	Volume      float64 `json:"volume"`
	Mute        bool    `json:"mute"`
	StereoPop   bool    `json:"stereo_pop"`   // balanço do "pop" conforme a posição do diamante
	BitCrush    float64 `json:"bitcrush"`     // 0 desativa
	MaxDiamonds int     `json:"max_diamonds"` // 0 = sem limite

	// Semente do gerador aleatório (0 = baseada no relógio)
	Seed int64 `json:"seed"`

	// Debug
	ShowDebugInfo bool `json:"show_debug_info"`
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "VoxelCake",
		Fullscreen:   false,
		TargetFPS:    60,

		AutoRotate:      true,
		AutoRotateSpeed: 1.0,
		Damping:         0.05,

		Volume:      1.0,
		Mute:        false,
		StereoPop:   false,
		BitCrush:    0,
		MaxDiamonds: 0,

		Seed: 0,

		ShowDebugInfo: false,
	}
}

// Path retorna o caminho padrão do arquivo de configuração, ao lado do executável.
func Path() string {
	execDir, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(filepath.Dir(execDir), "config.json")
}

// Load carrega as configurações do caminho padrão.
// Se o arquivo não existir ou for inválido, retorna as configurações padrão.
func Load() *Config {
	cfg, err := LoadFrom(Path())
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// LoadFrom carrega as configurações de um arquivo JSON. Campos ausentes mantêm o padrão.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s inválida: %w", path, err)
	}

	return cfg, nil
}

// Save salva as configurações no caminho padrão.
func (c *Config) Save() error {
	return c.SaveTo(Path())
}

// SaveTo salva as configurações em um arquivo JSON.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
