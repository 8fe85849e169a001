package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config armazena as configurações do MontaCasa.
type Config struct {
	// Janela
	WindowWidth  int32  `json:"window_width"`
	WindowHeight int32  `json:"window_height"`
	WindowTitle  string `json:"window_title"`
	Fullscreen   bool   `json:"fullscreen"`
	TargetFPS    int32  `json:"target_fps"`

	// Caminhos de dados
	CatalogPath  string `json:"catalog_path"`
	DesignDBPath string `json:"design_db_path"`

	// Servidor de compartilhamento (opcional; vazio desativa)
	ServerURL string `json:"server_url"`

	// Câmera
	CameraSpeed       float32 `json:"camera_speed"`
	CameraSensitivity float32 `json:"camera_sensitivity"`
	ZoomSpeed         float32 `json:"zoom_speed"`

	// Debug
	ShowDebugInfo bool `json:"show_debug_info"`
	ShowGrid      bool `json:"show_grid"`
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "MontaCasa",
		Fullscreen:   false,
		TargetFPS:    60,

		CatalogPath:  "assets/catalog/blocks.json",
		DesignDBPath: "saves/designs.db",

		ServerURL: "",

		CameraSpeed:       10.0,
		CameraSensitivity: 0.3,
		ZoomSpeed:         5.0,

		ShowDebugInfo: false,
		ShowGrid:      true,
	}
}

// configPath retorna o caminho do arquivo de configuração.
func configPath() string {
	execDir, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(filepath.Dir(execDir), "config.json")
}

// Load carrega as configurações de um arquivo JSON.
// Se o arquivo não existir ou estiver corrompido, retorna as configurações padrão.
func Load() *Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath())
	if err != nil {
		return cfg
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return DefaultConfig()
	}

	return cfg
}

// Save salva as configurações em um arquivo JSON.
func (c *Config) Save() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(configPath(), data, 0644)
}
