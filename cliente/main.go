package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"MontaCasa/cliente/internal/app"
	"MontaCasa/shared/config"
)

func main() {
	// IMPORTANTE para estabilidade no Windows: Raylib/OpenGL exige rodar na thread principal do SO
	runtime.LockOSThread()

	// Flags de linha de comando
	serverURL := flag.String("server", "", "URL do servidor de compartilhamento (ex: ws://localhost:8080/ws)")
	catalogPath := flag.String("catalog", "", "Caminho do catálogo de blocos")
	fullscreen := flag.Bool("fullscreen", false, "Iniciar em tela cheia")
	debug := flag.Bool("debug", false, "Mostrar informações de debug")
	width := flag.Int("width", 0, "Largura da janela")
	height := flag.Int("height", 0, "Altura da janela")
	flag.Parse()

	// Configurar Log em Arquivo
	f, err := os.OpenFile("debug_mc.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err == nil {
		log.SetOutput(f)
		log.Println("--- INICIANDO MONTACASA ---")
	}

	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Println("╔══════════════════════════════════════╗")
	log.Println("║          MontaCasa v0.1.0            ║")
	log.Println("║   Editor 3D de construções modulares ║")
	log.Println("╚══════════════════════════════════════╝")

	// Carregar configurações
	cfg := config.Load()

	// Aplicar flags de linha de comando (sobrescrevem o config salvo)
	if *serverURL != "" {
		cfg.ServerURL = *serverURL
	}
	if *catalogPath != "" {
		cfg.CatalogPath = *catalogPath
	}
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

	// Criar e rodar a aplicação
	application := app.New(cfg)
	if err := application.Run(); err != nil {
		log.Fatalf("[MontaCasa] Erro fatal: %v", err)
	}
}
