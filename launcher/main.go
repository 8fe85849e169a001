package main

import (
	"fmt"
	"log"
	"os/exec"
	"path/filepath"
	"time"
)

func main() {
	fmt.Println("╔══════════════════════════════════════╗")
	fmt.Println("║         MontaCasa Launcher           ║")
	fmt.Println("╚══════════════════════════════════════╝")

	// 1. Iniciar o Servidor de compartilhamento em uma nova janela
	fmt.Println("[1/2] Iniciando Servidor de compartilhamento...")
	serverCmd := exec.Command("cmd", "/c", "start", "MontaCasa SERVER", "server.exe")
	serverCmd.Dir = "servidor"
	if err := serverCmd.Run(); err != nil {
		log.Fatalf("Erro ao iniciar servidor: %v", err)
	}

	// 2. Aguardar o servidor inicializar
	fmt.Println("Aguardando inicialização do servidor...")
	time.Sleep(2 * time.Second)

	// 3. Iniciar o Editor silenciosamente (App GUI não precisa de CMD)
	fmt.Println("[2/2] Abrindo Editor...")

	// Caminho absoluto para garantir que o Windows encontre o arquivo
	absClientPath, err := filepath.Abs("cliente/client.exe")
	if err != nil {
		log.Fatalf("Erro ao resolver caminho do cliente: %v", err)
	}

	clientCmd := exec.Command(absClientPath, "-server", "ws://localhost:8080/ws")
	clientCmd.Dir = "cliente" // Diretório de trabalho para carregar assets

	if err := clientCmd.Start(); err != nil {
		fmt.Printf("ERRO CRÍTICO: Não foi possível executar o editor em %s\n", absClientPath)
		fmt.Printf("Detalhes: %v\n", err)
		fmt.Println("Pressione Enter para sair...")
		fmt.Scanln()
		return
	}

	fmt.Println("\nSucesso! MontaCasa foi iniciado.")
	fmt.Println("O Launcher fechará automaticamente em 2 segundos...")
	time.Sleep(2 * time.Second)
}
