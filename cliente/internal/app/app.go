package app

import (
	"log"
	"sync"

	"MontaCasa/cliente/internal/camera"
	"MontaCasa/cliente/internal/client"
	"MontaCasa/cliente/internal/render"
	"MontaCasa/shared/assembly"
	"MontaCasa/shared/catalog"
	"MontaCasa/shared/config"
	"MontaCasa/shared/designstore"
	"MontaCasa/shared/sharenet"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AppState representa os estados possíveis da aplicação.
type AppState int

const (
	StateLoading AppState = iota // Carregando catálogo e assets
	StateEditing                 // Editando a montagem
	StatePaused                  // Pausado
)

// remoteDesign carrega um design recebido do servidor para a thread principal.
type remoteDesign struct {
	name string
	data string
}

// App é a aplicação principal do MontaCasa.
type App struct {
	Config *config.Config
	State  AppState

	// Controlador de Câmera orbital
	Cam *camera.Controller

	// Dados da montagem
	Catalog  *catalog.Catalog
	Assembly *assembly.State
	renderer *render.Renderer

	// Modelo 3D associado a cada instância (resolvido de forma assíncrona)
	handles map[*assembly.Instance]*render.ModelHandle

	// Navegação do catálogo
	categoryIndex int
	blockIndex    int

	// Telhado precisa ser regerado quando a montagem muda
	roofDirty bool

	// Persistência local e compartilhamento
	designs *designstore.Store
	share   *client.ShareClient

	// Designs publicados no servidor (atualizado via callback)
	sharedMu        sync.Mutex
	sharedDesigns   []sharenet.DesignInfo
	incomingDesigns chan remoteDesign

	// Informações de debug e feedback ao usuário
	frameCount int
	statusMsg  string
	statusTime float64
}

// New cria uma nova instância da aplicação.
func New(cfg *config.Config) *App {
	return &App{
		Config:          cfg,
		State:           StateLoading,
		handles:         make(map[*assembly.Instance]*render.ModelHandle),
		incomingDesigns: make(chan remoteDesign, 4),
	}
}

// Run inicia o loop principal da aplicação.
func (a *App) Run() error {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro fatal recuperado: %v", r)
			panic(r) // Re-throw para o sistema mostrar o erro se necessário
		}
	}()

	cat, err := catalog.Load(a.Config.CatalogPath)
	if err != nil {
		return err
	}
	a.Catalog = cat
	log.Printf("[MontaCasa] Catálogo carregado: %d blocos em %d categorias",
		cat.Len(), len(cat.Categories()))

	// Inicializar janela raylib
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	rl.SetTraceLogLevel(rl.LogWarning) // Reduz ruído no terminal

	if a.Config.Fullscreen {
		rl.ToggleFullscreen()
	}

	rl.SetTargetFPS(a.Config.TargetFPS)
	rl.SetExitKey(0) // ESC alterna pausa em vez de fechar

	a.Cam = camera.New(a.Config.CameraSpeed, a.Config.CameraSensitivity, a.Config.ZoomSpeed)

	log.Println("[MontaCasa] Janela inicializada com sucesso")
	log.Printf("[MontaCasa] Resolução: %dx%d", a.Config.WindowWidth, a.Config.WindowHeight)

	a.Assembly = assembly.NewState()
	a.renderer = render.NewRenderer()

	store, err := designstore.Open(a.Config.DesignDBPath)
	if err != nil {
		log.Printf("[MontaCasa] Banco de designs indisponível: %v", err)
	} else {
		a.designs = store
	}

	// Servidor de compartilhamento é opcional
	if a.Config.ServerURL != "" {
		go a.connectShare()
	}

	a.State = StateEditing

	// Loop principal
	for !rl.WindowShouldClose() {
		a.update()
		a.draw()
	}

	a.shutdown()
	rl.CloseWindow()
	return nil
}

// update atualiza a lógica do editor a cada frame.
func (a *App) update() {
	a.frameCount++

	switch a.State {
	case StateEditing:
		a.updateCamera()
		a.updateInput()
		a.applyRemoteDesigns()
		a.updateRoof()
		// Time Slicing: no máximo 4ms por frame subindo modelos para a GPU
		a.renderer.ProcessLoads(0.004)
	case StatePaused:
		a.updateInput() // Permite detectar ESC para despausar
	}
}

// shutdown realiza a limpeza de recursos.
func (a *App) shutdown() {
	log.Println("[App] Finalizando aplicação...")

	if a.share != nil {
		a.share.Close()
	}
	if a.designs != nil {
		a.designs.Close()
	}
	a.renderer.Shutdown()

	if err := a.Config.Save(); err != nil {
		log.Printf("[MontaCasa] Erro ao salvar configurações: %v", err)
	}
}
