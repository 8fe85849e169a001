package render

import (
	"log"
	"path/filepath"

	"MontaCasa/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ModelHandle é o resultado futuro de uma carga assíncrona de modelo.
// Ready vira true quando a carga resolve (com sucesso ou falha); depois
// disso o handle nunca mais muda.
type ModelHandle struct {
	MeshFile string
	Ready    bool
	Failed   bool
	Model    rl.Model
}

// loaderQueue enfileira pedidos de carga de modelo. A resolução acontece
// na thread principal (ProcessLoads), pois Raylib exige o contexto GL;
// o "assíncrono" aqui é o fatiamento entre frames, não outra thread.
type loaderQueue struct {
	r       *Renderer
	queue   *util.UniqueQueue[string, struct{}]
	waiting map[string][]*ModelHandle
}

func newLoaderQueue(r *Renderer) *loaderQueue {
	return &loaderQueue{
		r:       r,
		queue:   util.NewUniqueQueue[string, struct{}](),
		waiting: make(map[string][]*ModelHandle),
	}
}

// RequestModel pede a carga do modelo de um arquivo de mesh do catálogo.
// Retorna imediatamente um handle; se o arquivo já está em cache (ou já
// falhou antes), o handle volta resolvido.
func (r *Renderer) RequestModel(meshFile string) *ModelHandle {
	r.mu.Lock()
	defer r.mu.Unlock()

	handle := &ModelHandle{MeshFile: meshFile}

	if model, ok := r.models[meshFile]; ok {
		handle.Ready = true
		handle.Model = model
		return handle
	}
	if r.failed[meshFile] {
		handle.Ready = true
		handle.Failed = true
		return handle
	}

	r.loader.waiting[meshFile] = append(r.loader.waiting[meshFile], handle)
	r.loader.queue.Enqueue(meshFile, struct{}{})
	return handle
}

// PendingLoads retorna quantos arquivos ainda aguardam carga.
func (r *Renderer) PendingLoads() int {
	return r.loader.queue.Len()
}

// ProcessLoads resolve cargas pendentes dentro de um orçamento de tempo por
// frame (em segundos), para não causar stutter durante a montagem.
func (r *Renderer) ProcessLoads(timeBudget float64) {
	if !rl.IsWindowReady() {
		return
	}

	start := rl.GetTime()
	for rl.GetTime()-start <= timeBudget {
		meshFile, _, ok := r.loader.queue.Dequeue()
		if !ok {
			return
		}
		r.resolveLoad(meshFile)
	}
}

func (r *Renderer) resolveLoad(meshFile string) {
	path := filepath.Join("assets", "models", meshFile)
	model := rl.LoadModel(path)
	success := model.MeshCount > 0

	r.mu.Lock()
	defer r.mu.Unlock()

	if success {
		r.models[meshFile] = model
		log.Printf("[Renderer] Modelo carregado: %s", path)
	} else {
		r.failed[meshFile] = true
		log.Printf("[Renderer] FALHA ao carregar modelo: %s", path)
	}

	for _, h := range r.loader.waiting[meshFile] {
		h.Ready = true
		h.Failed = !success
		if success {
			h.Model = model
		}
	}
	delete(r.loader.waiting, meshFile)
}
