package app

import (
	"fmt"
	"log"
	"time"

	"MontaCasa/cliente/internal/render"
	"MontaCasa/shared/assembly"
	"MontaCasa/shared/catalog"
	"MontaCasa/shared/roof"
	"MontaCasa/shared/snapshot"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

const quickSaveName = "rapido"

// spawnBlock cria uma nova instância ativa do bloco selecionado.
func (a *App) spawnBlock(def *catalog.Definition) {
	pos, ok := a.mouseGroundPoint()
	if !ok {
		pos = a.Cam.TargetLookAt
	}
	inst := assembly.NewInstance(def, pos)
	a.Assembly.Active = inst
	a.handles[inst] = a.renderer.RequestModel(def.MeshFile)
}

// placeActive confirma o posicionamento da instância ativa, encaixando
// pontos de conexão próximos.
func (a *App) placeActive() {
	inst := a.Assembly.Place()
	if inst == nil {
		return
	}
	a.roofDirty = true
	log.Printf("[App] Bloco posicionado: %s (custo total: %.0f)", inst.Def.ID, a.Assembly.TotalCost())
}

// pickUp remove um bloco posicionado e o torna a instância ativa de novo.
func (a *App) pickUp(inst *assembly.Instance) {
	if !a.Assembly.PickUp(inst) {
		return
	}
	a.roofDirty = true
}

// deleteActive descarta a instância ativa.
func (a *App) deleteActive() {
	if inst := a.Assembly.Active; inst != nil {
		delete(a.handles, inst)
	}
	a.Assembly.Delete()
}

// pickInstanceUnderMouse retorna o bloco posicionado mais próximo sob o
// cursor, ou nil.
func (a *App) pickInstanceUnderMouse() *assembly.Instance {
	ray := rl.GetMouseRay(rl.GetMousePosition(), a.Cam.RLCamera)

	var best *assembly.Instance
	bestDist := float32(0)
	for _, inst := range a.Assembly.Placed {
		col := rl.GetRayCollisionBox(ray, render.BoundingBox(inst))
		if col.Hit && (best == nil || col.Distance < bestDist) {
			best = inst
			bestDist = col.Distance
		}
	}
	return best
}

// mouseGroundPoint projeta o cursor no plano do chão (Y=0).
func (a *App) mouseGroundPoint() (mgl32.Vec3, bool) {
	ray := rl.GetMouseRay(rl.GetMousePosition(), a.Cam.RLCamera)
	if ray.Direction.Y > -1e-6 {
		return mgl32.Vec3{}, false
	}
	t := -ray.Position.Y / ray.Direction.Y
	return mgl32.Vec3{
		ray.Position.X + ray.Direction.X*t,
		0,
		ray.Position.Z + ray.Direction.Z*t,
	}, true
}

// updateRoof regera a geometria do telhado quando a montagem mudou.
func (a *App) updateRoof() {
	if !a.roofDirty {
		return
	}
	a.roofDirty = false

	bmin, bmax, ok := assembly.Bounds(a.Assembly.Placed)
	if !ok {
		a.renderer.ClearRoof()
		return
	}

	res, ok := roof.Generate(bmin, bmax, a.Assembly.Roof.Style)
	if !ok {
		a.renderer.ClearRoof()
		return
	}
	a.renderer.UploadRoof(res, a.Assembly.Roof.YawDegrees())
}

// copySnapshotToClipboard codifica a montagem atual e coloca o texto na
// área de transferência.
func (a *App) copySnapshotToClipboard() {
	data, err := snapshot.Encode(a.Assembly)
	if err != nil {
		log.Printf("[App] Erro ao codificar design: %v", err)
		a.setStatus("Erro ao copiar design")
		return
	}
	rl.SetClipboardText(data)
	a.setStatus(fmt.Sprintf("Design copiado (%d blocos)", len(a.Assembly.Placed)))
}

// loadSnapshotFromClipboard tenta restaurar a montagem a partir do texto
// da área de transferência. Texto inválido não toca no estado atual.
func (a *App) loadSnapshotFromClipboard() {
	text := rl.GetClipboardText()
	if text == "" {
		a.setStatus("Área de transferência vazia")
		return
	}
	if err := a.loadSnapshot(text); err != nil {
		log.Printf("[App] Design da área de transferência inválido: %v", err)
		a.setStatus("Texto não é um design válido")
		return
	}
	a.setStatus("Design carregado da área de transferência")
}

// loadSnapshot substitui a montagem atual pelo design codificado.
func (a *App) loadSnapshot(text string) error {
	fresh := make(map[*assembly.Instance]*render.ModelHandle)
	err := snapshot.Decode(text, a.Catalog, a.Assembly, func(inst *assembly.Instance) {
		fresh[inst] = a.renderer.RequestModel(inst.Def.MeshFile)
	})
	if err != nil {
		// Decode não tocou no estado; os handles antigos continuam válidos
		return err
	}
	a.handles = fresh

	a.roofDirty = true
	if bmin, bmax, ok := assembly.Bounds(a.Assembly.Placed); ok {
		a.Cam.Focus(bmin.Add(bmax).Mul(0.5))
	}
	return nil
}

// quickSave persiste a montagem atual no banco local.
func (a *App) quickSave() {
	if a.designs == nil {
		a.setStatus("Banco de designs indisponível")
		return
	}
	data, err := snapshot.Encode(a.Assembly)
	if err != nil {
		log.Printf("[App] Erro ao codificar design: %v", err)
		return
	}
	if err := a.designs.Save(quickSaveName, data, len(a.Assembly.Placed), a.Assembly.TotalCost()); err != nil {
		log.Printf("[App] Erro ao salvar design: %v", err)
		a.setStatus("Erro ao salvar design")
		return
	}
	a.setStatus("Design salvo")
}

// quickLoad restaura a montagem do banco local.
func (a *App) quickLoad() {
	if a.designs == nil {
		a.setStatus("Banco de designs indisponível")
		return
	}
	data, err := a.designs.Load(quickSaveName)
	if err != nil {
		log.Printf("[App] Erro ao carregar design: %v", err)
		a.setStatus("Nenhum design salvo")
		return
	}
	if err := a.loadSnapshot(data); err != nil {
		log.Printf("[App] Design salvo está corrompido: %v", err)
		a.setStatus("Design salvo está corrompido")
		return
	}
	a.setStatus("Design carregado")
}

// publishDesign envia a montagem atual para o servidor de compartilhamento.
func (a *App) publishDesign() {
	if a.share == nil || !a.share.IsConnected() {
		a.setStatus("Servidor de compartilhamento indisponível")
		return
	}
	data, err := snapshot.Encode(a.Assembly)
	if err != nil {
		log.Printf("[App] Erro ao codificar design: %v", err)
		return
	}
	name := "design-" + time.Now().Format("20060102-150405")
	a.share.Publish(name, data, len(a.Assembly.Placed), a.Assembly.TotalCost())
	a.setStatus("Design publicado: " + name)
}

// applyRemoteDesigns consome designs recebidos do servidor na thread
// principal (os callbacks do websocket rodam em outra goroutine).
func (a *App) applyRemoteDesigns() {
	for {
		select {
		case rd := <-a.incomingDesigns:
			if err := a.loadSnapshot(rd.data); err != nil {
				log.Printf("[App] Design remoto %q inválido: %v", rd.name, err)
				a.setStatus("Design remoto inválido")
				continue
			}
			a.setStatus("Design carregado do servidor: " + rd.name)
		default:
			return
		}
	}
}

// setStatus exibe uma mensagem temporária no HUD.
func (a *App) setStatus(msg string) {
	a.statusMsg = msg
	a.statusTime = rl.GetTime()
}
