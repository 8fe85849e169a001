package app

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// updateCamera atualiza a câmera baseado no input.
func (a *App) updateCamera() {
	dt := rl.GetFrameTime()
	a.Cam.HandleInput(dt)
	a.Cam.Update(dt)
}

// updateInput processa entradas de teclado e mouse do editor.
func (a *App) updateInput() {
	// ESC: Alternar Pausa
	if rl.IsKeyPressed(rl.KeyEscape) {
		if a.State == StateEditing {
			a.State = StatePaused
			log.Println("[App] Editor pausado")
		} else if a.State == StatePaused {
			a.State = StateEditing
			log.Println("[App] Retomando editor")
		}
		return
	}
	if a.State != StateEditing {
		return
	}

	// Toggle debug info
	if rl.IsKeyPressed(rl.KeyF3) {
		a.Config.ShowDebugInfo = !a.Config.ShowDebugInfo
	}

	// Toggle grid
	if rl.IsKeyPressed(rl.KeyG) {
		a.Config.ShowGrid = !a.Config.ShowGrid
	}

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	a.updateCatalogInput()
	a.updateBlockInput()
	a.updateRoofInput()
	a.updatePersistenceInput()
}

// updateCatalogInput navega pelo catálogo de blocos.
func (a *App) updateCatalogInput() {
	cats := a.Catalog.Categories()
	if len(cats) == 0 {
		return
	}

	if rl.IsKeyPressed(rl.KeyTab) {
		a.categoryIndex = (a.categoryIndex + 1) % len(cats)
		a.blockIndex = 0
	}

	blocks := a.Catalog.Blocks(cats[a.categoryIndex])
	if len(blocks) == 0 {
		return
	}
	if rl.IsKeyPressed(rl.KeyRight) {
		a.blockIndex = (a.blockIndex + 1) % len(blocks)
	}
	if rl.IsKeyPressed(rl.KeyLeft) {
		a.blockIndex = (a.blockIndex - 1 + len(blocks)) % len(blocks)
	}

	// Espaço cria uma nova instância ativa do bloco selecionado
	if rl.IsKeyPressed(rl.KeySpace) && a.Assembly.Active == nil {
		a.spawnBlock(blocks[a.blockIndex])
	}
}

// updateBlockInput move, gira, posiciona e remove a instância ativa,
// além de pegar de volta blocos já posicionados.
func (a *App) updateBlockInput() {
	active := a.Assembly.Active

	if active != nil {
		// A instância ativa segue o cursor no plano do chão
		if p, ok := a.mouseGroundPoint(); ok {
			active.Transform.Position = p
		}

		if rl.IsKeyPressed(rl.KeyR) {
			active.Transform.Rotation[1] += 90
			if active.Transform.Rotation[1] >= 360 {
				active.Transform.Rotation[1] -= 360
			}
		}

		if rl.IsKeyPressed(rl.KeyDelete) || rl.IsKeyPressed(rl.KeyX) {
			a.deleteActive()
			return
		}

		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			a.placeActive()
		}
		return
	}

	// Sem instância ativa: clique esquerdo pega de volta um bloco posicionado
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		if inst := a.pickInstanceUnderMouse(); inst != nil {
			a.pickUp(inst)
		}
	}
}

// updateRoofInput controla estilo e rotação do telhado.
// A rotação só avança quando não há instância ativa, para não conflitar
// com o R de girar bloco.
func (a *App) updateRoofInput() {
	if rl.IsKeyPressed(rl.KeyF) {
		a.Assembly.Roof.Style = a.Assembly.Roof.Style.Next()
		a.roofDirty = true
		a.setStatus("Telhado: " + a.Assembly.Roof.Style.String())
	}

	if a.Assembly.Active == nil && rl.IsKeyPressed(rl.KeyR) {
		a.Assembly.Roof.Rotate(1)
		a.roofDirty = true
	}
}

// updatePersistenceInput cuida de salvar, carregar e compartilhar designs.
func (a *App) updatePersistenceInput() {
	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)

	// Ctrl+C / Ctrl+V: snapshot via área de transferência
	if ctrl && rl.IsKeyPressed(rl.KeyC) {
		a.copySnapshotToClipboard()
	}
	if ctrl && rl.IsKeyPressed(rl.KeyV) {
		a.loadSnapshotFromClipboard()
	}

	// F5/F9: salvamento rápido no banco local
	if rl.IsKeyPressed(rl.KeyF5) {
		a.quickSave()
	}
	if rl.IsKeyPressed(rl.KeyF9) {
		a.quickLoad()
	}

	// F6: publica no servidor; F7: atualiza a lista de designs compartilhados
	if rl.IsKeyPressed(rl.KeyF6) {
		a.publishDesign()
	}
	if rl.IsKeyPressed(rl.KeyF7) && a.share != nil && a.share.IsConnected() {
		a.share.RequestList()
	}
	// F8: baixa o design mais recente da listagem
	if rl.IsKeyPressed(rl.KeyF8) {
		a.fetchShared(0)
	}
}
