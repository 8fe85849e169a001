package app

import (
	"fmt"
	"log"

	"MontaCasa/cliente/internal/render"
	"MontaCasa/shared/assembly"
	"MontaCasa/shared/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// draw renderiza a cena.
func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(92, 148, 186, 255))

	a.drawScene()
	a.drawHUD()

	if a.State == StatePaused {
		a.drawPauseMenu()
	}

	rl.EndDrawing()
}

// drawScene renderiza a cena 3D.
func (a *App) drawScene() {
	rl.BeginMode3D(a.Cam.RLCamera)

	// Grid de referência no chão
	if a.Config.ShowGrid {
		rl.DrawGrid(40, geom.CatalogScale)
	}

	// Blocos posicionados
	for _, inst := range a.Assembly.Placed {
		a.renderer.DrawInstance(inst, a.handles[inst], rl.White)
	}

	// Instância ativa em destaque, seguindo o cursor
	if active := a.Assembly.Active; active != nil {
		a.renderer.DrawInstance(active, a.handles[active], rl.NewColor(140, 255, 140, 200))
	}

	// Telhado procedural
	a.renderer.DrawRoof()

	rl.EndMode3D()
}

// drawHUD desenha a interface sobreposta.
func (a *App) drawHUD() {
	a.drawCatalogPanel()
	a.drawStatusBar()
	a.drawSharedPanel()

	if a.Config.ShowDebugInfo {
		a.drawDebugPanel()
	}

	// Título no canto inferior direito
	title := "MontaCasa v0.1.0"
	titleWidth := rl.MeasureText(title, 18)
	rl.DrawText(title,
		int32(rl.GetScreenWidth())-titleWidth-20, int32(rl.GetScreenHeight())-30,
		18, rl.NewColor(230, 230, 230, 150))
}

// drawCatalogPanel mostra a categoria e o bloco selecionados, o custo
// total e o estilo de telhado atual.
func (a *App) drawCatalogPanel() {
	width := int32(300)
	height := int32(150)
	x := int32(10)
	y := int32(10)

	rl.DrawRectangle(x, y, width, height, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(x, y, width, height, rl.NewColor(50, 50, 50, 255))

	cats := a.Catalog.Categories()
	if len(cats) == 0 {
		rl.DrawText("Catálogo vazio", x+10, y+10, 18, rl.Red)
		return
	}
	category := cats[a.categoryIndex%len(cats)]
	blocks := a.Catalog.Blocks(category)

	rl.DrawText("CATÁLOGO (TAB troca categoria)", x+10, y+10, 12, rl.Gray)
	rl.DrawText(category, x+10, y+25, 20, rl.Gold)

	if len(blocks) > 0 {
		def := blocks[a.blockIndex%len(blocks)]
		rl.DrawText(fmt.Sprintf("< %s >  (custo %.0f)", def.Name, def.Cost), x+10, y+50, 18, rl.White)
	}

	rl.DrawLine(x+10, y+75, x+width-10, y+75, rl.NewColor(100, 100, 100, 100))

	rl.DrawText(fmt.Sprintf("Blocos: %d", len(a.Assembly.Placed)), x+10, y+85, 16, rl.LightGray)
	rl.DrawText(fmt.Sprintf("Custo total: %.0f", a.Assembly.TotalCost()), x+10, y+103, 16, rl.Green)
	rl.DrawText(fmt.Sprintf("Telhado: %s (F troca, R gira)", a.Assembly.Roof.Style.String()),
		x+10, y+125, 14, rl.SkyBlue)
}

// drawStatusBar exibe a mensagem de feedback mais recente por alguns segundos.
func (a *App) drawStatusBar() {
	if a.statusMsg == "" || rl.GetTime()-a.statusTime > 4.0 {
		return
	}
	width := rl.MeasureText(a.statusMsg, 18)
	x := (int32(rl.GetScreenWidth()) - width) / 2
	y := int32(rl.GetScreenHeight()) - 60
	rl.DrawRectangle(x-10, y-5, width+20, 28, rl.NewColor(0, 0, 0, 180))
	rl.DrawText(a.statusMsg, x, y, 18, rl.RayWhite)
}

// drawSharedPanel lista os designs publicados no servidor, quando há.
func (a *App) drawSharedPanel() {
	list := a.sharedList()
	if len(list) == 0 {
		return
	}

	shown := len(list)
	if shown > 6 {
		shown = 6
	}

	width := int32(300)
	height := int32(45 + shown*20)
	x := int32(10)
	y := int32(170)

	rl.DrawRectangle(x, y, width, height, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(x, y, width, height, rl.NewColor(50, 50, 50, 255))

	rl.DrawText("COMPARTILHADOS (F8 baixa o 1º)", x+10, y+10, 12, rl.Gray)
	for i := 0; i < shown; i++ {
		info := list[i]
		line := fmt.Sprintf("%d. %s (%d blocos, %.0f)", i+1, info.Name, info.BlockCount, info.TotalCost)
		rl.DrawText(line, x+10, y+30+int32(i)*20, 14, rl.LightGray)
	}
}

// drawDebugPanel mostra métricas internas (F3).
func (a *App) drawDebugPanel() {
	width := int32(260)
	height := int32(120)
	x := int32(rl.GetScreenWidth()) - width - 10
	y := int32(10)

	rl.DrawRectangle(x, y, width, height, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(x, y, width, height, rl.NewColor(50, 50, 50, 255))

	fps := rl.GetFPS()
	fpsColor := rl.Green
	if fps < 30 {
		fpsColor = rl.Red
	} else if fps < 50 {
		fpsColor = rl.Yellow
	}
	rl.DrawText(fmt.Sprintf("FPS: %d", fps), x+10, y+10, 20, fpsColor)

	rl.DrawText(fmt.Sprintf("Modelos pendentes: %d", a.renderer.PendingLoads()), x+10, y+38, 14, rl.LightGray)

	look := a.Cam.CurrentLookAt
	rl.DrawText(fmt.Sprintf("Câmera: (%.1f, %.1f, %.1f)", look.X(), look.Y(), look.Z()), x+10, y+56, 14, rl.LightGray)

	shareStr := "Offline"
	if a.share != nil && a.share.IsConnected() {
		shareStr = "Conectado"
	}
	rl.DrawText("Servidor: "+shareStr, x+10, y+74, 14, rl.LightGray)

	rl.DrawText("ESPAÇO cria | Clique posiciona/pega", x+10, y+96, 12, rl.SkyBlue)
}

// drawPauseMenu desenha o menu de escape centralizado.
func (a *App) drawPauseMenu() {
	screenWidth := int32(rl.GetScreenWidth())
	screenHeight := int32(rl.GetScreenHeight())

	// Fundo escurecido
	rl.DrawRectangle(0, 0, screenWidth, screenHeight, rl.NewColor(0, 0, 0, 150))

	panelWidth := int32(400)
	panelHeight := int32(300)
	panelX := (screenWidth - panelWidth) / 2
	panelY := (screenHeight - panelHeight) / 2

	rl.DrawRectangle(panelX, panelY, panelWidth, panelHeight, rl.NewColor(30, 30, 35, 255))
	rl.DrawRectangleLines(panelX, panelY, panelWidth, panelHeight, rl.White)

	menuTitle := "MENU DE PAUSA"
	titleWidth := rl.MeasureText(menuTitle, 24)
	rl.DrawText(menuTitle, panelX+(panelWidth-titleWidth)/2, panelY+30, 24, rl.Gold)

	buttonX := panelX + 50
	buttonWidth := panelWidth - 100
	buttonHeight := int32(40)

	if a.drawButton(buttonX, panelY+90, buttonWidth, buttonHeight, "RETOMAR (ESC)", rl.Green) {
		a.State = StateEditing
	}

	if a.drawButton(buttonX, panelY+145, buttonWidth, buttonHeight, "LIMPAR MONTAGEM", rl.Orange) {
		a.Assembly.Clear()
		a.handles = make(map[*assembly.Instance]*render.ModelHandle)
		a.roofDirty = true
		a.State = StateEditing
		log.Println("[App] Montagem limpa pelo menu")
	}

	if a.drawButton(buttonX, panelY+200, buttonWidth, buttonHeight, "SAIR", rl.Red) {
		log.Println("[App] Encerrando aplicação pelo menu.")
		a.shutdown()
		rl.CloseWindow()
	}
}

// drawButton desenha um botão genérico com hover e retorna true se clicado.
func (a *App) drawButton(x, y, w, h int32, text string, color rl.Color) bool {
	mousePos := rl.GetMousePosition()
	isHover := mousePos.X >= float32(x) && mousePos.X <= float32(x+w) &&
		mousePos.Y >= float32(y) && mousePos.Y <= float32(y+h)

	drawColor := color
	if isHover {
		drawColor.R += 30
		drawColor.G += 30
		drawColor.B += 30
		rl.SetMouseCursor(rl.MouseCursorPointingHand)
	} else {
		rl.SetMouseCursor(rl.MouseCursorDefault)
	}

	rl.DrawRectangle(x, y, w, h, rl.NewColor(50, 50, 50, 255))
	rl.DrawRectangleLines(x, y, w, h, drawColor)

	textWidth := rl.MeasureText(text, 18)
	rl.DrawText(text, x+(w-textWidth)/2, y+(h-18)/2, 18, rl.White)

	return isHover && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}
