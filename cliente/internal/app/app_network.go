package app

import (
	"log"

	"MontaCasa/cliente/internal/client"
	"MontaCasa/shared/sharenet"
)

// connectShare conecta ao servidor de compartilhamento em background.
// Os callbacks rodam na goroutine de leitura do websocket; tudo que toca
// o estado do editor é roteado para a thread principal via canal.
func (a *App) connectShare() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro em connectShare: %v", r)
		}
	}()

	a.share = client.NewShareClient(a.Config.ServerURL)

	a.share.OnDesign = func(name, data string) {
		select {
		case a.incomingDesigns <- remoteDesign{name: name, data: data}:
		default:
			log.Printf("[Share] Fila de designs cheia; descartando %q", name)
		}
	}

	a.share.OnList = func(designs []sharenet.DesignInfo) {
		a.sharedMu.Lock()
		a.sharedDesigns = designs
		a.sharedMu.Unlock()
	}

	a.share.OnStatus = func(msg string) {
		log.Printf("[Share] Status: %s", msg)
	}

	a.share.OnError = func(msg string) {
		log.Printf("[Share] Erro do servidor: %s", msg)
	}

	if err := a.share.Connect(); err != nil {
		log.Printf("[Share] Erro ao conectar: %v", err)
		return
	}

	log.Println("[Share] Conectado ao servidor de compartilhamento!")
	a.share.RequestList()
}

// sharedList retorna uma cópia da listagem atual de designs compartilhados.
func (a *App) sharedList() []sharenet.DesignInfo {
	a.sharedMu.Lock()
	defer a.sharedMu.Unlock()
	out := make([]sharenet.DesignInfo, len(a.sharedDesigns))
	copy(out, a.sharedDesigns)
	return out
}

// fetchShared pede ao servidor um design da listagem pelo índice.
func (a *App) fetchShared(index int) {
	list := a.sharedList()
	if a.share == nil || !a.share.IsConnected() || index < 0 || index >= len(list) {
		return
	}
	a.share.Fetch(list[index].Name)
	a.setStatus("Baixando design: " + list[index].Name)
}
