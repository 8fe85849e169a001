package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"sync"

	"MontaCasa/shared/designstore"
	"MontaCasa/shared/sharenet"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub gerencia as conexões WebSocket ativas. Cada conexão tem seu próprio
// mutex de escrita, pois gorilla/websocket não permite escritas concorrentes.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]*sync.Mutex
}

func newHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]*sync.Mutex)}
}

func (h *Hub) register(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = &sync.Mutex{}
	h.mu.Unlock()
	log.Printf("[Hub] Cliente registrado: %s", conn.RemoteAddr())
}

func (h *Hub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	if lock, ok := h.clients[conn]; ok {
		lock.Lock()
		delete(h.clients, conn)
		conn.Close()
		lock.Unlock()
	}
	h.mu.Unlock()
	log.Printf("[Hub] Cliente desregistrado: %s", conn.RemoteAddr())
}

// sendTo escreve um envelope numa conexão específica.
func (h *Hub) sendTo(conn *websocket.Conn, env sharenet.Envelope) {
	h.mu.Lock()
	lock, ok := h.clients[conn]
	h.mu.Unlock()
	if !ok {
		return
	}

	lock.Lock()
	err := conn.WriteJSON(env)
	lock.Unlock()
	if err != nil {
		log.Printf("[Hub] Erro ao enviar para %s: %v", conn.RemoteAddr(), err)
	}
}

// broadcast envia um envelope para todos os clientes conectados.
func (h *Hub) broadcast(env sharenet.Envelope) {
	h.mu.Lock()
	type target struct {
		conn *websocket.Conn
		lock *sync.Mutex
	}
	var targets []target
	for c, l := range h.clients {
		targets = append(targets, target{c, l})
	}
	h.mu.Unlock()

	for _, t := range targets {
		t.lock.Lock()
		if err := t.conn.WriteJSON(env); err != nil {
			log.Printf("[Hub] Erro no broadcast para %s: %v", t.conn.RemoteAddr(), err)
		}
		t.lock.Unlock()
	}
}

// Server atende pedidos de publicação/busca de designs sobre o hub,
// persistindo tudo no banco de designs.
type Server struct {
	hub   *Hub
	store *designstore.Store
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Server] Falha no upgrade: %v", err)
		return
	}

	s.hub.register(conn)
	defer s.hub.unregister(conn)

	for {
		var env sharenet.Envelope
		if err := conn.ReadJSON(&env); err != nil {
			log.Printf("[Server] Conexão encerrada: %v", err)
			return
		}
		s.handleMessage(conn, env)
	}
}

func (s *Server) handleMessage(conn *websocket.Conn, env sharenet.Envelope) {
	switch env.Type {
	case sharenet.TypePublish:
		s.handlePublish(conn, env)
	case sharenet.TypeFetch:
		s.handleFetch(conn, env)
	case sharenet.TypeList:
		s.sendList(conn)
	default:
		s.hub.sendTo(conn, sharenet.Envelope{
			Type:    sharenet.TypeError,
			Message: fmt.Sprintf("mensagem desconhecida: %q", env.Type),
		})
	}
}

func (s *Server) handlePublish(conn *websocket.Conn, env sharenet.Envelope) {
	if env.Name == "" || env.Data == "" {
		s.hub.sendTo(conn, sharenet.Envelope{Type: sharenet.TypeError, Message: "publish sem nome ou sem dados"})
		return
	}

	blockCount := 0
	totalCost := 0.0
	if env.Info != nil {
		blockCount = env.Info.BlockCount
		totalCost = env.Info.TotalCost
	}

	if err := s.store.Save(env.Name, env.Data, blockCount, totalCost); err != nil {
		log.Printf("[Server] Falha ao publicar %q: %v", env.Name, err)
		s.hub.sendTo(conn, sharenet.Envelope{Type: sharenet.TypeError, Message: "falha ao salvar design"})
		return
	}

	s.hub.sendTo(conn, sharenet.Envelope{
		Type:    sharenet.TypeStatus,
		Message: fmt.Sprintf("design %q publicado", env.Name),
	})

	// Todos os clientes veem a listagem atualizada
	s.broadcastList()
}

func (s *Server) handleFetch(conn *websocket.Conn, env sharenet.Envelope) {
	data, err := s.store.Load(env.Name)
	if err != nil {
		s.hub.sendTo(conn, sharenet.Envelope{
			Type:    sharenet.TypeError,
			Message: fmt.Sprintf("design %q não encontrado", env.Name),
		})
		return
	}
	s.hub.sendTo(conn, sharenet.Envelope{Type: sharenet.TypeDesign, Name: env.Name, Data: data})
}

func (s *Server) designList() []sharenet.DesignInfo {
	models, err := s.store.List()
	if err != nil {
		log.Printf("[Server] Falha ao listar designs: %v", err)
		return nil
	}
	infos := make([]sharenet.DesignInfo, 0, len(models))
	for _, m := range models {
		infos = append(infos, sharenet.DesignInfo{
			Name:       m.Name,
			BlockCount: m.BlockCount,
			TotalCost:  m.TotalCost,
		})
	}
	return infos
}

func (s *Server) sendList(conn *websocket.Conn) {
	s.hub.sendTo(conn, sharenet.Envelope{Type: sharenet.TypeDesigns, Designs: s.designList()})
}

func (s *Server) broadcastList() {
	s.hub.broadcast(sharenet.Envelope{Type: sharenet.TypeDesigns, Designs: s.designList()})
}

func main() {
	port := flag.Int("port", 8080, "Porta HTTP do servidor de compartilhamento")
	dbPath := flag.String("db", "saves/shared_designs.db", "Caminho do banco de designs")
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Println("=== MontaCasa Share Server ===")

	store, err := designstore.Open(*dbPath)
	if err != nil {
		log.Fatalf("[Server] Falha ao abrir banco de designs: %v", err)
	}
	defer store.Close()

	srv := &Server{hub: newHub(), store: store}
	http.HandleFunc("/ws", srv.handleWS)

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("[Server] Escutando em %s/ws", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("[Server] Falha no servidor HTTP: %v", err)
	}
}
