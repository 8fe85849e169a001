package client

import (
	"log"
	"sync"
	"time"

	"MontaCasa/shared/sharenet"

	"github.com/gorilla/websocket"
)

// ShareClient lida com a comunicação com o servidor de compartilhamento
// de designs. Opcional: a aplicação funciona inteira sem ele.
type ShareClient struct {
	conn      *websocket.Conn
	url       string
	connected bool
	mu        sync.RWMutex

	// Callbacks para o App (chamados na goroutine de leitura)
	OnDesign func(name, data string)
	OnList   func(designs []sharenet.DesignInfo)
	OnStatus func(msg string)
	OnError  func(msg string)
}

func NewShareClient(url string) *ShareClient {
	return &ShareClient{url: url}
}

// Connect tenta conectar ao servidor com algumas tentativas espaçadas.
func (c *ShareClient) Connect() error {
	dialer := websocket.Dialer{
		HandshakeTimeout: 5 * time.Second,
	}

	var err error
	maxRetries := 5
	for i := 0; i < maxRetries; i++ {
		log.Printf("[Share] Tentativa de conexão %d/%d em %s...", i+1, maxRetries, c.url)
		c.conn, _, err = dialer.Dial(c.url, nil)
		if err == nil {
			break
		}
		log.Printf("[Share] Servidor indisponível: %v. Aguardando...", err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		log.Printf("[Share] Desistindo após %d tentativas: %v", maxRetries, err)
		return err
	}

	c.mu.Lock()
	c.connected = true
	c.mu.Unlock()

	go c.readLoop()
	return nil
}

func (c *ShareClient) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

// Publish envia um design codificado para o servidor, com metadados
// para a listagem.
func (c *ShareClient) Publish(name, data string, blockCount int, totalCost float64) {
	c.send(sharenet.Envelope{
		Type: sharenet.TypePublish,
		Name: name,
		Data: data,
		Info: &sharenet.DesignInfo{Name: name, BlockCount: blockCount, TotalCost: totalCost},
	})
}

// Fetch pede um design publicado pelo nome.
func (c *ShareClient) Fetch(name string) {
	c.send(sharenet.Envelope{Type: sharenet.TypeFetch, Name: name})
}

// RequestList pede a listagem dos designs publicados.
func (c *ShareClient) RequestList() {
	c.send(sharenet.Envelope{Type: sharenet.TypeList})
}

func (c *ShareClient) send(env sharenet.Envelope) {
	if !c.IsConnected() {
		return
	}

	c.mu.Lock()
	err := c.conn.WriteJSON(env)
	c.mu.Unlock()

	if err != nil {
		log.Printf("[Share] Erro ao enviar mensagem: %v", err)
		c.mu.Lock()
		c.connected = false
		c.mu.Unlock()
	}
}

func (c *ShareClient) readLoop() {
	defer func() {
		c.mu.Lock()
		c.connected = false
		c.mu.Unlock()
		if c.conn != nil {
			c.conn.Close()
		}
	}()

	for {
		var env sharenet.Envelope
		if err := c.conn.ReadJSON(&env); err != nil {
			log.Printf("[Share] Conexão perdida: %v", err)
			return
		}
		c.handleMessage(env)
	}
}

func (c *ShareClient) handleMessage(env sharenet.Envelope) {
	switch env.Type {
	case sharenet.TypeDesign:
		log.Printf("[Share] Design recebido: %q", env.Name)
		if c.OnDesign != nil {
			c.OnDesign(env.Name, env.Data)
		}
	case sharenet.TypeDesigns:
		log.Printf("[Share] Listagem recebida: %d design(s)", len(env.Designs))
		if c.OnList != nil {
			c.OnList(env.Designs)
		}
	case sharenet.TypeStatus:
		if c.OnStatus != nil {
			c.OnStatus(env.Message)
		}
	case sharenet.TypeError:
		log.Printf("[Share] Erro do servidor: %s", env.Message)
		if c.OnError != nil {
			c.OnError(env.Message)
		}
	default:
		log.Printf("[Share] Mensagem desconhecida: %q", env.Type)
	}
}

// Close encerra a conexão.
func (c *ShareClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		c.conn.Close()
	}
	c.connected = false
}
