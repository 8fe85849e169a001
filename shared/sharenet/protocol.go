package sharenet

// Protocolo de compartilhamento de designs entre cliente e servidor.
// Mensagens JSON sobre websocket; o payload de um design é o snapshot
// já codificado (texto comprimido), nunca re-serializado pelo transporte.

// Tipos de mensagem do envelope.
const (
	TypePublish = "publish" // cliente → servidor: publica um design
	TypeFetch   = "fetch"   // cliente → servidor: pede um design pelo nome
	TypeList    = "list"    // cliente → servidor: pede a listagem
	TypeDesign  = "design"  // servidor → cliente: payload de um design
	TypeDesigns = "designs" // servidor → cliente: listagem de designs
	TypeStatus  = "status"  // servidor → cliente: confirmação/estado
	TypeError   = "error"   // servidor → cliente: falha de uma operação
)

// DesignInfo são os metadados de um design publicado.
type DesignInfo struct {
	Name       string  `json:"name"`
	BlockCount int     `json:"blockCount"`
	TotalCost  float64 `json:"totalCost"`
}

// Envelope é a mensagem única do protocolo; campos não usados pelo tipo
// ficam vazios e são omitidos do JSON.
type Envelope struct {
	Type    string       `json:"type"`
	Name    string       `json:"name,omitempty"`
	Data    string       `json:"data,omitempty"`
	Message string       `json:"message,omitempty"`
	Info    *DesignInfo  `json:"info,omitempty"`    // metadados num publish
	Designs []DesignInfo `json:"designs,omitempty"` // listagem
}
