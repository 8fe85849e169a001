package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"MontaCasa/shared/geom"

	"github.com/go-gl/mathgl/mgl32"
)

// --- Estruturas JSON ---

// VecJSON é o formato {x,y,z} usado no blocks.json do catálogo.
type VecJSON struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// Vec converte para o tipo de vetor do engine.
func (v VecJSON) Vec() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// AttachmentJSON define um ponto de encaixe no arquivo do catálogo,
// em unidades do catálogo (metros, como os meshes são autorados).
type AttachmentJSON struct {
	Position  VecJSON `json:"position"`
	Direction VecJSON `json:"direction"`
}

// BlockJSON é a entrada bruta de um bloco no blocks.json.
type BlockJSON struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Category    string           `json:"category"`
	Cost        float64          `json:"cost"`
	Mesh        string           `json:"mesh"`
	Size        VecJSON          `json:"size"`
	Attachments []AttachmentJSON `json:"attachments"`
}

// CatalogJSON é o root do blocks.json.
type CatalogJSON struct {
	Blocks []BlockJSON `json:"blocks"`
}

// --- Modelo carregado ---

// AttachmentTemplate é um ponto de encaixe da definição, já convertido
// para unidades de mundo. A direção é sempre unitária.
type AttachmentTemplate struct {
	LocalPosition  mgl32.Vec3
	LocalDirection mgl32.Vec3
}

// Definition é a entrada imutável do catálogo da qual instâncias são criadas.
// Size e Attachments já estão em unidades de mundo (escala aplicada no load).
type Definition struct {
	ID          string
	Name        string
	Category    string
	Cost        float64
	MeshFile    string
	Size        mgl32.Vec3
	Attachments []AttachmentTemplate
}

// Catalog é o conjunto de definições carregado uma única vez no startup.
// O core consulta apenas via Lookup; o menu da UI usa Categories.
type Catalog struct {
	byID       map[string]*Definition
	categories map[string][]*Definition
}

// Load lê e valida o blocks.json, aplicando a escala catálogo→mundo
// em posições de encaixe e dimensões.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("falha ao ler catálogo %s: %w", path, err)
	}
	return Parse(data)
}

// Parse monta o catálogo a partir do conteúdo JSON bruto.
func Parse(data []byte) (*Catalog, error) {
	var root CatalogJSON
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("falha ao parsear catálogo: %w", err)
	}

	c := &Catalog{
		byID:       make(map[string]*Definition),
		categories: make(map[string][]*Definition),
	}

	for _, b := range root.Blocks {
		if b.ID == "" {
			return nil, fmt.Errorf("bloco sem id no catálogo (name=%q)", b.Name)
		}
		if _, dup := c.byID[b.ID]; dup {
			return nil, fmt.Errorf("id duplicado no catálogo: %s", b.ID)
		}

		def := &Definition{
			ID:       b.ID,
			Name:     b.Name,
			Category: b.Category,
			Cost:     b.Cost,
			MeshFile: b.Mesh,
			Size:     b.Size.Vec().Mul(geom.CatalogScale),
		}
		for _, a := range b.Attachments {
			dir := a.Direction.Vec()
			if dir.Len() == 0 {
				return nil, fmt.Errorf("bloco %s: ponto de encaixe com direção nula", b.ID)
			}
			def.Attachments = append(def.Attachments, AttachmentTemplate{
				LocalPosition:  a.Position.Vec().Mul(geom.CatalogScale),
				LocalDirection: dir.Normalize(),
			})
		}

		c.byID[def.ID] = def
		c.categories[def.Category] = append(c.categories[def.Category], def)
	}

	return c, nil
}

// Lookup retorna a definição de um bloco pelo identificador.
func (c *Catalog) Lookup(id string) (*Definition, bool) {
	def, ok := c.byID[id]
	return def, ok
}

// Categories retorna os nomes de categoria em ordem estável.
func (c *Catalog) Categories() []string {
	names := make([]string, 0, len(c.categories))
	for name := range c.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Blocks retorna as definições de uma categoria, na ordem do arquivo.
func (c *Catalog) Blocks(category string) []*Definition {
	return c.categories[category]
}

// Len retorna o total de definições carregadas.
func (c *Catalog) Len() int {
	return len(c.byID)
}
