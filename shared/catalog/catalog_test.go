package catalog

import (
	"math"
	"testing"

	"MontaCasa/shared/geom"
)

const sampleJSON = `{
	"blocks": [
		{
			"id": "wall_2m",
			"name": "Parede 2m",
			"category": "walls",
			"cost": 120.0,
			"mesh": "blocks/wall_2m.obj",
			"size": {"x": 2, "y": 2.5, "z": 0.2},
			"attachments": [
				{"position": {"x": -1, "y": 0, "z": 0}, "direction": {"x": -1, "y": 0, "z": 0}},
				{"position": {"x": 1, "y": 0, "z": 0}, "direction": {"x": 2, "y": 0, "z": 0}}
			]
		},
		{
			"id": "window_1m",
			"name": "Janela 1m",
			"category": "openings",
			"cost": 300.0,
			"mesh": "blocks/window_1m.obj",
			"size": {"x": 1, "y": 2.5, "z": 0.2},
			"attachments": []
		}
	]
}`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("Parse retornou erro: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}

	def, ok := c.Lookup("wall_2m")
	if !ok {
		t.Fatal("Lookup(wall_2m) não encontrou a definição")
	}
	if def.Name != "Parede 2m" || def.Category != "walls" || def.Cost != 120.0 {
		t.Errorf("definição inesperada: %+v", def)
	}

	// Escala catálogo→mundo aplicada no load
	wantX := 2 * geom.CatalogScale
	if math.Abs(float64(def.Size.X()-wantX)) > 1e-4 {
		t.Errorf("Size.X = %v, want %v", def.Size.X(), wantX)
	}
	if len(def.Attachments) != 2 {
		t.Fatalf("Attachments = %d, want 2", len(def.Attachments))
	}
	if got := def.Attachments[0].LocalPosition.X(); math.Abs(float64(got+geom.CatalogScale)) > 1e-4 {
		t.Errorf("LocalPosition.X = %v, want %v", got, -geom.CatalogScale)
	}

	// Direções são normalizadas mesmo quando o JSON traz vetores não unitários
	if l := def.Attachments[1].LocalDirection.Len(); math.Abs(float64(l-1)) > 1e-5 {
		t.Errorf("LocalDirection não normalizada: |v| = %v", l)
	}
}

func TestParseCategorias(t *testing.T) {
	c, err := Parse([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("Parse retornou erro: %v", err)
	}
	cats := c.Categories()
	if len(cats) != 2 || cats[0] != "openings" || cats[1] != "walls" {
		t.Errorf("Categories = %v, want [openings walls]", cats)
	}
	if blocks := c.Blocks("walls"); len(blocks) != 1 || blocks[0].ID != "wall_2m" {
		t.Errorf("Blocks(walls) inesperado: %v", blocks)
	}
}

func TestParseInvalido(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"json malformado", `{"blocks": [`},
		{"bloco sem id", `{"blocks": [{"name": "x"}]}`},
		{"id duplicado", `{"blocks": [{"id": "a"}, {"id": "a"}]}`},
		{"direção nula", `{"blocks": [{"id": "a", "attachments": [{"position": {}, "direction": {}}]}]}`},
	}
	for _, tt := range tests {
		if _, err := Parse([]byte(tt.data)); err == nil {
			t.Errorf("%s: Parse aceitou entrada inválida", tt.name)
		}
	}
}

func TestLookupInexistente(t *testing.T) {
	c, _ := Parse([]byte(sampleJSON))
	if _, ok := c.Lookup("nao_existe"); ok {
		t.Error("Lookup encontrou definição inexistente")
	}
}
