package snapshot

import (
	"testing"

	"MontaCasa/shared/assembly"
	"MontaCasa/shared/catalog"
	"MontaCasa/shared/roof"

	"github.com/go-gl/mathgl/mgl32"
)

const testCatalog = `{
	"blocks": [
		{
			"id": "wall_2m", "name": "Parede 2m", "category": "walls", "cost": 120,
			"mesh": "blocks/wall_2m.obj", "size": {"x": 2, "y": 2.5, "z": 0.2},
			"attachments": [
				{"position": {"x": -1, "y": 0, "z": 0}, "direction": {"x": -1, "y": 0, "z": 0}},
				{"position": {"x": 1, "y": 0, "z": 0}, "direction": {"x": 1, "y": 0, "z": 0}}
			]
		},
		{
			"id": "door_1m", "name": "Porta 1m", "category": "openings", "cost": 250,
			"mesh": "blocks/door_1m.obj", "size": {"x": 1, "y": 2.5, "z": 0.2},
			"attachments": [
				{"position": {"x": -0.5, "y": 0, "z": 0}, "direction": {"x": -1, "y": 0, "z": 0}}
			]
		}
	]
}`

func buildTestState(t *testing.T, cat *catalog.Catalog) *assembly.State {
	t.Helper()
	st := assembly.NewState()

	wall, _ := cat.Lookup("wall_2m")
	door, _ := cat.Lookup("door_1m")
	for i, def := range []*catalog.Definition{wall, wall, door} {
		inst := assembly.NewInstance(def, mgl32.Vec3{float32(i) * 7, 0, 0})
		inst.Transform.Rotation = mgl32.Vec3{0, float32(i) * 90, 0}
		st.Placed = append(st.Placed, inst)
	}
	st.Placed[0].Points[1].IsSnapped = true
	st.Placed[1].Points[0].IsSnapped = true
	st.Roof = roof.State{Style: roof.StyleGable, RotationStep: 3}
	return st
}

func TestRoundTripCenarioC(t *testing.T) {
	cat, err := catalog.Parse([]byte(testCatalog))
	if err != nil {
		t.Fatalf("catálogo de teste inválido: %v", err)
	}
	original := buildTestState(t, cat)

	encoded, err := Encode(original)
	if err != nil {
		t.Fatalf("Encode falhou: %v", err)
	}

	restored := assembly.NewState()
	calls := 0
	if err := Decode(encoded, cat, restored, func(*assembly.Instance) { calls++ }); err != nil {
		t.Fatalf("Decode falhou: %v", err)
	}

	if len(restored.Placed) != 3 {
		t.Fatalf("conjunto restaurado tem %d blocos, want 3", len(restored.Placed))
	}
	if calls != 3 {
		t.Errorf("callback de instância chamado %d vezes, want 3", calls)
	}
	if restored.Roof.Style != roof.StyleGable || restored.Roof.RotationStep != 3 {
		t.Errorf("telhado restaurado = %+v", restored.Roof)
	}

	// Flags de encaixe restaurados verbatim, não recalculados
	for i, inst := range restored.Placed {
		for j, p := range inst.Points {
			want := original.Placed[i].Points[j].IsSnapped
			if p.IsSnapped != want {
				t.Errorf("bloco %d ponto %d: IsSnapped = %v, want %v", i, j, p.IsSnapped, want)
			}
		}
	}
}

func TestEncodeIdempotenteAposPrimeiroEncode(t *testing.T) {
	cat, _ := catalog.Parse([]byte(testCatalog))
	original := buildTestState(t, cat)

	first, err := Encode(original)
	if err != nil {
		t.Fatalf("Encode falhou: %v", err)
	}

	restored := assembly.NewState()
	if err := Decode(first, cat, restored, nil); err != nil {
		t.Fatalf("Decode falhou: %v", err)
	}
	second, err := Encode(restored)
	if err != nil {
		t.Fatalf("re-Encode falhou: %v", err)
	}

	if first != second {
		t.Error("encode∘decode∘encode não é byte-idêntico")
	}
}

func TestDecodeMalformadoNaoTocaNoEstado(t *testing.T) {
	cat, _ := catalog.Parse([]byte(testCatalog))
	st := buildTestState(t, cat)

	// Cenário D: entradas inválidas em camadas diferentes da transformação
	inputs := []string{
		"%%% não é base64 %%%",
		"bm9byBlaGggemxpYg==", // base64 ok, zlib inválido
		mustCompress(t, `{"roofStyle": "gable"}`),          // blocks ausente
		mustCompress(t, `{"blocks": 42}`),                  // blocks não é lista
		mustCompress(t, `{"blocks": [{"definitionId": 1}`), // JSON truncado
	}

	for _, input := range inputs {
		if err := Decode(input, cat, st, nil); err == nil {
			t.Errorf("Decode aceitou entrada inválida %q", input)
		}
		if len(st.Placed) != 3 || st.Roof.Style != roof.StyleGable {
			t.Fatalf("estado foi modificado por um load abortado")
		}
	}
}

func TestDecodeDefinicaoDesconhecidaDescartaSoOBloco(t *testing.T) {
	cat, _ := catalog.Parse([]byte(testCatalog))
	st := buildTestState(t, cat)
	encoded, _ := Encode(st)

	// Catálogo reduzido: a porta não existe mais
	smallCat, _ := catalog.Parse([]byte(`{"blocks": [
		{"id": "wall_2m", "name": "Parede", "category": "walls", "cost": 120,
		 "mesh": "blocks/wall_2m.obj", "size": {"x": 2, "y": 2.5, "z": 0.2},
		 "attachments": []}
	]}`))

	restored := assembly.NewState()
	if err := Decode(encoded, smallCat, restored, nil); err != nil {
		t.Fatalf("Decode abortou em vez de descartar o bloco: %v", err)
	}
	if len(restored.Placed) != 2 {
		t.Errorf("conjunto restaurado tem %d blocos, want 2 (porta descartada)", len(restored.Placed))
	}
}

func mustCompress(t *testing.T, jsonText string) string {
	t.Helper()
	out, err := compress([]byte(jsonText))
	if err != nil {
		t.Fatalf("compress falhou: %v", err)
	}
	return out
}
