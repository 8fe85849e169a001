package assembly

import (
	"testing"

	"MontaCasa/shared/catalog"

	"github.com/go-gl/mathgl/mgl32"
)

// defWithPoints cria uma definição mínima com os pontos de encaixe dados.
func defWithPoints(id string, points ...[2]mgl32.Vec3) *catalog.Definition {
	def := &catalog.Definition{
		ID:   id,
		Name: id,
		Cost: 100,
		Size: mgl32.Vec3{2, 2.5, 0.2},
	}
	for _, p := range points {
		def.Attachments = append(def.Attachments, catalog.AttachmentTemplate{
			LocalPosition:  p[0],
			LocalDirection: p[1].Normalize(),
		})
	}
	return def
}

func TestSnapAlinhaParMaisProximo(t *testing.T) {
	// Cenário A: dois blocos com um ponto cada, 0.5 unidades de distância,
	// direções exatamente opostas.
	placed := NewInstance(defWithPoints("a", [2]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}}), mgl32.Vec3{0, 0, 0})
	active := NewInstance(defWithPoints("b", [2]mgl32.Vec3{{0, 0, 0}, {-1, 0, 0}}), mgl32.Vec3{0.5, 0, 0})

	if !Snap(active, []*Instance{placed}) {
		t.Fatal("Snap não encaixou par válido")
	}

	// Invariante de translação: os dois pontos terminam no mesmo lugar
	pa := active.WorldPoint(active.Points[0])
	pb := placed.WorldPoint(placed.Points[0])
	if pa.Sub(pb).Len() > 1e-5 {
		t.Errorf("pontos não coincidem após snap: %v vs %v", pa, pb)
	}
	if !active.Points[0].IsSnapped || !placed.Points[0].IsSnapped {
		t.Error("flags IsSnapped não foram marcados nos dois lados")
	}
}

func TestSnapDirecoesPerpendicularesNaoEncaixa(t *testing.T) {
	// Cenário B: mesma distância, mas direções perpendiculares (dot = 0).
	placed := NewInstance(defWithPoints("a", [2]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}}), mgl32.Vec3{0, 0, 0})
	active := NewInstance(defWithPoints("b", [2]mgl32.Vec3{{0, 0, 0}, {0, 0, 1}}), mgl32.Vec3{0.5, 0, 0})

	before := active.Transform.Position
	if Snap(active, []*Instance{placed}) {
		t.Fatal("Snap encaixou par perpendicular")
	}
	if active.Transform.Position != before {
		t.Error("posição mudou num no-op de snap")
	}
	if active.Points[0].IsSnapped || placed.Points[0].IsSnapped {
		t.Error("flags marcados num no-op de snap")
	}
}

func TestSnapForaDoAlcanceNaoEncaixa(t *testing.T) {
	placed := NewInstance(defWithPoints("a", [2]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}}), mgl32.Vec3{0, 0, 0})
	active := NewInstance(defWithPoints("b", [2]mgl32.Vec3{{0, 0, 0}, {-1, 0, 0}}), mgl32.Vec3{0.8, 0, 0})

	if Snap(active, []*Instance{placed}) {
		t.Error("Snap encaixou par além do limiar de distância")
	}
}

func TestSnapMarcaTodosOsCandidatos(t *testing.T) {
	// Dois pares candidatos simultâneos; o alinhamento usa o mais próximo,
	// mas AMBOS os pares terminam marcados. Comportamento pinado: faz parte
	// do contrato observável do formato de design.
	placed := NewInstance(defWithPoints("a",
		[2]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}},
		[2]mgl32.Vec3{{0, 1, 0}, {1, 0, 0}},
	), mgl32.Vec3{0, 0, 0})
	active := NewInstance(defWithPoints("b",
		[2]mgl32.Vec3{{0, 0, 0}, {-1, 0, 0}},
		[2]mgl32.Vec3{{0, 1, 0}, {-1, 0, 0}},
	), mgl32.Vec3{0.3, 0, 0})

	if !Snap(active, []*Instance{placed}) {
		t.Fatal("Snap não encaixou")
	}
	for i, p := range active.Points {
		if !p.IsSnapped {
			t.Errorf("ponto ativo %d não marcado", i)
		}
	}
	for i, p := range placed.Points {
		if !p.IsSnapped {
			t.Errorf("ponto posicionado %d não marcado", i)
		}
	}
}

func TestUnsnapEInversoDoSnap(t *testing.T) {
	placed := NewInstance(defWithPoints("a", [2]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}}), mgl32.Vec3{0, 0, 0})
	active := NewInstance(defWithPoints("b", [2]mgl32.Vec3{{0, 0, 0}, {-1, 0, 0}}), mgl32.Vec3{0.5, 0, 0})

	Snap(active, []*Instance{placed})
	posAfterSnap := active.Transform.Position

	// Sem movimentos no meio, o unsnap restaura os flags sem mover nada
	Unsnap(active, []*Instance{placed, active})
	if active.Points[0].IsSnapped || placed.Points[0].IsSnapped {
		t.Error("Unsnap não limpou os flags")
	}
	if active.Transform.Position != posAfterSnap {
		t.Error("Unsnap aplicou translação")
	}
}

func TestUnsnapSemParesEhNoOp(t *testing.T) {
	inst := NewInstance(defWithPoints("a", [2]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}}), mgl32.Vec3{0, 0, 0})
	Unsnap(inst, nil) // não pode entrar em pânico nem mudar nada
	if inst.Points[0].IsSnapped {
		t.Error("flag apareceu do nada")
	}
}
