package assembly

import (
	"log"

	"MontaCasa/shared/geom"

	"github.com/go-gl/mathgl/mgl32"
)

// candidate é um par de pontos de encaixe que satisfaz o predicado de snap,
// com as posições de mundo capturadas no momento da busca.
// Derivado a cada invocação, nunca armazenado.
type candidate struct {
	a, b   *AttachmentPoint
	pa, pb mgl32.Vec3
	dist   float32
}

// matchPair aplica o predicado de candidatura: distância abaixo do limiar
// e direções quase exatamente opostas.
func matchPair(active, other *Instance, a, b *AttachmentPoint) (candidate, bool) {
	pa := active.WorldPoint(a)
	pb := other.WorldPoint(b)
	dist := geom.Dist(pa, pb)
	if dist >= geom.SnapDistance {
		return candidate{}, false
	}
	if active.WorldDir(a).Dot(other.WorldDir(b)) > geom.SnapDot {
		return candidate{}, false
	}
	return candidate{a: a, b: b, pa: pa, pb: pb, dist: dist}, true
}

// findCandidates varre todos os pares de pontos desencaixados entre a
// instância ativa e o conjunto posicionado.
func findCandidates(active *Instance, placed []*Instance) []candidate {
	var candidates []candidate
	for _, a := range active.Points {
		if a.IsSnapped {
			continue
		}
		for _, other := range placed {
			if other == active {
				continue
			}
			for _, b := range other.Points {
				if b.IsSnapped {
					continue
				}
				if c, ok := matchPair(active, other, a, b); ok {
					candidates = append(candidates, c)
				}
			}
		}
	}
	return candidates
}

// Snap procura pares de encaixe entre a instância ativa e o conjunto posicionado.
// Se houver candidatos, translada a instância ativa para alinhar o par mais
// próximo (translação rígida, sem correção de rotação) e marca TODOS os pares
// candidatos como encaixados, não só o escolhido. Sem candidatos é um no-op
// válido, nunca um erro. Retorna true se houve encaixe.
func Snap(active *Instance, placed []*Instance) bool {
	candidates := findCandidates(active, placed)
	if len(candidates) == 0 {
		return false
	}

	// Seleciona o par de menor distância para o alinhamento
	chosen := candidates[0]
	for _, c := range candidates[1:] {
		if c.dist < chosen.dist {
			chosen = c
		}
	}

	// Translação rígida: leva o ponto A exatamente sobre o ponto B
	delta := chosen.pb.Sub(chosen.pa)
	active.Transform.Position = active.Transform.Position.Add(delta)

	// Todos os candidatos válidos são marcados, não apenas o escolhido.
	// Comportamento herdado do formato de design: pares "perto o suficiente"
	// também ficam travados.
	for _, c := range candidates {
		c.a.IsSnapped = true
		c.b.IsSnapped = true
	}

	log.Printf("[Snap] Encaixe: %d par(es) marcados, deslocamento %v", len(candidates), delta)
	return true
}

// Unsnap desfaz os encaixes de uma instância sendo retirada do conjunto.
// Para cada par (A nesta instância, B em outra) onde ambos estão encaixados
// e o predicado de distância/direção ainda vale, limpa os dois flags.
// Nenhuma translação é aplicada. Sem pares é um no-op válido.
func Unsnap(inst *Instance, placed []*Instance) {
	cleared := 0
	for _, a := range inst.Points {
		if !a.IsSnapped {
			continue
		}
		for _, other := range placed {
			if other == inst {
				continue
			}
			for _, b := range other.Points {
				if !b.IsSnapped {
					continue
				}
				pa := inst.WorldPoint(a)
				pb := other.WorldPoint(b)
				if geom.Dist(pa, pb) >= geom.SnapDistance {
					continue
				}
				if inst.WorldDir(a).Dot(other.WorldDir(b)) > geom.SnapDot {
					continue
				}
				a.IsSnapped = false
				b.IsSnapped = false
				cleared++
			}
		}
	}
	if cleared > 0 {
		log.Printf("[Snap] Desencaixe: %d par(es) liberados", cleared)
	}
}
