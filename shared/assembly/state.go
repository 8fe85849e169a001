package assembly

import (
	"MontaCasa/shared/roof"
)

// State é o estado completo da montagem: no máximo uma instância ativa
// (segurada pelo usuário), o conjunto posicionado e a seleção de telhado.
// Possui um único escritor (o controlador da aplicação); os componentes
// de snap, telhado e snapshot apenas leem o conjunto posicionado.
type State struct {
	Active *Instance
	Placed []*Instance
	Roof   roof.State
}

// NewState cria um estado de montagem vazio.
func NewState() *State {
	return &State{}
}

// Place confirma a instância ativa: roda o snap contra o conjunto
// posicionado e a move para o conjunto. Retorna a instância posicionada,
// ou nil se não havia instância ativa.
func (s *State) Place() *Instance {
	if s.Active == nil {
		return nil
	}
	inst := s.Active
	Snap(inst, s.Placed)
	s.Placed = append(s.Placed, inst)
	s.Active = nil
	return inst
}

// PickUp retira uma instância do conjunto posicionado e a torna ativa.
// Os encaixes dela são desfeitos antes da remoção. Se já existe uma
// instância ativa, é um no-op.
func (s *State) PickUp(inst *Instance) bool {
	if s.Active != nil {
		return false
	}
	idx := s.indexOf(inst)
	if idx < 0 {
		return false
	}
	Unsnap(inst, s.Placed)
	s.Placed = append(s.Placed[:idx], s.Placed[idx+1:]...)
	s.Active = inst
	return true
}

// Delete destrói a instância ativa, se houver.
func (s *State) Delete() bool {
	if s.Active == nil {
		return false
	}
	s.Active = nil
	return true
}

// Clear descarta todo o conteúdo da montagem (usado no load de snapshot).
func (s *State) Clear() {
	s.Active = nil
	s.Placed = nil
	s.Roof = roof.State{}
}

// TotalCost soma o custo de catálogo de todas as instâncias posicionadas.
func (s *State) TotalCost() float64 {
	total := 0.0
	for _, inst := range s.Placed {
		total += inst.Def.Cost
	}
	return total
}

func (s *State) indexOf(inst *Instance) int {
	for i, p := range s.Placed {
		if p == inst {
			return i
		}
	}
	return -1
}
