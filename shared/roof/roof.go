package roof

// Style é o estilo paramétrico do telhado gerado sobre a montagem.
type Style int

const (
	StyleNone       Style = iota // Sem telhado (estado inicial e terminal)
	StyleGable                   // Duas águas simétricas
	StyleAsymmetric              // Cumeeira deslocada (70/30)
	StyleFlat                    // Laje plana
)

// styleNames são as formas string usadas no snapshot (interop).
var styleNames = map[Style]string{
	StyleNone:       "none",
	StyleGable:      "gable",
	StyleAsymmetric: "asymmetric",
	StyleFlat:       "flat",
}

// String retorna a forma serializável do estilo.
func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return "unknown"
}

// StyleFromString resolve a forma string de um snapshot de volta ao estilo.
func StyleFromString(name string) (Style, bool) {
	for style, n := range styleNames {
		if n == name {
			return style, true
		}
	}
	return StyleNone, false
}

// Next retorna o próximo estilo no ciclo da UI (None → Gable → Asymmetric → Flat → None).
func (s Style) Next() Style {
	return Style((int(s) + 1) % 4)
}

// State é a seleção de telhado da montagem: estilo e passo de rotação.
// O passo é sempre mantido módulo 4 (90 graus por passo, eixo vertical).
type State struct {
	Style        Style
	RotationStep int
}

// Rotate avança (ou retrocede, com delta negativo) o passo de rotação.
func (st *State) Rotate(delta int) {
	st.RotationStep = ((st.RotationStep+delta)%4 + 4) % 4
}

// YawDegrees retorna a rotação do grupo do telhado em graus.
func (st State) YawDegrees() float32 {
	return float32(st.RotationStep) * 90.0
}
