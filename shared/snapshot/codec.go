package snapshot

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"MontaCasa/shared/assembly"
	"MontaCasa/shared/catalog"
	"MontaCasa/shared/roof"

	"github.com/go-gl/mathgl/mgl32"
)

// --- Registro estruturado do design (formato de interop, chaves exatas) ---

type vecRecord struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

func toRecord(v mgl32.Vec3) vecRecord {
	return vecRecord{X: v.X(), Y: v.Y(), Z: v.Z()}
}

func (v vecRecord) Vec() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

type pointRecord struct {
	Position  vecRecord `json:"position"`
	Vector    vecRecord `json:"vector"`
	IsSnapped bool      `json:"isSnapped"`
}

type blockRecord struct {
	DefinitionID     string        `json:"definitionId"`
	Cost             float64       `json:"cost"`
	Position         vecRecord     `json:"position"`
	Rotation         vecRecord     `json:"rotation"`
	AttachmentPoints []pointRecord `json:"attachmentPoints"`
}

// designRecord é o registro completo de um design. Blocks é ponteiro para
// distinguir campo ausente (load abortado) de lista vazia (design sem blocos).
type designRecord struct {
	Blocks           *[]blockRecord `json:"blocks"`
	RoofStyle        string         `json:"roofStyle"`
	RoofRotationStep int            `json:"roofRotationStep"`
}

// --- Transformação de compressão reversível (JSON → zlib → base64) ---

func compress(data []byte) (string, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return "", err
	}
	if err := zw.Close(); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(buf.Bytes()), nil
}

func decompress(text string) ([]byte, error) {
	raw, err := base64.URLEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("entrada não é base64 válido: %w", err)
	}
	zr, err := zlib.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("entrada não é zlib válido: %w", err)
	}
	defer zr.Close()
	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("falha ao descomprimir snapshot: %w", err)
	}
	return data, nil
}

// Encode serializa o conjunto posicionado e a seleção de telhado num texto
// compacto transportável (área de transferência, campo de texto, servidor).
// Posições e flags de encaixe saem verbatim do estado atual.
func Encode(st *assembly.State) (string, error) {
	blocks := make([]blockRecord, 0, len(st.Placed))
	for _, inst := range st.Placed {
		rec := blockRecord{
			DefinitionID: inst.Def.ID,
			Cost:         inst.Def.Cost,
			Position:     toRecord(inst.Transform.Position),
			Rotation:     toRecord(inst.Transform.Rotation),
		}
		for _, p := range inst.Points {
			rec.AttachmentPoints = append(rec.AttachmentPoints, pointRecord{
				Position:  toRecord(p.LocalPosition),
				Vector:    toRecord(p.LocalDirection),
				IsSnapped: p.IsSnapped,
			})
		}
		blocks = append(blocks, rec)
	}

	record := designRecord{
		Blocks:           &blocks,
		RoofStyle:        st.Roof.Style.String(),
		RoofRotationStep: st.Roof.RotationStep,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("falha ao serializar design: %w", err)
	}
	return compress(data)
}

// Decode restaura um design codificado para dentro do estado de montagem.
//
// Falhas de decodificação (base64/zlib inválido, JSON malformado, campo
// blocks ausente ou não-lista) abortam o load inteiro SEM tocar no estado
// atual. Um definitionId desconhecido descarta apenas aquele bloco, com log.
// Flags de encaixe são restaurados como gravados, nunca recalculados.
//
// onInstance é chamado para cada instância reconstruída (a aplicação usa
// para disparar o load assíncrono do mesh); pode ser nil. Trabalho que lê o
// conjunto inteiro (telhado, custo) fica a cargo do chamador, DEPOIS de
// todas as instâncias inseridas.
func Decode(text string, cat *catalog.Catalog, st *assembly.State, onInstance func(*assembly.Instance)) error {
	data, err := decompress(text)
	if err != nil {
		return err
	}

	var record designRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("snapshot malformado: %w", err)
	}
	if record.Blocks == nil {
		return fmt.Errorf("snapshot malformado: campo blocks ausente")
	}

	style, ok := roof.StyleFromString(record.RoofStyle)
	if !ok {
		log.Printf("[Snapshot] Estilo de telhado desconhecido %q, usando none", record.RoofStyle)
		style = roof.StyleNone
	}

	// Reconstrói tudo em memória antes de mexer no estado: um snapshot que
	// falha no meio não pode deixar instâncias parciais na cena.
	instances := make([]*assembly.Instance, 0, len(*record.Blocks))
	for _, rec := range *record.Blocks {
		def, found := cat.Lookup(rec.DefinitionID)
		if !found {
			log.Printf("[Snapshot] Definição desconhecida %q, bloco descartado", rec.DefinitionID)
			continue
		}

		inst := assembly.NewInstance(def, rec.Position.Vec())
		inst.Transform.Rotation = rec.Rotation.Vec()

		// Estados de encaixe verbatim do registro, substituindo os templates
		inst.Points = inst.Points[:0]
		for _, p := range rec.AttachmentPoints {
			inst.Points = append(inst.Points, &assembly.AttachmentPoint{
				LocalPosition:  p.Position.Vec(),
				LocalDirection: p.Vector.Vec(),
				IsSnapped:      p.IsSnapped,
			})
		}
		instances = append(instances, inst)
	}

	st.Clear()
	for _, inst := range instances {
		st.Placed = append(st.Placed, inst)
		if onInstance != nil {
			onInstance(inst)
		}
	}
	st.Roof = roof.State{Style: style, RotationStep: ((record.RoofRotationStep % 4) + 4) % 4}

	log.Printf("[Snapshot] Design restaurado: %d bloco(s), telhado %s", len(instances), style)
	return nil
}
