package assembly

import (
	"MontaCasa/shared/catalog"
	"MontaCasa/shared/geom"

	"github.com/go-gl/mathgl/mgl32"
)

// AttachmentPoint é o estado por-instância de um ponto de encaixe.
// Copiado do template da definição (nunca compartilhado), pois o flag
// IsSnapped pertence à instância, não ao catálogo.
type AttachmentPoint struct {
	LocalPosition  mgl32.Vec3
	LocalDirection mgl32.Vec3
	IsSnapped      bool
}

// Instance é uma cópia posicionada de um bloco do catálogo, com transform
// próprio e estados de encaixe próprios.
type Instance struct {
	Def       *catalog.Definition
	Transform geom.Transform
	Points    []*AttachmentPoint
}

// NewInstance cria uma instância a partir de uma definição do catálogo,
// copiando os templates de pontos de encaixe (todos desencaixados).
func NewInstance(def *catalog.Definition, pos mgl32.Vec3) *Instance {
	inst := &Instance{
		Def:       def,
		Transform: geom.Transform{Position: pos},
	}
	for _, tpl := range def.Attachments {
		inst.Points = append(inst.Points, &AttachmentPoint{
			LocalPosition:  tpl.LocalPosition,
			LocalDirection: tpl.LocalDirection,
		})
	}
	return inst
}

// WorldPoint retorna a posição de um ponto de encaixe no espaço do mundo.
func (i *Instance) WorldPoint(p *AttachmentPoint) mgl32.Vec3 {
	return i.Transform.PointToWorld(p.LocalPosition)
}

// WorldDir retorna a direção de um ponto de encaixe no espaço do mundo.
func (i *Instance) WorldDir(p *AttachmentPoint) mgl32.Vec3 {
	return i.Transform.DirToWorld(p.LocalDirection)
}

// Corners retorna os 8 cantos da caixa local do bloco no espaço do mundo.
// A caixa local é centrada em XZ e apoiada em Y=0 (base do bloco).
func (i *Instance) Corners() [8]mgl32.Vec3 {
	half := i.Def.Size.Mul(0.5)
	var out [8]mgl32.Vec3
	idx := 0
	for _, x := range [2]float32{-half.X(), half.X()} {
		for _, y := range [2]float32{0, i.Def.Size.Y()} {
			for _, z := range [2]float32{-half.Z(), half.Z()} {
				out[idx] = i.Transform.PointToWorld(mgl32.Vec3{x, y, z})
				idx++
			}
		}
	}
	return out
}
