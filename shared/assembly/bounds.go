package assembly

import (
	"MontaCasa/shared/geom"

	"github.com/go-gl/mathgl/mgl32"
)

// Bounds calcula a caixa alinhada aos eixos que envolve todas as instâncias
// posicionadas, considerando os cantos rotacionados de cada bloco.
// Retorna ok == false para o conjunto vazio (sentinela, não erro).
func Bounds(placed []*Instance) (bmin, bmax mgl32.Vec3, ok bool) {
	first := true
	for _, inst := range placed {
		for _, corner := range inst.Corners() {
			if first {
				bmin, bmax = corner, corner
				first = false
				continue
			}
			bmin = geom.VecMin(bmin, corner)
			bmax = geom.VecMax(bmax, corner)
		}
	}
	return bmin, bmax, !first
}
