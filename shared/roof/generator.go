package roof

import (
	"fmt"
	"math"

	"MontaCasa/shared/geom"

	"github.com/go-gl/mathgl/mgl32"
)

// Cores base da geometria gerada (telha cerâmica e forro claro).
var (
	roofColor   = [4]uint8{178, 60, 48, 255}
	soffitColor = [4]uint8{236, 226, 205, 255}
)

// Result é a geometria completa de um telhado gerado. Totalmente substituída
// a cada regeneração, nunca atualizada incrementalmente.
// Os vértices ficam no referencial local do telhado: origem em Center
// (centro XZ do volume envolvente, no topo dele), para que a rotação de
// 90 graus por passo gire o grupo inteiro em torno do pivô correto.
type Result struct {
	Telhado GeometryData // Corpo principal do telhado
	Beirais GeometryData // Peças de beiral (soffits)
	Center  mgl32.Vec3   // Pivô no espaço do mundo
}

// Generate constrói a geometria do estilo pedido sobre o volume envolvente.
// Retorna false para StyleNone (sem geometria). Estilo desconhecido é erro de
// programação e causa panic. O chamador é responsável por só invocar com um
// volume válido (conjunto posicionado não vazio).
func Generate(bmin, bmax mgl32.Vec3, style Style) (Result, bool) {
	if style == StyleNone {
		return Result{}, false
	}

	w := bmax.X() - bmin.X()
	d := bmax.Z() - bmin.Z()
	res := Result{
		Center: mgl32.Vec3{
			(bmin.X() + bmax.X()) * 0.5,
			bmax.Y(),
			(bmin.Z() + bmax.Z()) * 0.5,
		},
	}

	main := &MeshBuffer{}
	soffits := &MeshBuffer{}

	switch style {
	case StyleGable:
		buildGable(main, soffits, w, d)
	case StyleAsymmetric:
		buildAsymmetric(main, soffits, w, d)
	case StyleFlat:
		buildFlat(main, w, d)
	default:
		panic(fmt.Sprintf("roof: estilo desconhecido %d", style))
	}

	res.Telhado = main.Geometry
	res.Beirais = soffits.Geometry
	return res, true
}

// normal2D converte uma normal de seção transversal (plano XY) para 3D unitária.
func normal2D(nx, ny float32) [3]float32 {
	l := float32(math.Sqrt(float64(nx*nx + ny*ny)))
	return [3]float32{nx / l, ny / l, 0}
}

// buildGable gera o prisma triangular isósceles de duas águas:
// seção [-w/2, w/2] com ápice em H = tan(inclinação) * w/2, extrudada ao longo de d.
func buildGable(main, soffits *MeshBuffer, w, d float32) {
	halfW := w * 0.5
	halfD := d * 0.5
	h := geom.RoofPitchTan * halfW

	// Água esquerda (sobe de -w/2 até a cumeeira central)
	main.AddQuad(
		[3]float32{-halfW, 0, -halfD},
		[3]float32{-halfW, 0, halfD},
		[3]float32{0, h, halfD},
		[3]float32{0, h, -halfD},
		normal2D(-h, halfW), roofColor,
	)
	// Água direita
	main.AddQuad(
		[3]float32{halfW, 0, halfD},
		[3]float32{halfW, 0, -halfD},
		[3]float32{0, h, -halfD},
		[3]float32{0, h, halfD},
		normal2D(h, halfW), roofColor,
	)
	// Oitões (empenas triangulares nas duas extremidades)
	main.AddTriangle(
		[3]float32{-halfW, 0, halfD},
		[3]float32{halfW, 0, halfD},
		[3]float32{0, h, halfD},
		[3]float32{0, 0, 1}, roofColor,
	)
	main.AddTriangle(
		[3]float32{halfW, 0, -halfD},
		[3]float32{-halfW, 0, -halfD},
		[3]float32{0, h, -halfD},
		[3]float32{0, 0, -1}, roofColor,
	)
	// Base voltada para baixo
	main.AddQuad(
		[3]float32{-halfW, 0, -halfD},
		[3]float32{halfW, 0, -halfD},
		[3]float32{halfW, 0, halfD},
		[3]float32{-halfW, 0, halfD},
		[3]float32{0, -1, 0}, roofColor,
	)

	// Beirais espelhados nas duas bordas, cobrindo também frente e fundo
	addSoffit(soffits, -1, halfW, halfD)
	addSoffit(soffits, +1, halfW, halfD)
}

// buildAsymmetric gera a cumeeira deslocada: largura dividida 70/30 em duas
// seções de triângulo retângulo com alturas independentes, encostadas na
// linha de cumeeira; a diferença de altura vira uma face vertical.
func buildAsymmetric(main, soffits *MeshBuffer, w, d float32) {
	halfW := w * 0.5
	halfD := d * 0.5
	w1 := w * geom.RidgeSplit
	w2 := w - w1
	h1 := geom.RoofPitchTan * w1
	h2 := geom.RoofPitchTan * w2
	ridgeX := -halfW + w1

	// Água longa (esquerda, sobe até h1)
	main.AddQuad(
		[3]float32{-halfW, 0, -halfD},
		[3]float32{-halfW, 0, halfD},
		[3]float32{ridgeX, h1, halfD},
		[3]float32{ridgeX, h1, -halfD},
		normal2D(-h1, w1), roofColor,
	)
	// Água curta (direita, sobe até h2)
	main.AddQuad(
		[3]float32{halfW, 0, halfD},
		[3]float32{halfW, 0, -halfD},
		[3]float32{ridgeX, h2, -halfD},
		[3]float32{ridgeX, h2, halfD},
		normal2D(h2, w2), roofColor,
	)
	// Face vertical entre as duas alturas na linha da cumeeira
	main.AddQuad(
		[3]float32{ridgeX, h2, halfD},
		[3]float32{ridgeX, h2, -halfD},
		[3]float32{ridgeX, h1, -halfD},
		[3]float32{ridgeX, h1, halfD},
		[3]float32{1, 0, 0}, roofColor,
	)
	// Empenas (quadriláteros: beiral esquerdo → cumeeira alta → cumeeira baixa → beiral direito)
	main.AddQuad(
		[3]float32{-halfW, 0, halfD},
		[3]float32{ridgeX, h1, halfD},
		[3]float32{ridgeX, h2, halfD},
		[3]float32{halfW, 0, halfD},
		[3]float32{0, 0, 1}, roofColor,
	)
	main.AddQuad(
		[3]float32{halfW, 0, -halfD},
		[3]float32{ridgeX, h2, -halfD},
		[3]float32{ridgeX, h1, -halfD},
		[3]float32{-halfW, 0, -halfD},
		[3]float32{0, 0, -1}, roofColor,
	)
	// Base voltada para baixo
	main.AddQuad(
		[3]float32{-halfW, 0, -halfD},
		[3]float32{halfW, 0, -halfD},
		[3]float32{halfW, 0, halfD},
		[3]float32{-halfW, 0, halfD},
		[3]float32{0, -1, 0}, roofColor,
	)

	addSoffit(soffits, -1, halfW, halfD)
	addSoffit(soffits, +1, halfW, halfD)
}

// buildFlat gera a laje plana: prisma retangular cobrindo o volume envolvente
// expandido pelo beiral nos dois eixos horizontais.
func buildFlat(main *MeshBuffer, w, d float32) {
	hx := w*0.5 + geom.OverhangLength
	hz := d*0.5 + geom.OverhangLength
	t := geom.OverhangThickness

	// Topo e base
	main.AddQuad(
		[3]float32{-hx, t, -hz}, [3]float32{-hx, t, hz},
		[3]float32{hx, t, hz}, [3]float32{hx, t, -hz},
		[3]float32{0, 1, 0}, roofColor,
	)
	main.AddQuad(
		[3]float32{-hx, 0, -hz}, [3]float32{hx, 0, -hz},
		[3]float32{hx, 0, hz}, [3]float32{-hx, 0, hz},
		[3]float32{0, -1, 0}, roofColor,
	)
	// Laterais
	main.AddQuad(
		[3]float32{-hx, 0, hz}, [3]float32{hx, 0, hz},
		[3]float32{hx, t, hz}, [3]float32{-hx, t, hz},
		[3]float32{0, 0, 1}, roofColor,
	)
	main.AddQuad(
		[3]float32{hx, 0, -hz}, [3]float32{-hx, 0, -hz},
		[3]float32{-hx, t, -hz}, [3]float32{hx, t, -hz},
		[3]float32{0, 0, -1}, roofColor,
	)
	main.AddQuad(
		[3]float32{-hx, 0, -hz}, [3]float32{-hx, 0, hz},
		[3]float32{-hx, t, hz}, [3]float32{-hx, t, -hz},
		[3]float32{-1, 0, 0}, roofColor,
	)
	main.AddQuad(
		[3]float32{hx, 0, hz}, [3]float32{hx, 0, -hz},
		[3]float32{hx, t, -hz}, [3]float32{hx, t, hz},
		[3]float32{1, 0, 0}, roofColor,
	)
}

// addSoffit adiciona uma peça de beiral em cunha numa borda do telhado.
// side = -1 (borda esquerda) ou +1 (direita). O perfil continua o plano da
// água para fora por OverhangLength, com espessura OverhangThickness, e é
// extrudado ao longo da profundidade mais duas vezes o beiral, cobrindo
// também a frente e o fundo.
func addSoffit(buf *MeshBuffer, side float32, halfW, halfD float32) {
	ol := geom.OverhangLength
	t := geom.OverhangThickness

	innerX := side * halfW
	outerX := side * (halfW + ol)
	dropY := -ol * geom.RoofPitchTan // a cunha continua descendo na inclinação
	hz := halfD + ol

	// Superfície superior, continuando a inclinação da água
	buf.AddQuad(
		[3]float32{innerX, 0, -hz},
		[3]float32{innerX, 0, hz},
		[3]float32{outerX, dropY, hz},
		[3]float32{outerX, dropY, -hz},
		normal2D(side*geom.RoofPitchTan, 1), soffitColor,
	)
	// Face inferior
	buf.AddQuad(
		[3]float32{innerX, -t, hz},
		[3]float32{innerX, -t, -hz},
		[3]float32{outerX, dropY - t, -hz},
		[3]float32{outerX, dropY - t, hz},
		[3]float32{0, -1, 0}, soffitColor,
	)
	// Testeira externa (vertical, na ponta do beiral)
	buf.AddQuad(
		[3]float32{outerX, dropY, -hz},
		[3]float32{outerX, dropY, hz},
		[3]float32{outerX, dropY - t, hz},
		[3]float32{outerX, dropY - t, -hz},
		[3]float32{side, 0, 0}, soffitColor,
	)
	// Face interna (encosta na parede)
	buf.AddQuad(
		[3]float32{innerX, 0, hz},
		[3]float32{innerX, 0, -hz},
		[3]float32{innerX, -t, -hz},
		[3]float32{innerX, -t, hz},
		[3]float32{-side, 0, 0}, soffitColor,
	)
	// Tampas nas duas extremidades
	buf.AddQuad(
		[3]float32{innerX, 0, hz},
		[3]float32{outerX, dropY, hz},
		[3]float32{outerX, dropY - t, hz},
		[3]float32{innerX, -t, hz},
		[3]float32{0, 0, 1}, soffitColor,
	)
	buf.AddQuad(
		[3]float32{outerX, dropY, -hz},
		[3]float32{innerX, 0, -hz},
		[3]float32{innerX, -t, -hz},
		[3]float32{outerX, dropY - t, -hz},
		[3]float32{0, 0, -1}, soffitColor,
	)
}
