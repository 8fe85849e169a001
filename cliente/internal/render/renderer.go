package render

/*
#include <stdlib.h>
*/
import "C"

import (
	"sync"
	"unsafe"

	"MontaCasa/shared/assembly"
	"MontaCasa/shared/geom"
	"MontaCasa/shared/roof"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer possui todos os recursos de GPU da aplicação: o cache de modelos
// do catálogo e a geometria do telhado atual.
type Renderer struct {
	mu sync.RWMutex

	// Cache de modelos por arquivo de mesh
	models map[string]rl.Model
	failed map[string]bool

	// Telhado atual (substituído inteiro a cada regeneração)
	roofModel   rl.Model
	soffitModel rl.Model
	hasRoof     bool
	hasSoffit   bool
	roofCenter  rl.Vector3
	roofYaw     float32

	loader *loaderQueue
}

// NewRenderer cria um novo renderizador.
func NewRenderer() *Renderer {
	r := &Renderer{
		models: make(map[string]rl.Model),
		failed: make(map[string]bool),
	}
	r.loader = newLoaderQueue(r)
	return r
}

// --- Telhado ---

// UploadRoof descarta o telhado anterior e sobe a geometria recém-gerada
// para a GPU. yawDeg é a rotação do grupo (90 graus por passo).
func (r *Renderer) UploadRoof(res roof.Result, yawDeg float32) {
	if !rl.IsWindowReady() {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.unloadRoofLocked()

	if !res.Telhado.IsEmpty() {
		mesh := geometryToMesh(res.Telhado)
		rl.UploadMesh(&mesh, false)
		freeMeshRAM(&mesh)
		r.roofModel = rl.LoadModelFromMesh(mesh)
		r.hasRoof = true
	}
	if !res.Beirais.IsEmpty() {
		mesh := geometryToMesh(res.Beirais)
		rl.UploadMesh(&mesh, false)
		freeMeshRAM(&mesh)
		r.soffitModel = rl.LoadModelFromMesh(mesh)
		r.hasSoffit = true
	}

	r.roofCenter = rl.Vector3{X: res.Center.X(), Y: res.Center.Y(), Z: res.Center.Z()}
	r.roofYaw = yawDeg
}

// ClearRoof remove o telhado da GPU (estilo None ou conjunto vazio).
func (r *Renderer) ClearRoof() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unloadRoofLocked()
}

func (r *Renderer) unloadRoofLocked() {
	if r.hasRoof {
		rl.UnloadModel(r.roofModel)
		r.hasRoof = false
	}
	if r.hasSoffit {
		rl.UnloadModel(r.soffitModel)
		r.hasSoffit = false
	}
}

// DrawRoof desenha o telhado atual, aplicando a rotação do grupo em torno
// do eixo vertical no pivô calculado pelo gerador.
func (r *Renderer) DrawRoof() {
	r.mu.RLock()
	defer r.mu.RUnlock()

	up := rl.Vector3{X: 0, Y: 1, Z: 0}
	one := rl.Vector3{X: 1, Y: 1, Z: 1}
	if r.hasRoof {
		rl.DrawModelEx(r.roofModel, r.roofCenter, up, r.roofYaw, one, rl.White)
	}
	if r.hasSoffit {
		rl.DrawModelEx(r.soffitModel, r.roofCenter, up, r.roofYaw, one, rl.White)
	}
}

// --- Instâncias ---

// DrawInstance desenha uma instância posicionada (ou a ativa, com tint).
// Enquanto o modelo não chega da carga assíncrona, desenha um bloco
// fantasma com as dimensões do catálogo.
func (r *Renderer) DrawInstance(inst *assembly.Instance, handle *ModelHandle, tint rl.Color) {
	pos := rl.Vector3{
		X: inst.Transform.Position.X(),
		Y: inst.Transform.Position.Y(),
		Z: inst.Transform.Position.Z(),
	}
	yaw := inst.Transform.Rotation.Y()

	if handle != nil && handle.Ready && !handle.Failed {
		// Modelos do catálogo são autorados em metros; o mundo usa pés
		s := geom.CatalogScale
		rl.DrawModelEx(handle.Model, pos, rl.Vector3{X: 0, Y: 1, Z: 0}, yaw,
			rl.Vector3{X: s, Y: s, Z: s}, tint)
		return
	}

	size := inst.Def.Size
	center := rl.Vector3{X: pos.X, Y: pos.Y + size.Y()*0.5, Z: pos.Z}
	rl.DrawCubeV(center, rl.Vector3{X: size.X(), Y: size.Y(), Z: size.Z()}, rl.Fade(tint, 0.6))
	rl.DrawCubeWiresV(center, rl.Vector3{X: size.X(), Y: size.Y(), Z: size.Z()}, rl.Fade(rl.Black, 0.4))
}

// BoundingBox retorna a caixa de colisão de uma instância para picking.
func BoundingBox(inst *assembly.Instance) rl.BoundingBox {
	corners := inst.Corners()
	bmin, bmax := corners[0], corners[0]
	for _, c := range corners[1:] {
		bmin = geom.VecMin(bmin, c)
		bmax = geom.VecMax(bmax, c)
	}
	return rl.BoundingBox{
		Min: rl.Vector3{X: bmin.X(), Y: bmin.Y(), Z: bmin.Z()},
		Max: rl.Vector3{X: bmax.X(), Y: bmax.Y(), Z: bmax.Z()},
	}
}

// Shutdown libera todos os recursos de GPU.
func (r *Renderer) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.unloadRoofLocked()
	for _, model := range r.models {
		rl.UnloadModel(model)
	}
	r.models = make(map[string]rl.Model)
}

// --- Conversão para GPU ---

func geometryToMesh(data roof.GeometryData) rl.Mesh {
	var mesh rl.Mesh
	vCount := int32(len(data.Vertices) / 3)
	mesh.VertexCount = vCount
	mesh.TriangleCount = vCount / 3

	if len(data.Vertices) > 0 {
		mesh.Vertices = (*float32)(copyToC(unsafe.Pointer(&data.Vertices[0]), len(data.Vertices)*4))
	}
	if len(data.Normals) > 0 {
		mesh.Normals = (*float32)(copyToC(unsafe.Pointer(&data.Normals[0]), len(data.Normals)*4))
	}
	if len(data.Colors) > 0 {
		mesh.Colors = (*uint8)(copyToC(unsafe.Pointer(&data.Colors[0]), len(data.Colors)))
	}
	return mesh
}

func copyToC(data unsafe.Pointer, size int) unsafe.Pointer {
	if size <= 0 || data == nil {
		return nil
	}
	ptr := C.malloc(C.size_t(size))
	if ptr == nil {
		return nil
	}
	cSlice := unsafe.Slice((*byte)(ptr), size)
	goSlice := unsafe.Slice((*byte)(data), size)
	copy(cSlice, goSlice)
	return ptr
}

// freeMeshRAM libera a memória principal (C) associada a uma malha após o upload para a GPU.
func freeMeshRAM(mesh *rl.Mesh) {
	if mesh.Vertices != nil {
		C.free(unsafe.Pointer(mesh.Vertices))
		mesh.Vertices = nil
	}
	if mesh.Normals != nil {
		C.free(unsafe.Pointer(mesh.Normals))
		mesh.Normals = nil
	}
	if mesh.Colors != nil {
		C.free(unsafe.Pointer(mesh.Colors))
		mesh.Colors = nil
	}
}
