package util

import "sync"

// UniqueQueue é uma fila thread-safe que garante elementos únicos por chave.
// Usada para enfileirar pedidos de carga de mesh sem duplicar trabalho.
type UniqueQueue[K comparable, V any] struct {
	mu      sync.Mutex
	items   []entry[K, V]
	present map[K]bool
}

type entry[K comparable, V any] struct {
	Key   K
	Value V
}

// NewUniqueQueue cria uma nova UniqueQueue.
func NewUniqueQueue[K comparable, V any]() *UniqueQueue[K, V] {
	return &UniqueQueue[K, V]{
		present: make(map[K]bool),
	}
}

// Enqueue adiciona um item se a chave ainda não existir na fila.
// Retorna true se foi adicionado, false se a chave já estava pendente.
func (q *UniqueQueue[K, V]) Enqueue(key K, value V) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.present[key] {
		return false
	}
	q.items = append(q.items, entry[K, V]{Key: key, Value: value})
	q.present[key] = true
	return true
}

// Dequeue remove e retorna o primeiro item da fila.
// Retorna zero values e false se vazia.
func (q *UniqueQueue[K, V]) Dequeue() (K, V, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}

	e := q.items[0]
	q.items = q.items[1:]
	delete(q.present, e.Key)
	return e.Key, e.Value, true
}

// Len retorna o número de itens pendentes.
func (q *UniqueQueue[K, V]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
