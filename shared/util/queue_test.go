package util

import "testing"

func TestUniqueQueueNaoDuplicaChaves(t *testing.T) {
	q := NewUniqueQueue[string, int]()

	if !q.Enqueue("a", 1) {
		t.Error("primeira inserção de 'a' deveria entrar")
	}
	if q.Enqueue("a", 2) {
		t.Error("segunda inserção de 'a' não deveria entrar enquanto pendente")
	}
	if !q.Enqueue("b", 3) {
		t.Error("inserção de 'b' deveria entrar")
	}
	if q.Len() != 2 {
		t.Errorf("Len = %d, esperado 2", q.Len())
	}
}

func TestUniqueQueueOrdemFIFO(t *testing.T) {
	q := NewUniqueQueue[string, int]()
	q.Enqueue("a", 1)
	q.Enqueue("b", 2)

	k, v, ok := q.Dequeue()
	if !ok || k != "a" || v != 1 {
		t.Errorf("Dequeue = (%q, %d, %v), esperado (a, 1, true)", k, v, ok)
	}

	// Após sair da fila, a chave pode ser enfileirada de novo
	if !q.Enqueue("a", 9) {
		t.Error("'a' deveria poder entrar de novo após o Dequeue")
	}

	k, v, ok = q.Dequeue()
	if !ok || k != "b" || v != 2 {
		t.Errorf("Dequeue = (%q, %d, %v), esperado (b, 2, true)", k, v, ok)
	}
}

func TestUniqueQueueVazia(t *testing.T) {
	q := NewUniqueQueue[string, int]()
	if _, _, ok := q.Dequeue(); ok {
		t.Error("Dequeue em fila vazia deveria retornar false")
	}
	if q.Len() != 0 {
		t.Errorf("Len = %d, esperado 0", q.Len())
	}
}

func TestLerpEClamp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Errorf("Lerp(0,10,0.5) = %v, esperado 5", got)
	}
	if got := Clamp(15, 0, 10); got != 10 {
		t.Errorf("Clamp(15,0,10) = %v, esperado 10", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3,0,10) = %v, esperado 0", got)
	}
}
