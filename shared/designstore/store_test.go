package designstore

import (
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "designs.db"))
	if err != nil {
		t.Fatalf("Open falhou: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveLoad(t *testing.T) {
	s := openTestStore(t)

	if err := s.Save("casinha", "dados-codificados", 5, 1230.0); err != nil {
		t.Fatalf("Save falhou: %v", err)
	}
	data, err := s.Load("casinha")
	if err != nil {
		t.Fatalf("Load falhou: %v", err)
	}
	if data != "dados-codificados" {
		t.Errorf("Load = %q", data)
	}

	// Save com o mesmo nome é upsert
	if err := s.Save("casinha", "versao-2", 6, 1500.0); err != nil {
		t.Fatalf("re-Save falhou: %v", err)
	}
	data, _ = s.Load("casinha")
	if data != "versao-2" {
		t.Errorf("Load após sobrescrever = %q", data)
	}
}

func TestLoadInexistente(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Load("fantasma"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load inexistente: err = %v, want ErrNotFound", err)
	}
}

func TestListEDelete(t *testing.T) {
	s := openTestStore(t)
	s.Save("a", "1", 1, 10)
	s.Save("b", "2", 2, 20)

	list, err := s.List()
	if err != nil || len(list) != 2 {
		t.Fatalf("List = %v, %v", list, err)
	}

	if err := s.Delete("a"); err != nil {
		t.Fatalf("Delete falhou: %v", err)
	}
	list, _ = s.List()
	if len(list) != 1 || list[0].Name != "b" {
		t.Errorf("List após Delete = %v", list)
	}

	// Delete de nome inexistente é no-op
	if err := s.Delete("fantasma"); err != nil {
		t.Errorf("Delete inexistente retornou erro: %v", err)
	}
}
