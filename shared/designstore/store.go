package designstore

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DesignModel representa o esquema do banco para um design salvo.
// Data carrega o snapshot já codificado (texto comprimido), exatamente o
// mesmo formato que circula pela área de transferência e pelo servidor.
type DesignModel struct {
	Name       string `gorm:"primaryKey"`
	Data       string
	BlockCount int
	TotalCost  float64
	UpdatedAt  time.Time
}

// Store é a biblioteca de designs salvos em SQLite.
type Store struct {
	db *gorm.DB
}

// ErrNotFound indica que nenhum design salvo tem o nome pedido.
var ErrNotFound = errors.New("design não encontrado")

// Open abre (ou cria) o banco de dados de designs e roda migrações.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	// Logger silencioso em produção, como no resto do sistema
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no SQLite: %w", err)
	}

	if err := db.AutoMigrate(&DesignModel{}); err != nil {
		return nil, fmt.Errorf("falha na migração do banco: %w", err)
	}

	log.Printf("[Designs] Banco de designs aberto: %s", path)
	return &Store{db: db}, nil
}

// Save grava (ou sobrescreve) um design pelo nome.
func (s *Store) Save(name, data string, blockCount int, totalCost float64) error {
	model := DesignModel{
		Name:       name,
		Data:       data,
		BlockCount: blockCount,
		TotalCost:  totalCost,
	}
	if err := s.db.Save(&model).Error; err != nil {
		return fmt.Errorf("falha ao salvar design %q: %w", name, err)
	}
	log.Printf("[Designs] Design %q salvo (%d blocos)", name, blockCount)
	return nil
}

// Load retorna o snapshot codificado de um design salvo.
func (s *Store) Load(name string) (string, error) {
	var model DesignModel
	err := s.db.First(&model, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("falha ao carregar design %q: %w", name, err)
	}
	return model.Data, nil
}

// List retorna os metadados de todos os designs salvos, mais recentes primeiro.
func (s *Store) List() ([]DesignModel, error) {
	var models []DesignModel
	if err := s.db.Order("updated_at desc").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("falha ao listar designs: %w", err)
	}
	return models, nil
}

// Delete remove um design salvo. Remover um nome inexistente é no-op.
func (s *Store) Delete(name string) error {
	if err := s.db.Delete(&DesignModel{}, "name = ?", name).Error; err != nil {
		return fmt.Errorf("falha ao remover design %q: %w", name, err)
	}
	return nil
}

// Close fecha a conexão com o banco.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
