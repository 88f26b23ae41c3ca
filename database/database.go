// File: /database/database.go
package database

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"teamsync-api/models"
)

func Initialize(databaseURL, logLevel string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(parseLogLevel(logLevel)),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// Ping checks that the database answers within ctx.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func Migrate(db *gorm.DB, log *slog.Logger) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Empresa{},
		&models.Fornecedor{},
		&models.Atividade{},
		&models.Reserva{},
		&models.RFQ{},
		&models.Proposta{},
		&models.Pagamento{},
		&models.Mensagem{},
		&models.NotaEvento{},
		&models.Documento{},
		&models.Avaliacao{},
		&models.Itinerario{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	addCustomIndexes(db, log)
	return nil
}

// addCustomIndexes creates the composite indexes the listing queries use.
// An index that already exists only produces a warning.
func addCustomIndexes(db *gorm.DB, log *slog.Logger) {
	indexes := []struct {
		name string
		stmt string
	}{
		{"idx_atividades_estado_rating", "CREATE INDEX idx_atividades_estado_rating ON atividades(estado, rating_medio DESC)"},
		{"idx_reservas_empresa_data", "CREATE INDEX idx_reservas_empresa_data ON reservas(empresa_id, data DESC)"},
		{"idx_propostas_estado_expiracao", "CREATE INDEX idx_propostas_estado_expiracao ON propostas(estado, data_expiracao)"},
		{"idx_pagamentos_estado_atualizacao", "CREATE INDEX idx_pagamentos_estado_atualizacao ON pagamentos(estado, data_atualizacao)"},
		{"idx_mensagens_reserva_data", "CREATE INDEX idx_mensagens_reserva_data ON mensagens(reserva_id, data_envio)"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(indexTable(idx.name), idx.name) {
			continue
		}
		if err := db.Exec(idx.stmt).Error; err != nil {
			log.Warn("could not create index", "index", idx.name, "error", err)
		}
	}
}

func indexTable(name string) string {
	switch {
	case strings.HasPrefix(name, "idx_atividades"):
		return "atividades"
	case strings.HasPrefix(name, "idx_reservas"):
		return "reservas"
	case strings.HasPrefix(name, "idx_propostas"):
		return "propostas"
	case strings.HasPrefix(name, "idx_pagamentos"):
		return "pagamentos"
	default:
		return "mensagens"
	}
}

// SeedData creates the demo accounts and activities on an empty database.
func SeedData(ctx context.Context, db *gorm.DB, log *slog.Logger) error {
	var userCount int64
	if err := db.WithContext(ctx).Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		log.Info("database already has data, skipping seed")
		return nil
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		empresaUser, err := seedUser(tx, "TechCorp", "empresa@example.com", "empresa123", models.UserTipoEmpresa)
		if err != nil {
			return err
		}
		nFuncionarios := 50
		orcamento := 5000.0
		if err := tx.Create(&models.Empresa{
			ID:                    uuid.New().String(),
			UserID:                empresaUser.ID,
			Nome:                  "TechCorp",
			Setor:                 ptr("Tecnologia"),
			NFuncionarios:         &nFuncionarios,
			Localizacao:           ptr("Lisboa"),
			OrcamentoMedio:        &orcamento,
			PreferenciaAtividades: ptr("Atividades ao ar livre"),
		}).Error; err != nil {
			return err
		}

		fornecedorUser, err := seedUser(tx, "Adventure Tours", "fornecedor@example.com", "fornecedor123", models.UserTipoFornecedor)
		if err != nil {
			return err
		}
		fornecedor := models.Fornecedor{
			ID:          uuid.New().String(),
			UserID:      fornecedorUser.ID,
			Nome:        "Adventure Tours",
			Localizacao: ptr("Lisboa"),
			Descricao:   ptr("Fornecedor de atividades de aventura"),
			Contacto:    ptr("+351 123 456 789"),
		}
		if err := tx.Create(&fornecedor).Error; err != nil {
			return err
		}

		if _, err := seedUser(tx, "Admin TeamSync", "admin@example.com", "admin123", models.UserTipoAdmin); err != nil {
			return err
		}

		for _, a := range seedAtividades {
			atividade := models.Atividade{
				ID:             uuid.New().String(),
				Nome:           a.nome,
				Tipo:           a.tipo,
				Categoria:      ptr(a.categoria),
				PrecoPorPessoa: a.preco,
				CapacidadeMax:  a.capacidade,
				Localizacao:    a.localizacao,
				Descricao:      ptr(a.descricao),
				Imagens:        models.StringList{a.imagem},
				FornecedorID:   &fornecedor.ID,
				Clima:          ptr("outdoor"),
				DuracaoMinutos: &a.duracao,
			}
			atividade.SetEstado(models.AtividadeAprovada)
			if err := tx.Omit("Fornecedor").Create(&atividade).Error; err != nil {
				return err
			}
		}

		log.Info("database seeded", "users", 3, "atividades", len(seedAtividades))
		return nil
	})
}

func seedUser(tx *gorm.DB, nome, email, password string, tipo models.UserTipo) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		ID:       uuid.New().String(),
		Nome:     nome,
		Email:    email,
		Password: string(hash),
		Tipo:     tipo,
	}
	if err := tx.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

type seedAtividade struct {
	nome        string
	tipo        string
	categoria   string
	preco       float64
	capacidade  int
	localizacao string
	descricao   string
	imagem      string
	duracao     int
}

var seedAtividades = []seedAtividade{
	{"Canoagem no Tejo", "canoagem", "aventura", 25, 30, "Lisboa", "Passeio de canoagem pelo rio Tejo com guia experiente", "https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=800", 120},
	{"Passeio de Barco", "barco", "relax", 40, 20, "Cascais", "Passeio de barco pela costa de Cascais", "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800", 180},
	{"Paintball", "paintball", "team_building", 35, 40, "Sintra", "Jogo de paintball em campo ao ar livre", "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800", 90},
	{"Escalada", "escalada", "aventura", 30, 15, "Sintra", "Atividade de escalada em rocha com instrutores", "https://images.unsplash.com/photo-1544966503-7cc5315a0c8b?w=800", 150},
	{"Caminhada Guiada", "caminhada", "relax", 15, 25, "Sintra", "Caminhada pelas serras de Sintra com guia", "https://images.unsplash.com/photo-1551632811-561732d1e306?w=800", 240},
}

func ptr[T any](v T) *T {
	return &v
}
