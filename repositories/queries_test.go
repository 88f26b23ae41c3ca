package repositories

import (
	"strings"
	"testing"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"teamsync-api/models"
)

// dryRunDB renders SQL without a server.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "user:password@tcp(127.0.0.1:3306)/teamsync?parseTime=True",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return db
}

func TestPropostasByArrival(t *testing.T) {
	db := dryRunDB(t)
	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var propostas []models.Proposta
		return tx.Where("rfq_id = ?", "rfq-1").Scopes(byArrival).Find(&propostas)
	})

	if !strings.Contains(sql, "ORDER BY data_criacao ASC,id ASC") {
		t.Fatalf("expected arrival order, got %s", sql)
	}
	if strings.Contains(sql, "preco_total") {
		t.Fatalf("expected price ranking to be left to the service, got %s", sql)
	}
}

func TestCloseOpenRFQ(t *testing.T) {
	db := dryRunDB(t)
	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return closeOpenRFQ(tx, "rfq-1")
	})

	if !strings.Contains(sql, "estado IN ('aberto','em_negociacao')") {
		t.Fatalf("expected a guard on open states, got %s", sql)
	}
	if !strings.Contains(sql, "`estado`='fechado'") {
		t.Fatalf("expected the RFQ to be closed, got %s", sql)
	}
}

func TestPagamentosStaleSince(t *testing.T) {
	db := dryRunDB(t)
	before := time.Date(2026, 6, 12, 10, 0, 0, 0, time.UTC)
	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&models.Pagamento{}).Scopes(staleSince(before)).Update("estado", models.PagamentoExpirado)
	})

	if !strings.Contains(sql, "estado IN ('pendente','processando')") {
		t.Fatalf("expected pendente and processando to expire, got %s", sql)
	}
}

func TestRatingMedio(t *testing.T) {
	tests := []struct {
		media    float64
		expected float64
	}{
		{4.666666, 4.67},
		{3, 3},
		{0, 0},
	}
	for _, tt := range tests {
		if got := ratingMedio(tt.media); got != tt.expected {
			t.Fatalf("ratingMedio(%v): expected %v, got %v", tt.media, tt.expected, got)
		}
	}
}
