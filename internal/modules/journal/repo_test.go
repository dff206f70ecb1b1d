package journal

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rienbien8/pos-frontend/internal/modules/cart"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestRecordAndRecent(t *testing.T) {
	repo := NewRepo(setupTestDB(t))
	ctx := context.Background()

	tx, err := repo.Record(ctx, Entry{
		TransactionRef: "tx-123",
		TotalAmount:    450,
		Subtotal:       450,
		Authoritative:  true,
		StoreCode:      "30",
		POSID:          "90",
		Items: []cart.LineItem{
			{Code: "001", Name: "Tea", UnitPrice: 150},
			{Code: "002", Name: "Bread", UnitPrice: 300},
		},
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if tx.ID == "" {
		t.Fatal("expected generated id")
	}

	got, err := repo.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(got))
	}
	if got[0].TransactionRef != "tx-123" || got[0].TotalAmount != 450 {
		t.Fatalf("unexpected transaction: %+v", got[0])
	}
	if len(got[0].Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(got[0].Lines))
	}
	if got[0].Lines[0].ProductCode != "001" || got[0].Lines[1].ProductCode != "002" {
		t.Fatalf("line order not preserved: %+v", got[0].Lines)
	}
}

func TestUnreconciledListsDegradedOnly(t *testing.T) {
	repo := NewRepo(setupTestDB(t))
	ctx := context.Background()

	if _, err := repo.Record(ctx, Entry{TransactionRef: "tx-1", TotalAmount: 100, Subtotal: 100, Authoritative: true}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := repo.Record(ctx, Entry{TotalAmount: 450, Subtotal: 450, Authoritative: false}); err != nil {
		t.Fatalf("record: %v", err)
	}

	got, err := repo.Unreconciled(ctx)
	if err != nil {
		t.Fatalf("unreconciled: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 degraded transaction, got %d", len(got))
	}
	if got[0].Authoritative || got[0].TotalAmount != 450 {
		t.Fatalf("unexpected transaction: %+v", got[0])
	}
}
