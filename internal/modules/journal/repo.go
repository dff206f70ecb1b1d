package journal

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rienbien8/pos-frontend/internal/modules/cart"
)

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Transaction{}, &TransactionLine{})
}

// Entry is the journal's own view of a resolved purchase.
type Entry struct {
	TransactionRef string
	TotalAmount    int
	Subtotal       int
	Authoritative  bool
	StoreCode      string
	POSID          string
	CashierCode    string
	Items          []cart.LineItem
}

// Record persists one resolved purchase with its line items.
func (r *Repo) Record(ctx context.Context, e Entry) (Transaction, error) {
	tx := Transaction{
		ID:             uuid.NewString(),
		TransactionRef: e.TransactionRef,
		TotalAmount:    e.TotalAmount,
		Subtotal:       e.Subtotal,
		Authoritative:  e.Authoritative,
		StoreCode:      e.StoreCode,
		POSID:          e.POSID,
		CashierCode:    e.CashierCode,
		CreatedAt:      time.Now(),
	}
	for i, it := range e.Items {
		tx.Lines = append(tx.Lines, TransactionLine{
			Position:    i,
			ProductCode: it.Code,
			ProductName: it.Name,
			UnitPrice:   it.UnitPrice,
		})
	}

	if err := r.db.WithContext(ctx).Create(&tx).Error; err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// Recent returns the newest transactions first, lines included.
func (r *Repo) Recent(ctx context.Context, limit int) ([]Transaction, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []Transaction
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// Unreconciled lists degraded sales that never got an upstream transaction id.
func (r *Repo) Unreconciled(ctx context.Context) ([]Transaction, error) {
	var out []Transaction
	err := r.db.WithContext(ctx).
		Where("authoritative = ?", false).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}
