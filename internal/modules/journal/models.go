package journal

import "time"

// Transaction is one committed sale as recorded on the device. Degraded
// sales (backend down at checkout time) are stored with Authoritative=false
// and an empty TransactionRef so they can be reconciled later.
type Transaction struct {
	ID             string `gorm:"primaryKey;size:36"`
	TransactionRef string `gorm:"size:64"` // upstream transaction id, may be empty
	TotalAmount    int
	Subtotal       int
	Authoritative  bool
	StoreCode      string `gorm:"size:16"`
	POSID          string `gorm:"size:16"`
	CashierCode    string `gorm:"size:16"`
	CreatedAt      time.Time

	Lines []TransactionLine `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE"`
}

type TransactionLine struct {
	ID            uint   `gorm:"primaryKey;autoIncrement"`
	TransactionID string `gorm:"index;size:36"`
	Position      int
	ProductCode   string `gorm:"size:32"`
	ProductName   string `gorm:"size:128"`
	UnitPrice     int
}
