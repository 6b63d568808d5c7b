package models

import "time"

// PaymentRecord tracks a payment-intent created against the payment
// processor. ProviderRef is the processor-side intent id; the client
// secret is returned to the caller and never persisted.
type PaymentRecord struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Email       string    `json:"email" gorm:"type:varchar(255); index"`
	Amount      int64     `json:"amount"` // minor units
	Currency    string    `json:"currency" gorm:"type:varchar(8)"`
	ProviderRef string    `json:"provider_ref" gorm:"type:varchar(128)"`
	CreatedAt   time.Time `json:"created_at"`
}
