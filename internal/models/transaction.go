package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Transaction struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	// uniqueIndex garante no máximo uma transação por booking
	BookingID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"booking_id"`
	Booking   *Booking  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"booking,omitempty"`

	TotalAmount  float64 `gorm:"not null" json:"totalAmount"`
	PaymentProof string  `gorm:"size:255" json:"paymentProof"`
	IsPaid       bool    `gorm:"not null;default:false" json:"isPaid"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
