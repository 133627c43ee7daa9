package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User   *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty"`

	ServicePriceID uuid.UUID     `gorm:"type:uuid;not null" json:"service_price_id"`
	ServicePrice   *ServicePrice `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service_price,omitempty"`

	BookingDate  time.Time `gorm:"type:date;not null" json:"bookingDate"`
	BookingTime  string    `gorm:"size:5;not null" json:"bookingTime"`
	LicensePlate string    `gorm:"size:10;not null;index" json:"licensePlate"`

	Status string `gorm:"size:20;not null;default:'pending'" json:"status"`

	Transaction *Transaction `gorm:"constraint:OnDelete:CASCADE;" json:"transaction,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
