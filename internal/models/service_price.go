package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServicePrice struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	ServiceID uuid.UUID `gorm:"type:uuid;not null" json:"service_id"`
	Service   *Service  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service,omitempty"`

	CarType string `gorm:"column:car_type;size:50;not null" json:"car_type"`
	Price   int    `gorm:"not null" json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (sp *ServicePrice) BeforeCreate(tx *gorm.DB) error {
	if sp.ID == uuid.Nil {
		sp.ID = uuid.New()
	}
	return nil
}
