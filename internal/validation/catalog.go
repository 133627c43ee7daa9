package validation

import (
	"strings"

	"github.com/google/uuid"
)

// Pisos de preço herdados do catálogo original
const (
	MinServicePrice      = 20000
	MinServicePriceEntry = 10000
)

type ServiceInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

func (in *ServiceInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)

	if in.Name == "" {
		return fail("Nama tidak boleh kosong.")
	}
	if len(in.Name) < 3 {
		return fail("Nama minimal 3 karakter.")
	}
	if len(in.Name) > 50 {
		return fail("Nama maksimal 50 karakter.")
	}
	if !namePattern.MatchString(in.Name) {
		return fail("Nama hanya boleh berisi huruf dan spasi.")
	}
	if in.Description == "" {
		return fail("Deskripsi tidak boleh kosong.")
	}
	if len(in.Description) < 5 {
		return fail("Deskripsi minimal 5 karakter.")
	}
	if len(in.Description) > 255 {
		return fail("Deskripsi maksimal 255 karakter.")
	}
	if in.Price <= 0 {
		return fail("Harga harus lebih dari 0.")
	}
	if in.Price < MinServicePrice {
		return fail("Harga minimal adalah 20.000.")
	}
	return nil
}

type ServicePriceInput struct {
	ServiceID string `json:"serviceId"`
	CarType   string `json:"car_type"`
	Price     int    `json:"price"`
}

func (in *ServicePriceInput) Validate() error {
	in.CarType = strings.TrimSpace(in.CarType)

	if in.ServiceID == "" {
		return fail("Service ID tidak boleh kosong.")
	}
	if _, err := uuid.Parse(in.ServiceID); err != nil {
		return fail("Service ID harus berupa UUID.")
	}
	if in.CarType == "" {
		return fail("Tipe kendaraan tidak boleh kosong.")
	}
	if len(in.CarType) < 2 {
		return fail("Tipe kendaraan minimal 2 karakter.")
	}
	if len(in.CarType) > 50 {
		return fail("Tipe kendaraan maksimal 50 karakter.")
	}
	if in.Price < MinServicePriceEntry {
		return fail("Harga minimal adalah 10000.")
	}
	return nil
}
