package validation

import (
	"regexp"
	"strings"
)

var (
	namePattern  = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	phonePattern = regexp.MustCompile(`^(?:\+62|62|0)[0-9]{9,13}$`)
)

type ProfileInput struct {
	Name        string `form:"name" json:"name"`
	Address     string `form:"address" json:"address"`
	PhoneNumber string `form:"phoneNumber" json:"phoneNumber"`
}

func (in *ProfileInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Address = strings.TrimSpace(in.Address)
	in.PhoneNumber = strings.TrimSpace(in.PhoneNumber)

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
		return fail("Nama hanya boleh mengandung huruf dan spasi.")
	}
	if in.Address == "" {
		return fail("Alamat tidak boleh kosong.")
	}
	if len(in.Address) < 5 {
		return fail("Alamat minimal 5 karakter.")
	}
	if len(in.Address) > 100 {
		return fail("Alamat maksimal 100 karakter.")
	}
	if in.PhoneNumber == "" {
		return fail("Nomor telepon tidak boleh kosong.")
	}
	if !phonePattern.MatchString(in.PhoneNumber) {
		return fail("Nomor telepon harus diawali dengan +62, 62, atau 0 dan memiliki panjang 10-15 digit.")
	}
	return nil
}
