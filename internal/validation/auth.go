package validation

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in *RegisterInput) Validate() error {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if in.Username == "" {
		return fail("Username tidak boleh kosong")
	}
	if len(in.Username) < 3 || len(in.Username) > 50 {
		return fail("Username harus memiliki panjang 3-50 karakter")
	}
	if in.Email == "" {
		return fail("Email wajib diisi")
	}
	if !emailPattern.MatchString(in.Email) {
		return fail("Format email tidak valid")
	}
	if in.Password == "" {
		return fail("Kata sandi wajib diisi")
	}
	if len(in.Password) < 8 {
		return fail("Kata sandi harus terdiri dari minimal 8 karakter")
	}
	return nil
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in *LoginInput) Validate() error {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if in.Email == "" {
		return fail("Email wajib diisi")
	}
	if !emailPattern.MatchString(in.Email) {
		return fail("Format email tidak valid")
	}
	if in.Password == "" {
		return fail("Kata sandi wajib diisi")
	}
	return nil
}
