package validation

import "strings"

type TestimonialInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (in *TestimonialInput) Validate() error {
	in.Comment = strings.TrimSpace(in.Comment)

	if in.Rating == 0 {
		return fail("Rating wajib diisi")
	}
	if in.Rating < 1 {
		return fail("Rating minimal adalah 1")
	}
	if in.Rating > 5 {
		return fail("Rating maksimal adalah 5")
	}
	if in.Comment == "" {
		return fail("Komentar wajib diisi")
	}
	if len(in.Comment) < 3 {
		return fail("Komentar minimal harus memiliki 3 karakter")
	}
	return nil
}
