package handlers

import "github.com/google/uuid"

// uuidMustParse é usado apenas após a validação garantir o formato.
func uuidMustParse(s string) uuid.UUID {
	id, _ := uuid.Parse(s)
	return id
}
