package validation

// Regras de entrada por recurso. Cada Validate devolve apenas a primeira
// violação encontrada, na ordem em que os campos são declarados.

type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func fail(message string) error {
	return &Error{Message: message}
}
