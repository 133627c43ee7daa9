package validation

import "encoding/json"

// CoerceBool aceita um boolean JSON ou as strings "true"/"false", forma em
// que clientes de formulário enviam o campo isPaid.
func CoerceBool(raw json.RawMessage) (bool, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return false, fail("isPaid diperlukan")
	}

	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		switch s {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}

	return false, fail("isPaid harus berupa nilai boolean")
}
