package dto

// ErrorResponse cuerpo de error del backend. Según la ruta llega como
// {"message": ...} o como {"error": ...}.
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Text devuelve el primer mensaje no vacío.
func (e ErrorResponse) Text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// SuccessResponse respuesta de los endpoints de espejo de token.
type SuccessResponse struct {
	Success bool `json:"success"`
}
