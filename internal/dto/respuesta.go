package dto

// Respuesta is the uniform envelope every endpoint returns. Data is omitted
// on failures.
type Respuesta struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func OK(message string, data any) Respuesta {
	return Respuesta{Success: true, Message: message, Data: data}
}

func Fallo(message string) Respuesta {
	return Respuesta{Success: false, Message: message}
}
