package dto

// Envelope wraps every response body.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func OK(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

func Fail(message, detail string) Envelope {
	return Envelope{Success: false, Message: message, Error: detail}
}

// NotFoundList is the 404 body of a filtered list that matched nothing.
func NotFoundList(message string) Envelope {
	return Envelope{Success: false, Message: message, Data: []any{}}
}
