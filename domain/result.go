package domain

// Result is the envelope every public operation answers with. Exactly one of
// Data and Message is populated, selected by Success.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func Ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: &data}
}

func Fail[T any](message string) Result[T] {
	if message == "" {
		message = MessageFailedProcessRequest
	}
	return Result[T]{Success: false, Message: message}
}

// Envelope converts a service return pair into a Result. Errors without a
// safe message collapse to fallback.
func Envelope[T any](data T, err error, fallback string) Result[T] {
	if err == nil {
		return Ok(data)
	}
	if message, ok := SafeMessage(err); ok {
		return Fail[T](message)
	}
	return Fail[T](fallback)
}
