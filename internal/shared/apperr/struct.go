package apperr

type Kind string

type AppError struct {
	Kind       Kind
	PublicMsg  string            // message safe to show on the operator screen
	Fields     map[string]string // field-level validation errors (optional)
	StatusCode int               // upstream HTTP status (BadGateway only)
	Err        error             // internal error (for logs)
}
