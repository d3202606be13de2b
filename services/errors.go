package services

// ServiceError carries an HTTP-equivalent status for the controllers.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func errBadRequest(msg string) *ServiceError {
	return &ServiceError{StatusCode: 400, Message: msg}
}

func errNotFound(msg string) *ServiceError {
	return &ServiceError{StatusCode: 404, Message: msg}
}

func errInternal(msg string) *ServiceError {
	return &ServiceError{StatusCode: 500, Message: msg}
}
