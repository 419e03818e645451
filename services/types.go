package services

// ServiceError carries an HTTP status alongside a client-safe message.
// Controllers map it straight onto the response; internal error detail stays
// in the logs.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return e.Message
}
