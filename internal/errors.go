package internal

// ConnectionError reports a failed connect to Addr. It is returned as is,
// nothing is retried.
type ConnectionError struct {
	Addr string
	Err  error
}

func (e *ConnectionError) Error() string {
	return "rawhttp: connect " + e.Addr + ": " + e.Err.Error()
}

func (e *ConnectionError) Unwrap() error { return e.Err }
