package live

import "fmt"

// ValidationError reports an out-of-range input. It is returned before any
// bytes reach the network.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ConnectError reports a failed connection attempt. By the time a caller
// sees one, any partially established transport state has been torn down.
type ConnectError struct {
	Err error
}

func (e *ConnectError) Error() string { return "connecting to Live: " + e.Err.Error() }

func (e *ConnectError) Unwrap() error { return e.Err }

// MalformedReplyError reports a reply whose shape does not match the
// operation, such as a count-prefixed list shorter than its count claims.
type MalformedReplyError struct {
	Address string
	Reason  string
}

func (e *MalformedReplyError) Error() string {
	return fmt.Sprintf("malformed reply to %s: %s", e.Address, e.Reason)
}
