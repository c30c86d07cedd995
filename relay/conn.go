package relay

// Conn is the capability the relay needs from a transport connection. The
// transport owns the connection lifecycle; the relay holds only references.
type Conn interface {
	// ID returns the process-unique identifier assigned at connect time.
	ID() string

	// Send marshals v and queues it for delivery. Delivery is best-effort;
	// an error means the message was dropped, never that it will be
	// retried.
	Send(v interface{}) error

	// IsOpen reports whether the connection can still accept sends.
	IsOpen() bool
}
