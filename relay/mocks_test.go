package relay

import "errors"

// fakeConn is an in-memory Conn that records everything sent to it.
type fakeConn struct {
	id     string
	closed bool
	sent   []interface{}
}

func newFakeConn(id string) *fakeConn {
	return &fakeConn{id: id}
}

func (c *fakeConn) ID() string { return c.id }

func (c *fakeConn) Send(v interface{}) error {
	if c.closed {
		return errors.New("send on closed connection")
	}
	c.sent = append(c.sent, v)
	return nil
}

func (c *fakeConn) IsOpen() bool { return !c.closed }

// messageType maps a recorded message back to its wire type.
func messageType(v interface{}) string {
	switch m := v.(type) {
	case GamesMessage:
		return m.Type
	case CreatedMessage:
		return m.Type
	case JoinRequestMessage:
		return m.Type
	case JoinAcceptedMessage:
		return m.Type
	case RejectedMessage:
		return m.Type
	case MoveMessage:
		return m.Type
	case ErrorMessage:
		return m.Type
	default:
		return ""
	}
}

// received returns every recorded message of the given wire type.
func (c *fakeConn) received(msgType string) []interface{} {
	var out []interface{}
	for _, v := range c.sent {
		if messageType(v) == msgType {
			out = append(out, v)
		}
	}
	return out
}

// reset clears the recorded messages.
func (c *fakeConn) reset() {
	c.sent = nil
}
