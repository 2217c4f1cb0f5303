package devcon

import "io"

// ResponseProvider writes terminal responses (DA1/DA2/DA3/DECID identification
// strings, the configured answerback, status reports) back to the byte
// source. Typically an io.Writer connected to a PTY's input side.
type ResponseProvider = io.Writer

// NoopResponse discards all response data (useful when responses are not needed).
type NoopResponse struct{}

func (NoopResponse) Write(p []byte) (n int, err error) {
	return len(p), nil
}

// BellProvider handles bell events triggered by BEL (0x07).
type BellProvider interface {
	// Ring is called when a bell character is received.
	Ring()
}

// NoopBell ignores all bell events.
type NoopBell struct{}

func (NoopBell) Ring() {}

// Ensure implementations satisfy their interfaces.
var (
	_ ResponseProvider = NoopResponse{}
	_ BellProvider     = (*NoopBell)(nil)
)
