package session

import (
	"crypto/tls"
	"errors"
	"net"
	"syscall"
)

// ErrorKind separates failures of the underlying connection from failures of
// the protocol conversation on top of it.
type ErrorKind int

const (
	// KindProtocol is an error in the MQTT conversation itself
	KindProtocol ErrorKind = iota
	// KindTransport is a TCP or secure-transport failure
	KindTransport
)

// String returns a diagnostic name for the kind
func (k ErrorKind) String() string {
	if k == KindTransport {
		return "transport"
	}
	return "protocol"
}

// classify builds an ErrorEvent for err, deciding transport vs protocol by
// unwrapping for network and TLS error types.
func classify(stage string, err error) ErrorEvent {
	kind := KindProtocol
	if isTransportError(err) {
		kind = KindTransport
	}
	return ErrorEvent{Stage: stage, Kind: kind, Err: err}
}

func isTransportError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return true
	}
	var recErr tls.RecordHeaderError
	if errors.As(err, &recErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// socketErrno digs the socket errno out of a transport error.
// Returns 0 when the chain carries none.
func socketErrno(err error) syscall.Errno {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno
	}
	return 0
}

// tlsError returns the secure-transport error in the chain, or nil
func tlsError(err error) error {
	var recErr tls.RecordHeaderError
	if errors.As(err, &recErr) {
		return recErr
	}
	return nil
}
