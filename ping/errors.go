package ping

import "errors"

// This error is returned when the host and port cannot be resolved to a UDP address.
var ErrResolution = errors.New("could not resolve server address")

// This error is returned when the ping could not be sent before the write deadline.
var ErrSendTimeout = errors.New("timed out sending unconnected ping")

// This error is returned when no pong arrived before the read deadline.
var ErrReceiveTimeout = errors.New("timed out waiting for unconnected pong")

// This error is returned when the pong is too short to carry the server guid.
var ErrTooShort = errors.New("unconnected pong is too short")

// This error is returned when the pong data is not valid UTF-8.
var ErrEncoding = errors.New("unconnected pong data is not valid utf-8")

// This error is returned when the system clock cannot be expressed as milliseconds since the unix epoch.
var ErrClock = errors.New("system time cannot be encoded as a ping timestamp")

// This error is returned when the local UDP socket cannot be bound, or a send or receive fails for a
// reason other than a timeout.
var ErrSocket = errors.New("udp socket operation failed")
