package ping

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// exchange sends request to host:port over a freshly bound UDP socket and waits for exactly one
// datagram from it in return. It returns the datagram, truncated to bufferSize, and the address it
// came from. The socket is not connected, so datagrams from other addresses are skipped here until
// the read deadline passes.
func exchange(host string, port int, request []byte, opts Options, logger zerolog.Logger) ([]byte, *net.UDPAddr, error) {
	addr, err := net.ResolveUDPAddr("udp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrResolution, err)
	}

	socket, err := net.ListenUDP("udp", nil)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: bind: %w", ErrSocket, err)
	}
	defer func() { _ = socket.Close() }()

	logger.Debug().Str("local", socket.LocalAddr().String()).Str("peer", addr.String()).Msg("Socket bound")

	if err = socket.SetWriteDeadline(time.Now().Add(opts.WriteTimeout)); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrSocket, err)
	}

	if _, err = socket.WriteToUDP(request, addr); err != nil {
		if isTimeout(err) {
			return nil, nil, fmt.Errorf("%w after %s", ErrSendTimeout, opts.WriteTimeout)
		}
		return nil, nil, fmt.Errorf("%w: send: %w", ErrSocket, err)
	}

	logger.Debug().Int("bytes", len(request)).Msg("Ping sent")

	if err = socket.SetReadDeadline(time.Now().Add(opts.ReadTimeout)); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrSocket, err)
	}

	packet := make([]byte, opts.BufferSize)
	var (
		n   int
		src *net.UDPAddr
	)
	for {
		n, src, err = socket.ReadFromUDP(packet)
		if err != nil {
			if isTimeout(err) {
				return nil, nil, fmt.Errorf("%w after %s", ErrReceiveTimeout, opts.ReadTimeout)
			}
			return nil, nil, fmt.Errorf("%w: receive: %w", ErrSocket, err)
		}

		if samePeer(src, addr) {
			break
		}

		logger.Debug().Int("bytes", n).Str("source", src.String()).Msg("Ignoring datagram from another address")
	}

	logger.Debug().Int("bytes", n).Str("source", src.String()).Msg("Pong received")
	if n == len(packet) {
		logger.Debug().Int("buffer_size", len(packet)).Msg("Pong filled the receive buffer and may be truncated")
	}

	return packet[:n], src, nil
}

// samePeer reports whether src is the address the ping was sent to.
func samePeer(src, peer *net.UDPAddr) bool {
	return src.Port == peer.Port && src.IP.Equal(peer.IP)
}

func isTimeout(err error) bool {
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
