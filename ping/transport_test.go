package ping

import (
	"errors"
	"fmt"
	"net"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listenUDP(t *testing.T) *net.UDPConn {
	t.Helper()

	socket, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)
	t.Cleanup(func() { _ = socket.Close() })

	return socket
}

// serveOnce reads one ping on server, lets stray answer it first and then answers with pong
// unless pong is nil.
func serveOnce(t *testing.T, server, stray *net.UDPConn, pong []byte) {
	t.Helper()

	go func() {
		packet := make([]byte, 64)
		_ = server.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, client, err := server.ReadFromUDP(packet)
		if err != nil {
			return
		}

		_, _ = stray.WriteToUDP([]byte("stray"), client)
		time.Sleep(50 * time.Millisecond)

		if pong != nil {
			_, _ = server.WriteToUDP(pong, client)
		}
	}()
}

func TestQuery_SkipsOtherSources(t *testing.T) {
	server := listenUDP(t)
	stray := listenUDP(t)
	serveOnce(t, server, stray, encodePong(t, 77, []byte(goldenData)))

	status, err := Query("127.0.0.1", server.LocalAddr().(*net.UDPAddr).Port, time.Second)
	require.NoError(t, err)

	assert.Equal(t, server.LocalAddr().String(), status.Server.RemoteHost)
	assert.Equal(t, int64(77), status.Server.GUID)
	assert.Equal(t, "MCPE", status.Server.Edition)
}

func TestQuery_OnlyOtherSourceAnswers(t *testing.T) {
	server := listenUDP(t)
	stray := listenUDP(t)
	serveOnce(t, server, stray, nil)

	_, err := Query("127.0.0.1", server.LocalAddr().(*net.UDPAddr).Port, 300*time.Millisecond)
	assert.ErrorIs(t, err, ErrReceiveTimeout)
}

func TestSamePeer(t *testing.T) {
	peer := &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 19132}

	assert.True(t, samePeer(&net.UDPAddr{IP: net.ParseIP("::ffff:127.0.0.1"), Port: 19132}, peer))
	assert.False(t, samePeer(&net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 19133}, peer))
	assert.False(t, samePeer(&net.UDPAddr{IP: net.IPv4(127, 0, 0, 2), Port: 19132}, peer))
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestIsTimeout(t *testing.T) {
	tests := map[string]struct {
		err  error
		want bool
	}{
		"deadline exceeded": {fmt.Errorf("write udp: %w", os.ErrDeadlineExceeded), true},
		"net timeout":       {&net.OpError{Op: "write", Net: "udp", Err: timeoutError{}}, true},
		"refused":           {&net.OpError{Op: "read", Net: "udp", Err: errors.New("connection refused")}, false},
		"closed":            {net.ErrClosed, false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, isTimeout(tt.err))
		})
	}
}
