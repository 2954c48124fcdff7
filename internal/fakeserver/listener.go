// Package fakeserver is a minimal RakNet server that only answers offline pings. It stands in for
// a Bedrock server in tests.
package fakeserver

import (
	"errors"
	"math/rand"
	"net"
	"sync"

	"github.com/gamevidea/binary/buffer"
	"github.com/gamevidea/bedrockping/internal/message"
	"github.com/gamevidea/bedrockping/internal/protocol"
	"github.com/rs/zerolog/log"
)

// DefaultData is the pong data a Bedrock dedicated server sends out of the box.
const DefaultData = "MCPE;Dedicated Server;390;1.14.60;0;10;13253860892328930865;Bedrock level;Survival;1;19132;19133;"

// ReplyFunc builds the raw datagram sent back for a ping. Returning nil sends nothing.
type ReplyFunc func(ping message.UnconnectedPing, guid int64) []byte

// bufferPool is used for minimising the number of allocations as it creates a pool of
// pre-generated buffers which can be taken and given back to allow sharing of same memory.
var bufferPool = sync.Pool{
	New: func() any {
		return buffer.New(protocol.MAX_MTU_SIZE)
	},
}

// Listener answers unconnected pings received on a UDP socket.
type Listener struct {
	addr   *net.UDPAddr
	socket *net.UDPConn
	guid   int64
	reply  ReplyFunc

	mu    sync.Mutex
	pings []message.UnconnectedPing

	done chan struct{}
}

// Listen announces on the local network address and answers every unconnected ping with an
// unconnected pong carrying data.
func Listen(addr string, data string) (*Listener, error) {
	return ListenFunc(addr, PongReply([]byte(data)))
}

// ListenFunc announces on the local network address and answers every unconnected ping with the
// datagram built by reply.
func ListenFunc(addr string, reply ReplyFunc) (*Listener, error) {
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, err
	}

	socket, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		return nil, err
	}

	listener := &Listener{
		addr:   socket.LocalAddr().(*net.UDPAddr),
		socket: socket,
		guid:   rand.Int63(),
		reply:  reply,
		done:   make(chan struct{}),
	}

	go listener.udpHandler()

	return listener, nil
}

// PongReply returns a ReplyFunc that answers with a well formed unconnected pong.
func PongReply(data []byte) ReplyFunc {
	return func(ping message.UnconnectedPing, guid int64) []byte {
		buf := bufferPool.Get().(*buffer.Buffer)
		defer bufferPool.Put(buf)
		buf.Reset()

		resp := message.UnconnectedPong{
			SendTimestamp: ping.SendTimestamp,
			ServerGUID:    guid,
			Data:          data,
		}

		if err := resp.Write(buf); err != nil {
			log.Error().Err(err).Msg("Failed to encode unconnected pong")
			return nil
		}

		return append([]byte(nil), buf.Bytes()...)
	}
}

// Returns the GUID of the listener.
func (l *Listener) Guid() int64 {
	return l.guid
}

// Returns the local address that the listener is bound to.
func (l *Listener) LocalAddr() *net.UDPAddr {
	return l.addr
}

// Pings returns the unconnected pings received so far.
func (l *Listener) Pings() []message.UnconnectedPing {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]message.UnconnectedPing(nil), l.pings...)
}

// Close stops the listener and waits for its handler to return.
func (l *Listener) Close() error {
	err := l.socket.Close()
	<-l.done
	return err
}

// Reads datagrams from the socket until it is closed and answers the unconnected pings among them.
func (l *Listener) udpHandler() {
	defer close(l.done)

	packet := make([]byte, protocol.MAX_MTU_SIZE)
	for {
		n, addr, err := l.socket.ReadFromUDP(packet)
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			log.Debug().Err(err).Msg("Socket read failed")
			continue
		}

		if err := l.handle(buffer.From(packet[:n]), addr); err != nil {
			log.Debug().Err(err).Str("addr", addr.String()).Msg("Failed to handle datagram")
		}
	}
}

// Handle is called when an incoming datagram is received on the socket. Anything but an unconnected
// ping is ignored.
func (l *Listener) handle(buf *buffer.Buffer, addr *net.UDPAddr) error {
	id, err := buf.ReadUint8()
	if err != nil {
		return err
	}

	switch id {
	case message.IDUnconnectedPing, message.IDUnconnectedPingOpenConnections:
		return l.handleUnconnectedPing(buf, addr)
	default:
		log.Debug().Uint8("id", id).Msg("Unhandled unconnected message")
		return nil
	}
}

// Handles an incoming unconnected ping message
func (l *Listener) handleUnconnectedPing(buf *buffer.Buffer, addr *net.UDPAddr) (err error) {
	msg := message.UnconnectedPing{}
	if err = msg.Read(buf); err != nil {
		return
	}

	l.mu.Lock()
	l.pings = append(l.pings, msg)
	l.mu.Unlock()

	resp := l.reply(msg, l.guid)
	if resp == nil {
		return nil
	}

	_, err = l.socket.WriteToUDP(resp, addr)
	return
}
