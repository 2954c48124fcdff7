package message

import "github.com/gamevidea/binary/buffer"

// ID represents a raknet message ID. It is a unique identifier for each RakNet
// message.
type ID = uint8

const (
	IDUnconnectedPing                ID = 0x01
	IDUnconnectedPingOpenConnections ID = 0x02
	IDUnconnectedPong                ID = 0x1c
)

// Message represents an offline raknet message exchanged while querying a server's status.
type Message interface {
	Read(buf *buffer.Buffer) (err error)
	Write(buf *buffer.Buffer) (err error)
}
