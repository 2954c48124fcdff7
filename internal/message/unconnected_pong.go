package message

import (
	"github.com/gamevidea/binary/buffer"
	"github.com/gamevidea/binary/byteorder"
	"github.com/gamevidea/bedrockping/internal/protocol"
)

// UnconnectedPong is sent by the server in response to the UnconnectedPing message. It sends the server's guid
// and the pong data that contains various information such as MOTD, player count, max player count, server version, etc.
type UnconnectedPong struct {
	SendTimestamp int64
	ServerGUID    int64
	Data          []byte
}

// Reads unconnected pong from the underlying buffer and returns an error if the timestamp or the
// server guid cannot be read. The message ID is expected to be consumed already.
//
// The data is everything after the magic and the length prefix. The length prefix itself is not
// trusted since servers are known to get it wrong. A pong that ends before the data starts has
// empty data.
func (pk *UnconnectedPong) Read(buf *buffer.Buffer) (err error) {
	pk.Data = nil

	if pk.SendTimestamp, err = buf.ReadInt64(byteorder.BigEndian); err != nil {
		return
	}

	if pk.ServerGUID, err = buf.ReadInt64(byteorder.BigEndian); err != nil {
		return
	}

	if buf.Remaining() <= protocol.MAGIC_SIZE+2 {
		return nil
	}

	if err = buf.Shift(protocol.MAGIC_SIZE + 2); err != nil {
		return
	}

	pk.Data = make([]byte, buf.Remaining())
	if err = buf.Read(pk.Data); err != nil {
		return
	}

	return
}

// Writes an Unconnected Pong message to the underlying buffer and returns an error if the operation
// failed.
func (pk *UnconnectedPong) Write(buf *buffer.Buffer) (err error) {
	if err = buf.WriteUint8(IDUnconnectedPong); err != nil {
		return
	}

	if err = buf.WriteInt64(pk.SendTimestamp, byteorder.BigEndian); err != nil {
		return
	}

	if err = buf.WriteInt64(pk.ServerGUID, byteorder.BigEndian); err != nil {
		return
	}

	if err = buf.WriteMagic(); err != nil {
		return
	}

	if err = buf.WriteUint16(uint16(len(pk.Data)), byteorder.BigEndian); err != nil {
		return
	}

	if err = buf.Write(pk.Data); err != nil {
		return
	}

	return
}
