package message

import (
	"encoding/binary"
	"testing"

	"github.com/gamevidea/binary/buffer"
	"github.com/gamevidea/bedrockping/internal/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pongData = "MCPE;Dedicated Server;390;1.14.60;0;10;13253860892328930865;Bedrock level;Survival;1;19132;19133;"

func TestUnconnectedPong_Write(t *testing.T) {
	pk := UnconnectedPong{SendTimestamp: 5, ServerGUID: 1234567890, Data: []byte(pongData)}

	buf := buffer.New(protocol.MAX_MTU_SIZE)
	require.NoError(t, pk.Write(buf))

	b := buf.Bytes()
	require.Len(t, b, protocol.UNCONNECTED_PONG_HEADER_SIZE+len(pongData))
	assert.Equal(t, IDUnconnectedPong, b[0])
	assert.Equal(t, int64(1234567890), int64(binary.BigEndian.Uint64(b[9:17])))
	assert.Equal(t, protocol.MAGIC[:], b[17:33])
	assert.Equal(t, uint16(len(pongData)), binary.BigEndian.Uint16(b[33:35]))
	assert.Equal(t, pongData, string(b[protocol.UNCONNECTED_PONG_HEADER_SIZE:]))
}

func TestUnconnectedPong_Read(t *testing.T) {
	pk := UnconnectedPong{SendTimestamp: 5, ServerGUID: -1, Data: []byte(pongData)}

	buf := buffer.New(protocol.MAX_MTU_SIZE)
	require.NoError(t, pk.Write(buf))

	in := buffer.From(buf.Bytes())
	_, err := in.ReadUint8()
	require.NoError(t, err)

	var got UnconnectedPong
	require.NoError(t, got.Read(in))
	assert.Equal(t, pk, got)
}

func TestUnconnectedPong_ReadWithoutData(t *testing.T) {
	b := make([]byte, protocol.UNCONNECTED_PONG_HEADER_SIZE-1)
	binary.BigEndian.PutUint64(b[8:16], 77)

	var got UnconnectedPong
	require.NoError(t, got.Read(buffer.From(b)))
	assert.Equal(t, int64(77), got.ServerGUID)
	assert.Empty(t, got.Data)
}

func TestUnconnectedPong_ReadShort(t *testing.T) {
	var got UnconnectedPong
	assert.Error(t, got.Read(buffer.From(make([]byte, 12))))
}
