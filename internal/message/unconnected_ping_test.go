package message

import (
	"encoding/binary"
	"testing"

	"github.com/gamevidea/binary/buffer"
	"github.com/gamevidea/bedrockping/internal/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnconnectedPing_Write(t *testing.T) {
	pk := UnconnectedPing{SendTimestamp: 1700000000123, ClientGUID: -42}

	buf := buffer.New(protocol.UNCONNECTED_PING_SIZE)
	require.NoError(t, pk.Write(buf))

	b := buf.Bytes()
	require.Len(t, b, protocol.UNCONNECTED_PING_SIZE)
	assert.Equal(t, IDUnconnectedPing, b[0])
	assert.Equal(t, uint64(1700000000123), binary.BigEndian.Uint64(b[1:9]))
	assert.Equal(t, protocol.MAGIC[:], b[9:25])
	assert.Equal(t, int64(-42), int64(binary.BigEndian.Uint64(b[25:33])))
}

func TestUnconnectedPing_Read(t *testing.T) {
	pk := UnconnectedPing{SendTimestamp: 99, ClientGUID: 7}

	buf := buffer.New(protocol.UNCONNECTED_PING_SIZE)
	require.NoError(t, pk.Write(buf))

	in := buffer.From(buf.Bytes())
	id, err := in.ReadUint8()
	require.NoError(t, err)
	require.Equal(t, IDUnconnectedPing, id)

	var got UnconnectedPing
	require.NoError(t, got.Read(in))
	assert.Equal(t, pk, got)
}
