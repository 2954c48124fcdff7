package protocol

import "time"

// This is the port a Bedrock server listens on for RakNet traffic unless configured otherwise.
const DEFAULT_PORT int = 19132

// This is the default deadline applied to both sending the ping and receiving the pong.
const DEFAULT_TIMEOUT time.Duration = 2 * time.Second

// This specifies the maximum MTU size that a Raknet Datagram cannot exceed. It is also the
// default size of the buffer a pong is received into; anything beyond it is truncated.
const MAX_MTU_SIZE int = 1500

// This is the smallest receive buffer a query may be configured with.
const MIN_BUFFER_SIZE int = 1024

// This is the size taken by a raknet message to represent the ID in bytes
const MESSAGE_ID_SIZE int = 1

// This is the size of the offline message magic sequence.
const MAGIC_SIZE int = 16

// This is the size of a timestamp or a GUID, both encoded as int64.
const INT64_SIZE int = 8

// This contains the size of an unconnected ping.
// Message ID (uint8)
// Send Timestamp (int64)
// Magic (16 bytes)
// Client GUID (int64)
const UNCONNECTED_PING_SIZE int = MESSAGE_ID_SIZE + INT64_SIZE + MAGIC_SIZE + INT64_SIZE

// This is the number of bytes a pong must carry for the server GUID to be readable.
// Message ID (uint8)
// Send Timestamp (int64)
// Server GUID (int64)
const UNCONNECTED_PONG_MIN_SIZE int = MESSAGE_ID_SIZE + INT64_SIZE + INT64_SIZE

// This is the offset at which the pong data starts.
// Message ID (uint8)
// Send Timestamp (int64)
// Server GUID (int64)
// Magic (16 bytes)
// Data Length (uint16)
const UNCONNECTED_PONG_HEADER_SIZE int = UNCONNECTED_PONG_MIN_SIZE + MAGIC_SIZE + 2

// This is the number of semicolon separated fields of the MCPE pong data that are decoded.
const PONG_DATA_FIELDS int = 9

// This is the magic sequence found in every offline (unconnected) raknet message. A peer ignores
// unconnected messages that do not carry it.
var MAGIC = [16]byte{0x00, 0xff, 0xff, 0x00, 0xfe, 0xfe, 0xfe, 0xfe, 0xfd, 0xfd, 0xfd, 0xfd, 0x12, 0x34, 0x56, 0x78}
