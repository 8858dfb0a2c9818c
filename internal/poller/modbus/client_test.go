// internal/poller/modbus/client_test.go
package modbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnpackRegisters_BigEndian(t *testing.T) {
	got := unpackRegisters([]byte{0x00, 0xEB, 0x04, 0xE2, 0x05})
	assert.Equal(t, []uint16{235, 1250}, got)
}

func TestUnpackBits_LSBFirst(t *testing.T) {
	// 0b01010101, 0b00000001 -> T F T F T F T F T
	got := unpackBits([]byte{0x55, 0x01}, 10)
	assert.Equal(t, []bool{true, false, true, false, true, false, true, false, true, false}, got)
}

func TestUnpackBits_ShortPayloadStaysShort(t *testing.T) {
	got := unpackBits([]byte{0x03}, 10)
	assert.Len(t, got, 8)
	assert.True(t, got[0])
	assert.True(t, got[1])
	assert.False(t, got[2])
}

func TestNew_RequiresEndpoint(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestClose_Nil(t *testing.T) {
	var c *Client
	assert.NoError(t, c.Close())
}
