// Package testutil provides a scripted stand-in for the KGSL property
// connection so query behavior can be tested without hardware.
package testutil

import (
	"encoding/binary"

	"golang.org/x/sys/unix"
)

// Call identifies one attempted GETPROPERTY request
type Call struct {
	Code     uint32
	PropType uint32
}

// FakeConn implements the property connection against scripted responses.
// Requests with no scripted response are rejected with ENOTTY, the way a
// driver rejects an unknown request code. The attempt sequence is
// recorded so tests can assert probing order.
type FakeConn struct {
	responses map[Call]response
	Calls     []Call
}

type response struct {
	payload []byte
	errno   unix.Errno
}

// NewFakeConn creates an empty fake connection
func NewFakeConn() *FakeConn {
	return &FakeConn{responses: make(map[Call]response)}
}

// Script makes the given code/property pair succeed and write payload
// into the caller's buffer. An empty payload simulates a driver that
// accepts the call but returns no data.
func (c *FakeConn) Script(code, propType uint32, payload []byte) {
	c.responses[Call{code, propType}] = response{payload: payload}
}

// ScriptErrno makes the given code/property pair fail with errno
func (c *FakeConn) ScriptErrno(code, propType uint32, errno unix.Errno) {
	c.responses[Call{code, propType}] = response{errno: errno}
}

// GetProperty implements kgsl.PropertyConn
func (c *FakeConn) GetProperty(code, propType uint32, buf []byte) error {
	c.Calls = append(c.Calls, Call{code, propType})

	r, ok := c.responses[Call{code, propType}]
	if !ok {
		return unix.ENOTTY
	}
	if r.errno != 0 {
		return r.errno
	}
	copy(buf, r.payload)
	return nil
}

// DeviceInfoPayload builds a 16-byte device info payload in wire order
func DeviceInfoPayload(deviceID, chipID, mmuEnabled, gmemBase uint32) []byte {
	b := make([]byte, 16)
	binary.LittleEndian.PutUint32(b[0:4], deviceID)
	binary.LittleEndian.PutUint32(b[4:8], chipID)
	binary.LittleEndian.PutUint32(b[8:12], mmuEnabled)
	binary.LittleEndian.PutUint32(b[12:16], gmemBase)
	return b
}

// VersionPayload builds an 8-byte version payload in wire order
func VersionPayload(driverVersion, deviceVersion uint32) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint32(b[0:4], driverVersion)
	binary.LittleEndian.PutUint32(b[4:8], deviceVersion)
	return b
}

// Uint32Payload builds a 4-byte scalar payload in wire order
func Uint32Payload(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}
