package kgsl

import (
	"encoding/binary"
	"unsafe"
)

// DeviceInfo matches struct kgsl_devinfo from the driver: four uint32
// fields at fixed offsets 0/4/8/12, 16 bytes total. The layout is ABI.
type DeviceInfo struct {
	DeviceID     uint32
	ChipID       uint32
	MMUEnabled   uint32
	GmemBaseAddr uint32
}

// VersionInfo matches struct kgsl_version: driver version at offset 0,
// device version at offset 4, 8 bytes total.
type VersionInfo struct {
	DriverVersion uint32
	DeviceVersion uint32
}

// getPropertyArgs matches struct kgsl_device_getproperty. The descriptor
// is stack-scoped: built immediately before the ioctl and discarded after.
// SizeBytes must equal the payload length exactly; a mismatch is the most
// common reason a query fails.
type getPropertyArgs struct {
	Type      uint32
	_         [4]byte // alignment before pointer on 64-bit
	Value     unsafe.Pointer
	SizeBytes uint32
	Reserved  [2]uint32
}

// Struct sizes for IOCTL payloads
var (
	SizeOfDeviceInfo  = int(unsafe.Sizeof(DeviceInfo{}))
	SizeOfVersionInfo = int(unsafe.Sizeof(VersionInfo{}))
)

// DecodeDeviceInfo decodes a raw 16-byte GETPROPERTY payload. KGSL is a
// little-endian ABI; decoding from explicit offsets keeps Go struct
// padding out of the wire contract.
func DecodeDeviceInfo(b []byte) DeviceInfo {
	return DeviceInfo{
		DeviceID:     binary.LittleEndian.Uint32(b[0:4]),
		ChipID:       binary.LittleEndian.Uint32(b[4:8]),
		MMUEnabled:   binary.LittleEndian.Uint32(b[8:12]),
		GmemBaseAddr: binary.LittleEndian.Uint32(b[12:16]),
	}
}

// DecodeVersionInfo decodes a raw 8-byte version payload.
func DecodeVersionInfo(b []byte) VersionInfo {
	return VersionInfo{
		DriverVersion: binary.LittleEndian.Uint32(b[0:4]),
		DeviceVersion: binary.LittleEndian.Uint32(b[4:8]),
	}
}

// Bytes returns the wire representation of the structure, grouped the way
// the kernel populated it.
func (i DeviceInfo) Bytes() [16]byte {
	var b [16]byte
	binary.LittleEndian.PutUint32(b[0:4], i.DeviceID)
	binary.LittleEndian.PutUint32(b[4:8], i.ChipID)
	binary.LittleEndian.PutUint32(b[8:12], i.MMUEnabled)
	binary.LittleEndian.PutUint32(b[12:16], i.GmemBaseAddr)
	return b
}
