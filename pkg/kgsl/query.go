package kgsl

import (
	"encoding/binary"
	"fmt"
)

// PropertyConn issues one GETPROPERTY control request against an opened
// device. Implemented by *DeviceFile; tests substitute a fake.
type PropertyConn interface {
	GetProperty(code, propType uint32, buf []byte) error
}

// QueryRaw executes one property query with a single known-good request
// code. The buffer starts zeroed and must be exactly the payload size the
// property emits. A syscall error maps to StatusRequestFailed; a
// successful call that leaves every byte zero maps to StatusEmptyResponse,
// which on this interface means the property is absent or unsupported
// rather than the device being broken.
func QueryRaw(conn PropertyConn, code, propType uint32, size int) ([]byte, error) {
	if size <= 0 {
		return nil, NewError(StatusInvalidArgument, "property payload size must be positive")
	}
	buf := make([]byte, size)
	if err := conn.GetProperty(code, propType, buf); err != nil {
		return nil, NewErrorWithCause(StatusRequestFailed,
			fmt.Sprintf("getproperty type 0x%02x code 0x%08x", propType, code), err)
	}
	if allZero(buf) {
		return nil, NewError(StatusEmptyResponse,
			fmt.Sprintf("getproperty type 0x%02x", propType))
	}
	return buf, nil
}

// QueryProbing executes one property query by trying each candidate
// request code in order. Distinct device families and driver revisions
// need different code/size combinations for the same logical property, so
// when the right code is not known in advance the engine degrades to
// bounded sequential trial. Trials are strictly ordered: a wrong code
// issued concurrently with others against the same handle risks undefined
// driver-side interaction. The first candidate whose call succeeds with a
// non-zero payload wins; a failing candidate does not abort the rest.
func QueryProbing(conn PropertyConn, propType uint32, size int, candidates []uint32) ([]byte, error) {
	if size <= 0 {
		return nil, NewError(StatusInvalidArgument, "property payload size must be positive")
	}
	if len(candidates) == 0 {
		return nil, NewError(StatusInvalidArgument, "no candidate request codes")
	}
	for _, code := range candidates {
		buf := make([]byte, size)
		if err := conn.GetProperty(code, propType, buf); err != nil {
			continue
		}
		if allZero(buf) {
			continue
		}
		return buf, nil
	}
	return nil, NewError(StatusNoCandidateWorked,
		fmt.Sprintf("getproperty type 0x%02x tried %d candidates", propType, len(candidates)))
}

// QueryDeviceInfo reads the mandatory device identification property
// using the validated request code.
func QueryDeviceInfo(conn PropertyConn) (*DeviceInfo, error) {
	buf, err := QueryRaw(conn, IoctlGetPropertyCode, PropDeviceInfo, SizeOfDeviceInfo)
	if err != nil {
		return nil, err
	}
	info := DecodeDeviceInfo(buf)
	return &info, nil
}

// QueryVersion reads the driver/device version property. The correct
// request code varies by driver revision, so the candidates are probed.
func QueryVersion(conn PropertyConn) (*VersionInfo, error) {
	buf, err := QueryProbing(conn, PropVersion, SizeOfVersionInfo, VersionCandidates)
	if err != nil {
		return nil, err
	}
	version := DecodeVersionInfo(buf)
	return &version, nil
}

// QueryFrequency reads the current GPU clock in Hz via the power control
// property. Not all hardware exposes it.
func QueryFrequency(conn PropertyConn) (uint32, error) {
	buf, err := QueryProbing(conn, PropPwrCtrl, 4, FrequencyCandidates)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf), nil
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
