//go:build unit

package kgsl

import (
	"errors"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/emergingrobotics/go-kgsl/testutil"
)

func TestQueryRawReturnsPayloadUnchanged(t *testing.T) {
	conn := testutil.NewFakeConn()
	payload := testutil.DeviceInfoPayload(1, 0x06010001, 1, 0)
	conn.Script(IoctlGetPropertyCode, PropDeviceInfo, payload)

	buf, err := QueryRaw(conn, IoctlGetPropertyCode, PropDeviceInfo, SizeOfDeviceInfo)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}

	if len(buf) != SizeOfDeviceInfo {
		t.Fatalf("buffer length = %d, expected %d", len(buf), SizeOfDeviceInfo)
	}
	for i := range payload {
		if buf[i] != payload[i] {
			t.Errorf("byte %d = 0x%02x, expected 0x%02x", i, buf[i], payload[i])
		}
	}
}

func TestQueryRawRequestFailed(t *testing.T) {
	conn := testutil.NewFakeConn()
	conn.ScriptErrno(IoctlGetPropertyCode, PropDeviceInfo, unix.EINVAL)

	_, err := QueryRaw(conn, IoctlGetPropertyCode, PropDeviceInfo, SizeOfDeviceInfo)
	if err == nil {
		t.Fatal("expected error")
	}

	if got := StatusOf(err); got != StatusRequestFailed {
		t.Errorf("status = %v, expected StatusRequestFailed", got)
	}
	if !errors.Is(err, unix.EINVAL) {
		t.Error("expected the OS error to be preserved in the chain")
	}
}

func TestQueryRawEmptyResponse(t *testing.T) {
	// Driver accepts the call but writes nothing: the all-zero buffer
	// means the property is absent, not that the device is broken.
	conn := testutil.NewFakeConn()
	conn.Script(IoctlGetPropertyCode, PropDeviceInfo, nil)

	_, err := QueryRaw(conn, IoctlGetPropertyCode, PropDeviceInfo, SizeOfDeviceInfo)
	if err == nil {
		t.Fatal("expected error")
	}
	if got := StatusOf(err); got != StatusEmptyResponse {
		t.Errorf("status = %v, expected StatusEmptyResponse", got)
	}
}

func TestQueryRawRejectsNonPositiveSize(t *testing.T) {
	conn := testutil.NewFakeConn()
	_, err := QueryRaw(conn, IoctlGetPropertyCode, PropDeviceInfo, 0)
	if got := StatusOf(err); got != StatusInvalidArgument {
		t.Errorf("status = %v, expected StatusInvalidArgument", got)
	}
	if len(conn.Calls) != 0 {
		t.Error("no request should be issued for an invalid size")
	}
}

func TestQueryProbingStopsAtFirstSuccess(t *testing.T) {
	conn := testutil.NewFakeConn()
	conn.Script(VersionCandidates[0], PropVersion, testutil.VersionPayload(0x30003, 0x10001))

	buf, err := QueryProbing(conn, PropVersion, SizeOfVersionInfo, VersionCandidates)
	if err != nil {
		t.Fatalf("probing failed: %v", err)
	}

	v := DecodeVersionInfo(buf)
	if v.DriverVersion != 0x30003 {
		t.Errorf("DriverVersion = 0x%08x, expected 0x30003", v.DriverVersion)
	}

	// Only the first candidate may be attempted
	if len(conn.Calls) != 1 {
		t.Fatalf("attempts = %d, expected 1", len(conn.Calls))
	}
	if conn.Calls[0].Code != VersionCandidates[0] {
		t.Errorf("attempted 0x%08x, expected 0x%08x", conn.Calls[0].Code, VersionCandidates[0])
	}
}

func TestQueryProbingSkipsFailingCandidates(t *testing.T) {
	// First candidate rejected, second accepted but empty, third works.
	// A failing candidate must not abort the rest.
	conn := testutil.NewFakeConn()
	conn.ScriptErrno(VersionCandidates[0], PropVersion, unix.ENOTTY)
	conn.Script(VersionCandidates[1], PropVersion, nil)
	conn.Script(VersionCandidates[2], PropVersion, testutil.VersionPayload(7, 9))

	buf, err := QueryProbing(conn, PropVersion, SizeOfVersionInfo, VersionCandidates)
	if err != nil {
		t.Fatalf("probing failed: %v", err)
	}

	v := DecodeVersionInfo(buf)
	if v.DriverVersion != 7 || v.DeviceVersion != 9 {
		t.Errorf("version = %d/%d, expected 7/9", v.DriverVersion, v.DeviceVersion)
	}
	if len(conn.Calls) != 3 {
		t.Errorf("attempts = %d, expected 3", len(conn.Calls))
	}
}

func TestQueryProbingExhaustsCandidatesInOrder(t *testing.T) {
	conn := testutil.NewFakeConn()

	_, err := QueryProbing(conn, PropVersion, SizeOfVersionInfo, VersionCandidates)
	if err == nil {
		t.Fatal("expected error")
	}
	if got := StatusOf(err); got != StatusNoCandidateWorked {
		t.Errorf("status = %v, expected StatusNoCandidateWorked", got)
	}

	if len(conn.Calls) != len(VersionCandidates) {
		t.Fatalf("attempts = %d, expected %d", len(conn.Calls), len(VersionCandidates))
	}
	for i, call := range conn.Calls {
		if call.Code != VersionCandidates[i] {
			t.Errorf("attempt %d = 0x%08x, expected 0x%08x", i, call.Code, VersionCandidates[i])
		}
		if call.PropType != PropVersion {
			t.Errorf("attempt %d property = 0x%02x, expected 0x%02x", i, call.PropType, PropVersion)
		}
	}
}

func TestQueryProbingRejectsEmptyCandidateList(t *testing.T) {
	conn := testutil.NewFakeConn()
	_, err := QueryProbing(conn, PropVersion, SizeOfVersionInfo, nil)
	if got := StatusOf(err); got != StatusInvalidArgument {
		t.Errorf("status = %v, expected StatusInvalidArgument", got)
	}
}

func TestQueryDeviceInfo(t *testing.T) {
	conn := testutil.NewFakeConn()
	conn.Script(IoctlGetPropertyCode, PropDeviceInfo,
		testutil.DeviceInfoPayload(1, 0x06010001, 1, 0))

	info, err := QueryDeviceInfo(conn)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}

	if info.DeviceID != 1 {
		t.Errorf("DeviceID = %d, expected 1", info.DeviceID)
	}
	if info.ChipID != 0x06010001 {
		t.Errorf("ChipID = 0x%08x, expected 0x06010001", info.ChipID)
	}
	if info.MMUEnabled != 1 {
		t.Errorf("MMUEnabled = %d, expected 1", info.MMUEnabled)
	}
	if info.GmemBaseAddr != 0 {
		t.Errorf("GmemBaseAddr = %d, expected 0", info.GmemBaseAddr)
	}
}

func TestQueryDeviceInfoUsesOnlyValidatedCode(t *testing.T) {
	// Device info is queried with the single validated code, never probed
	conn := testutil.NewFakeConn()

	_, err := QueryDeviceInfo(conn)
	if err == nil {
		t.Fatal("expected error")
	}
	if len(conn.Calls) != 1 {
		t.Fatalf("attempts = %d, expected 1", len(conn.Calls))
	}
	if conn.Calls[0].Code != IoctlGetPropertyCode {
		t.Errorf("attempted 0x%08x, expected 0x%08x", conn.Calls[0].Code, IoctlGetPropertyCode)
	}
}

func TestQueryFrequency(t *testing.T) {
	conn := testutil.NewFakeConn()
	conn.Script(FrequencyCandidates[1], PropPwrCtrl, testutil.Uint32Payload(800000000))

	hz, err := QueryFrequency(conn)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if hz != 800000000 {
		t.Errorf("frequency = %d, expected 800000000", hz)
	}
}
