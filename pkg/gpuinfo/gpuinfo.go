// Package gpuinfo assembles a full hardware identification report from
// one query pass against a KGSL device.
package gpuinfo

import (
	"github.com/emergingrobotics/go-kgsl/pkg/adreno"
	"github.com/emergingrobotics/go-kgsl/pkg/kgsl"
)

// Report is the assembled result of one query pass. Version and
// FrequencyHz are best-effort: nil/zero when the hardware does not
// expose them.
type Report struct {
	Path        string
	Info        kgsl.DeviceInfo
	Chip        adreno.ChipID
	Version     *kgsl.VersionInfo
	FrequencyHz uint32
}

// Collect runs the query sequence against an already-open device. The
// device info query is mandatory and its failure is the run's failure;
// version and frequency are optional and their absence is swallowed.
func Collect(conn kgsl.PropertyConn, path string) (*Report, error) {
	info, err := kgsl.QueryDeviceInfo(conn)
	if err != nil {
		return nil, err
	}

	r := &Report{
		Path: path,
		Info: *info,
		Chip: adreno.Decode(info.ChipID),
	}

	if version, err := kgsl.QueryVersion(conn); err == nil {
		r.Version = version
	}
	if hz, err := kgsl.QueryFrequency(conn); err == nil {
		r.FrequencyHz = hz
	}
	return r, nil
}

// QueryPath opens one device node, collects a report, and closes it
func QueryPath(path string) (*Report, error) {
	dev, err := kgsl.OpenDevice(path)
	if err != nil {
		return nil, kgsl.NewErrorWithCause(kgsl.StatusOpenFailed, "opening "+path, err)
	}
	defer dev.Close()
	return Collect(dev, path)
}

// Query locates the first present KGSL device node and collects a report
func Query() (*Report, error) {
	paths := kgsl.Scan()
	if len(paths) == 0 {
		return nil, kgsl.NewError(kgsl.StatusNoDeviceFound, "no kgsl device node present")
	}
	return QueryPath(paths[0])
}
