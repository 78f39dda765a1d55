package kgsl

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// DeviceFile represents an open KGSL device file descriptor
type DeviceFile struct {
	fd   int
	path string
}

// OpenDevice opens a KGSL device node by path
func OpenDevice(path string) (*DeviceFile, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		errno, ok := err.(unix.Errno)
		if ok {
			return nil, StatusFromErrno(errno, "opening device "+path)
		}
		return nil, NewErrorWithCause(StatusOpenFailed, "opening device "+path, err)
	}
	return &DeviceFile{fd: fd, path: path}, nil
}

// Close closes the device file
func (d *DeviceFile) Close() error {
	if d.fd >= 0 {
		err := unix.Close(d.fd)
		d.fd = -1
		if err != nil {
			return NewErrorWithCause(StatusDriverOperationFailed, "closing device", err)
		}
	}
	return nil
}

// Fd returns the file descriptor
func (d *DeviceFile) Fd() int {
	return d.fd
}

// Path returns the device path
func (d *DeviceFile) Path() string {
	return d.path
}

// ioctl performs an ioctl syscall
func (d *DeviceFile) ioctl(cmd uint32, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(d.fd), uintptr(cmd), uintptr(arg))
	if errno != 0 {
		return StatusFromErrno(errno, "ioctl")
	}
	return nil
}

// GetProperty issues a single GETPROPERTY request with the given request
// code and property type, letting the driver populate buf. The descriptor
// declares exactly len(buf) bytes and borrows buf for the duration of the
// one call.
func (d *DeviceFile) GetProperty(code, propType uint32, buf []byte) error {
	if len(buf) == 0 {
		return NewError(StatusInvalidArgument, "empty property buffer")
	}
	args := getPropertyArgs{
		Type:      propType,
		Value:     unsafe.Pointer(&buf[0]),
		SizeBytes: uint32(len(buf)),
	}
	return d.ioctl(code, unsafe.Pointer(&args))
}
