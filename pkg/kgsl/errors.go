package kgsl

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Status represents a KGSL operation status code
type Status int

const (
	StatusSuccess               Status = 0
	StatusInvalidArgument       Status = 1
	StatusNotFound              Status = 2
	StatusPermissionDenied      Status = 3
	StatusNoDeviceFound         Status = 4
	StatusOpenFailed            Status = 5
	StatusRequestFailed         Status = 6
	StatusEmptyResponse         Status = 7
	StatusNoCandidateWorked     Status = 8
	StatusDriverInvalidIoctl    Status = 9
	StatusDriverInterrupted     Status = 10
	StatusDriverOperationFailed Status = 11
)

var statusMessages = map[Status]string{
	StatusSuccess:               "success",
	StatusInvalidArgument:       "invalid argument",
	StatusNotFound:              "not found",
	StatusPermissionDenied:      "permission denied",
	StatusNoDeviceFound:         "no kgsl device found",
	StatusOpenFailed:            "opening device failed",
	StatusRequestFailed:         "getproperty request failed",
	StatusEmptyResponse:         "driver returned no data",
	StatusNoCandidateWorked:     "no candidate request code worked",
	StatusDriverInvalidIoctl:    "driver rejected ioctl (unknown request code)",
	StatusDriverInterrupted:     "driver interrupted",
	StatusDriverOperationFailed: "driver operation failed",
}

// String returns the human-readable status message
func (s Status) String() string {
	if msg, ok := statusMessages[s]; ok {
		return msg
	}
	return fmt.Sprintf("unknown status (%d)", int(s))
}

// Error represents a failure from the KGSL driver layer
type Error struct {
	Status  Status
	Context string
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Context != "" {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %s: %v", e.Context, e.Status.String(), e.Cause)
		}
		return fmt.Sprintf("%s: %s", e.Context, e.Status.String())
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Status.String(), e.Cause)
	}
	return e.Status.String()
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches a target status
func (e *Error) Is(target error) bool {
	var kerr *Error
	if errors.As(target, &kerr) {
		return e.Status == kerr.Status
	}
	return false
}

// NewError creates a new Error with the given status
func NewError(status Status, context string) *Error {
	return &Error{
		Status:  status,
		Context: context,
	}
}

// NewErrorWithCause creates a new Error with an underlying cause
func NewErrorWithCause(status Status, context string, cause error) *Error {
	return &Error{
		Status:  status,
		Context: context,
		Cause:   cause,
	}
}

// ErrnoToStatus converts a Linux errno to a KGSL status
func ErrnoToStatus(errno unix.Errno) Status {
	switch errno {
	case unix.ENOENT:
		return StatusNotFound
	case unix.EACCES, unix.EPERM:
		return StatusPermissionDenied
	case unix.ENOTTY:
		return StatusDriverInvalidIoctl
	case unix.EINTR:
		return StatusDriverInterrupted
	case unix.EINVAL:
		return StatusInvalidArgument
	default:
		return StatusDriverOperationFailed
	}
}

// StatusFromErrno creates an Error from an errno
func StatusFromErrno(errno unix.Errno, context string) *Error {
	return &Error{
		Status:  ErrnoToStatus(errno),
		Context: context,
		Cause:   errno,
	}
}

// StatusOf returns the status carried by err, or
// StatusDriverOperationFailed when err is not a kgsl error.
func StatusOf(err error) Status {
	var kerr *Error
	if errors.As(err, &kerr) {
		return kerr.Status
	}
	return StatusDriverOperationFailed
}
