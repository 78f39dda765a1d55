package kgsl

// IOCTL magic and command numbers - must match msm_kgsl.h
const (
	KgslIoctlMagic   = 0x09
	IoctlGetProperty = 0x02
)

// Property types accepted by IOCTL_KGSL_DEVICE_GETPROPERTY
const (
	PropDeviceInfo     = 0x01
	PropDeviceShadow   = 0x02
	PropDevicePower    = 0x03
	PropShmem          = 0x04
	PropShmemApertures = 0x05
	PropMmuEnable      = 0x06
	PropInterruptWaits = 0x07
	PropVersion        = 0x08
	PropGpuResetStat   = 0x09
	PropPwrCtrl        = 0x0E
)

// Default device node candidates, ordered most to least likely. The order
// is part of the discovery policy: the first existing node is the one that
// gets opened.
var DefaultDevicePaths = []string{
	"/dev/kgsl-3d0",
	"/dev/kgsl/kgsl-3d0",
	"/dev/kgsl-3d1",
	"/dev/kgsl-2d0",
	"/dev/kgsl-2d1",
}

// IoctlGetPropertyCode is the empirically validated GETPROPERTY request
// code (0xc0140902). The encoded 20-byte descriptor window covers the
// type, pointer, and size fields on both 32-bit and 64-bit kernels; the
// handler fills a smaller logical payload than the declared size.
var IoctlGetPropertyCode = IoWR(KgslIoctlMagic, IoctlGetProperty, 20)

// Candidate request codes for properties whose correct code is not known
// across all driver revisions. Order matters: the first candidate that
// succeeds with a non-zero payload wins.
var (
	VersionCandidates   = []uint32{0xc0080902, 0xc0140902, 0xc00c0902}
	FrequencyCandidates = []uint32{0xc0040902, 0xc0080902, 0xc0140902}
)

// IOCTL direction flags for _IOC macro
const (
	IocNone  = 0
	IocWrite = 1
	IocRead  = 2
)

// IOCTL size/direction encoding constants
const (
	IocNrBits   = 8
	IocTypeBits = 8
	IocSizeBits = 14
	IocDirBits  = 2

	IocNrShift   = 0
	IocTypeShift = IocNrShift + IocNrBits
	IocSizeShift = IocTypeShift + IocTypeBits
	IocDirShift  = IocSizeShift + IocSizeBits
)

// Ioc creates an IOCTL command number
func Ioc(dir, iocType, nr, size int) uint32 {
	return uint32((dir << IocDirShift) |
		(iocType << IocTypeShift) |
		(nr << IocNrShift) |
		(size << IocSizeShift))
}

// IoW creates a write IOCTL (data flows from user to kernel)
func IoW(iocType, nr, size int) uint32 {
	return Ioc(IocWrite, iocType, nr, size)
}

// IoR creates a read IOCTL (data flows from kernel to user)
func IoR(iocType, nr, size int) uint32 {
	return Ioc(IocRead, iocType, nr, size)
}

// IoWR creates a read-write IOCTL
func IoWR(iocType, nr, size int) uint32 {
	return Ioc(IocRead|IocWrite, iocType, nr, size)
}

// Io creates an IOCTL with no data transfer
func Io(iocType, nr int) uint32 {
	return Ioc(IocNone, iocType, nr, 0)
}
