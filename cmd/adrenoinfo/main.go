package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/emergingrobotics/go-kgsl/pkg/gpuinfo"
	"github.com/emergingrobotics/go-kgsl/pkg/kgsl"
)

// Version information (set by ldflags)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		runReport()
		return
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "scan":
		scanDevices()
	case "info":
		if len(args) < 1 {
			fmt.Println("Usage: adrenoinfo info <device>")
			os.Exit(1)
		}
		reportPath(args[0])
	case "debug":
		printDebugInfo()
	case "version":
		printVersion()
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Adreno GPU Info")
	fmt.Println()
	fmt.Println("Usage: adrenoinfo [command]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  (none)            Locate the GPU and print a full report")
	fmt.Println("  scan              List present KGSL device nodes")
	fmt.Println("  info <device>     Report on a specific device node")
	fmt.Println("  debug             Print IOCTL debug information")
	fmt.Println("  version           Print version information")
	fmt.Println("  help              Show this help")
}

func printVersion() {
	fmt.Printf("adrenoinfo version %s\n", Version)
	fmt.Printf("  Build time: %s\n", BuildTime)
}

func scanDevices() {
	paths := kgsl.Scan()
	if len(paths) == 0 {
		fmt.Println("No KGSL devices found")
		return
	}

	fmt.Printf("Found %d KGSL device(s):\n", len(paths))
	for i, path := range paths {
		fmt.Printf("  [%d] %s\n", i, path)
	}
}

func printDebugInfo() {
	fmt.Println("IOCTL Debug Information")
	fmt.Println()
	fmt.Println("Struct Sizes:")
	fmt.Printf("  DeviceInfo:   %d bytes\n", kgsl.SizeOfDeviceInfo)
	fmt.Printf("  VersionInfo:  %d bytes\n", kgsl.SizeOfVersionInfo)
	fmt.Println()
	fmt.Println("IOCTL Command Codes:")
	fmt.Printf("  GetProperty (validated): 0x%08x\n", kgsl.IoctlGetPropertyCode)
	fmt.Printf("  Version candidates:      %s\n", formatCodes(kgsl.VersionCandidates))
	fmt.Printf("  Frequency candidates:    %s\n", formatCodes(kgsl.FrequencyCandidates))
	fmt.Println()
	fmt.Println("Property Types:")
	fmt.Printf("  DEVICE_INFO: 0x%02x\n", kgsl.PropDeviceInfo)
	fmt.Printf("  VERSION:     0x%02x\n", kgsl.PropVersion)
	fmt.Printf("  PWRCTRL:     0x%02x\n", kgsl.PropPwrCtrl)
}

func formatCodes(codes []uint32) string {
	s := ""
	for i, c := range codes {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("0x%08x", c)
	}
	return s
}

// runReport is the default action: locate, query, decode, print. Query
// failures are reported as text with troubleshooting hints; the process
// exits 0 either way.
func runReport() {
	paths := kgsl.Scan()
	if len(paths) == 0 {
		fmt.Println("No KGSL devices found on this system.")
		return
	}

	fmt.Printf("Found %d KGSL device(s):\n", len(paths))
	for _, path := range paths {
		fmt.Printf("  %s\n", path)
	}
	fmt.Println()

	reportPath(paths[0])
}

func reportPath(path string) {
	report, err := gpuinfo.QueryPath(path)
	if err != nil {
		printTroubleshooting(path, err)
		return
	}
	printReport(report)
}

func printReport(r *gpuinfo.Report) {
	title := color.New(color.Bold)
	label := color.New(color.FgCyan)

	title.Printf("%s", r.Chip.ModelName)
	fmt.Printf("  (%s)\n", r.Path)
	if r.Chip.Platform != "" {
		fmt.Printf("  Typically found in: %s\n", r.Chip.Platform)
	}

	label.Print("  Chip ID:    ")
	fmt.Printf("%s\n", r.Chip)
	label.Print("  Device ID:  ")
	fmt.Printf("0x%08x\n", r.Info.DeviceID)
	label.Print("  MMU:        ")
	if r.Info.MMUEnabled != 0 {
		fmt.Println(color.GreenString("enabled"))
	} else {
		fmt.Println(color.RedString("disabled"))
	}
	label.Print("  GMEM base:  ")
	fmt.Printf("0x%08x\n", r.Info.GmemBaseAddr)
	label.Print("  Generation: ")
	fmt.Printf("Adreno %s\n", r.Chip.Generation)

	if r.FrequencyHz != 0 {
		label.Print("  Frequency:  ")
		fmt.Printf("%d MHz\n", r.FrequencyHz/1000000)
	}
	if r.Version != nil {
		label.Print("  Driver:     ")
		fmt.Printf("0x%08x | Device: 0x%08x\n",
			r.Version.DriverVersion, r.Version.DeviceVersion)
	}

	raw := r.Info.Bytes()
	label.Print("  Raw bytes:  ")
	for i, b := range raw {
		if i > 0 && i%4 == 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%02x", b)
	}
	fmt.Printf("  (%d bytes)\n", len(raw))
}

func printTroubleshooting(path string, err error) {
	fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Error:"), err)
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Troubleshooting:")

	if kgsl.StatusOf(err) == kgsl.StatusOpenFailed {
		fmt.Fprintln(os.Stderr, "  1. Run as root: sudo adrenoinfo")
		fmt.Fprintf(os.Stderr, "  2. Check permissions: ls -la %s\n", path)
		return
	}

	fmt.Fprintln(os.Stderr, "  1. Run as root: sudo adrenoinfo")
	fmt.Fprintln(os.Stderr, "  2. Check permissions: ls -la /dev/kgsl*")
	fmt.Fprintln(os.Stderr, "  3. Alternative IOCTL codes to try:")
	fmt.Fprintln(os.Stderr, "     0xc0100902 (16 bytes)")
	fmt.Fprintln(os.Stderr, "     0xc0080902 (8 bytes)")
	fmt.Fprintln(os.Stderr, "     0xc00c0902 (12 bytes)")
}
