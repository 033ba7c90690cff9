package rapidbase

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// CPUFeatures reports the instruction set extensions relevant to backend
// selection on the running machine.
func CPUFeatures() map[string]bool {
	switch runtime.GOARCH {
	case "amd64", "386":
		return map[string]bool{
			"sse2":   cpu.X86.HasSSE2,
			"ssse3":  cpu.X86.HasSSSE3,
			"sse41":  cpu.X86.HasSSE41,
			"avx":    cpu.X86.HasAVX,
			"avx2":   cpu.X86.HasAVX2,
			"avx512": cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW,
			"bmi2":   cpu.X86.HasBMI2,
		}
	case "arm64":
		return map[string]bool{
			"asimd": cpu.ARM64.HasASIMD,
			"sve":   cpu.ARM64.HasSVE,
		}
	}
	return map[string]bool{}
}
