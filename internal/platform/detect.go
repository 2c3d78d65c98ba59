package platform

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// familyMap maps distribution names reported by gopsutil to canonical
// family names.
var familyMap = map[string]string{
	"debian":   FamilyDebian,
	"ubuntu":   FamilyDebian,
	"rhel":     FamilyRHEL,
	"centos":   FamilyRHEL,
	"rocky":    FamilyRHEL,
	"fedora":   FamilyRHEL,
	"arch":     FamilyArch,
	"manjaro":  FamilyArch,
	"alpine":   FamilyAlpine,
	"suse":     FamilySUSE,
	"opensuse": FamilySUSE,
}

// RealDetector implements Detector using actual platform detection.
type RealDetector struct{}

// NewDetector creates a new platform detector.
func NewDetector() Detector {
	return &RealDetector{}
}

// Detect performs platform detection and returns platform information.
// It uses runtime.GOOS and runtime.GOARCH for OS and architecture, and
// gopsutil for Linux distribution details.
//
// On Linux, if gopsutil fails to detect the distribution, the distro
// fields stay empty and detection still succeeds. Most descriptors only
// condition on the platform identifier, which never needs distro data.
func (d *RealDetector) Detect(ctx context.Context) (*Info, error) {
	info := &Info{
		OS:      runtime.GOOS,
		ArchRaw: runtime.GOARCH,
	}

	arch, err := normalizeArch(runtime.GOARCH)
	if err != nil {
		return nil, fmt.Errorf("platform detection failed: %w", err)
	}
	info.Arch = arch

	if runtime.GOOS == "linux" {
		platform, family, version, err := host.PlatformInformationWithContext(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("platform detection cancelled: %w", ctx.Err())
			}
			// Graceful fallback: OS and arch are enough for identifier
			// based conditionals.
			return info, nil
		}

		platform = normalizeToken(platform)
		version = normalizeToken(version)
		if platform != "" {
			info.Platform = platform
			info.Family = mapFamily(family)
			info.Version = version
		}
	}

	return info, nil
}

// normalizeArch converts GOARCH values to normalized architecture names.
// Only amd64 and arm64 are supported.
func normalizeArch(arch string) (string, error) {
	switch arch {
	case "amd64", "x86_64":
		return "amd64", nil
	case "arm64", "aarch64":
		return "arm64", nil
	default:
		return "", fmt.Errorf("unsupported architecture: %s (supported: amd64, arm64)", arch)
	}
}

// normalizeToken lowercases and trims a detection token for consistency.
func normalizeToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// mapFamily maps a distribution family string to a canonical family name.
func mapFamily(family string) string {
	if canonical, ok := familyMap[normalizeToken(family)]; ok {
		return canonical
	}
	return FamilyUnknown
}
