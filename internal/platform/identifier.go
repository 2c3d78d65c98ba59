package platform

import (
	"fmt"
	"strings"
)

// archIdentifiers maps normalized Go architectures to the arch component
// of a platform identifier.
var archIdentifiers = map[string]string{
	"amd64": "x86_64",
	"arm64": "aarch64",
}

// identifierArchs is the reverse of archIdentifiers.
var identifierArchs = map[string]string{
	"x86_64":  "amd64",
	"aarch64": "arm64",
}

// Identifier returns the canonical platform identifier for this platform
// in "<arch>-<os>" form, e.g. "x86_64-darwin" or "aarch64-linux".
// Descriptor conditionals key on this value.
func (i *Info) Identifier() string {
	arch, ok := archIdentifiers[i.Arch]
	if !ok {
		// Unrecognized architectures pass through unchanged; the
		// descriptor treats identifiers as opaque strings.
		arch = i.Arch
	}
	return arch + "-" + i.OS
}

// ParseIdentifier splits a platform identifier into its architecture and
// OS components. The architecture is normalized to Go conventions when
// recognized. Only the detection and display paths need this; descriptor
// evaluation accepts arbitrary identifier strings.
func ParseIdentifier(id string) (arch, os string, err error) {
	idx := strings.Index(id, "-")
	if idx <= 0 || idx == len(id)-1 {
		return "", "", fmt.Errorf("invalid platform identifier: %q (expected <arch>-<os>)", id)
	}
	arch = id[:idx]
	os = id[idx+1:]
	if normalized, ok := identifierArchs[arch]; ok {
		arch = normalized
	}
	return arch, os, nil
}

// KnownIdentifiers returns the platform identifiers this tool is routinely
// evaluated on, in display order.
func KnownIdentifiers() []string {
	return []string{
		"x86_64-linux",
		"aarch64-linux",
		"x86_64-darwin",
		"aarch64-darwin",
	}
}
