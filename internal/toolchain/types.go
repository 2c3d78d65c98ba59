// Package toolchain resolves pinned build inputs to downloadable release
// artifacts and verifies them before installation.
//
// Build input identifiers are opaque to the descriptor; this package owns
// the small lookup table for the inputs fluentenv knows how to
// materialize itself (currently the pinned Rust toolchain). Everything
// else is expected to be provided by the surrounding system and resolves
// to nothing, mirroring the descriptor's total, error-free evaluation.
package toolchain

import "fmt"

// Artifact describes a downloadable release artifact for a build input
// on a specific platform.
type Artifact struct {
	// Input is the build input identifier this artifact satisfies.
	Input string

	// Version is the pinned upstream version.
	Version string

	// URL is the archive download location.
	URL string

	// SignatureURL is the detached GPG signature for the archive, empty
	// when the publisher only ships checksums.
	SignatureURL string

	// KeyName names the keyring used for GPG verification.
	KeyName string
}

// VerificationMethod indicates how an artifact was verified.
type VerificationMethod int

const (
	// VerificationNone indicates no verification was performed.
	VerificationNone VerificationMethod = iota
	// VerificationGPG indicates GPG signature verification.
	VerificationGPG
	// VerificationSHA256 indicates SHA256 checksum verification.
	VerificationSHA256
)

// String returns the string representation of the verification method
func (v VerificationMethod) String() string {
	switch v {
	case VerificationGPG:
		return "GPG"
	case VerificationSHA256:
		return "SHA256"
	case VerificationNone:
		return "None"
	default:
		return "Unknown"
	}
}

// VerificationResult contains the outcome of artifact verification.
type VerificationResult struct {
	Method  VerificationMethod
	Success bool
	Error   error
}

// UnknownTargetError indicates the platform has no release artifact for
// a resolvable input.
type UnknownTargetError struct {
	Input    string
	Platform string
}

func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("no %s artifact for platform %s", e.Input, e.Platform)
}
