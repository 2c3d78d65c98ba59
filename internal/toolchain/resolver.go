package toolchain

import (
	"fmt"

	"github.com/csnover/fluent-ergonomics/internal/platform"
)

// rustVersion is the pinned Rust toolchain release matching the
// descriptor's rust_1_41 input.
const rustVersion = "1.41.0"

// rustDistBase is the upstream release host for Rust toolchains.
const rustDistBase = "https://static.rust-lang.org/dist"

// rustTargets maps platform identifiers to Rust release target triples.
var rustTargets = map[string]string{
	"x86_64-linux":   "x86_64-unknown-linux-gnu",
	"aarch64-linux":  "aarch64-unknown-linux-gnu",
	"x86_64-darwin":  "x86_64-apple-darwin",
	"aarch64-darwin": "aarch64-apple-darwin",
}

// Resolver maps build input identifiers to release artifacts for a
// platform.
type Resolver struct {
	platformInfo *platform.Info
}

// NewResolver creates a resolver for the given platform.
func NewResolver(info *platform.Info) *Resolver {
	return &Resolver{platformInfo: info}
}

// Resolve maps a build input identifier to an artifact. The second
// return value is false when the input is externally provided: the
// identifier is valid, fluentenv just has nothing to download for it.
// Resolution fails with an error only when an input fluentenv does
// materialize has no artifact for the current platform.
func (r *Resolver) Resolve(input string) (*Artifact, bool, error) {
	switch input {
	case "rust_1_41":
		artifact, err := r.rustArtifact()
		if err != nil {
			return nil, false, err
		}
		return artifact, true, nil
	default:
		// pkg-config, crate2nix, system frameworks: supplied by the
		// surrounding environment, nothing to fetch.
		return nil, false, nil
	}
}

// rustArtifact builds the pinned Rust toolchain artifact for the
// resolver's platform. Rust releases ship detached GPG signatures.
func (r *Resolver) rustArtifact() (*Artifact, error) {
	id := r.platformInfo.Identifier()
	target, ok := rustTargets[id]
	if !ok {
		return nil, &UnknownTargetError{Input: "rust_1_41", Platform: id}
	}

	url := fmt.Sprintf("%s/rust-%s-%s.tar.gz", rustDistBase, rustVersion, target)
	return &Artifact{
		Input:        "rust_1_41",
		Version:      rustVersion,
		URL:          url,
		SignatureURL: url + ".asc",
		KeyName:      "rust",
	}, nil
}

// ResolveAll resolves every build input of a spec, returning only the
// artifacts fluentenv materializes itself.
func (r *Resolver) ResolveAll(inputs []string) ([]*Artifact, error) {
	var artifacts []*Artifact
	for _, input := range inputs {
		artifact, managed, err := r.Resolve(input)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", input, err)
		}
		if managed {
			artifacts = append(artifacts, artifact)
		}
	}
	return artifacts, nil
}
