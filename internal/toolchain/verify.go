package toolchain

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ProtonMail/go-crypto/openpgp"
)

// Verifier handles cryptographic verification of downloaded artifacts.
type Verifier struct {
	keyringDir string
}

// NewVerifier creates a verifier that loads armored keyrings from
// keyringDir. Keyrings are named <KeyName>.asc.
func NewVerifier(keyringDir string) *Verifier {
	return &Verifier{keyringDir: keyringDir}
}

// VerifyGPG verifies an artifact against its detached armored signature
// using the named keyring.
func (v *Verifier) VerifyGPG(artifactPath, signaturePath, keyName string) (*VerificationResult, error) {
	keyring, err := v.loadKeyring(keyName)
	if err != nil {
		return &VerificationResult{
			Method:  VerificationGPG,
			Success: false,
			Error:   fmt.Errorf("load keyring: %w", err),
		}, err
	}

	artifact, err := os.Open(artifactPath)
	if err != nil {
		return nil, fmt.Errorf("open artifact: %w", err)
	}
	defer artifact.Close()

	signature, err := os.Open(signaturePath)
	if err != nil {
		return nil, fmt.Errorf("open signature: %w", err)
	}
	defer signature.Close()

	if _, err := openpgp.CheckArmoredDetachedSignature(keyring, artifact, signature, nil); err != nil {
		result := &VerificationResult{
			Method:  VerificationGPG,
			Success: false,
			Error:   err,
		}
		return result, fmt.Errorf("signature check failed: %w", err)
	}

	return &VerificationResult{Method: VerificationGPG, Success: true}, nil
}

// VerifySHA256 verifies an artifact against a checksum file in the
// conventional "<hex digest>  <filename>" format. The entry is matched
// by the artifact's base name.
func (v *Verifier) VerifySHA256(artifactPath, checksumPath string) (*VerificationResult, error) {
	expected, err := findChecksum(checksumPath, filepath.Base(artifactPath))
	if err != nil {
		return &VerificationResult{
			Method:  VerificationSHA256,
			Success: false,
			Error:   err,
		}, err
	}

	actual, err := hashFile(artifactPath)
	if err != nil {
		return nil, fmt.Errorf("hash artifact: %w", err)
	}

	if !strings.EqualFold(expected, actual) {
		err := fmt.Errorf("checksum mismatch: expected %s, got %s", expected, actual)
		return &VerificationResult{
			Method:  VerificationSHA256,
			Success: false,
			Error:   err,
		}, err
	}

	return &VerificationResult{Method: VerificationSHA256, Success: true}, nil
}

// loadKeyring reads an armored keyring file for the given key name.
func (v *Verifier) loadKeyring(keyName string) (openpgp.EntityList, error) {
	path := filepath.Join(v.keyringDir, keyName+".asc")

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open keyring %s: %w", path, err)
	}
	defer file.Close()

	keyring, err := openpgp.ReadArmoredKeyRing(file)
	if err != nil {
		return nil, fmt.Errorf("read keyring %s: %w", path, err)
	}
	if len(keyring) == 0 {
		return nil, fmt.Errorf("keyring %s contains no keys", path)
	}

	return keyring, nil
}

// findChecksum scans a checksum file for the entry matching filename.
func findChecksum(checksumPath, filename string) (string, error) {
	file, err := os.Open(checksumPath)
	if err != nil {
		return "", fmt.Errorf("open checksum file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		// Entries may carry a leading "*" for binary mode.
		name := strings.TrimPrefix(fields[1], "*")
		if filepath.Base(name) == filename {
			digest := fields[0]
			if len(digest) != sha256.Size*2 {
				return "", fmt.Errorf("malformed digest for %s: %q", filename, digest)
			}
			return digest, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read checksum file: %w", err)
	}

	return "", fmt.Errorf("no checksum entry for %s", filename)
}

// hashFile computes the hex SHA256 digest of a file.
func hashFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	h := sha256.New()
	if _, err := io.Copy(h, file); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
