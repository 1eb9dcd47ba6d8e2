package generator

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// ComputeChecksum computes a SHA256 checksum for the given data
func ComputeChecksum(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

// GenerateContent returns a deterministic text body for a synthetic file.
// The same RNG state always yields the same body.
func GenerateContent(rng *RNG, name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", name)

	lines := rng.Intn(4) + 2
	for i := 0; i < lines; i++ {
		chunk := make([]byte, 16)
		for j := range chunk {
			chunk[j] = byte(rng.Intn(256))
		}
		b.WriteString(hex.EncodeToString(chunk))
		b.WriteByte('\n')
	}
	return b.String()
}
