// Package util holds small helpers shared by the command line tools.
package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"time"

	"hobbyexplorer/internal/errors"
)

// FileDigest identifies the exact content of an input file.
type FileDigest struct {
	Path     string
	Checksum string // hex encoded SHA-256
	Size     int64
}

// DigestFile hashes the file and counts its bytes in a single read.
func DigestFile(filePath string) (*FileDigest, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	sha256Hash := sha256.New()
	size, err := io.Copy(sha256Hash, file)
	if err != nil {
		return nil, errors.Wrap(err, "failed to calculate checksum")
	}

	return &FileDigest{
		Path:     filePath,
		Checksum: hex.EncodeToString(sha256Hash.Sum(nil)),
		Size:     size,
	}, nil
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatDuration rounds to milliseconds below one second and to seconds above,
// e.g. "350ms", "45s", "5m10s", "1h30m".
func FormatDuration(duration time.Duration) string {
	if duration < time.Second {
		return fmt.Sprintf("%dms", duration.Round(time.Millisecond).Milliseconds())
	}

	duration = duration.Round(time.Second)
	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
