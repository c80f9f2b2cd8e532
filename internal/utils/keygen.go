package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// GenerateObjectName generates a collision-resistant object key for an
// uploaded file. Format: <dir>/<unix-ms>-<randomhex>.<ext>
// Example: portfolios/1735689600000-a1b2c3d4.jpg
func GenerateObjectName(dir, ext string) (string, error) {
	b := make([]byte, 4) // 8 char hex
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%d-%s.%s", dir, time.Now().UnixMilli(), hex.EncodeToString(b), ext), nil
}
