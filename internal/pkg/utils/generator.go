package utils

import (
	"fmt"
	"strings"
	"time"
	"unidash-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// GenerateFileName builds "<prefix>_<part>_..._<timestamp><ext>" with spaces and slashes removed.
func GenerateFileName(prefix, fileExtension string, now time.Time, parts ...string) string {
	cleaned := make([]string, 0, len(parts)+2)
	cleaned = append(cleaned, prefix)
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		part = strings.NewReplacer(" ", "-", "/", "-", "\\", "-").Replace(part)
		cleaned = append(cleaned, part)
	}
	cleaned = append(cleaned, now.Format("20060102_150405"))
	return fmt.Sprintf("%s%s", strings.Join(cleaned, "_"), fileExtension)
}
