package config

import (
	"os"
	"regexp"
	"strings"
)

var envVarRe = regexp.MustCompile(`\$\{([^}]+)\}`)

// substituteEnvVars replaces ${VAR} references in YAML content with the
// corresponding environment values. ${VAR:-default} falls back to the
// default when VAR is unset or empty; a plain unset ${VAR} becomes the empty
// string.
func substituteEnvVars(content string) string {
	return envVarRe.ReplaceAllStringFunc(content, func(match string) string {
		expr := match[2 : len(match)-1]

		if idx := strings.Index(expr, ":-"); idx >= 0 {
			name := strings.TrimSpace(expr[:idx])
			fallback := strings.TrimSpace(expr[idx+2:])
			if value := os.Getenv(name); value != "" {
				return value
			}
			return fallback
		}

		return os.Getenv(strings.TrimSpace(expr))
	})
}
