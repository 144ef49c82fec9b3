// utils/safelog.go
// ============================================================================
// SAFE LOGGING - Masks personal data in production logs
// ============================================================================
// Chat messages and RUNT lookups carry personal data (emails, plates, chat
// session ids). In production these are masked before hitting the logs.
// ============================================================================

package utils

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"
)

var (
	// IsProduction toggles masking. In development logs stay readable.
	IsProduction = os.Getenv("GIN_MODE") == "release" ||
		os.Getenv("ENVIRONMENT") == "production" ||
		os.Getenv("ENV") == "production"

	LogLevel = getLogLevel()
)

const (
	LogLevelDebug = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

func getLogLevel() int {
	level := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	switch level {
	case "DEBUG":
		return LogLevelDebug
	case "WARN", "WARNING":
		return LogLevelWarn
	case "ERROR":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

var (
	emailRegex = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	// Colombian plates: AAA123 (cars) or AAA12B (motorcycles)
	plateRegex = regexp.MustCompile(`\b[A-Z]{3}\d{2}[A-Z0-9]\b`)

	uuidRegex = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)
)

// MaskString masks emails, plates, and session ids inside a message.
func MaskString(input string) string {
	if !IsProduction {
		return input
	}

	result := emailRegex.ReplaceAllString(input, "***@***.***")
	result = plateRegex.ReplaceAllStringFunc(result, func(p string) string {
		return p[:3] + "***"
	})
	result = uuidRegex.ReplaceAllStringFunc(result, func(id string) string {
		return id[:8] + "..."
	})
	return result
}

// MaskPlate keeps the letter prefix so related log lines stay correlatable.
func MaskPlate(plate string) string {
	if !IsProduction {
		return plate
	}
	if len(plate) <= 3 {
		return "***"
	}
	return plate[:3] + "***"
}

// MaskEmail masks an email address.
func MaskEmail(email string) string {
	if !IsProduction {
		return email
	}
	return "***@***.***"
}

// MaskSessionID keeps the first 8 characters of a session id.
func MaskSessionID(id string) string {
	if !IsProduction {
		return id
	}
	if len(id) <= 8 {
		return "***"
	}
	return id[:8] + "..."
}

// LogDebug logs at debug level, masked (only when LOG_LEVEL=DEBUG).
func LogDebug(format string, args ...interface{}) {
	if LogLevel > LogLevelDebug {
		return
	}
	log.Printf("[DEBUG] %s", MaskString(fmt.Sprintf(format, args...)))
}

// LogInfo logs at info level, masked.
func LogInfo(format string, args ...interface{}) {
	if LogLevel > LogLevelInfo {
		return
	}
	log.Print(MaskString(fmt.Sprintf(format, args...)))
}

// LogError logs at error level, masked.
func LogError(format string, args ...interface{}) {
	log.Printf("[ERROR] %s", MaskString(fmt.Sprintf(format, args...)))
}
