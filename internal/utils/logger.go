package utils

import (
	"log"
	"strings"
)

// LogEvent prints one standardized line per notable action, tagged with the
// owning module and the request id. Message is a short summary, never a
// payload dump.
func LogEvent(requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	log.Printf("[%s] action=%s request_id=%s msg=%s", strings.ToUpper(module), action, req, message)
}
