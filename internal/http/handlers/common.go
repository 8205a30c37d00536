package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// queryLimit parses an optional integer limit. Missing values take the
// endpoint default; unparsable input is a 400 handled by the caller through
// the returned ok flag. Bounds checking happens in the services.
func queryLimit(c *gin.Context, def int) (int, bool) {
	raw := strings.TrimSpace(c.Query("limit"))
	if raw == "" {
		return def, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_limit", "limit harus berupa angka", nil)
		return 0, false
	}
	return limit, true
}

// requireStore aborts with 503 when no backend has been wired yet.
func requireStore(c *gin.Context) bool {
	if activeStore() == nil {
		respondError(c, http.StatusServiceUnavailable, "store_unavailable", "backend belum siap", nil)
		return false
	}
	return true
}
