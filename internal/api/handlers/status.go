package handlers

import (
	"net/http"
	"strings"
)

// httpStatusFor maps a ledger operation's (success, message) pair to the
// HTTP status §7 specifies. A rejection is 400 (validation, insufficient
// funds, or a replication failure reported as "Backup error: …", whether
// the backup rejected the write or could not be reached); otherwise a
// message carrying the engine's own "<operation> failed: …"
// persistence-failure wording is 500, since that is the one case internal
// to the engine rather than a rejected request.
func httpStatusFor(success bool, message string) int {
	if success {
		return http.StatusOK
	}
	if strings.HasPrefix(message, "Backup error: ") {
		return http.StatusBadRequest
	}
	if strings.Contains(message, " failed: ") {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}
