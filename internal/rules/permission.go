package rules

import (
	"net/http"

	"github.com/LucasLevingston/AneisDePoder/internal/errs"
)

// CheckPermission verifies that the acting user is the ring's bearer.
// Exact id equality, no hierarchy and no admin override. The violation is
// answered with 401, not 403; callers depend on that status.
func CheckPermission(bearerID, userID string) error {
	if bearerID != userID {
		return errs.New(errs.KindForbidden, http.StatusUnauthorized, "Unauthorized to perform this action")
	}
	return nil
}
