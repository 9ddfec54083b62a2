package summary

import (
	"errors"
	"fmt"
	"strings"

	"github.com/maxbolgarin/gitpulse/internal/model"
)

// User-facing messages for the small error taxonomy surfaced by the workflow.
const (
	fetchFailedMessage = "Failed to fetch data from GitHub. Please try again."
	timeoutMessage     = "Request timed out. Please try again."
)

// MapUserFacingError translates a low-level pipeline error into a
// user-facing one. It is applied exactly once, at the outermost Effect,
// so messages are never double-wrapped. Unrecognized errors pass through
// unchanged to avoid masking unanticipated failure modes.
func MapUserFacingError(err error) error {
	var validationErrs model.ValidationErrors
	if errors.As(err, &validationErrs) {
		return fmt.Errorf("Validation failed: %s", validationErrs.Error())
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "fetch") || strings.Contains(msg, "network"):
		return errors.New(fetchFailedMessage)
	case strings.Contains(msg, "timeout"):
		return errors.New(timeoutMessage)
	default:
		return err
	}
}
