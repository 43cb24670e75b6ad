package domain

import (
	"fmt"

	appErrors "tradedeck/internal/errors"
)

func invalidStatusError(status string) error {
	return appErrors.New(appErrors.CodeInvalidStatus, fmt.Sprintf("invalid status: %s", status), nil)
}

func invalidTransitionError(from, to Status) error {
	return appErrors.New(appErrors.CodeInvalidTransition, fmt.Sprintf("cannot transition from %s to %s", from, to), nil)
}
