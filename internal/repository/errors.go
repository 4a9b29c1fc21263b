package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/resqnet/sos_coordination_system/internal/models"
)

// storeErr wraps a database error, classifying timeouts as store outage so
// callers can distinguish "the store is down" from a plain query failure.
func storeErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, models.ErrStoreUnavailable)
	}
	return fmt.Errorf("%s: %w", op, err)
}
