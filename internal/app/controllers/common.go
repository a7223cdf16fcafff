package controllers

import (
	"fmt"
	"strconv"

	"github.com/kaan/campora/internal/pkg/apperrors"
)

var errInvalidID = fmt.Errorf("%w: id must be a positive integer", apperrors.ErrValidationFailed)

// parsePositive parses a decimal string as a positive int64.
func parsePositive(v string) (int64, error) {
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
