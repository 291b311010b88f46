package services

import "github.com/maxaizer/job-platform/pkg/apperrors"

const defaultPageLimit = 100

func validatePagination(limit, offset int) error {
	if limit < 1 || limit > 1000 {
		return apperrors.Validation("limit must be between 1 and 1000")
	}
	if offset < 0 {
		return apperrors.Validation("offset must be non-negative")
	}
	return nil
}
