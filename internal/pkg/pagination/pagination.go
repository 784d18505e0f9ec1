// Package pagination parses offset/limit query parameters.
package pagination

import (
	"strconv"

	"github.com/cmlabs-hris/collections-backend-go/internal/pkg/validator"
)

const (
	DefaultOffset = 0
	DefaultLimit  = 10
)

type PageRequest struct {
	Offset int
	Limit  int
}

func Default() PageRequest {
	return PageRequest{Offset: DefaultOffset, Limit: DefaultLimit}
}

// Parse reads offset and limit from raw query values. Empty values fall back to the defaults.
func Parse(offset, limit string) (PageRequest, error) {
	page := Default()
	var errs validator.ValidationErrors

	if offset != "" {
		n, err := strconv.Atoi(offset)
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: "offset", Message: "offset must be an integer"})
		} else {
			page.Offset = n
		}
	}
	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: "limit", Message: "limit must be an integer"})
		} else {
			page.Limit = n
		}
	}

	if len(errs) > 0 {
		return PageRequest{}, errs
	}
	if err := page.Validate(); err != nil {
		return PageRequest{}, err
	}
	return page, nil
}

func (p PageRequest) Validate() error {
	var errs validator.ValidationErrors

	if p.Offset < 0 {
		errs = append(errs, validator.ValidationError{Field: "offset", Message: "offset must not be negative"})
	}
	if p.Limit <= 0 {
		errs = append(errs, validator.ValidationError{Field: "limit", Message: "limit must be greater than 0"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
