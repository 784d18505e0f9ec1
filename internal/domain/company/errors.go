package company

import "errors"

var ErrInvalidCompanyName = errors.New("company name cannot be empty")
