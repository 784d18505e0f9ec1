package collection

import (
	"strings"

	"github.com/cmlabs-hris/collections-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/collections-backend-go/internal/pkg/validator"
)

const (
	MessageCompaniesUpdated    = "Companies updated in collection successfully"
	MessageAllCompaniesUpdated = "All companies updated in collection successfully"
)

type CollectionMetadataResponse struct {
	ID   string `json:"id"`
	Name string `json:"collection_name"`
}

type CollectionResponse struct {
	ID        string                    `json:"id"`
	Name      string                    `json:"collection_name"`
	Companies []company.CompanyResponse `json:"companies"`
	Total     int64                     `json:"total"`
}

type UpdateCompaniesRequest struct {
	Companies []int64 `json:"companies"`
}

func (r *UpdateCompaniesRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Companies == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "companies",
			Message: "companies is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAllCompaniesRequest struct {
	UpdateAll *bool `json:"update_all"`
}

func (r *UpdateAllCompaniesRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.UpdateAll == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "update_all",
			Message: "update_all is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ShouldAddAll reports whether the caller asked to like every company.
func (r UpdateAllCompaniesRequest) ShouldAddAll() bool {
	return r.UpdateAll != nil && *r.UpdateAll
}

// ParseCollectionID validates a collection id from the URL and returns its canonical form.
func ParseCollectionID(raw string) (string, error) {
	if !validator.IsValidUUID(raw) {
		return "", validator.ValidationErrors{{
			Field:   "collection_id",
			Message: "collection_id must be a valid UUID",
		}}
	}
	return strings.ToLower(raw), nil
}
