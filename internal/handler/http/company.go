package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/collections-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/collections-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/collections-backend-go/internal/pkg/pagination"
)

type CompanyHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	companyService company.CompanyService
}

// List implements CompanyHandler.
func (c *CompanyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, err := pagination.Parse(query.Get("offset"), query.Get("limit"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	batch, err := c.companyService.List(r.Context(), page)
	if err != nil {
		slog.Error("List companies error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, batch)
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &CompanyHandlerImpl{
		companyService: companyService,
	}
}
