package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/collections-backend-go/internal/domain/collection"
	"github.com/cmlabs-hris/collections-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/collections-backend-go/internal/pkg/pagination"
	"github.com/go-chi/chi/v5"
)

type CollectionHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	UpdateCompanies(w http.ResponseWriter, r *http.Request)
	UpdateAllCompanies(w http.ResponseWriter, r *http.Request)
}

type CollectionHandlerImpl struct {
	collectionService collection.CollectionService
}

func NewCollectionHandler(collectionService collection.CollectionService) CollectionHandler {
	return &CollectionHandlerImpl{
		collectionService: collectionService,
	}
}

// List implements CollectionHandler.
func (h *CollectionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	collections, err := h.collectionService.List(r.Context())
	if err != nil {
		slog.Error("List collections error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, collections)
}

// GetByID implements CollectionHandler.
func (h *CollectionHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := collection.ParseCollectionID(chi.URLParam(r, "collectionID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	query := r.URL.Query()
	page, err := pagination.Parse(query.Get("offset"), query.Get("limit"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.collectionService.GetByID(r.Context(), id, page)
	if err != nil {
		slog.Error("Get collection error", "error", err, "collection_id", id)
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// UpdateCompanies implements CollectionHandler.
func (h *CollectionHandlerImpl) UpdateCompanies(w http.ResponseWriter, r *http.Request) {
	id, err := collection.ParseCollectionID(chi.URLParam(r, "collectionID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req collection.UpdateCompaniesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update companies decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.collectionService.UpdateCompanies(r.Context(), id, req); err != nil {
		slog.Error("Update companies service error", "error", err, "collection_id", id)
		response.HandleError(w, err)
		return
	}

	response.Message(w, collection.MessageCompaniesUpdated)
}

// UpdateAllCompanies implements CollectionHandler.
func (h *CollectionHandlerImpl) UpdateAllCompanies(w http.ResponseWriter, r *http.Request) {
	id, err := collection.ParseCollectionID(chi.URLParam(r, "collectionID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req collection.UpdateAllCompaniesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update all companies decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.collectionService.UpdateAllCompanies(r.Context(), id, req); err != nil {
		slog.Error("Update all companies service error", "error", err, "collection_id", id)
		response.HandleError(w, err)
		return
	}

	response.Message(w, collection.MessageAllCompaniesUpdated)
}
