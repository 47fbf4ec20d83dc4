package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/skillwave/skillwave-api/internal/httputil"
	"github.com/skillwave/skillwave-api/internal/payload"
	"github.com/skillwave/skillwave-api/internal/repository"
	"github.com/skillwave/skillwave-api/internal/usecase"
)

// CompanyHandler serves company CRUD routes.
type CompanyHandler struct {
	companies usecase.CompanyUsecase
	validator *requestValidator
	logger    *zerolog.Logger
}

func NewCompanyHandler(companies usecase.CompanyUsecase, logger *zerolog.Logger) *CompanyHandler {
	return &CompanyHandler{
		companies: companies,
		validator: newRequestValidator(),
		logger:    logger,
	}
}

// Register handles POST /company/register.
func (h *CompanyHandler) Register(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := sessionClaims(w, r)
	if !ok {
		return
	}

	var req payload.RegisterCompanyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg, ok := h.validator.check(req); !ok {
		httputil.Error(w, http.StatusBadRequest, msg)
		return
	}

	company, err := h.companies.Register(r.Context(), req.Name, userID)
	if err != nil {
		if errors.Is(err, usecase.ErrCompanyAlreadyExists) {
			httputil.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		serverError(w, h.logger, err)
		return
	}

	httputil.JSON(w, http.StatusCreated, httputil.M{
		"message": "Company registered successfully.",
		"success": true,
		"company": payload.FromCompany(company),
	})
}

// List handles GET /company/get: companies created by the current user.
func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := sessionClaims(w, r)
	if !ok {
		return
	}

	results, err := h.companies.ListByCreator(r.Context(), userID)
	if err != nil {
		serverError(w, h.logger, err)
		return
	}
	if len(results) == 0 {
		httputil.Error(w, http.StatusNotFound, "Companies not found.")
		return
	}

	companies := make([]*payload.CompanyResponse, 0, len(results))
	for _, company := range results {
		companies = append(companies, payload.FromCompany(company))
	}

	httputil.JSON(w, http.StatusOK, httputil.M{
		"companies": companies,
		"success":   true,
	})
}

// GetByID handles GET /company/get/{id}.
func (h *CompanyHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	company, err := h.companies.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, usecase.ErrCompanyNotFound) {
			httputil.Error(w, http.StatusNotFound, "Company not found.")
			return
		}

		serverError(w, h.logger, err)
		return
	}

	httputil.JSON(w, http.StatusOK, httputil.M{
		"company": payload.FromCompany(company),
		"success": true,
	})
}

// Update handles PUT /company/update/{id} with partial-update semantics.
func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req payload.UpdateCompanyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	company, err := h.companies.Update(r.Context(), chi.URLParam(r, "id"), repository.UpdateCompanyParams{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		Location:    req.Location,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrCompanyNotFound) {
			httputil.Error(w, http.StatusNotFound, "Company not found.")
			return
		}

		serverError(w, h.logger, err)
		return
	}

	httputil.JSON(w, http.StatusOK, httputil.M{
		"message": "Company information updated.",
		"success": true,
		"company": payload.FromCompany(company),
	})
}
