package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/skillwave/skillwave-api/internal/httputil"
	"github.com/skillwave/skillwave-api/internal/payload"
	"github.com/skillwave/skillwave-api/internal/usecase"
)

// ApplicationHandler serves the job application workflow routes.
type ApplicationHandler struct {
	applications usecase.ApplicationUsecase
	logger       *zerolog.Logger
}

func NewApplicationHandler(applications usecase.ApplicationUsecase, logger *zerolog.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		applications: applications,
		logger:       logger,
	}
}

// Apply handles POST /application/apply/{id}.
func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := sessionClaims(w, r)
	if !ok {
		return
	}

	application, err := h.applications.Apply(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAlreadyApplied):
			httputil.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, usecase.ErrJobNotFound):
			httputil.Error(w, http.StatusNotFound, "Job not found.")
		case errors.Is(err, usecase.ErrUserNotFound):
			httputil.Error(w, http.StatusNotFound, "Job seeker not found.")
		default:
			serverError(w, h.logger, err)
		}
		return
	}

	httputil.JSON(w, http.StatusCreated, httputil.M{
		"message":     "Job applied successfully.",
		"success":     true,
		"application": payload.FromApplication(application),
	})
}

// AppliedJobs handles GET /application/get for the current session user,
// each application expanded with its job and that job's company.
func (h *ApplicationHandler) AppliedJobs(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := sessionClaims(w, r)
	if !ok {
		return
	}

	applied, err := h.applications.ListForApplicant(r.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrNoApplicationsFound) {
			httputil.Error(w, http.StatusNotFound, "No applications found.")
			return
		}

		serverError(w, h.logger, err)
		return
	}

	applications := make([]*payload.ApplicationResponse, 0, len(applied))
	for _, entry := range applied {
		application := payload.FromApplication(entry.Application)
		if entry.Job != nil {
			application.Job = payload.FromJob(entry.Job)
			application.Job.Company = payload.FromCompany(entry.Company)
		}
		applications = append(applications, application)
	}

	httputil.JSON(w, http.StatusOK, httputil.M{
		"applications": applications,
		"success":      true,
	})
}

// Applicants handles GET /application/{id}/applicants: the job with each
// application expanded with its applicant.
func (h *ApplicationHandler) Applicants(w http.ResponseWriter, r *http.Request) {
	job, applicants, err := h.applications.ListForJob(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, usecase.ErrJobNotFound) {
			httputil.Error(w, http.StatusNotFound, "Job not found.")
			return
		}

		serverError(w, h.logger, err)
		return
	}

	jobResp := payload.FromJob(job)
	for _, entry := range applicants {
		application := payload.FromApplication(entry.Application)
		if entry.Applicant != nil {
			application.Applicant = payload.FromUser(entry.Applicant)
		}
		jobResp.Applications = append(jobResp.Applications, application)
	}

	httputil.JSON(w, http.StatusOK, httputil.M{
		"job":     jobResp,
		"success": true,
	})
}

// UpdateStatus handles POST /application/status/{id}/update.
func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := sessionClaims(w, r)
	if !ok {
		return
	}

	var req payload.UpdateStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	application, err := h.applications.SetStatus(r.Context(), chi.URLParam(r, "id"), req.Status, userID, role)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrStatusRequired):
			httputil.Error(w, http.StatusBadRequest, "Status is required.")
		case errors.Is(err, usecase.ErrApplicationNotFound):
			httputil.Error(w, http.StatusNotFound, "Application not found.")
		case errors.Is(err, usecase.ErrJobNotFound):
			httputil.Error(w, http.StatusNotFound, "Job not found.")
		case errors.Is(err, usecase.ErrNotJobOwner):
			httputil.Error(w, http.StatusForbidden, err.Error())
		default:
			serverError(w, h.logger, err)
		}
		return
	}

	httputil.JSON(w, http.StatusOK, httputil.M{
		"message":     "Status updated successfully.",
		"success":     true,
		"application": payload.FromApplication(application),
	})
}

// Activities handles GET /user/admin/activities: the fully expanded
// application feed for the admin dashboard.
func (h *ApplicationHandler) Activities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.applications.ListActivities(r.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrNoApplicationsFound) {
			httputil.Error(w, http.StatusNotFound, "No applications found.")
			return
		}

		serverError(w, h.logger, err)
		return
	}

	applications := make([]*payload.ApplicationResponse, 0, len(activities))
	for _, activity := range activities {
		application := payload.FromApplication(activity.Application)
		if activity.Job != nil {
			application.Job = payload.FromJob(activity.Job)
			application.Job.Company = payload.FromCompany(activity.Company)
		}
		if activity.Applicant != nil {
			application.Applicant = payload.FromUser(activity.Applicant)
		}
		applications = append(applications, application)
	}

	httputil.JSON(w, http.StatusOK, httputil.M{
		"applications": applications,
		"success":      true,
	})
}
