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

// JobHandler serves job posting and lookup routes.
type JobHandler struct {
	jobs      usecase.JobUsecase
	validator *requestValidator
	logger    *zerolog.Logger
}

func NewJobHandler(jobs usecase.JobUsecase, logger *zerolog.Logger) *JobHandler {
	return &JobHandler{
		jobs:      jobs,
		validator: newRequestValidator(),
		logger:    logger,
	}
}

// Post handles POST /job/post. All nine fields are required.
func (h *JobHandler) Post(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := sessionClaims(w, r)
	if !ok {
		return
	}

	var req payload.PostJobRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg, ok := h.validator.check(req); !ok {
		httputil.Error(w, http.StatusBadRequest, msg)
		return
	}

	job, err := h.jobs.Post(r.Context(), usecase.PostJobParams{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Salary:       float64(req.Salary),
		Location:     req.Location,
		JobType:      req.JobType,
		Experience:   req.Experience,
		Position:     int(req.Position),
		CompanyID:    req.CompanyID,
		CreatorID:    userID,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrCompanyNotFound) {
			httputil.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		serverError(w, h.logger, err)
		return
	}

	httputil.JSON(w, http.StatusCreated, httputil.M{
		"message": "Job created successfully.",
		"success": true,
		"job":     payload.FromJob(job),
	})
}

// Search handles GET /job/get?keyword=. Zero matches is a 404, not an empty
// success, matching the API's established shape.
func (h *JobHandler) Search(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")

	results, err := h.jobs.Search(r.Context(), keyword)
	if err != nil {
		if errors.Is(err, usecase.ErrNoJobsFound) {
			httputil.Error(w, http.StatusNotFound, "No jobs found.")
			return
		}

		serverError(w, h.logger, err)
		return
	}

	httputil.JSON(w, http.StatusOK, httputil.M{
		"jobs":    jobsWithCompanies(results),
		"success": true,
	})
}

// GetByID handles GET /job/get/{id}, expanding the job's applications.
func (h *JobHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	detail, err := h.jobs.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, usecase.ErrJobNotFound) {
			httputil.Error(w, http.StatusNotFound, "Job not found.")
			return
		}

		serverError(w, h.logger, err)
		return
	}

	job := payload.FromJob(detail.Job)
	for _, application := range detail.Applications {
		job.Applications = append(job.Applications, payload.FromApplication(application))
	}

	httputil.JSON(w, http.StatusOK, httputil.M{
		"job":     job,
		"success": true,
	})
}

// RecruiterJobs handles GET /job/getrecruiterjobs for the current session user.
func (h *JobHandler) RecruiterJobs(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := sessionClaims(w, r)
	if !ok {
		return
	}

	results, err := h.jobs.ListByCreator(r.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrNoJobsFound) {
			httputil.Error(w, http.StatusNotFound, "No jobs found.")
			return
		}

		serverError(w, h.logger, err)
		return
	}

	httputil.JSON(w, http.StatusOK, httputil.M{
		"jobs":    jobsWithCompanies(results),
		"success": true,
	})
}

func jobsWithCompanies(results []usecase.JobWithCompany) []*payload.JobResponse {
	jobs := make([]*payload.JobResponse, 0, len(results))
	for _, result := range results {
		job := payload.FromJob(result.Job)
		job.Company = payload.FromCompany(result.Company)
		jobs = append(jobs, job)
	}

	return jobs
}
