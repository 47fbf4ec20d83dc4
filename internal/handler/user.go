package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/skillwave/skillwave-api/internal/httputil"
	"github.com/skillwave/skillwave-api/internal/middleware"
	"github.com/skillwave/skillwave-api/internal/payload"
	"github.com/skillwave/skillwave-api/internal/upload"
	"github.com/skillwave/skillwave-api/internal/usecase"
)

// UserHandler serves registration, authentication and account routes.
type UserHandler struct {
	account   usecase.AccountUsecase
	saver     *upload.Saver
	validator *requestValidator
	tokenTTL  time.Duration
	logger    *zerolog.Logger
}

func NewUserHandler(
	account usecase.AccountUsecase,
	saver *upload.Saver,
	tokenTTL time.Duration,
	logger *zerolog.Logger,
) *UserHandler {
	return &UserHandler{
		account:   account,
		saver:     saver,
		validator: newRequestValidator(),
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Register handles POST /user/register: multipart fields plus the
// role-dependent document (resume or recruiter proof).
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	req := payload.RegisterRequest{
		FullName:    r.FormValue("fullname"),
		Email:       r.FormValue("email"),
		PhoneNumber: r.FormValue("phoneNumber"),
		Password:    r.FormValue("password"),
		Role:        r.FormValue("role"),
		Company:     r.FormValue("company"),
	}
	if msg, ok := h.validator.check(req); !ok {
		httputil.Error(w, http.StatusBadRequest, msg)
		return
	}

	stored, ok := h.saveOptionalFile(w, r)
	if !ok {
		return
	}

	user, err := h.account.Register(r.Context(), usecase.RegisterParams{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		Role:        req.Role,
		CompanyName: req.Company,
		File:        stored,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserAlreadyExists),
			errors.Is(err, usecase.ErrResumeRequired),
			errors.Is(err, usecase.ErrProofRequired),
			errors.Is(err, usecase.ErrCompanyNameRequired):
			httputil.Error(w, http.StatusBadRequest, err.Error())
		default:
			serverError(w, h.logger, err)
		}
		return
	}

	httputil.JSON(w, http.StatusCreated, httputil.M{
		"message": "User registered successfully.",
		"success": true,
		"user":    payload.FromUser(user),
	})
}

// saveOptionalFile persists the "file" part when present. A missing part is
// fine here; role-conditional requirements are enforced by the usecase.
func (h *UserHandler) saveOptionalFile(w http.ResponseWriter, r *http.Request) (*upload.StoredFile, bool) {
	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, true
		}

		httputil.Error(w, http.StatusBadRequest, "invalid file upload")
		return nil, false
	}
	defer file.Close()

	stored, err := h.saver.Save("file", header)
	if err != nil {
		if errors.Is(err, upload.ErrUnsupportedFileType) {
			httputil.Error(w, http.StatusBadRequest, err.Error())
			return nil, false
		}

		serverError(w, h.logger, err)
		return nil, false
	}

	return stored, true
}

// Login handles POST /user/login and sets the session cookie.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req payload.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg, ok := h.validator.check(req); !ok {
		httputil.Error(w, http.StatusBadRequest, msg)
		return
	}

	user, token, err := h.account.Login(r.Context(), usecase.LoginParams{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			httputil.Error(w, http.StatusBadRequest, "invalid credentials")
			return
		}

		serverError(w, h.logger, err)
		return
	}

	h.setSessionCookie(w, token)
	httputil.JSON(w, http.StatusOK, httputil.M{
		"message": "Login successful.",
		"success": true,
		"user":    payload.FromUser(user),
		"token":   token,
	})
}

// Logout handles GET /user/logout by instructing the client to drop the cookie.
func (h *UserHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	httputil.Message(w, http.StatusOK, "Logout successful.", true)
}

// UpdateProfile handles POST /user/profile/update. Provided fields overwrite
// the stored ones; omitted fields are left unchanged. Accepts either a JSON
// body or a multipart form with an optional replacement resume.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := sessionClaims(w, r)
	if !ok {
		return
	}

	var req payload.UpdateProfileRequest
	var stored *upload.StoredFile

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			httputil.Error(w, http.StatusBadRequest, "invalid multipart form")
			return
		}

		req = payload.UpdateProfileRequest{
			FullName: r.FormValue("fullname"),
			Bio:      r.FormValue("bio"),
			Skills:   r.FormValue("skills"),
			Resume:   r.FormValue("resume"),
		}

		if stored, ok = h.saveOptionalFile(w, r); !ok {
			return
		}
	} else if !decodeJSON(w, r, &req) {
		return
	}

	params := usecase.UpdateProfileParams{}
	if req.FullName != "" {
		params.FullName = &req.FullName
	}
	if req.Bio != "" {
		params.Bio = &req.Bio
	}
	if req.Skills != "" {
		skills := splitCommaList(req.Skills)
		params.Skills = &skills
	}
	if req.Resume != "" {
		params.Resume = &req.Resume
	}
	if stored != nil {
		params.Resume = &stored.Path
	}

	user, err := h.account.UpdateProfile(r.Context(), userID, params)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			httputil.Error(w, http.StatusNotFound, "user not found")
			return
		}

		serverError(w, h.logger, err)
		return
	}

	httputil.JSON(w, http.StatusOK, httputil.M{
		"message": "Profile updated successfully.",
		"success": true,
		"user":    payload.FromUser(user),
	})
}

// AdminSignup handles POST /user/admin/signup.
func (h *UserHandler) AdminSignup(w http.ResponseWriter, r *http.Request) {
	var req payload.AdminAuthRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg, ok := h.validator.check(req); !ok {
		httputil.Error(w, http.StatusBadRequest, msg)
		return
	}

	if _, err := h.account.AdminSignup(r.Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, usecase.ErrUserAlreadyExists) {
			httputil.Error(w, http.StatusBadRequest, "admin with this email already exists")
			return
		}

		serverError(w, h.logger, err)
		return
	}

	httputil.Message(w, http.StatusCreated, "Admin registered successfully.", true)
}

// AdminLogin handles POST /user/admin/login.
func (h *UserHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req payload.AdminAuthRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg, ok := h.validator.check(req); !ok {
		httputil.Error(w, http.StatusBadRequest, msg)
		return
	}

	_, token, err := h.account.AdminLogin(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			httputil.Error(w, http.StatusBadRequest, "invalid credentials")
			return
		}

		serverError(w, h.logger, err)
		return
	}

	h.setSessionCookie(w, token)
	httputil.JSON(w, http.StatusOK, httputil.M{
		"message": "Login successful.",
		"success": true,
		"token":   token,
	})
}

// JobSeekers handles GET /user/admin/job-seekers.
func (h *UserHandler) JobSeekers(w http.ResponseWriter, r *http.Request) {
	users, err := h.account.ListJobSeekers(r.Context())
	if err != nil {
		serverError(w, h.logger, err)
		return
	}

	jobSeekers := make([]*payload.UserResponse, 0, len(users))
	for _, user := range users {
		jobSeekers = append(jobSeekers, payload.FromUser(user))
	}

	httputil.JSON(w, http.StatusOK, httputil.M{
		"jobSeekers": jobSeekers,
		"success":    true,
	})
}

// DeleteJobSeeker handles DELETE /user/admin/job-seekers/{id}.
func (h *UserHandler) DeleteJobSeeker(w http.ResponseWriter, r *http.Request) {
	if err := h.account.DeleteJobSeeker(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			httputil.Error(w, http.StatusNotFound, "job seeker not found")
			return
		}

		serverError(w, h.logger, err)
		return
	}

	httputil.Message(w, http.StatusOK, "Job seeker deleted successfully.", true)
}

func (h *UserHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(h.tokenTTL.Seconds()),
	})
}

// splitCommaList splits a comma-separated form value into trimmed entries.
func splitCommaList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}
