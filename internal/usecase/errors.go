package usecase

import "errors"

// Sentinel errors handlers map to HTTP status codes. Anything not in this
// list is treated as a server error: logged, answered with a generic body.
var (
	ErrUserAlreadyExists    = errors.New("user with this email or phone number already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserNotFound         = errors.New("user not found")
	ErrResumeRequired       = errors.New("resume is required")
	ErrProofRequired        = errors.New("recruiter proof is required")
	ErrCompanyNameRequired  = errors.New("company name is required for recruiters")
	ErrCompanyNotFound      = errors.New("company not found")
	ErrCompanyAlreadyExists = errors.New("company with this name already exists")
	ErrJobNotFound          = errors.New("job not found")
	ErrNoJobsFound          = errors.New("no jobs found")
	ErrAlreadyApplied       = errors.New("you have already applied for this job")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrNoApplicationsFound  = errors.New("no applications found")
	ErrStatusRequired       = errors.New("status is required")
	ErrNotJobOwner          = errors.New("only the job's recruiter or an admin may update application status")
)
