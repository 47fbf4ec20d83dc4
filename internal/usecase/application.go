package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/skillwave/skillwave-api/internal/model"
	"github.com/skillwave/skillwave-api/internal/notifier"
	"github.com/skillwave/skillwave-api/internal/repository"
)

const notifyTimeout = 10 * time.Second

// ApplicationUsecase defines the interface for the job application workflow.
type ApplicationUsecase interface {
	Apply(ctx context.Context, jobID, applicantID string) (*model.Application, error)
	ListForApplicant(ctx context.Context, applicantID string) ([]AppliedJob, error)
	ListForJob(ctx context.Context, jobID string) (*model.Job, []JobApplicant, error)
	SetStatus(ctx context.Context, applicationID, status, callerID, callerRole string) (*model.Application, error)
	ListActivities(ctx context.Context) ([]Activity, error)
}

// AppliedJob is an application expanded with its job and that job's company.
type AppliedJob struct {
	Application *model.Application
	Job         *model.Job
	Company     *model.Company
}

// JobApplicant is an application expanded with its applicant.
type JobApplicant struct {
	Application *model.Application
	Applicant   *model.User
}

// Activity is a fully expanded application for the admin dashboard feed.
type Activity struct {
	Application *model.Application
	Job         *model.Job
	Company     *model.Company
	Applicant   *model.User
}

type applicationUsecase struct {
	appRepo     repository.ApplicationRepository
	jobRepo     repository.JobRepository
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	notifier    notifier.Notifier
	logger      *zerolog.Logger
}

func NewApplicationUsecase(
	appRepo repository.ApplicationRepository,
	jobRepo repository.JobRepository,
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
	n notifier.Notifier,
	logger *zerolog.Logger,
) ApplicationUsecase {
	return &applicationUsecase{
		appRepo:     appRepo,
		jobRepo:     jobRepo,
		userRepo:    userRepo,
		companyRepo: companyRepo,
		notifier:    n,
		logger:      logger,
	}
}

// Apply records one application per (job, applicant) pair. The existence
// check supplies the friendly conflict message; the repository's unique
// compound index backstops concurrent duplicates, surfacing as the same
// conflict. The insert and the job-side append are not transactional: a
// failure between them leaves the application unlinked from the job, and a
// retry reports the conflict.
func (u *applicationUsecase) Apply(ctx context.Context, jobID, applicantID string) (*model.Application, error) {
	applicantOID, err := bson.ObjectIDFromHex(applicantID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if _, err := bson.ObjectIDFromHex(jobID); err != nil {
		return nil, ErrJobNotFound
	}

	job, err := u.jobRepo.GetJob(ctx, jobID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrJobNotFound
		}

		return nil, err
	}

	if _, err := u.appRepo.GetApplicationByJobAndApplicant(ctx, job.ID, applicantOID); err == nil {
		return nil, ErrAlreadyApplied
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	application, err := u.appRepo.CreateApplication(ctx, &model.Application{
		Job:       job.ID,
		Applicant: applicantOID,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrAlreadyApplied
		}

		return nil, err
	}

	if err := u.jobRepo.AppendApplication(ctx, jobID, application.ID); err != nil {
		return nil, err
	}

	u.notifyRecruiter(ctx, job, applicantID)

	return application, nil
}

// notifyRecruiter sends the fire-and-forget application notification to the
// job's creator. Missing phone numbers and delivery failures are logged and
// never affect the apply request.
func (u *applicationUsecase) notifyRecruiter(ctx context.Context, job *model.Job, applicantID string) {
	applicantName := applicantID
	if applicant, err := u.userRepo.GetUser(ctx, applicantID); err == nil {
		applicantName = applicant.FullName
	}

	recruiter, err := u.userRepo.GetUser(ctx, job.CreatedBy.Hex())
	if err != nil || recruiter.PhoneNumber == "" {
		u.logger.Warn().
			Str("job_id", job.ID.Hex()).
			Msg("recruiter phone number not found, skipping notification")
		return
	}

	message := fmt.Sprintf("%s has applied for the job: %s.", applicantName, job.Title)
	u.send(recruiter.PhoneNumber, message)
}

// send delivers a notification in the background with its own timeout.
func (u *applicationUsecase) send(phone, message string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := u.notifier.Notify(ctx, phone, message); err != nil {
			u.logger.Error().Err(err).Msg("failed to deliver notification")
		}
	}()
}

func (u *applicationUsecase) ListForApplicant(ctx context.Context, applicantID string) ([]AppliedJob, error) {
	applications, err := u.appRepo.ListApplicationsByApplicant(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	if len(applications) == 0 {
		return nil, ErrNoApplicationsFound
	}

	applied := make([]AppliedJob, 0, len(applications))
	for _, application := range applications {
		entry := AppliedJob{Application: application}

		job, err := u.jobRepo.GetJob(ctx, application.Job.Hex())
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
		entry.Job = job

		if job != nil {
			company, err := u.companyRepo.GetCompany(ctx, job.Company.Hex())
			if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
				return nil, err
			}
			entry.Company = company
		}

		applied = append(applied, entry)
	}

	return applied, nil
}

func (u *applicationUsecase) ListForJob(ctx context.Context, jobID string) (*model.Job, []JobApplicant, error) {
	if _, err := bson.ObjectIDFromHex(jobID); err != nil {
		return nil, nil, ErrJobNotFound
	}

	job, err := u.jobRepo.GetJob(ctx, jobID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil, ErrJobNotFound
		}

		return nil, nil, err
	}

	applications, err := u.appRepo.ListApplicationsByJob(ctx, job.ID)
	if err != nil {
		return nil, nil, err
	}

	applicants := make([]JobApplicant, 0, len(applications))
	for _, application := range applications {
		applicant, err := u.userRepo.GetUser(ctx, application.Applicant.Hex())
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil, err
		}

		applicants = append(applicants, JobApplicant{Application: application, Applicant: applicant})
	}

	return job, applicants, nil
}

// SetStatus overwrites an application's status with the trimmed, lowercased
// input. Any non-empty value is accepted. Only the creator of the
// application's job or an admin may perform the update.
func (u *applicationUsecase) SetStatus(
	ctx context.Context,
	applicationID, status, callerID, callerRole string,
) (*model.Application, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, ErrStatusRequired
	}

	if _, err := bson.ObjectIDFromHex(applicationID); err != nil {
		return nil, ErrApplicationNotFound
	}

	application, err := u.appRepo.GetApplication(ctx, applicationID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrApplicationNotFound
		}

		return nil, err
	}

	job, err := u.jobRepo.GetJob(ctx, application.Job.Hex())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrJobNotFound
		}

		return nil, err
	}

	if callerRole != model.RoleAdmin && job.CreatedBy.Hex() != callerID {
		return nil, ErrNotJobOwner
	}

	updated, err := u.appRepo.UpdateApplicationStatus(ctx, applicationID, strings.ToLower(status))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrApplicationNotFound
		}

		return nil, err
	}

	u.notifyApplicant(ctx, updated, job)

	return updated, nil
}

// notifyApplicant tells the applicant about the status change, fire-and-forget.
func (u *applicationUsecase) notifyApplicant(ctx context.Context, application *model.Application, job *model.Job) {
	applicant, err := u.userRepo.GetUser(ctx, application.Applicant.Hex())
	if err != nil || applicant.PhoneNumber == "" {
		u.logger.Warn().
			Str("application_id", application.ID.Hex()).
			Msg("applicant phone number not found, skipping notification")
		return
	}

	message := fmt.Sprintf("Your application for %s is now %s.", job.Title, application.Status)
	u.send(applicant.PhoneNumber, message)
}

func (u *applicationUsecase) ListActivities(ctx context.Context) ([]Activity, error) {
	applications, err := u.appRepo.ListApplications(ctx)
	if err != nil {
		return nil, err
	}
	if len(applications) == 0 {
		return nil, ErrNoApplicationsFound
	}

	activities := make([]Activity, 0, len(applications))
	for _, application := range applications {
		activity := Activity{Application: application}

		if job, err := u.jobRepo.GetJob(ctx, application.Job.Hex()); err == nil {
			activity.Job = job
			if company, err := u.companyRepo.GetCompany(ctx, job.Company.Hex()); err == nil {
				activity.Company = company
			}
		}

		if applicant, err := u.userRepo.GetUser(ctx, application.Applicant.Hex()); err == nil {
			activity.Applicant = applicant
		}

		activities = append(activities, activity)
	}

	return activities, nil
}
