package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/skillwave/skillwave-api/internal/model"
	"github.com/skillwave/skillwave-api/internal/repository"
)

// JobUsecase defines the interface for job posting and lookup use cases.
type JobUsecase interface {
	Post(ctx context.Context, params PostJobParams) (*model.Job, error)
	Search(ctx context.Context, keyword string) ([]JobWithCompany, error)
	GetByID(ctx context.Context, id string) (*JobDetail, error)
	ListByCreator(ctx context.Context, creatorID string) ([]JobWithCompany, error)
}

// PostJobParams defines the parameters for creating a job posting.
// Requirements is the raw comma-separated string submitted by the client.
type PostJobParams struct {
	Title        string
	Description  string
	Requirements string
	Salary       float64
	Location     string
	JobType      string
	Experience   string
	Position     int
	CompanyID    string
	CreatorID    string
}

// JobWithCompany is a job expanded with its company record.
type JobWithCompany struct {
	Job     *model.Job
	Company *model.Company
}

// JobDetail is a job expanded with its application records.
type JobDetail struct {
	Job          *model.Job
	Applications []*model.Application
}

type jobUsecase struct {
	jobRepo     repository.JobRepository
	companyRepo repository.CompanyRepository
	appRepo     repository.ApplicationRepository
	logger      *zerolog.Logger
}

func NewJobUsecase(
	jobRepo repository.JobRepository,
	companyRepo repository.CompanyRepository,
	appRepo repository.ApplicationRepository,
	logger *zerolog.Logger,
) JobUsecase {
	return &jobUsecase{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
		appRepo:     appRepo,
		logger:      logger,
	}
}

func (u *jobUsecase) Post(ctx context.Context, params PostJobParams) (*model.Job, error) {
	companyID, err := bson.ObjectIDFromHex(params.CompanyID)
	if err != nil {
		return nil, ErrCompanyNotFound
	}

	if _, err := u.companyRepo.GetCompany(ctx, params.CompanyID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCompanyNotFound
		}

		return nil, err
	}

	creatorID, err := bson.ObjectIDFromHex(params.CreatorID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	return u.jobRepo.CreateJob(ctx, &model.Job{
		Title:           params.Title,
		Description:     params.Description,
		Requirements:    splitRequirements(params.Requirements),
		Salary:          params.Salary,
		Location:        params.Location,
		JobType:         params.JobType,
		ExperienceLevel: params.Experience,
		Position:        params.Position,
		Company:         companyID,
		CreatedBy:       creatorID,
	})
}

// splitRequirements turns the comma-separated requirements string into a
// trimmed list, dropping empty entries.
func splitRequirements(raw string) []string {
	parts := strings.Split(raw, ",")
	requirements := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			requirements = append(requirements, trimmed)
		}
	}

	return requirements
}

// Search returns jobs matching the keyword, newest first, each expanded with
// its company. Zero matches is reported as ErrNoJobsFound, not an empty list.
func (u *jobUsecase) Search(ctx context.Context, keyword string) ([]JobWithCompany, error) {
	jobs, err := u.jobRepo.SearchJobs(ctx, keyword)
	if err != nil {
		return nil, err
	}

	return u.withCompanies(ctx, jobs)
}

func (u *jobUsecase) GetByID(ctx context.Context, id string) (*JobDetail, error) {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		// A malformed ID behaves like a missing document.
		return nil, ErrJobNotFound
	}

	job, err := u.jobRepo.GetJob(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrJobNotFound
		}

		return nil, err
	}

	applications, err := u.appRepo.ListApplicationsByJob(ctx, job.ID)
	if err != nil {
		return nil, err
	}

	return &JobDetail{Job: job, Applications: applications}, nil
}

func (u *jobUsecase) ListByCreator(ctx context.Context, creatorID string) ([]JobWithCompany, error) {
	jobs, err := u.jobRepo.ListJobsByCreator(ctx, creatorID)
	if err != nil {
		return nil, err
	}

	return u.withCompanies(ctx, jobs)
}

func (u *jobUsecase) withCompanies(ctx context.Context, jobs []*model.Job) ([]JobWithCompany, error) {
	if len(jobs) == 0 {
		return nil, ErrNoJobsFound
	}

	expanded := make([]JobWithCompany, 0, len(jobs))
	for _, job := range jobs {
		company, err := u.companyRepo.GetCompany(ctx, job.Company.Hex())
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}

		expanded = append(expanded, JobWithCompany{Job: job, Company: company})
	}

	return expanded, nil
}
