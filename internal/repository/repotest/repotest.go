// Package repotest provides in-memory repository implementations for tests.
// They mirror the mongo repositories' contracts: mongo.ErrNoDocuments on
// misses and duplicate-key write errors on unique index violations.
package repotest

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/skillwave/skillwave-api/internal/model"
	"github.com/skillwave/skillwave-api/internal/repository"
)

// duplicateKeyError mimics the server-side unique index violation.
func duplicateKeyError() error {
	return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
}

// UserRepo is an in-memory repository.UserRepository.
type UserRepo struct {
	mu    sync.Mutex
	users []*model.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{}
}

// CreateUser enforces the unique email index and the partial unique phone
// index: empty phone numbers are not indexed and never collide.
func (r *UserRepo) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email || (user.PhoneNumber != "" && existing.PhoneNumber == user.PhoneNumber) {
			return nil, duplicateKeyError()
		}
	}

	user.ID = bson.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users = append(r.users, user)

	return user, nil
}

func (r *UserRepo) GetUser(_ context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.ID.Hex() == id {
			return user, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

func (r *UserRepo) GetUserByEmailOrPhone(_ context.Context, email, phoneNumber string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email || user.PhoneNumber == phoneNumber {
			return user, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

func (r *UserRepo) GetUserByEmailAndRole(_ context.Context, email, role string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email && user.Role == role {
			return user, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

func (r *UserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

func (r *UserRepo) UpdateUser(
	_ context.Context,
	id string,
	params repository.UpdateUserParams,
) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.ID.Hex() != id {
			continue
		}

		if params.FullName != nil {
			user.FullName = *params.FullName
		}
		if params.Bio != nil || params.Skills != nil || params.Resume != nil || params.ResumeOriginalName != nil {
			if user.Profile.JobSeeker == nil {
				user.Profile.JobSeeker = &model.JobSeekerProfile{}
			}
			if params.Bio != nil {
				user.Profile.JobSeeker.Bio = *params.Bio
			}
			if params.Skills != nil {
				user.Profile.JobSeeker.Skills = *params.Skills
			}
			if params.Resume != nil {
				user.Profile.JobSeeker.Resume = *params.Resume
			}
			if params.ResumeOriginalName != nil {
				user.Profile.JobSeeker.ResumeOriginalName = *params.ResumeOriginalName
			}
		}
		if params.Company != nil {
			if user.Profile.Recruiter == nil {
				user.Profile.Recruiter = &model.RecruiterProfile{}
			}
			user.Profile.Recruiter.Company = *params.Company
		}
		user.UpdatedAt = time.Now()

		return user, nil
	}

	return nil, mongo.ErrNoDocuments
}

func (r *UserRepo) DeleteUser(_ context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, user := range r.users {
		if user.ID.Hex() == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return user, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

func (r *UserRepo) ListUsersByRole(_ context.Context, role string) ([]*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var users []*model.User
	for i := len(r.users) - 1; i >= 0; i-- {
		if r.users[i].Role == role {
			users = append(users, r.users[i])
		}
	}

	return users, nil
}

// Count reports how many user records are stored.
func (r *UserRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

// CompanyRepo is an in-memory repository.CompanyRepository.
type CompanyRepo struct {
	mu        sync.Mutex
	companies []*model.Company
}

func NewCompanyRepo() *CompanyRepo {
	return &CompanyRepo{}
}

func (r *CompanyRepo) CreateCompany(_ context.Context, company *model.Company) (*model.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.companies {
		if existing.Name == company.Name {
			return nil, duplicateKeyError()
		}
	}

	company.ID = bson.NewObjectID()
	company.CreatedAt = time.Now()
	company.UpdatedAt = company.CreatedAt
	r.companies = append(r.companies, company)

	return company, nil
}

func (r *CompanyRepo) GetCompany(_ context.Context, id string) (*model.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, company := range r.companies {
		if company.ID.Hex() == id {
			return company, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

func (r *CompanyRepo) GetCompanyByName(_ context.Context, name string) (*model.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, company := range r.companies {
		if company.Name == name {
			return company, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

func (r *CompanyRepo) UpdateCompany(
	_ context.Context,
	id string,
	params repository.UpdateCompanyParams,
) (*model.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, company := range r.companies {
		if company.ID.Hex() != id {
			continue
		}

		if params.Name != nil {
			company.Name = *params.Name
		}
		if params.Description != nil {
			company.Description = *params.Description
		}
		if params.Website != nil {
			company.Website = *params.Website
		}
		if params.Location != nil {
			company.Location = *params.Location
		}
		if params.Logo != nil {
			company.Logo = *params.Logo
		}
		company.UpdatedAt = time.Now()

		return company, nil
	}

	return nil, mongo.ErrNoDocuments
}

func (r *CompanyRepo) ListCompaniesByCreator(_ context.Context, creatorID string) ([]*model.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var companies []*model.Company
	for i := len(r.companies) - 1; i >= 0; i-- {
		if r.companies[i].CreatedBy.Hex() == creatorID {
			companies = append(companies, r.companies[i])
		}
	}

	return companies, nil
}

// JobRepo is an in-memory repository.JobRepository.
type JobRepo struct {
	mu   sync.Mutex
	jobs []*model.Job
}

func NewJobRepo() *JobRepo {
	return &JobRepo{}
}

func (r *JobRepo) CreateJob(_ context.Context, job *model.Job) (*model.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	job.ID = bson.NewObjectID()
	job.CreatedAt = time.Now()
	job.UpdatedAt = job.CreatedAt
	r.jobs = append(r.jobs, job)

	return job, nil
}

func (r *JobRepo) GetJob(_ context.Context, id string) (*model.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, job := range r.jobs {
		if job.ID.Hex() == id {
			return job, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

func (r *JobRepo) SearchJobs(_ context.Context, keyword string) ([]*model.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	needle := strings.ToLower(keyword)

	var jobs []*model.Job
	for i := len(r.jobs) - 1; i >= 0; i-- {
		job := r.jobs[i]
		if strings.Contains(strings.ToLower(job.Title), needle) ||
			strings.Contains(strings.ToLower(job.Description), needle) {
			jobs = append(jobs, job)
		}
	}

	return jobs, nil
}

func (r *JobRepo) ListJobsByCreator(_ context.Context, creatorID string) ([]*model.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var jobs []*model.Job
	for i := len(r.jobs) - 1; i >= 0; i-- {
		if r.jobs[i].CreatedBy.Hex() == creatorID {
			jobs = append(jobs, r.jobs[i])
		}
	}

	return jobs, nil
}

func (r *JobRepo) AppendApplication(_ context.Context, jobID string, applicationID bson.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, job := range r.jobs {
		if job.ID.Hex() == jobID {
			job.Applications = append(job.Applications, applicationID)
			return nil
		}
	}

	return mongo.ErrNoDocuments
}

// ApplicationRepo is an in-memory repository.ApplicationRepository enforcing
// the unique (job, applicant) pair like the mongo compound index.
type ApplicationRepo struct {
	mu           sync.Mutex
	applications []*model.Application
}

func NewApplicationRepo() *ApplicationRepo {
	return &ApplicationRepo{}
}

func (r *ApplicationRepo) CreateApplication(
	_ context.Context,
	application *model.Application,
) (*model.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.applications {
		if existing.Job == application.Job && existing.Applicant == application.Applicant {
			return nil, duplicateKeyError()
		}
	}

	application.ID = bson.NewObjectID()
	application.CreatedAt = time.Now()
	application.UpdatedAt = application.CreatedAt
	if application.Status == "" {
		application.Status = model.StatusPending
	}
	r.applications = append(r.applications, application)

	return application, nil
}

func (r *ApplicationRepo) GetApplication(_ context.Context, id string) (*model.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, application := range r.applications {
		if application.ID.Hex() == id {
			return application, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

func (r *ApplicationRepo) GetApplicationByJobAndApplicant(
	_ context.Context,
	jobID, applicantID bson.ObjectID,
) (*model.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, application := range r.applications {
		if application.Job == jobID && application.Applicant == applicantID {
			return application, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

func (r *ApplicationRepo) UpdateApplicationStatus(
	_ context.Context,
	id, status string,
) (*model.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, application := range r.applications {
		if application.ID.Hex() == id {
			application.Status = status
			application.UpdatedAt = time.Now()
			return application, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

func (r *ApplicationRepo) ListApplicationsByApplicant(
	_ context.Context,
	applicantID string,
) ([]*model.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var applications []*model.Application
	for i := len(r.applications) - 1; i >= 0; i-- {
		if r.applications[i].Applicant.Hex() == applicantID {
			applications = append(applications, r.applications[i])
		}
	}

	return applications, nil
}

func (r *ApplicationRepo) ListApplicationsByJob(
	_ context.Context,
	jobID bson.ObjectID,
) ([]*model.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var applications []*model.Application
	for i := len(r.applications) - 1; i >= 0; i-- {
		if r.applications[i].Job == jobID {
			applications = append(applications, r.applications[i])
		}
	}

	return applications, nil
}

func (r *ApplicationRepo) ListApplications(_ context.Context) ([]*model.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var applications []*model.Application
	for i := len(r.applications) - 1; i >= 0; i-- {
		applications = append(applications, r.applications[i])
	}

	return applications, nil
}

// Count reports how many application records are stored.
func (r *ApplicationRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.applications)
}
