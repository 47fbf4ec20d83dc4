package payload

import (
	"time"

	"github.com/skillwave/skillwave-api/internal/model"
)

// UserResponse is the safe projection of a user record. It never carries the
// password hash.
type UserResponse struct {
	ID          string           `json:"id"`
	FullName    string           `json:"fullname"`
	Email       string           `json:"email"`
	PhoneNumber string           `json:"phoneNumber,omitempty"`
	Role        string           `json:"role"`
	Profile     *ProfileResponse `json:"profile,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

type ProfileResponse struct {
	Bio          string   `json:"bio,omitempty"`
	Skills       []string `json:"skills,omitempty"`
	Resume       string   `json:"resume,omitempty"`
	ResumeName   string   `json:"resumeOriginalName,omitempty"`
	ProfilePhoto string   `json:"profilePhoto,omitempty"`
	CompanyID    string   `json:"company,omitempty"`
	Proof        string   `json:"recruiterProof,omitempty"`
	ProofName    string   `json:"recruiterProofOriginalName,omitempty"`
}

type CompanyResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Website     string    `json:"website,omitempty"`
	Location    string    `json:"location,omitempty"`
	Logo        string    `json:"logo,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type JobResponse struct {
	ID              string                 `json:"id"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	Requirements    []string               `json:"requirements"`
	Salary          float64                `json:"salary"`
	Location        string                 `json:"location"`
	JobType         string                 `json:"jobType"`
	ExperienceLevel string                 `json:"experienceLevel"`
	Position        int                    `json:"position"`
	CreatedBy       string                 `json:"createdBy"`
	CreatedAt       time.Time              `json:"createdAt"`
	Company         *CompanyResponse       `json:"company,omitempty"`
	Applications    []*ApplicationResponse `json:"applications,omitempty"`
}

type ApplicationResponse struct {
	ID        string        `json:"id"`
	Status    string        `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	Job       *JobResponse  `json:"job,omitempty"`
	Applicant *UserResponse `json:"applicant,omitempty"`
}

func FromUser(u *model.User) *UserResponse {
	resp := &UserResponse{
		ID:          u.ID.Hex(),
		FullName:    u.FullName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
	}

	switch {
	case u.Profile.JobSeeker != nil:
		p := u.Profile.JobSeeker
		resp.Profile = &ProfileResponse{
			Bio:          p.Bio,
			Skills:       p.Skills,
			Resume:       p.Resume,
			ResumeName:   p.ResumeOriginalName,
			ProfilePhoto: p.ProfilePhoto,
		}
	case u.Profile.Recruiter != nil:
		p := u.Profile.Recruiter
		resp.Profile = &ProfileResponse{
			Proof:     p.Proof,
			ProofName: p.ProofOriginalName,
		}
		if !p.Company.IsZero() {
			resp.Profile.CompanyID = p.Company.Hex()
		}
	}

	return resp
}

func FromCompany(c *model.Company) *CompanyResponse {
	if c == nil {
		return nil
	}

	return &CompanyResponse{
		ID:          c.ID.Hex(),
		Name:        c.Name,
		Description: c.Description,
		Website:     c.Website,
		Location:    c.Location,
		Logo:        c.Logo,
		CreatedAt:   c.CreatedAt,
	}
}

func FromJob(j *model.Job) *JobResponse {
	return &JobResponse{
		ID:              j.ID.Hex(),
		Title:           j.Title,
		Description:     j.Description,
		Requirements:    j.Requirements,
		Salary:          j.Salary,
		Location:        j.Location,
		JobType:         j.JobType,
		ExperienceLevel: j.ExperienceLevel,
		Position:        j.Position,
		CreatedBy:       j.CreatedBy.Hex(),
		CreatedAt:       j.CreatedAt,
	}
}

func FromApplication(a *model.Application) *ApplicationResponse {
	return &ApplicationResponse{
		ID:        a.ID.Hex(),
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
	}
}
