package payload

import (
	"fmt"
	"strconv"
	"strings"
)

// Number accepts both JSON numbers and numeric strings, since web clients
// submit salary and position either way.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", s)
	}

	*n = Number(f)
	return nil
}

type RegisterRequest struct {
	FullName    string `json:"fullname"    validate:"required"`
	Email       string `json:"email"       validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required,numeric,min=10,max=15"`
	Password    string `json:"password"    validate:"required,min=6"`
	Role        string `json:"role"        validate:"required,oneof=job-seeker recruiter"`
	Company     string `json:"company"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=job-seeker recruiter"`
}

type AdminAuthRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest carries partial updates; empty fields are left unchanged.
type UpdateProfileRequest struct {
	FullName string `json:"fullname"`
	Bio      string `json:"bio"`
	Skills   string `json:"skills"`
	Resume   string `json:"resume"`
}

type PostJobRequest struct {
	Title        string `json:"title"        validate:"required"`
	Description  string `json:"description"  validate:"required"`
	Requirements string `json:"requirements" validate:"required"`
	Salary       Number `json:"salary"       validate:"required"`
	Location     string `json:"location"     validate:"required"`
	JobType      string `json:"jobType"      validate:"required"`
	Experience   string `json:"experience"   validate:"required"`
	Position     Number `json:"position"     validate:"required"`
	CompanyID    string `json:"companyId"    validate:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type RegisterCompanyRequest struct {
	Name string `json:"name" validate:"required"`
}

// UpdateCompanyRequest carries partial updates; nil fields are left unchanged.
type UpdateCompanyRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Website     *string `json:"website"`
	Location    *string `json:"location"`
}
