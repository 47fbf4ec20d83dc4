package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillwave/skillwave-api/internal/model"
	"github.com/skillwave/skillwave-api/internal/security"
	"github.com/skillwave/skillwave-api/internal/usecase"
)

func jobSeekerParams() usecase.RegisterParams {
	return usecase.RegisterParams{
		FullName:    "Ada Lovelace",
		Email:       "ada@example.com",
		PhoneNumber: "0812345678",
		Password:    "s3cr3t-pass",
		Role:        model.RoleJobSeeker,
		File:        resumeFile(),
	}
}

func recruiterParams() usecase.RegisterParams {
	return usecase.RegisterParams{
		FullName:    "Grace Hopper",
		Email:       "grace@example.com",
		PhoneNumber: "0898765432",
		Password:    "s3cr3t-pass",
		Role:        model.RoleRecruiter,
		CompanyName: "Navy Systems",
		File:        proofFile(),
	}
}

func TestRegisterJobSeeker(t *testing.T) {
	e := newEnv()

	user, err := e.account.Register(context.Background(), jobSeekerParams())
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", user.FullName)
	assert.Equal(t, model.RoleJobSeeker, user.Role)
	require.NotNil(t, user.Profile.JobSeeker)
	assert.Equal(t, "uploads/resume-1.pdf", user.Profile.JobSeeker.Resume)
	assert.Equal(t, "resume.pdf", user.Profile.JobSeeker.ResumeOriginalName)
	assert.Nil(t, user.Profile.Recruiter)

	ok, err := security.VerifyPassword("s3cr3t-pass", user.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok, "stored hash must verify against the plaintext")
}

func TestRegisterJobSeekerRequiresResume(t *testing.T) {
	e := newEnv()

	params := jobSeekerParams()
	params.File = nil

	_, err := e.account.Register(context.Background(), params)
	assert.ErrorIs(t, err, usecase.ErrResumeRequired)
	assert.Zero(t, e.userRepo.Count(), "nothing may be persisted on a rejected registration")
}

func TestRegisterRecruiterRequirements(t *testing.T) {
	e := newEnv()

	params := recruiterParams()
	params.File = nil
	_, err := e.account.Register(context.Background(), params)
	assert.ErrorIs(t, err, usecase.ErrProofRequired)

	params = recruiterParams()
	params.CompanyName = ""
	_, err = e.account.Register(context.Background(), params)
	assert.ErrorIs(t, err, usecase.ErrCompanyNameRequired)
}

func TestRegisterRecruiterCreatesCompany(t *testing.T) {
	e := newEnv()

	user, err := e.account.Register(context.Background(), recruiterParams())
	require.NoError(t, err)

	require.NotNil(t, user.Profile.Recruiter)
	assert.Equal(t, "uploads/proof-1.pdf", user.Profile.Recruiter.Proof)

	company, err := e.companyRepo.GetCompanyByName(context.Background(), "Navy Systems")
	require.NoError(t, err)
	assert.Equal(t, user.ID, company.CreatedBy)
	assert.Equal(t, company.ID, user.Profile.Recruiter.Company)
}

func TestRegisterRecruiterReusesCompany(t *testing.T) {
	e := newEnv()

	first, err := e.account.Register(context.Background(), recruiterParams())
	require.NoError(t, err)

	params := recruiterParams()
	params.Email = "second@example.com"
	params.PhoneNumber = "0811111111"

	second, err := e.account.Register(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t,
		first.Profile.Recruiter.Company,
		second.Profile.Recruiter.Company,
		"same company name must resolve to the same record",
	)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	e := newEnv()

	_, err := e.account.Register(context.Background(), jobSeekerParams())
	require.NoError(t, err)

	params := jobSeekerParams()
	params.PhoneNumber = "0899999999"

	_, err = e.account.Register(context.Background(), params)
	assert.ErrorIs(t, err, usecase.ErrUserAlreadyExists)
	assert.Equal(t, 1, e.userRepo.Count())
}

func TestRegisterDuplicatePhone(t *testing.T) {
	e := newEnv()

	_, err := e.account.Register(context.Background(), jobSeekerParams())
	require.NoError(t, err)

	params := jobSeekerParams()
	params.Email = "other@example.com"

	_, err = e.account.Register(context.Background(), params)
	assert.ErrorIs(t, err, usecase.ErrUserAlreadyExists)
}

func TestLogin(t *testing.T) {
	e := newEnv()

	registered, err := e.account.Register(context.Background(), jobSeekerParams())
	require.NoError(t, err)

	user, token, err := e.account.Login(context.Background(), usecase.LoginParams{
		Email:    "ada@example.com",
		Password: "s3cr3t-pass",
		Role:     model.RoleJobSeeker,
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	claims, err := e.tokenAuth.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID.Hex(), claims.UserID)
	assert.Equal(t, model.RoleJobSeeker, claims.Role)
}

func TestLoginInvalidCredentials(t *testing.T) {
	e := newEnv()

	_, err := e.account.Register(context.Background(), jobSeekerParams())
	require.NoError(t, err)

	cases := map[string]usecase.LoginParams{
		"wrong password": {Email: "ada@example.com", Password: "nope", Role: model.RoleJobSeeker},
		"unknown email":  {Email: "ghost@example.com", Password: "s3cr3t-pass", Role: model.RoleJobSeeker},
		"wrong role":     {Email: "ada@example.com", Password: "s3cr3t-pass", Role: model.RoleRecruiter},
	}

	for name, params := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := e.account.Login(context.Background(), params)
			assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
		})
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	e := newEnv()

	user, err := e.account.Register(context.Background(), jobSeekerParams())
	require.NoError(t, err)

	bio := "Compiler enthusiast"
	skills := []string{"go", "mongodb"}

	updated, err := e.account.UpdateProfile(context.Background(), user.ID.Hex(), usecase.UpdateProfileParams{
		Bio:    &bio,
		Skills: &skills,
	})
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", updated.FullName, "untouched fields must survive")
	assert.Equal(t, "Compiler enthusiast", updated.Profile.JobSeeker.Bio)
	assert.Equal(t, skills, updated.Profile.JobSeeker.Skills)
	assert.Equal(t, "uploads/resume-1.pdf", updated.Profile.JobSeeker.Resume)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	e := newEnv()

	name := "Nobody"
	_, err := e.account.UpdateProfile(context.Background(), "64f1b2c3d4e5f6a7b8c9d0e1", usecase.UpdateProfileParams{
		FullName: &name,
	})
	assert.ErrorIs(t, err, usecase.ErrUserNotFound)
}

func TestAdminSignupAndLogin(t *testing.T) {
	e := newEnv()

	admin, err := e.account.AdminSignup(context.Background(), "admin@example.com", "s3cr3t-pass")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, admin.Role)

	_, err = e.account.AdminSignup(context.Background(), "admin@example.com", "other-pass")
	assert.ErrorIs(t, err, usecase.ErrUserAlreadyExists)

	user, token, err := e.account.AdminLogin(context.Background(), "admin@example.com", "s3cr3t-pass")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, user.ID)

	claims, err := e.tokenAuth.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, claims.Role)
}

func TestAdminSignupSecondAdmin(t *testing.T) {
	e := newEnv()

	first, err := e.account.AdminSignup(context.Background(), "admin@example.com", "s3cr3t-pass")
	require.NoError(t, err)
	assert.Empty(t, first.PhoneNumber)

	// Admin accounts carry no phone number; the empty value must not
	// trip phone uniqueness for the next admin.
	second, err := e.account.AdminSignup(context.Background(), "admin2@example.com", "s3cr3t-pass")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestAdminLoginRejectsNonAdmin(t *testing.T) {
	e := newEnv()

	_, err := e.account.Register(context.Background(), jobSeekerParams())
	require.NoError(t, err)

	_, _, err = e.account.AdminLogin(context.Background(), "ada@example.com", "s3cr3t-pass")
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
}

func TestListAndDeleteJobSeekers(t *testing.T) {
	e := newEnv()

	user, err := e.account.Register(context.Background(), jobSeekerParams())
	require.NoError(t, err)
	_, err = e.account.Register(context.Background(), recruiterParams())
	require.NoError(t, err)

	seekers, err := e.account.ListJobSeekers(context.Background())
	require.NoError(t, err)
	require.Len(t, seekers, 1)
	assert.Equal(t, user.ID, seekers[0].ID)

	require.NoError(t, e.account.DeleteJobSeeker(context.Background(), user.ID.Hex()))

	err = e.account.DeleteJobSeeker(context.Background(), user.ID.Hex())
	assert.ErrorIs(t, err, usecase.ErrUserNotFound)
}
