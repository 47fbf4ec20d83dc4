package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillwave/skillwave-api/internal/model"
	"github.com/skillwave/skillwave-api/internal/usecase"
)

// seedJobAndSeeker sets up a recruiter with a posted job and a registered
// job seeker ready to apply.
func seedJobAndSeeker(t *testing.T, e *env) (*model.Job, *model.User, *model.User) {
	t.Helper()

	recruiter, company := seedRecruiter(t, e)

	job, err := e.jobs.Post(context.Background(), postJobParams(company, recruiter))
	require.NoError(t, err)

	seeker, err := e.account.Register(context.Background(), jobSeekerParams())
	require.NoError(t, err)

	return job, seeker, recruiter
}

func TestApply(t *testing.T) {
	e := newEnv()
	job, seeker, _ := seedJobAndSeeker(t, e)

	application, err := e.applications.Apply(context.Background(), job.ID.Hex(), seeker.ID.Hex())
	require.NoError(t, err)

	assert.Equal(t, model.StatusPending, application.Status)
	assert.Equal(t, job.ID, application.Job)
	assert.Equal(t, seeker.ID, application.Applicant)

	stored, err := e.jobRepo.GetJob(context.Background(), job.ID.Hex())
	require.NoError(t, err)
	require.Len(t, stored.Applications, 1)
	assert.Equal(t, application.ID, stored.Applications[0])
}

func TestApplyNotifiesRecruiter(t *testing.T) {
	e := newEnv()
	job, seeker, recruiter := seedJobAndSeeker(t, e)

	_, err := e.applications.Apply(context.Background(), job.ID.Hex(), seeker.ID.Hex())
	require.NoError(t, err)

	sent, ok := e.notifier.wait()
	require.True(t, ok, "expected a notification to the recruiter")
	assert.Equal(t, recruiter.PhoneNumber, sent.Phone)
	assert.Contains(t, sent.Message, seeker.FullName)
	assert.Contains(t, sent.Message, job.Title)
}

func TestApplyTwice(t *testing.T) {
	e := newEnv()
	job, seeker, _ := seedJobAndSeeker(t, e)

	_, err := e.applications.Apply(context.Background(), job.ID.Hex(), seeker.ID.Hex())
	require.NoError(t, err)

	_, err = e.applications.Apply(context.Background(), job.ID.Hex(), seeker.ID.Hex())
	assert.ErrorIs(t, err, usecase.ErrAlreadyApplied)
	assert.Equal(t, 1, e.appRepo.Count(), "a rejected duplicate must not persist a second record")
}

func TestApplyUnknownJob(t *testing.T) {
	e := newEnv()
	_, seeker, _ := seedJobAndSeeker(t, e)

	_, err := e.applications.Apply(context.Background(), "64f1b2c3d4e5f6a7b8c9d0e1", seeker.ID.Hex())
	assert.ErrorIs(t, err, usecase.ErrJobNotFound)

	_, err = e.applications.Apply(context.Background(), "not-an-id", seeker.ID.Hex())
	assert.ErrorIs(t, err, usecase.ErrJobNotFound)
}

func TestApplySucceedsWhenDeliveryFails(t *testing.T) {
	e := newEnv()
	e.notifier.failWith = errDeliveryFailed
	job, seeker, _ := seedJobAndSeeker(t, e)

	_, err := e.applications.Apply(context.Background(), job.ID.Hex(), seeker.ID.Hex())
	require.NoError(t, err, "delivery failures must not surface to the applicant")

	_, ok := e.notifier.wait()
	assert.True(t, ok)
}

func TestListForApplicant(t *testing.T) {
	e := newEnv()
	job, seeker, _ := seedJobAndSeeker(t, e)

	_, err := e.applications.ListForApplicant(context.Background(), seeker.ID.Hex())
	assert.ErrorIs(t, err, usecase.ErrNoApplicationsFound)

	_, err = e.applications.Apply(context.Background(), job.ID.Hex(), seeker.ID.Hex())
	require.NoError(t, err)

	applied, err := e.applications.ListForApplicant(context.Background(), seeker.ID.Hex())
	require.NoError(t, err)
	require.Len(t, applied, 1)
	require.NotNil(t, applied[0].Job)
	assert.Equal(t, job.ID, applied[0].Job.ID)
	require.NotNil(t, applied[0].Company)
	assert.Equal(t, job.Company, applied[0].Company.ID)
}

func TestListForJob(t *testing.T) {
	e := newEnv()
	job, seeker, _ := seedJobAndSeeker(t, e)

	_, err := e.applications.Apply(context.Background(), job.ID.Hex(), seeker.ID.Hex())
	require.NoError(t, err)

	got, applicants, err := e.applications.ListForJob(context.Background(), job.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, job.ID, got.ID)
	require.Len(t, applicants, 1)
	require.NotNil(t, applicants[0].Applicant)
	assert.Equal(t, seeker.ID, applicants[0].Applicant.ID)
}

func TestSetStatus(t *testing.T) {
	e := newEnv()
	job, seeker, recruiter := seedJobAndSeeker(t, e)

	application, err := e.applications.Apply(context.Background(), job.ID.Hex(), seeker.ID.Hex())
	require.NoError(t, err)

	_, ok := e.notifier.wait()
	require.True(t, ok, "recruiter notification from apply")

	updated, err := e.applications.SetStatus(
		context.Background(),
		application.ID.Hex(),
		"  ACCEPTED ",
		recruiter.ID.Hex(),
		model.RoleRecruiter,
	)
	require.NoError(t, err)
	assert.Equal(t, model.StatusAccepted, updated.Status, "status must be trimmed and lowercased")

	sent, ok := e.notifier.wait()
	require.True(t, ok, "applicant notification from the status change")
	assert.Equal(t, seeker.PhoneNumber, sent.Phone)
	assert.Contains(t, sent.Message, "accepted")
}

func TestSetStatusFreeForm(t *testing.T) {
	e := newEnv()
	job, seeker, recruiter := seedJobAndSeeker(t, e)

	application, err := e.applications.Apply(context.Background(), job.ID.Hex(), seeker.ID.Hex())
	require.NoError(t, err)

	updated, err := e.applications.SetStatus(
		context.Background(),
		application.ID.Hex(),
		"Shortlisted",
		recruiter.ID.Hex(),
		model.RoleRecruiter,
	)
	require.NoError(t, err, "any non-empty status value is accepted")
	assert.Equal(t, "shortlisted", updated.Status)
}

func TestSetStatusRequired(t *testing.T) {
	e := newEnv()
	job, seeker, recruiter := seedJobAndSeeker(t, e)

	application, err := e.applications.Apply(context.Background(), job.ID.Hex(), seeker.ID.Hex())
	require.NoError(t, err)

	for _, status := range []string{"", "   "} {
		_, err = e.applications.SetStatus(
			context.Background(),
			application.ID.Hex(),
			status,
			recruiter.ID.Hex(),
			model.RoleRecruiter,
		)
		assert.ErrorIs(t, err, usecase.ErrStatusRequired)
	}
}

func TestSetStatusOwnership(t *testing.T) {
	e := newEnv()
	job, seeker, _ := seedJobAndSeeker(t, e)

	application, err := e.applications.Apply(context.Background(), job.ID.Hex(), seeker.ID.Hex())
	require.NoError(t, err)

	otherParams := recruiterParams()
	otherParams.Email = "intruder@example.com"
	otherParams.PhoneNumber = "0811111111"
	otherParams.CompanyName = "Intruder Inc"
	other, err := e.account.Register(context.Background(), otherParams)
	require.NoError(t, err)

	_, err = e.applications.SetStatus(
		context.Background(),
		application.ID.Hex(),
		"rejected",
		other.ID.Hex(),
		model.RoleRecruiter,
	)
	assert.ErrorIs(t, err, usecase.ErrNotJobOwner)

	admin, err := e.account.AdminSignup(context.Background(), "admin@example.com", "s3cr3t-pass")
	require.NoError(t, err)

	updated, err := e.applications.SetStatus(
		context.Background(),
		application.ID.Hex(),
		"rejected",
		admin.ID.Hex(),
		model.RoleAdmin,
	)
	require.NoError(t, err, "admins may update any application")
	assert.Equal(t, model.StatusRejected, updated.Status)
}

func TestSetStatusUnknownApplication(t *testing.T) {
	e := newEnv()
	_, _, recruiter := seedJobAndSeeker(t, e)

	_, err := e.applications.SetStatus(
		context.Background(),
		"64f1b2c3d4e5f6a7b8c9d0e1",
		"accepted",
		recruiter.ID.Hex(),
		model.RoleRecruiter,
	)
	assert.ErrorIs(t, err, usecase.ErrApplicationNotFound)
}

func TestListActivities(t *testing.T) {
	e := newEnv()
	job, seeker, _ := seedJobAndSeeker(t, e)

	_, err := e.applications.ListActivities(context.Background())
	assert.ErrorIs(t, err, usecase.ErrNoApplicationsFound)

	_, err = e.applications.Apply(context.Background(), job.ID.Hex(), seeker.ID.Hex())
	require.NoError(t, err)

	activities, err := e.applications.ListActivities(context.Background())
	require.NoError(t, err)
	require.Len(t, activities, 1)
	require.NotNil(t, activities[0].Job)
	require.NotNil(t, activities[0].Company)
	require.NotNil(t, activities[0].Applicant)
	assert.Equal(t, seeker.ID, activities[0].Applicant.ID)
}
