package usecase_test

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillwave/skillwave-api/internal/auth"
	"github.com/skillwave/skillwave-api/internal/repository/repotest"
	"github.com/skillwave/skillwave-api/internal/upload"
	"github.com/skillwave/skillwave-api/internal/usecase"
)

func testLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

// recordingNotifier captures notifications so tests can wait for the
// background delivery goroutine.
type recordingNotifier struct {
	received chan sentMessage
	failWith error
}

type sentMessage struct {
	Phone   string
	Message string
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{received: make(chan sentMessage, 8)}
}

func (n *recordingNotifier) Notify(_ context.Context, phone, message string) error {
	n.received <- sentMessage{Phone: phone, Message: message}
	return n.failWith
}

// wait blocks until a notification arrives or the deadline passes.
func (n *recordingNotifier) wait() (sentMessage, bool) {
	select {
	case sent := <-n.received:
		return sent, true
	case <-time.After(2 * time.Second):
		return sentMessage{}, false
	}
}

// env bundles the in-memory repositories with the use cases under test.
type env struct {
	userRepo    *repotest.UserRepo
	companyRepo *repotest.CompanyRepo
	jobRepo     *repotest.JobRepo
	appRepo     *repotest.ApplicationRepo
	notifier    *recordingNotifier
	tokenAuth   auth.TokenAuthenticator

	account      usecase.AccountUsecase
	jobs         usecase.JobUsecase
	applications usecase.ApplicationUsecase
	companies    usecase.CompanyUsecase
}

func newEnv() *env {
	e := &env{
		userRepo:    repotest.NewUserRepo(),
		companyRepo: repotest.NewCompanyRepo(),
		jobRepo:     repotest.NewJobRepo(),
		appRepo:     repotest.NewApplicationRepo(),
		notifier:    newRecordingNotifier(),
		tokenAuth:   auth.NewTokenAuthenticator("test-secret", "skillwave", time.Hour),
	}

	logger := testLogger()
	e.account = usecase.NewAccountUsecase(e.userRepo, e.companyRepo, e.tokenAuth, logger)
	e.jobs = usecase.NewJobUsecase(e.jobRepo, e.companyRepo, e.appRepo, logger)
	e.applications = usecase.NewApplicationUsecase(
		e.appRepo, e.jobRepo, e.userRepo, e.companyRepo, e.notifier, logger,
	)
	e.companies = usecase.NewCompanyUsecase(e.companyRepo, logger)

	return e
}

func resumeFile() *upload.StoredFile {
	return &upload.StoredFile{Path: "uploads/resume-1.pdf", OriginalName: "resume.pdf"}
}

func proofFile() *upload.StoredFile {
	return &upload.StoredFile{Path: "uploads/proof-1.pdf", OriginalName: "proof.pdf"}
}

var errDeliveryFailed = errors.New("delivery failed")
