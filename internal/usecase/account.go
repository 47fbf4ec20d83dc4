package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/skillwave/skillwave-api/internal/auth"
	"github.com/skillwave/skillwave-api/internal/model"
	"github.com/skillwave/skillwave-api/internal/repository"
	"github.com/skillwave/skillwave-api/internal/security"
	"github.com/skillwave/skillwave-api/internal/upload"
)

// AccountUsecase defines the interface for registration, authentication and
// account management use cases.
type AccountUsecase interface {
	Register(ctx context.Context, params RegisterParams) (*model.User, error)
	Login(ctx context.Context, params LoginParams) (*model.User, string, error)
	UpdateProfile(ctx context.Context, userID string, params UpdateProfileParams) (*model.User, error)
	AdminSignup(ctx context.Context, email, password string) (*model.User, error)
	AdminLogin(ctx context.Context, email, password string) (*model.User, string, error)
	ListJobSeekers(ctx context.Context) ([]*model.User, error)
	DeleteJobSeeker(ctx context.Context, id string) error
}

// RegisterParams defines the parameters for user registration. File is the
// already-persisted upload: a resume for job seekers, an employment proof for
// recruiters.
type RegisterParams struct {
	FullName    string
	Email       string
	PhoneNumber string
	Password    string
	Role        string
	CompanyName string
	File        *upload.StoredFile
}

// LoginParams defines the parameters for user login. Lookup is by
// (email, role): the same email may exist as distinct accounts per role.
type LoginParams struct {
	Email    string
	Password string
	Role     string
}

// UpdateProfileParams defines the optional parameters for a partial profile
// update. Only the fields that are not nil are applied.
type UpdateProfileParams struct {
	FullName *string
	Bio      *string
	Skills   *[]string
	Resume   *string
}

type accountUsecase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	tokenAuth   auth.TokenAuthenticator
	logger      *zerolog.Logger
}

func NewAccountUsecase(
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
	tokenAuth auth.TokenAuthenticator,
	logger *zerolog.Logger,
) AccountUsecase {
	return &accountUsecase{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		tokenAuth:   tokenAuth,
		logger:      logger,
	}
}

func (u *accountUsecase) Register(ctx context.Context, params RegisterParams) (*model.User, error) {
	switch params.Role {
	case model.RoleRecruiter:
		if params.File == nil {
			return nil, ErrProofRequired
		}
		if params.CompanyName == "" {
			return nil, ErrCompanyNameRequired
		}
	case model.RoleJobSeeker:
		if params.File == nil {
			return nil, ErrResumeRequired
		}
	}

	if _, err := u.userRepo.GetUserByEmailOrPhone(ctx, params.Email, params.PhoneNumber); err == nil {
		return nil, ErrUserAlreadyExists
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	passwordHash, err := security.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		FullName:     params.FullName,
		Email:        params.Email,
		PhoneNumber:  params.PhoneNumber,
		PasswordHash: passwordHash,
		Role:         params.Role,
	}

	switch params.Role {
	case model.RoleJobSeeker:
		user.Profile.JobSeeker = &model.JobSeekerProfile{
			Resume:             params.File.Path,
			ResumeOriginalName: params.File.OriginalName,
		}
	case model.RoleRecruiter:
		user.Profile.Recruiter = &model.RecruiterProfile{
			Proof:             params.File.Path,
			ProofOriginalName: params.File.OriginalName,
		}
	}

	user, err = u.userRepo.CreateUser(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrUserAlreadyExists
		}

		return nil, err
	}

	if params.Role == model.RoleRecruiter {
		return u.attachCompany(ctx, user, params.CompanyName)
	}

	return user, nil
}

// attachCompany resolves the recruiter's company by name, creating it when it
// does not exist yet, and stores the reference in the recruiter profile.
func (u *accountUsecase) attachCompany(
	ctx context.Context,
	user *model.User,
	name string,
) (*model.User, error) {
	company, err := u.companyRepo.GetCompanyByName(ctx, name)
	if errors.Is(err, mongo.ErrNoDocuments) {
		company, err = u.companyRepo.CreateCompany(ctx, &model.Company{
			Name:      name,
			CreatedBy: user.ID,
		})
	}
	if err != nil {
		return nil, err
	}

	return u.userRepo.UpdateUser(ctx, user.ID.Hex(), repository.UpdateUserParams{
		Company: &company.ID,
	})
}

func (u *accountUsecase) Login(ctx context.Context, params LoginParams) (*model.User, string, error) {
	user, err := u.userRepo.GetUserByEmailAndRole(ctx, params.Email, params.Role)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Same error as a password mismatch so account existence
			// is not leaked.
			return nil, "", ErrInvalidCredentials
		}

		return nil, "", err
	}

	if ok, err := security.VerifyPassword(params.Password, user.PasswordHash); err != nil {
		return nil, "", err
	} else if !ok {
		return nil, "", ErrInvalidCredentials
	}

	token, err := u.tokenAuth.Issue(user.ID.Hex(), user.Role)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (u *accountUsecase) UpdateProfile(
	ctx context.Context,
	userID string,
	params UpdateProfileParams,
) (*model.User, error) {
	user, err := u.userRepo.UpdateUser(ctx, userID, repository.UpdateUserParams{
		FullName: params.FullName,
		Bio:      params.Bio,
		Skills:   params.Skills,
		Resume:   params.Resume,
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	return user, nil
}

func (u *accountUsecase) AdminSignup(ctx context.Context, email, password string) (*model.User, error) {
	if _, err := u.userRepo.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrUserAlreadyExists
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	passwordHash, err := security.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.CreateUser(ctx, &model.User{
		Email:        email,
		PasswordHash: passwordHash,
		Role:         model.RoleAdmin,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrUserAlreadyExists
		}

		return nil, err
	}

	return user, nil
}

func (u *accountUsecase) AdminLogin(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", ErrInvalidCredentials
		}

		return nil, "", err
	}

	if user.Role != model.RoleAdmin {
		return nil, "", ErrInvalidCredentials
	}

	if ok, err := security.VerifyPassword(password, user.PasswordHash); err != nil {
		return nil, "", err
	} else if !ok {
		return nil, "", ErrInvalidCredentials
	}

	token, err := u.tokenAuth.Issue(user.ID.Hex(), user.Role)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (u *accountUsecase) ListJobSeekers(ctx context.Context) ([]*model.User, error) {
	return u.userRepo.ListUsersByRole(ctx, model.RoleJobSeeker)
}

func (u *accountUsecase) DeleteJobSeeker(ctx context.Context, id string) error {
	if _, err := u.userRepo.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}

		return err
	}

	return nil
}
