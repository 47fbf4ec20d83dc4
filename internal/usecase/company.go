package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/skillwave/skillwave-api/internal/model"
	"github.com/skillwave/skillwave-api/internal/repository"
)

// CompanyUsecase defines the interface for company management use cases.
type CompanyUsecase interface {
	Register(ctx context.Context, name, creatorID string) (*model.Company, error)
	ListByCreator(ctx context.Context, creatorID string) ([]*model.Company, error)
	GetByID(ctx context.Context, id string) (*model.Company, error)
	Update(ctx context.Context, id string, params repository.UpdateCompanyParams) (*model.Company, error)
}

type companyUsecase struct {
	companyRepo repository.CompanyRepository
	logger      *zerolog.Logger
}

func NewCompanyUsecase(companyRepo repository.CompanyRepository, logger *zerolog.Logger) CompanyUsecase {
	return &companyUsecase{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (u *companyUsecase) Register(ctx context.Context, name, creatorID string) (*model.Company, error) {
	creatorOID, err := bson.ObjectIDFromHex(creatorID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if _, err := u.companyRepo.GetCompanyByName(ctx, name); err == nil {
		return nil, ErrCompanyAlreadyExists
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	company, err := u.companyRepo.CreateCompany(ctx, &model.Company{
		Name:      name,
		CreatedBy: creatorOID,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrCompanyAlreadyExists
		}

		return nil, err
	}

	return company, nil
}

func (u *companyUsecase) ListByCreator(ctx context.Context, creatorID string) ([]*model.Company, error) {
	return u.companyRepo.ListCompaniesByCreator(ctx, creatorID)
}

func (u *companyUsecase) GetByID(ctx context.Context, id string) (*model.Company, error) {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		return nil, ErrCompanyNotFound
	}

	company, err := u.companyRepo.GetCompany(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCompanyNotFound
		}

		return nil, err
	}

	return company, nil
}

func (u *companyUsecase) Update(
	ctx context.Context,
	id string,
	params repository.UpdateCompanyParams,
) (*model.Company, error) {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		return nil, ErrCompanyNotFound
	}

	company, err := u.companyRepo.UpdateCompany(ctx, id, params)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCompanyNotFound
		}

		return nil, err
	}

	return company, nil
}
