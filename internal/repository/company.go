package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/skillwave/skillwave-api/internal/model"
)

// CompanyRepository defines the interface for company-related database operations.
type CompanyRepository interface {
	CreateCompany(ctx context.Context, company *model.Company) (*model.Company, error)
	GetCompany(ctx context.Context, id string) (*model.Company, error)
	GetCompanyByName(ctx context.Context, name string) (*model.Company, error)
	UpdateCompany(ctx context.Context, id string, params UpdateCompanyParams) (*model.Company, error)
	ListCompaniesByCreator(ctx context.Context, creatorID string) ([]*model.Company, error)
}

// UpdateCompanyParams defines the optional parameters for updating a company.
// Only the fields that are not nil will be updated.
type UpdateCompanyParams struct {
	Name        *string
	Description *string
	Website     *string
	Location    *string
	Logo        *string
}

const companyCollection = "companies"

type companyMongoRepository struct {
	db *mongo.Database
}

func NewCompanyMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) CompanyRepository {
	collection := db.Collection(companyCollection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create company indexes")
	}

	return &companyMongoRepository{db: db}
}

func (r *companyMongoRepository) CreateCompany(ctx context.Context, company *model.Company) (*model.Company, error) {
	now := time.Now()
	company.CreatedAt = now
	company.UpdatedAt = now

	result, err := r.db.Collection(companyCollection).InsertOne(ctx, company)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		company.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return company, nil
}

func (r *companyMongoRepository) GetCompany(ctx context.Context, id string) (*model.Company, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	return r.findOne(ctx, bson.M{"_id": objectID})
}

func (r *companyMongoRepository) GetCompanyByName(ctx context.Context, name string) (*model.Company, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *companyMongoRepository) findOne(ctx context.Context, filter bson.M) (*model.Company, error) {
	result := r.db.Collection(companyCollection).FindOne(ctx, filter)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var company model.Company
	if err := result.Decode(&company); err != nil {
		return nil, err
	}

	return &company, nil
}

func (r *companyMongoRepository) UpdateCompany(
	ctx context.Context,
	id string,
	params UpdateCompanyParams,
) (*model.Company, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	// Build update query
	updateMap := bson.M{}
	if params.Name != nil {
		updateMap["name"] = *params.Name
	}
	if params.Description != nil {
		updateMap["description"] = *params.Description
	}
	if params.Website != nil {
		updateMap["website"] = *params.Website
	}
	if params.Location != nil {
		updateMap["location"] = *params.Location
	}
	if params.Logo != nil {
		updateMap["logo"] = *params.Logo
	}

	if len(updateMap) == 0 {
		return nil, errors.New("no company fields to update")
	}

	updateMap["updated_at"] = time.Now()

	result := r.db.Collection(companyCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": updateMap},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var company model.Company
	if err := result.Decode(&company); err != nil {
		return nil, err
	}

	return &company, nil
}

func (r *companyMongoRepository) ListCompaniesByCreator(ctx context.Context, creatorID string) ([]*model.Company, error) {
	objectID, err := bson.ObjectIDFromHex(creatorID)
	if err != nil {
		return nil, err
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection(companyCollection).Find(ctx, bson.M{"created_by": objectID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var companies []*model.Company
	for cursor.Next(ctx) {
		var company model.Company
		if err := cursor.Decode(&company); err != nil {
			return nil, err
		}
		companies = append(companies, &company)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return companies, nil
}
