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

// ApplicationRepository defines the interface for application-related database operations.
type ApplicationRepository interface {
	CreateApplication(ctx context.Context, application *model.Application) (*model.Application, error)
	GetApplication(ctx context.Context, id string) (*model.Application, error)
	GetApplicationByJobAndApplicant(ctx context.Context, jobID, applicantID bson.ObjectID) (*model.Application, error)
	UpdateApplicationStatus(ctx context.Context, id, status string) (*model.Application, error)
	ListApplicationsByApplicant(ctx context.Context, applicantID string) ([]*model.Application, error)
	ListApplicationsByJob(ctx context.Context, jobID bson.ObjectID) ([]*model.Application, error)
	ListApplications(ctx context.Context) ([]*model.Application, error)
}

const applicationCollection = "applications"

type applicationMongoRepository struct {
	db *mongo.Database
}

// NewApplicationMongoRepository creates the repository and the unique
// (job, applicant) index. The index is what makes concurrent duplicate
// applies safe; the usecase-level existence check only supplies the
// friendlier error message.
func NewApplicationMongoRepository(
	ctx context.Context,
	logger *zerolog.Logger,
	db *mongo.Database,
) ApplicationRepository {
	collection := db.Collection(applicationCollection)

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "job", Value: 1},
				{Key: "applicant", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create application indexes")
	}

	return &applicationMongoRepository{db: db}
}

func (r *applicationMongoRepository) CreateApplication(
	ctx context.Context,
	application *model.Application,
) (*model.Application, error) {
	now := time.Now()
	application.CreatedAt = now
	application.UpdatedAt = now
	if application.Status == "" {
		application.Status = model.StatusPending
	}

	result, err := r.db.Collection(applicationCollection).InsertOne(ctx, application)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		application.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return application, nil
}

func (r *applicationMongoRepository) GetApplication(ctx context.Context, id string) (*model.Application, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	return r.findOne(ctx, bson.M{"_id": objectID})
}

func (r *applicationMongoRepository) GetApplicationByJobAndApplicant(
	ctx context.Context,
	jobID, applicantID bson.ObjectID,
) (*model.Application, error) {
	return r.findOne(ctx, bson.M{"job": jobID, "applicant": applicantID})
}

func (r *applicationMongoRepository) findOne(ctx context.Context, filter bson.M) (*model.Application, error) {
	result := r.db.Collection(applicationCollection).FindOne(ctx, filter)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var application model.Application
	if err := result.Decode(&application); err != nil {
		return nil, err
	}

	return &application, nil
}

func (r *applicationMongoRepository) UpdateApplicationStatus(
	ctx context.Context,
	id, status string,
) (*model.Application, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(applicationCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var application model.Application
	if err := result.Decode(&application); err != nil {
		return nil, err
	}

	return &application, nil
}

func (r *applicationMongoRepository) ListApplicationsByApplicant(
	ctx context.Context,
	applicantID string,
) ([]*model.Application, error) {
	objectID, err := bson.ObjectIDFromHex(applicantID)
	if err != nil {
		return nil, err
	}

	return r.find(ctx, bson.M{"applicant": objectID})
}

func (r *applicationMongoRepository) ListApplicationsByJob(
	ctx context.Context,
	jobID bson.ObjectID,
) ([]*model.Application, error) {
	return r.find(ctx, bson.M{"job": jobID})
}

func (r *applicationMongoRepository) ListApplications(ctx context.Context) ([]*model.Application, error) {
	return r.find(ctx, bson.M{})
}

func (r *applicationMongoRepository) find(ctx context.Context, filter bson.M) ([]*model.Application, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection(applicationCollection).Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var applications []*model.Application
	for cursor.Next(ctx) {
		var application model.Application
		if err := cursor.Decode(&application); err != nil {
			return nil, err
		}
		applications = append(applications, &application)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}
