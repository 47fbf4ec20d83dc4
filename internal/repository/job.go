package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/skillwave/skillwave-api/internal/model"
)

// JobRepository defines the interface for job-related database operations.
type JobRepository interface {
	CreateJob(ctx context.Context, job *model.Job) (*model.Job, error)
	GetJob(ctx context.Context, id string) (*model.Job, error)
	SearchJobs(ctx context.Context, keyword string) ([]*model.Job, error)
	ListJobsByCreator(ctx context.Context, creatorID string) ([]*model.Job, error)
	AppendApplication(ctx context.Context, jobID string, applicationID bson.ObjectID) error
}

const jobCollection = "jobs"

type jobMongoRepository struct {
	db *mongo.Database
}

func NewJobMongoRepository(db *mongo.Database) JobRepository {
	return &jobMongoRepository{db: db}
}

func (r *jobMongoRepository) CreateJob(ctx context.Context, job *model.Job) (*model.Job, error) {
	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now

	result, err := r.db.Collection(jobCollection).InsertOne(ctx, job)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		job.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return job, nil
}

func (r *jobMongoRepository) GetJob(ctx context.Context, id string) (*model.Job, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(jobCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var job model.Job
	if err := result.Decode(&job); err != nil {
		return nil, err
	}

	return &job, nil
}

// SearchJobs matches the keyword case-insensitively against title or
// description. The keyword is a literal substring, not a pattern; an empty
// keyword matches every job.
func (r *jobMongoRepository) SearchJobs(ctx context.Context, keyword string) ([]*model.Job, error) {
	pattern := regexp.QuoteMeta(keyword)
	filter := bson.M{"$or": bson.A{
		bson.M{"title": bson.M{"$regex": pattern, "$options": "i"}},
		bson.M{"description": bson.M{"$regex": pattern, "$options": "i"}},
	}}

	return r.find(ctx, filter)
}

func (r *jobMongoRepository) ListJobsByCreator(ctx context.Context, creatorID string) ([]*model.Job, error) {
	objectID, err := bson.ObjectIDFromHex(creatorID)
	if err != nil {
		return nil, err
	}

	return r.find(ctx, bson.M{"created_by": objectID})
}

func (r *jobMongoRepository) find(ctx context.Context, filter bson.M) ([]*model.Job, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection(jobCollection).Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var jobs []*model.Job
	for cursor.Next(ctx) {
		var job model.Job
		if err := cursor.Decode(&job); err != nil {
			return nil, err
		}
		jobs = append(jobs, &job)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}

func (r *jobMongoRepository) AppendApplication(
	ctx context.Context,
	jobID string,
	applicationID bson.ObjectID,
) error {
	objectID, err := bson.ObjectIDFromHex(jobID)
	if err != nil {
		return err
	}

	_, err = r.db.Collection(jobCollection).UpdateOne(
		ctx,
		bson.M{"_id": objectID},
		bson.M{
			"$push": bson.M{"applications": applicationID},
			"$set":  bson.M{"updated_at": time.Now()},
		},
	)

	return err
}
