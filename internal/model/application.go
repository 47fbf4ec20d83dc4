package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Application statuses. The store accepts any lowercase string; these are the
// values the workflow itself writes.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// Application is the join record between a job and an applicant. At most one
// exists per (job, applicant) pair, backed by a unique compound index.
type Application struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Job       bson.ObjectID `bson:"job"`
	Applicant bson.ObjectID `bson:"applicant"`
	Status    string        `bson:"status"`
	CreatedAt time.Time     `bson:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at"`
}
