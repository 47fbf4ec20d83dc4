package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Company represents an employer entity referenced by jobs and recruiter profiles.
type Company struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	Name        string        `bson:"name"`
	Description string        `bson:"description,omitempty"`
	Website     string        `bson:"website,omitempty"`
	Location    string        `bson:"location,omitempty"`
	Logo        string        `bson:"logo,omitempty"`
	CreatedBy   bson.ObjectID `bson:"created_by,omitempty"`
	CreatedAt   time.Time     `bson:"created_at"`
	UpdatedAt   time.Time     `bson:"updated_at"`
}
