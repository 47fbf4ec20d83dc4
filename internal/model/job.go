package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Job represents a posting owned by one recruiter and tied to one company.
// Company and CreatedBy are set at creation and never change.
type Job struct {
	ID              bson.ObjectID   `bson:"_id,omitempty"`
	Title           string          `bson:"title"`
	Description     string          `bson:"description"`
	Requirements    []string        `bson:"requirements"`
	Salary          float64         `bson:"salary"`
	Location        string          `bson:"location"`
	JobType         string          `bson:"job_type"`
	ExperienceLevel string          `bson:"experience_level"`
	Position        int             `bson:"position"`
	Company         bson.ObjectID   `bson:"company"`
	CreatedBy       bson.ObjectID   `bson:"created_by"`
	Applications    []bson.ObjectID `bson:"applications,omitempty"`
	CreatedAt       time.Time       `bson:"created_at"`
	UpdatedAt       time.Time       `bson:"updated_at"`
}
