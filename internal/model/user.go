package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Roles a user account can hold.
const (
	RoleJobSeeker = "job-seeker"
	RoleRecruiter = "recruiter"
	RoleAdmin     = "admin"
)

// User represents an account in the system. The profile is role-tagged:
// exactly one of the sub-documents is set for job seekers and recruiters,
// neither for admins.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	FullName     string        `bson:"full_name"`
	Email        string        `bson:"email"`
	PhoneNumber  string        `bson:"phone_number"`
	PasswordHash string        `bson:"password_hash"`
	Role         string        `bson:"role"`
	Profile      Profile       `bson:"profile"`
	CreatedAt    time.Time     `bson:"created_at"`
	UpdatedAt    time.Time     `bson:"updated_at"`
}

// Profile holds the role-dependent part of a user record.
type Profile struct {
	JobSeeker *JobSeekerProfile `bson:"job_seeker,omitempty"`
	Recruiter *RecruiterProfile `bson:"recruiter,omitempty"`
}

// JobSeekerProfile carries the fields only job seekers have.
type JobSeekerProfile struct {
	Bio                string   `bson:"bio,omitempty"`
	Skills             []string `bson:"skills,omitempty"`
	Resume             string   `bson:"resume,omitempty"`
	ResumeOriginalName string   `bson:"resume_original_name,omitempty"`
	ProfilePhoto       string   `bson:"profile_photo,omitempty"`
}

// RecruiterProfile carries the fields only recruiters have.
type RecruiterProfile struct {
	Company           bson.ObjectID `bson:"company,omitempty"`
	Proof             string        `bson:"proof,omitempty"`
	ProofOriginalName string        `bson:"proof_original_name,omitempty"`
}
