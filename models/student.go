package models

import "time"

// Student is a learner profile managed from the admin dashboard.
type Student struct {
	ID          string   `bson:"id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Email       string   `bson:"email" json:"email"`
	PhoneNumber string   `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Guardian    string   `bson:"guardian,omitempty" json:"guardian,omitempty"`
	Grade       string   `bson:"grade,omitempty" json:"grade,omitempty"`
	Tags        []string `bson:"tags,omitempty" json:"tags,omitempty"`

	// Sessions the student is enrolled into.
	EnrolledSessionIDs []string `bson:"enrolledSessionIds,omitempty" json:"enrolledSessionIds,omitempty"`

	Portal    *PortalCredential `bson:"portal,omitempty" json:"portal,omitempty"`
	CreatedAt time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// PortalCredential is the student's learning-portal login. Only the bcrypt
// hash is stored; the plaintext password is returned once at issue time.
type PortalCredential struct {
	Username     string    `bson:"username" json:"username"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	IssuedAt     time.Time `bson:"issuedAt" json:"issuedAt"`
}

// StudentUpdateRequest is a partial update; zero-valued fields are left
// untouched.
type StudentUpdateRequest struct {
	ID          string   `json:"id"`
	Name        string   `json:"name,omitempty"`
	Email       string   `json:"email,omitempty"`
	PhoneNumber string   `json:"phoneNumber,omitempty"`
	Guardian    string   `json:"guardian,omitempty"`
	Grade       string   `json:"grade,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}
