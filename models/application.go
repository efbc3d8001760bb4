// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Application statuses. A new application is pending until feedback marks
// it as successful.
const (
	ApplicationStatusPending = "pending"
	ApplicationStatusSuccess = "success"
)

// Application is a user's application to a scholarship.
type Application struct {
	ID primitive.ObjectID `json:"_id" bson:"_id,omitempty"`

	ScholarshipID string `json:"scholarshipId,omitempty" bson:"scholarshipId,omitempty"`
	UserName      string `json:"userName,omitempty" bson:"userName,omitempty"`
	UserEmail     string `json:"userEmail" bson:"userEmail" validate:"required,email"`
	UserID        string `json:"userId,omitempty" bson:"userId,omitempty"`

	Phone     string `json:"phone,omitempty" bson:"phone,omitempty"`
	Photo     string `json:"photo,omitempty" bson:"photo,omitempty"`
	Address   string `json:"address,omitempty" bson:"address,omitempty"`
	Gender    string `json:"gender,omitempty" bson:"gender,omitempty"`
	Degree    string `json:"degree,omitempty" bson:"degree,omitempty"`
	SSCResult string `json:"sscResult,omitempty" bson:"sscResult,omitempty"`
	HSCResult string `json:"hscResult,omitempty" bson:"hscResult,omitempty"`
	StudyGap  string `json:"studyGap,omitempty" bson:"studyGap,omitempty"`

	UniversityName      string `json:"universityName,omitempty" bson:"universityName,omitempty"`
	ScholarshipCategory string `json:"scholarshipCategory,omitempty" bson:"scholarshipCategory,omitempty"`
	SubjectCategory     string `json:"subjectCategory,omitempty" bson:"subjectCategory,omitempty"`

	ApplicationFees float64 `json:"applicationFees,omitempty" bson:"applicationFees,omitempty" validate:"gte=0"`
	ServiceCharge   float64 `json:"serviceCharge,omitempty" bson:"serviceCharge,omitempty" validate:"gte=0"`

	AppliedDate string `json:"appliedDate,omitempty" bson:"appliedDate,omitempty"`
	Feedback    string `json:"feedback,omitempty" bson:"feedback,omitempty"`
	Status      string `json:"status" bson:"status"`
}

// TableName returns the name of the table or collection holding applications.
func (a Application) TableName() string {
	return "applyScholarships"
}

// ListFilter narrows list operations by an equality match on the owner's
// email. The zero value matches everything.
type ListFilter struct {
	UserEmail string
}

// IsEmpty reports whether the filter matches every document.
func (f ListFilter) IsEmpty() bool {
	return f.UserEmail == ""
}
