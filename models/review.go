// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Review is a user's free-form review of a scholarship.
type Review struct {
	ID primitive.ObjectID `json:"_id" bson:"_id,omitempty"`

	ScholarshipID   string `json:"scholarshipId,omitempty" bson:"scholarshipId,omitempty"`
	ScholarshipName string `json:"scholarshipName,omitempty" bson:"scholarshipName,omitempty"`
	UniversityName  string `json:"universityName,omitempty" bson:"universityName,omitempty"`

	UserName  string `json:"userName,omitempty" bson:"userName,omitempty"`
	UserEmail string `json:"userEmail" bson:"userEmail" validate:"required,email"`
	UserImage string `json:"userImage,omitempty" bson:"userImage,omitempty"`

	Rating     float64 `json:"rating" bson:"rating" validate:"gte=0,lte=5"`
	Comment    string  `json:"comment,omitempty" bson:"comment,omitempty"`
	ReviewDate string  `json:"reviewDate,omitempty" bson:"reviewDate,omitempty"`
}

// TableName returns the name of the table or collection holding reviews.
func (r Review) TableName() string {
	return "reviews"
}
