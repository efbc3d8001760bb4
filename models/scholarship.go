// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Scholarship is a published scholarship listing.
type Scholarship struct {
	ID primitive.ObjectID `json:"_id" bson:"_id,omitempty"`

	ScholarshipName     string `json:"scholarship_name,omitempty" bson:"scholarship_name,omitempty"`
	UniversityName      string `json:"university_name" bson:"university_name" validate:"required"`
	UniversityLogo      string `json:"university_logo" bson:"university_logo"`
	UniversityLocation  string `json:"university_location" bson:"university_location"`
	UniversityWorldRank string `json:"university_world_rank,omitempty" bson:"university_world_rank,omitempty"`
	SubjectName         string `json:"subject_name" bson:"subject_name"`
	ScholarshipCategory string `json:"scholarship_category" bson:"scholarship_category"`
	Degree              string `json:"degree,omitempty" bson:"degree,omitempty"`

	TuitionFees     float64 `json:"tuition_fees,omitempty" bson:"tuition_fees,omitempty" validate:"gte=0"`
	ApplicationFees float64 `json:"application_fees" bson:"application_fees" validate:"gte=0"`
	ServiceCharge   float64 `json:"service_charge" bson:"service_charge" validate:"gte=0"`

	ApplicationDeadline    string `json:"application_deadline" bson:"application_deadline"`
	ScholarshipDescription string `json:"scholarship_description" bson:"scholarship_description"`
	PostDate               string `json:"post_date" bson:"post_date"`
	PostedUserEmail        string `json:"posted_user_email,omitempty" bson:"posted_user_email,omitempty" validate:"omitempty,email"`
}

// TableName returns the name of the table or collection holding scholarships.
func (s Scholarship) TableName() string {
	return "scholarships"
}

// UpdatableFields returns the fixed set of fields overwritten by a
// scholarship update, keyed by their stored names. Fields outside this set
// are never touched by an update.
func (s Scholarship) UpdatableFields() map[string]any {
	return map[string]any{
		"university_name":         s.UniversityName,
		"university_logo":         s.UniversityLogo,
		"university_location":     s.UniversityLocation,
		"scholarship_category":    s.ScholarshipCategory,
		"subject_name":            s.SubjectName,
		"application_deadline":    s.ApplicationDeadline,
		"scholarship_description": s.ScholarshipDescription,
		"post_date":               s.PostDate,
		"service_charge":          s.ServiceCharge,
		"application_fees":        s.ApplicationFees,
	}
}
