package store

import (
	"fmt"

	"github.com/MKhiriev/scholarship-portal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Column lists exclude the id column, which every table keeps first.
var (
	userColumns = []string{"name", "email", "photo", "role"}

	scholarshipColumns = []string{
		"scholarship_name", "university_name", "university_logo", "university_location",
		"university_world_rank", "subject_name", "scholarship_category", "degree",
		"tuition_fees", "application_fees", "service_charge",
		"application_deadline", "scholarship_description", "post_date", "posted_user_email",
	}

	applicationColumns = []string{
		"scholarship_id", "user_name", "user_email", "user_id",
		"phone", "photo", "address", "gender", "degree", "ssc_result", "hsc_result", "study_gap",
		"university_name", "scholarship_category", "subject_category",
		"application_fees", "service_charge", "applied_date", "feedback", "status",
	}

	reviewColumns = []string{
		"scholarship_id", "scholarship_name", "university_name",
		"user_name", "user_email", "user_image",
		"rating", "comment", "review_date",
	}
)

func withID(columns []string) []string {
	return append([]string{"id"}, columns...)
}

func parseRowID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid stored id %q: %w", hex, err)
	}

	return id, nil
}

func userValues(u models.User) []any {
	return []any{u.Name, u.Email, u.Photo, u.Role}
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	var id string
	if err := row.Scan(&id, &u.Name, &u.Email, &u.Photo, &u.Role); err != nil {
		return models.User{}, err
	}

	var err error
	u.ID, err = parseRowID(id)
	return u, err
}

func scholarshipValues(s models.Scholarship) []any {
	return []any{
		s.ScholarshipName, s.UniversityName, s.UniversityLogo, s.UniversityLocation,
		s.UniversityWorldRank, s.SubjectName, s.ScholarshipCategory, s.Degree,
		s.TuitionFees, s.ApplicationFees, s.ServiceCharge,
		s.ApplicationDeadline, s.ScholarshipDescription, s.PostDate, s.PostedUserEmail,
	}
}

func scanScholarship(row rowScanner) (models.Scholarship, error) {
	var s models.Scholarship
	var id string
	if err := row.Scan(&id,
		&s.ScholarshipName, &s.UniversityName, &s.UniversityLogo, &s.UniversityLocation,
		&s.UniversityWorldRank, &s.SubjectName, &s.ScholarshipCategory, &s.Degree,
		&s.TuitionFees, &s.ApplicationFees, &s.ServiceCharge,
		&s.ApplicationDeadline, &s.ScholarshipDescription, &s.PostDate, &s.PostedUserEmail,
	); err != nil {
		return models.Scholarship{}, err
	}

	var err error
	s.ID, err = parseRowID(id)
	return s, err
}

func applicationValues(a models.Application) []any {
	return []any{
		a.ScholarshipID, a.UserName, a.UserEmail, a.UserID,
		a.Phone, a.Photo, a.Address, a.Gender, a.Degree, a.SSCResult, a.HSCResult, a.StudyGap,
		a.UniversityName, a.ScholarshipCategory, a.SubjectCategory,
		a.ApplicationFees, a.ServiceCharge, a.AppliedDate, a.Feedback, a.Status,
	}
}

func scanApplication(row rowScanner) (models.Application, error) {
	var a models.Application
	var id string
	if err := row.Scan(&id,
		&a.ScholarshipID, &a.UserName, &a.UserEmail, &a.UserID,
		&a.Phone, &a.Photo, &a.Address, &a.Gender, &a.Degree, &a.SSCResult, &a.HSCResult, &a.StudyGap,
		&a.UniversityName, &a.ScholarshipCategory, &a.SubjectCategory,
		&a.ApplicationFees, &a.ServiceCharge, &a.AppliedDate, &a.Feedback, &a.Status,
	); err != nil {
		return models.Application{}, err
	}

	var err error
	a.ID, err = parseRowID(id)
	return a, err
}

func reviewValues(r models.Review) []any {
	return []any{
		r.ScholarshipID, r.ScholarshipName, r.UniversityName,
		r.UserName, r.UserEmail, r.UserImage,
		r.Rating, r.Comment, r.ReviewDate,
	}
}

func scanReview(row rowScanner) (models.Review, error) {
	var r models.Review
	var id string
	if err := row.Scan(&id,
		&r.ScholarshipID, &r.ScholarshipName, &r.UniversityName,
		&r.UserName, &r.UserEmail, &r.UserImage,
		&r.Rating, &r.Comment, &r.ReviewDate,
	); err != nil {
		return models.Review{}, err
	}

	var err error
	r.ID, err = parseRowID(id)
	return r, err
}
