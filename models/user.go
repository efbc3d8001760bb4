// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Privileged role values. Any other role string, including the empty one,
// grants no privileges.
const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
)

// User represents an account of the scholarship portal.
// Email is the lookup key; Role is the only authorization attribute.
type User struct {
	// ID is the store-assigned identifier (24-character hex in JSON).
	ID primitive.ObjectID `json:"_id" bson:"_id,omitempty"`

	// Name is the display name of the user.
	Name string `json:"name,omitempty" bson:"name,omitempty"`

	// Email identifies the user across the API and inside token claims.
	Email string `json:"email" bson:"email" validate:"required,email"`

	// Photo is an optional avatar URL.
	Photo string `json:"photo,omitempty" bson:"photo,omitempty"`

	// Role is a free-form string; see RoleAdmin and RoleModerator.
	Role string `json:"role,omitempty" bson:"role,omitempty"`
}

// HasRole reports whether the user holds exactly the given non-empty role.
func (u User) HasRole(role string) bool {
	return role != "" && u.Role == role
}

// TableName returns the name of the table or collection holding users.
func (u User) TableName() string {
	return "users"
}

// AdminStatus is the response of the admin role check.
type AdminStatus struct {
	Admin bool `json:"admin"`
}

// ModeratorStatus is the response of the moderator role check.
type ModeratorStatus struct {
	Moderator bool `json:"moderator"`
}
