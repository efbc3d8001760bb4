// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// InsertResult describes the outcome of a single-document insert.
// The JSON shape follows the document store's own insert result so that
// existing clients can read insertedId directly.
type InsertResult struct {
	Acknowledged bool                `json:"acknowledged"`
	InsertedID   *primitive.ObjectID `json:"insertedId"`
}

// UpdateResult describes the outcome of a single-document update.
type UpdateResult struct {
	Acknowledged  bool                `json:"acknowledged"`
	MatchedCount  int64               `json:"matchedCount"`
	ModifiedCount int64               `json:"modifiedCount"`
	UpsertedCount int64               `json:"upsertedCount"`
	UpsertedID    *primitive.ObjectID `json:"upsertedId"`
}

// DeleteResult describes the outcome of a single-document delete.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// MessageResponse is the body of every error response and of the
// informational "already exists" reply.
type MessageResponse struct {
	Message string `json:"message"`
}

// NewInsertResult builds an acknowledged InsertResult for id.
func NewInsertResult(id primitive.ObjectID) InsertResult {
	return InsertResult{Acknowledged: true, InsertedID: &id}
}

// UserExistsResponse replaces the insert result when a user with the same
// email is already stored. InsertedID is always null.
type UserExistsResponse struct {
	Message    string              `json:"message"`
	InsertedID *primitive.ObjectID `json:"insertedId"`
}
