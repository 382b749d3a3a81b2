// Package repository provides keyed storage for portfolio records. One
// generic implementation serves all five kinds; it exists in a Mongo-backed
// flavor and an in-memory flavor used by tests and DB-less development.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("record not found")

// Entity constrains a repository element to a pointer type carrying a
// store-assigned ObjectID.
type Entity[T any] interface {
	*T
	GetID() primitive.ObjectID
	SetID(id primitive.ObjectID)
}

// Repository is the uniform per-kind storage contract.
//
//   - List returns the full collection; no filter, no pagination.
//   - Insert assigns a fresh identifier and stores the record.
//   - UpdateByID merges the supplied fields into the stored record and
//     returns the result, or ErrNotFound when the id is unknown. Last
//     write wins; there is no optimistic-concurrency check.
//   - DeleteByID is idempotent: deleting an absent id is not an error.
//   - DeleteAll clears the collection (seeding, resume singleton replace).
type Repository[T any, PT Entity[T]] interface {
	List(ctx context.Context) ([]PT, error)
	Insert(ctx context.Context, rec PT) (PT, error)
	UpdateByID(ctx context.Context, id string, patch map[string]interface{}) (PT, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}
