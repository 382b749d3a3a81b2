package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo implements Repository over a MongoDB collection. Records are
// keyed by the driver's ObjectID in "_id".
type MongoRepo[T any, PT Entity[T]] struct {
	col *mongo.Collection
}

func NewMongoRepo[T any, PT Entity[T]](col *mongo.Collection) *MongoRepo[T, PT] {
	return &MongoRepo[T, PT]{col: col}
}

func (r *MongoRepo[T, PT]) List(ctx context.Context) ([]PT, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []PT{}
	for cur.Next(ctx) {
		var rec T
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		out = append(out, PT(&rec))
	}
	return out, cur.Err()
}

func (r *MongoRepo[T, PT]) Insert(ctx context.Context, rec PT) (PT, error) {
	if rec.GetID().IsZero() {
		rec.SetID(primitive.NewObjectID())
	}
	if _, err := r.col.InsertOne(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *MongoRepo[T, PT]) UpdateByID(ctx context.Context, id string, patch map[string]interface{}) (PT, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var out T
	if len(patch) == 0 {
		// nothing to merge, return the stored record unchanged
		err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&out)
	} else {
		set := bson.M{}
		for k, v := range patch {
			set[k] = v
		}
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&out)
	}
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return PT(&out), nil
}

func (r *MongoRepo[T, PT]) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// unknown identifier, idempotent delete
		return nil
	}
	_, err = r.col.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

func (r *MongoRepo[T, PT]) DeleteAll(ctx context.Context) error {
	_, err := r.col.DeleteMany(ctx, bson.M{})
	return err
}
