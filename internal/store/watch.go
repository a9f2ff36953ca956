package store

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ChangeEvent is one write observed on a shared collection. The hub
// fans these out so every connected dashboard converges on the store's
// current snapshot without polling.
type ChangeEvent struct {
	Collection string `json:"collection"`
	Operation  string `json:"operation"` // insert, update, replace, delete
	Document   bson.M `json:"document,omitempty"`
}

// Watch tails a collection's change stream and forwards every event to
// the channel. Blocks until the context is cancelled or the stream
// fails.
func Watch(ctx context.Context, coll *mongo.Collection, events chan<- ChangeEvent) error {
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)
	stream, err := coll.Watch(ctx, mongo.Pipeline{}, opts)
	if err != nil {
		return fmt.Errorf("failed to open change stream on %s: %w", coll.Name(), err)
	}
	defer stream.Close(ctx)

	for stream.Next(ctx) {
		var change struct {
			OperationType string `bson:"operationType"`
			FullDocument  bson.M `bson:"fullDocument"`
		}
		if err := stream.Decode(&change); err != nil {
			log.Printf("Failed to decode change event on %s: %v", coll.Name(), err)
			continue
		}
		select {
		case events <- ChangeEvent{Collection: coll.Name(), Operation: change.OperationType, Document: change.FullDocument}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return stream.Err()
}
