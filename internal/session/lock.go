// Package session enforces the single-active-manager rule. The lock
// is one document in the shared store written with a conditional
// upsert, so two near-simultaneous manager logins cannot both pass a
// check before either write lands.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrLockHeld is returned when a different manager already holds the
// active-manager marker.
var ErrLockHeld = errors.New("another manager is already logged in")

// ManagerLock is the global active-manager marker. Acquire is
// re-entrant for the current holder.
type ManagerLock interface {
	Acquire(ctx context.Context, holder string) error
	Release(ctx context.Context, holder string) error
	// ForceRelease clears the marker regardless of holder. Used for
	// stale-marker cleanup after a crash.
	ForceRelease(ctx context.Context) error
	Holder(ctx context.Context) (string, error)
}

const lockID = "active-manager"

// MongoLock implements ManagerLock on the "locks" collection.
type MongoLock struct {
	Coll *mongo.Collection
}

func NewMongoLock(db *mongo.Database) *MongoLock {
	return &MongoLock{Coll: db.Collection("locks")}
}

// Acquire takes the marker in a single compare-and-swap write: the
// filter only matches when the marker is free or already ours, and the
// upsert's duplicate-key failure is exactly the case where someone
// else holds it.
func (l *MongoLock) Acquire(ctx context.Context, holder string) error {
	filter := bson.M{
		"_id": lockID,
		"$or": bson.A{
			bson.M{"holder": ""},
			bson.M{"holder": holder},
		},
	}
	update := bson.M{"$set": bson.M{"holder": holder, "acquiredAt": time.Now()}}
	opts := options.Update().SetUpsert(true)

	_, err := l.Coll.UpdateOne(ctx, filter, update, opts)
	if mongo.IsDuplicateKeyError(err) {
		return ErrLockHeld
	}
	return err
}

// Release frees the marker iff this holder owns it. A release by a
// non-holder is a no-op.
func (l *MongoLock) Release(ctx context.Context, holder string) error {
	_, err := l.Coll.UpdateOne(ctx,
		bson.M{"_id": lockID, "holder": holder},
		bson.M{"$set": bson.M{"holder": ""}},
	)
	return err
}

func (l *MongoLock) ForceRelease(ctx context.Context) error {
	_, err := l.Coll.UpdateOne(ctx,
		bson.M{"_id": lockID},
		bson.M{"$set": bson.M{"holder": ""}},
	)
	return err
}

func (l *MongoLock) Holder(ctx context.Context) (string, error) {
	var doc struct {
		Holder string `bson:"holder"`
	}
	err := l.Coll.FindOne(ctx, bson.M{"_id": lockID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return doc.Holder, nil
}

// MemoryLock is the in-process twin of MongoLock.
type MemoryLock struct {
	mu     sync.Mutex
	holder string
}

func NewMemoryLock() *MemoryLock { return &MemoryLock{} }

func (l *MemoryLock) Acquire(_ context.Context, holder string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.holder != "" && l.holder != holder {
		return ErrLockHeld
	}
	l.holder = holder
	return nil
}

func (l *MemoryLock) Release(_ context.Context, holder string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.holder == holder {
		l.holder = ""
	}
	return nil
}

func (l *MemoryLock) ForceRelease(_ context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.holder = ""
	return nil
}

func (l *MemoryLock) Holder(_ context.Context) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.holder, nil
}
