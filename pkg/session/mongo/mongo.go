// Package mongo provides a MongoDB-backed session store for applications
// whose navigation sessions live next to their other data. Expired
// sessions are filtered on read and removed by Cleanup.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/navstack/pkg/nav"
	"github.com/matzehuels/navstack/pkg/session"
)

// Default collection coordinates.
const (
	DefaultDatabase   = "navstack"
	DefaultCollection = "sessions"
)

// Config configures the MongoDB connection.
type Config struct {
	// URI is the MongoDB connection string (mongodb://...).
	URI string
	// Database selects the database. Empty means DefaultDatabase.
	Database string
	// Collection selects the collection. Empty means DefaultCollection.
	Collection string
}

// Store keeps one document per session, keyed by session ID.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// document is the persisted shape. The session ID doubles as the
// document key.
type document struct {
	ID        string    `bson:"_id"`
	IDs       []string  `bson:"ids,omitempty"`
	Direction string    `bson:"direction"`
	SavedAt   time.Time `bson:"saved_at"`
	ExpiresAt time.Time `bson:"expires_at"`
}

// NewStore connects to MongoDB and verifies the connection with a ping.
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	db := cfg.Database
	if db == "" {
		db = DefaultDatabase
	}
	coll := cfg.Collection
	if coll == "" {
		coll = DefaultCollection
	}
	return &Store{client: client, coll: client.Database(db).Collection(coll)}, nil
}

// Get retrieves a session by ID. Missing and expired sessions both return
// nil, nil; expired documents are removed on the way.
func (s *Store) Get(ctx context.Context, id string) (*session.Session, error) {
	var doc document
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	sess, err := fromDocument(doc)
	if err != nil {
		return nil, err
	}
	if sess.IsExpired() {
		_, _ = s.coll.DeleteOne(ctx, bson.M{"_id": id})
		return nil, nil
	}
	return sess, nil
}

// Set stores a session, replacing any previous one with the same ID.
func (s *Store) Set(ctx context.Context, sess *session.Session) error {
	doc := toDocument(sess)
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

// Delete removes a session. Deleting a missing session is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// List returns the IDs of all live sessions, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	filter := bson.M{"expires_at": bson.M{"$gt": time.Now()}}
	cursor, err := s.coll.Find(ctx, filter, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer cursor.Close(ctx)

	var ids []string
	for cursor.Next(ctx) {
		var doc struct {
			ID string `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode session ID: %w", err)
		}
		ids = append(ids, doc.ID)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	sort.Strings(ids)
	return ids, nil
}

// Cleanup removes expired sessions.
func (s *Store) Cleanup(ctx context.Context) error {
	filter := bson.M{"expires_at": bson.M{"$lte": time.Now()}}
	if _, err := s.coll.DeleteMany(ctx, filter); err != nil {
		return fmt.Errorf("cleanup sessions: %w", err)
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func toDocument(sess *session.Session) document {
	return document{
		ID:        sess.ID,
		IDs:       slices.Clone(sess.IDs),
		Direction: sess.Direction.String(),
		SavedAt:   sess.SavedAt,
		ExpiresAt: sess.ExpiresAt,
	}
}

func fromDocument(doc document) (*session.Session, error) {
	var dir nav.Direction
	if err := dir.UnmarshalText([]byte(doc.Direction)); err != nil {
		return nil, fmt.Errorf("session %q: %w", doc.ID, err)
	}
	return &session.Session{
		ID:        doc.ID,
		IDs:       doc.IDs,
		Direction: dir,
		SavedAt:   doc.SavedAt,
		ExpiresAt: doc.ExpiresAt,
	}, nil
}

var _ session.Store = (*Store)(nil)
