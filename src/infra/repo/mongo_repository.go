package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jokesapi/src/core/domain"
	"jokesapi/src/infra/db"
)

// documentValidationFailure is the server code for a $jsonSchema rejection.
const documentValidationFailure = 121

// jokeDocument is the stored shape. Field names match what mongoose wrote
// so existing collections are readable.
type jokeDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Type      int                `bson:"type"`
	Setup     string             `bson:"setup"`
	Punchline string             `bson:"punchline"`
	Version   int                `bson:"__v"`
}

func (d jokeDocument) toDomain() domain.Joke {
	return domain.Joke{
		ID:        d.ID.Hex(),
		Type:      d.Type,
		Setup:     d.Setup,
		Punchline: d.Punchline,
		Version:   d.Version,
	}
}

// MongoRepository implements ports.JokeRepository on a MongoDB collection.
type MongoRepository struct {
	store        *db.Mongo
	coll         *mongo.Collection
	queryTimeout time.Duration
	log          *slog.Logger
}

// NewMongoRepository constructs a repository backed by the named collection.
func NewMongoRepository(m *db.Mongo, collection string, queryTimeout time.Duration, log *slog.Logger) *MongoRepository {
	return &MongoRepository{
		store:        m,
		coll:         m.DB.Collection(collection),
		queryTimeout: queryTimeout,
		log:          log,
	}
}

func (r *MongoRepository) Health(ctx context.Context) error {
	return r.store.Health(ctx)
}

func (r *MongoRepository) FindAll(ctx context.Context) ([]domain.Joke, error) {
	ctx, cancel := withTimeout(ctx, r.queryTimeout)
	defer cancel()

	return r.find(ctx, "find all", bson.M{})
}

func (r *MongoRepository) FindByID(ctx context.Context, id string) ([]domain.Joke, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, r.queryTimeout)
	defer cancel()

	return r.find(ctx, "find by id", bson.M{"_id": oid})
}

func (r *MongoRepository) FindOneByType(ctx context.Context, jokeType int) (*domain.Joke, error) {
	ctx, cancel := withTimeout(ctx, r.queryTimeout)
	defer cancel()

	var doc jokeDocument
	err := r.coll.FindOne(ctx, bson.M{"type": jokeType}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, r.classify("find one by type", err)
	}
	j := doc.toDomain()
	return &j, nil
}

func (r *MongoRepository) Insert(ctx context.Context, fields domain.JokeFields) (*domain.Joke, error) {
	if err := validateNew(fields); err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, r.queryTimeout)
	defer cancel()

	doc := jokeDocument{
		Type:      *fields.Type,
		Setup:     *fields.Setup,
		Punchline: *fields.Punchline,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, r.classify("insert", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, domain.NewStoreError("insert", fmt.Errorf("unexpected inserted id %T", res.InsertedID))
	}
	doc.ID = oid

	j := doc.toDomain()
	return &j, nil
}

func (r *MongoRepository) UpdateByID(ctx context.Context, id string, fields domain.JokeFields) (*domain.Joke, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	if err := validatePatch(fields); err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, r.queryTimeout)
	defer cancel()

	update := bson.M{"$inc": bson.M{"__v": 1}}
	if set := setFields(fields); len(set) > 0 {
		update["$set"] = set
	}

	var doc jokeDocument
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, r.classify("update", err)
	}
	j := doc.toDomain()
	return &j, nil
}

func (r *MongoRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return false, err
	}

	ctx, cancel := withTimeout(ctx, r.queryTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, r.classify("delete", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoRepository) find(ctx context.Context, op string, filter bson.M) ([]domain.Joke, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, r.classify(op, err)
	}

	var docs []jokeDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, r.classify(op, err)
	}

	jokes := make([]domain.Joke, 0, len(docs))
	for _, d := range docs {
		jokes = append(jokes, d.toDomain())
	}
	return jokes, nil
}

// classify turns a driver error into a StoreError and logs the cause.
func (r *MongoRepository) classify(op string, err error) error {
	r.log.Error("mongo "+op+" failed", "error", err)
	return classifyMongoError(op, err)
}

func classifyMongoError(op string, err error) *domain.StoreError {
	var serverErr mongo.ServerError
	switch {
	case mongo.IsNetworkError(err),
		mongo.IsTimeout(err),
		errors.Is(err, mongo.ErrClientDisconnected),
		errors.Is(err, context.DeadlineExceeded):
		return domain.NewUnavailableError(err)
	case errors.As(err, &serverErr) && serverErr.HasErrorCode(documentValidationFailure):
		return &domain.StoreError{
			Base:    domain.ErrInvalidInput,
			Message: "Document failed validation",
			Err:     err,
		}
	default:
		return domain.NewStoreError(op, err)
	}
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, &domain.StoreError{
			Base:    domain.ErrInvalidInput,
			Message: fmt.Sprintf("Cast to ObjectId failed for value %q at path \"_id\"", id),
			Field:   "_id",
			Err:     err,
		}
	}
	return oid, nil
}

func setFields(f domain.JokeFields) bson.M {
	set := bson.M{}
	if f.Type != nil {
		set["type"] = *f.Type
	}
	if f.Setup != nil {
		set["setup"] = *f.Setup
	}
	if f.Punchline != nil {
		set["punchline"] = *f.Punchline
	}
	return set
}
