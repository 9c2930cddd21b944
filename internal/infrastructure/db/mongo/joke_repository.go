package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jokehub/jokes-service/internal/core/domain"
)

const jokesCollection = "jokes"

// JokeRepository implements ports.JokeRepository on MongoDB.
type JokeRepository struct {
	coll *mongo.Collection
}

func NewJokeRepository(db *mongo.Database) *JokeRepository {
	return &JokeRepository{coll: db.Collection(jokesCollection)}
}

type mongoJoke struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	Content    string             `bson:"content"`
	JokesterID string             `bson:"jokester_id"`
	CreatedAt  int64              `bson:"created_at"`
}

func (r *JokeRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count jokes: %w", err)
	}
	return n, nil
}

func (r *JokeRepository) FindMany(ctx context.Context, take, skip int64) ([]domain.Joke, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetLimit(take).
		SetSkip(skip)

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find jokes: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoJoke
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode jokes: %w", err)
	}

	jokes := make([]domain.Joke, 0, len(docs))
	for _, d := range docs {
		jokes = append(jokes, toDomainJoke(d))
	}
	return jokes, nil
}

func (r *JokeRepository) FindByID(ctx context.Context, id string) (*domain.Joke, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrJokeNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d mongoJoke
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJokeNotFound
		}
		return nil, fmt.Errorf("find joke: %w", err)
	}

	joke := toDomainJoke(d)
	return &joke, nil
}

func (r *JokeRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrJokeNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete joke: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrJokeNotFound
	}
	return nil
}

func toDomainJoke(d mongoJoke) domain.Joke {
	return domain.Joke{
		ID:         d.ID.Hex(),
		Name:       d.Name,
		Content:    d.Content,
		JokesterID: d.JokesterID,
		CreatedAt:  unixToTime(d.CreatedAt),
	}
}
