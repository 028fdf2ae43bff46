package posts

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository defines persistence operations for posts. Listings are sorted
// by creation time descending; Get returns (nil, nil) when the id is absent;
// Update and Delete of an absent id are silent no-ops.
type Repository interface {
	Insert(ctx context.Context, p *Post) (string, error)
	Get(ctx context.Context, id string) (*Post, error)
	ListRecent(ctx context.Context) ([]*Post, error)
	ListByAuthor(ctx context.Context, userID string) ([]*Post, error)
	Update(ctx context.Context, id, message string, name *string) error
	Delete(ctx context.Context, id string) error
}

// MongoRepository implements Repository using a Mongo collection.
type MongoRepository struct {
	col *mongo.Collection
}

// NewMongoRepository creates the repository and ensures the created_at index
// that backs the reverse-chronological listings.
func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	idx := mongo.IndexModel{Keys: bson.D{{Key: "created_at", Value: -1}}}
	_, _ = col.Indexes().CreateOne(context.Background(), idx)
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Insert(ctx context.Context, p *Post) (string, error) {
	if p.ID == "" {
		p.ID = primitive.NewObjectID().Hex()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return "", err
	}
	return p.ID, nil
}

func (r *MongoRepository) Get(ctx context.Context, id string) (*Post, error) {
	var p Post
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *MongoRepository) ListRecent(ctx context.Context) ([]*Post, error) {
	return r.list(ctx, bson.M{})
}

func (r *MongoRepository) ListByAuthor(ctx context.Context, userID string) ([]*Post, error) {
	return r.list(ctx, bson.M{"author.id": userID})
}

func (r *MongoRepository) list(ctx context.Context, filter bson.M) ([]*Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*Post{}
	for cur.Next(ctx) {
		var p Post
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, cur.Err()
}

func (r *MongoRepository) Update(ctx context.Context, id, message string, name *string) error {
	set := bson.M{"message": message, "modified_at": time.Now().UTC()}
	if name != nil {
		set["author.name"] = *name
	}
	// an absent id matches nothing, which leaves this a silent no-op
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
