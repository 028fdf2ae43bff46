package users

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/corkboard/corkboard/internal/models"
)

// Repository defines persistence operations for user identities. Lookups
// return (nil, nil) when no record matches.
type Repository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, u *models.User) (*models.User, error)
}

// MongoRepository implements Repository using a Mongo collection.
type MongoRepository struct {
	col *mongo.Collection
}

// NewMongoRepository creates the repository and ensures the unique index on
// email. The uniqueness check in the service layer stays best-effort; the
// index backstops it.
func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	idx := mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)}
	_, _ = col.Indexes().CreateOne(context.Background(), idx)
	return &MongoRepository{col: col}
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var u models.User
	if err := r.col.FindOne(ctx, filter).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *MongoRepository) Insert(ctx context.Context, u *models.User) (*models.User, error) {
	now := time.Now().UTC()
	if u.ID == "" {
		u.ID = primitive.NewObjectID().Hex()
	}
	u.CreatedAt = now
	u.UpdatedAt = now
	if _, err := r.col.InsertOne(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
