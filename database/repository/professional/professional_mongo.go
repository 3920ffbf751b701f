package professionalRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homeserv/database"
	"homeserv/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no active professional matches the lookup.
var ErrNotFound = errors.New("professional not found")

// ProfessionalRepository defines the interface for the professional credential store.
type ProfessionalRepository interface {
	GetActiveByEmail(email string) (*models.Professional, error)
}

// MongoProfessionalRepo implements ProfessionalRepository using MongoDB.
type MongoProfessionalRepo struct {
	coll *mongo.Collection
}

// NewMongoProfessionalRepo creates a new instance of ProfessionalRepository using MongoDB.
func NewMongoProfessionalRepo() ProfessionalRepository {
	coll := database.MongoClient.Database("homeserv").Collection("professionals")
	return &MongoProfessionalRepo{coll: coll}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetActiveByEmail retrieves an active professional by email.
func (r *MongoProfessionalRepo) GetActiveByEmail(email string) (*models.Professional, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"email": email, "is_active": true}
	var professional models.Professional
	if err := r.coll.FindOne(ctx, filter).Decode(&professional); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("professional with email %s: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch professional with email %s: %w", email, err)
	}
	return &professional, nil
}
