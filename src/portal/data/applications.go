package data

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/microgrants/grant-portal/src/portal/types"
)

const applicationCollection = "applications"

// Applications is the typed accessor for the applications collection.
type Applications struct {
	mongo *Mongo
}

func NewApplications(m *Mongo) *Applications {
	return &Applications{mongo: m}
}

// Create inserts a new application document. The connection is ensured
// before the write so an unreachable store surfaces as ErrConnection rather
// than ErrPersistence.
func (a *Applications) Create(ctx context.Context, app *types.Application) error {
	db, err := a.mongo.Ensure(ctx)
	if err != nil {
		return err
	}

	if app.Status == "" {
		app.Status = types.StatusPending
	}
	if app.SubmittedAt.IsZero() {
		app.SubmittedAt = time.Now().UTC()
	}

	if _, err := db.Collection(applicationCollection).InsertOne(ctx, app); err != nil {
		return fmt.Errorf("%w: insert application: %v", ErrPersistence, err)
	}
	return nil
}

// List returns applications ordered by submission time descending, capped
// at limit. An empty status matches every record.
func (a *Applications) List(ctx context.Context, status string, limit int64) ([]types.Application, error) {
	db, err := a.mongo.Ensure(ctx)
	if err != nil {
		return nil, err
	}

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "submittedAt", Value: -1}}).
		SetLimit(limit)

	cur, err := db.Collection(applicationCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: list applications: %v", ErrPersistence, err)
	}

	apps := make([]types.Application, 0)
	if err := cur.All(ctx, &apps); err != nil {
		return nil, fmt.Errorf("%w: decode applications: %v", ErrPersistence, err)
	}
	return apps, nil
}
