package mongo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shoplite/store-api/internal/core/domain"
)

const activityCollection = "activity_logs"

// listLimit caps how many activity records a single List call returns.
const listLimit = 500

// ActivityRepository implements ports.ActivityRecorder on MongoDB. Records
// are append-only; nothing here updates or deletes.
type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{coll: db.Collection(activityCollection)}
}

type activityDoc struct {
	Datetime time.Time `bson:"datetime"`
	Username string    `bson:"username"`
	Activity string    `bson:"activity"`
}

// Append writes one record stamped with the current server time.
func (r *ActivityRepository) Append(ctx context.Context, username, activity string) error {
	doc := activityDoc{
		Datetime: time.Now().UTC(),
		Username: username,
		Activity: activity,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("append activity: %w", err)
	}
	return nil
}

func (r *ActivityRepository) List(ctx context.Context, usernamePrefix string) ([]domain.ActivityRecord, error) {
	filter := bson.M{}
	if usernamePrefix != "" {
		filter["username"] = primitive.Regex{
			Pattern: "^" + regexp.QuoteMeta(usernamePrefix),
			Options: "i",
		}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "datetime", Value: -1}}).
		SetLimit(listLimit)
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find activity: %w", err)
	}
	defer cur.Close(ctx)

	var docs []activityDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode activity: %w", err)
	}

	records := make([]domain.ActivityRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, domain.ActivityRecord{
			Timestamp: doc.Datetime.UTC(),
			Username:  doc.Username,
			Activity:  doc.Activity,
		})
	}
	return records, nil
}
