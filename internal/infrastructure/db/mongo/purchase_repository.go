package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shoplite/store-api/internal/core/domain"
)

const purchasesCollection = "purchases"

// PurchaseRepository implements ports.PurchaseRepository on MongoDB.
type PurchaseRepository struct {
	coll *mongo.Collection
}

func NewPurchaseRepository(db *mongo.Database) *PurchaseRepository {
	return &PurchaseRepository{coll: db.Collection(purchasesCollection)}
}

type purchaseDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Items    []domain.CartEntry `bson:"items"`
	Total    float64            `bson:"total"`
	Datetime time.Time          `bson:"datetime"`
}

func (r *PurchaseRepository) Insert(ctx context.Context, p *domain.Purchase) error {
	doc := purchaseDoc{
		Username: p.Username,
		Items:    p.Items,
		Total:    p.Total,
		Datetime: p.Datetime,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

func (r *PurchaseRepository) List(ctx context.Context) ([]domain.Purchase, error) {
	opts := options.Find().SetSort(bson.D{{Key: "datetime", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find purchases: %w", err)
	}
	defer cur.Close(ctx)

	var docs []purchaseDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode purchases: %w", err)
	}

	purchases := make([]domain.Purchase, 0, len(docs))
	for _, doc := range docs {
		purchases = append(purchases, domain.Purchase{
			ID:       doc.ID.Hex(),
			Username: doc.Username,
			Items:    doc.Items,
			Total:    doc.Total,
			Datetime: doc.Datetime.UTC(),
		})
	}
	return purchases, nil
}
