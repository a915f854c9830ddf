package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/khaoyai-getaway/content-service/internal/content"
)

// mongoKey is the fixed _id of the single content record. The document keeps
// its whole-document-overwrite semantics: the JSON payload is stored opaquely
// and replaced on every write.
const mongoKey = "content"

type persistedContent struct {
	ID        string    `bson:"_id"`
	JSON      string    `bson:"json"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// MongoRepo is an optional MongoDB-backed repository for deployments without
// a blob store.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Load(ctx context.Context) (*content.ContentDocument, error) {
	var pc persistedContent
	if err := m.col.FindOne(ctx, bson.M{"_id": mongoKey}).Decode(&pc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("load content record: %w", err)
	}
	var doc content.ContentDocument
	if err := json.Unmarshal([]byte(pc.JSON), &doc); err != nil {
		return nil, fmt.Errorf("decode content record: %w", err)
	}
	return &doc, nil
}

func (m *MongoRepo) Store(ctx context.Context, doc *content.ContentDocument) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode content record: %w", err)
	}
	set := bson.M{"json": string(data), "updatedAt": time.Now()}
	opts := options.Update().SetUpsert(true)
	if _, err := m.col.UpdateOne(ctx, bson.M{"_id": mongoKey}, bson.M{"$set": set}, opts); err != nil {
		return fmt.Errorf("save content record: %w", err)
	}
	return nil
}
