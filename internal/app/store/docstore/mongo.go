package docstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo implements Store on top of a MongoDB database.
//
// Identifiers are ObjectID hex strings for documents this service created;
// legacy collections may carry plain string _id values, so lookups try both.
type Mongo struct {
	db *mongo.Database
}

// NewMongo wraps db as a document Store.
func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

func idFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": bson.M{"$in": bson.A{oid, id}}}
	}
	return bson.M{"_id": id}
}

func (m *Mongo) Get(ctx context.Context, collection, id string) (map[string]any, error) {
	var raw bson.M
	err := m.db.Collection(collection).FindOne(ctx, idFilter(id)).Decode(&raw)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return looseDoc(raw), nil
}

func (m *Mongo) Add(ctx context.Context, collection string, data map[string]any) (string, error) {
	res, err := m.db.Collection(collection).InsertOne(ctx, bson.M(data))
	if err != nil {
		return "", err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	if s, ok := res.InsertedID.(string); ok {
		return s, nil
	}
	return "", errors.New("docstore: unsupported inserted id type")
}

func (m *Mongo) Set(ctx context.Context, collection, id string, data map[string]any) error {
	opts := options.Replace().SetUpsert(true)
	_, err := m.db.Collection(collection).ReplaceOne(ctx, idFilter(id), bson.M(data), opts)
	return err
}

func (m *Mongo) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	res, err := m.db.Collection(collection).UpdateOne(ctx, idFilter(id), bson.M{"$set": bson.M(fields)})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) Delete(ctx context.Context, collection, id string) error {
	res, err := m.db.Collection(collection).DeleteOne(ctx, idFilter(id))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) List(ctx context.Context, collection string, q Query) ([]Doc, error) {
	opts := options.Find()
	if q.OrderBy != "" {
		dir := 1
		if q.Desc {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: q.OrderBy, Value: dir}})
	}
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}

	cur, err := m.db.Collection(collection).Find(ctx, bson.M{}, opts)
	if err != nil {
		if q.OrderBy != "" && isMissingIndex(err) {
			return nil, ErrMissingIndex
		}
		return nil, err
	}
	defer cur.Close(ctx)

	var out []Doc
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, err
		}
		data := looseDoc(raw)
		out = append(out, Doc{ID: docID(raw), Data: data})
	}
	if err := cur.Err(); err != nil {
		if q.OrderBy != "" && isMissingIndex(err) {
			return nil, ErrMissingIndex
		}
		return nil, err
	}
	return out, nil
}

// isMissingIndex recognizes the server refusing an in-memory sort that would
// need an index (code 292, QueryExceededMemoryLimitNoDiskUseAllowed).
func isMissingIndex(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		if cmdErr.Code == 292 {
			return true
		}
		return strings.Contains(strings.ToLower(cmdErr.Message), "add an index")
	}
	return false
}

func docID(raw bson.M) string {
	switch v := raw["_id"].(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return ""
	}
}

// looseDoc converts a decoded bson.M into the loose map shape the rest of
// the code works with: bson containers become map[string]any / []any and
// bson datetimes become time.Time. The _id field is dropped; identifiers
// travel separately.
func looseDoc(raw bson.M) map[string]any {
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		if k == "_id" {
			continue
		}
		out[k] = looseValue(v)
	}
	return out
}

func looseValue(v any) any {
	switch t := v.(type) {
	case bson.M:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = looseValue(e)
		}
		return out
	case bson.D:
		out := make(map[string]any, len(t))
		for _, e := range t {
			out[e.Key] = looseValue(e.Value)
		}
		return out
	case bson.A:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = looseValue(e)
		}
		return out
	case primitive.DateTime:
		return t.Time().UTC()
	case primitive.Timestamp:
		return time.Unix(int64(t.T), 0).UTC()
	case primitive.ObjectID:
		return t.Hex()
	case primitive.Decimal128:
		return t.String()
	default:
		return v
	}
}
