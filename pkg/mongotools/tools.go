package mongotools

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nikmy/timekeeper/pkg/errors"
)

// SetAll builds a "$set" update from field documents, skipping nil values
// so optional patches leave the stored field untouched.
func SetAll(fieldKVs ...bson.M) bson.M {
	s := make(bson.M, len(fieldKVs))
	for _, kv := range fieldKVs {
		for k, v := range kv {
			if v == nil {
				continue
			}
			s[k] = v
		}
	}

	return bson.M{"$set": s}
}

func All() bson.M {
	return bson.M{}
}

func ID(id string) bson.M {
	return bson.M{"_id": id}
}

func Field[T any](field string, value *T) bson.M {
	if value == nil {
		return bson.M{field: nil}
	}
	return bson.M{field: *value}
}

func Path(fields ...string) string {
	return strings.Join(fields, ".")
}

// Sort builds an ascending sort document over the given fields.
func Sort(fields ...string) bson.D {
	d := make(bson.D, 0, len(fields))
	for _, f := range fields {
		d = append(d, bson.E{Key: f, Value: 1})
	}
	return d
}

// FilterFunc drains the cursor, keeping items accepted by filterFunc (all when nil).
func FilterFunc[T any](ctx context.Context, c *mongo.Cursor, filterFunc func(T) bool) ([]T, error) {
	defer c.Close(ctx)

	var filtered []T
	for c.Next(ctx) {
		var item T
		err := c.Decode(&item)
		if err != nil {
			return nil, errors.WrapFail(err, "decode item")
		}

		if filterFunc == nil || filterFunc(item) {
			filtered = append(filtered, item)
		}
	}

	return filtered, c.Err()
}
