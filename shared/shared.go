package shared

import (
	"context"
	"organise/infras/kafka"
	"organise/shared/cache"
	"organise/shared/constant"
	"organise/shared/dto"
	"organise/shared/timezone"
	"reflect"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

// TransformFields builds a {"$set": ...} document from every bson-tagged field of data and refreshes
// updated_at. Zero values are written unless the tag carries omitempty. _id, created_at and embedded
// structs are never written.
func TransformFields(data any) bson.D {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	if typ.Kind() == reflect.Pointer {
		val = val.Elem()
		typ = typ.Elem()
	}

	set := bson.D{}

	for index := range val.NumField() {
		structField := typ.Field(index)
		if structField.Anonymous {
			continue
		}

		fieldName, opts, _ := strings.Cut(structField.Tag.Get("bson"), ",")

		switch fieldName {
		case "", "-", constant.FieldID, constant.FieldCreatedAt, constant.FieldUpdatedAt:
			continue
		}

		field := val.Field(index)
		if strings.Contains(opts, "omitempty") && field.IsZero() {
			continue
		}

		set = append(set, bson.E{Key: fieldName, Value: field.Interface()})
	}

	set = append(set, bson.E{Key: constant.FieldUpdatedAt, Value: timezone.Now()})

	return bson.D{{Key: "$set", Value: set}}
}

func FilterByID(id bson.ObjectID) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    constant.FieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
			},
		},
	}
}

// ParseID parses a hex object id. ok is false when id is malformed.
func ParseID(id string) (bson.ObjectID, bool) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, false
	}

	return objectID, true
}

func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), ":")
}

// BuildCacheKeyWithQuery keys a list result by its pagination and rendered filter.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	rendered, err := bson.MarshalExtJSON(filter.ToBSON(), true, false)
	if err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to render filter for cache key")
	}

	return BuildCacheKey(prefix, params.CacheKey(), string(rendered))
}

// InvalidateCaches removes every key under prefix.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// PublishChange sends one change event keyed by the record id. Failures are logged, never returned.
func PublishChange(ctx context.Context, client kafka.Client, topic string, event dto.ChangeEvent) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = timezone.Now()
	}

	err := client.SendMessages(ctx, topic, kafka.Message{Key: event.ID, Value: event})
	if err != nil {
		log.Error().Err(err).Str("resource", event.Resource).Str("id", event.ID).Msg("failed to publish change event")
	}
}
