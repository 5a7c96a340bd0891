package shared_test

import (
	"context"
	"errors"
	"organise/infras/kafka"
	kafkaMocks "organise/infras/kafka/mocks"
	"organise/shared"
	"organise/shared/cache/mocks"
	"organise/shared/constant"
	"organise/shared/dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/mock/gomock"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "valid true string", input: "true", expected: boolPtr(true)},
		{name: "valid false string", input: "false", expected: boolPtr(false)},
		{name: "valid 1 string", input: "1", expected: boolPtr(true)},
		{name: "valid 0 string", input: "0", expected: boolPtr(false)},
		{name: "valid TRUE string", input: "TRUE", expected: boolPtr(true)},
		{name: "invalid string returns nil", input: "invalid", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}

				return
			}

			if result == nil {
				t.Fatalf("expected %v, got nil", *tt.expected)
			}

			if *result != *tt.expected {
				t.Errorf("expected %v, got %v", *tt.expected, *result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type embedded struct {
		CreatedAt time.Time `bson:"created_at"`
	}

	type document struct {
		ID        bson.ObjectID `bson:"_id,omitempty"`
		Title     string        `bson:"title"`
		Completed bool          `bson:"completed"`
		Tags      []string      `bson:"tags,omitempty"`
		Ignored   string        `bson:"-"`
		NoTag     string
		embedded
	}

	data := document{
		ID:      bson.NewObjectID(),
		Title:   "Buy milk",
		Tags:    []string{"home"},
		Ignored: "x",
		NoTag:   "y",
	}

	result := shared.TransformFields(data)
	require.Len(t, result, 1)
	assert.Equal(t, "$set", result[0].Key)

	set, ok := result[0].Value.(bson.D)
	require.True(t, ok)

	keys := make([]string, 0, len(set))
	for _, elem := range set {
		keys = append(keys, elem.Key)
	}

	assert.Equal(t, []string{"title", "completed", "tags", constant.FieldUpdatedAt}, keys)
	assert.Equal(t, false, set[1].Value, "zero values are written")
	assert.IsType(t, time.Time{}, set[3].Value)

	fromPointer := shared.TransformFields(&data)
	assert.Len(t, fromPointer[0].Value.(bson.D), 4)

	data.Tags = nil
	withoutTags := shared.TransformFields(data)[0].Value.(bson.D)
	require.Len(t, withoutTags, 3)
	assert.Equal(t, "completed", withoutTags[1].Key, "empty omitempty fields are left untouched")
}

func TestFilterByID(t *testing.T) {
	id := bson.NewObjectID()

	result := shared.FilterByID(id)
	require.Len(t, result.Filters, 1)

	filter, ok := result.Filters[0].(dto.Filter)
	require.True(t, ok)

	assert.Equal(t, constant.FieldID, filter.Field)
	assert.Equal(t, id, filter.Value)
	assert.Equal(t, dto.FilterOperatorEq, filter.Operator)
	assert.Equal(t, bson.D{{Key: "$and", Value: bson.A{bson.D{{Key: "_id", Value: id}}}}}, result.ToBSON())
}

func TestParseID(t *testing.T) {
	id := bson.NewObjectID()

	parsed, ok := shared.ParseID(id.Hex())
	assert.True(t, ok)
	assert.Equal(t, id, parsed)

	_, ok = shared.ParseID("not-an-id")
	assert.False(t, ok)

	_, ok = shared.ParseID("")
	assert.False(t, ok)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "todo:get:abc", shared.BuildCacheKey("todo:get", "abc"))
	assert.Equal(t, "todo:gets", shared.BuildCacheKey("todo:gets"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	filter := dto.FilterGroup{}
	filter.Add(dto.Filter{Field: "completed", Value: true, Operator: dto.FilterOperatorEq})

	first := shared.BuildCacheKeyWithQuery("todo:gets", dto.QueryParams{Page: 1, Limit: 10}, filter)
	second := shared.BuildCacheKeyWithQuery("todo:gets", dto.QueryParams{Page: 2, Limit: 10}, filter)
	same := shared.BuildCacheKeyWithQuery("todo:gets", dto.QueryParams{Page: 1, Limit: 10}, filter)

	assert.NotEqual(t, first, second)
	assert.Equal(t, first, same)
	assert.Contains(t, first, "todo:gets:1:10")
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := mocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().Clear(gomock.Any(), "todo:gets*").Return(nil)
	shared.InvalidateCaches(context.Background(), redisCache, "todo:gets")

	redisCache.EXPECT().Clear(gomock.Any(), "todo:get*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), redisCache, "todo:get")
}

func TestPublishChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	event := dto.ChangeEvent{Type: constant.EventCreated, Resource: "todo", ID: "abc"}

	client.EXPECT().
		SendMessages(gomock.Any(), "organise.changes", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			require.Len(t, messages, 1)
			assert.Equal(t, "abc", messages[0].Key)

			sent, ok := messages[0].Value.(dto.ChangeEvent)
			require.True(t, ok)
			assert.False(t, sent.OccurredAt.IsZero())

			return nil
		})
	shared.PublishChange(context.Background(), client, "organise.changes", event)

	client.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
	shared.PublishChange(context.Background(), client, "organise.changes", event)
}

func boolPtr(b bool) *bool {
	return &b
}
