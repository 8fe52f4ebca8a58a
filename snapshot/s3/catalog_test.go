package s3

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/propensio/seggo/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDDBClient is a testify mock of the DDBClient interface.
type MockDDBClient struct {
	mock.Mock
}

func (m *MockDDBClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*dynamodb.PutItemOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDDBClient) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*dynamodb.QueryOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func catalogItem(version, name string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"version":       &types.AttributeValueMemberN{Value: version},
		"snapshot_name": &types.AttributeValueMemberS{Value: name},
	}
}

func TestCatalog_Latest(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		mockClient := new(MockDDBClient)
		catalog := NewCatalog(mockClient, "snapshots")

		mockClient.On("Query", mock.Anything, mock.Anything).
			Return(&dynamodb.QueryOutput{}, nil).Once()

		_, _, err := catalog.Latest(context.Background(), "ds-1")
		assert.ErrorIs(t, err, snapshot.ErrNotFound)
	})

	t.Run("ReturnsNewest", func(t *testing.T) {
		mockClient := new(MockDDBClient)
		catalog := NewCatalog(mockClient, "snapshots")

		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
			return *input.TableName == "snapshots" && !*input.ScanIndexForward && *input.Limit == 1
		})).Return(&dynamodb.QueryOutput{
			Items: []map[string]types.AttributeValue{catalogItem("7", "sweep-7")},
		}, nil).Once()

		name, version, err := catalog.Latest(context.Background(), "ds-1")
		require.NoError(t, err)
		assert.Equal(t, "sweep-7", name)
		assert.Equal(t, uint64(7), version)
	})
}

func TestCatalog_Commit(t *testing.T) {
	t.Run("IncrementsVersion", func(t *testing.T) {
		mockClient := new(MockDDBClient)
		catalog := NewCatalog(mockClient, "snapshots")

		mockClient.On("Query", mock.Anything, mock.Anything).Return(&dynamodb.QueryOutput{
			Items: []map[string]types.AttributeValue{catalogItem("2", "sweep-2")},
		}, nil).Once()

		mockClient.On("PutItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.PutItemInput) bool {
			version, ok := input.Item["version"].(*types.AttributeValueMemberN)
			return ok && version.Value == "3" && input.ConditionExpression != nil
		})).Return(&dynamodb.PutItemOutput{}, nil).Once()

		version, err := catalog.Commit(context.Background(), "ds-1", "sweep-3")
		require.NoError(t, err)
		assert.Equal(t, uint64(3), version)
		mockClient.AssertExpectations(t)
	})

	t.Run("FirstCommitIsVersionOne", func(t *testing.T) {
		mockClient := new(MockDDBClient)
		catalog := NewCatalog(mockClient, "snapshots")

		mockClient.On("Query", mock.Anything, mock.Anything).
			Return(&dynamodb.QueryOutput{}, nil).Once()
		mockClient.On("PutItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.PutItemInput) bool {
			version, ok := input.Item["version"].(*types.AttributeValueMemberN)
			return ok && version.Value == "1"
		})).Return(&dynamodb.PutItemOutput{}, nil).Once()

		version, err := catalog.Commit(context.Background(), "ds-1", "sweep-1")
		require.NoError(t, err)
		assert.Equal(t, uint64(1), version)
	})

	t.Run("LostRace", func(t *testing.T) {
		mockClient := new(MockDDBClient)
		catalog := NewCatalog(mockClient, "snapshots")

		mockClient.On("Query", mock.Anything, mock.Anything).
			Return(&dynamodb.QueryOutput{}, nil).Once()
		mockClient.On("PutItem", mock.Anything, mock.Anything).
			Return(nil, &types.ConditionalCheckFailedException{}).Once()

		_, err := catalog.Commit(context.Background(), "ds-1", "sweep-1")
		assert.ErrorIs(t, err, ErrConcurrentCommit)
	})
}
