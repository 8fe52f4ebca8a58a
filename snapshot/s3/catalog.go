package s3

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/propensio/seggo/snapshot"
)

// ErrConcurrentCommit is returned when another writer committed a newer
// snapshot between reading the latest version and writing the next one.
var ErrConcurrentCommit = errors.New("concurrent snapshot commit detected")

// DDBClient is the interface for the DynamoDB operations the catalog uses.
type DDBClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// Catalog tracks the latest snapshot per dataset in DynamoDB.
//
// DynamoDB provides the conditional-write semantics S3 lacks: each commit
// inserts the next version number with an attribute_not_exists guard, so
// two writers racing on the same dataset cannot both win.
//
// Table schema:
//   - Partition key: dataset_key (string) - typically the derived dataset seed
//   - Sort key: version (number) - monotonically increasing commit version
//
// Create the table with:
//
//	aws dynamodb create-table \
//	  --table-name seggo-snapshots \
//	  --attribute-definitions AttributeName=dataset_key,AttributeType=S AttributeName=version,AttributeType=N \
//	  --key-schema AttributeName=dataset_key,KeyType=HASH AttributeName=version,KeyType=RANGE \
//	  --billing-mode PAY_PER_REQUEST
type Catalog struct {
	client    DDBClient
	tableName string
}

// NewCatalog creates a snapshot catalog on the given DynamoDB table.
func NewCatalog(client DDBClient, tableName string) *Catalog {
	return &Catalog{client: client, tableName: tableName}
}

// Latest returns the most recently committed snapshot name and its version
// for a dataset. A dataset with no commits returns snapshot.ErrNotFound.
func (c *Catalog) Latest(ctx context.Context, datasetKey string) (string, uint64, error) {
	out, err := c.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(c.tableName),
		KeyConditionExpression: aws.String("dataset_key = :k"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":k": &types.AttributeValueMemberS{Value: datasetKey},
		},
		ScanIndexForward: aws.Bool(false), // newest first
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return "", 0, fmt.Errorf("query snapshot catalog: %w", err)
	}

	if len(out.Items) == 0 {
		return "", 0, snapshot.ErrNotFound
	}

	item := out.Items[0]
	versionAttr, ok := item["version"].(*types.AttributeValueMemberN)
	if !ok {
		return "", 0, errors.New("invalid version attribute in catalog item")
	}
	nameAttr, ok := item["snapshot_name"].(*types.AttributeValueMemberS)
	if !ok {
		return "", 0, errors.New("invalid snapshot_name attribute in catalog item")
	}

	version, err := strconv.ParseUint(versionAttr.Value, 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("parse catalog version: %w", err)
	}

	return nameAttr.Value, version, nil
}

// Commit records name as the latest snapshot for the dataset and returns
// the new version. Returns ErrConcurrentCommit if another writer claimed
// the version first.
func (c *Catalog) Commit(ctx context.Context, datasetKey, name string) (uint64, error) {
	_, current, err := c.Latest(ctx, datasetKey)
	if err != nil && !errors.Is(err, snapshot.ErrNotFound) {
		return 0, err
	}

	next := current + 1
	_, err = c.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(c.tableName),
		Item: map[string]types.AttributeValue{
			"dataset_key":   &types.AttributeValueMemberS{Value: datasetKey},
			"version":       &types.AttributeValueMemberN{Value: strconv.FormatUint(next, 10)},
			"snapshot_name": &types.AttributeValueMemberS{Value: name},
		},
		ConditionExpression: aws.String("attribute_not_exists(version)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return 0, ErrConcurrentCommit
		}
		return 0, fmt.Errorf("commit snapshot version: %w", err)
	}

	return next, nil
}
