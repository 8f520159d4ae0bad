// Package dynamodb stores ledger snapshots as items of a DynamoDB table keyed by ledgerId.
package dynamodb

import (
	"context"
	"fmt"

	"github.com/SscSPs/fince/internal/core/domain"
	portsrepo "github.com/SscSPs/fince/internal/core/ports/repositories"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// API is the subset of the DynamoDB client used by the repository.
type API interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// item is the stored shape: the snapshot document kept as a JSON string.
type item struct {
	LedgerID string `dynamodbav:"ledgerId"`
	Payload  string `dynamodbav:"payload"`
}

type SnapshotRepository struct {
	client    API
	tableName string
}

var _ portsrepo.SnapshotRepositoryFacade = (*SnapshotRepository)(nil)

// NewSnapshotRepository loads the default AWS configuration for region.
// A non-empty endpoint targets a local DynamoDB.
func NewSnapshotRepository(ctx context.Context, tableName, region, endpoint string) (*SnapshotRepository, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
	return NewSnapshotRepositoryWithClient(client, tableName), nil
}

// NewSnapshotRepositoryWithClient uses an existing client.
func NewSnapshotRepositoryWithClient(client API, tableName string) *SnapshotRepository {
	return &SnapshotRepository{client: client, tableName: tableName}
}

func (r *SnapshotRepository) key(ledgerID string) (map[string]types.AttributeValue, error) {
	return attributevalue.MarshalMap(struct {
		LedgerID string `dynamodbav:"ledgerId"`
	}{ledgerID})
}

func (r *SnapshotRepository) Load(ctx context.Context, ledgerID string) (domain.Snapshot, error) {
	key, err := r.key(ledgerID)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("failed to marshal key: %w", err)
	}
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("GetItem operation failed: %w", err)
	}
	if len(result.Item) == 0 {
		return domain.EmptySnapshot(), nil
	}

	var stored item
	if err := attributevalue.UnmarshalMap(result.Item, &stored); err != nil {
		return domain.Snapshot{}, fmt.Errorf("failed to unmarshal snapshot item: %w", err)
	}
	return domain.UnmarshalSnapshot([]byte(stored.Payload))
}

func (r *SnapshotRepository) Save(ctx context.Context, ledgerID string, snapshot domain.Snapshot) error {
	payload, err := domain.MarshalSnapshot(snapshot)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(item{LedgerID: ledgerID, Payload: string(payload)})
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot item: %w", err)
	}
	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return fmt.Errorf("PutItem operation failed: %w", err)
	}
	return nil
}
