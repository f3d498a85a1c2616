package dyndb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/raywall/inventory-quick-service/envloader"
)

// batchWriteLimit is DynamoDB's per-call BatchWriteItem cap.
const batchWriteLimit = 25

type dynamoStore struct {
	client DynamoDBClient
	cfg    TableConfig
}

// New creates a reusable store over a single table.
func New(client DynamoDBClient, cfg TableConfig) Store {
	if cfg.TableName == "" || cfg.HashKey == "" {
		_ = envloader.Load(&cfg)
	}
	return &dynamoStore{
		client: client,
		cfg:    cfg,
	}
}

func (s *dynamoStore) key(id string) Record {
	return Record{
		s.cfg.HashKey: &types.AttributeValueMemberS{Value: id},
	}
}

// Get fetches an item by its hash key. Returns ErrNotFound when absent.
func (s *dynamoStore) Get(ctx context.Context, id string) (Record, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.cfg.TableName),
		Key:            s.key(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("dyndb: get failed: %w", err)
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}
	return out.Item, nil
}

// Put upserts a full record.
func (s *dynamoStore) Put(ctx context.Context, rec Record) error {
	_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.cfg.TableName),
		Item:      rec,
	})
	if err != nil {
		return fmt.Errorf("dyndb: put failed: %w", err)
	}
	return nil
}

// Update applies a partial-update plan built by BuildUpdatePlan.
func (s *dynamoStore) Update(ctx context.Context, id string, plan *UpdatePlan) error {
	input := &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.cfg.TableName),
		Key:                       s.key(id),
		UpdateExpression:          aws.String(plan.Expression),
		ExpressionAttributeValues: plan.Values,
	}
	// DynamoDB rejects an empty alias map, so only attach it when populated.
	if len(plan.Names) > 0 {
		input.ExpressionAttributeNames = plan.Names
	}

	if _, err := s.client.UpdateItem(ctx, input); err != nil {
		return fmt.Errorf("dyndb: update failed: %w", err)
	}
	return nil
}

// Delete removes an item. Deleting an absent id is not an error.
func (s *dynamoStore) Delete(ctx context.Context, id string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.cfg.TableName),
		Key:       s.key(id),
	})
	if err != nil {
		return fmt.Errorf("dyndb: delete failed: %w", err)
	}
	return nil
}

// BatchPut writes records in chunks of 25, the BatchWriteItem limit. There is
// no atomicity across chunks: a failure leaves the preceding chunks written.
func (s *dynamoStore) BatchPut(ctx context.Context, recs []Record) error {
	writeRequests := make([]types.WriteRequest, 0, len(recs))
	for _, rec := range recs {
		writeRequests = append(writeRequests, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: rec},
		})
	}

	for i := 0; i < len(writeRequests); i += batchWriteLimit {
		end := i + batchWriteLimit
		if end > len(writeRequests) {
			end = len(writeRequests)
		}

		_, err := s.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				s.cfg.TableName: writeRequests[i:end],
			},
		})
		if err != nil {
			return fmt.Errorf("dyndb: batch put failed: %w", err)
		}
	}
	return nil
}

// Scan starts a fluent table scan.
func (s *dynamoStore) Scan() *ScanBuilder {
	return &ScanBuilder{store: s}
}
