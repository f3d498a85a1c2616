package dyndb

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ErrNotFound is returned when the requested item does not exist.
var ErrNotFound = errors.New("dyndb: item not found")

// ErrNoFieldsToUpdate is returned by BuildUpdatePlan when no assignment was
// supplied; callers must reject the request without touching the table.
var ErrNoFieldsToUpdate = errors.New("dyndb: no fields to update")

// Record is a raw DynamoDB item.
type Record = map[string]types.AttributeValue

// DynamoDBClient abstracts the subset of the SDK client this service uses.
type DynamoDBClient interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Store is the storage interface handed to the inventory service. A single
// implementation is safe for concurrent reuse across requests.
type Store interface {
	Get(ctx context.Context, id string) (Record, error)
	Put(ctx context.Context, rec Record) error
	Update(ctx context.Context, id string, plan *UpdatePlan) error
	Delete(ctx context.Context, id string) error
	BatchPut(ctx context.Context, recs []Record) error
	Scan() *ScanBuilder
}

// TableConfig describes the backing table. Empty fields resolve from the
// environment.
type TableConfig struct {
	TableName string `env:"DYNAMODB_TABLE_NAME" envDefault:"InventoryDB"`
	HashKey   string `env:"DYNAMODB_HASH_KEY" envDefault:"id"`
}
