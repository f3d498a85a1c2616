// Package dyndb is the DynamoDB storage layer of the inventory service.
//
// It works with raw records (map[string]types.AttributeValue) instead of
// marshalled structs so that exact-decimal numeric attributes built by the
// codec package reach the table untouched.
//
// The package exposes:
//
//   - Store: Get/Put/Update/Delete/BatchPut/Scan over a single table keyed by
//     a hash attribute, with batch writes chunked to DynamoDB's 25-op limit.
//   - BuildUpdatePlan: a deterministic SET-expression builder that aliases
//     reserved identifiers through ExpressionAttributeNames.
//   - ScanBuilder: a small fluent scan with optional equality filters.
//   - MockDynamoClient / MockStore: function-field mocks for tests.
//
// Table settings resolve from the environment (DYNAMODB_TABLE_NAME,
// DYNAMODB_HASH_KEY) via envloader when not provided explicitly.
package dyndb
