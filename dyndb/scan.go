package dyndb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ScanBuilder is a fluent table scan with optional server-side filters.
// Results come back in scan order; callers sort when they need ordering.
type ScanBuilder struct {
	store  *dynamoStore
	filter *expression.ConditionBuilder
	limit  *int32
	canned *cannedScan
}

type cannedScan struct {
	recs []Record
	err  error
}

// StaticScan builds a ScanBuilder whose Exec returns canned results. It backs
// MockStore in tests; production code never constructs one.
func StaticScan(recs []Record, err error) *ScanBuilder {
	return &ScanBuilder{canned: &cannedScan{recs: recs, err: err}}
}

// FilterEqual adds an equality filter on a top-level attribute. Reserved
// identifiers are handled by the expression package's own aliasing.
func (sb *ScanBuilder) FilterEqual(field string, value any) *ScanBuilder {
	cond := expression.Equal(expression.Name(field), expression.Value(value))
	if sb.filter == nil {
		sb.filter = &cond
	} else {
		tmp := sb.filter.And(cond)
		sb.filter = &tmp
	}
	return sb
}

// Limit caps the number of evaluated items.
func (sb *ScanBuilder) Limit(n int32) *ScanBuilder {
	sb.limit = &n
	return sb
}

// Exec runs the scan and returns a single page of records. The service has no
// scan-continuation handling; the whole working set is expected to fit one
// page at its scale.
func (sb *ScanBuilder) Exec(ctx context.Context) ([]Record, error) {
	if sb.canned != nil {
		return sb.canned.recs, sb.canned.err
	}

	input := &dynamodb.ScanInput{
		TableName: aws.String(sb.store.cfg.TableName),
		Limit:     sb.limit,
	}

	if sb.filter != nil {
		expr, err := expression.NewBuilder().WithFilter(*sb.filter).Build()
		if err != nil {
			return nil, fmt.Errorf("dyndb: build scan filter: %w", err)
		}
		input.FilterExpression = expr.Filter()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	out, err := sb.store.client.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("dyndb: scan failed: %w", err)
	}
	return out.Items, nil
}
