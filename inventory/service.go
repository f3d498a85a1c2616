package inventory

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/raywall/inventory-quick-service/codec"
	"github.com/raywall/inventory-quick-service/dyndb"
)

var (
	// ErrNameRequired rejects creation without a name.
	ErrNameRequired = errors.New("inventory: name required")
	// ErrMissingItemID rejects update/delete without a resolvable id.
	ErrMissingItemID = errors.New("inventory: missing item id")
)

// mutableFields fixes the iteration order of partial updates so the generated
// expression is reproducible. Any other key in an edit set is ignored.
var mutableFields = []string{"name", "quantity", "price"}

var numericFields = map[string]struct{}{
	"quantity": {},
	"price":    {},
}

// Service centralizes item business logic over a store handle that is safe
// for concurrent reuse. The service itself holds no per-request state.
type Service struct {
	valid *validator.Validate
	store dyndb.Store
}

func NewService(store dyndb.Store) *Service {
	return &Service{
		valid: validator.New(),
		store: store,
	}
}

// Create persists a new item with a freshly generated id. Omitted quantity
// and price default to zero.
func (s *Service) Create(ctx context.Context, draft *ItemDraft) (*Item, error) {
	if err := s.valid.StructCtx(ctx, draft); err != nil {
		return nil, ErrNameRequired
	}

	rec := dyndb.Record{
		"id":       &types.AttributeValueMemberS{Value: uuid.NewString()},
		"name":     &types.AttributeValueMemberS{Value: draft.Name},
		"quantity": codec.Number(draft.Quantity),
		"price":    codec.Number(draft.Price),
	}

	if err := s.store.Put(ctx, rec); err != nil {
		return nil, err
	}
	return recordToItem(rec)
}

// List returns all items sorted ascending by id. A non-empty nameFilter adds
// a server-side equality filter on the name attribute.
func (s *Service) List(ctx context.Context, nameFilter string) ([]Item, error) {
	sb := s.store.Scan()
	if nameFilter != "" {
		sb = sb.FilterEqual("name", nameFilter)
	}

	recs, err := sb.Exec(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(recs))
	for _, rec := range recs {
		item, err := recordToItem(rec)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// Update applies a partial update for the recognized mutable fields and
// re-fetches the record so the caller sees post-update state. When the record
// was deleted concurrently, it returns (nil, nil).
func (s *Service) Update(ctx context.Context, id string, edits map[string]any) (*Item, error) {
	if id == "" {
		return nil, ErrMissingItemID
	}

	assignments := make([]dyndb.Assignment, 0, len(mutableFields))
	for _, field := range mutableFields {
		val, ok := edits[field]
		if !ok {
			continue
		}
		av := codec.ToStorageForm(val)
		if _, numeric := numericFields[field]; numeric {
			av = codec.Number(val)
		}
		assignments = append(assignments, dyndb.Assignment{Field: field, Value: av})
	}

	plan, err := dyndb.BuildUpdatePlan(assignments)
	if err != nil {
		return nil, err
	}
	if err := s.store.Update(ctx, id, plan); err != nil {
		return nil, err
	}

	rec, err := s.store.Get(ctx, id)
	if errors.Is(err, dyndb.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return recordToItem(rec)
}

// Delete removes an item by id. Deleting an absent id succeeds.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingItemID
	}
	return s.store.Delete(ctx, id)
}

func recordToItem(rec dyndb.Record) (*Item, error) {
	var item Item
	if err := attributevalue.UnmarshalMap(rec, &item); err != nil {
		return nil, fmt.Errorf("inventory: unmarshal record: %w", err)
	}
	return &item, nil
}
