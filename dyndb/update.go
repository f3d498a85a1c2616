package dyndb

import (
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// reservedWords are the DynamoDB expression-language identifiers the item
// schema can collide with. A reserved field is never referenced literally in
// an update expression; it goes through a generated #alias instead.
var reservedWords = map[string]struct{}{
	"name":   {},
	"status": {},
	"size":   {},
	"type":   {},
	"date":   {},
}

// Assignment is one field edit of a partial update. Callers supply assignments
// in a fixed order so the generated expression is deterministic.
type Assignment struct {
	Field string
	Value types.AttributeValue
}

// UpdatePlan is a ready-to-execute partial update: the SET expression, the
// alias-to-attribute-name map and the value slots keyed by field name.
type UpdatePlan struct {
	Expression string
	Names      map[string]string
	Values     map[string]types.AttributeValue
}

// BuildUpdatePlan turns an ordered assignment list into an UpdatePlan.
// Returns ErrNoFieldsToUpdate when the list is empty.
func BuildUpdatePlan(assignments []Assignment) (*UpdatePlan, error) {
	if len(assignments) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	plan := &UpdatePlan{
		Names:  make(map[string]string),
		Values: make(map[string]types.AttributeValue, len(assignments)),
	}

	clauses := make([]string, 0, len(assignments))
	for _, a := range assignments {
		ref := a.Field
		if _, reserved := reservedWords[a.Field]; reserved {
			ref = "#" + a.Field
			plan.Names[ref] = a.Field
		}
		slot := ":" + a.Field
		clauses = append(clauses, ref+" = "+slot)
		plan.Values[slot] = a.Value
	}

	plan.Expression = "SET " + strings.Join(clauses, ", ")
	return plan, nil
}
