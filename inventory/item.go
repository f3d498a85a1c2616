// Package inventory holds the item model and the business service: creation,
// partial updates, deletion, listing, and CSV bulk transfer.
package inventory

import (
	"encoding/json"
)

// Item is the inventory record. IDs are server-generated and immutable;
// quantity and price are stored as exact decimals and surface here in wire
// form (float64) for JSON responses and CSV export.
type Item struct {
	ID       string  `json:"id" dynamodbav:"id"`
	Name     string  `json:"name" dynamodbav:"name"`
	Quantity float64 `json:"quantity" dynamodbav:"quantity"`
	Price    float64 `json:"price" dynamodbav:"price"`
}

// ItemDraft carries the client-supplied fields of a create request. Numeric
// fields stay as json.Number so their canonical string form survives until
// the codec builds exact attribute values from it.
type ItemDraft struct {
	Name     string      `json:"name" validate:"required"`
	Quantity json.Number `json:"quantity"`
	Price    json.Number `json:"price"`
}
