package inventory

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/raywall/inventory-quick-service/codec"
	"github.com/raywall/inventory-quick-service/dyndb"
)

// csvHeader is the fixed export column order.
var csvHeader = []string{"id", "name", "quantity", "price"}

// ImportCSV parses a CSV payload (base64-decoded when flagged by the
// transport) and creates one item per data row through batched writes.
// Missing columns default (empty name, zero quantity/price) rather than
// failing the row. Returns the number of rows processed.
func (s *Service) ImportCSV(ctx context.Context, body string, isBase64 bool) (int, error) {
	content := body
	if isBase64 {
		raw, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return 0, fmt.Errorf("inventory: decode import body: %w", err)
		}
		content = string(raw)
	}

	r := csv.NewReader(strings.NewReader(content))
	r.FieldsPerRecord = -1 // short rows default instead of erroring

	header, err := r.Read()
	if err == io.EOF {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("inventory: read csv header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	var batch []dyndb.Record
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("inventory: read csv row: %w", err)
		}
		batch = append(batch, dyndb.Record{
			"id":       &types.AttributeValueMemberS{Value: uuid.NewString()},
			"name":     &types.AttributeValueMemberS{Value: cell(row, columns, "name")},
			"quantity": codec.Number(cell(row, columns, "quantity")),
			"price":    codec.Number(cell(row, columns, "price")),
		})
	}

	if len(batch) > 0 {
		if err := s.store.BatchPut(ctx, batch); err != nil {
			return 0, err
		}
	}
	return len(batch), nil
}

// ExportCSV serializes the full item set, in scan order, with the fixed
// header id,name,quantity,price. The whole set materializes in memory; fine
// at this service's scale.
func (s *Service) ExportCSV(ctx context.Context) (string, error) {
	recs, err := s.store.Scan().Exec(ctx)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("inventory: write csv header: %w", err)
	}
	for _, rec := range recs {
		item, err := recordToItem(rec)
		if err != nil {
			return "", err
		}
		row := []string{
			item.ID,
			item.Name,
			strconv.FormatFloat(item.Quantity, 'f', -1, 64),
			strconv.FormatFloat(item.Price, 'f', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("inventory: write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func cell(row []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
