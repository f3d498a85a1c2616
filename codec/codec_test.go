package codec

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToStorageForm_Numbers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"json number keeps canonical form", json.Number("2.50"), "2.50"},
		{"integer json number", json.Number("5"), "5"},
		{"float64 shortest form", 2.5, "2.5"},
		{"int", 42, "42"},
		{"int64", int64(-7), "-7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			av := ToStorageForm(tt.in)
			n, ok := av.(*types.AttributeValueMemberN)
			require.True(t, ok, "expected N attribute, got %T", av)
			assert.Equal(t, tt.want, n.Value)
		})
	}
}

func TestToStorageForm_Passthrough(t *testing.T) {
	t.Parallel()

	s, ok := ToStorageForm("widget").(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "widget", s.Value)

	b, ok := ToStorageForm(true).(*types.AttributeValueMemberBOOL)
	require.True(t, ok)
	assert.True(t, b.Value)

	null, ok := ToStorageForm(nil).(*types.AttributeValueMemberNULL)
	require.True(t, ok)
	assert.True(t, null.Value)
}

func TestToStorageForm_Recursive(t *testing.T) {
	t.Parallel()

	dec := json.NewDecoder(strings.NewReader(`{"name":"Widget","price":2.50,"tags":["a",1.5],"meta":{"size":10}}`))
	dec.UseNumber()
	var in map[string]any
	require.NoError(t, dec.Decode(&in))

	rec := ToStorageMap(in)

	price := rec["price"].(*types.AttributeValueMemberN)
	assert.Equal(t, "2.50", price.Value)

	tags := rec["tags"].(*types.AttributeValueMemberL)
	require.Len(t, tags.Value, 2)
	assert.Equal(t, "a", tags.Value[0].(*types.AttributeValueMemberS).Value)
	assert.Equal(t, "1.5", tags.Value[1].(*types.AttributeValueMemberN).Value)

	meta := rec["meta"].(*types.AttributeValueMemberM)
	assert.Equal(t, "10", meta.Value["size"].(*types.AttributeValueMemberN).Value)
}

func TestNumber_Leniency(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0", Number(nil).Value)
	assert.Equal(t, "0", Number("").Value)
	assert.Equal(t, "0", Number("  ").Value)
	assert.Equal(t, "0", Number("not-a-number").Value)
	assert.Equal(t, "3.25", Number("3.25").Value)
	assert.Equal(t, "5", Number(json.Number("5")).Value)
}

func TestToWireForm_RoundTrip(t *testing.T) {
	t.Parallel()

	rec := map[string]types.AttributeValue{
		"id":       &types.AttributeValueMemberS{Value: "abc"},
		"price":    &types.AttributeValueMemberN{Value: "2.50"},
		"in_stock": &types.AttributeValueMemberBOOL{Value: true},
		"nested": &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
			"quantity": &types.AttributeValueMemberN{Value: "3"},
		}},
	}

	wire := ToWireMap(rec)
	assert.Equal(t, "abc", wire["id"])
	assert.Equal(t, 2.5, wire["price"])
	assert.Equal(t, true, wire["in_stock"])
	assert.Equal(t, 3.0, wire["nested"].(map[string]any)["quantity"])

	// serialized form renders exact decimals as ordinary numbers
	b, err := json.Marshal(wire["price"])
	require.NoError(t, err)
	assert.Equal(t, "2.5", string(b))
}
