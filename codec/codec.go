// Package codec converts item data between its JSON wire representation and
// the DynamoDB attribute representation.
//
// Numbers are the whole point: a JSON number is stored as an exact N attribute
// value built from the number's canonical string form, never from its binary
// float64 value, so read-modify-write cycles cannot accumulate rounding drift.
package codec

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ToStorageForm recursively walks a JSON-like value (decoded with
// json.Decoder.UseNumber) and produces the DynamoDB attribute value to persist.
// Every number becomes an exact N value; containers recurse; strings, booleans
// and null map to their attribute counterparts.
func ToStorageForm(v any) types.AttributeValue {
	switch x := v.(type) {
	case nil:
		return &types.AttributeValueMemberNULL{Value: true}
	case map[string]any:
		return &types.AttributeValueMemberM{Value: ToStorageMap(x)}
	case []any:
		list := make([]types.AttributeValue, 0, len(x))
		for _, el := range x {
			list = append(list, ToStorageForm(el))
		}
		return &types.AttributeValueMemberL{Value: list}
	case string:
		return &types.AttributeValueMemberS{Value: x}
	case bool:
		return &types.AttributeValueMemberBOOL{Value: x}
	case json.Number, float64, int, int32, int64:
		return Number(x)
	default:
		// Values outside the JSON model (time.Time, structs, ...) fall back
		// to the SDK marshaller, NULL when even that fails.
		av, err := attributevalue.Marshal(v)
		if err != nil {
			return &types.AttributeValueMemberNULL{Value: true}
		}
		return av
	}
}

// ToStorageMap applies ToStorageForm to every entry of a decoded JSON object.
func ToStorageMap(m map[string]any) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(m))
	for k, v := range m {
		out[k] = ToStorageForm(v)
	}
	return out
}

// Number builds an exact numeric attribute value from the canonical string
// form of v. Missing, empty and non-numeric inputs all collapse to zero,
// the leniency the import path relies on.
func Number(v any) *types.AttributeValueMemberN {
	var s string
	switch x := v.(type) {
	case json.Number:
		s = x.String()
	case string:
		s = strings.TrimSpace(x)
	case float64:
		s = strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		s = strconv.Itoa(x)
	case int32:
		s = strconv.FormatInt(int64(x), 10)
	case int64:
		s = strconv.FormatInt(x, 10)
	}
	if s == "" {
		s = "0"
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		s = "0"
	}
	return &types.AttributeValueMemberN{Value: s}
}

// ToWireForm is the inverse of ToStorageForm: it turns a stored attribute
// value back into the plain value serialized in JSON responses. Exact N values
// become ordinary float64 numbers.
func ToWireForm(av types.AttributeValue) any {
	switch x := av.(type) {
	case *types.AttributeValueMemberM:
		return ToWireMap(x.Value)
	case *types.AttributeValueMemberL:
		list := make([]any, 0, len(x.Value))
		for _, el := range x.Value {
			list = append(list, ToWireForm(el))
		}
		return list
	case *types.AttributeValueMemberS:
		return x.Value
	case *types.AttributeValueMemberN:
		f, err := strconv.ParseFloat(x.Value, 64)
		if err != nil {
			return nil
		}
		return f
	case *types.AttributeValueMemberBOOL:
		return x.Value
	default:
		return nil
	}
}

// ToWireMap applies ToWireForm to every attribute of a stored record.
func ToWireMap(rec map[string]types.AttributeValue) map[string]any {
	out := make(map[string]any, len(rec))
	for k, av := range rec {
		out[k] = ToWireForm(av)
	}
	return out
}
