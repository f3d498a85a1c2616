package transport

import (
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
)

const (
	contentTypeJSON = "application/json"
	contentTypeCSV  = "text/csv"
)

// corsHeaders builds the uniform envelope headers. The API is intentionally
// open to any origin.
func corsHeaders(contentType string) map[string]string {
	return map[string]string{
		"Content-Type":                 contentType,
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET,POST,PATCH,DELETE,OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type",
	}
}

// JSON serializes body into the response envelope. Exact decimals were
// already converted to wire form upstream, so they render as plain numbers.
func JSON(status int, body any) events.APIGatewayV2HTTPResponse {
	b, err := json.Marshal(body)
	if err != nil {
		// handler results are always marshallable structs/maps; an empty
		// body beats a second failure path here
		b = nil
	}
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    corsHeaders(contentTypeJSON),
		Body:       string(b),
	}
}

// CSV wraps already-serialized CSV text.
func CSV(status int, body string) events.APIGatewayV2HTTPResponse {
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    corsHeaders(contentTypeCSV),
		Body:       body,
	}
}

// Empty is an envelope with no body: an empty string, never "null".
func Empty(status int) events.APIGatewayV2HTTPResponse {
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    corsHeaders(contentTypeJSON),
	}
}

// Error wraps a structured {error: message} body.
func Error(status int, msg string) events.APIGatewayV2HTTPResponse {
	return JSON(status, map[string]string{"error": msg})
}
