// Package transport adapts API Gateway v2 HTTP events to the inventory
// service: request routing, id extraction, body decoding and the uniform
// response envelope. The same Handler serves the Lambda runtime and the
// local HTTP server.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/raywall/inventory-quick-service/dyndb"
	"github.com/raywall/inventory-quick-service/inventory"
	"github.com/raywall/inventory-quick-service/pkg/metrics"
)

// HeaderCorrelationID propagates a request id through logs and responses.
const HeaderCorrelationID = "x-correlation-id"

// Handler routes inventory requests. One instance is built at process start
// and shared across invocations.
type Handler struct {
	svc     *inventory.Service
	metrics metrics.Provider
}

func NewHandler(svc *inventory.Service, provider metrics.Provider) *Handler {
	if provider == nil {
		provider = &metrics.NoopProvider{}
	}
	return &Handler{svc: svc, metrics: provider}
}

// Handle is the Lambda entry point. Validation failures become structured
// 4xx envelopes; store failures propagate so the runtime surfaces a 5xx.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	start := time.Now()

	corrID := req.Headers[HeaderCorrelationID]
	if corrID == "" {
		corrID = uuid.NewString()
	}
	logger := log.With().Str("correlation_id", corrID).Logger()
	ctx = logger.WithContext(ctx)

	method := req.RequestContext.HTTP.Method
	path := req.RawPath
	if path == "" {
		path = req.RequestContext.HTTP.Path
	}

	resp, err := h.route(ctx, method, path, req)
	if err != nil {
		logger.Error().Err(err).
			Str("method", method).
			Str("path", path).
			Msg("request failed")
		return events.APIGatewayV2HTTPResponse{}, err
	}

	logger.Info().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Int64("latency_ms", time.Since(start).Milliseconds()).
		Msg("request completed")
	_ = h.metrics.Count("requests", 1, []string{
		"method:" + method,
		fmt.Sprintf("status:%d", resp.StatusCode),
	})

	if resp.Headers == nil {
		resp.Headers = make(map[string]string)
	}
	resp.Headers[HeaderCorrelationID] = corrID
	return resp, nil
}

func (h *Handler) route(ctx context.Context, method, path string, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	switch {
	case method == http.MethodOptions:
		// CORS preflight
		return Empty(http.StatusOK), nil
	case method == http.MethodGet && path == "/items":
		return h.listItems(ctx, req)
	case method == http.MethodPost && path == "/items":
		return h.createItem(ctx, req)
	case method == http.MethodPatch && strings.HasPrefix(path, "/items/"):
		return h.updateItem(ctx, path, req)
	case method == http.MethodDelete && strings.HasPrefix(path, "/items/"):
		return h.deleteItem(ctx, path, req)
	case method == http.MethodPost && path == "/import":
		return h.importItems(ctx, req)
	case method == http.MethodGet && path == "/export":
		return h.exportItems(ctx)
	default:
		return Error(http.StatusNotFound, "Not found"), nil
	}
}

func (h *Handler) listItems(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	items, err := h.svc.List(ctx, req.QueryStringParameters["name"])
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}
	return JSON(http.StatusOK, items), nil
}

func (h *Handler) createItem(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	var draft inventory.ItemDraft
	if err := json.Unmarshal([]byte(orEmptyObject(req.Body)), &draft); err != nil {
		return Error(http.StatusBadRequest, "Invalid JSON body"), nil
	}

	item, err := h.svc.Create(ctx, &draft)
	if errors.Is(err, inventory.ErrNameRequired) {
		return Error(http.StatusBadRequest, "Name required"), nil
	}
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}
	return JSON(http.StatusCreated, item), nil
}

func (h *Handler) updateItem(ctx context.Context, path string, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	id := itemID(req.PathParameters, path)
	if id == "" {
		return Error(http.StatusBadRequest, "Missing item id"), nil
	}

	// UseNumber keeps the canonical numeric string for the codec
	dec := json.NewDecoder(strings.NewReader(orEmptyObject(req.Body)))
	dec.UseNumber()
	var edits map[string]any
	if err := dec.Decode(&edits); err != nil {
		return Error(http.StatusBadRequest, "Invalid JSON body"), nil
	}

	item, err := h.svc.Update(ctx, id, edits)
	switch {
	case errors.Is(err, dyndb.ErrNoFieldsToUpdate):
		return Error(http.StatusBadRequest, "No fields to update"), nil
	case errors.Is(err, inventory.ErrMissingItemID):
		return Error(http.StatusBadRequest, "Missing item id"), nil
	case err != nil:
		return events.APIGatewayV2HTTPResponse{}, err
	}
	if item == nil {
		// deleted between update and re-fetch; post-update state is absent
		return Empty(http.StatusOK), nil
	}
	return JSON(http.StatusOK, item), nil
}

func (h *Handler) deleteItem(ctx context.Context, path string, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	id := itemID(req.PathParameters, path)
	if id == "" {
		return Error(http.StatusBadRequest, "Missing item id"), nil
	}
	if err := h.svc.Delete(ctx, id); err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}
	return Empty(http.StatusNoContent), nil
}

func (h *Handler) importItems(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	count, err := h.svc.ImportCSV(ctx, req.Body, req.IsBase64Encoded)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}
	_ = h.metrics.Count("import.rows", float64(count), nil)
	return JSON(http.StatusOK, map[string]int{"imported": count}), nil
}

func (h *Handler) exportItems(ctx context.Context) (events.APIGatewayV2HTTPResponse, error) {
	out, err := h.svc.ExportCSV(ctx)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}
	return CSV(http.StatusOK, out), nil
}

// itemID resolves the {id} path parameter. Without one, the id is the single
// segment after /items/ (at most one trailing slash tolerated); anything
// deeper resolves to no id at all.
func itemID(params map[string]string, path string) string {
	if id := params["id"]; id != "" {
		return id
	}
	rest := strings.TrimPrefix(path, "/items/")
	rest = strings.TrimSuffix(rest, "/")
	if strings.Contains(rest, "/") {
		return ""
	}
	return rest
}

func orEmptyObject(body string) string {
	if body == "" {
		return "{}"
	}
	return body
}
