package transport

import (
	"fmt"
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// StartHTTPServer serves the same Lambda handler over plain HTTP for the
// local runtime. Requests are adapted to API Gateway v2 events so the routing
// and envelope logic stay identical in both runtimes.
func StartHTTPServer(h *Handler, port int) error {
	addr := fmt.Sprintf(":%d", port)
	log.Info().Msgf("inventory service listening on %s", addr)
	return http.ListenAndServe(addr, NewRouter(h))
}

// NewRouter registers the service routes on a gorilla mux.
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	fn := adaptLambda(h)

	r.HandleFunc("/items", fn).Methods(http.MethodGet, http.MethodPost, http.MethodOptions)
	r.HandleFunc("/items/{id}", fn).Methods(http.MethodPatch, http.MethodDelete, http.MethodOptions)
	r.HandleFunc("/import", fn).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/export", fn).Methods(http.MethodGet, http.MethodOptions)

	// unmatched routes still go through the handler for the uniform 404 envelope
	r.NotFoundHandler = fn
	r.MethodNotAllowedHandler = fn

	return r
}

func adaptLambda(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
			return
		}
		defer r.Body.Close()

		resp, err := h.Handle(r.Context(), toLambdaRequest(r, string(body)))
		if err != nil {
			http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
			return
		}

		for k, v := range resp.Headers {
			w.Header().Set(k, v)
		}
		w.WriteHeader(resp.StatusCode)
		_, _ = io.WriteString(w, resp.Body)
	}
}

func toLambdaRequest(r *http.Request, body string) events.APIGatewayV2HTTPRequest {
	headers := make(map[string]string, len(r.Header))
	for k, v := range r.Header {
		if len(v) > 0 {
			headers[http.CanonicalHeaderKey(k)] = v[0]
		}
	}
	// the Lambda event carries lowercase header names
	if corr := r.Header.Get(HeaderCorrelationID); corr != "" {
		headers[HeaderCorrelationID] = corr
	}

	query := make(map[string]string)
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			query[k] = v[0]
		}
	}

	return events.APIGatewayV2HTTPRequest{
		RawPath:               r.URL.Path,
		RawQueryString:        r.URL.RawQuery,
		Headers:               headers,
		QueryStringParameters: query,
		PathParameters:        mux.Vars(r),
		Body:                  body,
		RequestContext: events.APIGatewayV2HTTPRequestContext{
			HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{
				Method: r.Method,
				Path:   r.URL.Path,
			},
		},
	}
}
