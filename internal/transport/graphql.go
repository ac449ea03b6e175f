package transport

import (
	"encoding/json"
	"net/http"

	"artisan-market-be/internal/logger"
	"artisan-market-be/internal/metrics"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/parser"
	"github.com/graphql-go/graphql/language/source"
	"go.uber.org/zap"
)

type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

type graphqlError struct {
	Message string `json:"message"`
}

// GraphQLHandler serves POST /graphql. Resolver errors travel inside the 200
// response envelope; only an unreadable body or an unparsable document is an
// HTTP 400.
type GraphQLHandler struct {
	schema graphql.Schema
	stats  metrics.GraphQLStats
}

func NewGraphQLHandler(schema graphql.Schema) *GraphQLHandler {
	return &GraphQLHandler{schema: schema}
}

// Stats snapshots the request and error counters, for the shutdown report.
func (h *GraphQLHandler) Stats() metrics.Snapshot {
	return h.stats.Snapshot()
}

// Schema exposes the executable schema for sibling handlers (GraphiQL).
func (h *GraphQLHandler) Schema() *graphql.Schema {
	return &h.schema
}

func (h *GraphQLHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErrors(w, http.StatusMethodNotAllowed, "GraphQL only supports POST requests.")
		return
	}

	var req graphqlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrors(w, http.StatusBadRequest, "Invalid JSON request body.")
		return
	}
	if req.Query == "" {
		writeErrors(w, http.StatusBadRequest, "Must provide query string.")
		return
	}

	// Syntax errors are a transport concern, not a resolver one.
	src := source.NewSource(&source.Source{Body: []byte(req.Query), Name: "GraphQL request"})
	if _, err := parser.Parse(parser.ParseParams{Source: src}); err != nil {
		writeErrors(w, http.StatusBadRequest, err.Error())
		return
	}

	timer := metrics.StartTimer()
	h.stats.Requests.Inc()

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        r.Context(),
	})

	if result.HasErrors() {
		h.stats.Errors.Inc()
		logger.FromCtx(r.Context()).Debug("graphql request returned errors",
			zap.Int("error_count", len(result.Errors)),
			zap.Duration("duration", timer.Duration()),
		)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logger.FromCtx(r.Context()).Error("failed to write graphql response", zap.Error(err))
	}
}

func writeErrors(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string][]graphqlError{
		"errors": {{Message: message}},
	})
}
