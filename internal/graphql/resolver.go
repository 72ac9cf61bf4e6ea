package graphql

import (
	"context"
	"errors"
	"fmt"

	"github.com/tournevent/shipstation/pkg/shipstation"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"go.uber.org/zap"
)

// ErrBadRequest is wrapped by Execute errors that reject the whole request.
var ErrBadRequest = errors.New("bad graphql request")

// Resolver is the root resolver for the GraphQL bridge.
// It holds dependencies needed by all resolvers.
type Resolver struct {
	API    shipstation.API
	Logger *otelzap.Logger
}

// NewResolver creates a new resolver with the given dependencies.
func NewResolver(api shipstation.API, logger *otelzap.Logger) *Resolver {
	return &Resolver{
		API:    api,
		Logger: logger,
	}
}

// Request is a GraphQL-over-HTTP request body.
type Request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// Response is a GraphQL-over-HTTP response body.
type Response struct {
	Data   map[string]any `json:"data,omitempty"`
	Errors []Error        `json:"errors,omitempty"`
}

// Error is a GraphQL error entry.
type Error struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

type fieldResolver func(ctx context.Context, a *args) (any, error)

// Execute resolves every top-level field of the selected operation. A failed
// field adds errors carrying its path and keeps whatever partial data it
// produced (usually null); the other fields still resolve. Requests that
// cannot be executed at all return an error wrapping ErrBadRequest.
func (r *Resolver) Execute(ctx context.Context, req Request) (*Response, error) {
	doc, err := parser.ParseQuery(&ast.Source{Input: req.Query})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadRequest, err.Error())
	}

	op := doc.Operations.ForName(req.OperationName)
	if op == nil {
		if req.OperationName == "" {
			return nil, fmt.Errorf("%w: operationName is required when the document has %d operations", ErrBadRequest, len(doc.Operations))
		}
		return nil, fmt.Errorf("%w: unknown operation %q", ErrBadRequest, req.OperationName)
	}

	var fields map[string]fieldResolver
	switch op.Operation {
	case ast.Query:
		fields = r.queryFields()
	case ast.Mutation:
		fields = r.mutationFields()
	default:
		return nil, fmt.Errorf("%w: %s operations are not supported", ErrBadRequest, op.Operation)
	}

	resp := &Response{Data: make(map[string]any, len(op.SelectionSet))}
	for _, sel := range op.SelectionSet {
		field, ok := sel.(*ast.Field)
		if !ok {
			return nil, fmt.Errorf("%w: only plain fields are supported at the top level", ErrBadRequest)
		}

		resolve, ok := fields[field.Name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown %s field %q", ErrBadRequest, op.Operation, field.Name)
		}

		value, err := resolve(ctx, newArgs(field, req.Variables))
		resp.Data[field.Alias] = value
		if err != nil {
			r.Logger.Ctx(ctx).Warn("GraphQL field failed",
				zap.String("field", field.Name),
				zap.Error(err),
			)
			for _, e := range flatten(err) {
				resp.Errors = append(resp.Errors, Error{Message: e.Error(), Path: []any{field.Alias}})
			}
		}
	}
	return resp, nil
}

// flatten splits an errors.Join result back into its parts.
func flatten(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

// resolveWith checks argument errors before calling the API. A failed call resolves to null.
func resolveWith[T any](a *args, call func() (T, error)) (any, error) {
	if a.err != nil {
		return nil, a.err
	}
	v, err := call()
	if err != nil {
		return nil, err
	}
	return v, nil
}
