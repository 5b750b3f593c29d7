package http

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openAPIDocument []byte

// LoadOpenAPI parses and validates the embedded API description.
func LoadOpenAPI(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

// swaggerDoc serves the document to the Swagger UI as JSON.
type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

// RegisterSwagger publishes doc under swag's default instance, which is the one
// echo-swagger reads. swag panics on a second registration, so only the first
// call registers.
func RegisterSwagger(doc *openapi3.T) error {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal openapi document: %w", err)
	}

	swaggerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{json: string(raw)})
	})
	return nil
}

var swaggerOnce sync.Once

// RequestValidator rejects requests that do not match doc with 422. Requests
// to paths the document does not describe (health, swagger) pass through.
func RequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				// Not described: echo answers 404/405 itself.
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return writeError(c, http.StatusUnprocessableEntity, validationDetail(err))
			}

			return next(c)
		}
	}, nil
}

func validationDetail(err error) string {
	var requestErr *openapi3filter.RequestError
	if errors.As(err, &requestErr) && requestErr.Parameter != nil {
		return requestErr.Error()
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		schemaErr = innermostSchemaError(schemaErr)
		if pointer := schemaErr.JSONPointer(); len(pointer) > 0 {
			return strings.Join(pointer, ".") + ": " + schemaErr.Reason
		}
		return schemaErr.Reason
	}

	if requestErr != nil && requestErr.Reason != "" {
		return requestErr.Reason
	}
	return err.Error()
}

// innermostSchemaError follows allOf, anyOf and oneOf failures down to the
// error of the field that actually broke the schema.
func innermostSchemaError(schemaErr *openapi3.SchemaError) *openapi3.SchemaError {
	for schemaErr.Origin != nil {
		switch schemaErr.SchemaField {
		case "allOf", "anyOf", "oneOf":
		default:
			return schemaErr
		}
		var inner *openapi3.SchemaError
		if !errors.As(schemaErr.Origin, &inner) {
			return schemaErr
		}
		schemaErr = inner
	}
	return schemaErr
}
