package middleware

import (
	"net/http/httptest"
	"testing"

	"guesswho/internal/observability"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func spanAttr(span sdktrace.ReadOnlySpan, key attribute.Key) (attribute.Value, bool) {
	for _, kv := range span.Attributes() {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestTracingMiddleware(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := observability.Tracer
	observability.Tracer = tp.Tracer("test")
	t.Cleanup(func() { observability.Tracer = prev })

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(Tracing())
	app.Get("/ping", func(c *fiber.Ctx) error {
		c.Locals("userID", uint(7))
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"),
		"trace id is exposed to the client for support correlation")

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	span := spans[0]

	assert.Equal(t, "GET /ping", span.Name())
	assert.Equal(t, resp.Header.Get("X-Trace-ID"), span.SpanContext().TraceID().String())

	method, ok := spanAttr(span, "http.method")
	require.True(t, ok)
	assert.Equal(t, "GET", method.AsString())

	status, ok := spanAttr(span, "http.status_code")
	require.True(t, ok)
	assert.Equal(t, int64(fiber.StatusOK), status.AsInt64())

	rid, ok := spanAttr(span, "request.id")
	require.True(t, ok, "span carries the request id issued upstream")
	assert.Equal(t, resp.Header.Get("X-Request-Id"), rid.AsString())

	userID, ok := spanAttr(span, "user.id")
	require.True(t, ok)
	assert.Equal(t, int64(7), userID.AsInt64())
}

func TestTracingMiddlewareRecordsHandlerError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := observability.Tracer
	observability.Tracer = tp.Tracer("test")
	t.Cleanup(func() { observability.Tracer = prev })

	app := fiber.New()
	app.Use(Tracing())
	app.Get("/boom", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusInternalServerError, "boom")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	require.Len(t, spans[0].Events(), 1, "handler error is recorded on the span")
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}
