package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// CodigoParam é o parâmetro de rota com o código da categoria
const CodigoParam = "codigo"

// TraceCategoriaRequest abre um span "http.request" por requisição. Em rotas
// com código de categoria o código consultado vai para o span como
// categoria.codigo. Com tp nil usa o provider global.
func TraceCategoriaRequest(tp trace.TracerProvider) gin.HandlerFunc {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	tracer := tp.Tracer("http")

	return func(c *gin.Context) {
		ctx, span := tracer.Start(c.Request.Context(), "http.request",
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", c.Request.Method),
				attribute.String("http.route", c.FullPath()),
				attribute.String("http.request_id", c.GetString(RequestIDKey)),
			),
		)
		defer span.End()

		if codigo, ok := CodigoFromPath(c); ok {
			span.SetAttributes(attribute.String("categoria.codigo", codigo))
		}

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(attribute.Int("http.status_code", status))

		if status < 400 {
			span.SetStatus(codes.Ok, "")
			return
		}
		msg := "requisição de categoria inválida"
		if len(c.Errors) > 0 {
			msg = c.Errors.String()
		}
		span.SetStatus(codes.Error, msg)
	}
}

// CodigoFromPath extrai o código do parâmetro catch-all da rota, sem a barra
// inicial. ok é false em rotas sem o parâmetro.
func CodigoFromPath(c *gin.Context) (string, bool) {
	for _, p := range c.Params {
		if p.Key == CodigoParam {
			return strings.TrimPrefix(p.Value, "/"), true
		}
	}
	return "", false
}
