package constant

import "time"

const (
	RequestParamID      = "id"
	RequestParamOwnerID = "ownerId"
)

const (
	DateFormat = time.RFC3339
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelHTTPScopeName       = "http"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderContentType = "Content-Type"
	RequestHeaderLocation    = "Location"
	RequestHeaderUserAgent   = "User-Agent"
	RequestHeaderRequestID   = "X-Request-ID"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy       = "SERVER UNHEALTHY"
	ResponseHealthy              = "OK"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	DBDriverPostgres = "postgres"
	DBDriverPgx      = "pgx"
)
