package log

// Common field names for structured logging
const (
	FieldComponent    = "component"
	FieldRequestID    = "request_id"
	FieldClientIP     = "client_ip"
	FieldMethod       = "method"
	FieldPath         = "path"
	FieldStatusCode   = "status_code"
	FieldDuration     = "duration_ms"
	FieldUserAgent    = "user_agent"
	FieldError        = "error"
	FieldOperation    = "operation"
	FieldTab          = "tab"
	FieldProjectID    = "project_id"
	FieldProjectCount = "project_count"
	FieldRowCount     = "row_count"
	FieldLineItem     = "line_item"
	FieldBucket       = "bucket"
	FieldMonth        = "month"
	FieldPartner      = "partner"
	FieldGroupKey     = "group_key"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentHTTP      = "http"
	ComponentEngine    = "engine"
	ComponentSheets    = "sheets"
	ComponentReconcile = "reconcile"
	ComponentCache     = "cache"
	ComponentConfig    = "config"
)

// Operations defines standard operation names
const (
	OpSync     = "sync"
	OpFilter   = "filter"
	OpGroup    = "group"
	OpFetch    = "fetch"
	OpParse    = "parse"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
