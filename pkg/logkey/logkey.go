package logkey

// Shared slog attribute keys so log lines stay greppable across packages.
const (
	TraceID = "trace_id"
	UserID  = "user_id"
	OrderID = "order_id"
	Error   = "error"
)
