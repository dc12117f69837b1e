package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldRunID          = "run_id"
	FieldLogFile        = "log_file"
	FieldReportKey      = "report_key"
	FieldTotalLines     = "total_lines"
	FieldProcessedLines = "processed_lines"
	FieldErrorRatio     = "error_ratio"
	FieldDistinctURLs   = "distinct_urls"
	FieldReportRows     = "report_rows"
)
