package errors

// ErrorCode identifies an application error category
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL          ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 1001
	ErrorCode_NOT_FOUND         ErrorCode = 1002
	ErrorCode_ALREADY_EXISTS    ErrorCode = 1003
	ErrorCode_PERMISSION_DENIED ErrorCode = 1004
	ErrorCode_UNAUTHENTICATED   ErrorCode = 1005
	ErrorCode_FORBIDDEN         ErrorCode = 1006
	ErrorCode_INVALID_PAYLOAD   ErrorCode = 1007

	// Authentication
	ErrorCode_AUTH_INVALID_TOKEN         ErrorCode = 2000
	ErrorCode_AUTH_TOKEN_EXPIRED         ErrorCode = 2001
	ErrorCode_AUTH_INVALID_CREDENTIALS   ErrorCode = 2002
	ErrorCode_AUTH_USER_NOT_FOUND        ErrorCode = 2003
	ErrorCode_AUTH_INVALID_REFRESH_TOKEN ErrorCode = 2004

	// Meetings
	ErrorCode_MEETING_NOT_FOUND          ErrorCode = 3000
	ErrorCode_MEETING_TRANSCRIPT_TOO_SHORT ErrorCode = 3001
	ErrorCode_MEETING_TRANSCRIPT_TOO_LONG  ErrorCode = 3002

	// Analysis
	ErrorCode_ANALYSIS_NOT_FOUND ErrorCode = 4000
	ErrorCode_ANALYSIS_PENDING   ErrorCode = 4001
	ErrorCode_ANALYSIS_FAILED    ErrorCode = 4002

	// Report export
	ErrorCode_REPORT_GENERATION_FAILED ErrorCode = 5000
	ErrorCode_REPORT_EXPORT_FAILED     ErrorCode = 5001

	// Integrations
	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 6000
	ErrorCode_INTEGRATION_CACHE_FAILED   ErrorCode = 6001

	// Database
	ErrorCode_DB_CONNECTION_FAILED ErrorCode = 7000
	ErrorCode_DB_QUERY_FAILED      ErrorCode = 7001
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                      "OK",
	ErrorCode_INTERNAL:                     "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:             "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                    "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:               "ALREADY_EXISTS",
	ErrorCode_PERMISSION_DENIED:            "PERMISSION_DENIED",
	ErrorCode_UNAUTHENTICATED:              "UNAUTHENTICATED",
	ErrorCode_FORBIDDEN:                    "FORBIDDEN",
	ErrorCode_INVALID_PAYLOAD:              "INVALID_PAYLOAD",
	ErrorCode_AUTH_INVALID_TOKEN:           "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_TOKEN_EXPIRED:           "AUTH_TOKEN_EXPIRED",
	ErrorCode_AUTH_INVALID_CREDENTIALS:     "AUTH_INVALID_CREDENTIALS",
	ErrorCode_AUTH_USER_NOT_FOUND:          "AUTH_USER_NOT_FOUND",
	ErrorCode_AUTH_INVALID_REFRESH_TOKEN:   "AUTH_INVALID_REFRESH_TOKEN",
	ErrorCode_MEETING_NOT_FOUND:            "MEETING_NOT_FOUND",
	ErrorCode_MEETING_TRANSCRIPT_TOO_SHORT: "MEETING_TRANSCRIPT_TOO_SHORT",
	ErrorCode_MEETING_TRANSCRIPT_TOO_LONG:  "MEETING_TRANSCRIPT_TOO_LONG",
	ErrorCode_ANALYSIS_NOT_FOUND:           "ANALYSIS_NOT_FOUND",
	ErrorCode_ANALYSIS_PENDING:             "ANALYSIS_PENDING",
	ErrorCode_ANALYSIS_FAILED:              "ANALYSIS_FAILED",
	ErrorCode_REPORT_GENERATION_FAILED:     "REPORT_GENERATION_FAILED",
	ErrorCode_REPORT_EXPORT_FAILED:         "REPORT_EXPORT_FAILED",
	ErrorCode_INTEGRATION_STORAGE_FAILED:   "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:     "INTEGRATION_CACHE_FAILED",
	ErrorCode_DB_CONNECTION_FAILED:         "DB_CONNECTION_FAILED",
	ErrorCode_DB_QUERY_FAILED:              "DB_QUERY_FAILED",
}

// String returns the symbolic name of the error code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
