package errors

// ErrorCode enumerates application error codes. Values are grouped by
// hundreds per area, the same way the HTTP layer reports them.
type ErrorCode int32

const (
	ErrorCode_UNSPECIFIED ErrorCode = 0
	ErrorCode_HTTP_OK     ErrorCode = 200

	// General
	ErrorCode_INTERNAL          ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 1001
	ErrorCode_NOT_FOUND         ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD   ErrorCode = 1003
	ErrorCode_PAYLOAD_TOO_LARGE ErrorCode = 1004

	// AI collaborators
	ErrorCode_AI_SUMMARY_FAILED       ErrorCode = 2000
	ErrorCode_AI_TRANSCRIPTION_FAILED ErrorCode = 2001
	ErrorCode_AI_SERVICE_UNAVAILABLE  ErrorCode = 2002
	ErrorCode_AI_QUOTA_EXCEEDED       ErrorCode = 2003
	ErrorCode_AI_API_KEY_MISSING      ErrorCode = 2004
	ErrorCode_AI_AUTH_FAILED          ErrorCode = 2005
	ErrorCode_AI_TIMEOUT              ErrorCode = 2006
	ErrorCode_AI_NETWORK_ERROR        ErrorCode = 2007
	ErrorCode_AI_MALFORMED_RESPONSE   ErrorCode = 2008
	ErrorCode_AI_TRANSCRIBER_DISABLED ErrorCode = 2009

	// Integrations
	ErrorCode_INTEGRATION_STORAGE_FAILED      ErrorCode = 3000
	ErrorCode_INTEGRATION_CACHE_FAILED        ErrorCode = 3001
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED ErrorCode = 3002
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNSPECIFIED:                     "UNSPECIFIED",
	ErrorCode_HTTP_OK:                         "HTTP_OK",
	ErrorCode_INTERNAL:                        "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:                "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                       "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:                 "INVALID_PAYLOAD",
	ErrorCode_PAYLOAD_TOO_LARGE:               "PAYLOAD_TOO_LARGE",
	ErrorCode_AI_SUMMARY_FAILED:               "AI_SUMMARY_FAILED",
	ErrorCode_AI_TRANSCRIPTION_FAILED:         "AI_TRANSCRIPTION_FAILED",
	ErrorCode_AI_SERVICE_UNAVAILABLE:          "AI_SERVICE_UNAVAILABLE",
	ErrorCode_AI_QUOTA_EXCEEDED:               "AI_QUOTA_EXCEEDED",
	ErrorCode_AI_API_KEY_MISSING:              "AI_API_KEY_MISSING",
	ErrorCode_AI_AUTH_FAILED:                  "AI_AUTH_FAILED",
	ErrorCode_AI_TIMEOUT:                      "AI_TIMEOUT",
	ErrorCode_AI_NETWORK_ERROR:                "AI_NETWORK_ERROR",
	ErrorCode_AI_MALFORMED_RESPONSE:           "AI_MALFORMED_RESPONSE",
	ErrorCode_AI_TRANSCRIBER_DISABLED:         "AI_TRANSCRIBER_DISABLED",
	ErrorCode_INTEGRATION_STORAGE_FAILED:      "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:        "INTEGRATION_CACHE_FAILED",
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED: "INTEGRATION_EXTERNAL_API_FAILED",
}

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// MarshalText renders codes by name in JSON bodies.
func (c ErrorCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
