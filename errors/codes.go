package errors

// ErrorCode is a machine-readable error classification returned alongside the
// HTTP status code
type ErrorCode int32

const (
	ErrorCode_HTTP_OK                ErrorCode = 0
	ErrorCode_INTERNAL               ErrorCode = 1
	ErrorCode_INVALID_ARGUMENT       ErrorCode = 2
	ErrorCode_INVALID_PAYLOAD        ErrorCode = 3
	ErrorCode_NOT_FOUND              ErrorCode = 4
	ErrorCode_CASE_NOT_FOUND         ErrorCode = 5
	ErrorCode_TRANSCRIPT_NOT_READY   ErrorCode = 10
	ErrorCode_UPSTREAM_FAILED        ErrorCode = 11
	ErrorCode_UPSTREAM_SHAPE_INVALID ErrorCode = 12
	ErrorCode_GENERATION_EXHAUSTED   ErrorCode = 13
	ErrorCode_PERSISTENCE_FAILED     ErrorCode = 20
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                "HTTP_OK",
	ErrorCode_INTERNAL:               "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:       "INVALID_ARGUMENT",
	ErrorCode_INVALID_PAYLOAD:        "INVALID_PAYLOAD",
	ErrorCode_NOT_FOUND:              "NOT_FOUND",
	ErrorCode_CASE_NOT_FOUND:         "CASE_NOT_FOUND",
	ErrorCode_TRANSCRIPT_NOT_READY:   "TRANSCRIPT_NOT_READY",
	ErrorCode_UPSTREAM_FAILED:        "UPSTREAM_FAILED",
	ErrorCode_UPSTREAM_SHAPE_INVALID: "UPSTREAM_SHAPE_INVALID",
	ErrorCode_GENERATION_EXHAUSTED:   "GENERATION_EXHAUSTED",
	ErrorCode_PERSISTENCE_FAILED:     "PERSISTENCE_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
