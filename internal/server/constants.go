package server

// Log messages for request handling
const (
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
)

// HTTP header names
const (
	HeaderRequestID      = "X-Request-ID"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Probe paths are hit by the hosting platform and the keep-alive loop every
// few minutes; they are logged at debug level only.
// ProbePrefixes match by prefix, ProbeExactPaths only as the whole path.
var (
	ProbePrefixes = []string{
		"/healthz",
		"/readyz",
		"/metrics",
	}
	ProbeExactPaths = []string{
		"/",
		"/health",
	}
)
