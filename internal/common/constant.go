package common

// BypassHeaderName and BypassHeaderValue identify the development-proxy
// bypass header attached to every outbound request. The tunnel in front of
// the backend intercepts browser-looking requests unless this is present.
const (
	BypassHeaderName  = "ngrok-skip-browser-warning"
	BypassHeaderValue = "true"
)

// AuthorizationHeaderName carries the bearer access token.
const AuthorizationHeaderName = "Authorization"
