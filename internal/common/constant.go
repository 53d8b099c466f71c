package common

// AuthHeaderName is the HTTP header used to carry the bearer token on
// authorized requests.
const AuthHeaderName = "Authorization"

// AuthTokenKey is the fixed key under which the client durably stores the
// current session token. Its absence means "not authenticated".
const AuthTokenKey = "auth_token"
