package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the bearer
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"
