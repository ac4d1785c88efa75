package handler

const (
	errInternalServer = "Internal server error"
	errMissingField   = "Both name and email fields are required"
	errUnknownToken   = "Subscription token is invalid"
)
