package handler

// Response messages shared by several handlers.
const (
	msgValidation    = "Validation error"
	msgInvalidID     = "Invalid ID"
	msgDuplicateSlug = "Slug already exists"
	msgDuplicateUser = "Username already exists"
)

// invalidJSONReason is reported for the pseudo-field "body" when the request
// body cannot be decoded.
const invalidJSONReason = "invalid_json"

// nullParent selects top-level services in /api/services/parent/:parentId.
const nullParent = "null"
