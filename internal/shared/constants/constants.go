package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderContentType        = "Content-Type"
	HeaderAuthorization      = "Authorization"
	HeaderXRequestID         = "X-Request-ID"
	HeaderContentDisposition = "Content-Disposition"

	// Content Types
	ContentTypeJSON = "application/json"
	ContentTypePDF  = "application/pdf"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableUsers           = "users"
	TableParks           = "parks"
	TableItineraries     = "itineraries"
	TableItineraryParks  = "itinerary_parks"
	TableContacts        = "contacts"
)
