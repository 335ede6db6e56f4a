package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXTotalCount   = "X-Total-Count"
	HeaderXCache        = "X-Cache"

	// Context keys
	ContextKeyIdentity  = "identity"
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableUsers            = "users"
	TableMechanics        = "mechanics"
	TableInventory        = "inventory"
	TableServiceTickets   = "service_tickets"
	TableTicketMechanics  = "ticket_mechanics"
	TableInventoryTickets = "inventory_tickets"

	// bcrypt ignores everything past this many bytes and refuses longer input
	MaxPasswordBytes = 72

	// Ticket defaults
	DefaultLeaderboardSize = 10

	// Error messages
	ErrMsgInternalServerError = "internal server error"
	ErrMsgAuthHeaderInvalid   = "authorization header missing or invalid"
	ErrMsgInvalidToken        = "invalid or expired token"
	ErrMsgMechanicRequired    = "mechanic authorization required"
	ErrMsgRateLimited         = "rate limit exceeded, please try again later"
)
