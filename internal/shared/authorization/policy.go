package authorization

// Policy resources and actions checked against the casbin enforcer.
const (
	ResourceUsers   = "users"
	ResourceTickets = "tickets"
	ActionManage    = "manage"
)
