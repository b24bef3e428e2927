package constants

// Static route constants
const (
	WebhookBaseRoute  = "/webhook"
	WebhookSalesRoute = "/sales"
	APIBaseRoute      = "/api"
	APIV1Route        = "/v1"
)
