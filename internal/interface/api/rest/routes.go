package rest

const (
	// api
	RouteAPI = "/api"

	// auth
	RouteSignup = RouteAPI + "/signup"
	RouteLogin  = RouteAPI + "/login"

	// profile
	RouteMe = RouteAPI + "/me"

	// documents
	RouteDocuments = RouteAPI + "/documents"
	RouteDocument  = RouteDocuments + "/:doc_id"

	// assets
	RouteUploads = "/uploads"

	// ops
	RouteHealth  = RouteAPI + "/healthz"
	RouteMetrics = RouteAPI + "/metrics"
)
