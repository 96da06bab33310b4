package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerAuthRoutes(mux *http.ServeMux, handler *Handler, resolver TokenResolver) {
	mux.HandleFunc("POST /v1/auth/register", handler.Register)
	mux.HandleFunc("POST /v1/auth/login", handler.Login)
	mux.Handle("GET /v1/auth/me", RequireAuth(resolver, http.HandlerFunc(handler.Me)))
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, resolver TokenResolver) {
	registerAuthorizedUserRoutes(mux, handler, resolver)
	registerAuthorizedGroupRoutes(mux, handler, resolver)
	registerAuthorizedMatchRoutes(mux, handler, resolver)
	registerAuthorizedPredictionRoutes(mux, handler, resolver)
	registerAuthorizedAdminRoutes(mux, handler, resolver)
}

func registerAuthorizedUserRoutes(mux *http.ServeMux, handler *Handler, resolver TokenResolver) {
	mux.Handle("GET /v1/users", RequireAuth(resolver, http.HandlerFunc(handler.ListUsers)))
}

func registerAuthorizedGroupRoutes(mux *http.ServeMux, handler *Handler, resolver TokenResolver) {
	mux.Handle("GET /v1/groups", RequireAuth(resolver, http.HandlerFunc(handler.ListGroups)))
	mux.Handle("POST /v1/groups", RequireAuth(resolver, http.HandlerFunc(handler.CreateGroup)))
	mux.Handle("POST /v1/groups/join", RequireAuth(resolver, http.HandlerFunc(handler.JoinGroup)))
	mux.Handle("GET /v1/groups/{groupID}", RequireAuth(resolver, http.HandlerFunc(handler.GetGroup)))
	mux.Handle("GET /v1/groups/{groupID}/members", RequireAuth(resolver, http.HandlerFunc(handler.ListGroupMembers)))
	mux.Handle("GET /v1/groups/{groupID}/ranking", RequireAuth(resolver, http.HandlerFunc(handler.GetGroupRanking)))
}

func registerAuthorizedMatchRoutes(mux *http.ServeMux, handler *Handler, resolver TokenResolver) {
	mux.Handle("GET /v1/matches", RequireAuth(resolver, http.HandlerFunc(handler.ListMatches)))
	mux.Handle("POST /v1/matches", RequireAuth(resolver, http.HandlerFunc(handler.CreateMatch)))
	mux.Handle("GET /v1/matches/{matchID}", RequireAuth(resolver, http.HandlerFunc(handler.GetMatch)))
	mux.Handle("PUT /v1/matches/{matchID}", RequireAuth(resolver, http.HandlerFunc(handler.UpdateMatch)))
}

func registerAuthorizedPredictionRoutes(mux *http.ServeMux, handler *Handler, resolver TokenResolver) {
	mux.Handle("GET /v1/predictions", RequireAuth(resolver, http.HandlerFunc(handler.ListPredictions)))
	mux.Handle("POST /v1/predictions", RequireAuth(resolver, http.HandlerFunc(handler.UpsertPrediction)))
}

func registerAuthorizedAdminRoutes(mux *http.ServeMux, handler *Handler, resolver TokenResolver) {
	mux.Handle("GET /v1/admin/stats", RequireAuth(resolver, http.HandlerFunc(handler.GetAdminStats)))
	mux.Handle("GET /v1/admin/reports", RequireAuth(resolver, http.HandlerFunc(handler.GetAdminReports)))
}
