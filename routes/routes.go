package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"deallane.io/onboarding/handlers"
	"deallane.io/onboarding/middleware"
	"deallane.io/onboarding/models"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	// =====================================================
	// Public Routes (no authentication)
	// =====================================================
	r.HandleFunc("/login", handlers.Login).Methods("POST")
	r.HandleFunc("/api/v1/onboarding", handlers.SubmitOnboarding).Methods("POST")
	r.HandleFunc("/api/v1/onboarding/names", handlers.GenerateNames).Methods("POST")

	// =====================================================
	// Admin Routes (require JWT with admin role)
	// =====================================================
	admin := r.PathPrefix("/api/v1/admin").Subrouter()
	admin.Use(middleware.JWTMiddleware)

	adminOnly := []string{models.RoleAdmin}
	admin.Handle("/onboarding", middleware.RequireRole(adminOnly,
		http.HandlerFunc(handlers.ListSubmissions))).Methods("GET")
	admin.Handle("/onboarding/export", middleware.RequireRole(adminOnly,
		http.HandlerFunc(handlers.ExportSubmissionsToExcel))).Methods("GET")
	admin.Handle("/onboarding/{id}", middleware.RequireRole(adminOnly,
		http.HandlerFunc(handlers.UpdateSubmissionStatus))).Methods("PUT")

	return r
}
