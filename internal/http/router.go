package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hrms-backend/internal/auth"
	"hrms-backend/internal/handlers"
	"hrms-backend/internal/middleware"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	recordHandler *handlers.RecordHandler,
	attendanceHandler *handlers.AttendanceHandler,
	leaveHandler *handlers.LeaveHandler,
	uploadHandler *handlers.UploadHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("API Running"))
	}).Methods("GET")

	// Public API routes - registration and login per principal kind
	r.HandleFunc("/api/employee/register", authHandler.RegisterEmployee).Methods("POST")
	r.HandleFunc("/api/centre/register", authHandler.RegisterCentre).Methods("POST")
	r.HandleFunc("/api/admin/register", authHandler.RegisterAdmin).Methods("POST")
	r.HandleFunc("/api/employee/login", authHandler.LoginEmployee).Methods("POST")
	r.HandleFunc("/api/centre/login", authHandler.LoginCentre).Methods("POST")
	r.HandleFunc("/api/admin/login", authHandler.LoginAdmin).Methods("POST")

	// Token refresh (the handler reads the Authorization header itself so
	// expired-token errors map to 401 with the refresh semantics)
	r.HandleFunc("/api/employee/refresh", authHandler.RefreshEmployee).Methods("POST")
	r.HandleFunc("/api/centre/refresh", authHandler.RefreshCentre).Methods("POST")

	// Password reset flows
	r.HandleFunc("/api/employee/request-reset", authHandler.RequestResetEmployee).Methods("POST")
	r.HandleFunc("/api/employee/verify-reset", authHandler.VerifyResetEmployee).Methods("POST")
	r.HandleFunc("/api/employee/reset-password", authHandler.ResetPasswordEmployee).Methods("POST")
	r.HandleFunc("/api/centre/request-reset", authHandler.RequestResetCentre).Methods("POST")
	r.HandleFunc("/api/centre/verify-reset", authHandler.VerifyResetCentre).Methods("POST")
	r.HandleFunc("/api/centre/reset-password", authHandler.ResetPasswordCentre).Methods("POST")

	// Employee lookups used by the SPA during onboarding
	r.HandleFunc("/api/employee/onboarding-status", recordHandler.OnboardingStatus).Methods("GET")
	r.HandleFunc("/api/employee/info", authHandler.EmployeeInfo).Methods("GET")
	r.HandleFunc("/api/employee/record", recordHandler.Get).Methods("GET")
	r.HandleFunc("/api/getemployees", recordHandler.List).Methods("GET")

	// Onboarding records: writes need a token, reads are kind-gated
	r.Handle("/api/employees",
		authMiddleware.Authenticate(http.HandlerFunc(recordHandler.Upsert))).Methods("POST")
	r.Handle("/api/employees",
		authMiddleware.RequireKind(auth.KindCentre, auth.KindAdmin)(http.HandlerFunc(recordHandler.List))).Methods("GET")
	r.Handle("/api/employees/{id}/status",
		authMiddleware.RequireKind(auth.KindCentre)(http.HandlerFunc(recordHandler.UpdateStatus))).Methods("PUT")
	r.Handle("/api/employees/{id}",
		authMiddleware.RequireKind(auth.KindAdmin)(http.HandlerFunc(recordHandler.Delete))).Methods("DELETE")
	r.Handle("/api/centers",
		authMiddleware.RequireKind(auth.KindAdmin)(http.HandlerFunc(recordHandler.ListCentres))).Methods("GET")

	// Attendance: validation verdict plus the append-only ledger
	r.HandleFunc("/api/attendance/validate", attendanceHandler.Validate).Methods("POST")
	r.HandleFunc("/api/attendance", attendanceHandler.Save).Methods("POST")
	r.HandleFunc("/api/attendance", attendanceHandler.List).Methods("GET")

	// Leave requests
	r.HandleFunc("/api/send-manager-message", leaveHandler.Submit).Methods("POST")
	r.Handle("/api/leave-requests",
		authMiddleware.RequireKind(auth.KindCentre, auth.KindAdmin)(http.HandlerFunc(leaveHandler.List))).Methods("GET")

	// Object-store passthrough
	r.HandleFunc("/api/upload", uploadHandler.Upload).Methods("POST")
	r.HandleFunc("/api/upload", uploadHandler.Delete).Methods("DELETE")

	// Operational endpoints
	r.HandleFunc("/health", healthHandler.Health).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return r
}
