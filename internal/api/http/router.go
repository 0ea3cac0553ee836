package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mhr996/school-dash-backend/internal/domain"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth     *AuthHandler
	Customer *CustomerHandler
	Deal     *DealHandler
	Bill     *BillHandler
	Booking  *BookingHandler
	Provider *ProviderHandler
	Payout   *PayoutHandler
	Catalog  *CatalogHandler
	Document *DocumentHandler
}

// NewRouter mounts the full API under /api/v1. Everything except login,
// refresh and health sits behind the auth middleware; mutating routes
// additionally require the employee role, user administration the admin role.
func NewRouter(h Handlers, auth *AuthMiddleware) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", h.Auth.Refresh).Methods(http.MethodPost)

	p := api.NewRoute().Subrouter()
	p.Use(auth.Handler)

	employee := func(fn http.HandlerFunc) http.HandlerFunc {
		return RequireRole(domain.UserRoleEmployee, fn)
	}
	admin := func(fn http.HandlerFunc) http.HandlerFunc {
		return RequireRole(domain.UserRoleAdmin, fn)
	}

	p.HandleFunc("/auth/me", h.Auth.Me).Methods(http.MethodGet)
	p.HandleFunc("/users", admin(h.Auth.CreateUser)).Methods(http.MethodPost)
	p.HandleFunc("/users", admin(h.Auth.ListUsers)).Methods(http.MethodGet)
	p.HandleFunc("/users/{id:[0-9]+}/active", admin(h.Auth.SetUserActive)).Methods(http.MethodPut)

	p.HandleFunc("/customers", employee(h.Customer.Create)).Methods(http.MethodPost)
	p.HandleFunc("/customers", h.Customer.List).Methods(http.MethodGet)
	p.HandleFunc("/customers/{id:[0-9]+}", h.Customer.Get).Methods(http.MethodGet)
	p.HandleFunc("/customers/{id:[0-9]+}", employee(h.Customer.Update)).Methods(http.MethodPut)
	p.HandleFunc("/customers/{id:[0-9]+}", admin(h.Customer.Delete)).Methods(http.MethodDelete)
	p.HandleFunc("/customers/{id:[0-9]+}/transactions", h.Customer.Transactions).Methods(http.MethodGet)

	p.HandleFunc("/deals", employee(h.Deal.Create)).Methods(http.MethodPost)
	p.HandleFunc("/deals", h.Deal.List).Methods(http.MethodGet)
	p.HandleFunc("/deals/{id:[0-9]+}", h.Deal.Get).Methods(http.MethodGet)
	p.HandleFunc("/deals/{id:[0-9]+}", employee(h.Deal.Update)).Methods(http.MethodPut)
	p.HandleFunc("/deals/{id:[0-9]+}", employee(h.Deal.Delete)).Methods(http.MethodDelete)

	p.HandleFunc("/bills", employee(h.Bill.Create)).Methods(http.MethodPost)
	p.HandleFunc("/bills", h.Bill.List).Methods(http.MethodGet)
	p.HandleFunc("/bills/{id:[0-9]+}", h.Bill.Get).Methods(http.MethodGet)
	p.HandleFunc("/bills/{id:[0-9]+}", employee(h.Bill.Update)).Methods(http.MethodPut)
	p.HandleFunc("/bills/{id:[0-9]+}/payments", employee(h.Bill.UpdatePayments)).Methods(http.MethodPut)
	p.HandleFunc("/bills/{id:[0-9]+}", employee(h.Bill.Delete)).Methods(http.MethodDelete)

	p.HandleFunc("/bookings", employee(h.Booking.Create)).Methods(http.MethodPost)
	p.HandleFunc("/bookings", h.Booking.List).Methods(http.MethodGet)
	p.HandleFunc("/bookings/{id:[0-9]+}", h.Booking.Get).Methods(http.MethodGet)
	p.HandleFunc("/bookings/{id:[0-9]+}", employee(h.Booking.Update)).Methods(http.MethodPut)
	p.HandleFunc("/bookings/{id:[0-9]+}/confirm", employee(h.Booking.Confirm)).Methods(http.MethodPost)
	p.HandleFunc("/bookings/{id:[0-9]+}/complete", employee(h.Booking.Complete)).Methods(http.MethodPost)
	p.HandleFunc("/bookings/{id:[0-9]+}/cancel", employee(h.Booking.Cancel)).Methods(http.MethodPost)

	p.HandleFunc("/providers/{type}", employee(h.Provider.Create)).Methods(http.MethodPost)
	p.HandleFunc("/providers/{type}", h.Provider.List).Methods(http.MethodGet)
	p.HandleFunc("/providers/{type}/{id:[0-9]+}", h.Provider.Get).Methods(http.MethodGet)
	p.HandleFunc("/providers/{type}/{id:[0-9]+}", employee(h.Provider.Update)).Methods(http.MethodPut)
	p.HandleFunc("/providers/{type}/{id:[0-9]+}", admin(h.Provider.Delete)).Methods(http.MethodDelete)
	p.HandleFunc("/providers/{type}/{id:[0-9]+}/balance", h.Provider.Balance).Methods(http.MethodGet)
	p.HandleFunc("/providers/{type}/{id:[0-9]+}/payouts", h.Provider.Payouts).Methods(http.MethodGet)

	p.HandleFunc("/payouts", h.Payout.List).Methods(http.MethodGet)
	p.HandleFunc("/payouts/{id:[0-9]+}/payment", employee(h.Payout.CreatePayment)).Methods(http.MethodPost)

	p.HandleFunc("/schools", employee(h.Catalog.CreateSchool)).Methods(http.MethodPost)
	p.HandleFunc("/schools", h.Catalog.ListSchools).Methods(http.MethodGet)
	p.HandleFunc("/schools/{id:[0-9]+}", h.Catalog.GetSchool).Methods(http.MethodGet)
	p.HandleFunc("/schools/{id:[0-9]+}", employee(h.Catalog.UpdateSchool)).Methods(http.MethodPut)
	p.HandleFunc("/schools/{id:[0-9]+}", admin(h.Catalog.DeleteSchool)).Methods(http.MethodDelete)

	p.HandleFunc("/destinations", employee(h.Catalog.CreateDestination)).Methods(http.MethodPost)
	p.HandleFunc("/destinations", h.Catalog.ListDestinations).Methods(http.MethodGet)
	p.HandleFunc("/destinations/{id:[0-9]+}", h.Catalog.GetDestination).Methods(http.MethodGet)
	p.HandleFunc("/destinations/{id:[0-9]+}", employee(h.Catalog.UpdateDestination)).Methods(http.MethodPut)
	p.HandleFunc("/destinations/{id:[0-9]+}", admin(h.Catalog.DeleteDestination)).Methods(http.MethodDelete)

	p.HandleFunc("/documents/upload-url", employee(h.Document.GetUploadURL)).Methods(http.MethodPost)
	p.HandleFunc("/documents/download-url", h.Document.GetDownloadURL).Methods(http.MethodGet)
	p.HandleFunc("/documents", admin(h.Document.Delete)).Methods(http.MethodDelete)
	p.HandleFunc("/documents/upload", employee(h.Document.Upload)).Methods(http.MethodPut)
	p.HandleFunc("/documents/download", h.Document.Download).Methods(http.MethodGet)

	return r
}
