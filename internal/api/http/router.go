package http

import (
	"database/sql"
	"net/http"

	"github.com/gorilla/mux"

	"libris-backend/internal/security"
	"libris-backend/internal/service"
)

// RegisterRoutes wires the API surface onto the router. Everything under
// /api/v1 requires a bearer token; /admin additionally requires staff.
func RegisterRoutes(
	r *mux.Router,
	tm security.TokenManager,
	loanSvc service.LoanService,
	ruleSvc service.RuleService,
	catalogSvc service.CatalogService,
	db *sql.DB,
) {
	r.Use(RequestID, SecureHeaders)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if err := db.PingContext(req.Context()); err != nil {
			writeJSONError(w, http.StatusServiceUnavailable, "database unreachable")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	loans := NewLoanHandler(loanSvc)
	rules := NewRuleHandler(ruleSvc)
	books := NewBookHandler(catalogSvc)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(Auth(tm))

	api.HandleFunc("/loans", loans.Borrow).Methods(http.MethodPost)
	api.HandleFunc("/loans", loans.ListMine).Methods(http.MethodGet)
	api.HandleFunc("/loans/{id:[0-9]+}", loans.Get).Methods(http.MethodGet)
	api.HandleFunc("/loans/{id:[0-9]+}/return", loans.Return).Methods(http.MethodPost)
	api.HandleFunc("/loans/{id:[0-9]+}/renew", loans.Renew).Methods(http.MethodPost)

	api.HandleFunc("/books", books.List).Methods(http.MethodGet)
	api.HandleFunc("/books/{id:[0-9]+}", books.Get).Methods(http.MethodGet)

	api.HandleFunc("/rule", rules.Get).Methods(http.MethodGet)

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(RequireStaff)
	admin.HandleFunc("/loans", loans.ListAll).Methods(http.MethodGet)
	admin.HandleFunc("/rule", rules.Update).Methods(http.MethodPut)
	admin.HandleFunc("/sweep", loans.Sweep).Methods(http.MethodPost)
}
