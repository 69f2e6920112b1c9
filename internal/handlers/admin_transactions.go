package handlers

import (
	"net/http"

	"travel-storefront/internal/api"
	"travel-storefront/internal/models"
	"travel-storefront/internal/session"

	"github.com/go-chi/chi/v5"
)

// AdminTransactionHandler lists every transaction and settles pending ones.
type AdminTransactionHandler struct {
	api       *api.Client
	templates *TemplateCache
}

func NewAdminTransactionHandler(client *api.Client, templates *TemplateCache) *AdminTransactionHandler {
	return &AdminTransactionHandler{api: client, templates: templates}
}

func (h *AdminTransactionHandler) TransactionsPage(w http.ResponseWriter, r *http.Request) {
	txs, err := h.api.AllTransactions(r.Context())
	if err != nil {
		failRedirect(w, r, err, "/admin")
		return
	}

	data := pageData(r)
	data["Transactions"] = txs
	render(w, r, h.templates, "admin_transactions.html", data)
}

// UpdateStatus marks a transaction success or failed after reviewing the
// payment proof.
func (h *AdminTransactionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	id := chi.URLParam(r, "id")
	status := models.TransactionStatus(r.FormValue("status"))
	if status != models.TransactionSuccess && status != models.TransactionFailed {
		session.SetFlash(session.FromContext(r.Context()), "Status must be success or failed.")
		http.Redirect(w, r, "/admin/transactions", http.StatusSeeOther)
		return
	}

	if err := h.api.UpdateTransactionStatus(r.Context(), id, status); err != nil {
		failRedirect(w, r, err, "/admin/transactions")
		return
	}

	session.SetFlash(session.FromContext(r.Context()), "Transaction marked "+string(status)+".")
	http.Redirect(w, r, "/admin/transactions", http.StatusSeeOther)
}
