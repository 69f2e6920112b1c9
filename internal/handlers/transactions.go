package handlers

import (
	"net/http"
	"strings"

	"travel-storefront/internal/api"
	"travel-storefront/internal/models"
	"travel-storefront/internal/services"
	"travel-storefront/internal/session"

	"github.com/go-chi/chi/v5"
)

// TransactionHandler covers the user's order history: the list, the detail
// page, proof-of-payment upload and cancellation.
type TransactionHandler struct {
	api       *api.Client
	templates *TemplateCache
}

func NewTransactionHandler(client *api.Client, templates *TemplateCache) *TransactionHandler {
	return &TransactionHandler{api: client, templates: templates}
}

// transactionRow pairs a transaction with the locally cached checkout
// totals, when this session still has them.
type transactionRow struct {
	Transaction models.Transaction
	Totals      *models.TransactionTotals
}

// ListPage renders the user's transactions, newest first as returned by
// the API, each annotated with cached promo totals where available.
func (h *TransactionHandler) ListPage(w http.ResponseWriter, r *http.Request) {
	txs, err := h.api.MyTransactions(r.Context())
	if err != nil {
		failRedirect(w, r, err, "/")
		return
	}

	totals := services.NewTotalsCache(session.FromContext(r.Context()))
	rows := make([]transactionRow, 0, len(txs))
	for _, tx := range txs {
		row := transactionRow{Transaction: tx}
		if t, ok := totals.Get(tx.ID); ok {
			row.Totals = &t
		}
		rows = append(rows, row)
	}

	data := pageData(r)
	data["Rows"] = rows
	render(w, r, h.templates, "transactions.html", data)
}

// DetailPage renders one transaction. The list endpoint is the only read
// the API offers, so the detail is found by scanning it.
func (h *TransactionHandler) DetailPage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	txs, err := h.api.MyTransactions(r.Context())
	if err != nil {
		failRedirect(w, r, err, "/transactions")
		return
	}

	var tx *models.Transaction
	for i := range txs {
		if txs[i].ID == id {
			tx = &txs[i]
			break
		}
	}
	if tx == nil {
		http.NotFound(w, r)
		return
	}

	data := pageData(r)
	data["Transaction"] = tx
	totals := services.NewTotalsCache(session.FromContext(r.Context()))
	if t, ok := totals.Get(tx.ID); ok {
		data["Totals"] = t
	}
	render(w, r, h.templates, "transaction_detail.html", data)
}

// SubmitProof attaches a proof-of-payment URL to a pending transaction.
func (h *TransactionHandler) SubmitProof(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	sess := session.FromContext(r.Context())
	proofURL := strings.TrimSpace(r.FormValue("proof_url"))
	if proofURL == "" || !strings.HasPrefix(proofURL, "http") {
		session.SetFlash(sess, "Enter the URL of your payment proof.")
		http.Redirect(w, r, "/transactions/"+id, http.StatusSeeOther)
		return
	}

	if err := h.api.UpdateTransactionProof(r.Context(), id, proofURL); err != nil {
		failRedirect(w, r, err, "/transactions/"+id)
		return
	}

	session.SetFlash(sess, "Payment proof submitted. We will verify it shortly.")
	http.Redirect(w, r, "/transactions/"+id, http.StatusSeeOther)
}

// Cancel cancels a pending transaction.
func (h *TransactionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.api.CancelTransaction(r.Context(), id); err != nil {
		failRedirect(w, r, err, "/transactions")
		return
	}

	session.SetFlash(session.FromContext(r.Context()), "Order cancelled.")
	http.Redirect(w, r, "/transactions", http.StatusSeeOther)
}
