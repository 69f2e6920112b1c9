package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"travel-storefront/internal/api"
	"travel-storefront/internal/models"
	"travel-storefront/internal/services"
	"travel-storefront/internal/session"
)

// CheckoutHandler renders the checkout summary, validates promo codes and
// confirms payment.
type CheckoutHandler struct {
	api       *api.Client
	templates *TemplateCache
}

func NewCheckoutHandler(client *api.Client, templates *TemplateCache) *CheckoutHandler {
	return &CheckoutHandler{api: client, templates: templates}
}

func (h *CheckoutHandler) service(r *http.Request) *services.CheckoutService {
	totals := services.NewTotalsCache(session.FromContext(r.Context()))
	return services.NewCheckoutService(h.api, totals)
}

// CheckoutPage shows the cart, payment methods and promo field. An applied
// promo arrives via the promo query param so the page can be re-rendered
// with the discount after validation.
func (h *CheckoutHandler) CheckoutPage(w http.ResponseWriter, r *http.Request) {
	svc := h.service(r)

	summary, err := svc.Summary(r.Context())
	if err != nil {
		failRedirect(w, r, err, "/cart")
		return
	}
	if len(summary.Items) == 0 {
		session.SetFlash(session.FromContext(r.Context()), "Your cart is empty.")
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	data := pageData(r)
	data["Items"] = summary.Items
	data["PaymentMethods"] = summary.PaymentMethods
	data["Subtotal"] = summary.Subtotal
	data["Totals"] = models.TotalsFor(summary.Subtotal, nil)

	if code := r.URL.Query().Get("promo"); code != "" {
		promo, err := svc.ApplyPromo(summary.Promos, code, summary.Subtotal)
		if err != nil {
			data["PromoError"] = promoErrorMessage(err)
		} else {
			data["Promo"] = promo
			data["Totals"] = models.TotalsFor(summary.Subtotal, promo)
		}
		data["PromoCode"] = code
	}

	render(w, r, h.templates, "checkout.html", data)
}

// ApplyPromo validates a code and bounces back to the checkout page with it
// in the query string, so a refresh keeps the discount visible.
func (h *CheckoutHandler) ApplyPromo(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}
	code := r.FormValue("promo_code")
	if code == "" {
		http.Redirect(w, r, "/checkout", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/checkout?promo="+url.QueryEscape(code), http.StatusSeeOther)
}

// ConfirmPayment creates the transaction and clears the cached cart.
func (h *CheckoutHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	sess := session.FromContext(r.Context())
	req := services.ConfirmRequest{
		CartIDs:         r.Form["cart_id"],
		PaymentMethodID: r.FormValue("payment_method_id"),
		PromoCode:       r.FormValue("promo_code"),
	}

	tx, err := h.service(r).Confirm(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrEmptyCart):
			session.SetFlash(sess, "Your cart is empty.")
			http.Redirect(w, r, "/cart", http.StatusSeeOther)
		case errors.Is(err, models.ErrNoPaymentMethod):
			session.SetFlash(sess, "Choose a payment method before confirming.")
			http.Redirect(w, r, "/checkout", http.StatusSeeOther)
		default:
			var minErr *models.PromoMinimumError
			if errors.As(err, &minErr) || errors.Is(err, models.ErrPromoNotFound) {
				session.SetFlash(sess, promoErrorMessage(err))
				http.Redirect(w, r, "/checkout", http.StatusSeeOther)
				return
			}
			failRedirect(w, r, err, "/checkout")
		}
		return
	}

	// The server consumed the cart; drop the stale local copy.
	services.NewCartService(h.api, sess).Clear()

	session.SetFlash(sess, "Order placed. Upload your payment proof to finish.")
	http.Redirect(w, r, "/transactions/"+tx.ID, http.StatusSeeOther)
}

func promoErrorMessage(err error) string {
	var minErr *models.PromoMinimumError
	switch {
	case errors.As(err, &minErr):
		return "A minimum transaction of " + models.FormatRupiah(minErr.Minimum) +
			" is required for promo " + minErr.Code + "."
	case errors.Is(err, models.ErrPromoNotFound):
		return "That promo code is not valid."
	default:
		return api.FriendlyMessage(err)
	}
}
