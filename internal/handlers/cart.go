package handlers

import (
	"net/http"

	"travel-storefront/internal/api"
	"travel-storefront/internal/services"
	"travel-storefront/internal/session"

	"github.com/go-chi/chi/v5"
)

// CartHandler drives the cart page and its mutations. Every mutation goes
// to the server first; the session-cached copy only changes after the
// server confirms.
type CartHandler struct {
	api       *api.Client
	templates *TemplateCache
}

func NewCartHandler(client *api.Client, templates *TemplateCache) *CartHandler {
	return &CartHandler{api: client, templates: templates}
}

// cartService builds a session-scoped cart for the current request.
func (h *CartHandler) cartService(r *http.Request) *services.CartService {
	return services.NewCartService(h.api, session.FromContext(r.Context()))
}

// CartPage loads the server cart and renders it. If the server is
// unreachable the last cached snapshot is shown with a warning flash.
func (h *CartHandler) CartPage(w http.ResponseWriter, r *http.Request) {
	cart := h.cartService(r)

	items, err := cart.Load(r.Context())
	if err != nil {
		if api.IsUnauthorized(err) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		session.SetFlash(session.FromContext(r.Context()),
			"Showing your saved cart. "+api.FriendlyMessage(err))
	}

	data := pageData(r)
	data["Items"] = items
	data["Subtotal"] = cart.Subtotal()
	render(w, r, h.templates, "cart.html", data)
}

// AddToCart puts one unit of an activity in the cart.
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	activityID := chi.URLParam(r, "activityID")
	if activityID == "" {
		http.Error(w, "Missing activity", http.StatusBadRequest)
		return
	}

	if err := h.cartService(r).Add(r.Context(), activityID); err != nil {
		failRedirect(w, r, err, "/activity/"+activityID)
		return
	}

	session.SetFlash(session.FromContext(r.Context()), "Added to your cart.")
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// IncreaseQuantity bumps an item's quantity by one.
func (h *CartHandler) IncreaseQuantity(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(cart *services.CartService, id string) error {
		return cart.Increase(r.Context(), id)
	})
}

// DecreaseQuantity lowers an item's quantity by one; at one it removes the
// item from the cart.
func (h *CartHandler) DecreaseQuantity(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(cart *services.CartService, id string) error {
		return cart.Decrease(r.Context(), id)
	})
}

// RemoveItem deletes an item from the cart.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(cart *services.CartService, id string) error {
		return cart.Remove(r.Context(), id)
	})
}

func (h *CartHandler) mutate(w http.ResponseWriter, r *http.Request, op func(*services.CartService, string) error) {
	itemID := chi.URLParam(r, "itemID")
	if itemID == "" {
		http.Error(w, "Missing cart item", http.StatusBadRequest)
		return
	}

	cart := h.cartService(r)
	// Mutations address items by cart ID, so the snapshot has to be fresh
	// before the server call.
	if _, err := cart.Load(r.Context()); err != nil {
		failRedirect(w, r, err, "/cart")
		return
	}
	if err := op(cart, itemID); err != nil {
		failRedirect(w, r, err, "/cart")
		return
	}
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}
