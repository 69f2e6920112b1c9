package handlers

import (
	"net/http"
	"strings"

	"travel-storefront/internal/api"
	"travel-storefront/internal/middleware"
	"travel-storefront/internal/models"
	"travel-storefront/internal/session"
)

// AuthHandler owns the login/register/logout flows. Credentials are
// forwarded to the external API; only the returned token and profile are
// kept, in the session store.
type AuthHandler struct {
	api       *api.Client
	templates *TemplateCache
}

func NewAuthHandler(client *api.Client, templates *TemplateCache) *AuthHandler {
	return &AuthHandler{api: client, templates: templates}
}

// LoginPage renders the login form. The guard has already redirected
// authenticated sessions away from here.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	data := pageData(r)
	data["Redirect"] = middleware.SafeRedirectPath(r.URL.Query().Get("redirect"), "")
	data["Errors"] = map[string]string{}
	data["Form"] = map[string]string{}
	render(w, r, h.templates, "login.html", data)
}

// LoginSubmit exchanges credentials for a token and caches the session.
func (h *AuthHandler) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	redirect := middleware.SafeRedirectPath(r.FormValue("redirect"), "")

	errors := map[string]string{}
	if email == "" {
		errors["email"] = "Email is required"
	} else if !validEmail(email) {
		errors["email"] = "Enter a valid email address"
	}
	if password == "" {
		errors["password"] = "Password is required"
	}
	if len(errors) > 0 {
		h.renderLogin(w, r, errors, email, redirect)
		return
	}

	token, user, err := h.api.Login(r.Context(), api.LoginRequest{Email: email, Password: password})
	if err != nil {
		errors["general"] = api.FriendlyMessage(err)
		h.renderLogin(w, r, errors, email, redirect)
		return
	}

	sess := session.FromContext(r.Context())
	if err := session.SaveAuth(sess, token, user); err != nil {
		errors["general"] = "Could not store your session. Please try again."
		h.renderLogin(w, r, errors, email, redirect)
		return
	}

	// Return the user to the page that sent them to login, unless their
	// role forbids it; admins always land on the admin home.
	target := user.HomePath()
	if redirect != "" && !user.IsAdmin() {
		target = redirect
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *AuthHandler) renderLogin(w http.ResponseWriter, r *http.Request, errors map[string]string, email, redirect string) {
	data := pageData(r)
	data["Errors"] = errors
	data["Form"] = map[string]string{"email": email}
	data["Redirect"] = redirect
	w.WriteHeader(http.StatusUnprocessableEntity)
	render(w, r, h.templates, "login.html", data)
}

// RegisterPage renders the registration form.
func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	data := pageData(r)
	data["Errors"] = map[string]string{}
	data["Form"] = map[string]string{}
	render(w, r, h.templates, "register.html", data)
}

// RegisterSubmit creates the account upstream, then sends the user to
// login with a success flash.
func (h *AuthHandler) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	form := map[string]string{
		"name":  strings.TrimSpace(r.FormValue("name")),
		"email": strings.TrimSpace(r.FormValue("email")),
		"phone": strings.TrimSpace(r.FormValue("phone")),
	}
	password := r.FormValue("password")
	passwordRepeat := r.FormValue("password_repeat")

	errors := map[string]string{}
	if form["name"] == "" {
		errors["name"] = "Name is required"
	}
	if form["email"] == "" {
		errors["email"] = "Email is required"
	} else if !validEmail(form["email"]) {
		errors["email"] = "Enter a valid email address"
	}
	if form["phone"] != "" && !validPhone(form["phone"]) {
		errors["phone"] = "Phone number needs at least 10 digits"
	}
	if len(password) < 6 {
		errors["password"] = "Password needs at least 6 characters"
	}
	if password != passwordRepeat {
		errors["password_repeat"] = "Passwords do not match"
	}

	if len(errors) > 0 {
		h.renderRegister(w, r, errors, form)
		return
	}

	err := h.api.Register(r.Context(), api.RegisterRequest{
		Name:           form["name"],
		Email:          form["email"],
		Password:       password,
		PasswordRepeat: passwordRepeat,
		Role:           models.RoleUser,
		PhoneNumber:    form["phone"],
	})
	if err != nil {
		errors["general"] = api.FriendlyMessage(err)
		h.renderRegister(w, r, errors, form)
		return
	}

	sess := session.FromContext(r.Context())
	session.SetFlash(sess, "Account created. Log in to start planning your trip.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) renderRegister(w http.ResponseWriter, r *http.Request, errors map[string]string, form map[string]string) {
	data := pageData(r)
	data["Errors"] = errors
	data["Form"] = form
	w.WriteHeader(http.StatusUnprocessableEntity)
	render(w, r, h.templates, "register.html", data)
}

// Logout invalidates the token upstream (best-effort) and clears the whole
// local session, cart cache included.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	_ = h.api.Logout(r.Context())

	sess := session.FromContext(r.Context())
	if sess != nil {
		_ = sess.Clear()
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
