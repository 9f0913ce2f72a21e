package handler

import "net/http"

const (
	themeCookie = "theme"
	themeLight  = "cryptolab-light"
	themeDark   = "cryptolab-dark"
)

func validTheme(v string) bool { return v == themeLight || v == themeDark }

// ThemeHandler handles the theme toggle endpoint.
type ThemeHandler struct{}

// NewThemeHandler creates a new ThemeHandler.
func NewThemeHandler() *ThemeHandler {
	return &ThemeHandler{}
}

// Toggle handles POST /theme. It only sets the cookie; the page script swaps
// data-theme itself.
func (h *ThemeHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	theme := r.FormValue("theme")
	if !validTheme(theme) {
		http.Error(w, "invalid theme", http.StatusBadRequest)
		return
	}

	// Not HttpOnly so the anti-flash script can read it.
	http.SetCookie(w, &http.Cookie{
		Name:     themeCookie,
		Value:    theme,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		SameSite: http.SameSiteLaxMode,
		HttpOnly: false,
	})
	w.WriteHeader(http.StatusNoContent)
}
