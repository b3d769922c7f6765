// internal/app/features/authgoogle/handler.go
package authgoogle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	userstore "github.com/dalemusser/connecthub/internal/app/store/users"
	"github.com/dalemusser/connecthub/internal/app/system/auth"
	"github.com/dalemusser/connecthub/internal/app/system/status"
	"github.com/dalemusser/connecthub/internal/app/system/timeouts"
	"github.com/dalemusser/connecthub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const stateCookie = "oauth_state"

// Handler implements the Google sign-in flow. Accounts are never created
// here: a Google identity only signs in when a directory user already
// carries that subject or email.
type Handler struct {
	Users      *userstore.Store
	SessionMgr *auth.SessionManager
	Log        *zap.Logger

	ClientID     string
	ClientSecret string
	RedirectURL  string

	// codec signs the short-lived state cookie that binds the callback to
	// the browser that started the flow.
	codec *securecookie.SecureCookie
}

func NewHandler(users *userstore.Store, sessionMgr *auth.SessionManager, clientID, clientSecret, baseURL, stateKey string, logger *zap.Logger) *Handler {
	return &Handler{
		Users:        users,
		SessionMgr:   sessionMgr,
		Log:          logger,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  baseURL + "/auth/google/callback",
		codec:        securecookie.New([]byte(stateKey), nil),
	}
}

func (h *Handler) oauth2Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     h.ClientID,
		ClientSecret: h.ClientSecret,
		RedirectURL:  h.RedirectURL,
		Scopes: []string{
			"openid",
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

// IsConfigured reports whether a client ID and secret are set.
func (h *Handler) IsConfigured() bool {
	return h.ClientID != "" && h.ClientSecret != ""
}

// statePayload travels through the signed state cookie.
type statePayload struct {
	State     string `json:"state"`
	ReturnURL string `json:"return"`
}

// ServeLogin handles GET /auth/google: set the state cookie and redirect
// to Google's consent screen.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if !h.IsConfigured() {
		h.Log.Warn("google sign-in not configured")
		http.Redirect(w, r, "/login?error=google_not_configured", http.StatusSeeOther)
		return
	}

	state := uuid.NewString()
	payload := statePayload{
		State:     state,
		ReturnURL: query.Get(r, "return"),
	}

	encoded, err := h.codec.Encode(stateCookie, payload)
	if err != nil {
		h.Log.Error("encode oauth state", zap.Error(err))
		http.Redirect(w, r, "/login?error=internal", http.StatusSeeOther)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    encoded,
		Path:     "/auth/google",
		MaxAge:   600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.oauth2Config().AuthCodeURL(state), http.StatusTemporaryRedirect)
}

// ServeCallback handles GET /auth/google/callback: validate state, exchange
// the code, resolve the directory user, and sign them in.
func (h *Handler) ServeCallback(w http.ResponseWriter, r *http.Request) {
	if errParam := r.URL.Query().Get("error"); errParam != "" {
		h.Log.Warn("google sign-in denied", zap.String("error", errParam))
		http.Redirect(w, r, "/login?error=google_denied", http.StatusSeeOther)
		return
	}

	payload, err := h.readState(r)
	if err != nil {
		h.Log.Warn("invalid oauth state", zap.Error(err))
		http.Redirect(w, r, "/login?error=invalid_state", http.StatusSeeOther)
		return
	}
	h.clearStateCookie(w)

	if got := r.URL.Query().Get("state"); got == "" || got != payload.State {
		h.Log.Warn("oauth state mismatch")
		http.Redirect(w, r, "/login?error=invalid_state", http.StatusSeeOther)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Redirect(w, r, "/login?error=invalid_code", http.StatusSeeOther)
		return
	}

	token, err := h.oauth2Config().Exchange(r.Context(), code)
	if err != nil {
		h.Log.Error("oauth code exchange failed", zap.Error(err))
		http.Redirect(w, r, "/login?error=token_exchange", http.StatusSeeOther)
		return
	}

	info, err := fetchGoogleUserInfo(r.Context(), token)
	if err != nil {
		h.Log.Error("fetch google user info failed", zap.Error(err))
		http.Redirect(w, r, "/login?error=user_info", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.resolveUser(ctx, info)
	switch {
	case errors.Is(err, errNoAccount):
		h.Log.Info("google sign-in with no linked account", zap.String("email", info.Email))
		http.Redirect(w, r, "/login?error=no_account", http.StatusSeeOther)
		return
	case errors.Is(err, errDisabled):
		http.Redirect(w, r, "/login?error=account_disabled", http.StatusSeeOther)
		return
	case err != nil:
		h.Log.Error("google sign-in lookup failed", zap.Error(err))
		http.Redirect(w, r, "/login?error=internal", http.StatusSeeOther)
		return
	}

	su := auth.SessionUser{
		ID:    u.ID.Hex(),
		Name:  u.FullName(),
		Email: u.Email,
		Role:  u.Role,
	}
	if err := h.SessionMgr.SignIn(w, r, su); err != nil {
		h.Log.Error("save session failed", zap.Error(err), zap.String("user_id", u.ID.Hex()))
		http.Redirect(w, r, "/login?error=session", http.StatusSeeOther)
		return
	}

	h.Log.Info("user signed in via google", zap.String("user_id", u.ID.Hex()))
	http.Redirect(w, r, urlutil.SafeReturn(payload.ReturnURL, "", "/dashboard"), http.StatusSeeOther)
}

var (
	errNoAccount = errors.New("no linked account")
	errDisabled  = errors.New("account disabled")
)

// resolveUser finds the directory user for a verified Google identity:
// first by the stable subject, then by email. An email match links the
// subject for next time.
func (h *Handler) resolveUser(ctx context.Context, info *googleUserInfo) (*models.User, error) {
	u, err := h.Users.GetByGoogleSubject(ctx, info.ID)
	if err == nil {
		if u.Status == status.Disabled {
			return nil, errDisabled
		}
		return u, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	u, err = h.Users.GetByEmail(ctx, info.Email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errNoAccount
	}
	if err != nil {
		return nil, err
	}
	if u.Status == status.Disabled {
		return nil, errDisabled
	}

	if u.GoogleSubject == "" {
		if err := h.Users.LinkGoogleSubject(ctx, u.ID, info.ID); err != nil {
			h.Log.Warn("link google subject failed", zap.Error(err), zap.String("user_id", u.ID.Hex()))
		}
	}
	return u, nil
}

func (h *Handler) readState(r *http.Request) (statePayload, error) {
	var payload statePayload
	c, err := r.Cookie(stateCookie)
	if err != nil {
		return payload, err
	}
	if err := h.codec.Decode(stateCookie, c.Value, &payload); err != nil {
		return payload, err
	}
	return payload, nil
}

func (h *Handler) clearStateCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    "",
		Path:     "/auth/google",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// googleUserInfo is the subset of Google's userinfo response we use.
type googleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"verified_email"`
	Name          string `json:"name"`
}

func fetchGoogleUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))

	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, fmt.Errorf("fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo endpoint returned %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode user info: %w", err)
	}
	return &info, nil
}
