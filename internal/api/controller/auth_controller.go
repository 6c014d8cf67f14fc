package controller

import (
	"errors"
	"net/http"
	"time"

	"ycliu87/Car-Garage/internal/api/models"
	"ycliu87/Car-Garage/internal/api/response"
	"ycliu87/Car-Garage/internal/api/service"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "session"

// AuthControllerConfig carries the cookie settings for the auth endpoints.
type AuthControllerConfig struct {
	CookieSecure bool
	SessionTTL   time.Duration
}

// AuthController handles registration, login, logout and the profile page.
type AuthController struct {
	authService service.AuthService
	config      AuthControllerConfig
}

// NewAuthController creates a new AuthController.
func NewAuthController(authService service.AuthService, config AuthControllerConfig) *AuthController {
	return &AuthController{
		authService: authService,
		config:      config,
	}
}

// RegisterForm renders the registration form.
// GET /register
func (ac *AuthController) RegisterForm(c *gin.Context) {
	response.Page(c, http.StatusOK, "register.html", gin.H{"Title": "Register"})
}

// Register creates a new user. Duplicate usernames and duplicate emails both
// re-render the form with the invalid flag.
// POST /register
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		response.InvalidForm(c, http.StatusBadRequest, "register.html", gin.H{"Title": "Register"})
		return
	}

	if err := ac.authService.Register(c.Request.Context(), &req); err != nil {
		if errors.Is(err, models.ErrConflict) {
			response.InvalidForm(c, http.StatusBadRequest, "register.html", gin.H{"Title": "Register"})
			return
		}
		response.InternalError(c, err)
		return
	}

	// A fresh account starts without a session, even if the browser still
	// carries a cookie from another one.
	ac.clearSessionCookie(c)
	response.SeeOther(c, "/login")
}

// LoginForm renders the login form.
// GET /login
func (ac *AuthController) LoginForm(c *gin.Context) {
	response.Page(c, http.StatusOK, "login.html", gin.H{"Title": "Login"})
}

// Login checks the credentials and sets the session cookie on success. All
// failures answer 401 with the re-rendered form and no cookie.
// POST /login
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.InvalidForm(c, http.StatusUnauthorized, "login.html", gin.H{"Title": "Login"})
		return
	}

	token, err := ac.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, models.ErrAuthFailed) {
			response.InvalidForm(c, http.StatusUnauthorized, "login.html", gin.H{"Title": "Login"})
			return
		}
		response.InternalError(c, err)
		return
	}

	ac.setSessionCookie(c, token)
	response.SeeOther(c, "/user")
}

// Logout clears the session cookie. The token itself stays cryptographically
// valid until its expiry; there is no server-side revocation list.
// GET /logout
func (ac *AuthController) Logout(c *gin.Context) {
	ac.clearSessionCookie(c)
	response.Found(c, "/")
}

// Profile renders the current user's page. Anything wrong with the session
// cookie sends the visitor to the login form.
// GET /user
func (ac *AuthController) Profile(c *gin.Context) {
	token, err := c.Cookie(SessionCookieName)
	if err != nil {
		response.Found(c, "/login")
		return
	}

	user, err := ac.authService.CurrentUser(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, models.ErrUnauthenticated) {
			response.Found(c, "/login")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Page(c, http.StatusOK, "user.html", gin.H{
		"Title": user.Name,
		"User":  user,
	})
}

func (ac *AuthController) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(ac.config.SessionTTL.Seconds()), "/", "", ac.config.CookieSecure, true)
}

func (ac *AuthController) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", ac.config.CookieSecure, true)
}
