package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/orders-admin/auth"
	"github.com/yeremiapane/orders-admin/middlewares"
	"github.com/yeremiapane/orders-admin/utils"
	"github.com/yeremiapane/orders-admin/views"
)

const invalidCredentials = "Invalid email or password"

type AuthController struct {
	Gate   *auth.Gate
	Tokens *auth.Tokens
	// SecureCookie marks the session cookie HTTPS-only.
	SecureCookie bool
}

func NewAuthController(gate *auth.Gate, tokens *auth.Tokens, secure bool) *AuthController {
	return &AuthController{Gate: gate, Tokens: tokens, SecureCookie: secure}
}

// LoginPage renders the login form.
func (ac *AuthController) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", views.LoginPage{})
}

// Login checks the submitted pair and opens the dashboard on a match.
func (ac *AuthController) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	if !ac.Gate.Check(email, password) {
		utils.InfoLogger.WithField("request_id", middlewares.GetRequestID(c)).Info("Admin login rejected")
		c.HTML(http.StatusUnauthorized, "login.html", views.LoginPage{Email: email, Error: invalidCredentials})
		return
	}

	if _, ok := ac.startSession(c); !ok {
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/dashboard")
}

// APILogin is the JSON variant of Login; the token is returned for use as a
// Bearer token and also set as the session cookie.
func (ac *AuthController) APILogin(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !ac.Gate.Check(input.Email, input.Password) {
		utils.RespondError(c, http.StatusUnauthorized, errors.New(invalidCredentials))
		return
	}

	token, ok := ac.startSession(c)
	if !ok {
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{"token": token})
}

func (ac *AuthController) startSession(c *gin.Context) (string, bool) {
	sess, token, err := ac.Tokens.Issue()
	if err != nil {
		utils.ErrorLogger.Errorf("Error issuing session token: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("could not start session"))
		return "", false
	}

	// MaxAge 0 keeps the cookie for the browser session only.
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, token, 0, "/", "", ac.SecureCookie, true)

	utils.InfoLogger.WithField("session_id", sess.ID).Info("Admin logged in")
	return token, true
}
