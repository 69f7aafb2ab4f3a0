package controllers

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/franciscosanchezn/fbb-mcp/internal/auth"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

var loginTemplates = template.Must(template.New("login").Parse(`<!DOCTYPE html><html><head><title>Fantasy Baseball MCP</title>` +
	`<style>body{font-family:system-ui;max-width:400px;margin:60px auto;padding:20px}h2{margin-bottom:4px}` +
	`input{width:100%;padding:10px;margin:8px 0;box-sizing:border-box}button{background:#1a1a2e;color:#fff;` +
	`padding:12px 24px;border:none;cursor:pointer;width:100%;margin-top:8px}</style></head><body>` +
	`<h2>Fantasy Baseball MCP</h2>` +
	`<p>Enter your password to authorize access.</p>` +
	`<form action="{{.Action}}" method="post">` +
	`<input type="hidden" name="state" value="{{.State}}">` +
	`<input type="password" name="password" placeholder="Password" required autofocus>` +
	`<button type="submit">Authorize</button>` +
	`</form></body></html>`))

func init() {
	template.Must(loginTemplates.New("login_error").Parse(
		`<h2>Error</h2><p>{{.Message}}</p><a href="javascript:history.back()">Try again</a>`))
}

// LoginController serves the password page that turns a pending
// authorization into an authorization code.
type LoginController struct {
	provider *auth.Provider
}

func NewLoginController(provider *auth.Provider) *LoginController {
	return &LoginController{provider: provider}
}

// LoginPage godoc
// @Summary Password page
// @Description HTML form asking the operator for the server password
// @Tags OAuth2
// @Produce html
// @Param state query string true "Pending authorization state"
// @Success 200 {string} string "HTML form"
// @Router /login [get]
func (lc *LoginController) LoginPage(c *gin.Context) {
	c.Render(http.StatusOK, render.HTML{
		Template: loginTemplates,
		Name:     "login",
		Data: gin.H{
			"Action": lc.provider.ServerURL() + "/login/callback",
			"State":  c.Query("state"),
		},
	})
}

// Callback godoc
// @Summary Password submission
// @Description Checks the password and redirects to the client with an authorization code
// @Tags OAuth2
// @Accept x-www-form-urlencoded
// @Produce html
// @Param state formData string true "Pending authorization state"
// @Param password formData string true "Server password"
// @Success 302 "Redirect to the client with code and state"
// @Failure 401 {string} string "HTML error page"
// @Router /login/callback [post]
func (lc *LoginController) Callback(c *gin.Context) {
	redirect, err := lc.provider.CompleteLogin(c.Request.Context(), c.PostForm("state"), c.PostForm("password"))
	if err != nil {
		status, message := http.StatusUnauthorized, err.Error()
		if !errors.Is(err, auth.ErrInvalidState) && !errors.Is(err, auth.ErrWrongPassword) {
			log.WithError(err).Error("Login callback failed")
			status, message = http.StatusInternalServerError, "Authorization failed, please try again later"
		}
		c.Render(status, render.HTML{
			Template: loginTemplates,
			Name:     "login_error",
			Data:     gin.H{"Message": message},
		})
		return
	}
	c.Redirect(http.StatusFound, redirect)
}
