package handlers

import (
	"errors"
	"net/http"

	root "campus_match"
	"campus_match/internal/service"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// @Summary      Login form
// @Tags         auth
// @Produce      html
// @Success      200
// @Router       /login [get]
func (h *Handler) loginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"Title": "Log in"})
}

// @Summary      Log in
// @Description  Checks credentials, sets the HttpOnly session cookie and returns the token. HTML clients are redirected to /dashboard.
// @Tags         auth
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        input  body      loginRequest  true  "credentials"
// @Success      200    {object}  campus_match.TokenResponse
// @Success      303    "redirect to /dashboard"
// @Failure      400    {object}  campus_match.ErrorResponse
// @Failure      401    {object}  campus_match.ErrorResponse
// @Failure      429    {object}  campus_match.ErrorResponse
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	if err := c.ShouldBind(&input); err != nil {
		if h.log != nil {
			h.log.Infow("login_bad_request_body", "err", err)
		}
		h.respondLoginError(c, http.StatusBadRequest, bindError(err))
		return
	}

	token, err := h.services.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		status, body := statusForError(err)
		if status == http.StatusInternalServerError && h.log != nil {
			h.log.Errorw("login_failed", "err", err)
		} else if h.log != nil {
			h.log.Infow("login_rejected", "ip", c.ClientIP())
		}
		h.respondLoginError(c, status, body)
		return
	}

	h.setSessionCookie(c, token)
	if wantsHTML(c) {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	c.JSON(http.StatusOK, root.TokenResponse{Token: token})
}

func (h *Handler) respondLoginError(c *gin.Context, status int, body root.ErrorResponse) {
	if wantsHTML(c) {
		c.HTML(status, "login.html", gin.H{"Title": "Log in", "Error": body.Error, "Email": c.PostForm("email")})
		return
	}
	c.JSON(status, body)
}

// @Summary      Log out
// @Description  Revokes the session token, clears the cookie and redirects to /.
// @Tags         auth
// @Success      302  "redirect to /"
// @Router       /logout [get]
// @Security     BearerAuth
func (h *Handler) logout(c *gin.Context) {
	token := c.GetString(ctxToken)
	if err := h.services.Logout(c.Request.Context(), token); err != nil && !errors.Is(err, service.ErrUnauthenticated) {
		if h.log != nil {
			h.log.Errorw("logout_failed", "err", err)
		}
	}
	h.clearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}
