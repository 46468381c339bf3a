package handlers

import (
	"net/http"

	root "campus_match"

	"github.com/gin-gonic/gin"
)

const statusOK = "ok"

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  campus_match.StatusResponse
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, root.StatusResponse{Status: statusOK})
}

// @Summary      Landing page
// @Tags         system
// @Produce      json,html
// @Success      200  {object}  campus_match.StatusResponse
// @Router       / [get]
func (h *Handler) landing(c *gin.Context) {
	c.Negotiate(http.StatusOK, gin.Negotiate{
		Offered:  []string{gin.MIMEJSON, gin.MIMEHTML},
		HTMLName: "landing.html",
		HTMLData: gin.H{"Title": "Campus Match"},
		JSONData: root.StatusResponse{Status: statusOK},
	})
}

// @Summary      Dashboard
// @Description  Users of the same college ranked by shared interests.
// @Tags         matching
// @Produce      json,html
// @Success      200  {object}  models.MatchResult
// @Success      302  "redirect to /login when not signed in"
// @Failure      500  {object}  campus_match.ErrorResponse
// @Router       /dashboard [get]
// @Security     BearerAuth
func (h *Handler) dashboard(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	res, err := h.services.Dashboard(c.Request.Context(), user)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, root.CodeInternal, errInternal, "dashboard_failed", err, "user_id", user.ID)
		return
	}

	c.Negotiate(http.StatusOK, gin.Negotiate{
		Offered:  []string{gin.MIMEJSON, gin.MIMEHTML},
		HTMLName: "dashboard.html",
		HTMLData: gin.H{"Title": "Dashboard", "User": user, "Result": res, "PicBase": h.picBase()},
		JSONData: res,
	})
}

// picBase is the URL prefix for locally stored profile pictures.
func (h *Handler) picBase() string {
	if h.cfg.UploadsDir == "" {
		return ""
	}
	return "/static/uploads/"
}
