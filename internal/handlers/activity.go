package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	root "campus_match"
	"campus_match/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errFromInvalid = "invalid 'from' time; use RFC3339 or YYYY-MM-DD"
	errToInvalid   = "invalid 'to' time; use RFC3339 or YYYY-MM-DD"
	errRange       = "'from' must be <= 'to'"

	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

// isDateOnly reports whether the query string represents a date without time component.
func isDateOnly(s string) bool {
	return !strings.ContainsAny(s, "T ")
}

// @Summary      Own account activity
// @Description  Filter by date (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD'). A date-only 'to' covers the whole day.
// @Tags         activity
// @Produce      json
// @Param        from  query   string  false  "Start of range"  example(2025-08-01)
// @Param        to    query   string  false  "End of range. Date-only treated as end of day."  example(2025-08-31)
// @Param        type  query   string  false  "Event type"  Enums(REGISTER,LOGIN,LOGIN_FAILED,LOGOUT)
// @Success      200   {object}  campus_match.ActivityResponse
// @Failure      400   {object}  campus_match.ErrorResponse
// @Failure      500   {object}  campus_match.ErrorResponse
// @Router       /activity [get]
// @Security     BearerAuth
func (h *Handler) activity(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var (
		from time.Time
		to   time.Time
		err  error
	)
	if qs := c.Query("from"); qs != "" {
		from, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, root.ErrorResponse{Error: errFromInvalid, Code: root.CodeValidation})
			return
		}
	}
	if qs := c.Query("to"); qs != "" {
		to, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, root.ErrorResponse{Error: errToInvalid, Code: root.CodeValidation})
			return
		}
		if isDateOnly(qs) {
			to = to.Add(24*time.Hour - time.Nanosecond).UTC()
		}
	}

	events, err := h.services.Activity.List(c.Request.Context(), user.ID, service.ActivityFilter{
		From: from,
		To:   to,
		Type: c.Query("type"),
	})
	if err != nil {
		if service.IsInvalidFilter(err) {
			c.JSON(http.StatusBadRequest, root.ErrorResponse{Error: errRange, Code: root.CodeValidation})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, root.CodeInternal, "failed to load activity", "activity_list_failed", err,
			"user_id", user.ID, "from", from, "to", to)
		return
	}
	c.JSON(http.StatusOK, root.ActivityResponse{Count: len(events), Events: events})
}

func parseQueryTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf(
		"invalid time format %q, expected one of: "+
			"RFC3339 (e.g. 2025-08-27T15:04:05Z), "+
			"'YYYY-MM-DD HH:MM:SS', "+
			"'YYYY-MM-DD'",
		s,
	)
}
