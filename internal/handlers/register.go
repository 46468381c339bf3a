package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	root "campus_match"
	"campus_match/internal/models"
	"campus_match/internal/service"

	"github.com/gin-gonic/gin"
)

const profilePicField = "profile_pic"

// @Summary      Registration form
// @Description  HTML form, or the interest catalog as JSON.
// @Tags         auth
// @Produce      json,html
// @Success      200  {object}  campus_match.InterestsResponse
// @Failure      500  {object}  campus_match.ErrorResponse
// @Router       /register [get]
func (h *Handler) registerForm(c *gin.Context) {
	interests, err := h.services.Catalog.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, root.CodeInternal, errInternal, "interests_list_failed", err)
		return
	}
	c.Negotiate(http.StatusOK, gin.Negotiate{
		Offered:  []string{gin.MIMEJSON, gin.MIMEHTML},
		HTMLName: "register.html",
		HTMLData: registerPage(interests, service.RegistrationInput{}, ""),
		JSONData: root.InterestsResponse{Interests: interests},
	})
}

// @Summary      Register
// @Description  Creates an account. Accepts JSON, urlencoded or multipart (with an optional profile_pic file). HTML clients are redirected to /login.
// @Tags         auth
// @Accept       json,x-www-form-urlencoded,mpfd
// @Produce      json
// @Param        input        body      service.RegistrationInput  true   "account"
// @Param        profile_pic  formData  file                       false  "profile picture"
// @Success      201  {object}  campus_match.IDResponse
// @Success      303  "redirect to /login"
// @Failure      400  {object}  campus_match.ErrorResponse
// @Failure      409  {object}  campus_match.ErrorResponse
// @Failure      500  {object}  campus_match.ErrorResponse
// @Router       /register [post]
func (h *Handler) register(c *gin.Context) {
	ctx := c.Request.Context()

	var input service.RegistrationInput
	if err := c.ShouldBind(&input); err != nil {
		if h.log != nil {
			h.log.Infow("register_bad_request_body", "err", err)
		}
		h.respondRegisterError(c, http.StatusBadRequest, bindError(err), input)
		return
	}

	upload, closeUpload, err := profilePicture(c)
	if err != nil {
		h.respondRegisterError(c, http.StatusBadRequest, bindError(err), input)
		return
	}
	defer closeUpload()

	user, err := h.services.Register(ctx, input, upload)
	if err != nil {
		status, body := statusForError(err)
		if status == http.StatusInternalServerError && h.log != nil {
			h.log.Errorw("register_failed", "err", err)
		}
		h.respondRegisterError(c, status, body, input)
		return
	}

	if h.log != nil {
		h.log.Infow("user_registered", "user_id", user.ID, "college", user.College)
	}
	if wantsHTML(c) {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}
	c.JSON(http.StatusCreated, root.IDResponse{ID: user.ID})
}

// profilePicture opens the optional uploaded file. The returned func closes it.
func profilePicture(c *gin.Context) (*service.Upload, func(), error) {
	noop := func() {}
	fh, err := c.FormFile(profilePicField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, noop, nil
		}
		return nil, noop, err
	}
	if fh.Filename == "" || fh.Size == 0 {
		return nil, noop, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, noop, err
	}
	return &service.Upload{Filename: fh.Filename, Size: fh.Size, Content: f}, func() { closeQuietly(f) }, nil
}

func closeQuietly(f multipart.File) { _ = f.Close() }

func (h *Handler) respondRegisterError(c *gin.Context, status int, body root.ErrorResponse, input service.RegistrationInput) {
	if !wantsHTML(c) {
		c.JSON(status, body)
		return
	}
	interests, err := h.services.Catalog.List(c.Request.Context())
	if err != nil && h.log != nil {
		h.log.Errorw("interests_list_failed", "err", err)
	}
	c.HTML(status, "register.html", registerPage(interests, input, body.Error))
}

type interestOption struct {
	models.Interest
	Checked bool
}

func registerPage(interests []models.Interest, input service.RegistrationInput, errMsg string) gin.H {
	chosen := make(map[int]bool, len(input.InterestIDs))
	for _, id := range input.InterestIDs {
		chosen[id] = true
	}
	opts := make([]interestOption, 0, len(interests))
	for _, i := range interests {
		opts = append(opts, interestOption{Interest: i, Checked: chosen[i.ID]})
	}
	input.Password = ""
	return gin.H{"Title": "Register", "Interests": opts, "Form": input, "Error": errMsg}
}
