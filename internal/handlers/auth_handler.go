package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/AriSilva94/mvabrigosbrasil-sub001/internal/middleware"
	"github.com/AriSilva94/mvabrigosbrasil-sub001/internal/model"
	"github.com/AriSilva94/mvabrigosbrasil-sub001/internal/service"
	"github.com/AriSilva94/mvabrigosbrasil-sub001/internal/webutil"
)

type AuthHandler struct {
	loginService   service.LoginService
	profileService service.ProfileService
}

func NewAuthHandler(loginService service.LoginService, profileService service.ProfileService) *AuthHandler {
	return &AuthHandler{
		loginService:   loginService,
		profileService: profileService,
	}
}

// Login authenticates against the native store and, transparently, against
// the legacy credential table.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.LoginRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode login request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "Corpo da requisição inválido.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for login", "errors", validationErrors.Error())
			appErr := webutil.NewValidationErrorResponse(validationErrors)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation for login", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	result, err := h.loginService.Login(r.Context(), &req)
	if err != nil {
		// The service already logged the failure with full context.
		webutil.HandleError(w, logger, err)
		return
	}

	response := model.LoginResponse{
		OK:           true,
		Migrated:     result.Migrated,
		AccessToken:  result.Session.AccessToken,
		RefreshToken: result.Session.RefreshToken,
	}
	if result.PostType != "" {
		postType := result.PostType
		response.PostType = &postType
	}

	webutil.RespondWithJSON(w, http.StatusOK, response, logger)
}

// GetMe returns the authenticated user's own profile.
func (h *AuthHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	accountID, err := middleware.GetAccountIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	response, err := h.profileService.GetMe(r.Context(), accountID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, response, logger)
}
