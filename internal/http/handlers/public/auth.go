package public

import (
	"net/http"

	"github.com/jusas-smoothie/api/internal/http/handlers/shared"
	"github.com/jusas-smoothie/api/internal/http/response"
	"github.com/jusas-smoothie/api/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthView is the account shape returned to clients.
type AuthView struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func authView(user *models.User) AuthView {
	return AuthView{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}
}

func (h *Handler) setAuthCookie(c *gin.Context, token string) {
	maxAge := h.Config.JWT.ExpireHours * 3600
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.Config.JWT.CookieName, token, maxAge, "/", "", false, true)
}

// Register creates an account. No session is issued; the client is
// expected to log in next.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	user, err := h.AuthService.Register(req.Email, req.Password, req.Name)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}

	response.Created(c, gin.H{
		"message": "Account created successfully. Please log in.",
		"user":    authView(user),
	})
}

// Login authenticates and sets the session cookie.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	user, token, _, err := h.AuthService.Login(req.Email, req.Password)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}

	h.setAuthCookie(c, token)
	response.OK(c, gin.H{
		"user":  authView(user),
		"token": token,
	})
}

// Logout clears the session cookie.
func (h *Handler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.Config.JWT.CookieName, "", -1, "/", "", false, true)
	response.OK(c, gin.H{"message": "logged out"})
}

// Me returns the authenticated account.
func (h *Handler) Me(c *gin.Context) {
	uid, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	user, err := h.AuthService.GetUser(uid)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.OK(c, gin.H{"user": authView(user)})
}
