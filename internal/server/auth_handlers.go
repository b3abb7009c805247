package server

import (
	"fmt"
	"time"

	"gotolinks/internal/models"
	"gotolinks/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenIssuer   = "gotolinks-api"
	tokenAudience = "gotolinks-client"
)

// Signup handles POST /api/auth/signup
// @Summary Creator signup
// @Description Register a new creator account with its public handle and an empty starter profile
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{email=string,first_name=string,last_name=string,handle=string} true "Signup request"
// @Success 201 {object} object{token=string,user=models.User,profile=models.Profile}
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /auth/signup [post]
func (s *Server) Signup(c *fiber.Ctx) error {
	var req struct {
		Email     string `json:"email"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Handle    string `json:"handle"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Email == "" || req.Handle == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Email and handle are required"))
	}

	if err := validation.ValidateEmail(req.Email); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	if err := validation.ValidateHandle(req.Handle); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	// Check if user already exists
	existing, err := s.userRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if existing != nil {
		return models.RespondWithError(c, fiber.StatusConflict,
			models.NewConflictError("An account with this email already exists"))
	}

	taken, err := s.userRepo.GetByHandle(c.Context(), req.Handle)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if taken != nil {
		return models.RespondWithError(c, fiber.StatusConflict,
			models.NewConflictError("This handle is already taken"))
	}

	user := &models.User{
		ID:        uuid.New().String(),
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Handle:    req.Handle,
		Plan:      models.PlanFree,
	}
	if createErr := s.userRepo.Create(c.Context(), user); createErr != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, createErr)
	}

	// Every account starts with an empty profile on the default theme
	profile := &models.Profile{
		ID:     uuid.New().String(),
		UserID: user.ID,
		Name:   user.FullName(),
		Theme:  models.DefaultTheme,
	}
	if createErr := s.profileRepo.Create(c.Context(), profile); createErr != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, createErr)
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token":   token,
		"user":    user,
		"profile": profile,
	})
}

// Login handles POST /api/auth/login
// @Summary Creator login
// @Description Authenticate by email and return a JWT token. Demo deployment; no password check.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{email=string} true "Login request"
// @Success 200 {object} object{token=string,user=models.User}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if user == nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("No account for this email"))
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Logout handles POST /api/auth/logout
// @Summary Creator logout
// @Description Revoke the presented token by blacklisting its JTI until expiry
// @Tags auth
// @Produce json
// @Success 200 {object} object{message=string}
// @Router /auth/logout [post]
func (s *Server) Logout(c *fiber.Ctx) error {
	tokenString := bearerToken(c)
	if tokenString == "" || s.redis == nil {
		return c.JSON(fiber.Map{"message": "Logged out"})
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return c.JSON(fiber.Map{"message": "Logged out"})
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		jti, _ := claims["jti"].(string)
		exp, _ := claims["exp"].(float64)
		if jti != "" {
			ttl := time.Until(time.Unix(int64(exp), 0))
			if ttl > 0 {
				s.redis.Set(c.Context(), "blacklist:"+jti, "1", ttl)
			}
		}
	}

	return c.JSON(fiber.Map{"message": "Logged out"})
}

// GetMe handles GET /api/users/me
// @Summary Get the authenticated account
// @Description Return the account behind the presented token, including its plan
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 404 {object} models.ErrorResponse
// @Router /users/me [get]
func (s *Server) GetMe(c *fiber.Ctx) error {
	userID := currentUserID(c)

	user, err := s.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return respondAppError(c, err)
	}
	if user == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("user", userID))
	}

	return c.JSON(user)
}

// IssueWSTicket handles POST /api/ws/ticket
// @Summary Issue a WebSocket ticket
// @Description Issue a short-lived single-use ticket for authenticating a preview WebSocket
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{ticket=string,expires_in=int}
// @Failure 503 {object} models.ErrorResponse
// @Router /ws/ticket [post]
func (s *Server) IssueWSTicket(c *fiber.Ctx) error {
	if s.redis == nil {
		return models.RespondWithError(c, fiber.StatusServiceUnavailable,
			models.NewInternalError(fmt.Errorf("websocket tickets require redis")))
	}

	userID := c.Locals("userID").(string)
	ticket := uuid.New().String()

	const ticketTTL = 30 * time.Second
	if err := s.redis.Set(c.Context(), "ws_ticket:"+ticket, userID, ticketTTL).Err(); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"ticket":     ticket,
		"expires_in": int(ticketTTL.Seconds()),
	})
}

// generateToken creates a JWT token for the given user ID
func (s *Server) generateToken(userID string) (string, error) {
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,                             // Subject (user ID)
		"iss": tokenIssuer,                        // Issuer
		"aud": tokenAudience,                      // Audience
		"exp": now.Add(time.Hour * 24 * 7).Unix(), // Expiration (7 days)
		"iat": now.Unix(),                         // Issued at
		"nbf": now.Unix(),                         // Not before
		"jti": s.generateJTI(),                    // JWT ID (unique identifier)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// generateJTI creates a unique JWT ID to prevent replay attacks
func (s *Server) generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}
