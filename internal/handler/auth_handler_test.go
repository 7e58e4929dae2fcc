package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "travely/internal/errors"
	"travely/internal/models"
	"travely/internal/service/mocks"
)

func newTestAuthHandler(auth *mocks.MockAuthService, users *mocks.MockUserService) *AuthHandler {
	return NewAuthHandler(AuthHandlerConfig{
		Service:     auth,
		Users:       users,
		FrontendURL: "https://app.example.com",
		TokenTTL:    time.Hour,
	})
}

func TestAuthHandler_Register(t *testing.T) {
	registerBody := models.RegisterRequest{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "secret123",
		Mobile:   "0771234567",
		Country:  "Sri Lanka",
		Type:     "traveler",
	}

	t.Run("successful registration", func(t *testing.T) {
		mockAuth := &mocks.MockAuthService{
			RegisterFunc: func(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
				return &models.AuthResponse{
					Token: "jwt-token",
					User:  models.User{ID: primitive.NewObjectID(), Email: req.Email},
				}, nil
			},
		}
		handler := newTestAuthHandler(mockAuth, &mocks.MockUserService{})

		router := gin.New()
		router.POST("/auth/register", handler.Register)

		req := httptest.NewRequest(http.MethodPost, "/auth/register", jsonBody(t, registerBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		resp := assertSuccessEnvelope(t, w)
		data := resp["data"].(map[string]interface{})
		assert.Equal(t, "jwt-token", data["token"])
	})

	t.Run("duplicate email is a 409", func(t *testing.T) {
		mockAuth := &mocks.MockAuthService{
			RegisterFunc: func(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
				return nil, apperrors.ErrUserAlreadyExists
			},
		}
		handler := newTestAuthHandler(mockAuth, &mocks.MockUserService{})

		router := gin.New()
		router.POST("/auth/register", handler.Register)

		req := httptest.NewRequest(http.MethodPost, "/auth/register", jsonBody(t, registerBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("reports every failing field at once", func(t *testing.T) {
		handler := newTestAuthHandler(&mocks.MockAuthService{}, &mocks.MockUserService{})

		router := gin.New()
		router.POST("/auth/register", handler.Register)

		bad := registerBody
		bad.Email = "not-an-email"
		bad.Mobile = "123"
		bad.Type = "pilot"
		req := httptest.NewRequest(http.MethodPost, "/auth/register", jsonBody(t, bad))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		names := fieldNames(t, decodeResponse(t, w))
		assert.Contains(t, names, "email")
		assert.Contains(t, names, "mobile")
		assert.Contains(t, names, "type")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	loginBody := models.LoginRequest{Email: "john@example.com", Password: "secret123"}

	t.Run("successful login sets a session cookie", func(t *testing.T) {
		mockAuth := &mocks.MockAuthService{
			LoginFunc: func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
				return &models.AuthResponse{Token: "jwt-token"}, nil
			},
		}
		handler := newTestAuthHandler(mockAuth, &mocks.MockUserService{})

		router := gin.New()
		router.POST("/auth/login", handler.Login)

		req := httptest.NewRequest(http.MethodPost, "/auth/login", jsonBody(t, loginBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assertSuccessEnvelope(t, w)
		cookies := w.Result().Cookies()
		require.NotEmpty(t, cookies)
		assert.Equal(t, "token", cookies[0].Name)
		assert.Equal(t, "jwt-token", cookies[0].Value)
	})

	t.Run("invalid credentials are a uniform 401", func(t *testing.T) {
		mockAuth := &mocks.MockAuthService{
			LoginFunc: func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
				return nil, apperrors.ErrInvalidCredentials
			},
		}
		handler := newTestAuthHandler(mockAuth, &mocks.MockUserService{})

		router := gin.New()
		router.POST("/auth/login", handler.Login)

		req := httptest.NewRequest(http.MethodPost, "/auth/login", jsonBody(t, loginBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_ForgotPassword(t *testing.T) {
	newRouter := func(mockAuth *mocks.MockAuthService) *gin.Engine {
		handler := newTestAuthHandler(mockAuth, &mocks.MockUserService{})
		router := gin.New()
		router.POST("/auth/forgot-password", handler.ForgotPassword)
		return router
	}
	send := func(router *gin.Engine, email string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/auth/forgot-password",
			jsonBody(t, models.ForgotPasswordRequest{Email: email}))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("registered and unknown emails respond identically", func(t *testing.T) {
		known := send(newRouter(&mocks.MockAuthService{
			ForgotPasswordFunc: func(ctx context.Context, email string) (string, error) {
				return "rt_token", nil
			},
		}), "john@example.com")

		unknown := send(newRouter(&mocks.MockAuthService{
			ForgotPasswordFunc: func(ctx context.Context, email string) (string, error) {
				return "", apperrors.ErrUserNotFound
			},
		}), "nobody@example.com")

		assert.Equal(t, http.StatusOK, known.Code)
		assert.Equal(t, http.StatusOK, unknown.Code)
		assert.Equal(t, known.Body.String(), unknown.Body.String())
		assert.NotContains(t, known.Body.String(), "rt_token", "token is never returned to the caller")
	})
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	body := models.ResetPasswordRequest{Token: "rt_token", Password: "newpass123"}

	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"successful reset", nil, http.StatusOK},
		{"invalid token", apperrors.ErrInvalidResetToken, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAuth := &mocks.MockAuthService{
				ResetPasswordFunc: func(ctx context.Context, req *models.ResetPasswordRequest) error {
					return tt.err
				},
			}
			handler := newTestAuthHandler(mockAuth, &mocks.MockUserService{})

			router := gin.New()
			router.POST("/auth/reset-password", handler.ResetPassword)

			req := httptest.NewRequest(http.MethodPost, "/auth/reset-password", jsonBody(t, body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAuthHandler_CheckEmail(t *testing.T) {
	mockAuth := &mocks.MockAuthService{
		CheckEmailFunc: func(ctx context.Context, email string) (bool, error) {
			return email == "john@example.com", nil
		},
	}
	handler := newTestAuthHandler(mockAuth, &mocks.MockUserService{})

	router := gin.New()
	router.GET("/auth/check-email", handler.CheckEmail)

	t.Run("registered email", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/check-email?email=john@example.com", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		resp := assertSuccessEnvelope(t, w)
		assert.Equal(t, true, resp["data"].(map[string]interface{})["exists"])
	})

	t.Run("missing query parameter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/check-email", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Google(t *testing.T) {
	t.Run("login redirects to provider with state cookie", func(t *testing.T) {
		mockAuth := &mocks.MockAuthService{
			GoogleLoginURLFunc: func(state string) string {
				return "https://accounts.example.com/auth?state=" + state
			},
		}
		handler := newTestAuthHandler(mockAuth, &mocks.MockUserService{})

		router := gin.New()
		router.GET("/auth/google", handler.GoogleLogin)

		req := httptest.NewRequest(http.MethodGet, "/auth/google", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		cookies := w.Result().Cookies()
		require.NotEmpty(t, cookies)
		assert.Equal(t, "oauth_state", cookies[0].Name)
		assert.Contains(t, w.Header().Get("Location"), "state="+cookies[0].Value)
	})

	t.Run("callback with valid state signs the user in", func(t *testing.T) {
		mockAuth := &mocks.MockAuthService{
			GoogleCallbackFunc: func(ctx context.Context, code string) (*models.AuthResponse, error) {
				assert.Equal(t, "auth-code", code)
				return &models.AuthResponse{Token: "jwt-token"}, nil
			},
		}
		handler := newTestAuthHandler(mockAuth, &mocks.MockUserService{})

		router := gin.New()
		router.GET("/auth/google/callback", handler.GoogleCallback)

		req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?state=nonce&code=auth-code", nil)
		req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "nonce"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://app.example.com", w.Header().Get("Location"))

		var tokenCookie *http.Cookie
		for _, c := range w.Result().Cookies() {
			if c.Name == "token" {
				tokenCookie = c
			}
		}
		require.NotNil(t, tokenCookie)
		assert.Equal(t, "jwt-token", tokenCookie.Value)
	})

	t.Run("state mismatch redirects to the failure landing", func(t *testing.T) {
		handler := newTestAuthHandler(&mocks.MockAuthService{}, &mocks.MockUserService{})

		router := gin.New()
		router.GET("/auth/google/callback", handler.GoogleCallback)

		req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?state=tampered&code=auth-code", nil)
		req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "nonce"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/api/auth/login/failed", w.Header().Get("Location"))
	})

	t.Run("exchange failure redirects to the failure landing", func(t *testing.T) {
		mockAuth := &mocks.MockAuthService{
			GoogleCallbackFunc: func(ctx context.Context, code string) (*models.AuthResponse, error) {
				return nil, apperrors.ErrOAuthExchange
			},
		}
		handler := newTestAuthHandler(mockAuth, &mocks.MockUserService{})

		router := gin.New()
		router.GET("/auth/google/callback", handler.GoogleCallback)

		req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?state=nonce&code=auth-code", nil)
		req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "nonce"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/api/auth/login/failed", w.Header().Get("Location"))
	})
}

func TestAuthHandler_LoginLanding(t *testing.T) {
	t.Run("login success returns the current user", func(t *testing.T) {
		userID := primitive.NewObjectID()
		mockUsers := &mocks.MockUserService{
			GetUserFunc: func(ctx context.Context, id string) (*models.User, error) {
				assert.Equal(t, userID.Hex(), id)
				return &models.User{ID: userID, Email: "john@example.com"}, nil
			},
		}
		handler := newTestAuthHandler(&mocks.MockAuthService{}, mockUsers)

		router := gin.New()
		router.GET("/auth/login/success", func(c *gin.Context) {
			c.Set("userID", userID.Hex())
			handler.LoginSuccess(c)
		})

		req := httptest.NewRequest(http.MethodGet, "/auth/login/success", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		resp := assertSuccessEnvelope(t, w)
		assert.Equal(t, "john@example.com", resp["data"].(map[string]interface{})["email"])
	})

	t.Run("login failed is a 401", func(t *testing.T) {
		handler := newTestAuthHandler(&mocks.MockAuthService{}, &mocks.MockUserService{})

		router := gin.New()
		router.GET("/auth/login/failed", handler.LoginFailed)

		req := httptest.NewRequest(http.MethodGet, "/auth/login/failed", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	handler := newTestAuthHandler(&mocks.MockAuthService{}, &mocks.MockUserService{})

	router := gin.New()
	router.POST("/auth/logout", handler.Logout)

	// Idempotent: a second logout behaves the same
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		cookies := w.Result().Cookies()
		require.NotEmpty(t, cookies)
		assert.Equal(t, "token", cookies[0].Name)
		assert.Empty(t, cookies[0].Value)
	}
}
