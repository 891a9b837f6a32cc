package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

type AuthMiddlewareTestSuite struct {
	suite.Suite
	handler http.Handler
	seen    *uuid.UUID
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	s.seen = new(uuid.UUID)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := UserIDFromContext(r.Context()); ok {
			*s.seen = id
		}
		w.WriteHeader(http.StatusOK)
	})
	s.handler = Auth(testSecret, zap.NewNop())(next)
}

func (s *AuthMiddlewareTestSuite) signToken(secret string, subject string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(secret))
	s.Require().NoError(err)
	return signed
}

func (s *AuthMiddlewareTestSuite) do(authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/shopping-list/generate", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	recorder := httptest.NewRecorder()
	s.handler.ServeHTTP(recorder, req)
	return recorder
}

func (s *AuthMiddlewareTestSuite) TestAuth_ShouldExtractUserIDFromValidToken() {
	// Arrange
	userID := uuid.New()
	token := s.signToken(testSecret, userID.String())

	// Act
	recorder := s.do("Bearer " + token)

	// Assert
	s.Equal(http.StatusOK, recorder.Code)
	s.Equal(userID, *s.seen)
}

func (s *AuthMiddlewareTestSuite) TestAuth_ShouldRejectMissingToken() {
	recorder := s.do("")
	s.Equal(http.StatusUnauthorized, recorder.Code)
}

func (s *AuthMiddlewareTestSuite) TestAuth_ShouldRejectWrongSignature() {
	token := s.signToken("other-secret", uuid.New().String())
	recorder := s.do("Bearer " + token)
	s.Equal(http.StatusUnauthorized, recorder.Code)
}

func (s *AuthMiddlewareTestSuite) TestAuth_ShouldRejectNonUUIDSubject() {
	token := s.signToken(testSecret, "not-a-uuid")
	recorder := s.do("Bearer " + token)
	s.Equal(http.StatusUnauthorized, recorder.Code)
}

func TestAuthMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func TestRateLimit_ShouldRejectWhenBurstExhausted(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RateLimit(1, 2)(next)

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
		statuses = append(statuses, recorder.Code)
	}

	if statuses[0] != http.StatusOK || statuses[1] != http.StatusOK {
		t.Fatalf("expected first two requests to pass, got %v", statuses)
	}
	if statuses[2] != http.StatusTooManyRequests {
		t.Fatalf("expected third request to be limited, got %v", statuses)
	}
}
