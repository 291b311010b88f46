package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/maxaizer/job-platform/internal/authz"
	"github.com/maxaizer/job-platform/internal/entities"
	"github.com/maxaizer/job-platform/internal/metrics"
	"github.com/maxaizer/job-platform/pkg/apperrors"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

const (
	identityKey = "identity"
	userKey     = "user"
)

// authenticate resolves the bearer token to a live user row. A valid
// signature alone is not enough: the user must still exist and the token's
// email must match the stored one.
func (s *Server) authenticate(c *fiber.Ctx) error {

	header := c.Get(fiber.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return respondError(c, apperrors.Unauthenticated("missing bearer token"))
	}

	claims, err := s.tokens.Validate(strings.TrimPrefix(header, prefix))
	if err != nil {
		return respondError(c, apperrors.Unauthenticated("invalid token"))
	}

	user, err := s.authUsers.GetByID(c.Context(), claims.UserID)
	if err != nil {
		return respondError(c, apperrors.Internal(err))
	}
	if user == nil || user.Email != claims.Email {
		return respondError(c, apperrors.Unauthenticated("invalid token"))
	}

	c.Locals(identityKey, authz.Identity{UserID: user.ID, Role: user.Role})
	c.Locals(userKey, user)
	return c.Next()
}

func identity(c *fiber.Ctx) authz.Identity {
	id, _ := c.Locals(identityKey).(authz.Identity)
	return id
}

func currentUser(c *fiber.Ctx) *entities.User {
	user, _ := c.Locals(userKey).(*entities.User)
	return user
}

// loginLimiter keeps a token bucket per client IP. Buckets expire after a
// period of inactivity so the map does not grow without bound.
type loginLimiter struct {
	limiters *gocache.Cache
	rate     rate.Limit
	burst    int
}

func newLoginLimiter(perMinute int) *loginLimiter {
	if perMinute < 1 {
		perMinute = 1
	}
	return &loginLimiter{
		limiters: gocache.New(10*time.Minute, 20*time.Minute),
		rate:     rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
	}
}

func (l *loginLimiter) allow(ip string) bool {
	if cached, found := l.limiters.Get(ip); found {
		return cached.(*rate.Limiter).Allow()
	}

	limiter := rate.NewLimiter(l.rate, l.burst)
	if err := l.limiters.Add(ip, limiter, gocache.DefaultExpiration); err != nil {
		// lost the race to another request from the same IP
		if cached, found := l.limiters.Get(ip); found {
			return cached.(*rate.Limiter).Allow()
		}
	}
	return limiter.Allow()
}

func (s *Server) limitLogins(c *fiber.Ctx) error {
	if !s.logins.allow(c.IP()) {
		return c.Status(fiber.StatusTooManyRequests).
			JSON(fiber.Map{"error": "too many login attempts, try again later"})
	}
	return c.Next()
}

func recordMetrics(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	route := c.Route().Path
	metrics.RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	metrics.RequestsCounter.WithLabelValues(route, strconv.Itoa(c.Response().StatusCode())).Inc()
	return err
}
