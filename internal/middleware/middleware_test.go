package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"HomeStock-Backend/domain"
	"HomeStock-Backend/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessionService struct {
	live    map[string]uuid.UUID
	expired map[string]bool
}

func newFakeSessionService() *fakeSessionService {
	return &fakeSessionService{
		live:    make(map[string]uuid.UUID),
		expired: make(map[string]bool),
	}
}

func (f *fakeSessionService) Create(_ context.Context, userID uuid.UUID) (*entities.Session, error) {
	token := uuid.NewString()
	f.live[token] = userID
	return &entities.Session{Token: token, UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (f *fakeSessionService) Resolve(_ context.Context, token string) (uuid.UUID, error) {
	if f.expired[token] {
		return uuid.Nil, domain.ErrSessionExpired
	}
	if userID, ok := f.live[token]; ok {
		return userID, nil
	}
	return uuid.Nil, domain.ErrSessionNotFound
}

func (f *fakeSessionService) Destroy(_ context.Context, token string) error {
	delete(f.live, token)
	return nil
}

type fakeAlertResetter struct {
	reset []string
}

func (f *fakeAlertResetter) ResetAlerts(sessionToken string) {
	f.reset = append(f.reset, sessionToken)
}

func sessionRequest(target, token string) *http.Request {
	req := httptest.NewRequest(fiber.MethodGet, target, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: domain.SessionCookieName, Value: token})
	}
	return req
}

func gatedApp(svc *fakeSessionService, alerts AlertResetter) *fiber.App {
	m := NewMiddleware(alerts)
	app := fiber.New()
	app.Get("/dashboard", m.AuthPage(svc), func(c *fiber.Ctx) error {
		return c.SendString("dashboard")
	})
	app.Post("/add-item", m.AuthAPI(svc), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})
	app.Get("/items", m.AuthItems(svc), func(c *fiber.Ctx) error {
		return c.JSON([]domain.ItemResponse{{ItemName: "Milk"}})
	})
	return app
}

func TestAuthItemsLiveToken(t *testing.T) {
	svc := newFakeSessionService()
	sess, err := svc.Create(context.Background(), uuid.New())
	require.NoError(t, err)
	app := gatedApp(svc, &fakeAlertResetter{})

	res, err := app.Test(sessionRequest("/items", sess.Token))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Milk")
}

func TestAuthItemsRejectsDestroyedToken(t *testing.T) {
	svc := newFakeSessionService()
	sess, err := svc.Create(context.Background(), uuid.New())
	require.NoError(t, err)
	app := gatedApp(svc, &fakeAlertResetter{})

	require.NoError(t, svc.Destroy(context.Background(), sess.Token))

	res, err := app.Test(sessionRequest("/items", sess.Token))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(body), "a logged-out list request degrades to an empty array")
}

func TestAuthItemsMissingCookie(t *testing.T) {
	app := gatedApp(newFakeSessionService(), &fakeAlertResetter{})

	res, err := app.Test(sessionRequest("/items", ""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(body))
}

func TestAuthAPIUnauthenticated(t *testing.T) {
	app := gatedApp(newFakeSessionService(), &fakeAlertResetter{})

	res, err := app.Test(sessionRequest("/items", "stale"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)

	req := httptest.NewRequest(fiber.MethodPost, "/add-item", nil)
	res, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success": false}`, string(body))
}

func TestAuthPageRedirectsToLogin(t *testing.T) {
	app := gatedApp(newFakeSessionService(), &fakeAlertResetter{})

	res, err := app.Test(sessionRequest("/dashboard", ""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, res.StatusCode)
	assert.Equal(t, "/login", res.Header.Get("Location"))
}

func TestDeadTokenShedsAlertState(t *testing.T) {
	svc := newFakeSessionService()
	svc.expired["stale"] = true
	alerts := &fakeAlertResetter{}
	app := gatedApp(svc, alerts)

	res, err := app.Test(sessionRequest("/items", "stale"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, alerts.reset, "stale", "an expired token releases its notifier")

	res, err = app.Test(sessionRequest("/items", "never-issued"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, alerts.reset, "never-issued")
}
