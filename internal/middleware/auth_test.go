package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/Michelle21160775/yt-geo-project/pkg/jwt"
)

func authApp(manager *jwt.Manager, required bool) *fiber.App {
	app := fiber.New()
	mw := OptionalAuth(manager)
	if required {
		mw = RequireAuth(manager)
	}
	app.Get("/whoami", func(c fiber.Ctx) error {
		uid, ok := UserID(c)
		if !ok {
			return c.JSON(fiber.Map{"anonymous": true})
		}
		email, _ := UserEmail(c)
		return c.JSON(fiber.Map{"id": uid, "email": email})
	}, mw)
	return app
}

func TestRequireAuth_ValidToken(t *testing.T) {
	manager := jwt.NewManager("s")
	token, err := manager.Generate(7, "a@b.co")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	app := authApp(manager, true)
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	app := authApp(jwt.NewManager("s"), true)
	resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	manager := jwt.NewManager("s")
	token, _ := manager.Generate(7, "a@b.co")

	tests := []struct {
		name   string
		header string
	}{
		{"no scheme", token},
		{"wrong scheme", "Basic " + token},
		{"garbage token", "Bearer nope"},
	}
	app := authApp(manager, true)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/whoami", nil)
			req.Header.Set("Authorization", tt.header)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != fiber.StatusUnauthorized {
				t.Errorf("status = %d, want 401", resp.StatusCode)
			}
		})
	}
}

func TestRequireAuth_WrongSecret(t *testing.T) {
	token, _ := jwt.NewManager("other").Generate(7, "a@b.co")

	app := authApp(jwt.NewManager("s"), true)
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestOptionalAuth_AnonymousPassesThrough(t *testing.T) {
	app := authApp(jwt.NewManager("s"), false)
	resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestOptionalAuth_InvalidTokenStillPasses(t *testing.T) {
	app := authApp(jwt.NewManager("s"), false)
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer broken")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
