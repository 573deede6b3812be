package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"desaku_backend/internals/configs"
	"desaku_backend/internals/constants"
	"desaku_backend/internals/features/users/auth/service"
	"desaku_backend/internals/features/users/user/model"
	"desaku_backend/internals/features/users/user/store"
)

func newTestApp(t *testing.T) (*fiber.App, *store.InMemory) {
	t.Helper()
	configs.JWTSecret = "test-secret"

	users := store.NewInMemory()
	ctl := NewAuthController(users)

	app := fiber.New()
	app.Post("/api/register", ctl.Register)
	app.Post("/api/login", ctl.Login)
	return app, users
}

func seedUser(t *testing.T, users *store.InMemory, username, password, role string) {
	t.Helper()
	hashed, err := service.HashPassword(password)
	require.NoError(t, err)
	require.NoError(t, users.Create(t.Context(), &model.UserModel{
		Username: username,
		Password: hashed,
		FullName: "Warga " + username,
		Email:    username + "@mail.com",
		Role:     role,
	}))
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestLogin(t *testing.T) {
	app, users := newTestApp(t)
	seedUser(t, users, "budi", "rahasia-budi", constants.RoleUser)
	seedUser(t, users, "admin", "rahasia-admin", constants.RoleAdmin)

	t.Run("sukses tanpa role", func(t *testing.T) {
		resp := postJSON(t, app, "/api/login", fiber.Map{
			"username": "budi",
			"password": "rahasia-budi",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		data := body["data"].(map[string]any)
		require.NotEmpty(t, data["access_token"])

		user := data["user"].(map[string]any)
		require.Equal(t, "budi", user["username"])
		_, leaked := user["password"]
		require.False(t, leaked, "password tidak boleh ikut di response")
	})

	t.Run("password salah", func(t *testing.T) {
		resp := postJSON(t, app, "/api/login", fiber.Map{
			"username": "budi",
			"password": "salah",
		})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Equal(t, "Username atau password salah", decodeBody(t, resp)["message"])
	})

	t.Run("user biasa login di tab admin", func(t *testing.T) {
		resp := postJSON(t, app, "/api/login", fiber.Map{
			"username": "budi",
			"password": "rahasia-budi",
			"role":     "admin",
		})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Equal(t, "Akun ini bukan akun administrator", decodeBody(t, resp)["message"])
	})

	t.Run("admin login di tab user", func(t *testing.T) {
		resp := postJSON(t, app, "/api/login", fiber.Map{
			"username": "admin",
			"password": "rahasia-admin",
			"role":     "user",
		})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Equal(t, "Silakan login sebagai admin", decodeBody(t, resp)["message"])
	})
}

func TestRegister(t *testing.T) {
	app, _ := newTestApp(t)

	payload := fiber.Map{
		"username":  "citra",
		"password":  "citra-rahasia",
		"full_name": "Citra Lestari",
		"email":     "citra@mail.com",
	}

	t.Run("sukses, role dipaksa user", func(t *testing.T) {
		resp := postJSON(t, app, "/api/register", payload)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		data := decodeBody(t, resp)["data"].(map[string]any)
		user := data["user"].(map[string]any)
		require.Equal(t, "user", user["role"])
		require.NotEmpty(t, data["access_token"])
	})

	t.Run("username kembar ditolak", func(t *testing.T) {
		resp := postJSON(t, app, "/api/register", payload)
		require.Equal(t, http.StatusConflict, resp.StatusCode)
		require.Equal(t, "Username sudah digunakan", decodeBody(t, resp)["message"])
	})

	t.Run("password pendek ditolak", func(t *testing.T) {
		resp := postJSON(t, app, "/api/register", fiber.Map{
			"username":  "dedi",
			"password":  "pendek",
			"full_name": "Dedi Saputra",
			"email":     "dedi@mail.com",
		})
		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})
}
