package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/ton-entreprise/fiscalia-api/internal/interfaces/http"
	pkgjwt "github.com/ton-entreprise/fiscalia-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret   = "test-secret-key-for-unit-tests"
	testUserID      = "00000000-0000-0000-0000-000000000001"
	testWorkspaceID = "00000000-0000-0000-0000-000000000002"
	testIssuer      = "fiscalia-test"
	testExpMin      = 60
)

// buildTestApp construit une application Fiber minimale avec :
//   - AuthMiddleware pour parser le JWT et charger les locals
//   - RequireRole pour autoriser l'accès
//   - Un handler factice qui renvoie 200 si les middlewares passent
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New(fiber.Config{
		// Silencer les erreurs internes dans les tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	// Route protégée : JWT + RBAC
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole génère un JWT avec le rôle indiqué.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testWorkspaceID, role, testIssuer, testExpMin)
	require.NoError(t, err, "un token JWT valide doit être généré")
	return "Bearer " + tok
}

// doRequest lance une requête GET /protected et renvoie la réponse.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Cas 1 : l'utilisateur a le rôle requis → doit passer (HTTP 200).
func TestRequireRole_AdminAccedeRouteAdmin(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin doit pouvoir accéder à une route restreinte à admin")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "la réponse doit inclure ok:true")
	assert.Equal(t, "admin", body["role"], "le role doit être admin")
}

// Cas 1b : l'utilisateur a un des rôles permis (multi-rôles) → HTTP 200.
func TestRequireRole_ComptableAccedeRouteAdminOuComptable(t *testing.T) {
	app := buildTestApp("admin", "comptable")
	resp := doRequest(t, app, tokenForRole(t, "comptable"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"comptable doit pouvoir accéder à une route permettant admin ou comptable")
}

// Cas 2 : l'utilisateur a un rôle différent du rôle requis → HTTP 403 Forbidden.
func TestRequireRole_GestionnaireBloqueSurRouteAdmin(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenForRole(t, "gestionnaire"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"gestionnaire ne doit pas accéder à une route restreinte à admin")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la réponse d'erreur doit inclure le code FORBIDDEN")
}

// Cas 3 : token sans claim de rôle → HTTP 401.
func TestRequireRole_TokenSansRole_Renvoie401(t *testing.T) {
	app := buildTestApp("admin")
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testWorkspaceID, "", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"un token sans rôle doit renvoyer 401")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE",
		"la réponse doit indiquer le code MISSING_ROLE")
}

// Cas 4 : sans header Authorization → HTTP 401 MISSING_TOKEN.
func TestRequireRole_SansAuthHeader_Renvoie401(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "") // sans header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Cas 5 : token invalide / malformé → HTTP 401 INVALID_TOKEN.
func TestRequireRole_TokenInvalide_Renvoie401(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "Bearer token.invalide.ici")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extraction des claims du token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraitClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":      apphttp.GetUserID(c),
			"workspace_id": apphttp.GetWorkspaceID(c),
			"role":         apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testWorkspaceID, body["workspace_id"])
	assert.Equal(t, "admin", body["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests du pkg JWT — intégrité du generate/parse avec rôle
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse_AvecRole(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testWorkspaceID, "comptable", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, workspaceID, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testWorkspaceID, workspaceID)
	assert.Equal(t, "comptable", role)
}

func TestJWT_TokenExpire_RenvoieErreur(t *testing.T) {
	// Token avec expiration -1 minute (déjà expiré)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testWorkspaceID, "admin", testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "un token expiré doit renvoyer une erreur")
}

func TestJWT_MauvaisSecret_RenvoieErreur(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testWorkspaceID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("un-autre-secret-totalement-different", tok)
	assert.Error(t, err, "un mauvais secret doit invalider le token")
}
