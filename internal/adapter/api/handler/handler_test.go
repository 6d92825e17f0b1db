package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"heritageloom/internal/adapter/api"
	"heritageloom/internal/adapter/api/handler"
	"heritageloom/internal/adapter/api/middleware"
	"heritageloom/internal/adapter/api/router"
	"heritageloom/internal/infrastructure/ratelimit"
	"heritageloom/internal/rest"
	"heritageloom/internal/session"
	"heritageloom/internal/usecase"
	"heritageloom/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// newGateway wires the full echo app against a fake storefront backend, the
// same way cmd/admin does.
func newGateway(t *testing.T, backend http.HandlerFunc, loginAttempts int) (*echo.Echo, *session.Manager) {
	t.Helper()
	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)

	transport := rest.NewTransport(server.URL, time.Second)
	contentUseCase := usecase.NewContentUseCase(transport, validation.New())
	sessions := session.NewManager("test-secret", time.Hour, "admin", "hunter2")
	handler.Setup(contentUseCase, sessions, rest.NewUploader(transport, server.URL+"/upload"))

	e := echo.New()
	e.Validator = api.NewValidator(validation.New())
	router.Setup(e, middleware.NewSessionMiddleware(sessions), ratelimit.NewLimiter(loginAttempts, time.Hour))
	return e, sessions
}

func doJSON(e *echo.Echo, method, path, body, token string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	e, sessions := newGateway(t, func(w http.ResponseWriter, r *http.Request) {}, 5)

	rec, env := doJSON(e, http.MethodPost, "/v1/auth/login", `{"username":"admin","password":"hunter2"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)

	var sess session.Session
	require.NoError(t, json.Unmarshal(env.Data, &sess))
	username, err := sessions.Verify(sess.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	e, _ := newGateway(t, func(w http.ResponseWriter, r *http.Request) {}, 5)

	rec, env := doJSON(e, http.MethodPost, "/v1/auth/login", `{"username":"admin","password":"nope"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
}

func TestLoginIsRateLimited(t *testing.T) {
	e, _ := newGateway(t, func(w http.ResponseWriter, r *http.Request) {}, 2)

	for i := 0; i < 2; i++ {
		rec, _ := doJSON(e, http.MethodPost, "/v1/auth/login", `{"username":"admin","password":"nope"}`, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}
	rec, _ := doJSON(e, http.MethodPost, "/v1/auth/login", `{"username":"admin","password":"hunter2"}`, "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code, "even good credentials wait out the window")
}

func TestProductListIsPublicAndPassesThrough(t *testing.T) {
	e, _ := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "carpet", r.URL.Query().Get("type"))
		w.Write([]byte(`[{"id":"7","title":"Heriz Rug"}]`))
	}, 5)

	rec, env := doJSON(e, http.MethodGet, "/v1/products?type=carpet", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)
	assert.Contains(t, string(env.Data), "Heriz Rug")
}

func TestMutationsRequireSession(t *testing.T) {
	e, _ := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("the backend must never see an unauthenticated mutation")
	}, 5)

	rec, _ := doJSON(e, http.MethodPost, "/v1/products", "{}", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = doJSON(e, http.MethodDelete, "/v1/blogs/3", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateProductForwardsMultipart(t *testing.T) {
	var backendSawFile bool
	e, sessions := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Heriz Rug", r.MultipartForm.Value["title"][0])
		_, backendSawFile = r.MultipartForm.File["images[]"]
		w.Write([]byte(`{"status":"success","data":{"id":12,"title":"Heriz Rug"}}`))
	}, 5)
	sess, err := sessions.Login("admin", "hunter2")
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	form := multipart.NewWriter(buf)
	for key, value := range map[string]string{
		"title":        "Heriz Rug",
		"ref_number":   "R-12",
		"product_type": "Carpet",
	} {
		require.NoError(t, form.WriteField(key, value))
	}
	file, err := form.CreateFormFile("images[]", "front.jpg")
	require.NoError(t, err)
	file.Write([]byte("jpeg bytes"))
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/products", buf)
	req.Header.Set(echo.HeaderContentType, form.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+sess.Token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, backendSawFile, "the uploaded photo is relayed to the backend")
	assert.Contains(t, rec.Body.String(), `"id":12`)
}

func TestCreateProductNamesTheMissingField(t *testing.T) {
	e, sessions := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("an invalid form must not reach the backend")
	}, 5)
	sess, err := sessions.Login("admin", "hunter2")
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	form := multipart.NewWriter(buf)
	require.NoError(t, form.WriteField("ref_number", "R-12"))
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/products", buf)
	req.Header.Set(echo.HeaderContentType, form.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+sess.Token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Message, "title")
}

func TestPublishRouteHitsTransitionEndpoint(t *testing.T) {
	var gotPath string
	e, sessions := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		w.Write([]byte(`{"id":7,"title":"Post","slug":"post","content":"c","status":"published"}`))
	}, 5)
	sess, err := sessions.Login("admin", "hunter2")
	require.NoError(t, err)

	rec, env := doJSON(e, http.MethodPost, "/v1/blogs/7/publish", "", sess.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "POST /blog/7/publish", gotPath)
	assert.Contains(t, string(env.Data), `"published"`)
}

func TestBadIDIsRejectedBeforeTheBackend(t *testing.T) {
	e, sessions := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("a malformed id must not reach the backend")
	}, 5)
	sess, err := sessions.Login("admin", "hunter2")
	require.NoError(t, err)

	rec, env := doJSON(e, http.MethodDelete, "/v1/products/abc", "", sess.Token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "BAD_REQUEST", env.Error.Code)
}

func TestHealthEndpoint(t *testing.T) {
	e, _ := newGateway(t, func(w http.ResponseWriter, r *http.Request) {}, 5)

	rec, _ := doJSON(e, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}
