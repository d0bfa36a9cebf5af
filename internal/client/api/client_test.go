package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gourmet/internal/models"
	"github.com/iudanet/gourmet/pkg/api"
)

// newTestServer поднимает fake backend с одним обработчиком
func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL)
}

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8080/")

	assert.NotNil(t, client)
	assert.Equal(t, "http://localhost:8080", client.BaseURL())
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
	assert.Nil(t, client.limiter)
}

func TestNewClient_Options(t *testing.T) {
	hc := &http.Client{}
	client := NewClient("http://x", WithHTTPClient(hc), WithTimeout(5*time.Second), WithRateLimit(2, 0))

	assert.NotSame(t, hc, client.httpClient)
	assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	assert.Zero(t, hc.Timeout)
	require.NotNil(t, client.limiter)
	assert.Equal(t, 1, client.limiter.Burst())

	client = NewClient("http://x", WithRateLimit(0, 10))
	assert.Nil(t, client.limiter)
}

// TestClient_Do_Headers проверяет заголовки запроса
func TestClient_Do_Headers(t *testing.T) {
	tests := []struct {
		body      any
		name      string
		token     string
		wantAuth  string
		wantCType string
	}{
		{name: "anonymous without body"},
		{name: "bearer token", token: "T", wantAuth: "Bearer T"},
		{name: "json body", body: map[string]string{"a": "b"}, wantCType: "application/json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "application/json", r.Header.Get("Accept"))
				assert.Equal(t, "XMLHttpRequest", r.Header.Get("X-Requested-With"))
				_, err := uuid.Parse(r.Header.Get("X-Request-ID"))
				assert.NoError(t, err)
				assert.Equal(t, tt.wantAuth, r.Header.Get("Authorization"))
				assert.Equal(t, tt.wantCType, r.Header.Get("Content-Type"))
				_, _ = w.Write([]byte("ok"))
			})

			text, err := client.Do(context.Background(), http.MethodPost, "/anything", tt.token, tt.body, nil)
			require.NoError(t, err)
			assert.Equal(t, "ok", text)
		})
	}
}

func TestClient_Do_RequestError(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("Internal Server Error\n"))
	})

	var out []models.Recipe
	_, err := client.Do(context.Background(), http.MethodGet, "/recipes", "", nil, &out)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusInternalServerError, reqErr.Status)
	assert.Equal(t, "Internal Server Error\n", reqErr.Body)
	assert.Equal(t, "/recipes", reqErr.Path)
	assert.Contains(t, err.Error(), "request failed with status 500")
}

func TestClient_Do_MalformedResponse(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	})

	var out []models.Recipe
	text, err := client.Do(context.Background(), http.MethodGet, "/recipes", "", nil, &out)

	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "<html>not json</html>", malformed.Body)
	assert.Equal(t, "<html>not json</html>", text)
}

func TestClient_Do_TextResponseNotParsed(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("1"))
	})

	text, err := client.Do(context.Background(), http.MethodDelete, "/x", "T", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "1", text)
}

func TestClient_Do_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url)
	_, err := client.Do(context.Background(), http.MethodGet, "/recipes", "", nil, nil)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, http.MethodGet, netErr.Method)
	assert.Contains(t, err.Error(), "network error")
}

func TestClient_Do_MarshalError(t *testing.T) {
	client := NewClient("http://localhost:1")
	_, err := client.Do(context.Background(), http.MethodPost, "/x", "", make(chan int), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal request body")
	var netErr *NetworkError
	assert.False(t, errors.As(err, &netErr))
}

func TestClient_Do_RateLimitRespectsContext(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	WithRateLimit(0.001, 1)(client)

	_, err := client.Do(context.Background(), http.MethodGet, "/x", "", nil, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = client.Do(ctx, http.MethodGet, "/x", "", nil, nil)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
}

// TestClient_Login проверяет успешный логин
func TestClient_Login(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var req api.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "monUser", req.Username)
		assert.Equal(t, "monPassword", req.Password)

		_ = json.NewEncoder(w).Encode(api.TokenResponse{Token: "123456"})
	})

	resp, err := client.Login(context.Background(), api.LoginRequest{Username: "monUser", Password: "monPassword"})
	require.NoError(t, err)
	assert.Equal(t, "123456", resp.Token)
}

// TestClient_Login_Error проверяет обработку ошибок при логине
func TestClient_Login_Error(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		statusCode int
		malformed  bool
	}{
		{name: "unauthorized", statusCode: http.StatusUnauthorized, body: "Unauthorized", wantStatus: http.StatusUnauthorized},
		{name: "missing token", statusCode: http.StatusOK, body: `{"message":"ok"}`, malformed: true},
		{name: "not json", statusCode: http.StatusOK, body: `token=abc`, malformed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			})

			resp, err := client.Login(context.Background(), api.LoginRequest{Username: "u", Password: "p"})
			require.Error(t, err)
			assert.Nil(t, resp)

			if tt.malformed {
				var malformed *MalformedResponseError
				assert.ErrorAs(t, err, &malformed)
				return
			}
			var reqErr *RequestError
			require.ErrorAs(t, err, &reqErr)
			assert.Equal(t, tt.wantStatus, reqErr.Status)
			assert.Equal(t, tt.body, reqErr.Body)
			assert.True(t, IsUnauthorized(err))
		})
	}
}

func TestClient_GetUser(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users/mon user", r.URL.Path)
		assert.Equal(t, "Bearer monToken", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"username":"mon user","name":"Test User"}`))
	})

	user, err := client.GetUser(context.Background(), "monToken", "mon user")
	require.NoError(t, err)
	assert.Equal(t, "mon user", user.Username)
	assert.Equal(t, "Test User", user.Name)
}

func TestClient_GetUser_NumericID(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"username":"u","id":7,"name":"U"}`))
	})

	user, err := client.GetUser(context.Background(), "T", "u")
	require.NoError(t, err)
	assert.Equal(t, "u", user.Username)
	assert.Equal(t, models.UserID("7"), user.ID)
}

func TestClient_GetUser_MissingUsername(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"Nobody"}`))
	})

	user, err := client.GetUser(context.Background(), "T", "u")
	assert.Nil(t, user)
	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	assert.ErrorIs(t, err, models.ErrInvalidUser)
}

func TestClient_Recipes(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/recipes":
			_, _ = w.Write([]byte(`[{"id":1,"name":"Recette 1"},{"id":2,"name":"Recette 2"}]`))
		case "/recipes/1":
			_, _ = w.Write([]byte(`{"id":1,"name":"Recette 1","prep_time":10}`))
		case "/recipes/1/related":
			_, _ = w.Write([]byte(`[{"id":2,"name":"Recette 2"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()

	recipes, err := client.ListRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, models.RecipeID("1"), recipes[0].ID)

	recipe, err := client.GetRecipe(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 10, recipe.PrepTime)

	related, err := client.GetRelated(ctx, "1")
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, models.RecipeID("2"), related[0].ID)

	_, err = client.GetRecipe(ctx, "404")
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusNotFound, reqErr.Status)
}

func TestClient_ListRecipes_Structural(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"name":"sans id"}]`))
	})

	_, err := client.ListRecipes(context.Background())
	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	assert.ErrorIs(t, err, models.ErrInvalidRecipe)
}

func TestClient_Favorites(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer T", r.Header.Get("Authorization"))
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/favorites":
			_, _ = w.Write([]byte(`[{"recipe":{"id":42,"name":"Soupe"}}]`))
		case r.Method == http.MethodPost && r.URL.Path == "/users/alice/favorites":
			assert.Equal(t, "42", r.URL.Query().Get("recipeID"))
			_, _ = w.Write([]byte("Favori ajouté"))
		case r.Method == http.MethodDelete && r.URL.Path == "/users/alice/favorites":
			assert.Equal(t, "42", r.URL.Query().Get("recipeID"))
			_, _ = w.Write([]byte("1"))
		default:
			w.WriteHeader(http.StatusTeapot)
		}
	})
	ctx := context.Background()

	favorites, err := client.ListFavorites(ctx, "T")
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, models.RecipeID("42"), favorites[0].Recipe.ID)

	text, err := client.AddFavorite(ctx, "T", "alice", "42")
	require.NoError(t, err)
	assert.Equal(t, "Favori ajouté", text)

	text, err = client.RemoveFavorite(ctx, "T", "alice", "42")
	require.NoError(t, err)
	assert.Equal(t, "1", text)
}

func TestClient_AddFavorite_Duplicate(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("la recette est déjà dans les favoris"))
	})

	_, err := client.AddFavorite(context.Background(), "T", "alice", "42")

	var dup *DuplicateFavoriteError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "42", dup.RecipeID)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusInternalServerError, reqErr.Status)
}

func TestClient_AddFavorite_OtherError(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid token"))
	})

	_, err := client.AddFavorite(context.Background(), "T", "alice", "42")

	var dup *DuplicateFavoriteError
	assert.False(t, errors.As(err, &dup))
	assert.True(t, IsUnauthorized(err))
}

func TestClient_AddFavorite_UnauthorizedIsNotDuplicate(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte("token already expired"))
		})

		_, err := client.AddFavorite(context.Background(), "T", "alice", "42")

		var dup *DuplicateFavoriteError
		assert.False(t, errors.As(err, &dup), "status %d", status)
		assert.True(t, IsUnauthorized(err), "status %d", status)
	}
}

func TestIsDuplicateFavorite(t *testing.T) {
	tests := []struct {
		body string
		want bool
	}{
		{body: "Recipe already in favorites", want: true},
		{body: "La recette est DÉJÀ en favori", want: true},
		{body: "deja present", want: true},
		{body: "duplicate key value violates unique constraint", want: true},
		{body: "internal error", want: false},
		{body: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDuplicateFavorite(tt.body))
		})
	}
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, IsUnauthorized(&RequestError{Status: http.StatusUnauthorized}))
	assert.True(t, IsUnauthorized(&RequestError{Status: http.StatusForbidden}))
	assert.False(t, IsUnauthorized(&RequestError{Status: http.StatusNotFound}))
	assert.False(t, IsUnauthorized(&NetworkError{Err: errors.New("boom")}))
	assert.False(t, IsUnauthorized(nil))
}
