package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	app "github.com/skillsnap/skillsnap-server/internal/application"
	"github.com/skillsnap/skillsnap-server/internal/domain/entity"
	repo "github.com/skillsnap/skillsnap-server/internal/domain/repository"
	handlers "github.com/skillsnap/skillsnap-server/internal/interface/http"
	"github.com/skillsnap/skillsnap-server/internal/router"
	"github.com/skillsnap/skillsnap-server/internal/router/modules"
	"github.com/skillsnap/skillsnap-server/pkg/helpers"
	"github.com/skillsnap/skillsnap-server/pkg/validation"
)

// memUserRepo is an in-memory UserRepository for handler tests.
type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User // keyed by lower(email)
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.ToLower(u.Email)
	if _, ok := r.users[key]; ok {
		return repo.ErrDuplicateEmail
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.users[key] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) EnsureRole(context.Context, string) (string, error) { return "", nil }
func (r *memUserRepo) AssignRole(context.Context, string, string) error   { return nil }

// memItemRepo is an in-memory PortfolioRepository.
type memItemRepo struct {
	mu     sync.Mutex
	nextID int
	items  []entity.PortfolioItem
}

func newMemItemRepo() *memItemRepo { return &memItemRepo{nextID: 1} }

func (r *memItemRepo) List(context.Context) ([]entity.PortfolioItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.PortfolioItem, len(r.items))
	copy(out, r.items)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memItemRepo) GetByID(_ context.Context, id int) (*entity.PortfolioItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.ID == id {
			cp := it
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *memItemRepo) Create(_ context.Context, item *entity.PortfolioItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.ID = r.nextID
	r.nextID++
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}
	r.items = append(r.items, *item)
	return nil
}

func (r *memItemRepo) Count(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

var (
	_ repo.UserRepository      = (*memUserRepo)(nil)
	_ repo.PortfolioRepository = (*memItemRepo)(nil)
)

func newTestJWT() *helpers.JWTManager {
	return helpers.NewJWTManager("test-secret", "skillsnap", 6*time.Hour)
}

func newTestRouter(users repo.UserRepository, items repo.PortfolioRepository, jwt *helpers.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Init()
	r := gin.New()
	reg := router.NewRegistry(r)
	reg.Add(modules.NewAuthModule(handlers.NewAuthHandler(app.NewUserService(users, jwt, nil), nil)))
	reg.Add(modules.NewPortfolioModule(handlers.NewPortfolioHandler(app.NewPortfolioService(items, nil), nil), jwt))
	reg.RegisterAll()
	return r
}

// envelope mirrors the response wrapper for decoding in assertions.
type envelope struct {
	Status  int               `json:"status"`
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Error   map[string]string `json:"error"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode envelope (%s %s): %v: %s", method, path, err, w.Body.String())
		}
	}
	return w, env
}

func register(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()
	w, env := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{"email": email, "password": password})
	if w.Code != http.StatusOK {
		t.Fatalf("register %s: status %d body %s", email, w.Code, w.Body.String())
	}
	var data struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode register data: %v", err)
	}
	return data.ID
}

func login(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()
	w, env := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{"email": email, "password": password})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: status %d body %s", email, w.Code, w.Body.String())
	}
	var data struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode login data: %v", err)
	}
	return data.AccessToken
}

func itemURL(id int) string { return fmt.Sprintf("/api/portfolio/%d", id) }
