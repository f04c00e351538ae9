package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"bookstore-api/middleware"
	"bookstore-api/model"
	"bookstore-api/repository"
	"bookstore-api/service"
	"bookstore-api/util"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Fake repositories
// ============================================================================

type fakeAuthorRepo struct {
	seq     uint
	authors map[uint]*model.Author
	err     error
}

func newFakeAuthorRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{authors: make(map[uint]*model.Author)}
}

func (r *fakeAuthorRepo) FindAll() ([]model.Author, error) {
	if r.err != nil {
		return nil, r.err
	}
	ids := make([]int, 0, len(r.authors))
	for id := range r.authors {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	out := make([]model.Author, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.authors[uint(id)])
	}
	return out, nil
}

func (r *fakeAuthorRepo) FindByID(id uint) (*model.Author, error) {
	if r.err != nil {
		return nil, r.err
	}
	if a, ok := r.authors[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeAuthorRepo) Create(author *model.Author) error {
	if r.err != nil {
		return r.err
	}
	r.seq++
	author.ID = r.seq
	r.authors[author.ID] = author
	return nil
}

func (r *fakeAuthorRepo) Update(author *model.Author) error {
	if r.err != nil {
		return r.err
	}
	r.authors[author.ID] = author
	return nil
}

func (r *fakeAuthorRepo) Delete(author *model.Author) error {
	if r.err != nil {
		return r.err
	}
	delete(r.authors, author.ID)
	return nil
}

func (r *fakeAuthorRepo) IsExists(id uint) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	_, ok := r.authors[id]
	return ok, nil
}

type fakeBookRepo struct {
	seq   uint
	books map[uint]*model.Book
	err   error
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: make(map[uint]*model.Book)}
}

func (r *fakeBookRepo) FindAll() ([]model.Book, error) {
	if r.err != nil {
		return nil, r.err
	}
	ids := make([]int, 0, len(r.books))
	for id := range r.books {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	out := make([]model.Book, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.books[uint(id)])
	}
	return out, nil
}

func (r *fakeBookRepo) FindByID(id uint) (*model.Book, error) {
	if r.err != nil {
		return nil, r.err
	}
	if b, ok := r.books[id]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeBookRepo) Create(book *model.Book) error {
	if r.err != nil {
		return r.err
	}
	r.seq++
	book.ID = r.seq
	r.books[book.ID] = book
	return nil
}

func (r *fakeBookRepo) Update(book *model.Book) error {
	if r.err != nil {
		return r.err
	}
	r.books[book.ID] = book
	return nil
}

func (r *fakeBookRepo) Delete(book *model.Book) error {
	if r.err != nil {
		return r.err
	}
	delete(r.books, book.ID)
	return nil
}

func (r *fakeBookRepo) IsExists(id uint) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	_, ok := r.books[id]
	return ok, nil
}

type fakeUserRepo struct {
	byUsername map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byUsername: make(map[string]*model.User)}
}

func (r *fakeUserRepo) Create(user *model.User) error {
	if _, exists := r.byUsername[user.Username]; exists {
		return errors.New(`duplicate key value violates unique constraint (SQLSTATE 23505)`)
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.byUsername[user.Username] = user
	return nil
}

func (r *fakeUserRepo) GetByID(id uuid.UUID) (*model.User, error) {
	for _, u := range r.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByUsername(username string) (*model.User, error) {
	if u, ok := r.byUsername[username]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) Update(user *model.User) error { return nil }
func (r *fakeUserRepo) Delete(id uuid.UUID) error     { return nil }

type fakeRoleRepo struct {
	roles map[string]*model.Role
}

func newFakeRoleRepo(names ...string) *fakeRoleRepo {
	r := &fakeRoleRepo{roles: make(map[string]*model.Role)}
	for _, n := range names {
		r.roles[n] = &model.Role{ID: uuid.New(), Name: n}
	}
	return r
}

func (r *fakeRoleRepo) GetByName(name string) (*model.Role, error) {
	if role, ok := r.roles[name]; ok {
		return role, nil
	}
	return nil, repository.ErrNotFound
}

// ============================================================================
// App wiring
// ============================================================================

type testEnv struct {
	app     *fiber.App
	tokens  *util.TokenIssuer
	authors *fakeAuthorRepo
	books   *fakeBookRepo
	users   *fakeUserRepo
}

// newTestEnv wires the controllers behind the same route layout as main,
// minus the rate limiter so tests cannot trip the IP ban.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	tokens, err := util.NewTokenIssuer("test-secret-long-enough", "bookstore-api", 5*time.Minute)
	require.NoError(t, err)

	logger := util.NewLoggerTo(io.Discard)
	authors := newFakeAuthorRepo()
	books := newFakeBookRepo()
	users := newFakeUserRepo()
	roles := newFakeRoleRepo("Administrator", "Customer")

	authService := service.NewAuthService(users, roles, tokens, nil, logger)
	userController := NewUserController(authService, logger)
	authorController := NewAuthorController(authors, logger)
	bookController := NewBookController(books, authors, logger)
	authmw := middleware.NewAuthMiddleware(tokens, logger)

	app := fiber.New()
	api := app.Group("/api/v1")

	userGroup := api.Group("/users")
	userGroup.Post("/login", userController.Login)
	userGroup.Post("/register", userController.Register)

	authorGroup := api.Group("/authors", authmw.RequireAuth())
	authorGroup.Get("/", authorController.GetAuthors)
	authorGroup.Get("/:id", authorController.GetAuthor)
	authorGroup.Post("/", authmw.RequireRoles("Administrator"), authorController.Create)
	authorGroup.Put("/:id", authmw.RequireRoles("Administrator"), authorController.Update)
	authorGroup.Delete("/:id", authmw.RequireRoles("Administrator"), authorController.Delete)

	bookGroup := api.Group("/books", authmw.RequireAuth())
	bookGroup.Get("/", bookController.GetBooks)
	bookGroup.Get("/:id", bookController.GetBook)
	bookGroup.Post("/", authmw.RequireRoles("Administrator"), bookController.Create)
	bookGroup.Put("/:id", authmw.RequireRoles("Administrator"), bookController.Update)
	bookGroup.Delete("/:id", authmw.RequireRoles("Administrator"), bookController.Delete)

	return &testEnv{app: app, tokens: tokens, authors: authors, books: books, users: users}
}

func (e *testEnv) seedUser(t *testing.T, username, password string, roleNames ...string) *model.User {
	t.Helper()
	hashed, err := util.HashPassword(password)
	require.NoError(t, err)
	u := &model.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        username + "@bookstore.local",
		PasswordHash: hashed,
	}
	for _, n := range roleNames {
		u.Roles = append(u.Roles, model.Role{ID: uuid.New(), Name: n})
	}
	e.users.byUsername[username] = u
	return u
}

func (e *testEnv) tokenFor(t *testing.T, user *model.User) string {
	t.Helper()
	token, err := e.tokens.Issue(user)
	require.NoError(t, err)
	return token
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
