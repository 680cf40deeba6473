// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/utils"
	"github.com/MKhiriev/go-user-directory/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory /users collection served through chi, shaped
// like the JSON collection service the client talks to in production.
type fakeStore struct {
	mu     sync.Mutex
	nextID int
	users  []models.User
	hits   []string
}

func newFakeStore(seed ...models.User) *fakeStore {
	s := &fakeStore{nextID: 1}
	for _, u := range seed {
		if u.ID == "" {
			u.ID = models.UserID(strconv.Itoa(s.nextID))
			s.nextID++
		}
		s.users = append(s.users, u)
	}
	return s
}

func (s *fakeStore) router() http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			s.mu.Lock()
			s.hits = append(s.hits, req.Method+" "+req.URL.Path)
			s.mu.Unlock()
			next.ServeHTTP(w, req)
		})
	})
	r.Route("/users", func(r chi.Router) {
		r.Get("/", s.list)
		r.Post("/", s.create)
		r.Put("/{id}", s.update)
		r.Delete("/{id}", s.delete)
	})
	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *fakeStore) list(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.users)
}

func (s *fakeStore) create(w http.ResponseWriter, r *http.Request) {
	var u models.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = models.UserID(strconv.Itoa(s.nextID))
	s.nextID++
	s.users = append(s.users, u)
	writeJSON(w, http.StatusCreated, u)
}

func (s *fakeStore) update(w http.ResponseWriter, r *http.Request) {
	id := models.UserID(chi.URLParam(r, "id"))

	var u models.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			u.ID = id
			s.users[i] = u
			writeJSON(w, http.StatusOK, u)
			return
		}
	}
	http.Error(w, "user not found", http.StatusNotFound)
}

func (s *fakeStore) delete(w http.ResponseWriter, r *http.Request) {
	id := models.UserID(chi.URLParam(r, "id"))

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]any{})
			return
		}
	}
	http.Error(w, "user not found", http.StatusNotFound)
}

// newTestStoreAdapter создаёт httpStoreAdapter, направленный на тестовый сервер
func newTestStoreAdapter(t *testing.T, serverURL string) *httpStoreAdapter {
	t.Helper()
	a, err := NewHTTPStoreAdapter(config.ClientAdapter{StoreAddress: serverURL}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpStoreAdapter)
}

// ── Constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPStoreAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPStoreAdapter(config.ClientAdapter{StoreAddress: "   "}, logger.Nop())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "scheme kept", raw: "https://store.example.com", want: "https://store.example.com"},
		{name: "missing scheme defaults to http", raw: "localhost:3000", want: "http://localhost:3000"},
		{name: "trailing slash trimmed", raw: "http://localhost:3000/", want: "http://localhost:3000"},
		{name: "surrounding spaces", raw: "  http://localhost:3000  ", want: "http://localhost:3000"},
		{name: "empty", raw: "", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAddress)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── List ────────────────────────────────────────────────────────────────────

func TestList_Success(t *testing.T) {
	store := newFakeStore(
		models.User{FullName: "Ann Lee", Email: "ann@x.io", Phone: "+1 555 1234"},
		models.User{FullName: "Bob Ray", Email: "bob@x.io", Phone: "5551234", IsFavorite: true},
	)
	srv := httptest.NewServer(store.router())
	defer srv.Close()

	a := newTestStoreAdapter(t, srv.URL)
	got, err := a.List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.UserID("1"), got[0].ID)
	assert.Equal(t, "Ann Lee", got[0].FullName)
	assert.True(t, got[1].IsFavorite)
	assert.Equal(t, []string{"GET /users"}, store.hits)
}

func TestList_EmptyCollection(t *testing.T) {
	srv := httptest.NewServer(newFakeStore().router())
	defer srv.Close()

	a := newTestStoreAdapter(t, srv.URL)
	got, err := a.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestList_NumericIDs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":7,"fullName":"Ann Lee","email":"ann@x.io","phone":"5551234","profileImage":"","isFavorite":false}]`))
	}))
	defer srv.Close()

	a := newTestStoreAdapter(t, srv.URL)
	got, err := a.List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.UserID("7"), got[0].ID)
}

func TestList_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	a := newTestStoreAdapter(t, srv.URL)
	got, err := a.List(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Nil(t, got)
}

func TestList_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	a := newTestStoreAdapter(t, addr)
	_, err := a.List(context.Background())

	require.Error(t, err)
}

func TestList_SendsRequestID(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(utils.RequestIDHeader)
		writeJSON(w, http.StatusOK, []models.User{})
	}))
	defer srv.Close()

	a := newTestStoreAdapter(t, srv.URL)
	_, err := a.List(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

func TestList_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		writeJSON(w, http.StatusOK, []models.User{})
	}))
	defer srv.Close()

	a, err := NewHTTPStoreAdapter(config.ClientAdapter{
		StoreAddress:   srv.URL,
		RequestTimeout: 20 * time.Millisecond,
	}, logger.Nop())
	require.NoError(t, err)

	_, err = a.List(context.Background())
	require.Error(t, err)
}

// ── Create ──────────────────────────────────────────────────────────────────

func TestCreate_Success(t *testing.T) {
	store := newFakeStore()
	srv := httptest.NewServer(store.router())
	defer srv.Close()

	a := newTestStoreAdapter(t, srv.URL)
	got, err := a.Create(context.Background(), models.User{
		FullName:     "Ann Lee",
		Email:        "ann@x.io",
		Phone:        "+1 555 1234",
		ProfileImage: models.DefaultProfileImage,
	})

	require.NoError(t, err)
	assert.Equal(t, models.UserID("1"), got.ID)
	assert.Equal(t, "Ann Lee", got.FullName)
	assert.False(t, got.IsFavorite)
	assert.Equal(t, []string{"POST /users"}, store.hits)
	require.Len(t, store.users, 1)
}

func TestCreate_SendsJSONWithoutID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, hasID := body["id"]
		assert.False(t, hasID)
		assert.Equal(t, "Ann Lee", body["fullName"])
		assert.Equal(t, false, body["isFavorite"])

		writeJSON(w, http.StatusCreated, map[string]any{"id": 10, "fullName": "Ann Lee"})
	}))
	defer srv.Close()

	a := newTestStoreAdapter(t, srv.URL)
	got, err := a.Create(context.Background(), models.User{FullName: "Ann Lee"})

	require.NoError(t, err)
	assert.Equal(t, models.UserID("10"), got.ID)
}

func TestCreate_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("bad body"))
	}))
	defer srv.Close()

	a := newTestStoreAdapter(t, srv.URL)
	_, err := a.Create(context.Background(), models.User{FullName: "Ann Lee"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "bad body")
}

func TestCreate_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("<html><body>welcome</body></html>"))
	}))
	defer srv.Close()

	a := newTestStoreAdapter(t, srv.URL)
	got, err := a.Create(context.Background(), models.User{FullName: "Ann Lee"})

	require.Error(t, err)
	assert.Empty(t, got.ID)
}

func TestCreate_MissingID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]any{"fullName": "Ann Lee"})
	}))
	defer srv.Close()

	a := newTestStoreAdapter(t, srv.URL)
	got, err := a.Create(context.Background(), models.User{FullName: "Ann Lee"})

	require.ErrorIs(t, err, ErrMissingID)
	assert.Equal(t, models.User{}, got)
}

// JSON без заголовка Content-Type всё равно декодируется
func TestCreate_UndeclaredJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"7","fullName":"Ann Lee"}`))
	}))
	defer srv.Close()

	a := newTestStoreAdapter(t, srv.URL)
	got, err := a.Create(context.Background(), models.User{FullName: "Ann Lee"})

	require.NoError(t, err)
	assert.Equal(t, models.UserID("7"), got.ID)
}

// ── Update ──────────────────────────────────────────────────────────────────

func TestUpdate_Success(t *testing.T) {
	store := newFakeStore(models.User{FullName: "Ann Lee", Email: "ann@x.io", Phone: "5551234"})
	srv := httptest.NewServer(store.router())
	defer srv.Close()

	a := newTestStoreAdapter(t, srv.URL)
	got, err := a.Update(context.Background(), "1", models.User{
		ID:         "1",
		FullName:   "Ann Smith",
		Email:      "ann@x.io",
		Phone:      "5551234",
		IsFavorite: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "Ann Smith", got.FullName)
	assert.True(t, got.IsFavorite)
	assert.Equal(t, []string{"PUT /users/1"}, store.hits)
	assert.Equal(t, "Ann Smith", store.users[0].FullName)
}

func TestUpdate_NotFound(t *testing.T) {
	srv := httptest.NewServer(newFakeStore().router())
	defer srv.Close()

	a := newTestStoreAdapter(t, srv.URL)
	_, err := a.Update(context.Background(), "42", models.User{FullName: "Ann"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate_EscapesID(t *testing.T) {
	var rawPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawPath = r.URL.EscapedPath()
		writeJSON(w, http.StatusOK, map[string]any{"id": "a/b"})
	}))
	defer srv.Close()

	a := newTestStoreAdapter(t, srv.URL)
	_, err := a.Update(context.Background(), "a/b", models.User{})

	require.NoError(t, err)
	assert.Equal(t, "/users/a%2Fb", rawPath)
}

func TestUpdate_EmptyID(t *testing.T) {
	a := newTestStoreAdapter(t, "http://localhost:1")
	_, err := a.Update(context.Background(), "", models.User{})
	assert.ErrorIs(t, err, ErrEmptyID)
}

// ── Delete ──────────────────────────────────────────────────────────────────

func TestDelete_Success(t *testing.T) {
	store := newFakeStore(
		models.User{FullName: "Ann Lee"},
		models.User{FullName: "Bob Ray"},
	)
	srv := httptest.NewServer(store.router())
	defer srv.Close()

	a := newTestStoreAdapter(t, srv.URL)
	err := a.Delete(context.Background(), "1")

	require.NoError(t, err)
	assert.Equal(t, []string{"DELETE /users/1"}, store.hits)
	require.Len(t, store.users, 1)
	assert.Equal(t, "Bob Ray", store.users[0].FullName)
}

func TestDelete_SendsNoBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Zero(t, r.ContentLength)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestStoreAdapter(t, srv.URL)
	require.NoError(t, a.Delete(context.Background(), "3"))
}

func TestDelete_NotFound(t *testing.T) {
	srv := httptest.NewServer(newFakeStore().router())
	defer srv.Close()

	a := newTestStoreAdapter(t, srv.URL)
	err := a.Delete(context.Background(), "9")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_EmptyID(t *testing.T) {
	a := newTestStoreAdapter(t, "http://localhost:1")
	assert.ErrorIs(t, a.Delete(context.Background(), ""), ErrEmptyID)
}
