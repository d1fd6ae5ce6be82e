package newsletter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookshop/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	emails map[string]bool
	err    error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{emails: make(map[string]bool)}
}

func (f *fakeRepo) Subscribe(ctx context.Context, email string) error {
	if f.err != nil {
		return f.err
	}
	if f.emails[email] {
		return ErrAlreadySubscribed
	}
	f.emails[email] = true
	return nil
}

func TestSubscribe(t *testing.T) {
	repo := newFakeRepo()
	handler := NewHTTPHandler(NewService(repo))

	t.Run("new subscriber", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/newsletter", map[string]string{"email": "jane@example.com"})

		handler.Subscribe(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		body := testutil.DecodeBody(w)
		assert.Equal(t, true, body["success"])
		data, ok := body["data"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Thanks for subscribing!", data["message"])
	})

	t.Run("duplicate gets a friendly response", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/newsletter", map[string]string{"email": "jane@example.com"})

		handler.Subscribe(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		body := testutil.DecodeBody(w)
		assert.Equal(t, true, body["success"])
		meta, ok := body["meta"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "You're already subscribed!", meta["message"])
	})

	t.Run("invalid email", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/newsletter", map[string]string{"email": "not-an-email"})

		handler.Subscribe(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := testutil.DecodeBody(w)
		assert.Equal(t, false, body["success"])
	})

	t.Run("missing email", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/newsletter", map[string]string{})

		handler.Subscribe(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/newsletter", nil)

		handler.Subscribe(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
