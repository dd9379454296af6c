package netx

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name string `json:"name"`
}

func TestPostJSON(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		var gotMethod, gotCT string
		var gotBody payload

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotCT = r.Header.Get("Content-Type")
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			_, _ = io.WriteString(w, `{"name":"pong"}`)
		}))
		defer ts.Close()

		var out payload
		status, err := PostJSON(context.Background(), ts.Client(), ts.URL, payload{Name: "ping"}, &out)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "application/json", gotCT)
		assert.Equal(t, "ping", gotBody.Name)
		assert.Equal(t, "pong", out.Name)
	})

	t.Run("error status still decoded", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"name":"bad"}`)
		}))
		defer ts.Close()

		var out payload
		status, err := PostJSON(context.Background(), ts.Client(), ts.URL, payload{}, &out)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "bad", out.Name)
	})

	t.Run("empty body", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		defer ts.Close()

		out := payload{Name: "keep"}
		status, err := PostJSON(context.Background(), ts.Client(), ts.URL, payload{}, &out)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, status)
		assert.Equal(t, "keep", out.Name)
	})

	t.Run("non-json body", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = io.WriteString(w, "<html>bad gateway</html>")
		}))
		defer ts.Close()

		var out payload
		status, err := PostJSON(context.Background(), ts.Client(), ts.URL, payload{}, &out)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadGateway, status)
	})

	t.Run("unreachable", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := ts.URL
		ts.Close()

		status, err := PostJSON(context.Background(), http.DefaultClient, url, payload{}, nil)
		require.Error(t, err)
		assert.Equal(t, 0, status)
	})

	t.Run("unencodable request", func(t *testing.T) {
		_, err := PostJSON(context.Background(), http.DefaultClient, "http://127.0.0.1:1", make(chan int), nil)
		require.Error(t, err)
	})
}
