package notifier

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVonage(serverURL string) *Vonage {
	v := NewVonage("key", "secret", "SkillWave")
	v.endpoint = serverURL
	return v
}

func TestVonageNotify(t *testing.T) {
	var gotForm map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{
			"api_key": r.PostFormValue("api_key"),
			"from":    r.PostFormValue("from"),
			"to":      r.PostFormValue("to"),
			"text":    r.PostFormValue("text"),
		}
		w.Write([]byte(`{"messages": [{"status": "0"}]}`))
	}))
	defer server.Close()

	err := newTestVonage(server.URL).Notify(context.Background(), "0812345678", "hello")
	require.NoError(t, err)
	assert.Equal(t, "key", gotForm["api_key"])
	assert.Equal(t, "SkillWave", gotForm["from"])
	assert.Equal(t, "0812345678", gotForm["to"])
	assert.Equal(t, "hello", gotForm["text"])
}

func TestVonageNotifyRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"messages": [{"status": "9", "error-text": "Quota exceeded"}]}`))
	}))
	defer server.Close()

	err := newTestVonage(server.URL).Notify(context.Background(), "0812345678", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Quota exceeded")
}

func TestVonageNotifyEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"messages": []}`))
	}))
	defer server.Close()

	err := newTestVonage(server.URL).Notify(context.Background(), "0812345678", "hello")
	assert.Error(t, err)
}
