package recaptcha

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Verify(t *testing.T) {
	var gotSecret, gotResponse, gotIP string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		gotSecret = r.PostForm.Get("secret")
		gotResponse = r.PostForm.Get("response")
		gotIP = r.PostForm.Get("remoteip")

		if gotResponse == "good" {
			_, _ = w.Write([]byte(`{"success":true,"score":0.9}`))
			return
		}
		_, _ = w.Write([]byte(`{"success":false,"error-codes":["invalid-input-response"]}`))
	}))
	defer srv.Close()

	c := NewClient("s3cret", srv.URL, srv.Client())

	res, err := c.Verify(context.Background(), "good", "10.1.1.1")
	require.NoError(t, err)
	assert.True(t, res.Success)
	require.NotNil(t, res.Score)
	assert.Equal(t, 0.9, *res.Score)
	assert.Equal(t, "s3cret", gotSecret)
	assert.Equal(t, "10.1.1.1", gotIP)

	res, err = c.Verify(context.Background(), "bad", "")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Nil(t, res.Score)
	assert.Empty(t, gotIP)
}

func TestClient_Verify_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := NewClient("s", srv.URL+"/500", srv.Client()).Verify(context.Background(), "t", "")
	assert.Error(t, err)

	_, err = NewClient("s", srv.URL+"/junk", srv.Client()).Verify(context.Background(), "t", "")
	assert.Error(t, err)
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("s", "", nil)

	assert.Equal(t, DefaultVerifyURL, c.verifyURL)
	assert.Equal(t, http.DefaultClient, c.http)
}
