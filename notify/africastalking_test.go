package notify

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfricasTalkingGatewaySend(t *testing.T) {
	var gotForm map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{
			"username": r.PostFormValue("username"),
			"to":       r.PostFormValue("to"),
			"message":  r.PostFormValue("message"),
		}
		assert.Equal(t, "secret-key", r.Header.Get("apiKey"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"SMSMessageData":{"Message":"Sent to 1/1","Recipients":[{"number":"+254712345678","status":"Success","statusCode":101}]}}`))
	}))
	defer server.Close()

	gateway, err := NewAfricasTalkingGateway("secret-key", "sandbox", server.URL, "")
	require.NoError(t, err)

	err = gateway.Send([]string{"+254712345678"}, "hello")
	require.NoError(t, err)
	assert.Equal(t, "sandbox", gotForm["username"])
	assert.Equal(t, "+254712345678", gotForm["to"])
	assert.Equal(t, "hello", gotForm["message"])
}

func TestAfricasTalkingGatewayRejectedRecipient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"SMSMessageData":{"Message":"","Recipients":[{"number":"+1","status":"InvalidPhoneNumber","statusCode":403}]}}`))
	}))
	defer server.Close()

	gateway, err := NewAfricasTalkingGateway("k", "sandbox", server.URL, "")
	require.NoError(t, err)

	err = gateway.Send([]string{"+1"}, "hello")
	assert.ErrorContains(t, err, "InvalidPhoneNumber")
}

func TestAfricasTalkingGatewayHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	gateway, err := NewAfricasTalkingGateway("bad", "sandbox", server.URL, "")
	require.NoError(t, err)

	err = gateway.Send([]string{"+254712345678"}, "hello")
	assert.ErrorContains(t, err, "401")
}

func TestNewAfricasTalkingGatewayRequiresConfig(t *testing.T) {
	_, err := NewAfricasTalkingGateway("", "sandbox", "http://x", "")
	assert.Error(t, err)
}
