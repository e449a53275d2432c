package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"highpro/web/internal/telegram"
)

func TestSubmit_Success(t *testing.T) {
	var gotPayload map[string]string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer upstream.Close()

	client := telegram.NewClient("tok", "chat").WithAPIBase(upstream.URL)
	engine := newAPIEngine(t, "http://127.0.0.1:0", client)

	w := doJSON(engine, http.MethodPost, "/api/submit", `{"name":"Bekzod","course":"Koreys tili","phone":"+998 90 123-45-67"}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"success":true}`, w.Body.String())
	require.Contains(t, gotPayload["text"], "https://t.me/+998901234567")
}

func TestSubmit_MissingFields(t *testing.T) {
	engine := newAPIEngine(t, "http://127.0.0.1:0", telegram.NewClient("tok", "chat"))

	for name, body := range map[string]string{
		"no name":   `{"course":"Ingliz tili","phone":"+99890"}`,
		"no course": `{"name":"B","phone":"+99890"}`,
		"no phone":  `{"name":"B","course":"Ingliz tili"}`,
		"empty":     `{}`,
	} {
		t.Run(name, func(t *testing.T) {
			w := doJSON(engine, http.MethodPost, "/api/submit", body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			require.Contains(t, w.Body.String(), "Barcha maydonlar")
		})
	}
}

func TestSubmit_BotNotConfigured(t *testing.T) {
	engine := newAPIEngine(t, "http://127.0.0.1:0", telegram.NewClient("", ""))

	w := doJSON(engine, http.MethodPost, "/api/submit", `{"name":"B","course":"Ingliz tili","phone":"+99890"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "Server sozlamalarida xatolik")
}

func TestSubmit_UpstreamFailureCarriesBody(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"ok":false,"description":"bot was blocked"}`))
	}))
	defer upstream.Close()

	client := telegram.NewClient("tok", "chat").WithAPIBase(upstream.URL)
	engine := newAPIEngine(t, "http://127.0.0.1:0", client)

	w := doJSON(engine, http.MethodPost, "/api/submit", `{"name":"B","course":"Ingliz tili","phone":"+99890"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Contains(t, body["upstream"], "bot was blocked")
}
