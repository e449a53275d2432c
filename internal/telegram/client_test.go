package telegram_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"highpro/web/internal/telegram"
)

func TestSanitizePhone(t *testing.T) {
	cases := map[string]string{
		"+998 90 123-45-67": "+998901234567",
		"998901234567":      "998901234567",
		"(90) 123 45 67":    "901234567",
		"tel:+99890":        "+99890",
		"":                  "",
	}
	for input, want := range cases {
		require.Equal(t, want, telegram.SanitizePhone(input), input)
	}
}

func TestSendLead(t *testing.T) {
	var gotPath string
	var gotPayload map[string]string

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer upstream.Close()

	client := telegram.NewClient("bot-token", "chat-1").WithAPIBase(upstream.URL)
	err := client.SendLead(context.Background(), telegram.Lead{
		Name:   "Aziza <3",
		Course: "Ingliz tili",
		Phone:  "+998 90 123-45-67",
	})
	require.NoError(t, err)

	require.Equal(t, "/botbot-token/sendMessage", gotPath)
	require.Equal(t, "chat-1", gotPayload["chat_id"])
	require.Equal(t, "HTML", gotPayload["parse_mode"])
	require.Contains(t, gotPayload["text"], `https://t.me/+998901234567`)
	require.Contains(t, gotPayload["text"], "Aziza &lt;3", "user input is HTML-escaped")
	require.Contains(t, gotPayload["text"], "Ingliz tili")
}

func TestSendLead_NotConfigured(t *testing.T) {
	err := telegram.NewClient("", "").SendLead(context.Background(), telegram.Lead{Name: "a", Course: "b", Phone: "c"})
	require.ErrorIs(t, err, telegram.ErrNotConfigured)
}

func TestSendLead_UpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"description":"chat not found"}`))
	}))
	defer upstream.Close()

	client := telegram.NewClient("tok", "chat").WithAPIBase(upstream.URL)
	err := client.SendLead(context.Background(), telegram.Lead{Name: "a", Course: "b", Phone: "c"})

	var delivery *telegram.DeliveryError
	require.ErrorAs(t, err, &delivery)
	require.Equal(t, http.StatusBadRequest, delivery.StatusCode)
	require.Contains(t, string(delivery.Body), "chat not found")
}
