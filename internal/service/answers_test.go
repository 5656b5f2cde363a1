package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m3rciful/collegebot/internal/domain"
)

func TestAnswersAsk(t *testing.T) {
	var gotAuth, gotQuestion string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		var req struct {
			Question string `json:"question"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotQuestion = req.Question
		_ = json.NewEncoder(w).Encode(map[string]string{"text": "Занятия начинаются 1 сентября."})
	}))
	defer srv.Close()

	svc := NewAnswers(srv.URL, "secret-key", 5*time.Second)
	answer, err := svc.Ask(context.Background(), "  Когда начинаются занятия?  ")
	require.NoError(t, err)
	require.Equal(t, "Занятия начинаются 1 сентября.", answer)
	require.Equal(t, "Bearer secret-key", gotAuth)
	require.Equal(t, "Когда начинаются занятия?", gotQuestion, "question must be trimmed before sending")
}

func TestAnswersAskLegacyResponseField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"response": "ответ из старого поля"})
	}))
	defer srv.Close()

	svc := NewAnswers(srv.URL, "k", time.Second)
	answer, err := svc.Ask(context.Background(), "вопрос")
	require.NoError(t, err)
	require.Equal(t, "ответ из старого поля", answer)
}

func TestAnswersAskBlankQuestionSkipsNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	svc := NewAnswers(srv.URL, "k", time.Second)
	_, err := svc.Ask(context.Background(), "   ")
	require.ErrorIs(t, err, domain.ErrEmptyQuestion)
	require.False(t, called)
}

func TestAnswersAskBlankAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"text": "   "})
	}))
	defer srv.Close()

	svc := NewAnswers(srv.URL, "k", time.Second)
	_, err := svc.Ask(context.Background(), "вопрос")
	require.ErrorIs(t, err, domain.ErrEmptyAnswer)
}

func TestAnswersAskUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	svc := NewAnswers(srv.URL, "k", time.Second)
	_, err := svc.Ask(context.Background(), "вопрос")
	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrEmptyAnswer)
}

func TestAnswersAskUnreachable(t *testing.T) {
	svc := NewAnswers("http://127.0.0.1:1", "k", 500*time.Millisecond)
	_, err := svc.Ask(context.Background(), "вопрос")
	require.Error(t, err)
}
