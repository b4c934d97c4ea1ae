package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuizCreateAndList(t *testing.T) {
	router, _ := newTestServer(t)

	register(t, router, "b@x.com", "Faculty B", "password123", "faculty")
	facultyToken := login(t, router, "b@x.com", "password123")
	register(t, router, "a@x.com", "Student A", "password123", "student")
	studentToken := login(t, router, "a@x.com", "password123")

	// Questions are opaque documents; whatever shape arrives is stored.
	body := map[string]interface{}{
		"title":       "Midterm",
		"description": "chapters 1-4",
		"time_limit":  45,
		"questions": []map[string]interface{}{
			{
				"question":       "What is 2+2?",
				"type":           "multiple_choice",
				"options":        []string{"3", "4", "5"},
				"correct_answer": "4",
			},
			{
				"question":    "Explain gradient descent.",
				"type":        "open_ended",
				"extra_field": "kept verbatim",
				"nested":      map[string]interface{}{"depth": 2},
			},
		},
	}

	rec := doJSON(router, http.MethodPost, "/api/quizzes", facultyToken, body)
	assert.Equal(t, http.StatusOK, rec.Code)

	var created QuizResponse
	decodeBody(t, rec, &created)
	assert.Equal(t, "Midterm", created.Title)
	assert.Equal(t, "Faculty B", created.CreatorName)
	assert.NotNil(t, created.TimeLimit)
	assert.Equal(t, 45, *created.TimeLimit)
	assert.Len(t, created.Questions, 2)
	assert.Equal(t, "kept verbatim", created.Questions[1]["extra_field"])
	assert.True(t, created.IsActive)

	rec = doJSON(router, http.MethodGet, "/api/quizzes", studentToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var listed []QuizResponse
	decodeBody(t, rec, &listed)
	assert.Len(t, listed, 1)
	assert.Equal(t, "Faculty B", listed[0].CreatorName)
	assert.Len(t, listed[0].Questions, 2)
}

func TestQuizCreateForbiddenForStudents(t *testing.T) {
	router, _ := newTestServer(t)

	register(t, router, "a@x.com", "Student A", "password123", "student")
	token := login(t, router, "a@x.com", "password123")

	rec := doJSON(router, http.MethodPost, "/api/quizzes", token, map[string]interface{}{
		"title": "Sneaky Quiz",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestQuizCreateWithoutQuestions(t *testing.T) {
	router, _ := newTestServer(t)

	register(t, router, "b@x.com", "Faculty B", "password123", "faculty")
	token := login(t, router, "b@x.com", "password123")

	rec := doJSON(router, http.MethodPost, "/api/quizzes", token, map[string]interface{}{
		"title": "Placeholder",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	var created QuizResponse
	decodeBody(t, rec, &created)
	assert.NotNil(t, created.Questions)
	assert.Len(t, created.Questions, 0)
	assert.Nil(t, created.TimeLimit)
}
