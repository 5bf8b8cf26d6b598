package handler

import (
	"encoding/json"
	"net/http"

	"framequiz/internal/model"
	"framequiz/internal/service"
)

// QuizHandler handles quiz lifecycle endpoints
type QuizHandler struct {
	quizSvc *service.QuizService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quizSvc *service.QuizService) *QuizHandler {
	return &QuizHandler{quizSvc: quizSvc}
}

// GenerateRequest is the request body for generating a question set
type GenerateRequest struct {
	Count int `json:"count"`
}

// Generate handles POST /api/quiz/generate
func (h *QuizHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	questions, err := h.quizSvc.GenerateQuestions(r.Context(), req.Count)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{"questions": questions})
}

// StartRequest is the request body for starting a quiz session
type StartRequest struct {
	UserID      string   `json:"userId"`
	Username    string   `json:"username"`
	PfpURL      string   `json:"pfpUrl"`
	QuestionIDs []string `json:"questionIds"`
}

// Start handles POST /api/quiz/start
func (h *QuizHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sessionID, questions, err := h.quizSvc.StartQuiz(r.Context(), req.UserID, req.Username, req.PfpURL, req.QuestionIDs)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]interface{}{
		"sessionId": sessionID,
		"questions": questions,
	})
}

// SubmitRequest is the request body for submitting quiz answers
type SubmitRequest struct {
	SessionID string                  `json:"sessionId"`
	Answers   []model.SubmittedAnswer `json:"answers"`
}

// Submit handles POST /api/quiz/submit
func (h *QuizHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.quizSvc.SubmitQuiz(r.Context(), req.SessionID, req.Answers)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{"result": result})
}
