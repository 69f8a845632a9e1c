package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/farhananowshin/SkillBridge/internal/errdefs"
	"github.com/farhananowshin/SkillBridge/internal/model"
)

type QuizHandler struct {
	quizService QuizService
}

func NewQuizHandler(quizService QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

type createQuizRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	TotalMarks  int32  `json:"total_marks"`
}

func (h *QuizHandler) Create(w http.ResponseWriter, r *http.Request) {
	courseID, err := parseUUIDParam(r, "courseID")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req createQuizRequest
	if err := decodeBody(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	quiz, err := h.quizService.CreateQuiz(r.Context(), &model.CreateQuizInput{
		CourseId:    courseID,
		Title:       req.Title,
		Description: req.Description,
		TotalMarks:  req.TotalMarks,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toQuizResponse(quiz))
}

func (h *QuizHandler) List(w http.ResponseWriter, r *http.Request) {
	courseID, err := parseUUIDParam(r, "courseID")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	quizzes, err := h.quizService.ListQuizzes(r.Context(), courseID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]*quizResponse, 0, len(quizzes))
	for _, q := range quizzes {
		out = append(out, toQuizResponse(q))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *QuizHandler) Get(w http.ResponseWriter, r *http.Request) {
	quizID, err := parseUUIDParam(r, "quizID")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	detail, err := h.quizService.GetQuizDetail(r.Context(), quizID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuizDetailResponse(detail))
}

type addQuestionRequest struct {
	Text  string `json:"text"`
	Order int32  `json:"order"`
}

func (h *QuizHandler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	quizID, err := parseUUIDParam(r, "quizID")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req addQuestionRequest
	if err := decodeBody(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	question, err := h.quizService.AddQuestion(r.Context(), &model.CreateQuestionInput{
		QuizId: quizID,
		Text:   req.Text,
		Order:  req.Order,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, &questionResponse{
		Id:    question.Id,
		Text:  question.Text,
		Order: question.Order,
	})
}

type addChoiceRequest struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

func (h *QuizHandler) AddChoice(w http.ResponseWriter, r *http.Request) {
	questionID, err := parseUUIDParam(r, "questionID")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req addChoiceRequest
	if err := decodeBody(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	choice, err := h.quizService.AddChoice(r.Context(), &model.CreateChoiceInput{
		QuestionId: questionID,
		Text:       req.Text,
		IsCorrect:  req.IsCorrect,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, &choiceResponse{Id: choice.Id, Text: choice.Text})
}

type submitAnswersRequest struct {
	Answers map[uuid.UUID]uuid.UUID `json:"answers"`
}

type alreadyTakenResponse struct {
	Detail string              `json:"detail"`
	Result *quizResultResponse `json:"result"`
}

// Submit records the caller's one attempt. A repeat submission gets a
// 409 carrying the original result so clients can show the score
// instead of an error page.
func (h *QuizHandler) Submit(w http.ResponseWriter, r *http.Request) {
	quizID, err := parseUUIDParam(r, "quizID")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req submitAnswersRequest
	if err := decodeBody(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	result, err := h.quizService.SubmitAnswers(r.Context(), &model.SubmitAnswersInput{
		QuizId:  quizID,
		Answers: req.Answers,
	})
	if err != nil {
		if errors.Is(err, errdefs.ErrAlreadyExists) && result != nil {
			writeJSON(w, http.StatusConflict, &alreadyTakenResponse{
				Detail: "already_taken",
				Result: toQuizResultResponse(result),
			})
			return
		}
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toQuizResultResponse(result))
}

func (h *QuizHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	quizID, err := parseUUIDParam(r, "quizID")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	result, err := h.quizService.GetResult(r.Context(), quizID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuizResultResponse(result))
}
