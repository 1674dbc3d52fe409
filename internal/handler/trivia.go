package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// TriviaHandler handles the question bank and quiz HTTP requests
type TriviaHandler struct {
	triviaService *service.TriviaService
}

// NewTriviaHandler creates a new trivia handler
func NewTriviaHandler(triviaService *service.TriviaService) *TriviaHandler {
	return &TriviaHandler{
		triviaService: triviaService,
	}
}

// Register registers the trivia routes
func (h *TriviaHandler) Register(e *echo.Echo) {
	e.GET("/categories", h.GetCategories)
	e.GET("/categories/:category_id/questions", h.GetCategoryQuestions)
	e.GET("/questions", h.GetQuestions)
	e.POST("/questions", h.CreateQuestion)
	e.POST("/questions/submit", h.CreateQuestion)
	e.POST("/questions/search", h.SearchQuestions)
	e.DELETE("/questions/:id", h.DeleteQuestion)
	e.POST("/quizzes/play", h.PlayQuiz)
	e.POST("/quizzes/check", h.CheckAnswer)
}

// GetCategories godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {object} categoriesResponse
// @Failure 404 {object} ErrorResponse
// @Router /categories [get]
func (h *TriviaHandler) GetCategories(c echo.Context) error {
	categories, err := h.triviaService.ListCategories(c.Request().Context())
	if err != nil {
		if errors.Is(err, service.ErrNoCategories) {
			return httpError(http.StatusNotFound, nil)
		}
		return err
	}

	return c.JSON(http.StatusOK, categoriesResponse{
		Success:    true,
		Categories: categories,
	})
}

// GetQuestions godoc
// @Summary List a page of questions
// @Tags questions
// @Produce json
// @Param page query int false "Page number, 10 questions per page"
// @Success 200 {object} listingResponse
// @Failure 404 {object} ErrorResponse
// @Router /questions [get]
func (h *TriviaHandler) GetQuestions(c echo.Context) error {
	listing, err := h.triviaService.ListQuestions(c.Request().Context(), queryPage(c))
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			return httpError(http.StatusNotFound, nil)
		}
		return err
	}

	return c.JSON(http.StatusOK, newListingResponse(listing))
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Description Any failure, including an unknown id, is reported as 422
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} listingResponse
// @Failure 422 {object} ErrorResponse
// @Router /questions/{id} [delete]
func (h *TriviaHandler) DeleteQuestion(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return httpError(http.StatusNotFound, nil)
	}

	ctx := c.Request().Context()
	if err := h.triviaService.DeleteQuestion(ctx, id); err != nil {
		return httpError(http.StatusUnprocessableEntity, err)
	}

	listing, err := h.triviaService.ListQuestions(ctx, queryPage(c))
	if err != nil {
		return httpError(http.StatusUnprocessableEntity, err)
	}

	return c.JSON(http.StatusOK, newListingResponse(listing))
}

// CreateQuestion godoc
// @Summary Create a question
// @Tags questions
// @Accept json
// @Produce json
// @Param question body CreateQuestionRequest true "Question data"
// @Success 200 {object} listingResponse
// @Failure 422 {object} ErrorResponse
// @Router /questions [post]
// @Router /questions/submit [post]
func (h *TriviaHandler) CreateQuestion(c echo.Context) error {
	var req CreateQuestionRequest
	if err := c.Bind(&req); err != nil {
		return httpError(http.StatusUnprocessableEntity, err)
	}

	if err := c.Validate(&req); err != nil {
		return httpError(http.StatusUnprocessableEntity, nil)
	}

	ctx := c.Request().Context()
	_, err := h.triviaService.CreateQuestion(ctx, service.CreateQuestionInput{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   int(req.Category),
		Difficulty: int(req.Difficulty),
	})
	if err != nil {
		return httpError(http.StatusUnprocessableEntity, err)
	}

	listing, err := h.triviaService.ListQuestions(ctx, queryPage(c))
	if err != nil {
		return httpError(http.StatusUnprocessableEntity, err)
	}

	return c.JSON(http.StatusOK, newListingResponse(listing))
}

// SearchQuestions godoc
// @Summary Search questions by text
// @Description Case-insensitive substring match on the question text
// @Tags questions
// @Accept json
// @Produce json
// @Param search body SearchQuestionsRequest true "Search term"
// @Param page query int false "Page number"
// @Success 200 {object} listingResponse
// @Failure 404 {object} ErrorResponse
// @Router /questions/search [post]
func (h *TriviaHandler) SearchQuestions(c echo.Context) error {
	var req SearchQuestionsRequest
	if err := c.Bind(&req); err != nil {
		return httpError(http.StatusBadRequest, err)
	}

	listing, err := h.triviaService.SearchQuestions(c.Request().Context(), req.SearchTerm, queryPage(c))
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			return httpError(http.StatusNotFound, nil)
		}
		return err
	}

	return c.JSON(http.StatusOK, newListingResponse(listing))
}

// GetCategoryQuestions handles listing one category's questions
func (h *TriviaHandler) GetCategoryQuestions(c echo.Context) error {
	categoryID, err := strconv.Atoi(c.Param("category_id"))
	if err != nil {
		return httpError(http.StatusNotFound, nil)
	}

	result, err := h.triviaService.QuestionsByCategory(c.Request().Context(), categoryID, queryPage(c))
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return httpError(http.StatusNotFound, nil)
		}
		return err
	}

	return c.JSON(http.StatusOK, categoryQuestionsResponse{
		Success:         true,
		Questions:       result.Questions,
		TotalQuestions:  result.TotalQuestions,
		CurrentCategory: result.CurrentCategory,
	})
}

// PlayQuiz serves a random question the player has not seen yet. question is
// null once the pool is exhausted.
func (h *TriviaHandler) PlayQuiz(c echo.Context) error {
	var req PlayQuizRequest
	if err := c.Bind(&req); err != nil {
		return httpError(http.StatusBadRequest, err)
	}

	if req.PreviousQuestions == nil || req.QuizCategory == nil || req.QuizCategory.ID == nil {
		return httpError(http.StatusBadRequest, nil)
	}

	question, err := h.triviaService.PlayQuiz(
		c.Request().Context(),
		toInts(*req.PreviousQuestions),
		int(*req.QuizCategory.ID),
	)
	if err != nil {
		return httpError(http.StatusBadRequest, err)
	}

	resp := quizResponse{Success: true}
	if question != nil {
		resp.Question = &quizQuestion{
			ID:       question.ID,
			Question: question.Question,
			Answer:   question.Answer,
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// CheckAnswer handles grading a quiz guess
func (h *TriviaHandler) CheckAnswer(c echo.Context) error {
	var req CheckAnswerRequest
	if err := c.Bind(&req); err != nil {
		return httpError(http.StatusBadRequest, err)
	}

	if err := c.Validate(&req); err != nil {
		return httpError(http.StatusBadRequest, nil)
	}

	check, err := h.triviaService.CheckAnswer(c.Request().Context(), int(req.QuestionID), req.Guess)
	if err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			return httpError(http.StatusNotFound, nil)
		}
		return err
	}

	return c.JSON(http.StatusOK, answerCheckResponse{
		Success: true,
		Correct: check.Correct,
		Answer:  check.Answer,
	})
}

func newListingResponse(listing *service.QuestionListing) listingResponse {
	return listingResponse{
		Success:        true,
		Questions:      listing.Questions,
		TotalQuestions: listing.TotalQuestions,
		Categories:     listing.Categories,
	}
}
