package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

type categoriesResponse struct {
	Success    bool           `json:"success"`
	Categories map[int]string `json:"categories"`
}

type listingResponse struct {
	Success        bool              `json:"success"`
	Questions      []domain.Question `json:"questions"`
	TotalQuestions int               `json:"total_questions"`
	Categories     map[int]string    `json:"categories"`
}

type categoryQuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []domain.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory int               `json:"current_category"`
}

// quizQuestion carries the answer too; the client hides it until the
// player has guessed
type quizQuestion struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type quizResponse struct {
	Success  bool          `json:"success"`
	Question *quizQuestion `json:"question"`
}

type answerCheckResponse struct {
	Success bool   `json:"success"`
	Correct bool   `json:"correct"`
	Answer  string `json:"answer"`
}

// ErrorHandler renders every error as an ErrorResponse, keeping the status
// code of echo.HTTPError values and using 500 for anything else
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if he.Internal != nil {
			log.Printf("%s %s: %d: %v", c.Request().Method, c.Request().URL.Path, code, he.Internal)
		}
	} else {
		log.Printf("%s %s: unhandled error: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = c.JSON(code, ErrorResponse{
			Success: false,
			Error:   code,
			Message: http.StatusText(code),
		})
	}
	if writeErr != nil {
		log.Printf("failed to write error response: %v", writeErr)
	}
}

// httpError builds an HTTP error that keeps the cause for the log
func httpError(code int, cause error) *echo.HTTPError {
	he := echo.NewHTTPError(code)
	if cause != nil {
		he = he.SetInternal(cause)
	}
	return he
}
