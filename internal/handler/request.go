package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// FlexibleInt accepts an integer given either as a JSON number or as a
// numeric string. Web forms and category map keys arrive as strings.
type FlexibleInt int

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if strings.HasPrefix(raw, `"`) {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
	}

	n, err := parseInt(raw)
	if err != nil {
		return fmt.Errorf("invalid integer %s", data)
	}
	*f = FlexibleInt(n)
	return nil
}

// parseInt also accepts floats with no fractional part, such as 2.0
func parseInt(raw string) (int, error) {
	if n, err := strconv.Atoi(raw); err == nil {
		return n, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
		return 0, strconv.ErrRange
	}
	return int(v), nil
}

// CreateQuestionRequest represents the request to create a new question.
// Zero values count as missing.
type CreateQuestionRequest struct {
	Question   string      `json:"question" validate:"required"`
	Answer     string      `json:"answer" validate:"required"`
	Difficulty FlexibleInt `json:"difficulty" validate:"required"`
	Category   FlexibleInt `json:"category" validate:"required"`
}

// SearchQuestionsRequest represents a question search
type SearchQuestionsRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// PlayQuizRequest represents a request for the next quiz question. Absent
// fields stay nil.
type PlayQuizRequest struct {
	PreviousQuestions *[]FlexibleInt `json:"previous_questions"`
	QuizCategory      *QuizCategory  `json:"quiz_category"`
}

// QuizCategory selects the quiz category; id 0 means all categories
type QuizCategory struct {
	ID   *FlexibleInt `json:"id"`
	Type string       `json:"type,omitempty"`
}

// CheckAnswerRequest represents a guess for a quiz question
type CheckAnswerRequest struct {
	QuestionID FlexibleInt `json:"question_id" validate:"required"`
	Guess      string      `json:"guess"`
}

// queryPage reads the page query parameter, falling back to the first page
func queryPage(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func toInts(values []FlexibleInt) []int {
	ints := make([]int, len(values))
	for i, v := range values {
		ints[i] = int(v)
	}
	return ints
}
