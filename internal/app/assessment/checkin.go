package assessment

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/PabloGalante/mindmesh/internal/domain"
)

var (
	ErrCheckinComplete = errors.New("check-in already complete")
	ErrInvalidAnswer   = errors.New("invalid answer")
)

// Checkin walks the questionnaire one question at a time, in order.
type Checkin struct {
	questions []domain.Question
	current   int
	response  *domain.QuestionnaireResponse
}

func NewCheckin() *Checkin {
	return &Checkin{
		questions: Questions(),
		response:  domain.NewQuestionnaireResponse(),
	}
}

// Current returns the question waiting for an answer. ok is false once the
// check-in is complete.
func (c *Checkin) Current() (q domain.Question, ok bool) {
	if c.Done() {
		return domain.Question{}, false
	}
	return c.questions[c.current], true
}

// Answer validates a against the current question, records it and moves on.
func (c *Checkin) Answer(a domain.Answer) error {
	q, ok := c.Current()
	if !ok {
		return ErrCheckinComplete
	}

	switch q.Kind {
	case domain.KindScale:
		if a.Scale < 1 || a.Scale > 10 {
			return fmt.Errorf("%w: %s expects 1-10, got %d", ErrInvalidAnswer, q.ID, a.Scale)
		}
		a = domain.ScaleAnswer(a.Scale)
	case domain.KindChoice:
		if !slices.Contains(q.Options, a.Text) {
			return fmt.Errorf("%w: %q is not an option of %s", ErrInvalidAnswer, a.Text, q.ID)
		}
		a = domain.ChoiceAnswer(a.Text)
	case domain.KindText:
		a = domain.TextAnswer(strings.TrimSpace(a.Text))
	}

	if err := c.response.Set(q.ID, a); err != nil {
		return err
	}

	c.current++
	if c.Done() {
		c.response.Freeze()
	}
	return nil
}

// AnswerInput parses typed input for the current question and answers it.
// Choice questions accept the option text (any case) or its 1-based number.
func (c *Checkin) AnswerInput(input string) error {
	q, ok := c.Current()
	if !ok {
		return ErrCheckinComplete
	}

	input = strings.TrimSpace(input)
	switch q.Kind {
	case domain.KindScale:
		n, err := strconv.Atoi(input)
		if err != nil {
			return fmt.Errorf("%w: %q is not a number", ErrInvalidAnswer, input)
		}
		return c.Answer(domain.ScaleAnswer(n))
	case domain.KindChoice:
		if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(q.Options) {
			return c.Answer(domain.ChoiceAnswer(q.Options[n-1]))
		}
		for _, opt := range q.Options {
			if strings.EqualFold(opt, input) {
				return c.Answer(domain.ChoiceAnswer(opt))
			}
		}
		return fmt.Errorf("%w: %q is not an option of %s", ErrInvalidAnswer, input, q.ID)
	default:
		return c.Answer(domain.TextAnswer(input))
	}
}

func (c *Checkin) Done() bool {
	return c.current >= len(c.questions)
}

// Progress reports how many questions have been answered out of the total.
func (c *Checkin) Progress() (answered, total int) {
	return c.current, len(c.questions)
}

func (c *Checkin) Response() *domain.QuestionnaireResponse {
	return c.response
}

// Result scores the answers given so far.
func (c *Checkin) Result() domain.ScoreResult {
	return Score(c.response)
}

// Reset discards every answer and goes back to the first question.
func (c *Checkin) Reset() {
	c.current = 0
	c.response = domain.NewQuestionnaireResponse()
}
