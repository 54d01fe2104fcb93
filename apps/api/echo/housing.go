package echoapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/campushub/portal/core"
	"github.com/campushub/portal/core/housing"
	corpusdb "github.com/campushub/portal/storage/corpus"
)

type housingApi struct {
	svc        housing.ServiceInterface
	validate   *validator.Validate
	translator ut.Translator
}

func registerHousingAPI(
	g *echo.Group,
	svc housing.ServiceInterface,
	validate *validator.Validate,
	translator ut.Translator,
) {
	api := housingApi{
		svc:        svc,
		validate:   validate,
		translator: translator,
	}

	hg := g.Group("/housing")
	hg.GET("/dorms", api.listDorms)
	hg.GET("/dorms/:id", api.retrieveDorm)

	og := g.Group("/onboarding")
	og.POST("/ai-questions", api.aiQuestions)
}

// Bindings

type (
	// QuizResponse is one submitted quiz answer. question_id may arrive as a
	// JSON number or string; unparsable ids are skipped, not rejected.
	QuizResponse struct {
		QuestionID interface{} `json:"question_id"`
		Answer     string      `json:"answer" validate:"required"`
	}

	AIQuestionsRequest struct {
		Responses []QuizResponse `json:"responses" validate:"required,min=1,dive"`
	}

	AIQuestionsResponse struct {
		Recommendations []housing.Recommendation `json:"recommendations"`
	}
)

func (r *AIQuestionsRequest) Validate(validate *validator.Validate) error {
	for i := range r.Responses {
		r.Responses[i].Answer = core.CleanString(r.Responses[i].Answer)
	}
	if err := validate.Struct(r); err != nil {
		return err
	}

	// answering the same question twice is ambiguous; reject rather than
	// letting the last answer silently win
	seen := make(map[int]bool, len(r.Responses))
	for _, resp := range r.Responses {
		id, ok := parseQuestionID(resp.QuestionID)
		if !ok {
			continue
		}
		if seen[id] {
			return core.NewValidationError(
				errors.New("duplicate quiz responses"),
				core.FieldError{Field: "question_id", Error: fmt.Sprintf("question %d answered more than once", id)},
			)
		}
		seen[id] = true
	}
	return nil
}

// Answers builds the quiz answers map, parsing question ids as integers and
// silently skipping invalid ones.
func (r *AIQuestionsRequest) Answers() housing.Answers {
	answers := make(housing.Answers, len(r.Responses))
	for _, resp := range r.Responses {
		id, ok := parseQuestionID(resp.QuestionID)
		if !ok {
			continue
		}
		answers[id] = resp.Answer
	}
	return answers
}

func parseQuestionID(v interface{}) (int, bool) {
	switch id := v.(type) {
	case float64: // JSON numbers decode as float64
		n := int(id)
		if float64(n) != id { // non-integral ids are invalid, not truncated
			return 0, false
		}
		return n, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(id))
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// Handlers

func (api *housingApi) aiQuestions(ctx echo.Context) error {
	var data AIQuestionsRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AIQuestionsRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	recs, err := api.svc.Recommendations(data.Answers())
	if err != nil {
		// the corpus never reloads, so a failed load fails every future
		// request as well; shut down instead of limping
		var loadErr *corpusdb.LoadError
		if errors.As(err, &loadErr) {
			return core.NewShutdownError(loadErr.Error())
		}
		return errors.Wrap(err, "computing recommendations")
	}

	return ctx.JSON(http.StatusOK, AIQuestionsResponse{Recommendations: recs})
}

func (api *housingApi) listDorms(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, housing.Dorms)
}

func (api *housingApi) retrieveDorm(ctx echo.Context) error {
	id := ctx.Param("id")
	for _, dorm := range housing.Dorms {
		if dorm.ID == id {
			return ctx.JSON(http.StatusOK, dorm)
		}
	}
	return errHttpNotFound
}
