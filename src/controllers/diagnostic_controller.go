package controllers

import (
	"encoding/json"

	"Backend-Curadoria-AF/src/models"
	"Backend-Curadoria-AF/src/services/analytics"
	"Backend-Curadoria-AF/src/services/questions"
	"Backend-Curadoria-AF/src/services/sessions"
	"Backend-Curadoria-AF/src/services/uploads"
	"Backend-Curadoria-AF/src/utils"

	"github.com/gofiber/fiber/v2"
)

// Sessions is the shared in-memory funnel store. main starts its sweeper.
var Sessions = sessions.NewStore(analytics.FunnelNotifier{})

// sessionView is the wire shape of a funnel snapshot: the session plus
// the question currently on screen and its stored answer, so going back
// can pre-populate the previous choice.
type sessionView struct {
	models.Session
	Question      *models.Question `json:"question,omitempty"`
	StoredAnswer  *models.Answer   `json:"storedAnswer,omitempty"`
	QuestionCount int              `json:"questionCount"`
	PhaseName     string           `json:"phaseName,omitempty"`
}

func viewOf(s models.Session) sessionView {
	view := sessionView{Session: s, QuestionCount: questions.Count()}
	if s.Step == models.StepQuestions {
		if q, ok := questions.At(s.Index); ok {
			view.Question = &q
			view.PhaseName = questions.PhaseNames[q.Phase]
			if a, ok := s.Answers[q.ID]; ok {
				view.StoredAnswer = &a
			}
		}
	}
	return view
}

// CreateSession godoc
// @Summary      Open a new diagnostic session
// @Description  Creates a session at the intro step
// @Tags         diagnostic
// @Produce      json
// @Success      201  {object}  models.Session
// @Router       /diagnostic/sessions [post]
func CreateSession(c *fiber.Ctx) error {
	s := Sessions.Create()
	return c.Status(fiber.StatusCreated).JSON(viewOf(*s))
}

// GetSession godoc
// @Summary      Get the current funnel state
// @Tags         diagnostic
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200  {object}  models.Session
// @Failure      404  {object}  models.ErrorResponse
// @Router       /diagnostic/sessions/{id} [get]
func GetSession(c *fiber.Ctx) error {
	s, err := Sessions.Get(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Session not found")
	}
	return c.JSON(viewOf(s))
}

// StartSession godoc
// @Summary      Leave the intro and show the first question
// @Tags         diagnostic
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200  {object}  models.Session
// @Failure      404  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /diagnostic/sessions/{id}/start [post]
func StartSession(c *fiber.Ctx) error {
	s, err := Sessions.Start(c.Params("id"))
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(viewOf(s))
}

type answerRequest struct {
	QuestionID int           `json:"questionId"`
	Answer     models.Answer `json:"answer"`
}

// AnswerQuestion godoc
// @Summary      Confirm the answer for the current question and advance
// @Description  Accepts JSON, or multipart/form-data when the question uploads brand files
// @Tags         diagnostic
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        body body controllers.answerRequest true "Answer"
// @Success      200  {object}  models.Session
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /diagnostic/sessions/{id}/answers [post]
func AnswerQuestion(c *fiber.Ctx) error {
	var req answerRequest
	var fileURLs []string

	if form, err := c.MultipartForm(); err == nil && form != nil {
		if err := parseMultipartAnswer(form.Value, &req); err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
		}
		if files := form.File["files"]; len(files) > 0 {
			urls, err := uploads.SaveBrandFiles(files)
			if err != nil {
				return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to store files: "+err.Error())
			}
			fileURLs = urls
		}
	} else if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	s, err := Sessions.Advance(c.Params("id"), req.QuestionID, req.Answer, fileURLs)
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(viewOf(s))
}

func parseMultipartAnswer(values map[string][]string, req *answerRequest) error {
	if raw := first(values["payload"]); raw != "" {
		return json.Unmarshal([]byte(raw), req)
	}

	// Bare form fields: question id plus a JSON-encoded answer.
	if raw := first(values["questionId"]); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.QuestionID); err != nil {
			return err
		}
	}
	if raw := first(values["answer"]); raw != "" {
		return json.Unmarshal([]byte(raw), &req.Answer)
	}
	return nil
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// GoBack godoc
// @Summary      Return to the previous question
// @Description  No-op on the first question. The stored answer is kept for pre-population.
// @Tags         diagnostic
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200  {object}  models.Session
// @Failure      404  {object}  models.ErrorResponse
// @Router       /diagnostic/sessions/{id}/back [post]
func GoBack(c *fiber.Ctx) error {
	s, err := Sessions.Retreat(c.Params("id"))
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(viewOf(s))
}

type confirmProductsRequest struct {
	Selected []models.SelectedProduct `json:"selected"`
}

// ConfirmProducts godoc
// @Summary      Confirm the product picks and run the diagnostic
// @Description  An empty selection is a valid skip. The response carries the derived result.
// @Tags         diagnostic
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        body body controllers.confirmProductsRequest true "Selected products"
// @Success      200  {object}  models.Session
// @Failure      404  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /diagnostic/sessions/{id}/products [post]
func ConfirmProducts(c *fiber.Ctx) error {
	var req confirmProductsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	s, err := Sessions.ConfirmProducts(c.Params("id"), req.Selected)
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(viewOf(s))
}

type selectPathRequest struct {
	Title string `json:"title"`
}

// SelectPath godoc
// @Summary      Choose a curation path and open the capture form
// @Tags         diagnostic
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        body body controllers.selectPathRequest true "Path title"
// @Success      200  {object}  models.Session
// @Failure      404  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /diagnostic/sessions/{id}/path [post]
func SelectPath(c *fiber.Ctx) error {
	var req selectPathRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	s, err := Sessions.SelectPath(c.Params("id"), req.Title)
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(viewOf(s))
}

func sessionError(c *fiber.Ctx, err error) error {
	switch err {
	case sessions.ErrSessionNotFound:
		return utils.HandleError(c, fiber.StatusNotFound, "Session not found")
	case sessions.ErrInvalidStep:
		return utils.HandleError(c, fiber.StatusConflict, "Action not allowed in the current step")
	case sessions.ErrUnknownQuestion:
		return utils.HandleError(c, fiber.StatusBadRequest, "Unknown question id")
	default:
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
}
