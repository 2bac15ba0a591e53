package http

import (
	"encoding/json"

	"messenger-selfcheck/internal/ports/input"
	"messenger-selfcheck/internal/ports/output"
	"messenger-selfcheck/pkg/validator"

	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// HTTPHandler struct - Primary/Driving adapter for HTTP
type HTTPHandler struct {
	results   input.ResultService
	messenger output.MessengerClient
	db        *gorm.DB
	validator validator.Validator
}

// New func - Creates new HTTP handler
func New(results input.ResultService, messenger output.MessengerClient, db *gorm.DB) *HTTPHandler {
	return &HTTPHandler{
		results:   results,
		messenger: messenger,
		db:        db,
		validator: validator.New(),
	}
}

// HealthCheck func
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	sqlDB, err := hdl.db.DB()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}

	err = sqlDB.Ping()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}

// GetResults func
/* list stored assessment results */
// GetResults godoc
// @Summary List assessment results
// @Description Recent assessment results for one sender, newest first
// @Tags Results
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/results [get]
// @Produce json
// @param sender_id query string true "sender id"
// @param limit query int false "limit"
func (hdl *HTTPHandler) GetResults(c *fiber.Ctx) error {
	var condition ResultsQueryRequest
	if err := c.QueryParser(&condition); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	if err := hdl.validator.ValidateStruct(condition); err != nil {
		msg := ResponseBody{
			Status: BadRequest,
		}
		msg.Status.Message = []string{
			err.Error(),
		}
		return c.Status(fiber.StatusBadRequest).JSON(msg)
	}

	results, err := hdl.results.RecentResults(condition.SenderID, condition.Limit)
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}

	data := make([]ResultResponse, 0, len(results))
	for _, result := range results {
		data = append(data, ResultResponse{
			ID:        result.ID,
			SenderID:  result.SenderID,
			Severity:  result.Severity,
			Answers:   json.RawMessage(result.Answers),
			CreatedAt: result.CreatedAt,
		})
	}

	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: data})
}

// InitProfile func
/* install the Messenger greeting and Get Started payload */
// InitProfile godoc
// @Summary Init Messenger profile
// @Description Sets the localized greeting and the get_started payload
// @Tags Messenger
// @Success 200 {object} map[string]interface{}
// @Router /init [get]
// @Produce json
func (hdl *HTTPHandler) InitProfile(c *fiber.Ctx) error {
	if err := hdl.messenger.SetGreeting(c.Context()); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}

// SetupMenu func
/* install the Messenger persistent menu */
// SetupMenu godoc
// @Summary Setup persistent menu
// @Description Installs the persistent menu with restart and contact entries
// @Tags Messenger
// @Success 200 {object} map[string]interface{}
// @Router /menu [get]
// @Produce json
func (hdl *HTTPHandler) SetupMenu(c *fiber.Ctx) error {
	if err := hdl.messenger.SetPersistentMenu(c.Context()); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}
