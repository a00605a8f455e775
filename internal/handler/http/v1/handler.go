package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/shenikar/panic_alert_system/internal/config"
	"github.com/shenikar/panic_alert_system/internal/models"
	"github.com/shenikar/panic_alert_system/internal/service"
	"github.com/shenikar/panic_alert_system/pkg/i18n"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	alertService service.PanicAlertService
	translator   *i18n.Translator
	logger       *logrus.Logger
	validate     *validator.Validate
	upgrader     websocket.Upgrader
	cfg          *config.Config
}

func NewHandler(alertService service.PanicAlertService, translator *i18n.Translator, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		alertService: alertService,
		translator:   translator,
		logger:       logger,
		validate:     validator.New(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		cfg: cfg,
	}
}

// @Summary Trigger a panic alert
// @Description Record a panic alert and notify responders. Location is optional. Requires session token.
// @Tags Panic
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param alert body TriggerAlertRequest false "Device location"
// @Success 201 {object} TriggerAlertResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Alert could not be recorded"
// @Router /panic-alerts/trigger [post]
func (h *Handler) triggerAlert(c *gin.Context) {
	session := mustSession(c)
	log := h.logger.WithField("method", "triggerAlert").WithField("user_id", session.UserID)

	var input TriggerAlertRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			log.WithError(err).Warn("Failed to bind JSON")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if err := h.validate.Struct(input); err != nil {
			log.WithError(err).Warn("Validation failed")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	response, err := h.runTrigger(c.Request.Context(), session, DTOToLocationModel(input.Location))
	if err != nil {
		log.WithError(err).Error("Failed to trigger panic alert in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": h.translator.T(session.Language, i18n.MsgAlertFailed, nil)})
		return
	}
	c.JSON(http.StatusCreated, response)
}

// runTrigger запускает конвейер и переводит предупреждения на язык сессии
func (h *Handler) runTrigger(ctx context.Context, session models.Session, fix *models.Location) (*TriggerAlertResponse, error) {
	result, err := h.alertService.Trigger(ctx, session, models.TriggerRequest{Fix: fix})
	if err != nil {
		return nil, err
	}
	notices := make([]string, len(result.Notices))
	for i, id := range result.Notices {
		notices[i] = h.translator.T(session.Language, id, nil)
	}
	message := h.translator.T(session.Language, i18n.MsgAlertSent, map[string]any{"Sent": result.MessagesSent})
	return ModelToTriggerResponse(result, message, notices), nil
}

// @Summary Report device location
// @Description Store a device position fix for the current user. Requires session token.
// @Tags Location
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param location body LocationRequest true "Device location"
// @Success 200 {object} LocationResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /location [post]
func (h *Handler) reportLocation(c *gin.Context) {
	session := mustSession(c)
	log := h.logger.WithField("method", "reportLocation")

	var input LocationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stored, err := h.alertService.StoreLocation(c.Request.Context(), session, *DTOToLocationModel(&input))
	if err != nil {
		log.WithError(err).Warn("Failed to store location")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ModelToLocationResponse(stored))
}

// @Summary List recent panic alerts
// @Description Get the most recent panic alerts visible to the operator. Requires operator session.
// @Tags Panic
// @Produce json
// @Security BearerAuth
// @Success 200 {array} AlertResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /panic-alerts [get]
func (h *Handler) listInbox(c *gin.Context) {
	log := h.logger.WithField("method", "listInbox")

	alerts, err := h.alertService.ListInbox(c.Request.Context(), mustSession(c))
	if err != nil {
		log.WithError(err).Error("Failed to list panic alerts from service")
		h.writeServiceError(c, err, i18n.MsgInternalError)
		return
	}
	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary Query panic alerts
// @Description Filter panic alerts by status, time range and free-text search. Stats are counted over the returned rows. Requires operator session.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter" Enums(all, active, responded, resolved, false_alarm)
// @Param range query string false "Time range" Enums(24h, 7d, 30d, all)
// @Param search query string false "Search in address, notes and reporter id"
// @Param limit query int false "Maximum rows"
// @Success 200 {object} AdminQueryResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /panic-alerts/admin [get]
func (h *Handler) queryAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "queryAlerts")

	var input AdminQueryRequest
	if err := c.ShouldBindQuery(&input); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.alertService.QueryAlerts(c.Request.Context(), mustSession(c), DTOToAlertFilter(input))
	if err != nil {
		log.WithError(err).Error("Failed to query panic alerts from service")
		h.writeServiceError(c, err, i18n.MsgInternalError)
		return
	}
	c.JSON(http.StatusOK, AdminQueryResponse{
		Alerts: ModelsToAlertResponses(result.Alerts),
		Stats:  result.Stats,
	})
}

// @Summary Update panic alert status
// @Description Move an alert through active, responded, resolved and false_alarm. Pass expected_updated_at to reject concurrent edits. Requires operator session.
// @Tags Panic
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Alert ID"
// @Param status body UpdateStatusRequest true "Status update"
// @Success 200 {object} UpdateStatusResponse
// @Failure 400 {object} map[string]string "Invalid alert ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 409 {object} map[string]string "Alert was modified concurrently"
// @Failure 422 {object} map[string]string "Transition not allowed"
// @Router /panic-alerts/{id}/status [patch]
func (h *Handler) updateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	session := mustSession(c)
	log := h.logger.WithField("method", "updateStatus").WithField("id", id)

	var input UpdateStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := models.AlertStatus(input.Status)
	updated, err := h.alertService.UpdateStatus(c.Request.Context(), session, id, status, input.Notes, input.ExpectedUpdatedAt)
	if err != nil {
		log.WithError(err).Warn("Failed to update panic alert status in service")
		h.writeServiceError(c, err, i18n.MsgStatusUpdateFailed)
		return
	}
	c.JSON(http.StatusOK, UpdateStatusResponse{
		Alert:   ModelToAlertResponse(updated),
		Message: h.translator.T(session.Language, i18n.MsgStatusUpdated, map[string]any{"Status": status}),
	})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// writeServiceError выбирает HTTP статус по sentinel-ошибке сервиса и переводит текст ошибки.
// fallbackID - сообщение для непредвиденных ошибок.
func (h *Handler) writeServiceError(c *gin.Context, err error, fallbackID string) {
	var lang string
	if v, ok := c.Get(sessionContextKey); ok {
		lang = v.(models.Session).Language
	}

	status, messageID := http.StatusInternalServerError, fallbackID
	switch {
	case errors.Is(err, models.ErrForbidden):
		status, messageID = http.StatusForbidden, i18n.MsgForbidden
	case errors.Is(err, models.ErrAlertNotFound):
		status, messageID = http.StatusNotFound, i18n.MsgAlertNotFound
	case errors.Is(err, models.ErrConflict):
		status, messageID = http.StatusConflict, i18n.MsgAlertConflict
	case errors.Is(err, models.ErrInvalidTransition):
		status, messageID = http.StatusUnprocessableEntity, i18n.MsgInvalidTransition
	}
	c.JSON(status, gin.H{"error": h.translator.T(lang, messageID, nil)})
}
