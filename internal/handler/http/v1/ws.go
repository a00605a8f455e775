package v1

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/shenikar/panic_alert_system/internal/models"
	"github.com/shenikar/panic_alert_system/internal/trigger"
	"github.com/shenikar/panic_alert_system/pkg/i18n"
	"github.com/sirupsen/logrus"
)

const (
	wsWriteTimeout = 10 * time.Second
	wsPongTimeout  = 60 * time.Second
	wsPingInterval = 54 * time.Second
	wsMaxFrameSize = 4096
)

// wsConn сериализует запись: кадры прогресса и результат пишутся из разных горутин
type wsConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (w *wsConn) send(frame any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return w.conn.WriteJSON(frame)
}

func (w *wsConn) ping() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteTimeout))
}

// @Summary Hold-to-trigger panic button
// @Description WebSocket. Client sends press_start/press_end frames, server streams progress and the alert result after a full hold. Requires session token.
// @Tags Panic
// @Security BearerAuth
// @Param access_token query string false "Session token for browsers"
// @Success 101 "Switching Protocols"
// @Router /panic/button [get]
func (h *Handler) panicButton(c *gin.Context) {
	session := mustSession(c)
	log := h.logger.WithFields(logrus.Fields{"method": "panicButton", "user_id": session.UserID})

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("WebSocket upgrade failed")
		return
	}
	ws := &wsConn{conn: conn}
	defer conn.Close()

	// Отправка тревоги не должна обрываться, если клиент отключился посреди конвейера
	submitCtx := context.WithoutCancel(c.Request.Context())
	var fix atomic.Pointer[models.Location]

	submit := func() {
		response, err := h.runTrigger(submitCtx, session, fix.Load())
		if err != nil {
			log.WithError(err).Error("Failed to trigger panic alert from button")
			_ = ws.send(ServerFrame{Type: frameTypeError, Error: h.translator.T(session.Language, i18n.MsgAlertFailed, nil)})
			return
		}
		_ = ws.send(ServerFrame{Type: frameTypeResult, Result: response})
	}
	listener := func(ev trigger.Event) {
		_ = ws.send(ServerFrame{Type: ev.Kind, Progress: ev.Progress})
	}
	hold := trigger.NewHoldTrigger(h.cfg.HoldThreshold, h.cfg.HoldTickInterval, submit, listener)
	defer func() {
		hold.Close()
		hold.Wait()
	}()

	conn.SetReadLimit(wsMaxFrameSize)
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).Warn("WebSocket read error")
			}
			return
		}

		var frame ButtonFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			_ = ws.send(ServerFrame{Type: frameTypeError, Error: "invalid frame"})
			continue
		}

		switch frame.Type {
		case frameTypePressStart:
			// Неверные координаты отбрасываем, но удержание все равно запускаем
			if frame.Location != nil {
				if h.validate.Struct(frame.Location) != nil {
					_ = ws.send(ServerFrame{Type: frameTypeError, Error: "invalid location"})
				} else {
					fix.Store(DTOToLocationModel(frame.Location))
				}
			}
			hold.PressStart()
		case frameTypePressEnd:
			hold.PressEnd()
		case frameTypeLocation:
			if frame.Location == nil || h.validate.Struct(frame.Location) != nil {
				_ = ws.send(ServerFrame{Type: frameTypeError, Error: "invalid location"})
				continue
			}
			fix.Store(DTOToLocationModel(frame.Location))
		default:
			_ = ws.send(ServerFrame{Type: frameTypeError, Error: "unknown frame type"})
		}
	}
}

// @Summary Realtime panic alert inbox
// @Description WebSocket. Sends the inbox snapshot on connect and a fresh snapshot after every change. Requires operator session.
// @Tags Panic
// @Security BearerAuth
// @Param access_token query string false "Session token for browsers"
// @Success 101 "Switching Protocols"
// @Router /panic-alerts/stream [get]
func (h *Handler) inboxStream(c *gin.Context) {
	session := mustSession(c)
	log := h.logger.WithFields(logrus.Fields{"method": "inboxStream", "user_id": session.UserID})

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	snapshots, err := h.alertService.SubscribeInbox(ctx, session)
	if err != nil {
		log.WithError(err).Error("Failed to subscribe to panic alert changes")
		h.writeServiceError(c, err, i18n.MsgInternalError)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("WebSocket upgrade failed")
		return
	}
	ws := &wsConn{conn: conn}
	defer conn.Close()

	// Читаем только control-кадры, чтобы заметить закрытие соединения
	conn.SetReadLimit(wsMaxFrameSize)
	conn.SetReadDeadline(time.Now().Add(wsPongTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongTimeout))
	})
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case alerts, ok := <-snapshots:
			if !ok {
				return
			}
			if err := ws.send(InboxFrame{Type: frameTypeSnapshot, Alerts: ModelsToAlertResponses(alerts)}); err != nil {
				log.WithError(err).Debug("Inbox client went away")
				return
			}
		case <-ticker.C:
			if err := ws.ping(); err != nil {
				return
			}
		}
	}
}
