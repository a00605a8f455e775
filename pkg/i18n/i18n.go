package i18n

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Идентификаторы сообщений, которые видит пользователь
const (
	MsgLocationUnavailable = "location_unavailable"
	MsgAlertSent           = "alert_sent"
	MsgNotificationDelayed = "notification_delayed"
	MsgAlertFailed         = "alert_failed"
	MsgNoResponders        = "no_responders"
	MsgStatusUpdated       = "status_updated"
	MsgStatusUpdateFailed  = "status_update_failed"
	MsgLocationStale       = "location_stale"
	MsgForbidden           = "forbidden"
	MsgAlertNotFound       = "alert_not_found"
	MsgAlertConflict       = "alert_conflict"
	MsgInvalidTransition   = "invalid_transition"
	MsgInternalError       = "internal_error"
)

// Подписи карточки тревоги в чат-боте
const (
	MsgCardTitle               = "card_title"
	MsgCardFrom                = "card_from"
	MsgCardTime                = "card_time"
	MsgCardAddress             = "card_address"
	MsgCardCoordinates         = "card_coordinates"
	MsgCardLocation            = "card_location"
	MsgCardLocationUnavailable = "card_location_unavailable"
	MsgCardLocationSource      = "card_location_source"
)

var catalog = map[language.Tag][]*i18n.Message{
	language.English: {
		{ID: MsgLocationUnavailable, Other: "Could not determine your location. The alert will be sent without coordinates."},
		{ID: MsgAlertSent, Other: "Emergency alert sent. Responders have been notified ({{.Sent}} messages)."},
		{ID: MsgNotificationDelayed, Other: "Emergency alert recorded. Notification may be delayed."},
		{ID: MsgAlertFailed, Other: "Failed to send emergency alert. Please call emergency services directly."},
		{ID: MsgNoResponders, Other: "Alert recorded, but no responders are registered for your community."},
		{ID: MsgStatusUpdated, Other: "Alert status updated to {{.Status}}."},
		{ID: MsgStatusUpdateFailed, Other: "Failed to update alert status."},
		{ID: MsgLocationStale, Other: "Could not get your current location. Your last known location was sent instead."},
		{ID: MsgForbidden, Other: "You are not allowed to do this."},
		{ID: MsgAlertNotFound, Other: "Alert not found."},
		{ID: MsgAlertConflict, Other: "This alert was changed by another operator. Refresh and try again."},
		{ID: MsgInvalidTransition, Other: "This status change is not allowed."},
		{ID: MsgInternalError, Other: "Something went wrong. Please try again."},
		{ID: MsgCardTitle, Other: "PANIC ALERT"},
		{ID: MsgCardFrom, Other: "From"},
		{ID: MsgCardTime, Other: "Time"},
		{ID: MsgCardAddress, Other: "Address"},
		{ID: MsgCardCoordinates, Other: "Coordinates"},
		{ID: MsgCardLocation, Other: "Location"},
		{ID: MsgCardLocationUnavailable, Other: "unavailable"},
		{ID: MsgCardLocationSource, Other: "Location source"},
	},
	language.Russian: {
		{ID: MsgLocationUnavailable, Other: "Не удалось определить местоположение. Сигнал будет отправлен без координат."},
		{ID: MsgAlertSent, Other: "Тревожный сигнал отправлен. Оповещено ответственных: {{.Sent}}."},
		{ID: MsgNotificationDelayed, Other: "Тревожный сигнал записан. Оповещение может задержаться."},
		{ID: MsgAlertFailed, Other: "Не удалось отправить тревожный сигнал. Позвоните в экстренные службы."},
		{ID: MsgNoResponders, Other: "Сигнал записан, но для вашего района не назначены ответственные."},
		{ID: MsgStatusUpdated, Other: "Статус тревоги изменен на {{.Status}}."},
		{ID: MsgStatusUpdateFailed, Other: "Не удалось изменить статус тревоги."},
		{ID: MsgLocationStale, Other: "Не удалось получить текущее местоположение. Отправлено последнее известное."},
		{ID: MsgForbidden, Other: "Недостаточно прав для этого действия."},
		{ID: MsgAlertNotFound, Other: "Тревога не найдена."},
		{ID: MsgAlertConflict, Other: "Тревогу уже изменил другой оператор. Обновите список и повторите."},
		{ID: MsgInvalidTransition, Other: "Такая смена статуса не допускается."},
		{ID: MsgInternalError, Other: "Что-то пошло не так. Повторите попытку."},
		{ID: MsgCardTitle, Other: "ТРЕВОГА"},
		{ID: MsgCardFrom, Other: "От"},
		{ID: MsgCardTime, Other: "Время"},
		{ID: MsgCardAddress, Other: "Адрес"},
		{ID: MsgCardCoordinates, Other: "Координаты"},
		{ID: MsgCardLocation, Other: "Местоположение"},
		{ID: MsgCardLocationUnavailable, Other: "не определено"},
		{ID: MsgCardLocationSource, Other: "Источник координат"},
	},
}

// Translator - обертка над go-i18n с встроенным каталогом
type Translator struct {
	bundle *i18n.Bundle
}

// NewTranslator создает переводчик с языком по умолчанию
func NewTranslator(defaultLang string) (*Translator, error) {
	tag, err := language.Parse(defaultLang)
	if err != nil {
		return nil, fmt.Errorf("invalid default language %q: %w", defaultLang, err)
	}
	bundle := i18n.NewBundle(tag)
	for lang, messages := range catalog {
		if err := bundle.AddMessages(lang, messages...); err != nil {
			return nil, fmt.Errorf("failed to load %s messages: %w", lang, err)
		}
	}
	return &Translator{bundle: bundle}, nil
}

// T возвращает перевод; при ошибке - идентификатор сообщения
func (t *Translator) T(lang, messageID string, data map[string]any) string {
	localizer := i18n.NewLocalizer(t.bundle, lang)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		return messageID
	}
	return msg
}
