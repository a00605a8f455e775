package telegram

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/shenikar/panic_alert_system/internal/models"
	"github.com/shenikar/panic_alert_system/pkg/i18n"
)

// Localizer переводит подписи карточки
type Localizer interface {
	T(lang, messageID string, data map[string]any) string
}

// FormatAlert собирает текст оповещения для ответственных на языке lang
func FormatAlert(tr Localizer, lang string, alert *models.PanicAlert, reporterName string, loc *models.Location) string {
	label := func(id string) string { return tr.T(lang, id, nil) }

	var b strings.Builder
	fmt.Fprintf(&b, "🚨 <b>%s</b>\n\n", label(i18n.MsgCardTitle))
	fmt.Fprintf(&b, "<b>%s:</b> %s\n", label(i18n.MsgCardFrom), html.EscapeString(reporterName))
	fmt.Fprintf(&b, "<b>%s:</b> %s\n", label(i18n.MsgCardTime), alert.CreatedAt.Format(time.DateTime))

	switch {
	case alert.LocationAddress != nil && *alert.LocationAddress != "":
		fmt.Fprintf(&b, "<b>%s:</b> %s\n", label(i18n.MsgCardAddress), html.EscapeString(*alert.LocationAddress))
	case alert.HasCoordinates():
		fmt.Fprintf(&b, "<b>%s:</b> %.6f, %.6f\n", label(i18n.MsgCardCoordinates), *alert.LocationLatitude, *alert.LocationLongitude)
	default:
		fmt.Fprintf(&b, "<b>%s:</b> %s\n", label(i18n.MsgCardLocation), label(i18n.MsgCardLocationUnavailable))
	}
	if loc != nil && loc.Source != "" {
		fmt.Fprintf(&b, "<b>%s:</b> %s\n", label(i18n.MsgCardLocationSource), loc.Source)
	}
	fmt.Fprintf(&b, "\n<code>%s</code>", alert.ID)
	return b.String()
}
