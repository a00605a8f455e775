package v1

import (
	"fmt"
	"time"

	"github.com/shenikar/panic_alert_system/internal/models"
)

// DTOToLocationModel преобразует координаты из запроса в доменную модель
func DTOToLocationModel(dto *LocationRequest) *models.Location {
	if dto == nil || dto.Latitude == nil || dto.Longitude == nil {
		return nil
	}
	loc := &models.Location{
		Latitude:  *dto.Latitude,
		Longitude: *dto.Longitude,
		Accuracy:  dto.Accuracy,
		Source:    "device",
	}
	if dto.Timestamp != nil {
		loc.Timestamp = *dto.Timestamp
	}
	return loc
}

// ModelToLocationResponse преобразует доменную модель в DTO для ответа
func ModelToLocationResponse(loc *models.Location) *LocationResponse {
	if loc == nil {
		return nil
	}
	return &LocationResponse{
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Accuracy:  loc.Accuracy,
		Address:   loc.Address,
		Source:    loc.Source,
		Timestamp: loc.Timestamp,
	}
}

// ModelToTriggerResponse собирает подтверждение. Сообщения уже переведены
func ModelToTriggerResponse(result *models.TriggerResult, message string, notices []string) *TriggerAlertResponse {
	return &TriggerAlertResponse{
		AlertID:            result.Alert.ID,
		CreatedAt:          result.Alert.CreatedAt,
		Location:           ModelToLocationResponse(result.Location),
		LocationText:       locationText(result),
		LocationAgeSeconds: int64(result.LocationAge / time.Second),
		MessagesSent:       result.MessagesSent,
		MessagesFailed:     result.MessagesFailed,
		Message:            message,
		Notices:            notices,
	}
}

// locationText - адрес, если есть, иначе сырые координаты
func locationText(result *models.TriggerResult) string {
	alert := result.Alert
	if alert.LocationAddress != nil && *alert.LocationAddress != "" {
		return *alert.LocationAddress
	}
	if alert.HasCoordinates() {
		return fmt.Sprintf("%.6f, %.6f", *alert.LocationLatitude, *alert.LocationLongitude)
	}
	return ""
}

// ModelToAlertResponse преобразует доменную модель в DTO для ответа
func ModelToAlertResponse(model *models.PanicAlert) *AlertResponse {
	return &AlertResponse{
		ID:                model.ID,
		UserID:            model.UserID,
		ReporterName:      model.ReporterName,
		LocationLatitude:  model.LocationLatitude,
		LocationLongitude: model.LocationLongitude,
		LocationAddress:   model.LocationAddress,
		AlertStatus:       model.AlertStatus,
		ResponseTime:      model.ResponseTime,
		RespondedBy:       model.RespondedBy,
		ResponderName:     model.ResponderName,
		Notes:             model.Notes,
		DistrictID:        model.DistrictID,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}

// ModelsToAlertResponses преобразует слайс моделей в слайс DTO
func ModelsToAlertResponses(alerts []*models.PanicAlert) []*AlertResponse {
	responses := make([]*AlertResponse, len(alerts))
	for i, alert := range alerts {
		responses[i] = ModelToAlertResponse(alert)
	}
	return responses
}

// DTOToAlertFilter преобразует параметры админки в фильтр
func DTOToAlertFilter(dto AdminQueryRequest) models.AlertFilter {
	return models.AlertFilter{
		Status: dto.Status,
		Range:  dto.Range,
		Search: dto.Search,
		Limit:  dto.Limit,
	}
}
