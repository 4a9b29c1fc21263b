package v1

import "github.com/resqnet/sos_coordination_system/internal/models"

// ModelToEventResponse converts a domain event into a response DTO.
func ModelToEventResponse(model *models.SOSEvent) *EventResponse {
	return &EventResponse{
		ID:          model.ID,
		UserID:      model.UserID,
		Category:    string(model.Category),
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		Address:     model.Address,
		Description: model.Description,
		Status:      string(model.Status),
		CreatedAt:   model.CreatedAt,
		ResolvedAt:  model.ResolvedAt,
	}
}

// ModelsToEventResponses converts a slice of domain events into DTOs.
func ModelsToEventResponses(events []*models.SOSEvent) []*EventResponse {
	responses := make([]*EventResponse, len(events))
	for i, event := range events {
		responses[i] = ModelToEventResponse(event)
	}
	return responses
}

// ModelToVolunteerResponse converts a domain volunteer into a response DTO.
func ModelToVolunteerResponse(model *models.Volunteer) *VolunteerResponse {
	return &VolunteerResponse{
		ID:             model.ID,
		UserID:         model.UserID,
		IsAvailable:    model.IsAvailable,
		MaxRangeMeters: model.MaxRangeMeters,
		Latitude:       model.Latitude,
		Longitude:      model.Longitude,
		CreatedAt:      model.CreatedAt,
	}
}

// ModelToResponseEntry converts a domain volunteer response into a DTO.
func ModelToResponseEntry(model *models.VolunteerResponse) *ResponseEntry {
	return &ResponseEntry{
		ID:               model.ID,
		SOSEventID:       model.SOSEventID,
		VolunteerID:      model.VolunteerID,
		ResponseType:     string(model.ResponseType),
		EstimatedArrival: model.EstimatedArrival,
		Message:          model.Message,
		CreatedAt:        model.CreatedAt,
	}
}

// ModelsToResponseEntries converts a slice of domain responses into DTOs.
func ModelsToResponseEntries(responses []*models.VolunteerResponse) []*ResponseEntry {
	entries := make([]*ResponseEntry, len(responses))
	for i, response := range responses {
		entries[i] = ModelToResponseEntry(response)
	}
	return entries
}
