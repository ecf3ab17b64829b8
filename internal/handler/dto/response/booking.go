package response

import "resort-booking/internal/domain/availability"

type AvailabilityResponse struct {
	Available      bool `json:"available"`
	Remaining      int  `json:"remaining"`
	Capacity       int  `json:"capacity"`
	RequestedRooms int  `json:"requestedRooms"`
}

func FromAvailability(r availability.Result) AvailabilityResponse {
	return AvailabilityResponse{
		Available:      r.Available,
		Remaining:      r.Remaining,
		Capacity:       r.Capacity,
		RequestedRooms: r.RequestedRooms,
	}
}

type MessageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

type AckResponse struct {
	OK bool `json:"ok"`
}

type HealthResponse struct {
	OK                  bool `json:"ok"`
	DatastoreConfigured bool `json:"datastoreConfigured"`
}
