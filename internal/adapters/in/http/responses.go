package http

import (
	"propertyservice/internal/core/application/usecases/queries"
)

// ApiResponse is the uniform envelope every endpoint returns. Data carries
// the endpoint payload; Meta carries pagination metadata on list endpoints.
type ApiResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    any               `json:"data,omitempty"`
	Meta    *queries.PageMeta `json:"meta,omitempty"`
}

func successResponse(message string, data any) ApiResponse {
	return ApiResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func pagedResponse(message string, page queries.PagedListingsResponse) ApiResponse {
	return ApiResponse{
		Success: true,
		Message: message,
		Data:    page.Items,
		Meta:    &page.Meta,
	}
}

func errorResponse(message string) ApiResponse {
	return ApiResponse{
		Success: false,
		Message: message,
	}
}
