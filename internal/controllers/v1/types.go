package v1

import (
	cs_uuid "github.com/clearspend/backend/internal/uuid"
)

type URIID struct {
	ID cs_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// Pagination contains metadata about the result window of a list endpoint.
type Pagination struct {
	Count  int   `json:"count"`  // The amount of records returned in this response
	Total  int64 `json:"total"`  // The total number of records matching the query
	Offset uint  `json:"offset"` // The offset for the first record returned
	Limit  int   `json:"limit"`  // The maximum number of records returned
}
