package dto

// RecordListResponse listado paginado de una colección del Entity Store.
type RecordListResponse struct {
	Kind  string       `json:"kind"`
	Items []any        `json:"items"`
	Page  PageResponse `json:"page"`
}
