package dto

// FieldError detalle de un error de validación por campo.
type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param"`
	Value any    `json:"value,omitempty"`
}

// Response sobre JSON uniforme de la API. Todos los endpoints responden con
// esta forma: success + (message, data) en éxito, (error|errors) en fallo.
type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    any          `json:"data,omitempty"`
	Error   string       `json:"error,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// Pagination metadatos de página en respuestas de listados.
type Pagination struct {
	CurrentPage  int  `json:"current_page"`
	TotalPages   int  `json:"total_pages"`
	TotalItems   int  `json:"total_items"`
	ItemsPerPage int  `json:"items_per_page"`
	HasNext      bool `json:"has_next"`
	HasPrevious  bool `json:"has_previous"`
}

// NewPagination calcula los metadatos para page (>=1), limit (>=1) y total.
func NewPagination(page, limit, totalItems int) Pagination {
	totalPages := 0
	if totalItems > 0 {
		totalPages = (totalItems + limit - 1) / limit
	}
	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   totalItems,
		ItemsPerPage: limit,
		HasNext:      page < totalPages,
		HasPrevious:  page > 1,
	}
}

// PageRequest parámetros de paginación de los listados.
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// Normalize aplica defaults y límites: page>=1, limit en [1, max].
func (p *PageRequest) Normalize(defaultLimit, maxLimit int) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
}

// Offset devuelve el offset SQL equivalente.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}
