package dto

// ErrorResponse cuerpo de error HTTP. Message es el único detalle que recibe
// el cliente; los internos quedan en el log del servidor.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ClampPage normaliza los parámetros de paginación: page >= 1, limit en [1,100].
func ClampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// Pages calcula el número de páginas para un total y un límite dados.
func Pages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
