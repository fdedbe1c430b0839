package request

import (
	"hobbyexplorer/internal/usecase"

	"github.com/labstack/echo/v4"
)

// PageQuery is the offset/limit window of listing endpoints.
type PageQuery struct {
	Offset int
	Limit  *int
}

// BindPageQuery reads offset and limit from the query string. An absent limit
// stays nil so the configured default applies.
func BindPageQuery(c echo.Context) (*PageQuery, error) {
	query := &PageQuery{}
	var limit int
	err := echo.QueryParamsBinder(c).
		Int("offset", &query.Offset).
		Int("limit", &limit).
		BindError()
	if err != nil {
		return nil, err
	}
	if c.QueryParam("limit") != "" {
		query.Limit = &limit
	}

	return query, nil
}

// ToInput maps the query to the use case input.
func (q *PageQuery) ToInput() usecase.PageInput {
	return usecase.PageInput{
		Offset: q.Offset,
		Limit:  q.Limit,
	}
}
