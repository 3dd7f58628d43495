package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/dental-clinic/internal/form"
)

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}

// FormState answers with the controller snapshot: 422 when the last
// validation pass left errors behind, 200 otherwise.
func FormState(c *gin.Context, st form.State) {
	status := http.StatusOK
	if !st.Errors.Valid() {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, st)
}
