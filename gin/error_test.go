package gin_test

import (
	"net/http"
	"testing"

	"github.com/fwojciec/cookalong"
	cookgin "github.com/fwojciec/cookalong/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorStatusCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusBadRequest, cookgin.ErrorStatusCode(cookalong.EINVALID))
	assert.Equal(t, http.StatusForbidden, cookgin.ErrorStatusCode(cookalong.EUNAUTHORIZED))
	assert.Equal(t, http.StatusNotFound, cookgin.ErrorStatusCode(cookalong.ENOTFOUND))
	assert.Equal(t, http.StatusInternalServerError, cookgin.ErrorStatusCode(cookalong.EINTERNAL))
	assert.Equal(t, http.StatusInternalServerError, cookgin.ErrorStatusCode("bogus"))
}
