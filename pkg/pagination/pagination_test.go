package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func parseQuery(t *testing.T, rawQuery string) Params {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/admin/users?"+rawQuery, nil)
	return Parse(c)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Params
	}{
		{name: "defaults", query: "", want: Params{Limit: DefaultLimit, Offset: 0}},
		{name: "explicit window", query: "limit=25&offset=50", want: Params{Limit: 25, Offset: 50}},
		{name: "limit capped", query: "limit=1000", want: Params{Limit: MaxLimit, Offset: 0}},
		{name: "non numeric", query: "limit=abc&offset=xyz", want: Params{Limit: DefaultLimit, Offset: 0}},
		{name: "negative values", query: "limit=-5&offset=-1", want: Params{Limit: DefaultLimit, Offset: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseQuery(t, tt.query))
		})
	}
}

func TestFromPage(t *testing.T) {
	assert.Equal(t, Params{Limit: 20, Offset: 40}, FromPage(3, 20))
	assert.Equal(t, Params{Limit: DefaultLimit, Offset: 0}, FromPage(0, 0))
	assert.Equal(t, Params{Limit: MaxLimit, Offset: MaxLimit}, FromPage(2, 500))
}
