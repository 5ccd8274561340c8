package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	tr := NewTranslator()

	t.Run("english", func(t *testing.T) {
		assert.Equal(t, "The queue is empty, nothing to submit", tr.Translate(ErrKeyEmptyQueue, "en"))
	})

	t.Run("chinese", func(t *testing.T) {
		assert.Equal(t, "队列为空，无法提交", tr.Translate(ErrKeyEmptyQueue, "zh"))
		assert.Equal(t, "文件格式错误：必须是 JSON 数组格式", tr.Translate(ErrKeyImportFormat, "zh"))
	})

	t.Run("unknown locale falls back to english", func(t *testing.T) {
		assert.Equal(t, "Unauthorized", tr.Translate(ErrKeyUnauthorized, "fr"))
	})

	t.Run("empty locale uses default", func(t *testing.T) {
		assert.Equal(t, "Invalid request", tr.Translate(ErrKeyInvalidRequest, ""))
	})

	t.Run("unknown key returns the key", func(t *testing.T) {
		assert.Equal(t, "error.nope", tr.Translate("error.nope", "en"))
	})
}

func TestGetLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"no header", "", "en"},
		{"simplified chinese", "zh-CN,zh;q=0.9,en;q=0.8", "zh"},
		{"plain chinese", "zh", "zh"},
		{"english region", "en-US,en;q=0.9", "en"},
		{"unsupported language", "fr-FR,fr;q=0.9", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				c.Request.Header.Set(AcceptLanguageHeader, tt.header)
			}
			assert.Equal(t, tt.want, GetLocale(c))
		})
	}
}
