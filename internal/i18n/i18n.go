// Package i18n provides internationalization support for the pricing service.
// It handles translation of user-facing messages and error messages. The
// product line is sold in a bilingual market, so Chinese ships alongside
// English.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "zh-CN,zh;q=0.9,en;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "zh" from "zh-CN")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		// Validate it's a supported locale
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":      "Invalid request",
			"error.invalid_request_body": "Invalid request body",
			"error.internal_error":       "An unexpected error occurred",
			"error.unauthorized":         "Unauthorized",
			"error.invalid_credentials":  "Invalid username or password",
			"error.forbidden":            "Forbidden",
			"error.not_found":            "Not found",
			"error.rate_limit_exceeded":  "Too many requests, please try again later",
			"error.invalid_token":        "Invalid or expired token",
			"error.timeout":              "Request timeout",
			"error.catalog_not_ready":    "Catalog data is not ready for this selection",
			"error.invalid_catalog":      "Catalog data failed validation",
			"error.empty_queue":          "The queue is empty, nothing to submit",
			"error.import_format":        "The file must be a JSON array of batches",
			"error.item_not_found":       "Queue item not found",

			// Success messages
			"success.batch_submitted": "Batch submitted successfully",
			"success.imported":        "History imported successfully",
			"success.logged_out":      "Logged out",
		},
		"zh": {
			// Error messages
			"error.invalid_request":      "无效的请求",
			"error.invalid_request_body": "请求内容格式错误",
			"error.internal_error":       "发生意外错误",
			"error.unauthorized":         "未授权",
			"error.invalid_credentials":  "用户名或密码错误",
			"error.forbidden":            "没有权限",
			"error.not_found":            "未找到",
			"error.rate_limit_exceeded":  "请求过于频繁，请稍后重试",
			"error.invalid_token":        "令牌无效或已过期",
			"error.timeout":              "请求超时",
			"error.catalog_not_ready":    "所选配置缺少产品数据",
			"error.invalid_catalog":      "产品数据校验失败",
			"error.empty_queue":          "队列为空，无法提交",
			"error.import_format":        "文件格式错误：必须是 JSON 数组格式",
			"error.item_not_found":       "未找到该队列项",

			// Success messages
			"success.batch_submitted": "批次提交成功",
			"success.imported":        "历史记录导入成功",
			"success.logged_out":      "已退出登录",
		},
	}
}
