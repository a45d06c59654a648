// Package i18n provides internationalization support for the truckload service.
// It handles translation of user-facing messages and error messages.
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
		messages: defaultMessages,
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
// Missing translations fall back to DefaultLocale, then to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Supports reports whether locale has a message table.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// GetLocale picks the first supported language of the Accept-Language header,
// ignoring regions and quality values. It falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	return ParseAcceptLanguage(c.GetHeader(AcceptLanguageHeader))
}

// ParseAcceptLanguage resolves an Accept-Language value to a supported locale.
func ParseAcceptLanguage(header string) string {
	if header == "" {
		return DefaultLocale
	}
	tr := GetTranslator()
	for _, part := range strings.Split(header, ",") {
		lang, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		lang, _, _ = strings.Cut(lang, "-")
		lang = strings.ToLower(strings.TrimSpace(lang))
		if tr.Supports(lang) {
			return lang
		}
	}
	return DefaultLocale
}

var defaultMessages = map[string]map[string]string{
	"en": {
		ErrKeyInvalidRequest:       "Invalid request",
		ErrKeyInvalidRequestBody:   "Invalid request body",
		ErrKeyInternalError:        "An unexpected error occurred",
		ErrKeyUnauthorized:         "Unauthorized",
		ErrKeyAPIKeyRequired:       "API key or bearer token is required",
		ErrKeyInvalidAPIKey:        "Invalid API key",
		ErrKeyInvalidToken:         "Invalid or expired token",
		ErrKeyNotFound:             "Not found",
		ErrKeyRateLimitExceeded:    "Too many requests, please try again later",
		ErrKeyIdempotencyMismatch:  "Idempotency key was already used with a different request",
		ErrKeyTimeout:              "The optimization did not finish in time",
		ErrKeyInvalidTruck:         "Truck width and length must be positive numbers",
		ErrKeyNegativeCount:        "Box counts must not be negative",
		ErrKeyInvalidBoxDimensions: "Box width and length must be positive numbers",
		ErrKeyUnknownBoxType:       "Unknown box type",
		ErrKeyConflictingBoxType:   "Box type is declared twice with different dimensions",
		ErrKeyMissingBoxTypeID:     "Every box line needs a box type id",
		ErrKeyPlanNotFound:         "Load plan not found",
		ErrKeyHistoryUnavailable:   "Plan history is not available",
		ErrKeyAuditUnavailable:     "Audit trail is not available",
		ErrKeyOptimizationFailed:   "No packing strategy produced a load plan",
		SuccessKeyPlanComputed:     "Load plan computed successfully",
	},
	"pt": {
		ErrKeyInvalidRequest:       "Requisição inválida",
		ErrKeyInvalidRequestBody:   "Corpo da requisição inválido",
		ErrKeyInternalError:        "Ocorreu um erro inesperado",
		ErrKeyUnauthorized:         "Não autorizado",
		ErrKeyAPIKeyRequired:       "Chave de API ou token é obrigatório",
		ErrKeyInvalidAPIKey:        "Chave de API inválida",
		ErrKeyInvalidToken:         "Token inválido ou expirado",
		ErrKeyNotFound:             "Não encontrado",
		ErrKeyRateLimitExceeded:    "Muitas requisições, tente novamente mais tarde",
		ErrKeyIdempotencyMismatch:  "A chave de idempotência já foi usada com outra requisição",
		ErrKeyTimeout:              "A otimização não terminou a tempo",
		ErrKeyInvalidTruck:         "Largura e comprimento do caminhão devem ser números positivos",
		ErrKeyNegativeCount:        "Quantidades de caixas não podem ser negativas",
		ErrKeyInvalidBoxDimensions: "Largura e comprimento da caixa devem ser números positivos",
		ErrKeyUnknownBoxType:       "Tipo de caixa desconhecido",
		ErrKeyConflictingBoxType:   "Tipo de caixa declarado duas vezes com dimensões diferentes",
		ErrKeyMissingBoxTypeID:     "Cada linha de caixa precisa de um id de tipo",
		ErrKeyPlanNotFound:         "Plano de carga não encontrado",
		ErrKeyHistoryUnavailable:   "Histórico de planos indisponível",
		ErrKeyAuditUnavailable:     "Trilha de auditoria indisponível",
		ErrKeyOptimizationFailed:   "Nenhuma estratégia de empacotamento produziu um plano",
		SuccessKeyPlanComputed:     "Plano de carga calculado com sucesso",
	},
	"nl": {
		ErrKeyInvalidRequest:       "Ongeldig verzoek",
		ErrKeyInvalidRequestBody:   "Ongeldige aanvraag body",
		ErrKeyInternalError:        "Er is een onverwachte fout opgetreden",
		ErrKeyUnauthorized:         "Niet geautoriseerd",
		ErrKeyAPIKeyRequired:       "API-sleutel of token is vereist",
		ErrKeyInvalidAPIKey:        "Ongeldige API-sleutel",
		ErrKeyInvalidToken:         "Ongeldig of verlopen token",
		ErrKeyNotFound:             "Niet gevonden",
		ErrKeyRateLimitExceeded:    "Te veel verzoeken, probeer het later opnieuw",
		ErrKeyIdempotencyMismatch:  "Idempotentiesleutel is al gebruikt met een ander verzoek",
		ErrKeyTimeout:              "De optimalisatie is niet op tijd klaar",
		ErrKeyInvalidTruck:         "Breedte en lengte van de vrachtwagen moeten positief zijn",
		ErrKeyNegativeCount:        "Aantallen dozen mogen niet negatief zijn",
		ErrKeyInvalidBoxDimensions: "Breedte en lengte van de doos moeten positief zijn",
		ErrKeyUnknownBoxType:       "Onbekend doostype",
		ErrKeyConflictingBoxType:   "Doostype is twee keer opgegeven met andere afmetingen",
		ErrKeyMissingBoxTypeID:     "Elke doosregel heeft een doostype-id nodig",
		ErrKeyPlanNotFound:         "Laadplan niet gevonden",
		ErrKeyHistoryUnavailable:   "Plangeschiedenis is niet beschikbaar",
		ErrKeyAuditUnavailable:     "Audittrail is niet beschikbaar",
		ErrKeyOptimizationFailed:   "Geen enkele strategie leverde een laadplan op",
		SuccessKeyPlanComputed:     "Laadplan succesvol berekend",
	},
}
