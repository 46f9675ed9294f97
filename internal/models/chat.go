// internal/models/chat.go
package models

// IntentKind classifies the purpose of a single user message.
type IntentKind string

const (
	IntentCategoryBrowse IntentKind = "category_browse"
	IntentStockCheck     IntentKind = "stock_check"
	IntentProductDetail  IntentKind = "product_detail"
	IntentGeneral        IntentKind = "general"
)

// Resolution is the outcome of intent resolution for one message. Filter
// is populated for browse intents, ProductHint for stock and detail
// lookups. A StockCheck with an empty ProductHint means the message named
// no known product and the caller should re-prompt.
type Resolution struct {
	Kind        IntentKind  `json:"kind"`
	Filter      QueryFilter `json:"filter,omitempty"`
	ProductHint string      `json:"product_hint,omitempty"`
}

// ChatRequest is the inbound chat payload.
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// ChatResponse is the outbound chat payload. Every turn, including every
// failure path, terminates in a Response string.
type ChatResponse struct {
	Response string `json:"response"`
}
