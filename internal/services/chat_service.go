// internal/services/chat_service.go
package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/electromart/support-backend/internal/models"
)

// ChatService runs one stateless turn: resolve the intent, perform at
// most one catalog access, compose the reply. No history is kept across
// turns.
type ChatService struct {
	resolver    *IntentResolver
	catalog     *CatalogService
	composer    *ResponseComposer
	resultLimit int
}

func NewChatService(resolver *IntentResolver, catalog *CatalogService, composer *ResponseComposer, resultLimit int) *ChatService {
	if resultLimit <= 0 {
		resultLimit = models.DefaultResultLimit
	}

	return &ChatService{
		resolver:    resolver,
		catalog:     catalog,
		composer:    composer,
		resultLimit: resultLimit,
	}
}

// HandleMessage processes a single inbound message and always returns a
// reply string; collaborator failures surface as the composer's fixed
// fallback wording.
func (s *ChatService) HandleMessage(ctx context.Context, message string) string {
	turnID := uuid.New().String()
	res := s.resolver.Resolve(message)

	log := logrus.WithFields(logrus.Fields{
		"turn_id": turnID,
		"intent":  res.Kind,
	})

	var summaries []models.ProductSummary
	var detail *models.ProductDetail

	switch res.Kind {
	case models.IntentCategoryBrowse:
		if res.Filter.Limit <= 0 {
			res.Filter.Limit = s.resultLimit
		}
		summaries = s.catalog.ListProducts(res.Filter)
		log = log.WithFields(logrus.Fields{
			"category": res.Filter.Category,
			"results":  len(summaries),
		})

	case models.IntentStockCheck, models.IntentProductDetail:
		if res.ProductHint != "" {
			detail = s.catalog.GetProductDetail(res.ProductHint)
		}
		log = log.WithFields(logrus.Fields{
			"hint":  res.ProductHint,
			"found": detail != nil,
		})
	}

	reply := s.composer.Compose(ctx, message, res, summaries, detail)
	log.Info("Chat turn processed")

	return reply
}
