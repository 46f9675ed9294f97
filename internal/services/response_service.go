// internal/services/response_service.go
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/electromart/support-backend/internal/models"
)

// TextGenerator is the external completion collaborator. One prompt in,
// generated text or an error out.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Fixed fallback strings. Every failure path in a turn lands on one of
// these rather than an error.
const (
	generationApology  = "I'm sorry, I'm having trouble answering right now. Please try again in a moment."
	stockRePrompt      = "Which product would you like me to check? Please include the product name in your message."
	stockInfoNotFound  = "Sorry, I couldn't find stock information for that product."
	detailNotFound     = "Sorry, I couldn't find any product matching your request."
	browseNotFoundTmpl = "I couldn't find any %s products matching your criteria. Try adjusting the price range or brand."
)

// ResponseComposer turns a resolved intent plus any retrieved records
// into the reply text. Stock checks and empty browse results are fully
// deterministic and never touch the generator; everything else makes
// exactly one generation call.
type ResponseComposer struct {
	generator TextGenerator
	storeName string
}

func NewResponseComposer(generator TextGenerator, storeName string) *ResponseComposer {
	return &ResponseComposer{
		generator: generator,
		storeName: storeName,
	}
}

// Compose produces the reply for one turn. summaries is consulted for
// browse intents, detail for stock and detail intents.
func (c *ResponseComposer) Compose(ctx context.Context, message string, res models.Resolution, summaries []models.ProductSummary, detail *models.ProductDetail) string {
	switch res.Kind {
	case models.IntentCategoryBrowse:
		if len(summaries) == 0 {
			return fmt.Sprintf(browseNotFoundTmpl, res.Filter.Category)
		}
		return c.generate(ctx, c.buildPrompt(message, summaryLines(summaries)))

	case models.IntentStockCheck:
		return composeStockReply(res.ProductHint, detail)

	case models.IntentProductDetail:
		if detail == nil {
			return detailNotFound
		}
		return c.generate(ctx, c.buildPrompt(message, detailLines(detail)))

	default:
		return c.generate(ctx, c.buildPrompt(message, nil))
	}
}

// composeStockReply formats stock answers without any generation call.
func composeStockReply(hint string, detail *models.ProductDetail) string {
	if hint == "" {
		return stockRePrompt
	}

	if detail == nil {
		return stockInfoNotFound
	}

	if detail.Stock > 0 {
		return fmt.Sprintf("Yes, the %s is currently in stock with %d units available.", detail.Name, detail.Stock)
	}

	return fmt.Sprintf("Sorry, the %s is currently out of stock.", detail.Name)
}

func (c *ResponseComposer) generate(ctx context.Context, prompt string) string {
	reply, err := c.generator.Generate(ctx, prompt)
	if err != nil {
		logrus.WithError(err).Error("Text generation failed")
		return generationApology
	}

	return reply
}

func (c *ResponseComposer) buildPrompt(message string, recordLines []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a helpful customer support assistant for %s, an electronics retailer. ", c.storeName)
	b.WriteString("Answer the customer in a friendly tone. When product information is listed below, base your answer on it and do not invent products or prices.\n\n")
	fmt.Fprintf(&b, "Customer message: %s\n", message)

	if len(recordLines) > 0 {
		b.WriteString("\nMatching products:\n")
		for _, line := range recordLines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	return b.String()
}

func summaryLines(summaries []models.ProductSummary) []string {
	lines := make([]string, 0, len(summaries))
	for _, s := range summaries {
		lines = append(lines, fmt.Sprintf("- name: %s | brand: %s | price: $%.2f | rating: %.1f | stock: %d",
			s.Name, s.Brand, s.Price, s.Rating, s.Stock))
	}
	return lines
}

func detailLines(d *models.ProductDetail) []string {
	return []string{
		fmt.Sprintf("- name: %s | category: %s | brand: %s | price: $%.2f | rating: %.1f | stock: %d",
			d.Name, d.Category, d.Brand, d.Price, d.Rating, d.Stock),
		fmt.Sprintf("  description: %s", d.Description),
	}
}
