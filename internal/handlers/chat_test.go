// internal/handlers/chat_test.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/electromart/support-backend/internal/models"
	"github.com/electromart/support-backend/internal/services"
)

type stubCatalogStore struct {
	rows []models.Product
}

func (s *stubCatalogStore) FetchProducts(filter models.QueryFilter) ([]models.Product, error) {
	var matched []models.Product
	for _, row := range s.rows {
		if filter.Category != "" && !strings.EqualFold(row.Category, filter.Category) {
			continue
		}
		matched = append(matched, row)
	}
	return matched, nil
}

func (s *stubCatalogStore) FetchByName(nameHint string) (*models.Product, error) {
	hint := strings.ToLower(nameHint)
	for i := range s.rows {
		if strings.Contains(strings.ToLower(s.rows[i].Name), hint) {
			return &s.rows[i], nil
		}
	}
	return nil, nil
}

type stubGenerator struct {
	reply string
	calls int
}

func (s *stubGenerator) Generate(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.reply, nil
}

type ChatTestSuite struct {
	suite.Suite
	router    *gin.Engine
	generator *stubGenerator
}

func (suite *ChatTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	store := &stubCatalogStore{
		rows: []models.Product{
			{ID: 1, Name: "Dell XPS 13", Category: "Laptop", Brand: "Dell", Price: 1199.99, Stock: 50, Rating: 4.5},
			{ID: 2, Name: "AirPods Pro 2", Category: "Headphones", Brand: "Apple", Price: 249.00, Stock: 0, Rating: 4.7},
		},
	}
	suite.generator = &stubGenerator{reply: "Generated answer."}

	catalogService := services.NewCatalogService(store)
	composer := services.NewResponseComposer(suite.generator, "ElectroMart")
	chatService := services.NewChatService(services.NewIntentResolver(), catalogService, composer, 5)
	chatHandler := NewChatHandler(chatService)

	suite.router = gin.New()
	suite.router.POST("/v1/chat", chatHandler.Chat)
}

func (suite *ChatTestSuite) postChat(body []byte) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", "/v1/chat", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ChatTestSuite) TestMissingMessageReturns400() {
	w := suite.postChat([]byte(`{}`))

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.JSONEq(suite.T(), `{"response": "No message provided."}`, w.Body.String())
}

func (suite *ChatTestSuite) TestBlankMessageReturns400() {
	w := suite.postChat([]byte(`{"message": "   "}`))

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.JSONEq(suite.T(), `{"response": "No message provided."}`, w.Body.String())
}

func (suite *ChatTestSuite) TestMalformedBodyReturns400() {
	w := suite.postChat([]byte(`{"message": `))

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.JSONEq(suite.T(), `{"response": "No message provided."}`, w.Body.String())
}

func (suite *ChatTestSuite) TestStockCheckTurn() {
	w := suite.postChat([]byte(`{"message": "is the dell xps 13 in stock?"}`))

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var resp models.ChatResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(suite.T(), "Yes, the Dell XPS 13 is currently in stock with 50 units available.", resp.Response)
	assert.Zero(suite.T(), suite.generator.calls)
}

func (suite *ChatTestSuite) TestGeneralQueryTurn() {
	w := suite.postChat([]byte(`{"message": "do you ship overseas?"}`))

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var resp models.ChatResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(suite.T(), "Generated answer.", resp.Response)
	assert.Equal(suite.T(), 1, suite.generator.calls)
}

func TestChatSuite(t *testing.T) {
	suite.Run(t, new(ChatTestSuite))
}
