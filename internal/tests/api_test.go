// internal/tests/api_test.go
package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/trustpulse/pulse-backend/internal/config"
	"github.com/trustpulse/pulse-backend/internal/genai"
	"github.com/trustpulse/pulse-backend/internal/handlers"
	"github.com/trustpulse/pulse-backend/internal/middleware"
	"github.com/trustpulse/pulse-backend/internal/services"
	"github.com/trustpulse/pulse-backend/internal/state"
	"github.com/trustpulse/pulse-backend/internal/utils"
)

type APITestSuite struct {
	suite.Suite
	router *gin.Engine
	store  *state.Store
	ai     *httptest.Server
}

// The stub upstream answers structured calls with a canned product insight
// and plain-text calls with a classification.
func (suite *APITestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	utils.SetJWTSecret("test-secret")

	suite.ai = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]interface{}
		json.NewDecoder(r.Body).Decode(&req)

		text := "product"
		if cfg, ok := req["generationConfig"].(map[string]interface{}); ok {
			if _, structured := cfg["responseMimeType"]; structured {
				text = `{"name": "Dior Homme Intense", "category": "Fragrance", "topRelevantReviews": [{"user": "sam", "text": "smells amazing", "score": 5, "source": "reddit"}]}`
			}
		}

		body := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{
					"content": map[string]interface{}{
						"parts": []map[string]string{{"text": text}},
					},
					"finishReason": "STOP",
				},
			},
		}
		json.NewEncoder(w).Encode(body)
	}))

	cfg := &config.Config{
		Environment: "test",
		Session:     config.SessionConfig{SecretKey: "test-secret", TTLHours: 24, IdleHours: 24},
	}

	ai := genai.NewClient("test-key", suite.ai.URL, "", "", 10*time.Second)
	suite.store = state.NewStore(time.Hour)

	sessionService := services.NewSessionService(suite.store, cfg)
	classifierService := services.NewClassifierService(ai)
	insightService := services.NewInsightService(ai, classifierService)
	reviewService := services.NewReviewService()
	directoryService := services.NewDirectoryService(ai)
	studioService := services.NewStudioService(ai)

	authHandler := handlers.NewAuthHandler(sessionService)
	searchHandler := handlers.NewSearchHandler(insightService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	businessHandler := handlers.NewBusinessHandler(directoryService)
	studioHandler := handlers.NewStudioHandler(studioService)

	suite.router = gin.New()
	v1 := suite.router.Group("/v1")
	{
		v1.POST("/auth/login", authHandler.Login)
		v1.GET("/auth/me", middleware.SessionRequired(suite.store), authHandler.Me)

		protected := v1.Group("")
		protected.Use(middleware.SessionRequired(suite.store))
		{
			protected.POST("/search", searchHandler.Search)
			protected.GET("/reviews", reviewHandler.Tabs)
			protected.POST("/reviews", reviewHandler.Submit)
			protected.GET("/businesses", businessHandler.List)
			protected.POST("/businesses", businessHandler.Create)
			protected.POST("/studio/assets", studioHandler.GenerateAsset)
		}
	}
}

func (suite *APITestSuite) TearDownSuite() {
	suite.ai.Close()
}

func (suite *APITestSuite) request(method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		jsonData, _ := json.Marshal(payload)
		body = bytes.NewBuffer(jsonData)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *APITestSuite) login(name, provider string) string {
	w := suite.request("POST", "/v1/auth/login", "", map[string]interface{}{
		"name":     name,
		"provider": provider,
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	return data["token"].(string)
}

func (suite *APITestSuite) TestLoginAndMe() {
	token := suite.login("Alex", "google")

	w := suite.request("GET", "/v1/auth/me", token, nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(suite.T(), response["success"].(bool))

	user := response["data"].(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(suite.T(), "Alex", user["name"])
	assert.Equal(suite.T(), true, user["isVerified"])
}

func (suite *APITestSuite) TestRequestsWithoutTokenRejected() {
	w := suite.request("POST", "/v1/search", "", map[string]interface{}{"query": "Dior"})
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)

	w = suite.request("GET", "/v1/businesses", "", nil)
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *APITestSuite) TestSearchPipeline() {
	token := suite.login("Alex", "google")

	w := suite.request("POST", "/v1/search", token, map[string]interface{}{
		"query": "Dior Homme Intense",
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(suite.T(), response["success"].(bool))

	data := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), "product", data["type"])
	assert.Equal(suite.T(), "ok", data["status"])

	product := data["product"].(map[string]interface{})
	assert.Equal(suite.T(), "Dior Homme Intense", product["name"])

	// Every style bucket key is present even with no similar products.
	buckets := data["styleBuckets"].(map[string]interface{})
	assert.Len(suite.T(), buckets, 4)
}

func (suite *APITestSuite) TestReviewFlow() {
	token := suite.login("Jamie", "facebook")

	// Load an insight first so the relevant tab has fetched reviews.
	w := suite.request("POST", "/v1/search", token, map[string]interface{}{
		"query": "Dior Homme Intense",
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.request("POST", "/v1/reviews", token, map[string]interface{}{
		"text":  "Lasts all day, worth it.",
		"score": 5,
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	w = suite.request("GET", "/v1/reviews", token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	relevant := response["data"].(map[string]interface{})["relevant"].([]interface{})
	suite.Require().Len(relevant, 2)

	// Locally authored review sits ahead of the fetched one.
	first := relevant[0].(map[string]interface{})
	assert.Equal(suite.T(), "Lasts all day, worth it.", first["text"])
	assert.Equal(suite.T(), "trustpulse", first["source"])

	second := relevant[1].(map[string]interface{})
	assert.Equal(suite.T(), "reddit", second["source"])
}

func (suite *APITestSuite) TestReviewWithoutSignedInUserPromptsLogin() {
	// A valid token whose session was never logged in (or was swept) binds
	// to a blank session; review submission prompts for sign-in.
	token, err := utils.GenerateSessionToken("ghost-session", "Ghost", "google", true, false, false, 24)
	suite.Require().NoError(err)

	w := suite.request("POST", "/v1/reviews", token, map[string]interface{}{
		"text":  "should not land",
		"score": 4,
	})
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)

	var response map[string]interface{}
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(suite.T(), response["success"].(bool))
}

func (suite *APITestSuite) TestGuestReviewForbidden() {
	token := suite.login("Visitor", "guest")

	w := suite.request("POST", "/v1/reviews", token, map[string]interface{}{
		"text":  "guests cannot post",
		"score": 3,
	})
	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func (suite *APITestSuite) TestBusinessDirectory() {
	token := suite.login("Alex", "google")

	// Seeded directory, filtered by term.
	w := suite.request("GET", "/v1/businesses?search=dent&category=All", token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	listings := response["data"].([]interface{})
	suite.Require().Len(listings, 1)
	assert.Equal(suite.T(), "Lumina Dental", listings[0].(map[string]interface{})["businessName"])

	// Creating a listing prepends it to the directory.
	w = suite.request("POST", "/v1/businesses", token, map[string]interface{}{
		"businessName": "Golden Crust Bakery",
		"category":     "Food",
		"description":  "Artisan sourdough baked daily",
		"location":     "Portland, OR",
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	w = suite.request("GET", "/v1/businesses", token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	listings = response["data"].([]interface{})
	suite.Require().Len(listings, 3)
	assert.Equal(suite.T(), "Golden Crust Bakery", listings[0].(map[string]interface{})["businessName"])
}

func (suite *APITestSuite) TestStudioFailureIsSuccessWithNullImage() {
	token := suite.login("Alex", "google")

	// The stub never returns inline images, so generation resolves to null.
	w := suite.request("POST", "/v1/studio/assets", token, map[string]interface{}{
		"prompt":    "minimalist bakery logo",
		"assetType": "logo",
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(suite.T(), response["success"].(bool))
	assert.Nil(suite.T(), response["data"].(map[string]interface{})["image"])
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
