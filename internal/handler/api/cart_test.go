//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"ecommerce-api/internal/handler/api"
	resdto "ecommerce-api/internal/handler/dto/response"
	"ecommerce-api/internal/usecase/commands"
	"ecommerce-api/internal/usecase/queries"
	"ecommerce-api/tests/common/httptest"
	commandsmock "ecommerce-api/tests/mock/commands"
	queriesmock "ecommerce-api/tests/mock/queries"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	mockQueries  *queriesmock.MockCartQueries
	handler      *api.CartHandler
	userID       uuid.UUID
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCartQueries(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock middleware behavior: inject user_id when a token is present
	withUser := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
		}
	}
	s.router.GET("/cart", withUser, s.handler.Get)
	s.router.POST("/cart/items", withUser, s.handler.AddOrUpdate)
	s.router.DELETE("/cart/items/:id", withUser, s.handler.Remove)
	s.router.DELETE("/cart", withUser, s.handler.Clear)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) cartView() *queries.CartView {
	return &queries.CartView{
		Lines: []queries.CartLineView{
			{
				LineID:         uuid.New(),
				ProductID:      uuid.New(),
				ProductName:    "Ceramic Mug",
				UnitPriceCents: 1000,
				Quantity:       2,
				SubtotalCents:  2000,
			},
		},
		SubtotalCents: 2000,
	}
}

func (s *CartHandlerTestSuite) TestGet() {
	s.Run("success: returns 200 OK with cart contents", func() {
		s.mockQueries.EXPECT().GetByUser(gomock.Any(), s.userID).
			Return(s.cartView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "bearer-token")

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Lines, 1)
		s.Equal(int64(2000), response.SubtotalCents)
	})

	s.Run("error: returns 401 without user context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *CartHandlerTestSuite) TestAddOrUpdate() {
	url := "/cart/items"
	productID := uuid.New()
	reqBody := map[string]any{"productId": productID, "quantity": 2}

	s.Run("success: returns 200 OK with refreshed cart", func() {
		s.mockCommands.EXPECT().AddOrUpdate(gomock.Any(), s.userID, commands.AddCartLineRequest{
			ProductID: productID,
			Quantity:  2,
		}).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByUser(gomock.Any(), s.userID).
			Return(s.cartView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name string
			body map[string]any
		}{
			{name: "missing productId", body: map[string]any{"quantity": 2}},
			{name: "missing quantity", body: map[string]any{"productId": productID}},
			{name: "zero quantity", body: map[string]any{"productId": productID, "quantity": 0}},
			{name: "negative quantity", body: map[string]any{"productId": productID, "quantity": -1}},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "product not found",
				commandsError:  commands.ErrCartProductNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Product not found",
			},
			{
				name:           "out of stock",
				commandsError:  commands.ErrCartOutOfStock,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Product is out of stock",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to update cart",
			},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().AddOrUpdate(gomock.Any(), s.userID, gomock.Any()).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *CartHandlerTestSuite) TestRemove() {
	lineID := uuid.New()

	s.Run("success: returns message envelope", func() {
		s.mockCommands.EXPECT().Remove(gomock.Any(), s.userID, lineID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/items/"+lineID.String(), nil, "bearer-token")
		httptest.AssertMessageResponse(s.T(), rec, http.StatusOK, "Cart line removed")
	})

	s.Run("error: returns 400 for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/items/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: returns 404 for unknown line", func() {
		s.mockCommands.EXPECT().Remove(gomock.Any(), s.userID, lineID).
			Return(commands.ErrCartLineNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/items/"+lineID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Cart line not found")
	})
}

func (s *CartHandlerTestSuite) TestClear() {
	s.Run("success: returns message envelope", func() {
		s.mockCommands.EXPECT().Clear(gomock.Any(), s.userID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart", nil, "bearer-token")
		httptest.AssertMessageResponse(s.T(), rec, http.StatusOK, "Cart cleared")
	})
}
