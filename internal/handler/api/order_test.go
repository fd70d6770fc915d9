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

	"ecommerce-api/internal/domain/order"
	"ecommerce-api/internal/handler/api"
	resdto "ecommerce-api/internal/handler/dto/response"
	"ecommerce-api/internal/invoice"
	"ecommerce-api/internal/usecase/commands"
	"ecommerce-api/internal/usecase/queries"
	"ecommerce-api/tests/common/httptest"
	commandsmock "ecommerce-api/tests/mock/commands"
	queriesmock "ecommerce-api/tests/mock/queries"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCheckout *commandsmock.MockCheckoutCommands
	mockCommands *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
	mockUsers    *queriesmock.MockUserQueries
	handler      *api.OrderHandler
	userID       uuid.UUID
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCheckout = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.mockUsers = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockCheckout, s.mockCommands, s.mockQueries, s.mockUsers, invoice.NewGenerator())
	s.userID = uuid.New()

	// Mock middleware behavior: inject user_id when a token is present
	withUser := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
		}
	}
	s.router.POST("/orders/checkout", withUser, s.handler.Checkout)
	s.router.GET("/orders", withUser, s.handler.ListMine)
	s.router.GET("/orders/:id", withUser, s.handler.Get)
	s.router.POST("/orders/:id/cancel", withUser, s.handler.Cancel)
	s.router.GET("/orders/:id/invoice", withUser, s.handler.Invoice)
	s.router.PUT("/admin/orders/:id/status", s.handler.UpdateStatus)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) orderView(id uuid.UUID, status string) *queries.OrderView {
	return &queries.OrderView{
		ID:              id,
		UserID:          s.userID,
		Status:          status,
		ShippingAddress: "1 Main St",
		TotalCents:      4000,
		Lines: []queries.OrderLineView{
			{ProductID: uuid.New(), ProductName: "Ceramic Mug", Quantity: 2, UnitPriceCents: 1000, SubtotalCents: 2000},
			{ProductID: uuid.New(), ProductName: "Desk Lamp", Quantity: 1, UnitPriceCents: 2500, SubtotalCents: 2500},
		},
	}
}

func (s *OrderHandlerTestSuite) TestCheckout() {
	url := "/orders/checkout"
	couponCode := "SAVE5"
	reqBody := map[string]any{"shippingAddress": "1 Main St", "couponCode": couponCode}

	s.Run("success: returns 201 Created with totals", func() {
		orderID := uuid.New()
		s.mockCheckout.EXPECT().Checkout(gomock.Any(), s.userID, commands.CheckoutRequest{
			ShippingAddress: "1 Main St",
			CouponCode:      &couponCode,
		}).Return(&commands.CheckoutResult{
			OrderID:       orderID,
			SubtotalCents: 4500,
			DiscountCents: 500,
			TotalCents:    4000,
			CouponCode:    &couponCode,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(orderID, response.OrderID)
		s.Equal(int64(4000), response.TotalCents)
		s.Equal(int64(500), response.DiscountCents)
	})

	s.Run("error: 400 Bad Request when shipping address missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"couponCode": couponCode}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "empty cart",
				commandsError:  commands.ErrEmptyCart,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Cart is empty",
			},
			{
				name:           "insufficient stock",
				commandsError:  commands.ErrInsufficientStock,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Not enough stock",
			},
			{
				name:           "coupon usage limit",
				commandsError:  commands.ErrCouponUsageLimit,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Coupon usage limit reached",
			},
			{
				name:           "coupon already used by this user",
				commandsError:  commands.ErrCouponPerUserLimit,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Coupon already used",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Checkout failed",
			},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCheckout.EXPECT().Checkout(gomock.Any(), s.userID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *OrderHandlerTestSuite) TestListMine() {
	s.Run("success: returns 200 OK with own orders", func() {
		views := []queries.OrderView{*s.orderView(uuid.New(), "paid")}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders", nil, "bearer-token")

		var response []resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("paid", response[0].Status)
	})
}

func (s *OrderHandlerTestSuite) TestGet() {
	orderID := uuid.New()

	s.Run("success: returns 200 OK with order detail", func() {
		s.mockQueries.EXPECT().GetByIDForUser(gomock.Any(), orderID, s.userID).
			Return(s.orderView(orderID, "paid"), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+orderID.String(), nil, "bearer-token")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(orderID, response.ID)
		s.Len(response.Lines, 2)
	})

	s.Run("error: returns 404 for another user's order", func() {
		s.mockQueries.EXPECT().GetByIDForUser(gomock.Any(), orderID, s.userID).
			Return(nil, queries.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+orderID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})
}

func (s *OrderHandlerTestSuite) TestCancel() {
	orderID := uuid.New()
	url := "/orders/" + orderID.String() + "/cancel"

	s.Run("success: returns 200 OK with cancelled order", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), orderID, s.userID).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByIDForUser(gomock.Any(), orderID, s.userID).
			Return(s.orderView(orderID, "cancelled"), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cancelled", response.Status)
	})

	s.Run("error: returns 400 when order already shipped", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), orderID, s.userID).
			Return(order.ErrNotCancellable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "no longer be cancelled")
	})
}

func (s *OrderHandlerTestSuite) TestUpdateStatus() {
	orderID := uuid.New()
	url := "/admin/orders/" + orderID.String() + "/status"

	s.Run("success: returns 200 OK with updated order", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), orderID, "shipped").
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), orderID).
			Return(s.orderView(orderID, "shipped"), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "shipped"}, "bearer-token")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("shipped", response.Status)
	})

	s.Run("error: 400 Bad Request for unknown status value", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "teleported"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps transition errors to 400", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), orderID, "shipped").
			Return(order.ErrNotPaidYet).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "shipped"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *OrderHandlerTestSuite) TestInvoice() {
	orderID := uuid.New()
	url := "/orders/" + orderID.String() + "/invoice"

	s.Run("success: returns a PDF attachment", func() {
		s.mockQueries.EXPECT().GetByIDForUser(gomock.Any(), orderID, s.userID).
			Return(s.orderView(orderID, "paid"), nil).Times(1)
		s.mockUsers.EXPECT().GetByID(gomock.Any(), s.userID).
			Return(&queries.UserView{ID: s.userID, Email: "jane@example.com", FullName: "Jane Doe"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		s.Equal("application/pdf", rec.Header().Get("Content-Type"))
		s.Contains(rec.Header().Get("Content-Disposition"), orderID.String())
		s.NotEmpty(rec.Body.Bytes())
	})

	s.Run("error: returns 404 for unknown order", func() {
		s.mockQueries.EXPECT().GetByIDForUser(gomock.Any(), orderID, s.userID).
			Return(nil, queries.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})
}
