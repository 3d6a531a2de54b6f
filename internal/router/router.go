package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"healthshop/internal/config"
	apperrors "healthshop/internal/errors"
	"healthshop/internal/handler"
)

// Handlers groups the HTTP handlers served by the API.
type Handlers struct {
	User     *handler.UserHandler
	Medicine *handler.MedicineHandler
	Catalog  *handler.CatalogHandler
	Cart     *handler.CartHandler
	Payment  *handler.PaymentHandler
	Join     *handler.JoinHandler
	Auth     *handler.AuthHandler
}

// Register wires routes and middleware. requireAuth guards privileged mutations.
func Register(e *echo.Echo, cfg *config.Config, h Handlers, requireAuth echo.MiddlewareFunc) {
	e.HTTPErrorHandler = ErrorHandler
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowCredentials: true,
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "HealthShop server is running")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Users
	e.PUT("/user", h.User.UpsertUser)
	e.GET("/user", h.User.ListUsers)
	e.GET("/user/:email", h.User.GetUser)
	e.PUT("/user/:id", h.User.UpdateRole, requireAuth)
	e.DELETE("/user/:id", h.User.DeleteUser, requireAuth)

	// Medicines
	e.GET("/allmedicine", h.Medicine.ListMedicines)
	e.GET("/medicines/:category", h.Medicine.ListByCategory)
	e.GET("/discount-products", h.Medicine.ListDiscounted)
	e.GET("/api/medicines", h.Medicine.ListByOwner)
	e.GET("/medicine/:id", h.Medicine.GetMedicine)
	e.POST("/medicine", h.Medicine.CreateMedicine, requireAuth)
	e.PUT("/medicine/:id", h.Medicine.UpdateMedicine, requireAuth)
	e.DELETE("/medicine/:id", h.Medicine.DeleteMedicine, requireAuth)

	// Reference data
	e.GET("/allcategory", h.Catalog.ListCategories)
	e.GET("/testimonial", h.Catalog.ListTestimonials)

	// Cart
	e.PUT("/add-to-cart", h.Cart.AddToCart)
	e.PUT("/update-cart-item", h.Cart.SetQuantity)
	e.PUT("/cart/update-quantity", h.Cart.AdjustQuantity)
	e.GET("/cart", h.Cart.ListCart)
	e.GET("/cart/:email", h.Cart.ListCart)
	e.GET("/cart-count/:email", h.Cart.CountCart)
	e.DELETE("/cart/clear", h.Cart.ClearCart)
	e.DELETE("/cart/item/:id", h.Cart.RemoveItem)

	// Payments
	e.POST("/create-payment-intent", h.Payment.CreatePaymentIntent)
	e.POST("/payment", h.Payment.RecordPayment)

	e.POST("/join-us", h.Join.Join)

	// Auth
	e.POST("/jwt", h.Auth.IssueToken)
	e.POST("/logout", h.Auth.Logout)
}

// ErrorHandler renders every error as an errors.ErrorResponse envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := renderError(err)
	if status >= http.StatusInternalServerError {
		c.Logger().Errorf("request %s: %v", c.Response().Header().Get(echo.HeaderXRequestID), err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		c.Logger().Error(err)
	}
}

func renderError(err error) (int, apperrors.ErrorResponse) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch msg := he.Message.(type) {
		case apperrors.ErrorResponse:
			return he.Code, msg
		case string:
			return he.Code, apperrors.ErrorResponse{Error: msg, Code: codeForStatus(he.Code)}
		default:
			return he.Code, apperrors.ErrorResponse{Error: http.StatusText(he.Code), Code: codeForStatus(he.Code)}
		}
	}

	httpErr := apperrors.MapErrorToHTTP(err)
	return httpErr.StatusCode, httpErr.ToErrorResponse()
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "INVALID_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	default:
		return "INTERNAL_ERROR"
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
