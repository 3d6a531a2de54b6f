package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"healthshop/internal/auth"
	apperrors "healthshop/internal/errors"
	"healthshop/internal/model"
	"healthshop/internal/service"
)

// MedicineHandler handles medicine catalogue endpoints.
type MedicineHandler struct {
	medicineService service.MedicineService
}

// NewMedicineHandler creates a new medicine handler.
func NewMedicineHandler(medicineService service.MedicineService) *MedicineHandler {
	return &MedicineHandler{medicineService: medicineService}
}

// ListMedicines godoc
// @Summary List medicines
// @Description Case-insensitive search over name, generic name and company, optionally sorted by price.
// @Tags medicines
// @Produce json
// @Param search query string false "Search term"
// @Param sort query string false "Price order" Enums(asc, desc)
// @Param page query int false "Page number, starting at 1"
// @Param size query int false "Page size, 0 for all"
// @Success 200 {array} model.Medicine
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /allmedicine [get]
func (h *MedicineHandler) ListMedicines(c echo.Context) error {
	filter := model.MedicineFilter{
		Search: c.QueryParam("search"),
		Sort:   parsePriceSort(c.QueryParam("sort")),
	}
	err := echo.QueryParamsBinder(c).
		Int64("page", &filter.Page).
		Int64("size", &filter.Size).
		BindError()
	if err != nil || filter.Page < 0 || filter.Size < 0 {
		return invalidInput(apperrors.NewValidationError("page and size must be non-negative integers"))
	}

	medicines, err := h.medicineService.List(c.Request().Context(), filter)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, medicines)
}

func parsePriceSort(raw string) model.PriceSort {
	switch strings.ToLower(raw) {
	case "asc":
		return model.PriceSortAsc
	case "desc":
		return model.PriceSortDesc
	default:
		return model.PriceSortNone
	}
}

// ListByCategory godoc
// @Summary List medicines in a category
// @Tags medicines
// @Produce json
// @Param category path string true "Category name"
// @Success 200 {array} model.Medicine
// @Failure 500 {object} errors.ErrorResponse
// @Router /medicines/{category} [get]
func (h *MedicineHandler) ListByCategory(c echo.Context) error {
	medicines, err := h.medicineService.ListByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, medicines)
}

// ListDiscounted godoc
// @Summary List discounted medicines
// @Tags medicines
// @Produce json
// @Success 200 {array} model.Medicine
// @Failure 500 {object} errors.ErrorResponse
// @Router /discount-products [get]
func (h *MedicineHandler) ListDiscounted(c echo.Context) error {
	medicines, err := h.medicineService.ListDiscounted(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, medicines)
}

// ListByOwner godoc
// @Summary List medicines listed by a seller
// @Tags medicines
// @Produce json
// @Param email query string true "Seller email"
// @Success 200 {array} model.Medicine
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/medicines [get]
func (h *MedicineHandler) ListByOwner(c echo.Context) error {
	medicines, err := h.medicineService.ListByOwner(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, medicines)
}

// GetMedicine godoc
// @Summary Get medicine by id
// @Tags medicines
// @Produce json
// @Param id path string true "Medicine ID"
// @Success 200 {object} model.Medicine
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /medicine/{id} [get]
func (h *MedicineHandler) GetMedicine(c echo.Context) error {
	medicine, err := h.medicineService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, medicine)
}

// CreateMedicine godoc
// @Summary Add a medicine
// @Description The owner email defaults to the signed-in user when omitted.
// @Tags medicines
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param medicine body model.Medicine true "Medicine payload"
// @Success 201 {object} model.Medicine
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /medicine [post]
func (h *MedicineHandler) CreateMedicine(c echo.Context) error {
	var medicine model.Medicine
	if err := c.Bind(&medicine); err != nil {
		return invalidBody()
	}

	var owner string
	if claims, ok := auth.ClaimsFrom(c); ok {
		owner = claims.Email
	}

	created, err := h.medicineService.Create(c.Request().Context(), &medicine, owner)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateMedicine godoc
// @Summary Update medicine fields
// @Description Replaces only the fields present in the body.
// @Tags medicines
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path string true "Medicine ID"
// @Param update body model.MedicineUpdate true "Fields to replace"
// @Success 200 {object} model.Medicine
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /medicine/{id} [put]
func (h *MedicineHandler) UpdateMedicine(c echo.Context) error {
	var update model.MedicineUpdate
	if err := c.Bind(&update); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&update); err != nil {
		return invalidInput(err)
	}

	medicine, err := h.medicineService.Update(c.Request().Context(), c.Param("id"), update)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, medicine)
}

// DeleteMedicine godoc
// @Summary Delete medicine
// @Tags medicines
// @Produce json
// @Security CookieAuth
// @Param id path string true "Medicine ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /medicine/{id} [delete]
func (h *MedicineHandler) DeleteMedicine(c echo.Context) error {
	if err := h.medicineService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "medicine deleted"})
}
