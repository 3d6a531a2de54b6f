package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"healthshop/internal/auth"
	apperrors "healthshop/internal/errors"
	"healthshop/internal/model"
)

func TestMedicineHandler_ListMedicines(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantFilter model.MedicineFilter
		wantCode   string
	}{
		{
			name:       "search and ascending sort",
			target:     "/allmedicine?search=napa&sort=asc",
			wantFilter: model.MedicineFilter{Search: "napa", Sort: model.PriceSortAsc},
		},
		{
			name:       "descending with paging",
			target:     "/allmedicine?sort=DESC&page=2&size=10",
			wantFilter: model.MedicineFilter{Sort: model.PriceSortDesc, Page: 2, Size: 10},
		},
		{
			name:       "unknown sort ignored",
			target:     "/allmedicine?sort=random",
			wantFilter: model.MedicineFilter{},
		},
		{
			name:     "bad page",
			target:   "/allmedicine?page=abc",
			wantCode: "VALIDATION_ERROR",
		},
		{
			name:     "negative size",
			target:   "/allmedicine?size=-1",
			wantCode: "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockMedicineService)
			svc.On("List", mock.Anything, tt.wantFilter).Return([]model.Medicine{{Name: "Napa"}}, nil)
			h := NewMedicineHandler(svc)
			c, rec := newJSONContext(newEcho(), http.MethodGet, tt.target, "")

			err := h.ListMedicines(c)

			if tt.wantCode != "" {
				assertHTTPError(t, err, http.StatusBadRequest, tt.wantCode)
				svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestMedicineHandler_CreateUsesCallerAsOwner(t *testing.T) {
	svc := new(MockMedicineService)
	svc.On("Create", mock.Anything, mock.MatchedBy(func(m *model.Medicine) bool {
		return m.Name == "Napa" && m.Price == 2.5
	}), "seller@b.com").Return(&model.Medicine{Name: "Napa", Price: 2.5, Email: "seller@b.com"}, nil)
	h := NewMedicineHandler(svc)
	c, rec := newJSONContext(newEcho(), http.MethodPost, "/medicine", `{"name":"Napa","price":2.5,"category":"Tablet"}`)
	c.Set(auth.ContextKey, &auth.Claims{Email: "seller@b.com"})

	require.NoError(t, h.CreateMedicine(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	svc.AssertExpectations(t)
}

func TestMedicineHandler_CreateWithoutPrice(t *testing.T) {
	svc := new(MockMedicineService)
	svc.On("Create", mock.Anything, mock.Anything, "").Return(nil, apperrors.ErrInvalidPrice)
	h := NewMedicineHandler(svc)
	c, _ := newJSONContext(newEcho(), http.MethodPost, "/medicine", `{"name":"Napa"}`)

	assertHTTPError(t, h.CreateMedicine(c), http.StatusBadRequest, "INVALID_PRICE")
}

func TestMedicineHandler_UpdateAndDelete(t *testing.T) {
	price := 4.0
	svc := new(MockMedicineService)
	svc.On("Update", mock.Anything, "665f1c2b9a1e4b0012345678", model.MedicineUpdate{Price: &price}).Return(&model.Medicine{Price: 4}, nil)
	svc.On("Delete", mock.Anything, "665f1c2b9a1e4b0012345678").Return(apperrors.ErrNotFound)
	h := NewMedicineHandler(svc)
	e := newEcho()

	c, rec := newJSONContext(e, http.MethodPut, "/medicine/665f1c2b9a1e4b0012345678", `{"price":4}`)
	c.SetParamNames("id")
	c.SetParamValues("665f1c2b9a1e4b0012345678")
	require.NoError(t, h.UpdateMedicine(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, _ = newJSONContext(e, http.MethodPut, "/medicine/665f1c2b9a1e4b0012345678", `{"discount":150}`)
	c.SetParamNames("id")
	c.SetParamValues("665f1c2b9a1e4b0012345678")
	assertHTTPError(t, h.UpdateMedicine(c), http.StatusBadRequest, "VALIDATION_ERROR")

	c, _ = newJSONContext(e, http.MethodDelete, "/medicine/665f1c2b9a1e4b0012345678", "")
	c.SetParamNames("id")
	c.SetParamValues("665f1c2b9a1e4b0012345678")
	assertHTTPError(t, h.DeleteMedicine(c), http.StatusNotFound, "NOT_FOUND")
	svc.AssertExpectations(t)
}

func TestMedicineHandler_ListByOwnerWithoutEmail(t *testing.T) {
	svc := new(MockMedicineService)
	svc.On("ListByOwner", mock.Anything, "").Return(nil, apperrors.ErrMissingEmail)
	h := NewMedicineHandler(svc)
	c, _ := newJSONContext(newEcho(), http.MethodGet, "/api/medicines", "")

	assertHTTPError(t, h.ListByOwner(c), http.StatusBadRequest, "MISSING_EMAIL")
}
