//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"sport-rental/internal/domain/equipment"
	"sport-rental/internal/handler/api"
	reqdto "sport-rental/internal/handler/dto/request"
	resdto "sport-rental/internal/handler/dto/response"
	"sport-rental/internal/pkg/errs"
	"sport-rental/internal/usecase/commands"
	"sport-rental/tests/common/builder"
	"sport-rental/tests/common/httptest"
	"sport-rental/tests/common/testutil"
	commandsmock "sport-rental/tests/mock/commands"
	queriesmock "sport-rental/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EquipmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockEquipmentCommands
	mockQueries  *queriesmock.MockEquipmentQueries
	handler      *api.EquipmentHandler
}

func (s *EquipmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockEquipmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockEquipmentQueries(s.mockCtrl)
	s.handler = api.NewEquipmentHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/equipment", s.handler.Create)
	s.router.GET("/equipment", s.handler.List)
	s.router.GET("/equipment/:id", s.handler.Get)
	s.router.PATCH("/equipment/:id", s.handler.Update)
	s.router.DELETE("/equipment/:id", s.handler.Delete)
}

func (s *EquipmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEquipmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(EquipmentHandlerTestSuite))
}

type testCaseEquipment struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *EquipmentHandlerTestSuite) TestCreate() {
	url := "/equipment"
	reqBody := builder.NewEquipmentBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().CreateEquipment(gomock.Any(), reqBody.ToInput(reqdto.CreateOptions{})).
			Return(int32(8), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(int32(8), body.ID)
	})

	s.Run("request shape", func() {
		cases := []testCaseEquipment{
			{name: "missing name", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
			{name: "price as string", mutate: testutil.Field("price", "skupo"), expectCode: http.StatusBadRequest},
			{name: "missing available defaults to true", mutate: testutil.Field("available", nil), expectCode: http.StatusCreated},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().CreateEquipment(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ any, in commands.CreateEquipmentInput) (int32, error) {
							s.True(in.Attributes.Available)
							return 1, nil
						}).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: validation errors are 422 with a code", func() {
		testCases := []struct {
			err  error
			code string
		}{
			{errs.Mark(equipment.ErrNegativeQuantity, errs.ErrDomainValidation), "negative_quantity"},
			{errs.Mark(equipment.ErrNonPositivePrice, errs.ErrDomainValidation), "non_positive_price"},
		}
		for _, tc := range testCases {
			s.Run(tc.code, func() {
				s.mockCommands.EXPECT().CreateEquipment(gomock.Any(), gomock.Any()).Return(int32(0), tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorCode(s.T(), rec, http.StatusUnprocessableEntity, tc.code)
			})
		}
	})
}

// ================================================================================
// TestGet / TestList
// ================================================================================

func (s *EquipmentHandlerTestSuite) TestGet() {
	s.Run("success: returns the equipment", func() {
		view := builder.NewEquipmentBuilder().WithID(3).BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int32(3)).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/equipment/3", nil)

		var body resdto.EquipmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.EquipmentResponse{
			ID: 3, Name: "Skije Atomic", TypeID: 2, Available: true, Price: 1500, Quantity: 5, Location: "Kopaonik",
		}, body)
	})

	s.Run("error: 400 for non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/equipment/abc", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 for unknown id", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int32(99)).Return(nil, errs.ErrEquipmentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/equipment/99", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Equipment not found")
	})
}

func (s *EquipmentHandlerTestSuite) TestList() {
	s.mockQueries.EXPECT().List(gomock.Any()).Return(nil, errs.Mark(errors.New("down"), errs.ErrDatabaseOperationFailed)).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/equipment", nil)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
}

// ================================================================================
// TestUpdate / TestDelete
// ================================================================================

func (s *EquipmentHandlerTestSuite) TestUpdate() {
	url := "/equipment/3"

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().UpdatePriceQuantity(gomock.Any(), int32(3), 999.5, int32(0)).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"price": 999.5, "quantity": 0})
		s.Equal(http.StatusNoContent, rec.Code, rec.Body.String())
	})

	s.Run("error: 400 when quantity is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"price": 10})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 404 for unknown id", func() {
		s.mockCommands.EXPECT().UpdatePriceQuantity(gomock.Any(), int32(3), gomock.Any(), gomock.Any()).
			Return(errs.ErrEquipmentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"price": 10, "quantity": 1})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Equipment not found")
	})
}

func (s *EquipmentHandlerTestSuite) TestDelete() {
	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().DeleteEquipment(gomock.Any(), int32(3)).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/equipment/3", nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 while reserved", func() {
		s.mockCommands.EXPECT().DeleteEquipment(gomock.Any(), int32(3)).
			Return(errs.Mark(errors.New("fk"), errs.ErrStillReferenced)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/equipment/3", nil)
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "still_referenced")
	})
}
