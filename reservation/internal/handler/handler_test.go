package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Astemirdum/restaurant-reservation/reservation/internal/errs"
	"github.com/Astemirdum/restaurant-reservation/reservation/internal/handler"
	"github.com/Astemirdum/restaurant-reservation/reservation/internal/model"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/Astemirdum/restaurant-reservation/reservation/internal/handler/mocks"
)

func intPtr(v int) *int { return &v }

var (
	testDate = time.Date(2023, 10, 5, 19, 0, 0, 0, time.UTC)
	testRsv  = model.Reservation{
		ID:        "c5b1a2f0-7d6c-4b8e-9a61-2f1d2a3b4c5d",
		FirstName: "john",
		LastName:  "doe",
		Email:     "john.doe@mail.com",
		Date:      testDate,
		Seats:     2,
		Status:    model.StatusRequiresApproval,
	}
	testRsvJSON = `{"id":"c5b1a2f0-7d6c-4b8e-9a61-2f1d2a3b4c5d","firstName":"john","lastName":"doe","email":"john.doe@mail.com","date":"2023-10-05T19:00:00Z","seats":2,"status":"requires-approval"}`

	testEntry = model.BlacklistEntry{
		ID:              "0b6f6a0e-3a8b-4f7e-8c1d-9e2f3a4b5c6d",
		PhoneNumber:     "79991234567",
		DateBlacklisted: testDate,
	}
	testEntryJSON = `{"id":"0b6f6a0e-3a8b-4f7e-8c1d-9e2f3a4b5c6d","phoneNumber":"79991234567","dateBlacklisted":"2023-10-05T19:00:00Z"}`
)

type mockBehavior func(r *service_mocks.MockReservationService, b *service_mocks.MockBlacklistService)

type testCase struct {
	name         string
	method       string
	target       string
	body         string
	chunked      bool
	mockBehavior mockBehavior
	expectedCode int
	expectedBody string
}

func runCases(t *testing.T, tests []testCase) {
	t.Helper()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			rsvSvc := service_mocks.NewMockReservationService(c)
			blSvc := service_mocks.NewMockBlacklistService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(rsvSvc, blSvc, log)
			e := h.NewRouter()

			var body io.Reader
			switch {
			case tt.body != "":
				body = strings.NewReader(tt.body)
			case tt.chunked:
				body = http.NoBody
			}
			r := httptest.NewRequest(tt.method, tt.target, body)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(rsvSvc, blSvc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func noCalls(*service_mocks.MockReservationService, *service_mocks.MockBlacklistService) {}

func TestHandler_Base(t *testing.T) {
	t.Parallel()
	runCases(t, []testCase{
		{
			name:         "health",
			method:       http.MethodGet,
			target:       "/manage/health",
			mockBehavior: noCalls,
			expectedCode: http.StatusOK,
			expectedBody: "OK",
		},
		{
			name:         "root",
			method:       http.MethodGet,
			target:       "/",
			mockBehavior: noCalls,
			expectedCode: http.StatusOK,
			expectedBody: `{"content":"The server is running!"}`,
		},
	})
}

func TestHandler_Reservations(t *testing.T) {
	t.Parallel()
	createReq := model.CreateReservationRequest{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john.doe@mail.com",
		Date:      &testDate,
		Seats:     intPtr(2),
	}
	createBody := `{"firstName":"John","lastName":"Doe","email":"john.doe@mail.com","date":"2023-10-05T19:00:00Z","seats":2}`

	runCases(t, []testCase{
		{
			name:   "fetch all. ok",
			method: http.MethodGet,
			target: "/api/reservations/fetch/all",
			mockBehavior: func(r *service_mocks.MockReservationService, _ *service_mocks.MockBlacklistService) {
				r.EXPECT().ListReservations(gomock.Any()).Return([]model.Reservation{testRsv}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"reservations":[` + testRsvJSON + `]}`,
		},
		{
			name:   "fetch all. empty",
			method: http.MethodGet,
			target: "/api/reservations/fetch/all",
			mockBehavior: func(r *service_mocks.MockReservationService, _ *service_mocks.MockBlacklistService) {
				r.EXPECT().ListReservations(gomock.Any()).Return([]model.Reservation{}, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:   "fetch all. err internal",
			method: http.MethodGet,
			target: "/api/reservations/fetch/all",
			mockBehavior: func(r *service_mocks.MockReservationService, _ *service_mocks.MockBlacklistService) {
				r.EXPECT().ListReservations(gomock.Any()).Return(nil, errors.New("db internal"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"db internal"}`,
		},
		{
			name:   "fetch filtered. ok",
			method: http.MethodGet,
			target: "/api/reservations/fetch?startDate=259200000&endDate=604800000&status=reserved",
			mockBehavior: func(r *service_mocks.MockReservationService, _ *service_mocks.MockBlacklistService) {
				r.EXPECT().
					ListFilteredReservations(gomock.Any(), model.ReservationQuery{StartDate: "259200000", EndDate: "604800000", Status: "reserved"}).
					Return(model.ListReservations{Count: 1, Items: []model.Reservation{testRsv}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"count":1,"reservations":[` + testRsvJSON + `]}`,
		},
		{
			name:    "fetch filtered. body of unknown length is not read",
			method:  http.MethodGet,
			target:  "/api/reservations/fetch?startDate=259200000",
			chunked: true,
			mockBehavior: func(r *service_mocks.MockReservationService, _ *service_mocks.MockBlacklistService) {
				r.EXPECT().
					ListFilteredReservations(gomock.Any(), model.ReservationQuery{StartDate: "259200000"}).
					Return(model.ListReservations{Count: 0, Items: []model.Reservation{}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"count":0,"reservations":[]}`,
		},
		{
			name:   "fetch filtered. err bad start date",
			method: http.MethodGet,
			target: "/api/reservations/fetch?startDate=abc",
			mockBehavior: func(r *service_mocks.MockReservationService, _ *service_mocks.MockBlacklistService) {
				r.EXPECT().
					ListFilteredReservations(gomock.Any(), model.ReservationQuery{StartDate: "abc"}).
					Return(model.ListReservations{}, errs.NewValidationError("startDate", "is not a valid epoch timestamp"))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"startDate is not a valid epoch timestamp"}`,
		},
		{
			name:   "fetch by id. ok",
			method: http.MethodGet,
			target: "/api/reservations/fetch/" + testRsv.ID,
			mockBehavior: func(r *service_mocks.MockReservationService, _ *service_mocks.MockBlacklistService) {
				r.EXPECT().GetReservation(gomock.Any(), testRsv.ID).Return(testRsv, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: testRsvJSON,
		},
		{
			name:   "fetch by id. err not found",
			method: http.MethodGet,
			target: "/api/reservations/fetch/missing",
			mockBehavior: func(r *service_mocks.MockReservationService, _ *service_mocks.MockBlacklistService) {
				r.EXPECT().GetReservation(gomock.Any(), "missing").Return(model.Reservation{}, errs.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"not found"}`,
		},
		{
			name:   "create. ok",
			method: http.MethodPost,
			target: "/api/reservations/create",
			body:   createBody,
			mockBehavior: func(r *service_mocks.MockReservationService, _ *service_mocks.MockBlacklistService) {
				r.EXPECT().CreateReservation(gomock.Any(), createReq).Return(testRsv, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: testRsvJSON,
		},
		{
			name:   "create. err blacklisted",
			method: http.MethodPost,
			target: "/api/reservations/create",
			body:   createBody,
			mockBehavior: func(r *service_mocks.MockReservationService, _ *service_mocks.MockBlacklistService) {
				r.EXPECT().CreateReservation(gomock.Any(), createReq).Return(model.Reservation{}, errs.ErrBlacklisted)
			},
			expectedCode: http.StatusForbidden,
			expectedBody: `{"message":"contact is blacklisted"}`,
		},
		{
			name:   "create. err validation",
			method: http.MethodPost,
			target: "/api/reservations/create",
			body:   `{"lastName":"Doe","seats":2}`,
			mockBehavior: func(r *service_mocks.MockReservationService, _ *service_mocks.MockBlacklistService) {
				r.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, errs.NewValidationError("email", "or phoneNumber is required"))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"email or phoneNumber is required"}`,
		},
		{
			name:   "create. err locked",
			method: http.MethodPost,
			target: "/api/reservations/create",
			body:   createBody,
			mockBehavior: func(r *service_mocks.MockReservationService, _ *service_mocks.MockBlacklistService) {
				r.EXPECT().CreateReservation(gomock.Any(), createReq).Return(model.Reservation{}, errs.ErrLocked)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "create. err malformed body",
			method:       http.MethodPost,
			target:       "/api/reservations/create",
			body:         `{"lastName":`,
			mockBehavior: noCalls,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"unexpected EOF"}`,
		},
		{
			name:   "request. ok",
			method: http.MethodPost,
			target: "/api/reservations/request",
			body:   createBody,
			mockBehavior: func(r *service_mocks.MockReservationService, _ *service_mocks.MockBlacklistService) {
				r.EXPECT().RequestReservation(gomock.Any(), createReq).Return(testRsv, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: testRsvJSON,
		},
		{
			name:   "update field. ok",
			method: http.MethodPut,
			target: "/api/reservations/" + testRsv.ID + "/seats",
			body:   `{"value":2}`,
			mockBehavior: func(r *service_mocks.MockReservationService, _ *service_mocks.MockBlacklistService) {
				r.EXPECT().PatchReservationField(gomock.Any(), testRsv.ID, "seats", json.RawMessage(`2`)).Return(testRsv, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: testRsvJSON,
		},
		{
			name:   "update field. err unknown field",
			method: http.MethodPut,
			target: "/api/reservations/" + testRsv.ID + "/owner",
			body:   `{"value":"x"}`,
			mockBehavior: func(r *service_mocks.MockReservationService, _ *service_mocks.MockBlacklistService) {
				r.EXPECT().PatchReservationField(gomock.Any(), testRsv.ID, "owner", json.RawMessage(`"x"`)).
					Return(model.Reservation{}, errs.NewValidationError("owner", "is not an updatable field"))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"owner is not an updatable field"}`,
		},
		{
			name:   "update field. err not found",
			method: http.MethodPut,
			target: "/api/reservations/missing/notes",
			body:   `{"value":"window"}`,
			mockBehavior: func(r *service_mocks.MockReservationService, _ *service_mocks.MockBlacklistService) {
				r.EXPECT().PatchReservationField(gomock.Any(), "missing", "notes", json.RawMessage(`"window"`)).
					Return(model.Reservation{}, errs.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "delete. ok",
			method: http.MethodDelete,
			target: "/api/reservations/" + testRsv.ID,
			mockBehavior: func(r *service_mocks.MockReservationService, _ *service_mocks.MockBlacklistService) {
				r.EXPECT().DeleteReservation(gomock.Any(), testRsv.ID).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"message":"deleted"}`,
		},
		{
			name:   "delete. err already deleted",
			method: http.MethodDelete,
			target: "/api/reservations/" + testRsv.ID,
			mockBehavior: func(r *service_mocks.MockReservationService, _ *service_mocks.MockBlacklistService) {
				r.EXPECT().DeleteReservation(gomock.Any(), testRsv.ID).Return(errs.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"not found"}`,
		},
	})
}

func TestHandler_Blacklist(t *testing.T) {
	t.Parallel()
	runCases(t, []testCase{
		{
			name:   "fetch all. ok",
			method: http.MethodGet,
			target: "/api/blacklist/fetch/all",
			mockBehavior: func(_ *service_mocks.MockReservationService, b *service_mocks.MockBlacklistService) {
				b.EXPECT().ListBlacklist(gomock.Any()).Return([]model.BlacklistEntry{testEntry}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"blacklist":[` + testEntryJSON + `]}`,
		},
		{
			name:   "fetch all. empty",
			method: http.MethodGet,
			target: "/api/blacklist/fetch/all",
			mockBehavior: func(_ *service_mocks.MockReservationService, b *service_mocks.MockBlacklistService) {
				b.EXPECT().ListBlacklist(gomock.Any()).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:   "fetch filtered. ok",
			method: http.MethodGet,
			target: "/api/blacklist/fetch?phoneNumber=79991234567",
			mockBehavior: func(_ *service_mocks.MockReservationService, b *service_mocks.MockBlacklistService) {
				b.EXPECT().ListFilteredBlacklist(gomock.Any(), model.BlacklistQuery{PhoneNumber: "79991234567"}).
					Return(model.ListBlacklist{Count: 1, Items: []model.BlacklistEntry{testEntry}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"count":1,"blacklist":[` + testEntryJSON + `]}`,
		},
		{
			name:    "fetch filtered. body of unknown length is not read",
			method:  http.MethodGet,
			target:  "/api/blacklist/fetch?email=bad@guy.com",
			chunked: true,
			mockBehavior: func(_ *service_mocks.MockReservationService, b *service_mocks.MockBlacklistService) {
				b.EXPECT().ListFilteredBlacklist(gomock.Any(), model.BlacklistQuery{Email: "bad@guy.com"}).
					Return(model.ListBlacklist{Count: 0, Items: []model.BlacklistEntry{}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"count":0,"blacklist":[]}`,
		},
		{
			name:   "create. ok",
			method: http.MethodPost,
			target: "/api/blacklist/create",
			body:   `{"phoneNumber":"79991234567"}`,
			mockBehavior: func(_ *service_mocks.MockReservationService, b *service_mocks.MockBlacklistService) {
				b.EXPECT().CreateBlacklistEntry(gomock.Any(), model.CreateBlacklistRequest{PhoneNumber: "79991234567"}).
					Return(testEntry, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: testEntryJSON,
		},
		{
			name:   "create. err duplicate",
			method: http.MethodPost,
			target: "/api/blacklist/create",
			body:   `{"phoneNumber":"79991234567"}`,
			mockBehavior: func(_ *service_mocks.MockReservationService, b *service_mocks.MockBlacklistService) {
				b.EXPECT().CreateBlacklistEntry(gomock.Any(), gomock.Any()).Return(model.BlacklistEntry{}, errs.ErrDuplicate)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"message":"contact is already blacklisted"}`,
		},
		{
			name:   "update field. ok",
			method: http.MethodPut,
			target: "/api/blacklist/" + testEntry.ID + "/phoneNumber",
			body:   `{"value":"79991234567"}`,
			mockBehavior: func(_ *service_mocks.MockReservationService, b *service_mocks.MockBlacklistService) {
				b.EXPECT().PatchBlacklistField(gomock.Any(), testEntry.ID, "phoneNumber", json.RawMessage(`"79991234567"`)).
					Return(testEntry, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: testEntryJSON,
		},
		{
			name:   "delete. ok",
			method: http.MethodDelete,
			target: "/api/blacklist/" + testEntry.ID,
			mockBehavior: func(_ *service_mocks.MockReservationService, b *service_mocks.MockBlacklistService) {
				b.EXPECT().DeleteBlacklistEntry(gomock.Any(), testEntry.ID).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"message":"deleted"}`,
		},
		{
			name:   "delete. err not found",
			method: http.MethodDelete,
			target: "/api/blacklist/missing",
			mockBehavior: func(_ *service_mocks.MockReservationService, b *service_mocks.MockBlacklistService) {
				b.EXPECT().DeleteBlacklistEntry(gomock.Any(), "missing").Return(errs.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	})
}
