package create_reservation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
)

type fakeUseCase struct {
	resp *createReservation.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *createReservation.Request) (*createReservation.Response, error) {
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc CreateReservationUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func decodeCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Code
}

const validBody = `{"dateAndTime":"2025-07-01 18:00:00","room":"Sakura","diner":"Tanaka","partySize":4}`

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &createReservation.Response{
		Room:      "Sakura",
		Diner:     "Tanaka",
		PartySize: 4,
	}}

	rec := doRequest(t, uc, validBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "success", decodeCode(t, rec))
}

func TestHandle_RejectionCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid datetime", createReservation.ErrInvalidDateTime, http.StatusBadRequest, "invalid-datetime"},
		{"invalid party size", createReservation.ErrInvalidPartySize, http.StatusBadRequest, "invalid-party-size"},
		{"diner unknown", createReservation.ErrDinerUnknown, http.StatusNotFound, "diner-unknown"},
		{"room unknown", createReservation.ErrRoomUnknown, http.StatusNotFound, "room-unknown"},
		{"both unknown", createReservation.ErrBothUnknown, http.StatusNotFound, "both-unknown"},
		{"room overlap", createReservation.ErrRoomOverlap, http.StatusConflict, "room-overlap"},
		{"diner overlap", createReservation.ErrDinerOverlap, http.StatusConflict, "diner-overlap"},
		{"both overlap", createReservation.ErrBothOverlap, http.StatusConflict, "both-overlap"},
		{"infra fault", errors.New("connection refused"), http.StatusInternalServerError, "infra-fault"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, validBody)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeCode(t, rec))
		})
	}
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{broken`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UnparsableDateTime(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{},
		`{"dateAndTime":"01.07.2025 18:00","room":"Sakura","diner":"Tanaka","partySize":4}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
