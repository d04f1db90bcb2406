package controller

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/agroconecta/marketplace-service/internal/domain"
	"github.com/agroconecta/marketplace-service/internal/dto"
	"github.com/agroconecta/marketplace-service/pkg/errs"
)

func setupReservationServer(svc *mockReservationService) *echo.Echo {
	e := echo.New()
	g := e.Group("/api")
	CreateReservationController(g, svc)
	return e
}

func TestFilterReservationsEndpoint_CrossCollectionMatch(t *testing.T) {
	reservation := domain.Reservation{ID: primitive.NewObjectID(), ProductID: "p1", Status: "confirmada"}

	svc := &mockReservationService{}
	svc.On("FilterReservations", mock.Anything, map[string]interface{}{
		"categoriaProduto": "fruta",
		"statusReserva":    "confirmada",
	}).Return([]domain.Reservation{reservation}, nil)

	e := setupReservationServer(svc)
	rec := doJSONRequest(e, http.MethodPost, "/api/reservas/filtro", `{"categoriaProduto":"fruta","statusReserva":"confirmada"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Reservas encontradas.", body["message"])

	data, ok := body["data"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, data, 1)
}

func TestFilterReservationsEndpoint_NoMatch(t *testing.T) {
	svc := &mockReservationService{}
	svc.On("FilterReservations", mock.Anything, mock.Anything).Return(nil, errs.ErrNoReservationMatch)

	e := setupReservationServer(svc)
	rec := doJSONRequest(e, http.MethodPost, "/api/reservas/filtro", `{"categoriaProduto":"fruta"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Nenhuma reserva encontrada com os filtros aplicados.", body["message"])
}

func TestAddReservationEndpoint(t *testing.T) {
	svc := &mockReservationService{}
	svc.On("AddReservation", mock.Anything, mock.Anything).Return(dto.DocumentID{ID: "r1"}, nil)

	e := setupReservationServer(svc)
	rec := doJSONRequest(e, http.MethodPost, "/api/reservas", `{"idProduto":"p1","quantidadeReserva":2,"statusReserva":"pendente"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Reserva realizada com sucesso.", body["message"])

	data, ok := body["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "r1", data["Id"])
}

func TestUpdateReservationEndpoint_PartialPayload(t *testing.T) {
	status := "confirmada"

	svc := &mockReservationService{}
	svc.On("UpdateReservation", mock.Anything, "r1", dto.ReservationRequest{Status: &status}).Return(nil)

	e := setupReservationServer(svc)
	rec := doJSONRequest(e, http.MethodPut, "/api/reservas/r1", `{"statusReserva":"confirmada"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestAttachEvaluationEndpoint(t *testing.T) {
	updated := domain.Reservation{ID: primitive.NewObjectID(), Status: "concluida", Stars: 5, Rating: "excelente"}

	stars := 5
	rating := "excelente"

	svc := &mockReservationService{}
	svc.On("AttachEvaluation", mock.Anything, updated.ID.Hex(), dto.EvaluationRequest{Rating: &rating, Stars: &stars}).
		Return(updated, nil)

	e := setupReservationServer(svc)
	rec := doJSONRequest(e, http.MethodPut, "/api/reservas/addAvaliacao/"+updated.ID.Hex(), `{"avaliacaoReserva":"excelente","estrelasReserva":5}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Avaliação adicionada com sucesso.", body["message"])

	data, ok := body["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "excelente", data["avaliacaoReserva"])
	assert.Equal(t, float64(5), data["estrelasReserva"])
}

func TestAttachEvaluationEndpoint_NotFound(t *testing.T) {
	svc := &mockReservationService{}
	svc.On("AttachEvaluation", mock.Anything, "missing", mock.Anything).
		Return(domain.Reservation{}, errs.ErrReservationNotFound)

	e := setupReservationServer(svc)
	rec := doJSONRequest(e, http.MethodPut, "/api/reservas/addAvaliacao/missing", `{"estrelasReserva":1}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Reserva não encontrada", body["message"])
}
