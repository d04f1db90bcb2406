package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/agroconecta/marketplace-service/internal/dto"
	"github.com/agroconecta/marketplace-service/internal/service"
	"github.com/agroconecta/marketplace-service/pkg/errs"
	"github.com/agroconecta/marketplace-service/pkg/response"
)

type ReservationController struct {
	service service.ReservationService
}

func CreateReservationController(e *echo.Group, service service.ReservationService) {
	c := ReservationController{
		service: service,
	}
	g := e.Group("/reservas")
	g.GET("", c.GetReservations)
	g.POST("/filtro", c.FilterReservations)
	g.GET("/:id", c.GetReservationByID)
	g.POST("", c.AddReservation)
	g.PUT("/addAvaliacao/:id", c.AttachEvaluation)
	g.PUT("/:id", c.UpdateReservation)
	g.DELETE("/:id", c.DeleteReservation)
}

func (c *ReservationController) AddReservation(e echo.Context) error {
	payload := dto.ReservationRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "AddReservation").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, "Erro ao criar a reserva")
	}

	id, err := c.service.AddReservation(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, "Erro ao criar a reserva")
	}

	return response.WriteSuccessResponse(e, "Reserva realizada com sucesso.", id)
}

func (c *ReservationController) GetReservations(e echo.Context) error {
	data, err := c.service.GetReservations(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, "Erro ao buscar as reservas")
	}

	return response.WriteSuccessResponse(e, "Lista de reservas:", data)
}

func (c *ReservationController) FilterReservations(e echo.Context) error {
	filters := map[string]interface{}{}
	if err := e.Bind(&filters); err != nil {
		log.Error().Err(err).Str("component", "FilterReservations").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, "Erro ao buscar as reservas")
	}

	data, err := c.service.FilterReservations(e.Request().Context(), filters)
	if err != nil {
		return response.WriteErrorResponse(e, err, "Erro ao buscar as reservas")
	}

	return response.WriteSuccessResponse(e, "Reservas encontradas.", data)
}

func (c *ReservationController) GetReservationByID(e echo.Context) error {
	id := e.Param("id")

	reservation, err := c.service.GetReservationByID(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, "Erro ao buscar a reserva")
	}

	return response.WriteSuccessResponse(e, "Reserva encontrada.", reservation)
}

func (c *ReservationController) UpdateReservation(e echo.Context) error {
	id := e.Param("id")

	payload := dto.ReservationRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "UpdateReservation").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, "Erro ao atualizar a reserva")
	}

	if err := c.service.UpdateReservation(e.Request().Context(), id, payload); err != nil {
		return response.WriteErrorResponse(e, err, "Erro ao atualizar a reserva")
	}

	return response.WriteSuccessResponse(e, "Reserva atualizada com sucesso.", nil)
}

func (c *ReservationController) DeleteReservation(e echo.Context) error {
	id := e.Param("id")

	if err := c.service.DeleteReservation(e.Request().Context(), id); err != nil {
		return response.WriteErrorResponse(e, err, "Erro ao excluir a reserva")
	}

	return response.WriteSuccessResponse(e, "Reserva excluída com sucesso.", nil)
}

func (c *ReservationController) AttachEvaluation(e echo.Context) error {
	id := e.Param("id")

	payload := dto.EvaluationRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "AttachEvaluation").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, "Erro ao realizar avaliação")
	}

	reservation, err := c.service.AttachEvaluation(e.Request().Context(), id, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, "Erro ao realizar avaliação")
	}

	return response.WriteSuccessResponse(e, "Avaliação adicionada com sucesso.", reservation)
}
