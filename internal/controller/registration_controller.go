package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/agroconecta/marketplace-service/internal/dto"
	"github.com/agroconecta/marketplace-service/internal/service"
	"github.com/agroconecta/marketplace-service/pkg/errs"
	"github.com/agroconecta/marketplace-service/pkg/response"
)

type RegistrationController struct {
	service service.RegistrationService
}

func CreateRegistrationController(e *echo.Group, service service.RegistrationService) {
	c := RegistrationController{
		service: service,
	}
	g := e.Group("/cadastros")
	g.GET("", c.GetRegistrations)
	g.GET("/:id", c.GetRegistrationByID)
	g.POST("", c.AddRegistration)
	g.PUT("/:id", c.UpdateRegistration)
	g.DELETE("/:id", c.DeleteRegistration)
}

func (c *RegistrationController) AddRegistration(e echo.Context) error {
	payload := dto.RegistrationRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "AddRegistration").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, "Erro ao criar o cadastro")
	}

	id, err := c.service.AddRegistration(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, "Erro ao criar o cadastro")
	}

	return response.WriteSuccessResponse(e, "Usuário cadastrado com sucesso.", id)
}

func (c *RegistrationController) GetRegistrations(e echo.Context) error {
	data, err := c.service.GetRegistrations(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, "Erro ao buscar os cadastros")
	}

	return response.WriteSuccessResponse(e, "Lista de usuário cadastrados:", data)
}

func (c *RegistrationController) GetRegistrationByID(e echo.Context) error {
	id := e.Param("id")

	registration, err := c.service.GetRegistrationByID(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, "Erro ao buscar o cadastro")
	}

	return response.WriteSuccessResponse(e, "Cadastro encontrado.", registration)
}

func (c *RegistrationController) UpdateRegistration(e echo.Context) error {
	id := e.Param("id")

	payload := dto.RegistrationRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "UpdateRegistration").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, "Erro ao atualizar o cadastro")
	}

	if err := c.service.UpdateRegistration(e.Request().Context(), id, payload); err != nil {
		return response.WriteErrorResponse(e, err, "Erro ao atualizar o cadastro")
	}

	return response.WriteSuccessResponse(e, "Cadastro atualizado com sucesso.", nil)
}

func (c *RegistrationController) DeleteRegistration(e echo.Context) error {
	id := e.Param("id")

	if err := c.service.DeleteRegistration(e.Request().Context(), id); err != nil {
		return response.WriteErrorResponse(e, err, "Erro ao excluir o cadastro")
	}

	return response.WriteSuccessResponse(e, "Cadastro excluído com sucesso.", nil)
}
