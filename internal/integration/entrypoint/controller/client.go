package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cohetebrands/backoffice/internal/application/usecase/client"
	domainerror "github.com/cohetebrands/backoffice/internal/domain/error"
	"github.com/cohetebrands/backoffice/internal/integration/entrypoint/dto"
)

// ClientController handles client registry endpoints.
type ClientController struct {
	listUseCase   *client.ListClientsUseCase
	createUseCase *client.CreateClientUseCase
	updateUseCase *client.UpdateClientUseCase
	deleteUseCase *client.DeleteClientUseCase
}

// NewClientController creates a new client controller instance.
func NewClientController(
	listUseCase *client.ListClientsUseCase,
	createUseCase *client.CreateClientUseCase,
	updateUseCase *client.UpdateClientUseCase,
	deleteUseCase *client.DeleteClientUseCase,
) *ClientController {
	return &ClientController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /clients requests.
func (c *ClientController) List(ctx *gin.Context) {
	clients, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientListResponse(clients))
}

// Create handles POST /clients requests.
func (c *ClientController) Create(ctx *gin.Context) {
	var request dto.CreateClientRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err, string(domainerror.ErrCodeClientNameRequired)))
		return
	}

	created, err := c.createUseCase.Execute(ctx.Request.Context(), client.CreateClientInput{
		Name:    request.Name,
		Company: request.Company,
		Email:   request.Email,
		Phone:   request.Phone,
		RFC:     request.RFC,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToClientResponse(created))
}

// Update handles PUT /clients/:id requests.
func (c *ClientController) Update(ctx *gin.Context) {
	clientID, ok := parsePathID(ctx)
	if !ok {
		return
	}

	var request dto.UpdateClientRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err, string(domainerror.ErrCodeClientNameRequired)))
		return
	}

	updated, err := c.updateUseCase.Execute(ctx.Request.Context(), client.UpdateClientInput{
		ClientID: clientID,
		Name:     request.Name,
		Company:  request.Company,
		Email:    request.Email,
		Phone:    request.Phone,
		RFC:      request.RFC,
		IsActive: request.IsActive,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientResponse(updated))
}

// Delete handles DELETE /clients/:id requests. Ledger entries and templates
// that referenced the client keep their history with the link cleared.
func (c *ClientController) Delete(ctx *gin.Context) {
	clientID, ok := parsePathID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), clientID); err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Client deleted"})
}
