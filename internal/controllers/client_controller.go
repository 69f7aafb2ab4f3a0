package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/fbb-mcp/internal/metrics"
	"github.com/franciscosanchezn/fbb-mcp/internal/models"
	"github.com/franciscosanchezn/fbb-mcp/internal/services"
	"github.com/gin-gonic/gin"
)

type ClientController struct {
	clientService services.ClientService
	metrics       *metrics.Metrics
}

func NewClientController(clientService services.ClientService, m *metrics.Metrics) *ClientController {
	return &ClientController{clientService: clientService, metrics: m}
}

// Register godoc
// @Summary Register OAuth2 client
// @Description Dynamic client registration (RFC 7591). The client secret is only returned once.
// @Tags OAuth2 Clients
// @Accept json
// @Produce json
// @Param client body services.ClientRegistration true "Client metadata"
// @Success 201 {object} models.ClientRegistrationResponse
// @Failure 400 {object} models.OAuth2Error "Invalid client metadata"
// @Failure 500 {object} models.OAuth2Error "Client registration failed"
// @Router /register [post]
func (cc *ClientController) Register(c *gin.Context) {
	var req services.ClientRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewOAuth2Error(models.ErrInvalidClientMetadata, err.Error()))
		return
	}

	client, secret, err := cc.clientService.CreateClient(c.Request.Context(), req)
	cc.metrics.OAuthEvent(metrics.EventRegister, err)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRedirectURI):
			c.JSON(http.StatusBadRequest, models.NewOAuth2Error(models.ErrInvalidRedirectURIMetadata, err.Error()))
		case errors.Is(err, services.ErrUnsupportedAuthMethod), errors.Is(err, services.ErrUnsupportedGrantType):
			c.JSON(http.StatusBadRequest, models.NewOAuth2Error(models.ErrInvalidClientMetadata, err.Error()))
		default:
			log.WithError(err).Error("Client registration failed")
			c.JSON(http.StatusInternalServerError, models.NewOAuth2Error(models.ErrServerError, "client_registration_failed"))
		}
		return
	}

	resp := models.ClientRegistrationResponse{
		ClientID:                client.ClientID,
		ClientSecret:            secret, // Return plain secret only once
		ClientIDIssuedAt:        client.IssuedAt.Unix(),
		ClientName:              client.ClientName,
		RedirectURIs:            client.RedirectURIs,
		GrantTypes:              client.GrantTypes,
		ResponseTypes:           client.ResponseTypes,
		TokenEndpointAuthMethod: client.TokenEndpointAuthMethod,
		Scope:                   client.Scope,
		ClientURI:               client.ClientURI,
		LogoURI:                 client.LogoURI,
	}
	if secret != "" {
		never := int64(0)
		resp.ClientSecretExpiresAt = &never
	}

	log.WithFields(clientFields(client)).Info("Client registered")
	c.JSON(http.StatusCreated, resp)
}
