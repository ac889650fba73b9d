package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/storefront-web/internal/adapters/http/dto"
	"github.com/jsamuelsen/storefront-web/internal/adapters/http/middleware"
	"github.com/jsamuelsen/storefront-web/internal/app"
	"github.com/jsamuelsen/storefront-web/internal/domain"
	"github.com/jsamuelsen/storefront-web/internal/platform/logging"
)

// Flash messages shown after the account details form is posted.
const (
	FlashDetailsSaved  = "Changes applied successfully."
	FlashDetailsFailed = "There was an error, please try again."
)

// lastLoginMethodCookie is cleared whenever the publisher profile is read.
const lastLoginMethodCookie = "last_login_method"

// Account page paths used as redirect targets.
const (
	pathAccount         = "/account"
	pathAccountDetails  = "/account/details"
	pathAccountAgree    = "/account/agreement"
	pathAccountUsername = "/account/username"
)

// AccountHandlerConfig contains the dependencies of the account handler.
type AccountHandlerConfig struct {
	Service *app.AccountService

	// SnapsURL is where GET /account sends the publisher.
	SnapsURL string

	// LoginURL is where requests without a publisher session are sent.
	LoginURL string
}

// AccountHandler serves the publisher account pages.
type AccountHandler struct {
	service  *app.AccountService
	snapsURL string
	loginURL string
}

// NewAccountHandler creates an account handler.
func NewAccountHandler(cfg AccountHandlerConfig) *AccountHandler {
	return &AccountHandler{
		service:  cfg.Service,
		snapsURL: cfg.SnapsURL,
		loginURL: cfg.LoginURL,
	}
}

// Index handles GET /account.
func (h *AccountHandler) Index(c *gin.Context) {
	c.Redirect(http.StatusFound, h.snapsURL)
}

// Details handles GET /account/details.
func (h *AccountHandler) Details(c *gin.Context) {
	auth, _ := middleware.PublisherAuth(c)

	account, err := h.service.Account(c.Request.Context(), auth)
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, templateAccountDetails, gin.H{
		"image":         account.ImageURL,
		"username":      account.Username,
		"displayname":   account.DisplayName,
		"email":         account.Email,
		"subscriptions": gin.H{"newsletter": account.NewsletterSubscribed},
		"flashes":       middleware.Flashes(c),
	})
}

// Publisher handles GET /account/publisher, the JSON profile used by the
// front end. The response is never cached.
func (h *AccountHandler) Publisher(c *gin.Context) {
	auth, _ := middleware.PublisherAuth(c)

	account, err := h.service.Account(c.Request.Context(), auth)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(lastLoginMethodCookie, "", -1, "/", "", false, false)
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, account)
}

// UpdateDetails handles POST /account/details. Every outcome redirects back
// to the details page with a flash message.
func (h *AccountHandler) UpdateDetails(c *gin.Context) {
	ctx := c.Request.Context()

	var form dto.AccountDetailsForm

	err := dto.BindForm(c, &form)
	if err == nil {
		err = h.service.UpdateNewsletter(ctx, form.Email, form.Subscribed())
	}

	if err != nil {
		logging.FromContext(ctx).Warn("account details not saved", slog.Any("error", err))
		middleware.AddFlash(c, middleware.FlashNegative, FlashDetailsFailed)
	} else {
		middleware.AddFlash(c, middleware.FlashPositive, FlashDetailsSaved)
	}

	c.Redirect(http.StatusFound, pathAccountDetails)
}

// Agreement handles GET /account/agreement.
func (h *AccountHandler) Agreement(c *gin.Context) {
	c.HTML(http.StatusOK, templateAgreement, gin.H{})
}

// AcceptAgreement handles POST /account/agreement.
func (h *AccountHandler) AcceptAgreement(c *gin.Context) {
	var form dto.AgreementForm
	if err := c.ShouldBind(&form); err != nil || !form.Agreed() {
		c.Redirect(http.StatusFound, pathAccountAgree)
		return
	}

	auth, _ := middleware.PublisherAuth(c)

	if err := h.service.AcceptAgreement(c.Request.Context(), auth); err != nil {
		renderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, pathAccount)
}

// Username handles GET /account/username.
func (h *AccountHandler) Username(c *gin.Context) {
	c.HTML(http.StatusOK, templateAccountUsername, gin.H{})
}

// ChangeUsername handles POST /account/username. Field errors reported by
// the publisher API re-render the form.
func (h *AccountHandler) ChangeUsername(c *gin.Context) {
	var form dto.UsernameForm
	if err := dto.BindForm(c, &form); err != nil {
		c.Redirect(http.StatusFound, pathAccountUsername)
		return
	}

	auth, _ := middleware.PublisherAuth(c)

	err := h.service.ChangeUsername(c.Request.Context(), auth, form.Username)
	if err == nil {
		c.Redirect(http.StatusFound, pathAccount)
		return
	}

	if list, ok := domain.AsStoreErrorList(err); ok {
		c.HTML(http.StatusOK, templateAccountUsername, gin.H{
			"username":   form.Username,
			"error_list": list.Errors,
		})

		return
	}

	renderError(c, err)
}

// RegisterAccountRoutes registers the account routes on rg. Everything but
// POST /agreement requires a publisher session.
func (h *AccountHandler) RegisterAccountRoutes(rg *gin.RouterGroup) {
	rg.POST("/agreement", h.AcceptAgreement)

	authed := rg.Group("", middleware.RequireLogin(h.loginURL))
	authed.GET("", h.Index)
	authed.GET("/details", h.Details)
	authed.POST("/details", h.UpdateDetails)
	authed.GET("/publisher", h.Publisher)
	authed.GET("/agreement", h.Agreement)
	authed.GET("/username", h.Username)
	authed.POST("/username", h.ChangeUsername)
}
