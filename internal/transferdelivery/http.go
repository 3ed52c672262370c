// Package transferdelivery manages delivery layer of transfers.
package transferdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/currencypkg"
	"github.com/go-petr/pet-ledger/pkg/web"
)

// Service provides ledger interface needed by transfer delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transferdelivery
type Service interface {
	Transfer(ctx context.Context, arg domain.TransferParams) error
}

// Handler facilitates transfer delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transfer handler.
func NewHandler(s Service) *Handler {
	return &Handler{
		service: s,
	}
}

type amount struct {
	Value    *uint64              `json:"value" binding:"required"`
	Currency currencypkg.Currency `json:"currency" binding:"required,currency"`
}

type request struct {
	FromAccount string `json:"from_account" binding:"required"`
	ToAccount   string `json:"to_account" binding:"required"`
	Amount      amount `json:"amount"`
}

// Create handles http request to transfer money between the accounts of two owners.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req request
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingErrorMsg(err)})

		return
	}

	arg := domain.TransferParams{
		FromOwner: req.FromAccount,
		ToOwner:   req.ToAccount,
		Amount: domain.Amount{
			Value:    *req.Amount.Value,
			Currency: req.Amount.Currency,
		},
	}

	if err := h.service.Transfer(ctx, arg); err != nil {
		gctx.JSON(web.ErrorResponse(err))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{})
}
