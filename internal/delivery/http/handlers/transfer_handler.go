package handlers

import (
	"net/http"
	"strconv"
	"time"

	transferRequest "github.com/finovabank/banking-service/internal/delivery/http/dto/transfer/request"
	transferResponse "github.com/finovabank/banking-service/internal/delivery/http/dto/transfer/response"
	"github.com/finovabank/banking-service/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type TransferHandler struct {
	Usecase domain.TransferUsecase
}

func NewTransferHandler(uc domain.TransferUsecase) *TransferHandler {
	return &TransferHandler{Usecase: uc}
}

func (h *TransferHandler) RegisterRoutes(r *gin.Engine) {
	v1 := r.Group("/v1")
	{
		v1.POST("/transfers", h.CreateTransfer)
		v1.GET("/transfers/:id", h.GetTransfer)
		v1.POST("/convert", h.ConvertPreview)
		v1.GET("/accounts/:accountNumber/transactions", h.ListTransactions)
	}
}

// CreateTransfer handles POST /v1/transfers.
func (h *TransferHandler) CreateTransfer(c *gin.Context) {
	var req transferRequest.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "VALIDATION_ERROR", err.Error())
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		respondBadRequest(c, "INVALID_AMOUNT", "amount must be a decimal number")
		return
	}

	transaction, err := h.Usecase.Transfer(
		c.Request.Context(),
		req.SenderAccountNumber,
		req.ReceiverAccountNumber,
		amount,
		domain.Currency(req.ToCurrency),
		req.Description,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Transaction completed successfully.",
		"data":    toTransactionResponse(transaction),
	})
}

// GetTransfer handles GET /v1/transfers/:id.
func (h *TransferHandler) GetTransfer(c *gin.Context) {
	transaction, err := h.Usecase.GetTransactionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   toTransactionResponse(transaction),
	})
}

// ConvertPreview handles POST /v1/convert. It shows what a transfer would
// credit without moving funds.
func (h *TransferHandler) ConvertPreview(c *gin.Context) {
	var req transferRequest.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "VALIDATION_ERROR", err.Error())
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		respondBadRequest(c, "INVALID_AMOUNT", "amount must be a decimal number")
		return
	}

	preview, err := h.Usecase.ConvertPreview(
		c.Request.Context(),
		amount,
		domain.Currency(req.FromCurrency),
		domain.Currency(req.ToCurrency),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": transferResponse.ConvertResponse{
			FromCurrency:    string(preview.FromCurrency),
			ToCurrency:      string(preview.ToCurrency),
			Amount:          preview.Amount.StringFixed(2),
			ConvertedAmount: preview.ConvertedAmount.StringFixed(2),
			ExchangeRate:    preview.ExchangeRate.String(),
			RateSource:      string(preview.Source),
		},
	})
}

// ListTransactions handles GET /v1/accounts/:accountNumber/transactions.
// Supported query params: page, limit, status, date_from, date_to (RFC3339).
func (h *TransferHandler) ListTransactions(c *gin.Context) {
	accountNumber := c.Param("accountNumber")

	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)

	var filters domain.TransactionFilters
	if status := c.Query("status"); status != "" {
		filters.Status = domain.TransactionStatus(status)
	}
	if from := c.Query("date_from"); from != "" {
		parsed, err := time.Parse(time.RFC3339, from)
		if err != nil {
			respondBadRequest(c, "VALIDATION_ERROR", "invalid date_from, use RFC3339")
			return
		}
		filters.DateFrom = parsed
	}
	if to := c.Query("date_to"); to != "" {
		parsed, err := time.Parse(time.RFC3339, to)
		if err != nil {
			respondBadRequest(c, "VALIDATION_ERROR", "invalid date_to, use RFC3339")
			return
		}
		filters.DateTo = parsed
	}

	transactions, total, err := h.Usecase.ListTransactions(c.Request.Context(), accountNumber, page, limit, filters)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]transferResponse.TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		items = append(items, toTransactionResponse(transaction))
	}

	c.JSON(http.StatusOK, transferResponse.TransactionListResponse{
		Status:       "success",
		Transactions: items,
		Page:         page,
		Limit:        limit,
		Total:        total,
	})
}

func toTransactionResponse(transaction *domain.Transaction) transferResponse.TransactionResponse {
	return transferResponse.TransactionResponse{
		ID:                    transaction.ID,
		SenderAccountNumber:   transaction.SenderAccountNumber,
		ReceiverAccountNumber: transaction.ReceiverAccountNumber,
		Amount:                transaction.Amount.StringFixed(2),
		ConvertedAmount:       transaction.ConvertedAmount.StringFixed(2),
		ExchangeRate:          transaction.ExchangeRate.String(),
		Currency:              string(transaction.Currency),
		ToCurrency:            string(transaction.ToCurrency),
		Description:           transaction.Description,
		Status:                string(transaction.Status),
		Timestamp:             transaction.CreatedAt,
	}
}
