package handlers

import (
	"net/http"
	"strconv"

	accountRequest "github.com/finovabank/banking-service/internal/delivery/http/dto/account/request"
	accountResponse "github.com/finovabank/banking-service/internal/delivery/http/dto/account/response"
	"github.com/finovabank/banking-service/internal/domain"
	"github.com/finovabank/banking-service/internal/usecase"
	accountdto "github.com/finovabank/banking-service/internal/usecase/dto/account"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AccountHandler struct {
	Usecase usecase.AccountUsecase
}

func NewAccountHandler(uc usecase.AccountUsecase) *AccountHandler {
	return &AccountHandler{Usecase: uc}
}

func (h *AccountHandler) RegisterRoutes(r *gin.Engine) {
	v1 := r.Group("/v1")
	{
		v1.POST("/accounts", h.OpenAccount)
		v1.GET("/accounts", h.ListAccounts)
		v1.GET("/accounts/:accountNumber", h.GetAccount)
	}
}

// OpenAccount handles POST /v1/accounts.
func (h *AccountHandler) OpenAccount(c *gin.Context) {
	var req accountRequest.OpenAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "VALIDATION_ERROR", err.Error())
		return
	}

	initialBalance := decimal.Zero
	if req.InitialBalance != "" {
		parsed, err := decimal.NewFromString(req.InitialBalance)
		if err != nil {
			respondBadRequest(c, "INVALID_AMOUNT", "initial_balance must be a decimal number")
			return
		}
		initialBalance = parsed
	}

	account, err := h.Usecase.OpenAccount(c.Request.Context(), &accountdto.OpenAccountInput{
		OwnerName:      req.OwnerName,
		AccountType:    req.AccountType,
		Currency:       req.Currency,
		InitialBalance: initialBalance,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Account created successfully.",
		"data":    toAccountResponse(account),
	})
}

// GetAccount handles GET /v1/accounts/:accountNumber.
func (h *AccountHandler) GetAccount(c *gin.Context) {
	account, err := h.Usecase.GetAccount(c.Request.Context(), c.Param("accountNumber"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   toAccountResponse(account),
	})
}

// ListAccounts handles GET /v1/accounts.
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	accounts, total, err := h.Usecase.ListAccounts(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]accountResponse.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		items = append(items, toAccountResponse(account))
	}

	c.JSON(http.StatusOK, accountResponse.AccountListResponse{
		Status:   "success",
		Accounts: items,
		Page:     page,
		Limit:    limit,
		Total:    total,
	})
}

func toAccountResponse(account *domain.Account) accountResponse.AccountResponse {
	return accountResponse.AccountResponse{
		AccountNumber: account.AccountNumber,
		OwnerName:     account.OwnerName,
		AccountType:   string(account.AccountType),
		Balance:       account.Balance.StringFixed(2),
		Currency:      string(account.Currency),
		Status:        string(account.Status),
		CreatedAt:     account.CreatedAt,
	}
}
