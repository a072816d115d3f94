package service

import (
	"errors"
	"sort"

	"github.com/clipora/video-backend/internal/constants"
	"github.com/clipora/video-backend/internal/model"
	"github.com/clipora/video-backend/internal/repository"
	"go.uber.org/zap"
)

// QueryService serves read-only views over the ledger.
type QueryService interface {
	GetUser(userID string) (UserReport, error)
	ListAllTransactions() TransactionReport
}

type UserReport struct {
	User         model.User          `json:"user"`
	Transactions []model.Transaction `json:"transactions"`
	Summary      UserSummary         `json:"summary"`
}

type UserSummary struct {
	TotalTransactions     int   `json:"totalTransactions"`
	CompletedTransactions int   `json:"completedTransactions"`
	TotalSpent            int64 `json:"totalSpent"`
	IsPremium             bool  `json:"isPremium"`
}

type TransactionReport struct {
	Transactions []model.Transaction `json:"transactions"`
	Summary      AdminSummary        `json:"summary"`
}

type AdminSummary struct {
	TotalTransactions     int   `json:"totalTransactions"`
	CompletedTransactions int   `json:"completedTransactions"`
	PendingTransactions   int   `json:"pendingTransactions"`
	TotalRevenue          int64 `json:"totalRevenue"`
	UniqueUsers           int   `json:"uniqueUsers"`
}

type query struct {
	ledger repository.Ledger
	logger *zap.Logger
}

func NewQueryService(ledger repository.Ledger, logger *zap.Logger) QueryService {
	return &query{ledger: ledger, logger: logger}
}

func (q *query) GetUser(userID string) (UserReport, error) {
	user, err := q.ledger.GetUser(userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserReport{}, NewServiceError(constants.ErrCodeUserNotFound, err)
		}

		return UserReport{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	transactions := q.ledger.ListUserTransactions(userID)
	sortNewestFirst(transactions)

	completed := 0
	for _, tx := range transactions {
		if tx.Status == model.TransactionStatusCompleted {
			completed++
		}
	}

	report := UserReport{
		User:         user,
		Transactions: transactions,
		Summary: UserSummary{
			TotalTransactions:     len(transactions),
			CompletedTransactions: completed,
			TotalSpent:            user.TotalSpent,
			IsPremium:             user.IsPremium,
		},
	}

	return report, nil
}

func (q *query) ListAllTransactions() TransactionReport {
	transactions := q.ledger.ListTransactions()
	sortNewestFirst(transactions)

	summary := AdminSummary{TotalTransactions: len(transactions)}
	users := make(map[string]struct{})

	for _, tx := range transactions {
		users[tx.UserID] = struct{}{}

		if tx.Status == model.TransactionStatusCompleted {
			summary.CompletedTransactions++
			summary.TotalRevenue += tx.Amount
		} else {
			summary.PendingTransactions++
		}
	}

	summary.UniqueUsers = len(users)

	return TransactionReport{Transactions: transactions, Summary: summary}
}

func sortNewestFirst(transactions []model.Transaction) {
	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].CreatedAt.After(transactions[j].CreatedAt)
	})
}
