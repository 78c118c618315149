package services

import (
	"time"

	"gainsystem/internal/models/db_models"
	"gainsystem/internal/models/request_models"
	"gainsystem/internal/models/response_models"
	"gainsystem/internal/repositories"
	"gainsystem/pkg/reqctx"
	"gainsystem/pkg/utils"
)

// Random bytes behind a transaction hash id.
const transactionHashBytes = 16

type FinanceService interface {
	CreateTransaction(s *reqctx.Session, req *request_models.CreateTransactionRequest) (*response_models.CreateTransactionNode, error)
	CreateTag(s *reqctx.Session, req *request_models.CreateTagRequest) (*response_models.CreateTagNode, error)
	UpdateTag(s *reqctx.Session, req *request_models.UpdateTagRequest) (*response_models.UpdateTagNode, error)
	DeleteTag(s *reqctx.Session, req *request_models.DeleteTagRequest) (*response_models.DeleteTagNode, error)
	GetHistory(s *reqctx.Session, req *request_models.TransactionHistoryRequest) (*response_models.TransactionHistoryNode, error)
	GetTags(s *reqctx.Session, req *request_models.FinancialTagsRequest) (*response_models.FinancialTagsNode, error)
}

type financeService struct {
	finance   repositories.FinanceRepository
	ownership repositories.OwnershipRepository
}

func NewFinanceService(finance repositories.FinanceRepository, ownership repositories.OwnershipRepository) FinanceService {
	return &financeService{finance: finance, ownership: ownership}
}

func (svc *financeService) CreateTransaction(s *reqctx.Session, req *request_models.CreateTransactionRequest) (*response_models.CreateTransactionNode, error) {
	if req.ExpenseCategoryID == nil && req.AccrualCategoryID == nil {
		return &response_models.CreateTransactionNode{
			Error: response_models.NewOperationError(response_models.CodeExpenseOrAccrualIsEmpty, "either expense or accrual category is required"),
		}, nil
	}

	owner, err := svc.ownership.IsFinancialBusinessOwner(s, s.User.ID, req.FinancialBusinessID)
	if err != nil {
		return nil, err
	}
	if !owner {
		return &response_models.CreateTransactionNode{
			Error: response_models.NewOperationError(response_models.CodeUserIsNotOwnerBusiness, "you are not the owner of this business"),
		}, nil
	}

	hashID, err := svc.uniqueHashID(s)
	if err != nil {
		return nil, err
	}

	transactionType := db_models.TxnAccrual
	if req.ExpenseCategoryID != nil {
		transactionType = db_models.TxnExpense
	}
	date := time.Now()
	if req.Date != nil {
		date = req.Date.Time
	}

	transaction := &db_models.FinancialTransaction{
		FinancialBusinessID: req.FinancialBusinessID,
		HashID:              hashID,
		TransactionType:     transactionType,
		ExpenseCategoryID:   req.ExpenseCategoryID,
		AccrualCategoryID:   req.AccrualCategoryID,
		Amount:              req.Amount,
		Date:                date,
		Comment:             req.Comment,
	}
	if err := svc.finance.InsertTransaction(s, transaction); err != nil {
		return nil, err
	}
	for _, tagID := range req.Tags {
		if err := svc.finance.InsertTransactionTag(s, &db_models.TransactionTag{
			TransactionHashID: hashID,
			TagID:             tagID,
		}); err != nil {
			return nil, err
		}
	}

	created, err := svc.finance.FindTransactionByID(s, transaction.ID)
	if err != nil {
		return nil, err
	}
	return &response_models.CreateTransactionNode{
		Created:     true,
		Transaction: response_models.NewTransactionNode(created),
	}, nil
}

func (svc *financeService) CreateTag(s *reqctx.Session, req *request_models.CreateTagRequest) (*response_models.CreateTagNode, error) {
	owner, err := svc.ownership.IsFinancialBusinessOwner(s, s.User.ID, req.FinancialBusinessID)
	if err != nil {
		return nil, err
	}
	if !owner {
		return &response_models.CreateTagNode{
			Error: response_models.NewOperationError(response_models.CodeUserIsNotOwnerBusiness, "you are not the owner of this business"),
		}, nil
	}

	taken, err := svc.finance.TagNameExists(s, req.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return &response_models.CreateTagNode{
			Error: response_models.NewOperationError(response_models.CodeTagNameExists, "tag with this name already exists"),
		}, nil
	}

	tag := &db_models.FinancialTag{
		FinancialBusinessID: req.FinancialBusinessID,
		Name:                req.Name,
	}
	if err := svc.finance.InsertTag(s, tag); err != nil {
		return nil, err
	}
	return &response_models.CreateTagNode{
		Created: true,
		Tag:     response_models.NewTagNode(tag),
	}, nil
}

func (svc *financeService) UpdateTag(s *reqctx.Session, req *request_models.UpdateTagRequest) (*response_models.UpdateTagNode, error) {
	belongs, err := svc.ownership.TagBelongsToUser(s, s.User.ID, req.TagID)
	if err != nil {
		return nil, err
	}
	if !belongs {
		return &response_models.UpdateTagNode{
			Error: response_models.NewOperationError(response_models.CodeUserIsNotOwnerTag, "you are not the owner of this tag"),
		}, nil
	}

	fields := req.Fields()
	if len(fields) == 0 {
		return &response_models.UpdateTagNode{
			Error: response_models.NewOperationError(response_models.CodeNotUpdated, "nothing to update"),
		}, nil
	}

	tag, err := svc.finance.UpdateTagFields(s, req.TagID, fields)
	if err != nil {
		return nil, err
	}
	return &response_models.UpdateTagNode{
		Updated: true,
		Tag:     response_models.NewTagNode(tag),
	}, nil
}

func (svc *financeService) DeleteTag(s *reqctx.Session, req *request_models.DeleteTagRequest) (*response_models.DeleteTagNode, error) {
	belongs, err := svc.ownership.TagBelongsToUser(s, s.User.ID, req.TagID)
	if err != nil {
		return nil, err
	}
	if !belongs {
		return &response_models.DeleteTagNode{
			Error: response_models.NewOperationError(response_models.CodeUserIsNotOwnerTag, "you are not the owner of this tag"),
		}, nil
	}

	deleted, err := svc.finance.DeleteTag(s, req.TagID)
	if err != nil {
		return nil, err
	}
	return &response_models.DeleteTagNode{Deleted: deleted}, nil
}

// GetHistory returns an empty result, not an error, when the account is not
// the caller's.
func (svc *financeService) GetHistory(s *reqctx.Session, req *request_models.TransactionHistoryRequest) (*response_models.TransactionHistoryNode, error) {
	empty := &response_models.TransactionHistoryNode{
		Transactions: []response_models.TransactionNode{},
	}

	owner, err := svc.ownership.IsFinancialBusinessOwner(s, s.User.ID, req.FinancialBusinessID)
	if err != nil {
		return nil, err
	}
	if !owner {
		return empty, nil
	}

	filter := repositories.TransactionFilter{
		FinancialBusinessID: req.FinancialBusinessID,
		AmountGTE:           req.AmountGTE,
		AmountLTE:           req.AmountLTE,
	}
	if req.CreatedFrom != nil {
		filter.CreatedFrom = &req.CreatedFrom.Time
	}
	if req.CreatedTo != nil {
		filter.CreatedTo = &req.CreatedTo.Time
	}

	transactions, err := svc.finance.ListTransactions(s, filter)
	if err != nil {
		return nil, err
	}
	return &response_models.TransactionHistoryNode{
		Count:        len(transactions),
		Transactions: response_models.NewTransactionNodes(transactions),
	}, nil
}

func (svc *financeService) GetTags(s *reqctx.Session, req *request_models.FinancialTagsRequest) (*response_models.FinancialTagsNode, error) {
	owner, err := svc.ownership.IsFinancialBusinessOwner(s, s.User.ID, req.FinancialBusinessID)
	if err != nil {
		return nil, err
	}
	if !owner {
		return &response_models.FinancialTagsNode{Tags: []response_models.TagNode{}}, nil
	}

	tags, err := svc.finance.ListTags(s, req.FinancialBusinessID)
	if err != nil {
		return nil, err
	}
	return &response_models.FinancialTagsNode{Tags: response_models.NewTagNodes(tags)}, nil
}

func (svc *financeService) uniqueHashID(s *reqctx.Session) (string, error) {
	for {
		hashID, err := utils.GenerateSecureToken(transactionHashBytes)
		if err != nil {
			return "", err
		}
		taken, err := svc.finance.HashExists(s, hashID)
		if err != nil {
			return "", err
		}
		if !taken {
			return hashID, nil
		}
	}
}
