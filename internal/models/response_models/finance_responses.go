package response_models

import (
	"gainsystem/internal/models/db_models"
)

// Error codes of the finance operations.
const (
	CodeExpenseOrAccrualIsEmpty = "EXPENSE_OR_ACCRUAL_IS_EMPTY"
	CodeTagNameExists           = "TAG_NAME_EXISTS"
	CodeUserIsNotOwnerTag       = "USER_IS_NOT_OWNER_TAG"
)

type TagNode struct {
	ID                  uint   `json:"id"`
	FinancialBusinessID uint   `json:"financial_business_id"`
	Name                string `json:"name"`
}

func NewTagNode(tag *db_models.FinancialTag) *TagNode {
	if tag == nil {
		return nil
	}
	return &TagNode{
		ID:                  tag.ID,
		FinancialBusinessID: tag.FinancialBusinessID,
		Name:                tag.Name,
	}
}

func NewTagNodes(tags []db_models.FinancialTag) []TagNode {
	nodes := make([]TagNode, 0, len(tags))
	for i := range tags {
		nodes = append(nodes, *NewTagNode(&tags[i]))
	}
	return nodes
}

type TransactionNode struct {
	ID                  uint                      `json:"id"`
	FinancialBusinessID uint                      `json:"financial_business_id"`
	HashID              string                    `json:"hash_id"`
	TransactionType     db_models.TransactionType `json:"transaction_type"`
	ExpenseCategoryID   *uint                     `json:"expense_category_id,omitempty"`
	AccrualCategoryID   *uint                     `json:"accrual_category_id,omitempty"`
	Amount              float64                   `json:"amount"`
	Comment             string                    `json:"comment"`
	TagIDs              []uint                    `json:"tag_ids"`
}

func NewTransactionNode(transaction *db_models.FinancialTransaction) *TransactionNode {
	if transaction == nil {
		return nil
	}
	tagIDs := make([]uint, 0, len(transaction.Tags))
	for _, t := range transaction.Tags {
		tagIDs = append(tagIDs, t.TagID)
	}
	return &TransactionNode{
		ID:                  transaction.ID,
		FinancialBusinessID: transaction.FinancialBusinessID,
		HashID:              transaction.HashID,
		TransactionType:     transaction.TransactionType,
		ExpenseCategoryID:   transaction.ExpenseCategoryID,
		AccrualCategoryID:   transaction.AccrualCategoryID,
		Amount:              transaction.Amount,
		Comment:             transaction.Comment,
		TagIDs:              tagIDs,
	}
}

func NewTransactionNodes(transactions []db_models.FinancialTransaction) []TransactionNode {
	nodes := make([]TransactionNode, 0, len(transactions))
	for i := range transactions {
		nodes = append(nodes, *NewTransactionNode(&transactions[i]))
	}
	return nodes
}

type CreateTransactionNode struct {
	Created     bool             `json:"created"`
	Transaction *TransactionNode `json:"transaction,omitempty"`
	Error       *OperationError  `json:"error,omitempty"`
}

type CreateTagNode struct {
	Created bool            `json:"created"`
	Tag     *TagNode        `json:"tag,omitempty"`
	Error   *OperationError `json:"error,omitempty"`
}

type UpdateTagNode struct {
	Updated bool            `json:"updated"`
	Tag     *TagNode        `json:"tag,omitempty"`
	Error   *OperationError `json:"error,omitempty"`
}

type DeleteTagNode struct {
	Deleted bool            `json:"deleted"`
	Error   *OperationError `json:"error,omitempty"`
}

type TransactionHistoryNode struct {
	Count        int               `json:"count"`
	Transactions []TransactionNode `json:"transactions"`
}

type FinancialTagsNode struct {
	Tags []TagNode `json:"tags"`
}
