package request_models

type CreateTransactionRequest struct {
	FinancialBusinessID uint    `json:"financial_business_id" binding:"required"`
	ExpenseCategoryID   *uint   `json:"expense_category_id"`
	AccrualCategoryID   *uint   `json:"accrual_category_id"`
	Amount              float64 `json:"amount" binding:"required"`
	Date                *Date   `json:"date"`
	Comment             string  `json:"comment"`
	Tags                []uint  `json:"tags"`
}

type CreateTagRequest struct {
	FinancialBusinessID uint   `json:"financial_business_id" binding:"required"`
	Name                string `json:"name" binding:"required"`
}

type UpdateTagRequest struct {
	TagID uint    `json:"tag_id" binding:"required"`
	Name  *string `json:"name"`
}

func (r *UpdateTagRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	return fields
}

type DeleteTagRequest struct {
	TagID uint `json:"tag_id" binding:"required"`
}

type TransactionHistoryRequest struct {
	FinancialBusinessID uint     `json:"financial_business_id" binding:"required"`
	CreatedFrom         *Date    `json:"created_from"`
	CreatedTo           *Date    `json:"created_to"`
	AmountGTE           *float64 `json:"amount_gte"`
	AmountLTE           *float64 `json:"amount_lte"`
}

type FinancialTagsRequest struct {
	FinancialBusinessID uint `json:"financial_business_id" binding:"required"`
}
