package services

import (
	"testing"

	"gainsystem/internal/models/db_models"
	"gainsystem/internal/models/request_models"
	"gainsystem/internal/models/response_models"
)

func TestCreateTransactionRequiresCategory(t *testing.T) {
	db := newTestDB(t)
	svc := newFinanceService()
	user := createUser(t, db, "owner@example.com")
	sess := newSession(db, user)

	node, err := svc.CreateTransaction(sess, &request_models.CreateTransactionRequest{
		FinancialBusinessID: 1,
		Amount:              100,
	})
	if err != nil {
		t.Fatalf("create transaction: %v", err)
	}
	if node.Error == nil || node.Error.Code != response_models.CodeExpenseOrAccrualIsEmpty {
		t.Fatalf("expected EXPENSE_OR_ACCRUAL_IS_EMPTY, got %+v", node.Error)
	}
}

func TestCreateTransactionWithTags(t *testing.T) {
	db := newTestDB(t)
	svc := newFinanceService()
	user := createUser(t, db, "owner@example.com")
	scopeType := createScopeType(t, db)
	business := createBusiness(t, db, user.ID, scopeType.ID)
	account := createFinancialBusiness(t, db, business.ID)
	category := &db_models.ExpenseCategory{FinancialBusinessID: account.ID, Title: "Rent"}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	tag := &db_models.FinancialTag{FinancialBusinessID: account.ID, Name: "office"}
	if err := db.Create(tag).Error; err != nil {
		t.Fatalf("create tag: %v", err)
	}
	sess := newSession(db, user)

	node, err := svc.CreateTransaction(sess, &request_models.CreateTransactionRequest{
		FinancialBusinessID: account.ID,
		ExpenseCategoryID:   &category.ID,
		Amount:              250,
		Comment:             "september rent",
		Tags:                []uint{tag.ID},
	})
	if err != nil {
		t.Fatalf("create transaction: %v", err)
	}
	if !node.Created {
		t.Fatalf("expected created, got %+v", node.Error)
	}
	if node.Transaction.HashID == "" {
		t.Fatal("expected a hash id")
	}
	if node.Transaction.TransactionType != db_models.TxnExpense {
		t.Fatalf("expected expense type, got %s", node.Transaction.TransactionType)
	}
	if len(node.Transaction.TagIDs) != 1 || node.Transaction.TagIDs[0] != tag.ID {
		t.Fatalf("tag not attached: %+v", node.Transaction.TagIDs)
	}
}

func TestCreateTransactionNotOwner(t *testing.T) {
	db := newTestDB(t)
	svc := newFinanceService()
	owner := createUser(t, db, "owner@example.com")
	other := createUser(t, db, "other@example.com")
	scopeType := createScopeType(t, db)
	business := createBusiness(t, db, owner.ID, scopeType.ID)
	account := createFinancialBusiness(t, db, business.ID)
	category := &db_models.AccrualCategory{FinancialBusinessID: account.ID, Title: "Sales"}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	sess := newSession(db, other)

	node, err := svc.CreateTransaction(sess, &request_models.CreateTransactionRequest{
		FinancialBusinessID: account.ID,
		AccrualCategoryID:   &category.ID,
		Amount:              100,
	})
	if err != nil {
		t.Fatalf("create transaction: %v", err)
	}
	if node.Error == nil || node.Error.Code != response_models.CodeUserIsNotOwnerBusiness {
		t.Fatalf("expected USER_IS_NOT_OWNER_BUSINESS, got %+v", node.Error)
	}
}

func TestCreateTagDuplicateName(t *testing.T) {
	db := newTestDB(t)
	svc := newFinanceService()
	user := createUser(t, db, "owner@example.com")
	scopeType := createScopeType(t, db)
	business := createBusiness(t, db, user.ID, scopeType.ID)
	account := createFinancialBusiness(t, db, business.ID)
	sess := newSession(db, user)

	first, err := svc.CreateTag(sess, &request_models.CreateTagRequest{FinancialBusinessID: account.ID, Name: "office"})
	if err != nil || !first.Created {
		t.Fatalf("first tag failed: %v %+v", err, first)
	}

	second, err := svc.CreateTag(sess, &request_models.CreateTagRequest{FinancialBusinessID: account.ID, Name: "office"})
	if err != nil {
		t.Fatalf("second tag: %v", err)
	}
	if second.Error == nil || second.Error.Code != response_models.CodeTagNameExists {
		t.Fatalf("expected TAG_NAME_EXISTS, got %+v", second.Error)
	}
}

func TestDeleteTagNotOwner(t *testing.T) {
	db := newTestDB(t)
	svc := newFinanceService()
	owner := createUser(t, db, "owner@example.com")
	other := createUser(t, db, "other@example.com")
	scopeType := createScopeType(t, db)
	business := createBusiness(t, db, owner.ID, scopeType.ID)
	account := createFinancialBusiness(t, db, business.ID)
	tag := &db_models.FinancialTag{FinancialBusinessID: account.ID, Name: "office"}
	if err := db.Create(tag).Error; err != nil {
		t.Fatalf("create tag: %v", err)
	}
	sess := newSession(db, other)

	node, err := svc.DeleteTag(sess, &request_models.DeleteTagRequest{TagID: tag.ID})
	if err != nil {
		t.Fatalf("delete tag: %v", err)
	}
	if node.Error == nil || node.Error.Code != response_models.CodeUserIsNotOwnerTag {
		t.Fatalf("expected USER_IS_NOT_OWNER_TAG, got %+v", node.Error)
	}
}

func TestGetHistoryNotOwnerIsEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := newFinanceService()
	owner := createUser(t, db, "owner@example.com")
	other := createUser(t, db, "other@example.com")
	scopeType := createScopeType(t, db)
	business := createBusiness(t, db, owner.ID, scopeType.ID)
	account := createFinancialBusiness(t, db, business.ID)
	txn := &db_models.FinancialTransaction{FinancialBusinessID: account.ID, HashID: "h1", Amount: 10}
	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("create transaction: %v", err)
	}

	node, err := svc.GetHistory(newSession(db, other), &request_models.TransactionHistoryRequest{FinancialBusinessID: account.ID})
	if err != nil {
		t.Fatalf("get history: %v", err)
	}
	if node.Count != 0 || len(node.Transactions) != 0 {
		t.Fatalf("expected empty history for non-owner, got %+v", node)
	}

	owned, err := svc.GetHistory(newSession(db, owner), &request_models.TransactionHistoryRequest{FinancialBusinessID: account.ID})
	if err != nil {
		t.Fatalf("get history: %v", err)
	}
	if owned.Count != 1 {
		t.Fatalf("expected one transaction for owner, got %d", owned.Count)
	}
}

func TestGetHistoryAmountFilter(t *testing.T) {
	db := newTestDB(t)
	svc := newFinanceService()
	user := createUser(t, db, "owner@example.com")
	scopeType := createScopeType(t, db)
	business := createBusiness(t, db, user.ID, scopeType.ID)
	account := createFinancialBusiness(t, db, business.ID)
	for i, amount := range []float64{10, 50, 200} {
		txn := &db_models.FinancialTransaction{
			FinancialBusinessID: account.ID,
			HashID:              string(rune('a' + i)),
			Amount:              amount,
		}
		if err := db.Create(txn).Error; err != nil {
			t.Fatalf("create transaction: %v", err)
		}
	}
	sess := newSession(db, user)

	gte := 20.0
	lte := 100.0
	node, err := svc.GetHistory(sess, &request_models.TransactionHistoryRequest{
		FinancialBusinessID: account.ID,
		AmountGTE:           &gte,
		AmountLTE:           &lte,
	})
	if err != nil {
		t.Fatalf("get history: %v", err)
	}
	if node.Count != 1 || node.Transactions[0].Amount != 50 {
		t.Fatalf("amount bounds not applied: %+v", node.Transactions)
	}
}
