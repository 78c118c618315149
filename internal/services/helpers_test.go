package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gainsystem/internal/auth"
	"gainsystem/internal/models/db_models"
	"gainsystem/internal/repositories"
	"gainsystem/pkg/config"
	"gainsystem/pkg/reqctx"
	"gainsystem/pkg/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(db_models.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newSession(db *gorm.DB, user *db_models.User) *reqctx.Session {
	return &reqctx.Session{Ctx: context.Background(), Tx: db, User: user}
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:         "test-secret",
		AccessTokenTTL:    time.Minute,
		RefreshTokenTTL:   time.Hour,
		RefreshTokenBytes: 32,
	}
}

func newAuthService() AuthService {
	cfg := testConfig()
	return NewAuthService(cfg, auth.NewJWTManager(cfg), repositories.NewUserRepository(), repositories.NewTokenRepository())
}

func newBusinessService() BusinessService {
	return NewBusinessService(
		repositories.NewBusinessRepository(),
		repositories.NewTeamRepository(),
		repositories.NewClientRepository(),
		repositories.NewUserRepository(),
		repositories.NewOwnershipRepository(),
	)
}

func newCalendarService() CalendarService {
	return NewCalendarService(
		repositories.NewCalendarRepository(),
		repositories.NewClientRepository(),
		repositories.NewOwnershipRepository(),
	)
}

func newFinanceService() FinanceService {
	return NewFinanceService(
		repositories.NewFinanceRepository(),
		repositories.NewOwnershipRepository(),
	)
}

func createUser(t *testing.T, db *gorm.DB, email string) *db_models.User {
	t.Helper()
	hash, err := utils.HashPassword("password123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &db_models.User{
		Email:         email,
		PasswordHash:  hash,
		FirstName:     "Test",
		AccountStatus: db_models.AccountActive,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createScopeType(t *testing.T, db *gorm.DB) *db_models.ScopeTypeBusiness {
	t.Helper()
	scopeType := &db_models.ScopeTypeBusiness{Name: "Services"}
	if err := db.Create(scopeType).Error; err != nil {
		t.Fatalf("create scope type: %v", err)
	}
	return scopeType
}

func createBusiness(t *testing.T, db *gorm.DB, ownerID, scopeTypeID uint) *db_models.Business {
	t.Helper()
	business := &db_models.Business{UserID: ownerID, Title: "Shop", ScopeTypeID: scopeTypeID}
	if err := db.Create(business).Error; err != nil {
		t.Fatalf("create business: %v", err)
	}
	return business
}

func createFinancialBusiness(t *testing.T, db *gorm.DB, businessID uint) *db_models.FinancialBusiness {
	t.Helper()
	account := &db_models.FinancialBusiness{BusinessID: businessID}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("create financial business: %v", err)
	}
	return account
}

func createClient(t *testing.T, db *gorm.DB, ownerID uint, name string) *db_models.Client {
	t.Helper()
	client := &db_models.Client{UserID: ownerID, Name: name, Email: name + "@example.com"}
	if err := db.Create(client).Error; err != nil {
		t.Fatalf("create client: %v", err)
	}
	return client
}
