package repositories

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gainsystem/internal/models/db_models"
	"gainsystem/pkg/reqctx"
)

type ownershipFixture struct {
	db        *gorm.DB
	sess      *reqctx.Session
	owner     *db_models.User
	stranger  *db_models.User
	business  *db_models.Business
	role      *db_models.BusinessRole
	member    *db_models.TeamMember
	account   *db_models.FinancialBusiness
	tag       *db_models.FinancialTag
	client    *db_models.Client
	event     *db_models.CalendarEvent
	attendee  *db_models.Participant
	ownership OwnershipRepository
}

func newOwnershipFixture(t *testing.T) *ownershipFixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(db_models.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	f := &ownershipFixture{db: db, ownership: NewOwnershipRepository()}
	f.sess = &reqctx.Session{Ctx: context.Background(), Tx: db}

	f.owner = &db_models.User{Email: "owner@example.com"}
	f.stranger = &db_models.User{Email: "stranger@example.com"}
	scopeType := &db_models.ScopeTypeBusiness{Name: "Services"}
	for _, row := range []any{f.owner, f.stranger, scopeType} {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	f.business = &db_models.Business{UserID: f.owner.ID, Title: "Shop", ScopeTypeID: scopeType.ID}
	if err := db.Create(f.business).Error; err != nil {
		t.Fatalf("seed business: %v", err)
	}
	f.role = &db_models.BusinessRole{BusinessID: f.business.ID, Name: "Staff"}
	if err := db.Create(f.role).Error; err != nil {
		t.Fatalf("seed role: %v", err)
	}
	f.member = &db_models.TeamMember{BusinessID: f.business.ID, RoleID: f.role.ID, Email: "staff@example.com"}
	if err := db.Create(f.member).Error; err != nil {
		t.Fatalf("seed member: %v", err)
	}
	f.account = &db_models.FinancialBusiness{BusinessID: f.business.ID}
	if err := db.Create(f.account).Error; err != nil {
		t.Fatalf("seed account: %v", err)
	}
	f.tag = &db_models.FinancialTag{FinancialBusinessID: f.account.ID, Name: "office"}
	if err := db.Create(f.tag).Error; err != nil {
		t.Fatalf("seed tag: %v", err)
	}
	f.client = &db_models.Client{UserID: f.owner.ID, Name: "alice"}
	if err := db.Create(f.client).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	f.event = &db_models.CalendarEvent{UserID: f.owner.ID, EventName: "Meeting"}
	if err := db.Create(f.event).Error; err != nil {
		t.Fatalf("seed event: %v", err)
	}
	f.attendee = &db_models.Participant{EventID: f.event.ID, ClientID: f.client.ID}
	if err := db.Create(f.attendee).Error; err != nil {
		t.Fatalf("seed participant: %v", err)
	}
	return f
}

func TestOwnershipChains(t *testing.T) {
	f := newOwnershipFixture(t)

	checks := []struct {
		name  string
		check func(userID uint) (bool, error)
	}{
		{"business", func(u uint) (bool, error) { return f.ownership.IsBusinessOwner(f.sess, u, f.business.ID) }},
		{"role", func(u uint) (bool, error) { return f.ownership.IsRoleOwner(f.sess, u, f.role.ID) }},
		{"member", func(u uint) (bool, error) { return f.ownership.IsTeamMemberOwner(f.sess, u, f.member.ID) }},
		{"member via role", func(u uint) (bool, error) { return f.ownership.IsTeamMemberRoleOwner(f.sess, u, f.member.ID) }},
		{"financial account", func(u uint) (bool, error) { return f.ownership.IsFinancialBusinessOwner(f.sess, u, f.account.ID) }},
		{"tag", func(u uint) (bool, error) { return f.ownership.TagBelongsToUser(f.sess, u, f.tag.ID) }},
		{"client", func(u uint) (bool, error) { return f.ownership.ClientBelongsToUser(f.sess, u, f.client.ID) }},
		{"event", func(u uint) (bool, error) { return f.ownership.EventBelongsToUser(f.sess, u, f.event.ID) }},
		{"participant", func(u uint) (bool, error) { return f.ownership.ParticipantBelongsToUser(f.sess, u, f.attendee.ID) }},
	}

	for _, tc := range checks {
		owned, err := tc.check(f.owner.ID)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if !owned {
			t.Errorf("%s: owner not recognized", tc.name)
		}

		owned, err = tc.check(f.stranger.ID)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if owned {
			t.Errorf("%s: stranger passed the check", tc.name)
		}
	}
}

// A target that does not exist resolves to false, never an error.
func TestOwnershipMissingRows(t *testing.T) {
	f := newOwnershipFixture(t)

	checks := map[string]func() (bool, error){
		"business":          func() (bool, error) { return f.ownership.IsBusinessOwner(f.sess, f.owner.ID, 999) },
		"role":              func() (bool, error) { return f.ownership.IsRoleOwner(f.sess, f.owner.ID, 999) },
		"member":            func() (bool, error) { return f.ownership.IsTeamMemberOwner(f.sess, f.owner.ID, 999) },
		"member via role":   func() (bool, error) { return f.ownership.IsTeamMemberRoleOwner(f.sess, f.owner.ID, 999) },
		"financial account": func() (bool, error) { return f.ownership.IsFinancialBusinessOwner(f.sess, f.owner.ID, 999) },
		"tag":               func() (bool, error) { return f.ownership.TagBelongsToUser(f.sess, f.owner.ID, 999) },
		"client":            func() (bool, error) { return f.ownership.ClientBelongsToUser(f.sess, f.owner.ID, 999) },
		"event":             func() (bool, error) { return f.ownership.EventBelongsToUser(f.sess, f.owner.ID, 999) },
		"participant":       func() (bool, error) { return f.ownership.ParticipantBelongsToUser(f.sess, f.owner.ID, 999) },
	}

	for name, check := range checks {
		owned, err := check()
		if err != nil {
			t.Errorf("%s: unexpected error %v", name, err)
		}
		if owned {
			t.Errorf("%s: missing target reported as owned", name)
		}
	}
}

// A broken chain (dangling foreign key) also resolves to false.
func TestOwnershipBrokenChain(t *testing.T) {
	f := newOwnershipFixture(t)

	orphan := &db_models.BusinessRole{BusinessID: 999, Name: "Orphan"}
	if err := f.db.Create(orphan).Error; err != nil {
		t.Fatalf("seed orphan role: %v", err)
	}

	owned, err := f.ownership.IsRoleOwner(f.sess, f.owner.ID, orphan.ID)
	if err != nil {
		t.Fatalf("role check: %v", err)
	}
	if owned {
		t.Fatal("role with dangling business link reported as owned")
	}
}
