package consultant

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/consult-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consult-scheduler/internal/models"
)

func TestCreateConsultantPromotesUser(t *testing.T) {
	ctx := context.Background()
	consultants := newFakeConsultantStore()
	users := newFakeUserStore(models.User{ID: "user-1", Role: models.RoleClient})
	uc := NewCreateConsultant(consultants, users, nil)

	c, err := uc.Execute(ctx, CreateConsultantInput{
		UserID:      "user-1",
		Specialties: []string{"financeiro", "carreira"},
		Bio:         "dez anos de consultoria",
	})
	if err != nil {
		t.Fatalf("create consultant: %v", err)
	}
	if c.ID == "" {
		t.Fatal("expected generated id")
	}
	if c.IsVerified {
		t.Fatal("new consultant must start unverified")
	}
	if c.Rating != 0 || c.ReviewCount != 0 {
		t.Fatal("new consultant must start with zero reputation")
	}

	user, err := users.GetByID(ctx, "user-1")
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if user.Role != models.RoleConsultant {
		t.Fatalf("expected promoted role, got %s", user.Role)
	}
}

func TestCreateConsultantUserNotFound(t *testing.T) {
	uc := NewCreateConsultant(newFakeConsultantStore(), newFakeUserStore(), nil)

	_, err := uc.Execute(context.Background(), CreateConsultantInput{UserID: "ghost"})
	if !httperr.IsBusiness(err, "user_not_found") {
		t.Fatalf("expected user_not_found, got %v", err)
	}
}

func TestCreateConsultantAlreadyExists(t *testing.T) {
	ctx := context.Background()
	consultants := newFakeConsultantStore(models.Consultant{ID: "cons-1", UserID: "user-1"})
	users := newFakeUserStore(models.User{ID: "user-1", Role: models.RoleConsultant})
	uc := NewCreateConsultant(consultants, users, nil)

	_, err := uc.Execute(ctx, CreateConsultantInput{UserID: "user-1"})
	if !httperr.IsBusiness(err, "user_already_consultant") {
		t.Fatalf("expected user_already_consultant, got %v", err)
	}
}

func TestVerifyConsultantTogglesFlag(t *testing.T) {
	ctx := context.Background()
	consultants := newFakeConsultantStore(models.Consultant{ID: "cons-1"})
	uc := NewVerifyConsultant(consultants, nil, nil)

	c, err := uc.Execute(ctx, "cons-1", true)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !c.IsVerified {
		t.Fatal("expected verified consultant")
	}

	c, err = uc.Execute(ctx, "cons-1", false)
	if err != nil {
		t.Fatalf("unverify: %v", err)
	}
	if c.IsVerified {
		t.Fatal("expected unverified consultant")
	}
}

func TestVerifyConsultantNotFound(t *testing.T) {
	uc := NewVerifyConsultant(newFakeConsultantStore(), nil, nil)

	_, err := uc.Execute(context.Background(), "ghost", true)
	if !httperr.IsBusiness(err, "consultant_not_found") {
		t.Fatalf("expected consultant_not_found, got %v", err)
	}
}

func TestUpdateConsultantNeverTouchesDerivedState(t *testing.T) {
	ctx := context.Background()
	consultants := newFakeConsultantStore(models.Consultant{
		ID:          "cons-1",
		Rating:      4.5,
		ReviewCount: 12,
		IsVerified:  true,
	})
	uc := NewUpdateConsultant(consultants, nil, nil)

	bio := "nova bio"
	c, err := uc.Execute(ctx, UpdateConsultantInput{
		ConsultantID: "cons-1",
		Bio:          &bio,
	})
	if err != nil {
		t.Fatalf("update consultant: %v", err)
	}
	if c.Bio != bio {
		t.Fatalf("expected patched bio, got %q", c.Bio)
	}
	if c.Rating != 4.5 || c.ReviewCount != 12 || !c.IsVerified {
		t.Fatal("profile patch must not touch rating, count or verification")
	}
}
