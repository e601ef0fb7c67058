package project

import (
	"testing"
	"time"

	"github.com/tavlaboard/tavla/internal/models"
)

func TestGet_KnownProject(t *testing.T) {
	svc := NewService([]models.Project{
		{ID: "42", Name: "Billing", CreatedAt: time.Now()},
	})

	got := svc.Get("42")
	if got.Name != "Billing" {
		t.Errorf("Name = %q, want %q", got.Name, "Billing")
	}
}

func TestGet_DanglingReferenceYieldsPlaceholder(t *testing.T) {
	svc := NewService(nil)

	got := svc.Get("no-such-project")
	if got.ID != "no-such-project" {
		t.Errorf("Placeholder must keep the original id, got %q", got.ID)
	}
	if got.Name != UnknownProjectName {
		t.Errorf("Name = %q, want %q", got.Name, UnknownProjectName)
	}
}

func TestNewService_EmptyFallsBackToSeedProjects(t *testing.T) {
	svc := NewService(nil)

	projects := svc.List()
	if len(projects) != 3 {
		t.Fatalf("Expected 3 seed projects, got %d", len(projects))
	}
	if projects[0].Name != "Self-Service Portal" {
		t.Errorf("First seed project = %q", projects[0].Name)
	}
}

func TestList_ReturnsCopy(t *testing.T) {
	svc := NewService(nil)

	list := svc.List()
	list[0].Name = "mutated"

	if svc.List()[0].Name == "mutated" {
		t.Error("Mutating the returned list must not affect the service")
	}
}
