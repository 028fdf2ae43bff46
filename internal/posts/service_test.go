package posts

import (
	"context"
	"testing"
	"time"

	"github.com/corkboard/corkboard/internal/models"
)

func TestCreateAndListRecentOrdering(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	first, err := svc.Create(ctx, models.Anonymous{}, "Ann", "first message")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := svc.Create(ctx, models.Anonymous{}, "Ben", "second message")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	list, err := svc.ListRecent(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(list))
	}
	if list[0].ID != second || list[1].ID != first {
		t.Fatalf("expected newest first, got [%s %s]", list[0].ID, list[1].ID)
	}
	if !list[0].CreatedAt.After(list[1].CreatedAt) {
		t.Fatalf("expected strictly descending timestamps: %v vs %v", list[0].CreatedAt, list[1].CreatedAt)
	}
}

func TestCreateEmbedsAuthorSnapshot(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()
	u := &models.User{ID: "u-1", Name: "Alice", Email: "alice@example.com"}

	id, err := svc.Create(ctx, u, "ignored form name", "hello")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	p, err := svc.Get(ctx, id)
	if err != nil || p == nil {
		t.Fatalf("get failed: %v", err)
	}
	if p.Author.ID != "u-1" || p.Author.Name != "Alice" {
		t.Fatalf("expected author snapshot of the user, got %+v", p.Author)
	}

	// the snapshot must not track later changes to the user
	u.Name = "Alicia"
	p2, _ := svc.Get(ctx, id)
	if p2.Author.Name != "Alice" {
		t.Fatalf("author snapshot should be frozen at creation, got %q", p2.Author.Name)
	}
}

func TestCreateAnonymousUsesFormName(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	id, err := svc.Create(context.Background(), models.Anonymous{}, "Test name", "Test message")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	p, _ := svc.Get(context.Background(), id)
	if p.Author.ID != "" || p.Author.Name != "Test name" {
		t.Fatalf("unexpected author for anonymous post: %+v", p.Author)
	}
}

func TestUpdateStampsModified(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	id, _ := svc.Create(ctx, models.Anonymous{}, "Ann", "before")
	name := "Anne"
	if err := svc.Update(ctx, id, "after", &name); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	p, _ := svc.Get(ctx, id)
	if p.Message != "after" || p.Author.Name != "Anne" {
		t.Fatalf("update not applied: %+v", p)
	}
	if p.ModifiedAt == nil || p.ModifiedAt.Before(p.CreatedAt) {
		t.Fatalf("expected a modification stamp after creation, got %v", p.ModifiedAt)
	}
}

func TestUpdateAbsentIsNoop(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	id, _ := svc.Create(ctx, models.Anonymous{}, "Ann", "keep me")
	if err := svc.Update(ctx, "no-such-id", "changed", nil); err != nil {
		t.Fatalf("update of an absent id should not error: %v", err)
	}
	p, _ := svc.Get(ctx, id)
	if p.Message != "keep me" || p.ModifiedAt != nil {
		t.Fatalf("existing post should be untouched: %+v", p)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	id, _ := svc.Create(ctx, models.Anonymous{}, "Ann", "to delete")
	if err := svc.Delete(ctx, id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	list, _ := svc.ListRecent(ctx)
	for _, p := range list {
		if p.ID == id {
			t.Fatal("deleted post still listed")
		}
	}
	if err := svc.Delete(ctx, id); err != nil {
		t.Fatalf("second delete should be a no-op: %v", err)
	}
}

func TestListByAuthor(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()
	alice := &models.User{ID: "u-alice", Name: "Alice"}
	bob := &models.User{ID: "u-bob", Name: "Bob"}

	_, _ = svc.Create(ctx, alice, "", "alice one")
	_, _ = svc.Create(ctx, bob, "", "bob one")
	_, _ = svc.Create(ctx, alice, "", "alice two")
	_, _ = svc.Create(ctx, models.Anonymous{}, "Drifter", "anon one")

	list, err := svc.ListByAuthor(ctx, "u-alice")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 posts by alice, got %d", len(list))
	}
	if list[0].Message != "alice two" || list[1].Message != "alice one" {
		t.Fatalf("expected alice's posts newest first, got [%s %s]", list[0].Message, list[1].Message)
	}
}

func TestListRecentTieBreakKeepsInsertionOrder(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	_, _ = repo.Insert(ctx, &Post{ID: "a", Author: Author{Name: "x"}, Message: "first in", CreatedAt: ts})
	_, _ = repo.Insert(ctx, &Post{ID: "b", Author: Author{Name: "y"}, Message: "second in", CreatedAt: ts})

	list, _ := repo.ListRecent(ctx)
	if list[0].ID != "a" || list[1].ID != "b" {
		t.Fatalf("equal timestamps should keep insertion order, got [%s %s]", list[0].ID, list[1].ID)
	}
}
