package sqlite_test

import (
	"context"
	"testing"

	dbfs "github.com/garnizeh/skillswap/db"
	dbpkg "github.com/garnizeh/skillswap/internal/db"
	"github.com/garnizeh/skillswap/internal/models"
	sqlite "github.com/garnizeh/skillswap/internal/repository/sqlite"
)

func setupRepo(t *testing.T, dsn string) *sqlite.SQLiteRepo {
	t.Helper()
	ctx := context.Background()
	d, err := dbpkg.New(ctx, dsn)
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	t.Cleanup(func() { d.Close() })

	if err := dbpkg.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return sqlite.New(d)
}

func seedSkills(t *testing.T, repo *sqlite.SQLiteRepo) []models.Skill {
	t.Helper()
	ctx := context.Background()
	skills := []models.Skill{
		{ID: "s1", Name: "React Development", Category: models.CategoryProgramming},
		{ID: "s2", Name: "Acoustic Guitar", Category: models.CategoryMusic},
	}
	for i := range skills {
		if err := repo.CreateSkill(ctx, &skills[i]); err != nil {
			t.Fatalf("create skill: %v", err)
		}
	}
	return skills
}

func TestUserCRUD(t *testing.T) {
	repo := setupRepo(t, "file:sqlite_users?mode=memory&cache=shared")
	ctx := context.Background()

	// nil user should error
	if err := repo.CreateUser(ctx, nil); err == nil {
		t.Fatalf("expected error when creating nil user")
	}

	// non-existing lookups return nil, nil
	if got, err := repo.GetByID(ctx, "nope"); err != nil || got != nil {
		t.Fatalf("GetByID(nope) = %v, %v", got, err)
	}
	if got, err := repo.GetByEmail(ctx, "a@a.com"); err != nil || got != nil {
		t.Fatalf("GetByEmail = %v, %v", got, err)
	}

	skills := seedSkills(t, repo)
	u := models.User{
		ID: "u1", Name: "Alex", Email: "alex@example.com", Password: "hash",
		Location: "SF", Bio: "hi", Role: models.RoleUser, Avatar: "a.png",
		SkillsOffered:   []models.Skill{skills[0]},
		SkillsRequested: []models.Skill{skills[1]},
		Rating:          4.8, ReviewCount: 12,
	}
	if err := repo.CreateUser(ctx, &u); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	got, err := repo.GetByID(ctx, "u1")
	if err != nil || got == nil {
		t.Fatalf("GetByID: %v, %v", got, err)
	}
	if got.Password != "hash" || got.Rating != 4.8 || got.ReviewCount != 12 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if len(got.SkillsOffered) != 1 || got.SkillsOffered[0].ID != "s1" {
		t.Fatalf("offered skills not linked: %+v", got.SkillsOffered)
	}
	if len(got.SkillsRequested) != 1 || got.SkillsRequested[0].ID != "s2" {
		t.Fatalf("requested skills not linked: %+v", got.SkillsRequested)
	}

	if err := repo.UpdateProfile(ctx, "u1", "Alexandra", "new bio", "Oakland"); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if err := repo.UpdateRating(ctx, "u1", 4.7, 13); err != nil {
		t.Fatalf("UpdateRating: %v", err)
	}

	got, _ = repo.GetByID(ctx, "u1")
	if got.Name != "Alexandra" || got.Location != "Oakland" || got.Rating != 4.7 || got.ReviewCount != 13 {
		t.Fatalf("updates not applied: %+v", got)
	}

	// the listing omits credentials but carries the skill links
	list, err := repo.ListUsers(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("ListUsers: %v, %v", list, err)
	}
	if list[0].Password != "" {
		t.Fatalf("listing must not carry password hashes")
	}
	if len(list[0].SkillsOffered) != 1 {
		t.Fatalf("listing lost skill links: %+v", list[0])
	}

	if n, err := repo.CountUsers(ctx); err != nil || n != 1 {
		t.Fatalf("CountUsers = %d, %v", n, err)
	}
}

func TestSessionLifecycle(t *testing.T) {
	repo := setupRepo(t, "file:sqlite_sessions?mode=memory&cache=shared")
	ctx := context.Background()

	s := models.Session{
		ID: "sess1", RequesterID: "u1", ProviderID: "u2", SkillID: "s1",
		Date: "2024-01-10", Time: "09:00", EndTime: "10:20",
		Status: models.StatusPending, Notes: "first one",
	}
	if err := repo.CreateSession(ctx, &s); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	got, err := repo.GetSession(ctx, "sess1")
	if err != nil || got == nil {
		t.Fatalf("GetSession: %v, %v", got, err)
	}
	if got.EndTime != "10:20" || got.Status != models.StatusPending || got.Notes != "first one" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.RequesterReviewed || got.ProviderReviewed {
		t.Fatalf("reviewed flags must start false")
	}

	if err := repo.UpdateStatus(ctx, "sess1", models.StatusCompleted); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if err := repo.SetReviewed(ctx, "sess1", true); err != nil {
		t.Fatalf("SetReviewed requester: %v", err)
	}
	if err := repo.SetReviewed(ctx, "sess1", false); err != nil {
		t.Fatalf("SetReviewed provider: %v", err)
	}

	got, _ = repo.GetSession(ctx, "sess1")
	if got.Status != models.StatusCompleted || !got.RequesterReviewed || !got.ProviderReviewed {
		t.Fatalf("updates not applied: %+v", got)
	}

	// participant filter sees both sides
	for _, id := range []string{"u1", "u2"} {
		list, err := repo.ListByParticipant(ctx, id)
		if err != nil || len(list) != 1 {
			t.Fatalf("ListByParticipant(%s): %v, %v", id, list, err)
		}
	}
	if list, _ := repo.ListByParticipant(ctx, "u3"); len(list) != 0 {
		t.Fatalf("uninvolved user must see nothing")
	}

	counts, err := repo.CountByStatus(ctx)
	if err != nil || counts[models.StatusCompleted] != 1 {
		t.Fatalf("CountByStatus = %v, %v", counts, err)
	}
}

func TestMessagesAndReviews(t *testing.T) {
	repo := setupRepo(t, "file:sqlite_msgs?mode=memory&cache=shared")
	ctx := context.Background()

	m := models.Message{ID: "m1", SessionID: models.ThreadKey("u2", "u1"), SenderID: "u1", Text: "hey", Timestamp: 1700000000000}
	if err := repo.CreateMessage(ctx, &m); err != nil {
		t.Fatalf("CreateMessage: %v", err)
	}
	msgs, err := repo.ListMessages(ctx)
	if err != nil || len(msgs) != 1 || msgs[0].SessionID != "u1-u2" {
		t.Fatalf("ListMessages = %v, %v", msgs, err)
	}
	if n, _ := repo.CountMessages(ctx); n != 1 {
		t.Fatalf("CountMessages = %d", n)
	}

	// average over no reviews is zero, not an error
	if avg, err := repo.AverageRating(ctx); err != nil || avg != 0 {
		t.Fatalf("AverageRating empty = %v, %v", avg, err)
	}

	for i, rating := range []int{4, 5} {
		r := models.Review{ID: string(rune('a' + i)), SessionID: "sess1", FromUserID: "u1", ToUserID: "u2",
			Rating: rating, Comment: "ok", Timestamp: 1700000000000}
		if err := repo.CreateReview(ctx, &r); err != nil {
			t.Fatalf("CreateReview: %v", err)
		}
	}
	if avg, err := repo.AverageRating(ctx); err != nil || avg != 4.5 {
		t.Fatalf("AverageRating = %v, %v", avg, err)
	}
	if reviews, err := repo.ListReviews(ctx); err != nil || len(reviews) != 2 {
		t.Fatalf("ListReviews = %v, %v", reviews, err)
	}
}
