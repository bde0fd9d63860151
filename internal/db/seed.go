package db

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var demoNames = []string{
	"Luna", "Toby", "Nala", "Simba", "Kira", "Bruno", "Maya", "Rocky", "Lola", "Thor",
	"Mia", "Zeus", "Coco", "Max", "Bella", "Oreo", "Nina", "Rex", "Frida", "",
}

// DemoUserID returns the id of the i-th demo user (1-based).
func DemoUserID(i int) string {
	return fmt.Sprintf("pet%02d", i)
}

// DemoUserCount is the number of profiles SeedDemoData creates.
func DemoUserCount() int { return len(demoNames) }

// SeedDemoData resets the database and populates it with demo profiles,
// follow edges, a few blocks and one post per user.
//
// Behavior:
//  1. Clears every table.
//  2. Creates 20 users; the last one has an empty display name.
//  3. Each user follows ~6 random others; pet01 -> pet02 -> pet03 is always present.
//  4. pet01 blocks pet04 so suggestions have something to exclude.
//  5. Recomputes follower/following counters from the edges.
//
// Compatible with both MySQL and SQLite.
func SeedDemoData(db *gorm.DB) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	// --- Fresh start ---
	for _, table := range []string{"notifications", "reactions", "contents", "blocks", "follows", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	log.Println("Cleared existing data")

	// --- Users ---
	users := make([]User, 0, len(demoNames))
	for i, name := range demoNames {
		users = append(users, User{ID: DemoUserID(i + 1), DisplayName: name})
	}
	if err := db.Create(&users).Error; err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	log.Printf("Seeded %d users.", len(users))

	// --- Follows ---
	n := len(users)
	edges := []Follow{
		{FollowerID: DemoUserID(1), FolloweeID: DemoUserID(2)},
		{FollowerID: DemoUserID(2), FolloweeID: DemoUserID(3)},
	}
	base := time.Now().UTC().Truncate(time.Second).Add(-30 * 24 * time.Hour)
	for i := 1; i <= n; i++ {
		for j := 0; j < 6; j++ {
			to := r.Intn(n) + 1
			if to == i {
				continue
			}
			edges = append(edges, Follow{
				FollowerID: DemoUserID(i),
				FolloweeID: DemoUserID(to),
				CreatedAt:  base.Add(time.Duration(r.Intn(30*24)) * time.Hour),
			})
		}
	}
	for i := range edges {
		if edges[i].CreatedAt.IsZero() {
			edges[i].CreatedAt = base
		}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&edges[i]).Error; err != nil {
			return fmt.Errorf("failed to seed follow: %w", err)
		}
	}

	// --- Blocks ---
	if err := db.Create(&Block{BlockerID: DemoUserID(1), BlockedID: DemoUserID(4)}).Error; err != nil {
		return fmt.Errorf("failed to seed block: %w", err)
	}

	// --- Content ---
	for i := 1; i <= n; i++ {
		c := Content{OwnerID: DemoUserID(i), ID: "post-1", Kind: "post"}
		if err := db.Create(&c).Error; err != nil {
			return fmt.Errorf("failed to seed content: %w", err)
		}
	}

	if err := RecountFollows(db); err != nil {
		return err
	}
	log.Println("Seeded follows, blocks and content.")
	return nil
}

// RecountFollows rebuilds every user's counters from the follows table.
// Only for seeding and repair; live writes keep counters in step
// transactionally.
func RecountFollows(db *gorm.DB) error {
	err := db.Exec(`UPDATE users SET
		followers_count = (SELECT COUNT(*) FROM follows WHERE follows.followee_id = users.id),
		following_count = (SELECT COUNT(*) FROM follows WHERE follows.follower_id = users.id)`).Error
	if err != nil {
		return fmt.Errorf("failed to recount follows: %w", err)
	}
	return nil
}
