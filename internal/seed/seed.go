// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"mingle/internal/models"
	"mingle/internal/slug"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
	// SkipBcrypt stores a plaintext marker instead of a real hash. Much
	// faster for large seeds, but those accounts cannot log in.
	SkipBcrypt bool
}

// Seeder populates the database with generated demo data.
type Seeder struct {
	db   *gorm.DB
	opts Options
	rand *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // Weak random number generator is fine for seeding
	return &Seeder{db: db, opts: opts, rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Seed populates the database with test data: users with profiles, posts,
// comments with replies, likes, and follow relations.
func (s *Seeder) Seed() error {
	log.Printf("🌱 Starting database seeding with %d users and %d posts...", s.opts.NumUsers, s.opts.NumPosts)

	if s.opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	users, err := s.createUsers(s.opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d test users created", len(users))

	posts, err := s.createPosts(users, s.opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("✓ %d posts created", len(posts))

	comments, err := s.createComments(users, posts)
	if err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}
	log.Printf("✓ %d comments created", comments)

	votes, err := s.createVotes(users, posts)
	if err != nil {
		return fmt.Errorf("failed to create likes: %w", err)
	}
	log.Printf("✓ %d likes created", votes)

	relations, err := s.createRelations(users)
	if err != nil {
		return fmt.Errorf("failed to create relations: %w", err)
	}
	log.Printf("✓ %d follow relations created", relations)

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

// ClearAll truncates all seeded tables.
func (s *Seeder) ClearAll() error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE votes, comments, relations, posts, profiles, users RESTART IDENTITY CASCADE;`
	return s.db.Exec(sql).Error
}

// CreateUser constructs and persists a sample user with a profile.
// Optional override functions may modify the generated user before saving.
func (s *Seeder) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	age := gofakeit.Number(16, 80)
	user := &models.User{
		Username: fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Password: s.password(),
		Profile: &models.Profile{
			Age: &age,
			Bio: gofakeit.Sentence(10),
		},
	}

	for _, override := range overrides {
		override(user)
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost constructs and persists a sample post for the given user.
func (s *Seeder) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		Body:   gofakeit.Paragraph(1, s.rand.Intn(4)+1, s.rand.Intn(8)+3, " "),
		UserID: user.ID,
	}

	// realistic created_at spread over the last 90 days
	daysBack := s.rand.Intn(90)
	hoursBack := s.rand.Intn(24)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	for _, override := range overrides {
		override(post)
	}
	if post.Slug == "" {
		post.Slug = slug.ForPost(post.Body)
	}

	if err := s.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

func (s *Seeder) password() string {
	if s.opts.SkipBcrypt {
		return "password123"
	}
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	return string(hashed)
}

func (s *Seeder) createUsers(count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)

	// Always include a known login for manual testing
	if count > 0 {
		user, err := s.CreateUser(func(u *models.User) {
			u.Username = "mingle"
			u.Email = "mingle@example.com"
		})
		if err == nil {
			users = append(users, user)
		}
	}

	for i := len(users); i < count; i++ {
		user, err := s.CreateUser()
		if err != nil {
			log.Printf("Failed to create user: %v", err)
			continue
		}
		users = append(users, user)

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d users...", i)
		}
	}

	return users, nil
}

func (s *Seeder) createPosts(users []*models.User, count int) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, nil
	}

	posts := make([]*models.Post, 0, count)
	for i := 0; i < count; i++ {
		user := users[s.rand.Intn(len(users))]
		post, err := s.CreatePost(user)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d posts...", i)
		}
	}

	return posts, nil
}

func (s *Seeder) createComments(users []*models.User, posts []*models.Post) (int, error) {
	if len(users) == 0 || len(posts) == 0 {
		return 0, nil
	}

	created := 0
	for _, post := range posts {
		numComments := s.rand.Intn(5)
		for i := 0; i < numComments; i++ {
			user := users[s.rand.Intn(len(users))]
			comment := &models.Comment{
				Body:   gofakeit.Sentence(s.rand.Intn(12) + 3),
				UserID: user.ID,
				PostID: post.ID,
			}
			if err := s.db.Create(comment).Error; err != nil {
				return created, err
			}
			created++

			// roughly a third of comments get a reply
			if s.rand.Intn(3) == 0 {
				replier := users[s.rand.Intn(len(users))]
				reply := &models.Comment{
					Body:    gofakeit.Sentence(s.rand.Intn(8) + 2),
					UserID:  replier.ID,
					PostID:  post.ID,
					ReplyID: &comment.ID,
					IsReply: true,
				}
				if err := s.db.Create(reply).Error; err != nil {
					return created, err
				}
				created++
			}
		}
	}

	return created, nil
}

func (s *Seeder) createVotes(users []*models.User, posts []*models.Post) (int, error) {
	if len(users) == 0 || len(posts) == 0 {
		return 0, nil
	}

	created := 0
	for _, post := range posts {
		numVotes := s.rand.Intn(len(users))
		// distinct voters per post: shuffle then take a prefix
		order := s.rand.Perm(len(users))
		for _, idx := range order[:numVotes] {
			vote := &models.Vote{
				UserID: users[idx].ID,
				PostID: post.ID,
			}
			if err := s.db.Create(vote).Error; err != nil {
				return created, err
			}
			created++
		}
	}

	return created, nil
}

func (s *Seeder) createRelations(users []*models.User) (int, error) {
	if len(users) < 2 {
		return 0, nil
	}

	created := 0
	for i, user := range users {
		numFollowing := s.rand.Intn(len(users) / 2)
		order := s.rand.Perm(len(users))
		for _, idx := range order {
			if numFollowing == 0 {
				break
			}
			if idx == i {
				continue
			}
			relation := &models.Relation{
				FromUserID: user.ID,
				ToUserID:   users[idx].ID,
			}
			if err := s.db.Create(relation).Error; err != nil {
				return created, err
			}
			created++
			numFollowing--
		}
	}

	return created, nil
}
