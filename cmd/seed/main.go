package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"healthshop/internal/cache"
	"healthshop/internal/config"
	"healthshop/internal/db"
	"healthshop/internal/model"
	"healthshop/internal/repository"
	"healthshop/internal/service"
)

const defaultSource = "cmd/seed/healthshop.json"

// SeedData is the reference data loaded into the shop.
type SeedData struct {
	Categories   []model.Category    `json:"categories"`
	Testimonials []model.Testimonial `json:"testimonials"`
	Medicines    []model.Medicine    `json:"medicines"`
}

// SeedResult counts documents created and replaced per collection.
type SeedResult struct {
	Created  int
	Replaced int
	Skipped  int
}

func main() {
	source := flag.String("source", defaultSource, "seed file path or http(s) URL")
	flag.Parse()

	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// Connect to database
	client, database, err := db.NewMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer client.Disconnect(context.Background())
	log.Println("Connected to database")

	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	log.Printf("Loading seed data from: %s", *source)
	data, err := loadSeedData(ctx, *source)
	if err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	categoryRepo := repository.NewCategoryRepository(database)
	testimonialRepo := repository.NewTestimonialRepository(database)
	medicineRepo := repository.NewMedicineRepository(database)

	categories, err := seedCategories(ctx, categoryRepo, data.Categories)
	if err != nil {
		log.Fatalf("Failed to seed categories: %v", err)
	}
	testimonials, err := seedTestimonials(ctx, testimonialRepo, data.Testimonials)
	if err != nil {
		log.Fatalf("Failed to seed testimonials: %v", err)
	}
	medicines, err := seedMedicines(ctx, medicineRepo, data.Medicines, time.Now().UTC())
	if err != nil {
		log.Fatalf("Failed to seed medicines: %v", err)
	}

	// Cached listings would hide the new data until they expire.
	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	service.NewCatalogService(categoryRepo, testimonialRepo, cacheClient, cfg.CacheTTL).Invalidate(ctx)

	log.Printf("Seed completed successfully!")
	log.Printf("  - Categories: %d created, %d replaced", categories.Created, categories.Replaced)
	log.Printf("  - Testimonials: %d created, %d replaced", testimonials.Created, testimonials.Replaced)
	log.Printf("  - Medicines: %d created, %d replaced, %d skipped", medicines.Created, medicines.Replaced, medicines.Skipped)
}

// loadSeedData reads seed data from a local file or an http(s) URL.
func loadSeedData(ctx context.Context, source string) (*SeedData, error) {
	var body []byte
	var err error
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		body, err = fetch(ctx, source)
	} else {
		body, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, err
	}

	var data SeedData
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return &data, nil
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch seed data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("seed source returned status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

func seedCategories(ctx context.Context, repo repository.CategoryRepository, categories []model.Category) (SeedResult, error) {
	var res SeedResult
	for i := range categories {
		category := categories[i]
		category.ID = primitive.NilObjectID
		created, err := repo.UpsertByName(ctx, &category)
		if err != nil {
			return res, fmt.Errorf("error seeding category %s: %w", category.Name, err)
		}
		res.count(created)
	}
	return res, nil
}

func seedTestimonials(ctx context.Context, repo repository.TestimonialRepository, testimonials []model.Testimonial) (SeedResult, error) {
	var res SeedResult
	for i := range testimonials {
		testimonial := testimonials[i]
		testimonial.ID = primitive.NilObjectID
		created, err := repo.Upsert(ctx, &testimonial)
		if err != nil {
			return res, fmt.Errorf("error seeding testimonial by %s: %w", testimonial.Name, err)
		}
		res.count(created)
	}
	return res, nil
}

// seedMedicines upserts medicines by name. Entries without a name or a
// positive price are skipped.
func seedMedicines(ctx context.Context, repo repository.MedicineRepository, medicines []model.Medicine, now time.Time) (SeedResult, error) {
	var res SeedResult
	for i := range medicines {
		medicine := medicines[i]
		if medicine.Name == "" || medicine.Price <= 0 {
			log.Printf("Skipping medicine %q with invalid name or price", medicine.Name)
			res.Skipped++
			continue
		}
		medicine.ID = primitive.NilObjectID
		if medicine.CreatedAt.IsZero() {
			medicine.CreatedAt = now
		}
		created, err := repo.UpsertByName(ctx, &medicine)
		if err != nil {
			return res, fmt.Errorf("error seeding medicine %s: %w", medicine.Name, err)
		}
		res.count(created)
	}
	return res, nil
}

func (r *SeedResult) count(created bool) {
	if created {
		r.Created++
	} else {
		r.Replaced++
	}
}
