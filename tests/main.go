package main

import (
	"context"
	"fmt"
	"log"
	"path"
	"time"

	"tidify/config"
	"tidify/database"
	"tidify/database/repository"
	"tidify/models"
	"tidify/services/booking"
	"tidify/services/user"
	"tidify/services/worker"
	"tidify/utils"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Every demo account signs in with this password.
const demoPassword = "password123"

// Seeds the content repository with demo accounts, worker profiles and a few
// bookings so a fresh deployment has data to click through. Point it at a
// scratch repository: it clears all three tables before seeding.
//
//	go run ./tests
func main() {
	_ = godotenv.Load()
	config.LoadConfig()
	if err := config.ValidateDatastore(); err != nil {
		log.Fatalf("Invalid datastore configuration: %v", err)
	}

	store := database.NewStore(database.NewClientFromConfig(&config.AppConfig))
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	tables := []string{
		config.DataUsersPath,
		config.DataWorkersPath,
		config.DataBookingsPath,
	}
	if err := store.EnsureFiles(ctx, tables...); err != nil {
		log.Fatalf("Failed to initialize datastore files: %v", err)
	}

	// Clear existing rows so reruns always start from the same state.
	for _, p := range tables {
		err := store.Update(ctx, p, func(table *models.Table) (string, error) {
			table.Rows = table.Rows[:0]
			return "Reset " + path.Base(p) + " for demo seed", nil
		})
		if err != nil {
			log.Fatalf("Failed to reset %s: %v", p, err)
		}
	}

	userRepo := repository.NewGitHubUserRepo(store)
	workerRepo := repository.NewGitHubWorkerRepo(store)
	bookingRepo := repository.NewGitHubBookingRepo(store)

	users := &user.DefaultUserService{Repo: userRepo}
	workers := &worker.DefaultWorkerService{Repo: workerRepo}
	// No notifier: seeding must not send mail.
	bookings := &booking.DefaultBookingService{Repo: bookingRepo, WorkerRepo: workerRepo}

	accounts := []models.RegisterRequest{
		{Username: "asha", Email: "asha@example.com", Password: demoPassword, Role: models.RoleCustomer},
		{Username: "vikram", Email: "vikram@example.com", Password: demoPassword, Role: models.RoleCustomer},
		{Username: "priya", Email: "priya@example.com", Password: demoPassword, Role: models.RoleWorker},
		{Username: "ravi", Email: "ravi@example.com", Password: demoPassword, Role: models.RoleWorker},
		{Username: "meena", Email: "meena@example.com", Password: demoPassword, Role: models.RoleWorker},
	}
	for _, req := range accounts {
		if _, err := users.Register(ctx, req); err != nil {
			log.Fatalf("Failed to register %s: %v", req.Username, err)
		}
	}

	// Registration never hands out the admin role; write that row directly,
	// the same shape a hand-edited users.json row would have.
	salt, hash, err := utils.HashPassword(demoPassword)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}
	admin := &models.User{
		ID:        uuid.New().String(),
		Username:  "admin",
		Email:     "admin@example.com",
		Role:      models.RoleAdmin,
		PwdSalt:   salt,
		PwdHash:   hash,
		CreatedAt: utils.NowISO(),
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	profiles := []struct {
		username string
		req      models.WorkerProfileRequest
	}{
		{"priya", models.WorkerProfileRequest{
			Name:        "Priya S",
			City:        "Mumbai",
			Skills:      []string{"Cleaning", "Laundry"},
			RatePerHour: 350,
			Bio:         "Ten years of residential cleaning experience.",
			DailyStart:  "08:00",
			DailyEnd:    "17:00",
		}},
		{"ravi", models.WorkerProfileRequest{
			Name:        "Ravi K",
			City:        "Delhi",
			Skills:      []string{"Cooking", "Cleaning"},
			RatePerHour: 400,
			Bio:         "Home-style North Indian cooking.",
		}},
		{"meena", models.WorkerProfileRequest{
			Name:        "Meena R",
			City:        "Mumbai",
			Skills:      []string{"Deep Cleaning", "Babysitting"},
			RatePerHour: 500,
			DailyStart:  "10:00",
			DailyEnd:    "19:00",
		}},
	}
	for _, p := range profiles {
		if _, err := workers.SaveProfile(ctx, p.username, p.req); err != nil {
			log.Fatalf("Failed to save profile for %s: %v", p.username, err)
		}
	}

	asha, err := users.GetByUsername(ctx, "asha")
	if err != nil {
		log.Fatalf("Failed to look up asha: %v", err)
	}
	vikram, err := users.GetByUsername(ctx, "vikram")
	if err != nil {
		log.Fatalf("Failed to look up vikram: %v", err)
	}

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	dayAfter := time.Now().AddDate(0, 0, 2).Format("2006-01-02")
	seedBookings := []struct {
		customer *models.User
		req      models.CreateBookingRequest
	}{
		{asha, models.CreateBookingRequest{Worker: "priya", Date: tomorrow, Start: "10:00", Duration: 120}},
		{asha, models.CreateBookingRequest{Worker: "meena", Date: dayAfter, Start: "11:00", Duration: 60}},
		{vikram, models.CreateBookingRequest{Worker: "priya", Date: tomorrow, Start: "14:00", Duration: 90}},
	}
	for _, sb := range seedBookings {
		b, _, err := bookings.Create(ctx, sb.customer, sb.req)
		if err != nil {
			log.Fatalf("Failed to book %s with %s: %v", sb.customer.Username, sb.req.Worker, err)
		}
		fmt.Printf("Booked %s: %s with %s on %s %s-%s\n", b.ID, b.User, b.Worker, b.Date, b.Start, b.End)
	}

	fmt.Printf("Seeded %d users, %d worker profiles, %d bookings.\n",
		len(accounts)+1, len(profiles), len(seedBookings))
}
