package main

import (
	"fmt"
	"os"
	"time"

	claim "lostfound-tracker/internal/claimService"
	matching "lostfound-tracker/internal/matchService"
	model "lostfound-tracker/internal/models"
	report "lostfound-tracker/internal/reportService"
	"lostfound-tracker/internal/repository"
	"lostfound-tracker/internal/server"
	"lostfound-tracker/utils"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	repo, cleanup, err := openRepo()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open storage: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	seedUsers(repo)

	reportSvc := report.NewReportService(repo)
	matchSvc := matching.NewMatchService(repo)
	claimSvc := claim.NewClaimService(repo)

	router := server.SetupRouter(reportSvc, matchSvc, claimSvc)

	port := getPort()
	fmt.Printf("Starting lost-and-found server on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// openRepo selects the storage backend: a sqlite file when LOSTFOUND_DB is
// set, the in-memory store otherwise.
func openRepo() (repository.LostFoundDB, func(), error) {
	if path := os.Getenv("LOSTFOUND_DB"); path != "" {
		repo, err := repository.OpenSQLRepo(path)
		if err != nil {
			return nil, nil, err
		}
		utils.Info("using sqlite storage", map[string]any{"path": path})
		return repo, func() { repo.Close() }, nil
	}
	utils.Info("using in-memory storage", nil)
	return repository.NewMemoryRepo(), func() {}, nil
}

// seedUsers adds sample reporters so contact lookups resolve out of the box
func seedUsers(repo repository.LostFoundDB) {
	users := []model.User{
		{UserID: "user1", Email: "asha@example.com", Name: "Asha Verma", Phone: "+91 98765 43210", CreatedAt: time.Now().UTC()},
		{UserID: "user2", Email: "ravi@example.com", Name: "Ravi Iyer", Phone: "+91 91234 56780", CreatedAt: time.Now().UTC()},
		{UserID: "user3", Email: "meera@example.com", Name: "Meera Shah", Phone: "+91 99887 76655", CreatedAt: time.Now().UTC()},
	}

	for _, user := range users {
		if err := repo.SaveUser(user); err != nil {
			utils.Warn("failed to seed user", map[string]any{"user_id": user.UserID, "error": err.Error()})
		}
	}
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}
