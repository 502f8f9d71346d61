// Command seed fills a development database with demo data: one user
// (bryce / stache123) with three staches, a handful of items, and two
// in-progress projects.
package main

import (
	"github.com/rs/zerolog"

	"github.com/brycehall/stache/internal/config"
	"github.com/brycehall/stache/internal/database"
	"github.com/brycehall/stache/internal/logger"
	"github.com/brycehall/stache/internal/models"
	"github.com/brycehall/stache/internal/repository"
	"github.com/brycehall/stache/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.GinMode)

	if err := database.Connect(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := database.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	db := database.GetDB()

	userRepo := repository.NewUserRepository(db)
	stacheRepo := repository.NewStacheRepository(db)
	itemRepo := repository.NewItemRepository(db)
	projectRepo := repository.NewProjectRepository(db)

	authService := services.NewAuthService(userRepo)
	stacheService := services.NewStacheService(stacheRepo)
	itemService := services.NewItemService(itemRepo, stacheRepo)
	projectService := services.NewProjectService(projectRepo, stacheRepo, itemRepo)

	if _, err := userRepo.FindByUsername("bryce"); err == nil {
		log.Info().Msg("demo user already exists, nothing to do")
		return
	}

	user, err := authService.Signup(services.SignupInput{
		Username:        "bryce",
		Password:        "stache123",
		PasswordConfirm: "stache123",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create demo user")
	}

	camping := mustStache(log, stacheService, user.ID, services.StacheInput{
		Name:        "Camping",
		Description: "Tents, sleeping systems, cook kits, and other backcountry essentials.",
		Locations:   "Gear Closet, Garage Shelf A",
		Tags:        "outdoors, overnight, 3-season",
	})
	electronics := mustStache(log, stacheService, user.ID, services.StacheInput{
		Name:        "Electronics",
		Description: "Cables, adapters, chargers, small devices, and troubleshooting gear.",
		Locations:   "Desk Drawer, Tech Bin",
		Tags:        "tech, everyday, tools",
	})
	books := mustStache(log, stacheService, user.ID, services.StacheInput{
		Name:        "Books",
		Description: "Physical books worth tracking - reference, tech, and favorite reads.",
		Locations:   "Bookshelf, Nightstand",
		Tags:        "reading, reference",
	})

	items := []services.ItemInput{
		{StacheID: camping.ID, Name: "1P Tent", Category: "Shelter", Location: "Gear Closet", Condition: "Good", Tags: "3-season, backpacking"},
		{StacheID: camping.ID, Name: "Sleeping Pad", Category: "Sleeping", Location: "Gear Closet", Condition: "Like New", Tags: "insulated"},
		{StacheID: camping.ID, Name: "Stove Kit", Category: "Cooking", Location: "Garage Shelf A", Condition: "Good", Tags: "canister, lightweight"},
		{StacheID: electronics.ID, Name: "USB-C Hub", Category: "Adapters", Location: "Desk Drawer", Condition: "Good", Tags: "usb-c, travel"},
		{StacheID: electronics.ID, Name: "Portable SSD", Category: "Storage", Location: "Tech Bin", Condition: "Good", Tags: "backup"},
		{StacheID: books.ID, Name: "Networking Fundamentals", Category: "Reference", Location: "Bookshelf", Condition: "Good", Tags: "networking, tech"},
	}
	for _, input := range items {
		if _, err := itemService.Create(user.ID, input); err != nil {
			log.Fatal().Err(err).Str("item", input.Name).Msg("failed to seed item")
		}
	}

	declutter := mustProject(log, projectService, user.ID, services.ProjectInput{
		Name:        "Declutter Hard Drives",
		Description: "Sort loose SSDs and HDDs, label everything.",
		StacheID:    electronics.ID,
	})
	cookKit := mustProject(log, projectService, user.ID, services.ProjectInput{
		Name:        "Dial In Camping Cook Kit",
		Description: "Consolidate stoves, pots, and utensils into one bin.",
		StacheID:    camping.ID,
	})

	tasks := map[*models.Project][]string{
		declutter: {
			"Gather all loose drives",
			"Plug into USB dock and check health",
			"Label with capacity + purpose",
			"Update Stache entries for each drive",
		},
		cookKit: {
			"List all stoves and fuel types",
			"Decide on primary cook kit",
			"Create 'Camping Kitchen' stache",
			"Add items and locations",
		},
	}
	for project, descriptions := range tasks {
		if err := projectService.SetStatus(project, models.ProjectStatusInProgress); err != nil {
			log.Fatal().Err(err).Str("project", project.Name).Msg("failed to set project status")
		}
		for _, d := range descriptions {
			if _, err := projectService.AddTask(user.ID, project, d, nil); err != nil {
				log.Fatal().Err(err).Str("project", project.Name).Msg("failed to seed task")
			}
		}
	}

	log.Info().Msg("dev database seeded with demo data")
}

func mustStache(log zerolog.Logger, svc *services.StacheService, userID uint64, input services.StacheInput) *models.Stache {
	stache, err := svc.Create(userID, input)
	if err != nil {
		log.Fatal().Err(err).Str("stache", input.Name).Msg("failed to seed stache")
	}
	return stache
}

func mustProject(log zerolog.Logger, svc *services.ProjectService, userID uint64, input services.ProjectInput) *models.Project {
	project, err := svc.Create(userID, input)
	if err != nil {
		log.Fatal().Err(err).Str("project", input.Name).Msg("failed to seed project")
	}
	return project
}
