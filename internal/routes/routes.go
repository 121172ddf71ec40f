package routes

import (
	"streamhub-backend/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

// Setup registers the versioned API surface. Reads are public; every
// mutating verb sits behind the bearer-token middleware.
func Setup(app *fiber.App, requireToken fiber.Handler,
	categoryHandler *handlers.CategoryHandler,
	hostHandler *handlers.HostHandler,
	movieHandler *handlers.MovieHandler,
	userHandler *handlers.UserHandler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	users := v1.Group("/user")
	{
		users.Post("/", userHandler.CreateUser)
		users.Post("/login", userHandler.Login)
		users.Get("/", requireToken, userHandler.GetAllUsers)
		users.Get("/:id", requireToken, userHandler.GetUserByID)
		users.Put("/:id", requireToken, userHandler.UpdateUser)
	}

	movies := v1.Group("/movie")
	{
		movies.Get("/", movieHandler.GetAllMovies)
		movies.Get("/:id", movieHandler.GetMovieByID)
		movies.Post("/", requireToken, movieHandler.CreateMovie)
		movies.Put("/:id", requireToken, movieHandler.UpdateMovie)
		movies.Delete("/:id", requireToken, movieHandler.DeleteMovie)
	}

	categories := v1.Group("/category")
	{
		categories.Get("/", categoryHandler.GetAllCategories)
		categories.Get("/:id", categoryHandler.GetCategoryByID)
		categories.Post("/", requireToken, categoryHandler.CreateCategory)
		categories.Put("/:id", requireToken, categoryHandler.UpdateCategory)
		categories.Delete("/:id", requireToken, categoryHandler.DeleteCategory)
	}

	hosts := v1.Group("/host")
	{
		hosts.Get("/", hostHandler.GetAllHosts)
		hosts.Get("/:id", hostHandler.GetHostByID)
		hosts.Post("/", requireToken, hostHandler.CreateHost)
		hosts.Put("/:id", requireToken, hostHandler.UpdateHost)
		hosts.Delete("/:id", requireToken, hostHandler.DeleteHost)
	}
}
