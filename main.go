package main

import (
	"log"

	"ojt/config"
	"ojt/database"
	adminRoutes "ojt/routers/adminRoutes"
	authRoutes "ojt/routers/authRoutes"
	classroomRoutes "ojt/routers/classroomRoutes"
	meetingRoutes "ojt/routers/meetingRoutes"
	reportRoutes "ojt/routers/reportRoutes"
	taskRoutes "ojt/routers/taskRoutes"
	timeEntryRoutes "ojt/routers/timeEntryRoutes"
	"ojt/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	classroomRoutes.SetupClassroomRoutes(app)
	timeEntryRoutes.SetupTimeEntryRoutes(app)
	taskRoutes.SetupTaskRoutes(app)
	reportRoutes.SetupReportRoutes(app)
	meetingRoutes.SetupMeetingRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	utils.InitializeTaskScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
