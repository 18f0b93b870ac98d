package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hrm/internal/app"
	"hrm/internal/handlers"
	"hrm/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/jasonlvhit/gocron"
)

func main() {
	log := logger.New("main")

	application, err := app.New()
	if err != nil {
		log.Er("failed to initialize application", err)
		os.Exit(1)
	}
	defer func() {
		if err := application.Close(); err != nil {
			log.Er("failed to close application", err)
		}
	}()

	go func() {
		_ = gocron.Every(application.Config.ReminderInterval()).Minutes().
			Do(application.ReminderService.Sweep)
		<-gocron.Start()
	}()

	server := fiber.New(fiber.Config{
		AppName: "rise-and-shine-hrm",
	})

	if err := handlers.Router(server, application); err != nil {
		log.Er("failed to register routes", err)
		os.Exit(1)
	}

	go func() {
		address := fmt.Sprintf(":%d", application.Config.ServerPort)
		if err := server.Listen(address); err != nil {
			log.Er("server stopped", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	gocron.Clear()
	if err := server.Shutdown(); err != nil {
		log.Er("failed to shut down server", err)
	}
}
