package app

import (
	"hrm/config"
	"hrm/internal/database"
	"hrm/internal/handlers/middleware"
	"hrm/internal/logger"
	"hrm/internal/repositories"
	"hrm/internal/services"

	candidateController "hrm/internal/controllers/candidates"
	interviewController "hrm/internal/controllers/interviews"
	lifecycleController "hrm/internal/controllers/lifecycle"
	schedulingController "hrm/internal/controllers/scheduling"
	userController "hrm/internal/controllers/users"
)

type App struct {
	Database   database.DB
	Middleware middleware.Middleware
	Config     config.Config

	// Services
	TransactionService *services.TransactionService
	SessionService     *services.SessionService
	Mailer             *services.Mailer
	ReminderService    *services.ReminderService

	// Repositories
	CandidateRepo repositories.CandidateRepository
	InterviewRepo repositories.InterviewRepository
	AuditLogRepo  repositories.AuditLogRepository
	UserRepo      repositories.UserRepository
	ClientRepo    repositories.ClientRepository

	// Controllers
	LifecycleController  *lifecycleController.LifecycleController
	CandidateController  *candidateController.CandidateController
	InterviewController  *interviewController.InterviewController
	SchedulingController *schedulingController.SchedulingController
	UserController       *userController.UserController
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.InitConfig()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	// Initialize services
	transactionService := services.NewTransactionService(db)
	sessionService := services.NewSessionService(db, config)
	mailer := services.NewMailer(config)
	reminderService := services.NewReminderService(db, mailer, config)

	// Initialize repositories
	candidateRepo := repositories.NewCandidate(db)
	interviewRepo := repositories.NewInterview(db)
	auditLogRepo := repositories.NewAuditLog(db)
	userRepo := repositories.NewUser(db)
	clientRepo := repositories.NewClient(db)

	// Initialize controllers with repositories and services
	middleware := middleware.New(sessionService, userRepo)
	lifecycleCtrl := lifecycleController.New(
		candidateRepo,
		interviewRepo,
		auditLogRepo,
		userRepo,
		transactionService,
		mailer,
		config,
	)
	candidateCtrl := candidateController.New(candidateRepo)
	interviewCtrl := interviewController.New(interviewRepo, candidateRepo, auditLogRepo, transactionService)
	schedulingCtrl := schedulingController.New(clientRepo, candidateRepo)
	userCtrl := userController.New(userRepo, sessionService)

	app := &App{
		Database:             db,
		Config:               config,
		Middleware:           middleware,
		TransactionService:   transactionService,
		SessionService:       sessionService,
		Mailer:               mailer,
		ReminderService:      reminderService,
		CandidateRepo:        candidateRepo,
		InterviewRepo:        interviewRepo,
		AuditLogRepo:         auditLogRepo,
		UserRepo:             userRepo,
		ClientRepo:           clientRepo,
		LifecycleController:  lifecycleCtrl,
		CandidateController:  candidateCtrl,
		InterviewController:  interviewCtrl,
		SchedulingController: schedulingCtrl,
		UserController:       userCtrl,
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")
	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.TransactionService,
		a.SessionService,
		a.Mailer,
		a.ReminderService,
		a.CandidateRepo,
		a.InterviewRepo,
		a.AuditLogRepo,
		a.UserRepo,
		a.ClientRepo,
		a.LifecycleController,
		a.CandidateController,
		a.InterviewController,
		a.SchedulingController,
		a.UserController,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() error {
	return a.Database.Close()
}
