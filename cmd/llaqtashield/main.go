package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/calaxer013-byte/LlaqtaShield/internal/db"
	"github.com/calaxer013-byte/LlaqtaShield/internal/models"
	"github.com/calaxer013-byte/LlaqtaShield/internal/render"
	"github.com/calaxer013-byte/LlaqtaShield/internal/routes"
	"github.com/calaxer013-byte/LlaqtaShield/web"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const usage = `Usage:
	- start
	- migrate [up/down/drop]
	- create-admin <username> <password>
`

func main() {
	if len(os.Args) == 1 {
		fmt.Print(usage)
		return
	}
	envConfig := models.ReadEnvConfig()
	switch os.Args[1] {
	case "start":
		server := LlaqtaServer{EnvConfig: envConfig}
		server.Setup()
		server.Run()
	case "migrate":
		if len(os.Args) < 3 {
			fmt.Print(usage)
			return
		}
		var err error
		switch os.Args[2] {
		case "up":
			err = db.MigrateUp(envConfig.DatabaseURL)
		case "down":
			err = db.MigrateDown(envConfig.DatabaseURL)
		case "drop":
			err = db.Drop(envConfig.DatabaseURL)
		default:
			fmt.Print(usage)
			return
		}
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println("Done")
	case "create-admin":
		if len(os.Args) < 4 {
			fmt.Print(usage)
			return
		}
		database, err := db.Connect(&envConfig)
		if err != nil {
			fmt.Println(err)
			return
		}
		defer database.Close()
		admin := &models.Admin{Username: os.Args[2]}
		if err := database.CreateAdmin(context.Background(), admin, os.Args[3]); err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("Admin %q created with id %d\n", admin.Username, admin.ID)
	default:
		fmt.Print(usage)
	}
}

type LlaqtaServer struct {
	models.EnvConfig
	addr       string
	logger     zerolog.Logger
	router     chi.Router
	httpServer *http.Server
	database   db.SharedDB
	templates  render.Templates
	documents  *render.DocumentGenerator
}

func (server *LlaqtaServer) setupLogger() {
	var writer io.Writer
	if server.Debug {
		writer = zerolog.ConsoleWriter{Out: os.Stdout}
	} else {
		writer = os.Stdout
	}
	log := zerolog.New(writer).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	server.logger = log
}
func (server *LlaqtaServer) setupTemplates() {
	server.templates = render.GetTemplates(&server.EnvConfig)
	server.templates.SetFS(web.FS)
}
func (server *LlaqtaServer) setupDocuments() {
	documents, err := render.NewDocumentGenerator(server.ReportsDir)
	if err != nil {
		server.logger.Fatal().Err(err).Send()
	}
	server.documents = documents
}
func (server *LlaqtaServer) setupRouter() {
	server.router = routes.NewRouter(&server.EnvConfig, &server.database,
		server.logger, &server.templates, server.documents, web.FS)
}
func (server *LlaqtaServer) setupDB() {
	err := db.MigrateUp(server.DatabaseURL)
	if err != nil {
		server.logger.Fatal().Err(err).Send()
	}
	db, err := db.Connect(&server.EnvConfig)
	if err != nil {
		server.logger.Fatal().AnErr("Connecting to db", err).Send()
	}
	server.database = db
}
func (server *LlaqtaServer) setupHttpServer() {
	server.addr = fmt.Sprintf("http://localhost:%s", server.EnvConfig.Port)
	server.httpServer = &http.Server{
		Addr:         ":" + server.EnvConfig.Port,
		Handler:      server.router,
		ReadTimeout:  1 * time.Minute,
		WriteTimeout: 1 * time.Minute,
	}
}
func (server *LlaqtaServer) Setup() {
	server.setupLogger()
	server.setupTemplates()
	server.setupDocuments()
	server.setupRouter()
	server.setupDB()
	server.setupHttpServer()
}
func (server *LlaqtaServer) Shutdown() {
	if err := server.httpServer.Shutdown(context.Background()); err != nil {
		server.logger.Error().
			Err(err).
			Msg("Error shutting down")
	}
}
func (server *LlaqtaServer) Run() {
	server.logger.Info().Str("server_address", server.addr).Msg("Server is starting")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go server.httpServer.ListenAndServe()
	server.logger.Info().Msg("Ready")

	<-ctx.Done()
	stop() // Stop listening for signals
	server.logger.Info().Msg("Shutting down gracefully")
	server.Shutdown()
}
