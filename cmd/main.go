package main

import (
	"database/sql"

	"github.com/hibiken/asynq"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"github.com/wsjobs/go-job-board/internal/api"
	"github.com/wsjobs/go-job-board/internal/config"
	db "github.com/wsjobs/go-job-board/internal/db/sqlc"
	"github.com/wsjobs/go-job-board/internal/mail"
	"github.com/wsjobs/go-job-board/internal/payment"
	"github.com/wsjobs/go-job-board/internal/worker"
)

func main() {
	// === config, env file ===
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load env file")
	}

	// === database ===
	conn, err := sql.Open(cfg.DBDriver, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to the db")
	}

	store := db.NewStore(conn)

	// === background workers ===
	redisOpt := asynq.RedisClientOpt{
		Addr: cfg.RedisAddress,
	}

	taskDistributor := worker.NewRedisTaskDistributor(redisOpt)
	go runTaskProcessor(redisOpt, store, cfg)

	// === payments ===
	checkout := payment.NewStripeClient(cfg.StripeSecretKey, cfg.StripeWebhookSecret)

	// === HTTP server ===
	server, err := api.NewServer(cfg, store, taskDistributor, checkout)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create server")
	}

	err = server.Start(cfg.ServerAddress)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot start the server")
	}
}

func runTaskProcessor(redisOpt asynq.RedisClientOpt, store db.Store, cfg config.Config) {
	emailSender := mail.NewHogSender(cfg.EmailSenderAddress)
	taskProcessor := worker.NewRedisTaskProcessor(redisOpt, store, emailSender)

	log.Info().Msg("starting the task processor")
	err := taskProcessor.Start()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start the task processor")
	}
}
