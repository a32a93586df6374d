package jobs

import (
	"log"
	"os"

	"Backend-Curadoria-AF/src/database"

	"github.com/hibiken/asynq"
)

// StartWorker runs the background task server. A no-op without Redis.
func StartWorker() {
	if database.RedisURI == "" || database.RedisClient == nil {
		log.Println("⚠️ Redis not available. Background worker will not start.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI, Password: os.Getenv("REDIS_PASSWORD")},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeConversionEvent, HandleConversionEventTask)

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Println("❌ Asynq worker stopped:", err)
		}
	}()
	log.Println("✅ Background worker started")
}
