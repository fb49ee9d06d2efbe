package main

import (
	"log"

	"dineboard/configs"
	"dineboard/middlewares"
	"dineboard/mq"
	"dineboard/routes"
	"dineboard/services"
	"dineboard/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()
	configs.SetupDatabase()

	if cfg.Seed {
		if err := configs.SeedDemoData(); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	// Dashboard fan-out
	hub := ws.NewHub()
	go hub.Run()

	sink := services.MultiSink{hub}
	if cfg.RabbitURL != "" {
		pub, err := mq.Dial(cfg.RabbitURL)
		if err != nil {
			log.Printf("rabbitmq disabled: %v", err)
		} else {
			defer pub.Close()
			sink = append(sink, pub)
		}
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, db, cfg, sink, hub)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
