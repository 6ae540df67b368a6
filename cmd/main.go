package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"pixelmeet/backend/internal/api/handler"
	"pixelmeet/backend/internal/config"
	"pixelmeet/backend/internal/signalhub"
	"pixelmeet/backend/internal/storage"
)

func main() {
	logrus.Info("starting PixelMeet signaling server...")

	if err := godotenv.Load(); err != nil {
		logrus.Warn("no .env file loaded")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	store := storage.NewMemory()
	hub := signalhub.NewHub(store, cfg.WaitingRoomTTL)
	go hub.Run()

	r := gin.Default()
	h := handler.NewHandler(hub, store)

	r.GET("/api/health", h.Health)
	r.GET("/api/stats", h.Stats)
	r.GET("/ws", h.ServeWebSocket)

	server := &http.Server{
		Addr:           cfg.Addr,
		Handler:        r,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}

	logrus.Infof("listening on %s", cfg.Addr)
	logrus.Fatal(server.ListenAndServe())
}
