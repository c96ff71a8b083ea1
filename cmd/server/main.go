package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"craft-server/internal/agent"
	"craft-server/internal/engine"
	"craft-server/internal/server"
	"craft-server/internal/version"
	"craft-server/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var port string
	var bots int
	flag.StringVar(&port, "port", "", "HTTP port (overrides PORT env)")
	flag.IntVar(&bots, "bots", 0, "Number of bot agents to spawn per room")
	flag.Parse()

	logger.Log.Info("Starting Craft Server...")
	logger.Log.Info(version.String())

	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "3001"
	}

	// 2. Инициализация ядра
	cfg := engine.NewConfig()
	service := engine.NewService(cfg)
	service.Start()

	// 3. Боты (опционально)
	for _, room := range service.Rooms.Names() {
		for i := 0; i < bots; i++ {
			bot := agent.NewBot(fmt.Sprintf("%s-%d", room, i), room, service)
			go bot.Run()
		}
	}

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 4. Запуск сервера
	srv := server.New(service, port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")
	service.Stop()
	logger.Log.Info("Done.")
}
