// @title           DocuScan OCR API
// @version         1.0
// @description     Document OCR, classification, and structured field extraction.
// @termsOfService  http://swagger.io/terms/

// @contact.name    docuscan maintainers
// @contact.url
// @contact.email

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"docuscan/internal/config"
	"docuscan/internal/data/store"
	"docuscan/internal/handlers"
	"docuscan/internal/ocr"
	"docuscan/internal/orchestrator"
	"docuscan/internal/pdfconv"
	"docuscan/internal/server"
	"docuscan/internal/storage"
	"docuscan/pkg/logz"
)

var listenAddr string

func main() {

	logz.Init()
	var logger = logz.New("main")

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found, using process environment")
	}

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	provider, err := ocr.NewProvider(config.OCRProviderKind())
	if err != nil {
		logger.Error("OCR provider failed to initialize. Shutting down.", "error", err)
		return
	}
	if !provider.IsAvailable() {
		logger.Warn("OCR provider reports unavailable; extraction requests will fail", "provider", provider.Name())
	}

	files, err := storage.New(config.UploadDirName)
	if err != nil {
		logger.Error("Upload storage failed to initialize. Shutting down.", "error", err)
		return
	}

	//result cache: redis when reachable, in-process map otherwise
	var resultCache store.ResultCache
	if redisCache := store.GetRedisResultCache(serviceContext); redisCache != nil {
		resultCache = redisCache
	} else {
		logger.Error("Redis result cache is offline")
		resultCache = store.InitInMemoryResultCache()
	}

	splitter := pdfconv.NewSplitter(files.Dir())
	service := orchestrator.New(provider, splitter, files)

	handlers.Init(service, provider, files, resultCache)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}
