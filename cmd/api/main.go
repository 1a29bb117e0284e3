package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/SebastianGomezdv/control-asistencia-go/internal/config"
	appHTTP "github.com/SebastianGomezdv/control-asistencia-go/internal/handler/http"
	"github.com/SebastianGomezdv/control-asistencia-go/internal/pkg/cron"
	"github.com/SebastianGomezdv/control-asistencia-go/internal/pkg/storage"
	"github.com/SebastianGomezdv/control-asistencia-go/internal/repository/csvfile"
	"github.com/SebastianGomezdv/control-asistencia-go/internal/service/recorder"
	reportService "github.com/SebastianGomezdv/control-asistencia-go/internal/service/report"
	"github.com/SebastianGomezdv/control-asistencia-go/internal/service/sweeper"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}
	loc := cfg.Location()

	store := csvfile.NewStore(cfg.Ledger.Path)

	recorderSvc := recorder.NewRecorderService(store)
	sweeperSvc, err := sweeper.NewSweeperService(store, cfg.Sweep.Cutoff)
	if err != nil {
		log.Fatal("Failed to initialize sweeper:", err)
	}

	archive, err := storage.NewLocalStorage(cfg.Report.ArchivePath)
	if err != nil {
		log.Fatal("Failed to initialize report archive:", err)
	}
	reportSvc := reportService.NewReportService(store, archive)

	scheduler := cron.NewScheduler()
	ledgerJobs := cron.NewLedgerJobs(sweeperSvc, loc)
	ledgerJobs.RegisterJobs(scheduler, cfg.Sweep.Interval)
	scheduler.Start()
	defer scheduler.Stop()

	registrarHandler := appHTTP.NewRegistrarHandler(recorderSvc, cfg.Ledger.DefaultEmployeeID, loc)
	reportHandler := appHTTP.NewReportHandler(reportSvc, loc)

	// Camera capture is an external collaborator; without one the feed
	// answers 503.
	var frames appHTTP.FrameSource
	streamHandler := appHTTP.NewStreamHandler(frames)

	router := appHTTP.NewRouter(
		cfg,
		sweeperSvc,
		loc,
		registrarHandler,
		reportHandler,
		streamHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
