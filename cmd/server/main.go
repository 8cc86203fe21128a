package main

import (
	"log"
	"net/http"

	"campus-crisis/card"
	"campus-crisis/crisis"
	"campus-crisis/internal/config"
	"campus-crisis/internal/gateway"
	"campus-crisis/internal/history"
	"campus-crisis/internal/room"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Server] Failed to load config: %v", err)
	}

	catalog := card.DefaultCatalog()
	if cfg.CatalogPath != "" {
		catalog, err = card.LoadCatalog(cfg.CatalogPath)
		if err != nil {
			log.Fatalf("[Server] Failed to load catalog %s: %v", cfg.CatalogPath, err)
		}
		log.Printf("[Server] Loaded catalog from %s", cfg.CatalogPath)
	}

	historyService, historyMode, err := history.NewServiceFromEnv(
		cfg.HistoryMode, cfg.HistorySQLitePath, cfg.HistoryDatabaseDSN)
	if err != nil {
		log.Fatalf("[Server] Failed to init history service: %v", err)
	}
	defer historyService.Close()

	sessionCfg := crisis.DefaultConfig()
	sessionCfg.Seed = cfg.Seed
	session, err := crisis.NewSession(sessionCfg, catalog)
	if err != nil {
		log.Fatalf("[Server] Failed to create session: %v", err)
	}

	gw := gateway.New()
	rm := room.New("main", session, cfg.ReconnectGrace, gw.SendToConn, gw.Disconnect, historyService)
	gw.SetRoom(rm)
	defer rm.Stop()

	historyHTTP := history.NewHTTPHandler(historyService)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", gw.HandleWebSocket)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	historyHTTP.RegisterRoutes(mux)

	log.Printf("[Server] History mode: %s", historyMode)
	log.Printf("[Server] Starting WebSocket server on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		log.Fatalf("[Server] Failed to start: %v", err)
	}
}
