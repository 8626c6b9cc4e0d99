package main

import (
	"context"
	"log"
	"net/http"

	httpadapter "github.com/IgorKammerGrahl/MoodTrack/internal/adapters/http"
	"github.com/IgorKammerGrahl/MoodTrack/internal/adapters/llm"
	memstore "github.com/IgorKammerGrahl/MoodTrack/internal/adapters/storage/memory"
	sqlitestore "github.com/IgorKammerGrahl/MoodTrack/internal/adapters/storage/sqlite"
	authapp "github.com/IgorKammerGrahl/MoodTrack/internal/app/auth"
	chatapp "github.com/IgorKammerGrahl/MoodTrack/internal/app/chat"
	moodapp "github.com/IgorKammerGrahl/MoodTrack/internal/app/mood"
	"github.com/IgorKammerGrahl/MoodTrack/internal/app/reflection"
	"github.com/IgorKammerGrahl/MoodTrack/internal/app/suggestion"
	"github.com/IgorKammerGrahl/MoodTrack/internal/config"
	"github.com/IgorKammerGrahl/MoodTrack/internal/domain"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// Completer: mock or real Gemini gateway. Running without an API
	// key is supported: the gateway then answers with fallbacks.
	var completer domain.Completer
	if cfg.UseMockLLM {
		log.Println("[LLM] Using mock completer")
		completer = llm.NewMockCompleter("")
	} else {
		gw, err := llm.NewGateway(ctx, cfg.AIAPIKey, cfg.ModelName, cfg.AITimeout)
		if err != nil {
			log.Fatalf("error initializing model gateway: %v", err)
		}
		completer = gw
	}

	// Storage: SQLite or Memory
	var entryStore domain.EntryStore
	var userStore domain.UserStore

	switch cfg.StorageBackend {
	case "memory":
		log.Println("[STORE] Using in-memory storage")
		entryStore = memstore.NewEntryStore()
		userStore = memstore.NewUserStore()

	default:
		log.Printf("[STORE] Using SQLite storage (path=%s)", cfg.DBPath)
		store, err := sqlitestore.NewStore(cfg.DBPath)
		if err != nil {
			log.Fatalf("error initializing SQLite store: %v", err)
		}
		defer store.Close()

		// 1 store, implements 2 interfaces
		entryStore = store
		userStore = store
	}

	dispatcher := reflection.NewDispatcher()
	orchestrator := reflection.NewOrchestrator(completer, entryStore)

	authSvc := authapp.NewService(userStore, cfg.JWTSecret)
	moodSvc := moodapp.NewService(entryStore, dispatcher, orchestrator)
	chatSvc := chatapp.NewService(completer)
	suggestions := suggestion.NewEngine()

	handler := httpadapter.NewServer(authSvc, moodSvc, chatSvc, suggestions, orchestrator)

	addr := ":" + cfg.Port
	log.Println("MoodTrack API listening on", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal(err)
	}
}
