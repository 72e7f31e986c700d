//nolint:mnd
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/CSCI-GA-2820-FA24-003/inventory/internal/entity"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	addr := flag.String("addr", "http://localhost:8080", "Base URL of the inventory service")
	numRecords := flag.Int("count", 1, "Number of inventory records to create")
	interval := flag.Duration("interval", 1*time.Second, "Interval between requests")

	flag.Parse()

	client := &http.Client{Timeout: 5 * time.Second}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Printf(
		"Starting inventory seeder. Will create %d records at '%s' every %v\n",
		*numRecords,
		*addr,
		*interval,
	)

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	recordsSent := 0

	sendRecord(ctx, client, *addr)

	recordsSent++
	if recordsSent >= *numRecords {
		log.Printf("Created all %d records. Exiting.\n", *numRecords)
		return
	}

	for {
		select {
		case <-ctx.Done():
			log.Println("Shutting down seeder...")
			return
		case <-ticker.C:
			sendRecord(ctx, client, *addr)
			recordsSent++
			if recordsSent >= *numRecords {
				log.Printf("Created all %d records. Exiting.\n", *numRecords)
				return
			}
		}
	}
}

func sendRecord(ctx context.Context, client *http.Client, addr string) {
	inventory := generateFakeInventory()

	payload, err := json.Marshal(inventory)
	if err != nil {
		log.Printf("Failed to marshal inventory: %v\n", err)
		return
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		fmt.Sprintf("%s/inventories", addr),
		bytes.NewReader(payload),
	)
	if err != nil {
		log.Printf("Failed to build request: %v\n", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		log.Printf("Failed to create inventory: %v\n", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		log.Printf("Unexpected status %d for inventory %q\n", resp.StatusCode, inventory.Name)
		return
	}

	log.Printf("Created inventory %q (condition %s)\n", inventory.Name, inventory.Condition)
}

func generateFakeInventory() *entity.Inventory {
	conditions := []entity.Condition{
		entity.ConditionNew,
		entity.ConditionOpenBox,
		entity.ConditionUsed,
	}

	return &entity.Inventory{
		Name:                gofakeit.ProductName(),
		Quantity:            int64(gofakeit.Number(0, 1000)),
		RestockLevel:        int64(gofakeit.Number(0, 100)),
		Condition:           conditions[gofakeit.Number(0, len(conditions)-1)],
		RestockingAvailable: gofakeit.Bool(),
	}
}
