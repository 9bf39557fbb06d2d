package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/config"
	"github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/server"
	analyticssvc "github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/services/analytics"
	"github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/services/keepalive"
	"github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/store/mongodb"
	"github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/store/mongodb/bills"
	"github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/store/mongodb/products"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "web",
		Short: "Start the sales analytics API for the smart retail system",
		RunE:  runServer,
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := mongodb.NewDB(ctx, mongodb.Settings{
		URI:      cfg.MongoURI,
		Database: cfg.DBName,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to document store: %w", err)
	}

	billStore, err := bills.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create bill store: %w", err)
	}
	productStore, err := products.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create product store: %w", err)
	}

	engine := analyticssvc.NewEngine(analyticssvc.Config{
		StrictFiltering: cfg.StrictFiltering,
	})

	pinger := keepalive.NewPinger(cfg.SelfPingURL, cfg.PingInterval)
	if pinger.Start(ctx) {
		logger.Info().
			Str("url", cfg.SelfPingURL).
			Dur("interval", cfg.PingInterval).
			Msg("self-ping started")
	} else {
		logger.Info().Msg("self-ping disabled")
	}
	defer pinger.Stop()

	addr := net.JoinHostPort(cfg.ServerHost, cfg.ServerPort)
	webAPI := server.NewWebAPI(logger, server.Config{
		Addr:            addr,
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Bills:     billStore,
			Products:  productStore,
			Engine:    engine,
			KeepAlive: pinger,
			CheckDB: func(ctx context.Context) error {
				return mongodb.Ping(ctx, db)
			},
		},
	})

	return webAPI.Start()
}
