// Command client is a small command-line client for the shop API.
//
//	client [-addr host:port] [-token T] dashboard
//	client [-addr host:port] products [-vendor ID] [-limit N] [-offset N]
//	client [-addr host:port] -token T me|cart
//	client [-addr host:port] login -email E -password P
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-shop-api/internal/adapter"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var errUnknownCommand = errors.New("unknown command")

func main() {
	flags := flag.NewFlagSet("client", flag.ExitOnError)
	addr := flags.String("addr", envOr("SHOP_API_ADDRESS", "localhost:8080"), "shop API address")
	token := flags.String("token", os.Getenv("SHOP_API_TOKEN"), "API token")
	timeout := flags.Duration("timeout", 15*time.Second, "request timeout")
	logLevel := flags.String("log-level", "warn", "log level")
	version := flags.Bool("version", false, "print build info and exit")
	_ = flags.Parse(os.Args[1:])

	if *version {
		info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
		fmt.Printf("%s %s %s\n", info.BuildVersion(), info.BuildDate(), info.BuildCommit())
		return
	}

	log := logger.NewLoggerWithLevel("go-shop-client", *logLevel)

	shop, err := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{BaseURL: *addr, Timeout: *timeout}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating client")
	}
	shop.SetToken(*token)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result, err := run(ctx, shop, flags.Args())
	if err != nil {
		log.Fatal().Err(err).Msg("request failed")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err = enc.Encode(result); err != nil {
		log.Fatal().Err(err).Msg("error printing result")
	}
}

func run(ctx context.Context, shop adapter.ServerAdapter, args []string) (any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: none given", errUnknownCommand)
	}

	switch args[0] {
	case "dashboard":
		return shop.DashboardData(ctx)
	case "products":
		var filter models.ProductFilter
		fs := flag.NewFlagSet("products", flag.ContinueOnError)
		fs.Int64Var(&filter.VendorID, "vendor", 0, "vendor ID")
		fs.Uint64Var(&filter.Limit, "limit", 0, "page size")
		fs.Uint64Var(&filter.Offset, "offset", 0, "page offset")
		if err := fs.Parse(args[1:]); err != nil {
			return nil, err
		}
		return shop.ListProducts(ctx, filter)
	case "me":
		return shop.Me(ctx)
	case "cart":
		return shop.GetCart(ctx)
	case "login":
		var req models.LoginRequest
		fs := flag.NewFlagSet("login", flag.ContinueOnError)
		fs.StringVar(&req.Email, "email", "", "account email")
		fs.StringVar(&req.Password, "password", "", "account password")
		if err := fs.Parse(args[1:]); err != nil {
			return nil, err
		}
		account, err := shop.Login(ctx, req)
		if err != nil {
			return nil, err
		}
		return models.AuthResponse{APIToken: shop.Token(), Account: account}, nil
	default:
		return nil, fmt.Errorf("%w: %s", errUnknownCommand, args[0])
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
