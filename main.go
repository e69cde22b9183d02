package main

import (
	"context"
	"log"
	"time"

	// Asia/Tokyo must resolve inside the stripped Lambda runtime image.
	_ "time/tzdata"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"members-card/catalog"
	"members-card/clients"
	"members-card/handlers"
	"members-card/storage"
)

func main() {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatalf("❌ Failed to load AWS config: %v", err)
	}

	item, err := catalog.Load(ctx, cfg.CatalogSource, s3.NewFromConfig(awsCfg))
	if err != nil {
		log.Fatalf("❌ Failed to load catalog: %v", err)
	}

	// All dates the system produces (expiration, audit timestamps, receipt
	// header) are store-local regardless of where the caller is.
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		log.Fatalf("❌ Failed to load Asia/Tokyo location: %v", err)
	}
	now := func() time.Time { return time.Now().In(tokyo) }

	members := storage.NewMemberDynamoDBRepository(dynamodb.NewFromConfig(awsCfg), cfg.TableName, now)
	verifier := clients.NewLoginClient(cfg.LiffChannelID)

	var tokens clients.TokenProvider
	if cfg.ChannelAccessToken != "" {
		tokens = clients.StaticTokenProvider(cfg.ChannelAccessToken)
	} else {
		tokens = clients.NewOAuthTokenProvider(ctx, cfg.ChannelID, cfg.ChannelSecret)
	}
	messenger := clients.NewMessagingClient(tokens)

	handler := handlers.New(verifier, members, messenger, item, now, cfg.Debug)

	log.Printf("✅ Members card backend starting...")
	lambda.Start(handler.Handle)
}
