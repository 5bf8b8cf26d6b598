package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"framequiz/internal/config"
	"framequiz/internal/model"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDatabase)
	questionColl := db.Collection("quiz_questions")

	questions := []model.QuizQuestion{
		{
			Question:           "What is the maximum supply of Bitcoin?",
			Options:            []string{"18 million", "21 million", "42 million", "100 million"},
			CorrectAnswerIndex: 1,
			Category:           "crypto",
		},
		{
			Question:           "Which consensus mechanism does Ethereum use today?",
			Options:            []string{"Proof of Work", "Proof of Authority", "Proof of Stake", "Proof of History"},
			CorrectAnswerIndex: 2,
			Category:           "crypto",
		},
		{
			Question:           "What does a Farcaster FID identify?",
			Options:            []string{"A channel", "A cast", "An account", "A frame"},
			CorrectAnswerIndex: 2,
			Category:           "farcaster",
		},
		{
			Question:           "On which network does Farcaster register identities?",
			Options:            []string{"Optimism", "Arbitrum", "Solana", "Polygon"},
			CorrectAnswerIndex: 0,
			Category:           "farcaster",
		},
		{
			Question:           "What is a Farcaster post called?",
			Options:            []string{"A toot", "A cast", "A drop", "A ping"},
			CorrectAnswerIndex: 1,
			Category:           "farcaster",
		},
		{
			Question:           "Which of these is a layer-2 rollup on Ethereum?",
			Options:            []string{"Base", "Dogecoin", "Litecoin", "Monero"},
			CorrectAnswerIndex: 0,
			Category:           "crypto",
		},
		{
			Question:           "What does NFT stand for?",
			Options:            []string{"New Financial Token", "Non-Fungible Token", "Network File Transfer", "Notarized Fund Transfer"},
			CorrectAnswerIndex: 1,
			Category:           "crypto",
		},
		{
			Question:           "Who published the Bitcoin whitepaper?",
			Options:            []string{"Vitalik Buterin", "Hal Finney", "Satoshi Nakamoto", "Nick Szabo"},
			CorrectAnswerIndex: 2,
			Category:           "crypto",
		},
		{
			Question:           "What is 'gas' on Ethereum?",
			Options:            []string{"A stablecoin", "The fee unit for computation", "A wallet format", "A mining pool"},
			CorrectAnswerIndex: 1,
			Category:           "crypto",
		},
		{
			Question:           "Which standard defines fungible tokens on Ethereum?",
			Options:            []string{"ERC-721", "ERC-1155", "ERC-20", "ERC-4337"},
			CorrectAnswerIndex: 2,
			Category:           "crypto",
		},
		{
			Question:           "What do Farcaster frames embed inside a cast?",
			Options:            []string{"Interactive apps", "Video calls", "Private messages", "Smart contracts"},
			CorrectAnswerIndex: 0,
			Category:           "farcaster",
		},
		{
			Question:           "Which of these wallets is a browser extension?",
			Options:            []string{"Ledger", "MetaMask", "Trezor", "Coldcard"},
			CorrectAnswerIndex: 1,
			Category:           "crypto",
		},
	}

	inserted := 0
	for i := range questions {
		questions[i].ID = "q_" + uuid.New().String()[:8]
		questions[i].Active = true
		if _, err := questionColl.InsertOne(ctx, questions[i]); err != nil {
			log.Printf("Failed to insert question %q: %v", questions[i].Question, err)
			continue
		}
		inserted++
	}

	fmt.Printf("Seeded %d/%d questions into %s.quiz_questions\n", inserted, len(questions), cfg.MongoDatabase)
}
