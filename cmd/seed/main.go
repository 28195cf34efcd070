package main

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storepulse/internal/model"
	"storepulse/internal/repository"
)

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database("storepulse")
	repo := repository.NewDatasetRepo(db)

	ds := model.DefaultDataset()
	if err := repo.Save(ctx, ds); err != nil {
		log.Fatalf("Failed to seed dataset: %v", err)
	}

	log.Println("Seeded default survey dataset")
}
