package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const DBName = "LeadformDB"

var (
	client     *mongo.Client
	once       sync.Once // ConnectMongoDB must run only once
	connectErr error

	FormCollection       *mongo.Collection
	SessionCollection    *mongo.Collection
	SubmissionCollection *mongo.Collection
	LeadCollection       *mongo.Collection
)

// ConnectMongoDB connects to MongoDB once and binds the shared collection
// handles. Safe to call from multiple packages.
func ConnectMongoDB() error {
	if err := godotenv.Load(); err != nil {
		log.Println("warning: no .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("MongoDB ping failed:", connectErr)
			return
		}

		FormCollection = GetCollection(DBName, "forms")
		SessionCollection = GetCollection(DBName, "form_sessions")
		SubmissionCollection = GetCollection(DBName, "submissions")
		LeadCollection = GetCollection(DBName, "leads")

		log.Println("MongoDB connected successfully")
	})

	return connectErr
}

// GetCollection returns a collection handle from the shared client.
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
