package tokenstore

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/shopfront/paypal-integration-api/config"
	"github.com/shopfront/paypal-integration-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var client *mongo.Client

func getMongoClient(mongoDBURL string) *mongo.Client {
	if client != nil {
		return client
	}

	ctx := context.Background()
	clientOptions := options.Client().ApplyURI(mongoDBURL)

	var err error
	client, err = mongo.Connect(ctx, clientOptions)

	// assume the caller of this func cannot handle the case where there is no
	// database connection, so the service must crash here as it cannot do its work
	if err != nil {
		log.Error(fmt.Errorf("error connecting to mongodb: %s", err))
		os.Exit(1)
	}

	// check we can connect to the mongodb instance, failure here should result in a crash
	pingContext, cancel := context.WithDeadline(ctx, time.Now().Add(5*time.Second))
	defer cancel()
	err = client.Ping(pingContext, nil)
	if err != nil {
		log.Error(fmt.Errorf("ping to mongodb timed out: %s", err))
		os.Exit(1)
	}

	log.Info("connected to mongodb successfully")

	return client
}

// MongoDatabaseInterface is an interface that describes the mongodb driver
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

func getMongoDatabase(mongoDBURL, databaseName string) MongoDatabaseInterface {
	return getMongoClient(mongoDBURL).Database(databaseName)
}

// MongoStore is a Store backed by a MongoDB collection, for deployments
// where multiple instances share one token cache.
type MongoStore struct {
	db             MongoDatabaseInterface
	CollectionName string
}

// NewMongoStore returns a new MongoStore using the configured database and
// collection.
func NewMongoStore(cfg *config.Config) *MongoStore {
	database := getMongoDatabase(cfg.MongoDBURL, cfg.Database)
	return &MongoStore{
		db:             database,
		CollectionName: cfg.Collection,
	}
}

// Get returns the token cached for the given context key.
// If no token is cached, return nil
func (m *MongoStore) Get(key string) (*models.Token, error) {
	collection := m.db.Collection(m.CollectionName)

	var resource models.TokenResourceDB
	err := collection.FindOne(context.Background(), bson.M{"_id": key}).Decode(&resource)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &models.Token{
		AccessToken: resource.AccessToken,
		TokenType:   resource.TokenType,
		ExpiresIn:   resource.ExpiresIn,
		IssuedAt:    resource.IssuedAt,
	}, nil
}

// Set writes the token for the given context key, replacing any previous one.
func (m *MongoStore) Set(key string, token *models.Token) error {
	collection := m.db.Collection(m.CollectionName)

	resource := models.TokenResourceDB{
		ID:          key,
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresIn:   token.ExpiresIn,
		IssuedAt:    token.IssuedAt,
	}

	opts := options.Replace().SetUpsert(true)
	_, err := collection.ReplaceOne(context.Background(), bson.M{"_id": key}, resource, opts)
	return err
}

// Clear removes any token cached for the given context key.
func (m *MongoStore) Clear(key string) error {
	collection := m.db.Collection(m.CollectionName)

	_, err := collection.DeleteOne(context.Background(), bson.M{"_id": key})
	return err
}
