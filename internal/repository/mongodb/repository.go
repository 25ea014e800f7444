package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Fridaxdnt/EcoFinance-Pro/internal/domain/models"
)

const (
	recordsCollection  = "operational_records"
	reportsCollection  = "executive_reports"
	countersCollection = "counters"
)

// MongoDBRepository stores operational records and archived executive reports.
// Record ids come from an atomically incremented counter document.
type MongoDBRepository struct {
	client *mongo.Client
	dbName string
}

// NewMongoDBRepository connects and pings MongoDB. Callers own the connection and must Close it.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return newRepository(client, dbName), nil
}

func newRepository(client *mongo.Client, dbName string) *MongoDBRepository {
	return &MongoDBRepository{
		client: client,
		dbName: dbName,
	}
}

func (r *MongoDBRepository) collection(name string) *mongo.Collection {
	return r.client.Database(r.dbName).Collection(name)
}

type counter struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

func (r *MongoDBRepository) nextID(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var c counter
	err := r.collection(countersCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": recordsCollection}, bson.M{"$inc": bson.M{"seq": 1}}, opts).
		Decode(&c)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate record id: %w", err)
	}
	return c.Seq, nil
}

// Append inserts record under a freshly allocated id.
func (r *MongoDBRepository) Append(ctx context.Context, record models.OperationalRecord) (int64, error) {
	id, err := r.nextID(ctx)
	if err != nil {
		return 0, err
	}

	record.ID = id
	if _, err := r.collection(recordsCollection).InsertOne(ctx, record); err != nil {
		return 0, fmt.Errorf("failed to insert operational record: %w", err)
	}
	return id, nil
}

// All reads every record ordered by id, which is insertion order.
func (r *MongoDBRepository) All(ctx context.Context) ([]models.OperationalRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection(recordsCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query operational records: %w", err)
	}

	records := make([]models.OperationalRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode operational records: %w", err)
	}
	return records, nil
}

// SaveReport archives an executive report.
func (r *MongoDBRepository) SaveReport(ctx context.Context, report models.ExecutiveReport) error {
	_, err := r.collection(reportsCollection).InsertOne(ctx, report)
	if err != nil {
		return fmt.Errorf("failed to insert executive report: %w", err)
	}
	return nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
