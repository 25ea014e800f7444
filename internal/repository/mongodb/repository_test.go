package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/Fridaxdnt/EcoFinance-Pro/internal/domain/models"
)

const testDB = "ecofinance"

func counterReply(seq int64) bson.D {
	return mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
		{Key: "_id", Value: recordsCollection},
		{Key: "seq", Value: seq},
	}})
}

func recordDoc(id int64, process models.Process, water float64) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "date", Value: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)},
		{Key: "process", Value: string(process)},
		{Key: "material", Value: "Copper"},
		{Key: "water_m3", Value: water},
		{Key: "energy_kwh", Value: 90.0},
		{Key: "co2_ton", Value: 1.0},
		{Key: "waste_ton", Value: 0.0},
		{Key: "production_ton", Value: 20.0},
		{Key: "revenue", Value: 100000.0},
		{Key: "cost", Value: 70000.0},
		{Key: "environmental_investment", Value: 40.0},
	}
}

func TestMongoDBRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("append uses counter id", func(mt *mtest.T) {
		repo := newRepository(mt.Client, testDB)
		mt.AddMockResponses(counterReply(7), mtest.CreateSuccessResponse())

		id, err := repo.Append(context.Background(), models.OperationalRecord{Process: models.ProcessExtraction, WaterM3: 10})
		require.NoError(mt, err)
		assert.Equal(mt, int64(7), id)

		events := mt.GetAllStartedEvents()
		require.Len(mt, events, 2)
		assert.Equal(mt, "findAndModify", events[0].CommandName)
		assert.Equal(mt, countersCollection, events[0].Command.Lookup("findAndModify").StringValue())
		assert.Equal(mt, "insert", events[1].CommandName)
		assert.Equal(mt, recordsCollection, events[1].Command.Lookup("insert").StringValue())
	})

	mt.Run("append surfaces insert failure", func(mt *mtest.T) {
		repo := newRepository(mt.Client, testDB)
		mt.AddMockResponses(counterReply(8), mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		_, err := repo.Append(context.Background(), models.OperationalRecord{Process: models.ProcessExtraction})
		assert.ErrorContains(mt, err, "insert operational record")
	})

	mt.Run("all sorts by id", func(mt *mtest.T) {
		repo := newRepository(mt.Client, testDB)
		ns := testDB + "." + recordsCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			recordDoc(1, models.ProcessExtraction, 200),
			recordDoc(2, models.ProcessProcessing, 100),
		))

		records, err := repo.All(context.Background())
		require.NoError(mt, err)
		require.Len(mt, records, 2)
		assert.Equal(mt, int64(1), records[0].ID)
		assert.Equal(mt, models.ProcessProcessing, records[1].Process)
		assert.Equal(mt, 100.0, records[1].WaterM3)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "find", started.CommandName)
		order := started.Command.Lookup("sort").Document()
		assert.Equal(mt, int64(1), order.Lookup("_id").AsInt64())
	})

	mt.Run("all on empty collection", func(mt *mtest.T) {
		repo := newRepository(mt.Client, testDB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testDB+"."+recordsCollection, mtest.FirstBatch))

		records, err := repo.All(context.Background())
		require.NoError(mt, err)
		assert.NotNil(mt, records)
		assert.Empty(mt, records)
	})

	mt.Run("save report", func(mt *mtest.T) {
		repo := newRepository(mt.Client, testDB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := repo.SaveReport(context.Background(), models.ExecutiveReport{Period: "March 2026", RecordCount: 2})
		require.NoError(mt, err)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, reportsCollection, started.Command.Lookup("insert").StringValue())
	})
}
