package patients

import (
	"context"
	"fmt"
	"medichat-service/internal/app/contracts"
	"medichat-service/internal/app/models"
	"medichat-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type patientMongoRepository struct {
	Collection *mongo.Collection
	dbName     string
	collName   string
}

func NewPatientMongoRepository(client *mongo.Client, dbName, collectionName string) contracts.PatientRepository {
	return &patientMongoRepository{
		Collection: client.Database(dbName).Collection(collectionName),
		dbName:     dbName,
		collName:   collectionName,
	}
}

func (r *patientMongoRepository) Save(ctx context.Context, entry *models.StoredPatientEntry) (int, error) {
	_, err := r.Collection.InsertOne(ctx, entry)
	if err != nil {
		return 0, exceptions.ErrMongoDBInsertDocument(err)
	}

	total, err := r.Collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return int(total), nil
}

func (r *patientMongoRepository) FindAll(ctx context.Context) ([]models.StoredPatientEntry, error) {
	cursor, err := r.Collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	entries := []models.StoredPatientEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return entries, nil
}

func (r *patientMongoRepository) Location() string {
	return fmt.Sprintf("mongodb:%s.%s", r.dbName, r.collName)
}
