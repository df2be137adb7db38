package doctorRepo

import (
	"context"
	"fmt"
	"time"

	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDoctorRepo implements DoctorRepository using MongoDB.
type MongoDoctorRepo struct {
	doctorColl *mongo.Collection
}

// NewMongoDoctorRepo constructs a new instance of MongoDoctorRepo.
func NewMongoDoctorRepo() DoctorRepository {
	db := database.MongoClient.Database("medibook")
	return &MongoDoctorRepo{
		doctorColl: db.Collection("doctors"),
	}
}

// GetByID retrieves a doctor document by ID.
func (repo *MongoDoctorRepo) GetByID(doctorID string) (*models.Doctor, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var doctor models.Doctor
	filter := bson.M{"id": doctorID}
	if err := repo.doctorColl.FindOne(ctx, filter).Decode(&doctor); err != nil {
		return nil, fmt.Errorf("error fetching doctor with id %s: %w", doctorID, err)
	}
	return &doctor, nil
}

// GetConsultingHours fetches only the raw consulting-hours field.
func (repo *MongoDoctorRepo) GetConsultingHours(doctorID string) (interface{}, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var doc struct {
		ConsultingHours interface{} `bson:"consulting_hours"`
	}
	filter := bson.M{"id": doctorID}
	opts := options.FindOne().SetProjection(bson.M{"consulting_hours": 1})
	if err := repo.doctorColl.FindOne(ctx, filter, opts).Decode(&doc); err != nil {
		return nil, fmt.Errorf("error fetching consulting hours for doctor %s: %w", doctorID, err)
	}
	return doc.ConsultingHours, nil
}
